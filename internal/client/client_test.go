package client_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"etude/internal/api"
	"etude/internal/client"
	"etude/internal/logging"
	"etude/internal/scheduler"
	"etude/internal/server"
	"etude/internal/services"
	"etude/internal/testsupport"
)

type fixedRand struct{ f float64 }

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return 0 }

func newClient(t *testing.T, opts ...testsupport.ConfigOption) *client.Client {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	st := testsupport.MustOpenStore(t, cfg)
	sched := scheduler.New(st, scheduler.WithRand(fixedRand{f: 0.9}))
	svc := api.NewPracticeService(st, sched)
	status := func(ctx context.Context) api.DaemonStatus {
		return api.DaemonStatus{Running: true, DBPath: st.Path()}
	}

	srv := server.New(cfg, svc, status, logging.NewNop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	var clientOpts []client.Option
	if cfg.Paths.APIToken != "" {
		clientOpts = append(clientOpts, client.WithToken(cfg.Paths.APIToken))
	}
	return client.New(ts.URL, clientOpts...)
}

func TestClientRoundTrip(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	song, err := c.CreateSong(ctx, api.CreateSongRequest{Title: "Moonlight Sonata"})
	if err != nil {
		t.Fatalf("CreateSong: %v", err)
	}
	if song.ID == 0 {
		t.Fatal("expected assigned song id")
	}

	group, err := c.CreateGroup(ctx, api.CreateGroupRequest{SongID: song.ID, StartMeasure: 1, EndMeasure: 1})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}

	session, err := c.LogPractice(ctx, api.PracticeRequest{GroupID: group.ID, Rating: "easy"})
	if err != nil {
		t.Fatalf("LogPractice: %v", err)
	}
	if session.Rating != "easy" {
		t.Fatalf("session = %+v", session)
	}

	songs, err := c.ListSongs(ctx)
	if err != nil {
		t.Fatalf("ListSongs: %v", err)
	}
	if len(songs) != 1 || songs[0].TotalMeasures != 1 {
		t.Fatalf("songs = %+v", songs)
	}

	groups, err := c.ListGroups(ctx, song.ID)
	if err != nil {
		t.Fatalf("ListGroups: %v", err)
	}
	if len(groups) != 1 || groups[0].ID != group.ID {
		t.Fatalf("groups = %+v", groups)
	}

	next, err := c.Next(ctx, song.ID)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if next.Measure != 1 {
		t.Fatalf("next = %+v", next)
	}

	status, err := c.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !status.Running {
		t.Fatalf("status = %+v", status)
	}
}

func TestClientMapsAPIErrors(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	if _, err := c.Next(ctx, 999); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("unknown song err = %v, want ErrNotFound", err)
	}
	if _, err := c.CreateSong(ctx, api.CreateSongRequest{}); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("empty title err = %v, want ErrValidation", err)
	}
}

func TestClientSendsBearerToken(t *testing.T) {
	c := newClient(t, testsupport.WithAPIToken("secret"))
	if _, err := c.ListSongs(context.Background()); err != nil {
		t.Fatalf("authenticated ListSongs: %v", err)
	}

	anon := client.New("http://127.0.0.1:0")
	if _, err := anon.Status(context.Background()); !errors.Is(err, services.ErrTransient) {
		t.Fatalf("unreachable daemon err = %v, want ErrTransient", err)
	}
}
