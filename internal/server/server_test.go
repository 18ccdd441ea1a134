package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"etude/internal/api"
	"etude/internal/logging"
	"etude/internal/scheduler"
	"etude/internal/server"
	"etude/internal/store"
	"etude/internal/testsupport"
)

type fixedRand struct{ f float64 }

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return 0 }

func newTestServer(t *testing.T, opts ...testsupport.ConfigOption) (*httptest.Server, *store.Store) {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	st := testsupport.MustOpenStore(t, cfg)
	sched := scheduler.New(st, scheduler.WithRand(fixedRand{f: 0.9}))
	svc := api.NewPracticeService(st, sched)
	status := func(ctx context.Context) api.DaemonStatus {
		return api.DaemonStatus{Running: true, DBPath: st.Path()}
	}

	srv := server.New(cfg, svc, status, logging.NewNop())
	if srv == nil {
		t.Fatal("server.New returned nil")
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, st
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestSongLifecycleOverHTTP(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/songs", api.CreateSongRequest{Title: "Moonlight Sonata"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	created := decodeBody[api.SongResponse](t, resp)
	if created.Song.Source != "moonlight-sonata" {
		t.Fatalf("song = %+v", created.Song)
	}

	listResp, err := http.Get(ts.URL + "/api/songs")
	if err != nil {
		t.Fatalf("GET songs: %v", err)
	}
	list := decodeBody[api.SongListResponse](t, listResp)
	if len(list.Songs) != 1 || list.Songs[0].ID != created.Song.ID {
		t.Fatalf("songs = %+v", list.Songs)
	}

	oneResp, err := http.Get(fmt.Sprintf("%s/api/songs/%d", ts.URL, created.Song.ID))
	if err != nil {
		t.Fatalf("GET song: %v", err)
	}
	one := decodeBody[api.SongResponse](t, oneResp)
	if one.Song.Title != "Moonlight Sonata" {
		t.Fatalf("song = %+v", one.Song)
	}

	missingResp, err := http.Get(ts.URL + "/api/songs/999")
	if err != nil {
		t.Fatalf("GET missing song: %v", err)
	}
	missingResp.Body.Close()
	if missingResp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing song status = %d", missingResp.StatusCode)
	}
}

func TestGroupAndPracticeEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)

	song := decodeBody[api.SongResponse](t, postJSON(t, ts.URL+"/api/songs", api.CreateSongRequest{Title: "Fur Elise"})).Song

	groupResp := postJSON(t, ts.URL+"/api/measure-groups", api.CreateGroupRequest{
		SongID: song.ID, StartMeasure: 1, EndMeasure: 1,
	})
	if groupResp.StatusCode != http.StatusCreated {
		t.Fatalf("create group status = %d", groupResp.StatusCode)
	}
	group := decodeBody[api.GroupResponse](t, groupResp).Group

	badResp := postJSON(t, ts.URL+"/api/measure-groups", api.CreateGroupRequest{
		SongID: song.ID, StartMeasure: 5, EndMeasure: 2,
	})
	badResp.Body.Close()
	if badResp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid span status = %d", badResp.StatusCode)
	}

	listResp, err := http.Get(fmt.Sprintf("%s/api/measure-groups?song_id=%d", ts.URL, song.ID))
	if err != nil {
		t.Fatalf("GET groups: %v", err)
	}
	groups := decodeBody[api.GroupListResponse](t, listResp)
	if len(groups.Groups) != 1 || groups.Groups[0].ID != group.ID {
		t.Fatalf("groups = %+v", groups.Groups)
	}

	practiceResp := postJSON(t, ts.URL+"/api/practice", api.PracticeRequest{GroupID: group.ID, Rating: "easy"})
	if practiceResp.StatusCode != http.StatusCreated {
		t.Fatalf("practice status = %d", practiceResp.StatusCode)
	}
	session := decodeBody[api.SessionResponse](t, practiceResp).Session
	if session.Rating != "easy" {
		t.Fatalf("session = %+v", session)
	}

	invalidResp := postJSON(t, ts.URL+"/api/practice", api.PracticeRequest{GroupID: group.ID, Rating: "brutal"})
	invalidResp.Body.Close()
	if invalidResp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid rating status = %d", invalidResp.StatusCode)
	}
}

func TestNextEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	song := decodeBody[api.SongResponse](t, postJSON(t, ts.URL+"/api/songs", api.CreateSongRequest{Title: "Next Song"})).Song
	postJSON(t, ts.URL+"/api/measure-groups", api.CreateGroupRequest{SongID: song.ID, StartMeasure: 1, EndMeasure: 1}).Body.Close()

	resp, err := http.Get(fmt.Sprintf("%s/api/next?song_id=%d", ts.URL, song.ID))
	if err != nil {
		t.Fatalf("GET next: %v", err)
	}
	next := decodeBody[api.NextResponse](t, resp).Next
	if next.Measure != 1 || next.Category != "unlearned" {
		t.Fatalf("next = %+v", next)
	}

	unknownResp, err := http.Get(ts.URL + "/api/next?song_id=999")
	if err != nil {
		t.Fatalf("GET next unknown: %v", err)
	}
	unknownResp.Body.Close()
	if unknownResp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown song status = %d", unknownResp.StatusCode)
	}

	missingResp, err := http.Get(ts.URL + "/api/next")
	if err != nil {
		t.Fatalf("GET next missing param: %v", err)
	}
	missingResp.Body.Close()
	if missingResp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing song_id status = %d", missingResp.StatusCode)
	}
}

func TestStatusEndpoint(t *testing.T) {
	ts, st := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/status")
	if err != nil {
		t.Fatalf("GET status: %v", err)
	}
	status := decodeBody[api.DaemonStatus](t, resp)
	if !status.Running || status.DBPath != st.Path() {
		t.Fatalf("status = %+v", status)
	}
}

func TestBearerAuth(t *testing.T) {
	ts, _ := newTestServer(t, testsupport.WithAPIToken("secret"))

	resp, err := http.Get(ts.URL + "/api/songs")
	if err != nil {
		t.Fatalf("GET without token: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d", resp.StatusCode)
	}

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/songs", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer secret")
	authed, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET with token: %v", err)
	}
	authed.Body.Close()
	if authed.StatusCode != http.StatusOK {
		t.Fatalf("authenticated status = %d", authed.StatusCode)
	}
}

func TestCORSAndRequestID(t *testing.T) {
	ts, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/songs", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("preflight status = %d", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing CORS header")
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Fatal("missing request id header")
	}

	tagged, err := http.NewRequest(http.MethodGet, ts.URL+"/api/songs", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	tagged.Header.Set("X-Request-Id", "req-123")
	taggedResp, err := http.DefaultClient.Do(tagged)
	if err != nil {
		t.Fatalf("GET with request id: %v", err)
	}
	taggedResp.Body.Close()
	if got := taggedResp.Header.Get("X-Request-Id"); got != "req-123" {
		t.Fatalf("request id = %q, want req-123", got)
	}
}
