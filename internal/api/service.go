package api

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"etude/internal/scheduler"
	"etude/internal/scores"
	"etude/internal/services"
	"etude/internal/store"
)

// PracticeService exposes library and scheduling operations returning API
// DTOs. Both the daemon's HTTP handlers and the CLI's local mode sit on top
// of it.
type PracticeService struct {
	store *store.Store
	sched *scheduler.Scheduler
}

// NewPracticeService constructs a PracticeService around the given store and
// scheduler.
func NewPracticeService(st *store.Store, sched *scheduler.Scheduler) *PracticeService {
	if st == nil {
		return nil
	}
	return &PracticeService{store: st, sched: sched}
}

// CreateSong registers a song by hand. The source slug defaults to a
// dash-separated form of the title.
func (s *PracticeService) CreateSong(ctx context.Context, req CreateSongRequest) (Song, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return Song{}, services.Wrap(services.ErrValidation, "api", "create song", "title required", nil)
	}
	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = SourceSlug(title)
	}

	song, err := s.store.CreateSong(ctx, title, strings.TrimSpace(req.Composer), source)
	if err != nil {
		return Song{}, err
	}
	return FromSong(song, 0), nil
}

// ListSongs returns every song with its measure total.
func (s *PracticeService) ListSongs(ctx context.Context) ([]Song, error) {
	songs, err := s.store.ListSongs(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.store.SingleMeasureCounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Song, 0, len(songs))
	for _, song := range songs {
		out = append(out, FromSong(song, counts[song.ID]))
	}
	return out, nil
}

// GetSong fetches a single song.
func (s *PracticeService) GetSong(ctx context.Context, id int64) (Song, error) {
	song, err := s.store.GetSong(ctx, id)
	if err != nil {
		return Song{}, err
	}
	if song == nil {
		return Song{}, songNotFound(id)
	}
	counts, err := s.store.SingleMeasureCounts(ctx)
	if err != nil {
		return Song{}, err
	}
	return FromSong(song, counts[song.ID]), nil
}

// CreateGroup registers a measure span for a song.
func (s *PracticeService) CreateGroup(ctx context.Context, req CreateGroupRequest) (MeasureGroup, error) {
	if req.SongID == 0 || req.StartMeasure < 1 || req.EndMeasure < req.StartMeasure {
		return MeasureGroup{}, services.Wrap(services.ErrValidation, "api", "create group", "invalid payload", nil)
	}
	song, err := s.store.GetSong(ctx, req.SongID)
	if err != nil {
		return MeasureGroup{}, err
	}
	if song == nil {
		return MeasureGroup{}, songNotFound(req.SongID)
	}
	group, err := s.store.CreateGroup(ctx, req.SongID, req.StartMeasure, req.EndMeasure)
	if err != nil {
		return MeasureGroup{}, err
	}
	return FromGroup(group), nil
}

// ListGroups returns a song's measure groups.
func (s *PracticeService) ListGroups(ctx context.Context, songID int64) ([]MeasureGroup, error) {
	exists, err := s.store.SongExists(ctx, songID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, songNotFound(songID)
	}
	groups, err := s.store.GroupsBySong(ctx, songID)
	if err != nil {
		return nil, err
	}
	return FromGroups(groups), nil
}

// LogPractice records a practice session. The group is addressed directly or
// resolved best-effort from a filename and measure number.
func (s *PracticeService) LogPractice(ctx context.Context, req PracticeRequest) (Session, error) {
	if strings.TrimSpace(req.Rating) == "" {
		return Session{}, services.Wrap(services.ErrValidation, "api", "log practice", "rating required", nil)
	}

	groupID := strings.TrimSpace(req.GroupID)
	songID := req.SongID
	if groupID == "" {
		if songID == 0 && req.Filename != "" {
			song, err := s.store.FindSongLike(ctx, scores.SongFragment(req.Filename))
			if err != nil {
				return Session{}, err
			}
			if song != nil {
				songID = song.ID
			}
		}
		if songID != 0 && req.Measure > 0 {
			group, err := s.store.FindGroupContaining(ctx, songID, req.Measure)
			if err != nil {
				return Session{}, err
			}
			if group == nil {
				group, err = s.store.ResolveGroupForMeasure(ctx, songID, req.Measure)
				if err != nil {
					return Session{}, err
				}
			}
			if group != nil {
				groupID = group.ID
			}
		}
	}
	if groupID == "" {
		return Session{}, services.Wrap(services.ErrValidation, "api", "log practice",
			"groupId required, or a resolvable filename and measure", nil)
	}

	session, err := s.store.LogSession(ctx, groupID, req.Rating, req.DurationSeconds, strings.TrimSpace(req.Notes))
	if err != nil {
		return Session{}, err
	}
	return FromSession(session), nil
}

// Next returns the scheduling recommendation for a song together with the
// candidate score filenames for its first measure.
func (s *PracticeService) Next(ctx context.Context, songID int64) (Next, error) {
	rec, err := s.sched.Next(ctx, songID)
	if err != nil {
		return Next{}, err
	}

	var files []string
	if song, songErr := s.store.GetSong(ctx, songID); songErr == nil && song != nil {
		sourceFile := filepath.Join(song.Source, song.Source+".musicxml")
		files = scores.FileCandidates(sourceFile, rec.Measure)
	}
	return FromRecommendation(songID, rec, files), nil
}

// Stats returns library summary counts.
func (s *PracticeService) Stats(ctx context.Context) (LibraryStats, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return LibraryStats{}, err
	}
	return LibraryStats{Songs: stats.Songs, Groups: stats.Groups, Sessions: stats.Sessions}, nil
}

// SourceSlug derives a source slug from a display title: lowercase with
// dashes for spaces. It is the inverse of the scanner's title derivation.
func SourceSlug(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), "-"))
}

func songNotFound(id int64) error {
	return services.Wrap(services.ErrNotFound, "api", "lookup song", fmt.Sprintf("song %d", id), nil)
}
