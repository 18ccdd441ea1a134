package scores

import (
	"context"
	"fmt"
	"log/slog"

	"etude/internal/logging"
	"etude/internal/store"
)

// ImportSummary reports what an import pass touched.
type ImportSummary struct {
	SongsScanned  int
	SongsCreated  int
	GroupsCreated int
}

// Import scans a scores directory and registers its songs and measure
// groups. The pass is idempotent; rescanning an unchanged library creates
// nothing and loses no practice history.
func Import(ctx context.Context, st *store.Store, dir string, logger *slog.Logger) (ImportSummary, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String(logging.FieldComponent, "scores"))

	folders, err := Scan(dir)
	if err != nil {
		return ImportSummary{}, err
	}

	var summary ImportSummary
	for _, folder := range folders {
		summary.SongsScanned++

		existing, err := st.FindSongBySource(ctx, folder.Source)
		if err != nil {
			return summary, err
		}
		song, err := st.CreateSong(ctx, folder.Title, "", folder.Source)
		if err != nil {
			return summary, fmt.Errorf("import song %s: %w", folder.Source, err)
		}
		if existing == nil {
			summary.SongsCreated++
		}

		for _, span := range folder.Spans {
			id := store.GroupID(folder.Source, span.Start, span.End)
			known, err := st.GetGroup(ctx, id)
			if err != nil {
				return summary, err
			}
			if known != nil {
				continue
			}
			if _, err := st.CreateGroup(ctx, song.ID, span.Start, span.End); err != nil {
				return summary, fmt.Errorf("import group %s: %w", id, err)
			}
			summary.GroupsCreated++
		}

		logger.Info("song imported",
			logging.Int64(logging.FieldSongID, song.ID),
			logging.String("source", folder.Source),
			logging.Int("measures", folder.Singles()),
			logging.Int("spans", len(folder.Spans)))
	}

	logger.Info("scan complete",
		logging.Int("songs", summary.SongsScanned),
		logging.Int("songs_created", summary.SongsCreated),
		logging.Int("groups_created", summary.GroupsCreated))
	return summary, nil
}
