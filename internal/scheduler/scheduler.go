package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"etude/internal/catalog"
	"etude/internal/logging"
	"etude/internal/rating"
	"etude/internal/services"
)

// Source supplies the persisted inputs for one scheduling decision.
type Source interface {
	SongExists(ctx context.Context, songID int64) (bool, error)
	CatalogGroups(ctx context.Context, songID int64) ([]catalog.Group, error)
	CatalogRatings(ctx context.Context, songID int64) ([]catalog.PracticeRecord, error)
}

// RandSource is the injectable randomness capability used by the selector.
// *rand.Rand satisfies it; tests substitute fixed sequences to force each
// branch.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// Recommendation is the scheduling decision payload. When Fallback is set
// the catalog had nothing to serve (empty song or everything mastered with
// no unseen measures) and Measure holds the default of 1.
type Recommendation struct {
	GroupID       string
	Measure       int
	EndMeasure    int
	IsGroup       bool
	Category      rating.Category
	BestScore     int
	PracticeCount int
	LastPracticed time.Time
	Window        int
	Fallback      bool
}

// Option customizes scheduler construction.
type Option func(*Scheduler)

// WithRand injects the random source used by the selector.
func WithRand(rng RandSource) Option {
	return func(s *Scheduler) { s.rng = rng }
}

// WithChances overrides the review/decent sampling band. review is the
// probability of serving a random proficient candidate; decent is the upper
// bound of the combined band that samples a decent candidate.
func WithChances(review, decent float64) Option {
	return func(s *Scheduler) {
		s.reviewChance = review
		s.decentChance = decent
	}
}

// WithLogger attaches a logger for decision tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = logger }
}

// Scheduler recommends the next measure or measure-group to practice. It is
// a pure computation over the catalog; the injected random source is the
// only non-determinism and invocations for different songs share no mutable
// state beyond it.
type Scheduler struct {
	source       Source
	rng          RandSource
	logger       *slog.Logger
	reviewChance float64
	decentChance float64
}

// New constructs a scheduler over the given source. Without options it uses
// the documented 0.15/0.45 sampling band and a time-seeded random source.
func New(source Source, opts ...Option) *Scheduler {
	s := &Scheduler{
		source:       source,
		rng:          newLockedRand(time.Now().UnixNano()),
		logger:       logging.NewNop(),
		reviewChance: 0.15,
		decentChance: 0.45,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next recommends the next item to practice for a song. It fails only when
// the song is unknown; a song without practiceable items resolves to the
// default recommendation of measure 1.
func (s *Scheduler) Next(ctx context.Context, songID int64) (*Recommendation, error) {
	exists, err := s.source.SongExists(ctx, songID)
	if err != nil {
		return nil, fmt.Errorf("check song: %w", err)
	}
	if !exists {
		return nil, services.Wrap(services.ErrNotFound, "scheduler", "next",
			fmt.Sprintf("song %d", songID), nil)
	}

	groups, err := s.source.CatalogGroups(ctx, songID)
	if err != nil {
		return nil, fmt.Errorf("load groups: %w", err)
	}
	records, err := s.source.CatalogRatings(ctx, songID)
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}

	cat := catalog.Build(groups, records)
	rec := s.recommend(cat)

	logger := logging.WithContext(ctx, s.logger).With(
		logging.String(logging.FieldComponent, "scheduler"),
		logging.Int64(logging.FieldSongID, songID),
	)
	if rec.Fallback {
		logger.Info("no candidates, serving default measure",
			logging.Int("window", rec.Window))
	} else {
		logger.Info("next item selected",
			logging.String(logging.FieldGroupID, rec.GroupID),
			logging.String("category", rec.Category.String()),
			logging.Int("window", rec.Window),
			logging.Bool("is_group", rec.IsGroup))
	}
	return rec, nil
}

// recommend runs the window/eligibility/selection pipeline over an
// assembled catalog.
func (s *Scheduler) recommend(cat *catalog.Catalog) *Recommendation {
	if len(cat.Singles) == 0 {
		// No single measures at all; a groups-only song is degenerate and
		// gets the same default.
		return &Recommendation{Measure: 1, Fallback: true}
	}

	window := learningWindow(cat)
	candidates := eligible(cat, window)
	if len(candidates) == 0 {
		// Everything mastered and no unseen measures remain.
		return &Recommendation{Measure: 1, Window: window, Fallback: true}
	}

	item := s.pick(candidates)
	return &Recommendation{
		GroupID:       item.ID,
		Measure:       item.Start,
		EndMeasure:    item.End,
		IsGroup:       item.IsGroup(),
		Category:      item.Category(),
		BestScore:     item.BestScore(),
		PracticeCount: item.PracticeCount,
		LastPracticed: item.LastPracticed,
		Window:        window,
	}
}

// lockedRand guards a rand.Rand so concurrent scheduling requests can share
// the default source.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}
