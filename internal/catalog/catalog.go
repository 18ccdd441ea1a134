package catalog

import (
	"sort"
	"time"

	"etude/internal/rating"
)

// Group is the persisted shape of a measure group: a contiguous run of
// measures practiced as one unit. Start == End denotes a single measure.
type Group struct {
	ID    string
	Start int
	End   int
}

// PracticeRecord is one logged practice attempt against a group, ordered by
// time at the source.
type PracticeRecord struct {
	GroupID     string
	Rating      rating.Rating
	PracticedAt time.Time
}

// Item is one practiceable unit together with its full rating history and
// derived stats. Items live only for the duration of one scheduling request.
type Item struct {
	ID            string
	Start         int
	End           int
	Ratings       []rating.Rating
	PracticeCount int
	LastPracticed time.Time
}

// IsGroup reports whether the item spans more than one measure.
func (i *Item) IsGroup() bool {
	return i.Start != i.End
}

// BestScore returns the maximum score across the item's history.
func (i *Item) BestScore() int {
	return rating.BestScore(i.Ratings)
}

// Category returns the item's proficiency bucket.
func (i *Item) Category() rating.Category {
	return rating.Categorize(i.Ratings)
}

// Catalog partitions a song's items into single measures (sorted by start
// index) and multi-measure groups (sorted by start, then end). The catalog
// is a read-only view; the scheduler never mutates it.
type Catalog struct {
	Singles []*Item
	Groups  []*Item
}

// Empty reports whether the song has no practiceable items at all.
func (c *Catalog) Empty() bool {
	return len(c.Singles) == 0 && len(c.Groups) == 0
}

// Build assembles a catalog from persisted groups and their time-ordered
// practice records. Construction is deterministic given identical inputs.
// Records referencing unknown groups are ignored; the store's foreign keys
// make that unreachable in practice.
func Build(groups []Group, records []PracticeRecord) *Catalog {
	items := make(map[string]*Item, len(groups))
	c := &Catalog{}

	for _, g := range groups {
		if g.Start > g.End || g.Start < 1 {
			continue
		}
		item := &Item{ID: g.ID, Start: g.Start, End: g.End}
		items[g.ID] = item
		if item.IsGroup() {
			c.Groups = append(c.Groups, item)
		} else {
			c.Singles = append(c.Singles, item)
		}
	}

	for _, rec := range records {
		item, ok := items[rec.GroupID]
		if !ok {
			continue
		}
		item.Ratings = append(item.Ratings, rec.Rating)
		item.PracticeCount++
		if rec.PracticedAt.After(item.LastPracticed) {
			item.LastPracticed = rec.PracticedAt
		}
	}

	sort.Slice(c.Singles, func(a, b int) bool {
		return c.Singles[a].Start < c.Singles[b].Start
	})
	sort.Slice(c.Groups, func(a, b int) bool {
		if c.Groups[a].Start != c.Groups[b].Start {
			return c.Groups[a].Start < c.Groups[b].Start
		}
		return c.Groups[a].End < c.Groups[b].End
	})

	return c
}
