package scheduler

import (
	"testing"

	"etude/internal/catalog"
	"etude/internal/rating"
)

// stubRand returns fixed values so tests can force each selection branch.
type stubRand struct {
	f float64
	n int
}

func (s stubRand) Float64() float64 { return s.f }
func (s stubRand) Intn(n int) int   { return s.n % n }

func buildItems(t *testing.T, groups []catalog.Group, records []catalog.PracticeRecord) []*catalog.Item {
	t.Helper()
	cat := catalog.Build(groups, records)
	items := make([]*catalog.Item, 0, len(cat.Singles)+len(cat.Groups))
	items = append(items, cat.Singles...)
	items = append(items, cat.Groups...)
	return items
}

func mixedCandidates(t *testing.T) []*catalog.Item {
	t.Helper()
	groups := singles(3)
	var records []catalog.PracticeRecord
	records = append(records, practiced(measureID(1), rating.Easy)...)
	records = append(records, practiced(measureID(2), rating.Medium)...)
	return buildItems(t, groups, records)
}

func TestPickReviewBranchSamplesProficient(t *testing.T) {
	s := New(nil, WithRand(stubRand{f: 0.1}))
	got := s.pick(mixedCandidates(t))
	if got.Category() != rating.Proficient {
		t.Fatalf("picked %s (%s), want the proficient candidate", got.ID, got.Category())
	}
}

func TestPickDecentBranchSamplesDecent(t *testing.T) {
	s := New(nil, WithRand(stubRand{f: 0.3}))
	got := s.pick(mixedCandidates(t))
	if got.Category() != rating.Decent {
		t.Fatalf("picked %s (%s), want the decent candidate", got.ID, got.Category())
	}
}

func TestPickDeterministicAboveBand(t *testing.T) {
	s := New(nil, WithRand(stubRand{f: 0.9}))
	got := s.pick(mixedCandidates(t))
	// Priority order puts the unlearned measure 3 first.
	if got.ID != measureID(3) {
		t.Fatalf("picked %s, want %s", got.ID, measureID(3))
	}
}

func TestPickEmptyReviewBucketFallsThrough(t *testing.T) {
	// Low draw with no proficient candidates: the decent bucket still
	// matches because the draw is under both thresholds.
	candidates := buildItems(t, singles(2), practiced(measureID(1), rating.Medium))
	s := New(nil, WithRand(stubRand{f: 0.1}))
	got := s.pick(candidates)
	if got.Category() != rating.Decent {
		t.Fatalf("picked %s (%s), want the decent candidate", got.ID, got.Category())
	}
}

func TestPickEmptyBucketsFallToPriority(t *testing.T) {
	// All candidates unlearned: any draw resolves deterministically.
	candidates := buildItems(t, singles(3), nil)
	for _, f := range []float64{0.0, 0.2, 0.8} {
		s := New(nil, WithRand(stubRand{f: f}))
		got := s.pick(candidates)
		if got.ID != measureID(1) {
			t.Fatalf("draw %.1f picked %s, want %s", f, got.ID, measureID(1))
		}
	}
}

func TestPickCustomChances(t *testing.T) {
	s := New(nil, WithRand(stubRand{f: 0.5}), WithChances(0.6, 0.8))
	got := s.pick(mixedCandidates(t))
	if got.Category() != rating.Proficient {
		t.Fatalf("picked %s (%s), want proficient under widened review band", got.ID, got.Category())
	}
}

func TestPriorityPickOrdering(t *testing.T) {
	groups := singles(4)
	var records []catalog.PracticeRecord
	// Measure 1 decent with two sessions, measure 2 decent with one,
	// measures 3 and 4 unlearned.
	records = append(records, practiced(measureID(1), rating.Medium, rating.Medium)...)
	records = append(records, practiced(measureID(2), rating.Medium)...)
	items := buildItems(t, groups, records)

	got := priorityPick(items)
	if got.ID != measureID(3) {
		t.Fatalf("priority pick = %s, want unlearned %s", got.ID, measureID(3))
	}

	// Among equal categories the lower practice count wins.
	decents := items[:2]
	if got := priorityPick(decents); got.ID != measureID(2) {
		t.Fatalf("priority pick among decents = %s, want %s", got.ID, measureID(2))
	}
}

func TestEligibleTiers(t *testing.T) {
	groups := append(singles(3), catalog.Group{ID: "g1-2", Start: 1, End: 2})
	var records []catalog.PracticeRecord
	records = append(records, practiced(measureID(1), rating.Easy)...)
	records = append(records, practiced(measureID(2), rating.Easy)...)
	records = append(records, practiced("g1-2", rating.Hard)...)
	cat := catalog.Build(groups, records)

	// Window stalls at 2 because the contained group is weak.
	window := learningWindow(cat)
	if window != 2 {
		t.Fatalf("window = %d, want 2", window)
	}

	// Tier 1 is empty (both singles proficient), tier 2 serves the group.
	got := eligible(cat, window)
	if len(got) != 1 || got[0].ID != "g1-2" {
		t.Fatalf("eligible = %v, want just g1-2", ids(got))
	}

	// Once the group is proficient too, the window opens measure 3 and it
	// becomes the sole candidate.
	records = append(records, practiced("g1-2", rating.Easy)...)
	cat = catalog.Build(groups, records)
	window = learningWindow(cat)
	got = eligible(cat, window)
	if len(got) != 1 || got[0].ID != measureID(3) {
		t.Fatalf("eligible = %v, want just %s", ids(got), measureID(3))
	}
}

func TestEligibleExhaustedCatalog(t *testing.T) {
	var records []catalog.PracticeRecord
	for i := 1; i <= 3; i++ {
		records = append(records, practiced(measureID(i), rating.Easy)...)
	}
	cat := catalog.Build(singles(3), records)
	if got := eligible(cat, learningWindow(cat)); got != nil {
		t.Fatalf("eligible = %v, want nil for mastered catalog", ids(got))
	}
}

func ids(items []*catalog.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
