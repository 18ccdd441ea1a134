package scheduler

import (
	"etude/internal/catalog"
	"etude/internal/rating"
)

// pick chooses one candidate from a non-empty set. A single uniform draw
// decides between occasional review of mastered material (bottom slice of
// the band), a revisit of decent material (next slice), and the
// deterministic priority fallback: least-mastered, then least-practiced,
// then earliest in the song. When a targeted bucket is empty the draw falls
// through to the deterministic pick.
func (s *Scheduler) pick(candidates []*catalog.Item) *catalog.Item {
	var proficient, decent []*catalog.Item
	for _, item := range candidates {
		switch item.Category() {
		case rating.Proficient:
			proficient = append(proficient, item)
		case rating.Decent:
			decent = append(decent, item)
		}
	}

	r := s.rng.Float64()
	if r < s.reviewChance && len(proficient) > 0 {
		return proficient[s.rng.Intn(len(proficient))]
	}
	if r < s.decentChance && len(decent) > 0 {
		return decent[s.rng.Intn(len(decent))]
	}
	return priorityPick(candidates)
}

// priorityPick returns the minimum candidate ordered by (category ordinal,
// practice count, start index).
func priorityPick(candidates []*catalog.Item) *catalog.Item {
	best := candidates[0]
	for _, item := range candidates[1:] {
		if lessPriority(item, best) {
			best = item
		}
	}
	return best
}

func lessPriority(a, b *catalog.Item) bool {
	ca, cb := a.Category(), b.Category()
	if ca != cb {
		return ca < cb
	}
	if a.PracticeCount != b.PracticeCount {
		return a.PracticeCount < b.PracticeCount
	}
	return a.Start < b.Start
}
