package scheduler

import (
	"etude/internal/catalog"
	"etude/internal/rating"
)

// learningWindow computes the inclusive upper bound of single-measure
// indices currently in play. The window starts at 1 and grows one measure at
// a time, but only while every single inside it and every group fully
// contained in it is proficient. It never exceeds the total number of
// single measures, so the learner cannot jump ahead of unmastered material;
// singles past the cap are reachable only through the unseen-measure tier.
func learningWindow(cat *catalog.Catalog) int {
	total := len(cat.Singles)
	if total == 0 {
		return 0
	}

	window := 1
	for window < total {
		if !windowMastered(cat, window) {
			break
		}
		window++
	}
	return window
}

// windowMastered reports whether every single with start <= window and every
// group contained in [1, window] has reached proficient.
func windowMastered(cat *catalog.Catalog, window int) bool {
	for _, item := range cat.Singles {
		if item.Start > window {
			break
		}
		if item.Category() != rating.Proficient {
			return false
		}
	}
	for _, item := range cat.Groups {
		if !containedInWindow(item, window) {
			continue
		}
		if item.Category() != rating.Proficient {
			return false
		}
	}
	return true
}

func containedInWindow(item *catalog.Item, window int) bool {
	return item.Start >= 1 && item.End <= window
}
