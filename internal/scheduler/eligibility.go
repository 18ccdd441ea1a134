package scheduler

import (
	"etude/internal/catalog"
	"etude/internal/rating"
)

// eligible narrows the catalog to the candidate set for one decision. Tiers
// are checked in strict precedence; the first non-empty tier wins:
//
//  1. singles inside the window that are not yet proficient
//  2. groups fully contained in the window that are not yet proficient
//  3. the next unseen single just past the window
//
// An empty result means everything reachable is mastered; the caller
// resolves that to the default recommendation.
func eligible(cat *catalog.Catalog, window int) []*catalog.Item {
	var tier []*catalog.Item
	for _, item := range cat.Singles {
		if item.Start > window {
			break
		}
		if item.Category() != rating.Proficient {
			tier = append(tier, item)
		}
	}
	if len(tier) > 0 {
		return tier
	}

	for _, item := range cat.Groups {
		if containedInWindow(item, window) && item.Category() != rating.Proficient {
			tier = append(tier, item)
		}
	}
	if len(tier) > 0 {
		return tier
	}

	for _, item := range cat.Singles {
		if item.Start > window {
			return []*catalog.Item{item}
		}
	}
	return nil
}
