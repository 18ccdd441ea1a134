package rating

import (
	"fmt"
	"strings"

	"etude/internal/services"
)

// Rating is a learner's self-assessed difficulty for one practice attempt.
type Rating string

const (
	Easy   Rating = "easy"
	Medium Rating = "medium"
	Hard   Rating = "hard"
	Snooze Rating = "snooze"
)

var scores = map[Rating]int{
	Easy:   3,
	Medium: 2,
	Hard:   1,
	Snooze: 0,
}

// Parse validates a raw rating symbol. Anything outside the four recognized
// symbols is rejected; callers at ingestion boundaries must not coerce.
func Parse(value string) (Rating, error) {
	r := Rating(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := scores[r]; !ok {
		return "", services.Wrap(services.ErrValidation, "rating", "parse",
			fmt.Sprintf("unknown rating %q (expected easy, medium, hard, or snooze)", value), nil)
	}
	return r, nil
}

// Valid reports whether r is one of the four recognized symbols.
func (r Rating) Valid() bool {
	_, ok := scores[r]
	return ok
}

// Score returns the numeric score for a rating: easy=3, medium=2, hard=1,
// snooze=0. Unknown symbols score 0; they are rejected upstream by Parse.
func (r Rating) Score() int {
	return scores[r]
}

// Category is a proficiency bucket derived from an item's rating history.
// The ordinal drives scheduling priority: lower categories are practiced
// first.
type Category int

const (
	Unlearned Category = iota
	NeedsPractice
	Decent
	Proficient
)

func (c Category) String() string {
	switch c {
	case Unlearned:
		return "unlearned"
	case NeedsPractice:
		return "needs_practice"
	case Decent:
		return "decent"
	case Proficient:
		return "proficient"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// BestScore returns the maximum score ever achieved across a rating history,
// or 0 for an empty history.
func BestScore(ratings []Rating) int {
	best := 0
	for _, r := range ratings {
		if score := r.Score(); score > best {
			best = score
		}
	}
	return best
}

// ForScore maps a best score to its proficiency category.
func ForScore(score int) Category {
	switch {
	case score >= 3:
		return Proficient
	case score >= 2:
		return Decent
	case score >= 1:
		return NeedsPractice
	default:
		return Unlearned
	}
}

// Categorize derives the proficiency category from a rating history.
func Categorize(ratings []Rating) Category {
	return ForScore(BestScore(ratings))
}
