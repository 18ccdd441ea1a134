package rating_test

import (
	"errors"
	"testing"

	"etude/internal/rating"
	"etude/internal/services"
)

func TestScoreMapping(t *testing.T) {
	cases := []struct {
		r    rating.Rating
		want int
	}{
		{rating.Easy, 3},
		{rating.Medium, 2},
		{rating.Hard, 1},
		{rating.Snooze, 0},
	}
	for _, tc := range cases {
		if got := tc.r.Score(); got != tc.want {
			t.Errorf("%s.Score() = %d, want %d", tc.r, got, tc.want)
		}
	}
}

func TestParseAcceptsKnownSymbols(t *testing.T) {
	for _, input := range []string{"easy", "MEDIUM", " hard ", "Snooze"} {
		r, err := rating.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		if !r.Valid() {
			t.Fatalf("Parse(%q) returned invalid rating %q", input, r)
		}
	}
}

func TestParseRejectsUnknownSymbols(t *testing.T) {
	for _, input := range []string{"", "ok", "easyish", "4"} {
		_, err := rating.Parse(input)
		if err == nil {
			t.Fatalf("Parse(%q): expected error", input)
		}
		if !errors.Is(err, services.ErrValidation) {
			t.Fatalf("Parse(%q): expected validation error, got %v", input, err)
		}
	}
}

func TestBestScore(t *testing.T) {
	cases := []struct {
		name    string
		ratings []rating.Rating
		want    int
	}{
		{"empty", nil, 0},
		{"single snooze", []rating.Rating{rating.Snooze}, 0},
		{"max wins", []rating.Rating{rating.Hard, rating.Easy, rating.Medium}, 3},
		{"order irrelevant", []rating.Rating{rating.Medium, rating.Hard}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rating.BestScore(tc.ratings); got != tc.want {
				t.Fatalf("BestScore = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCategorizeThresholds(t *testing.T) {
	cases := []struct {
		ratings []rating.Rating
		want    rating.Category
	}{
		{nil, rating.Unlearned},
		{[]rating.Rating{rating.Snooze}, rating.Unlearned},
		{[]rating.Rating{rating.Hard}, rating.NeedsPractice},
		{[]rating.Rating{rating.Hard, rating.Medium}, rating.Decent},
		{[]rating.Rating{rating.Easy}, rating.Proficient},
		{[]rating.Rating{rating.Easy, rating.Hard}, rating.Proficient},
	}
	for _, tc := range cases {
		if got := rating.Categorize(tc.ratings); got != tc.want {
			t.Errorf("Categorize(%v) = %s, want %s", tc.ratings, got, tc.want)
		}
	}
}

func TestCategoryMonotonicInScore(t *testing.T) {
	prev := rating.Unlearned
	for score := 0; score <= 3; score++ {
		cat := rating.ForScore(score)
		if cat < prev {
			t.Fatalf("category regressed at score %d: %s < %s", score, cat, prev)
		}
		prev = cat
	}
	if rating.ForScore(3) != rating.Proficient {
		t.Fatal("score 3 must map to proficient")
	}
}
