// Package rating maps practice rating symbols to numeric scores and derives
// proficiency categories from rating histories. All functions are pure; the
// Category ordinal is the comparison key the scheduler sorts by.
package rating
