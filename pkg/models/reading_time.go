package models

import "strings"

const wordsPerMinute = 200

// EstimateReadingTime returns minutes to read the given body, never
// less than 1 for non-trivial content.
func EstimateReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 1
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
