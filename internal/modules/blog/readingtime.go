package blog

import "strings"

// wordsPerMinute is the assumed reading speed for the reading-time estimate.
const wordsPerMinute = 200

// CalculateReadingTime estimates reading time in minutes for the given
// content, rounding up. Any non-empty content reads as at least one minute.
func CalculateReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
