package utils

import "unicode/utf8"

// Truncate shortens content to at most maxLen bytes without splitting a
// rune, marking the cut with "...".
func Truncate(content string, maxLen int) string {
	if maxLen <= 0 || len(content) <= maxLen {
		return content
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + "..."
}
