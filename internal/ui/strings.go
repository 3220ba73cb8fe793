package ui

import "strings"

// excerptLimit is how much of a description the list shows.
const excerptLimit = 100

// Excerpt shortens a description to its first 100 characters followed by "...".
func Excerpt(description string) string {
	description = strings.TrimSpace(description)
	runes := []rune(description)
	if len(runes) <= excerptLimit {
		return description
	}
	return string(runes[:excerptLimit]) + "..."
}
