package stage

import "strings"

// SanitizeMessage collapses msg onto a single line.
func SanitizeMessage(msg string) string {
	s := strings.Join(strings.Fields(msg), " ")
	if s == "" {
		return "error"
	}
	return s
}
