package extract

import (
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`https?://\S+`)

// Background resolves a background-image turn. "skip", "default", and
// "no background" are an explicit opt-out; otherwise the first HTTP(S)
// URL in the text wins. Anything else is a silent no-op, not an error.
func Background(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.TrimSpace(lower) == "skip",
		strings.Contains(lower, "default"),
		strings.Contains(lower, "no background"):
		return ""
	case strings.Contains(lower, "http"):
		return urlPattern.FindString(text)
	default:
		return ""
	}
}
