package extract

import "strings"

// Hero splits a turn into hero header and subheader. The first non-blank
// line becomes the header (whole trimmed input if no line survives), the
// second becomes the subheader. An empty subheader is a valid outcome.
func Hero(text string) (header, subheader string) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	header = strings.TrimSpace(text)
	if len(lines) > 0 {
		header = strings.TrimSpace(lines[0])
	}
	if len(lines) > 1 {
		subheader = strings.TrimSpace(lines[1])
	}
	return header, subheader
}
