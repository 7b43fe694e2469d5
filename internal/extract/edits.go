package extract

import (
	"regexp"
	"strings"

	"github.com/threeonelabs/storebuilder/internal/domain"
)

// Post-completion edit captures. Each pattern anchors on its keyword and
// captures the trailing value after a separator ("to", "is", ":", "=", or
// plain whitespace). The separator itself is consumed, so "change the hero
// to Summer Sale" captures "Summer Sale".
var (
	heroEditPattern      = regexp.MustCompile(`(?i)hero.*?(?:\s+(?:to|is)\s+|\s*[:=]\s*|\s+)(.+)$`)
	subheaderEditPattern = regexp.MustCompile(`(?i)(?:subheader|subtitle|sub[\s-]?header).*?(?:\s+(?:to|is)\s+|\s*[:=]\s*|\s+)(.+)$`)
	brandEditPattern     = regexp.MustCompile(`(?i)brand.*?(?:\s+(?:to|is)\s+|\s*[:=]\s*|\s+)(.+)$`)

	pillQuotedPattern  = regexp.MustCompile(`(?i)(?:add|pill|category).*?["']([^"']+)["']`)
	pillKeywordPattern = regexp.MustCompile(`(?i)(?:pill|category)s?\s*[:=]?\s*(.+)$`)
	pillAddPattern     = regexp.MustCompile(`(?i)add\s+(?:a\s+)?(?:product\s+)?(.+)$`)
)

// HeroEdit captures the new hero header from an edit command. The second
// return is false when the gate matched but no usable value was captured.
func HeroEdit(text string) (string, bool) {
	return captureValue(heroEditPattern, text)
}

// SubheaderEdit captures the new hero subheader from an edit command.
func SubheaderEdit(text string) (string, bool) {
	return captureValue(subheaderEditPattern, text)
}

// BrandEdit captures the new brand name from an edit command.
func BrandEdit(text string) (string, bool) {
	return captureValue(brandEditPattern, text)
}

// PillName captures the category name from an add-pill command. A quoted
// name wins; otherwise the trailing value after the "pill"/"category"
// keyword, or after "add" when neither keyword is present.
func PillName(text string) (string, bool) {
	if m := pillQuotedPattern.FindStringSubmatch(text); m != nil {
		if v := cleanCapture(m[1]); v != "" {
			return v, true
		}
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "pill") || strings.Contains(lower, "category") {
		if m := pillKeywordPattern.FindStringSubmatch(text); m != nil {
			if v := cleanCapture(m[1]); v != "" {
				return v, true
			}
		}
		return "", false
	}

	if m := pillAddPattern.FindStringSubmatch(text); m != nil {
		if v := cleanCapture(m[1]); v != "" {
			return v, true
		}
	}
	return "", false
}

// EditTone picks an explicit tone out of an edit command. Unlike Tone it
// has no default: a command that names no tone reports false so the router
// can ask for clarification instead of silently picking one.
func EditTone(text string) (domain.SalesTone, bool) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "friendly"):
		return domain.ToneFriendly, true
	case strings.Contains(lower, "professional"):
		return domain.ToneProfessional, true
	case strings.Contains(lower, "casual"):
		return domain.ToneCasual, true
	case strings.Contains(lower, "luxury"):
		return domain.ToneLuxury, true
	}
	return "", false
}

func captureValue(pattern *regexp.Regexp, text string) (string, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	v := cleanCapture(m[1])
	return v, v != ""
}

// cleanCapture strips one pair of surrounding quotes and trims whitespace.
func cleanCapture(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimPrefix(s, `'`)
	s = strings.TrimSuffix(s, `"`)
	s = strings.TrimSuffix(s, `'`)
	return strings.TrimSpace(s)
}
