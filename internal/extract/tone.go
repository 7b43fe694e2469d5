package extract

import (
	"strings"

	"github.com/threeonelabs/storebuilder/internal/domain"
)

// Tone matches a sales tone by substring, defaulting to friendly. Used by
// the tone build step, which always advances.
func Tone(text string) domain.SalesTone {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "professional"):
		return domain.ToneProfessional
	case strings.Contains(lower, "casual"):
		return domain.ToneCasual
	case strings.Contains(lower, "luxury"):
		return domain.ToneLuxury
	default:
		return domain.ToneFriendly
	}
}
