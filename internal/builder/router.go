package builder

import (
	"fmt"
	"strings"

	"github.com/threeonelabs/storebuilder/internal/domain"
	"github.com/threeonelabs/storebuilder/internal/extract"
)

// routeEdit matches a free-form edit command against the intent gates in
// fixed priority order: hero → subheader → brand → add-pill → tone →
// fallback. The first matching gate wins even if a later gate's keywords
// also appear. A gate match with no usable captured value emits the
// intent's clarifying reply instead of mutating anything.
func (s *Session) routeEdit(text string) (string, domain.EditIntent) {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "hero") &&
		!strings.Contains(lower, "subheader") &&
		!strings.Contains(lower, "subtitle"):
		return s.editHero(text), domain.IntentSetHero

	case strings.Contains(lower, "subheader") ||
		strings.Contains(lower, "subtitle") ||
		strings.Contains(lower, "sub header") ||
		strings.Contains(lower, "sub-header"):
		return s.editSubheader(text), domain.IntentSetSubheader

	case strings.Contains(lower, "brand"):
		return s.editBrand(text), domain.IntentSetBrand

	case pillGate(lower):
		return s.editPill(text), domain.IntentAddPill

	case toneGate(lower):
		return s.editTone(text), domain.IntentSetTone

	default:
		return helpPrompt, domain.IntentUnrecognized
	}
}

func (s *Session) editHero(text string) string {
	value, ok := extract.HeroEdit(text)
	if !ok {
		return heroClarify
	}
	verb := "Updated"
	if s.profile.HeroHeader == "" {
		verb = "Added"
	}
	s.profile.HeroHeader = value
	return fmt.Sprintf("✅ %s hero header to \"%s\"", verb, value)
}

func (s *Session) editSubheader(text string) string {
	value, ok := extract.SubheaderEdit(text)
	if !ok {
		return subheaderClarify
	}
	verb := "Updated"
	if s.profile.HeroSubheader == "" {
		verb = "Added"
	}
	s.profile.HeroSubheader = value
	return fmt.Sprintf("✅ %s subheader to \"%s\"", verb, value)
}

func (s *Session) editBrand(text string) string {
	value, ok := extract.BrandEdit(text)
	if !ok {
		return brandClarify
	}
	s.profile.BrandName = value
	return fmt.Sprintf("✅ Updated brand name to \"%s\"", value)
}

// editPill appends a category pill independent of the product catalog.
// New pills borrow the first existing pill's image so the strip stays
// visually consistent.
func (s *Session) editPill(text string) string {
	name, ok := extract.PillName(text)
	if !ok {
		return pillClarify
	}
	image := domain.DefaultProductImage
	if len(s.profile.ProductPills) > 0 && s.profile.ProductPills[0].Image != "" {
		image = s.profile.ProductPills[0].Image
	}
	s.profile.ProductPills = append(s.profile.ProductPills, domain.Pill{Name: name, Image: image})
	return fmt.Sprintf("✅ Added \"%s\" to product pills", name)
}

func (s *Session) editTone(text string) string {
	tone, ok := extract.EditTone(text)
	if !ok {
		return toneClarify
	}
	s.profile.SalesTone = tone
	return fmt.Sprintf("✅ Updated sales tone to %s", tone)
}

func pillGate(lower string) bool {
	has := func(kw string) bool { return strings.Contains(lower, kw) }
	return (has("add") && has("product")) ||
		(has("product") && has("pill")) ||
		(has("add") && has("category"))
}

func toneGate(lower string) bool {
	for _, kw := range []string{"tone", "friendly", "professional", "casual", "luxury"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
