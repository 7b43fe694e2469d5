// Package extract holds the pure text extractors that turn one
// conversational turn into a candidate profile update. Each extractor is
// independent of the step controller so it can be tested on its own.
package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/threeonelabs/storebuilder/internal/domain"
)

// FallbackBrand is used when no token in the intake text qualifies as a
// brand name.
const FallbackBrand = "Your Brand"

// Brand picks a brand name out of free-form intake text: the last
// space-separated token whose first rune is uppercase and which is longer
// than one rune. Falls back to FallbackBrand, never fails.
func Brand(text string) string {
	brand := FallbackBrand
	for _, tok := range strings.Split(text, " ") {
		first, size := utf8.DecodeRuneInString(tok)
		if size == 0 {
			continue
		}
		if unicode.IsUpper(first) && utf8.RuneCountInString(tok) > 1 {
			brand = tok
		}
	}
	return brand
}

// BusinessType classifies the intake text as an eCommerce or generic
// business agent.
func BusinessType(text string) domain.AgentType {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "ecommerce") || strings.Contains(lower, "store") {
		return domain.TypeECommerce
	}
	return domain.TypeBusiness
}
