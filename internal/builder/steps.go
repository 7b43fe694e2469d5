package builder

import (
	"fmt"

	"github.com/threeonelabs/storebuilder/internal/domain"
	"github.com/threeonelabs/storebuilder/internal/extract"
)

// applyStep runs the extractor bound to the current build step. A usable
// update advances the step and emits the next scripted prompt; the catalog
// step holds and asks again when no products were found.
func (s *Session) applyStep(text string) (reply string, advanced bool) {
	switch s.step {
	case domain.StepBrand:
		return s.stepBrand(text)
	case domain.StepHero:
		return s.stepHero(text)
	case domain.StepCatalog:
		return s.stepCatalog(text)
	case domain.StepBackground:
		return s.stepBackground(text)
	case domain.StepTone:
		return s.stepTone(text)
	default:
		// Unreachable: complete sessions dispatch to the edit router.
		return helpPrompt, false
	}
}

func (s *Session) stepBrand(text string) (string, bool) {
	name := extract.Brand(text)
	s.profile.BrandName = name
	s.profile.AgentType = extract.BusinessType(text)
	s.step = domain.StepHero
	return fmt.Sprintf(heroPromptFmt, name), true
}

func (s *Session) stepHero(text string) (string, bool) {
	header, subheader := extract.Hero(text)
	s.profile.HeroHeader = header
	s.profile.HeroSubheader = subheader
	s.step = domain.StepCatalog
	return catalogPrompt, true
}

func (s *Session) stepCatalog(text string) (string, bool) {
	products := extract.Catalog(text)
	if len(products) == 0 {
		s.log.Debug().Str("sessionId", s.id).Msg("catalog step found no products, holding")
		return catalogRetryPrompt, false
	}
	s.profile.Products = products
	s.profile.ProductPills = domain.PillsFromProducts(products)
	s.step = domain.StepBackground
	return fmt.Sprintf(backgroundPromptFmt, len(products)), true
}

func (s *Session) stepBackground(text string) (string, bool) {
	s.profile.BackgroundImage = extract.Background(text)
	s.step = domain.StepTone
	return tonePrompt, true
}

func (s *Session) stepTone(text string) (string, bool) {
	s.profile.SalesTone = extract.Tone(text)
	s.step = domain.StepComplete
	return fmt.Sprintf(completePromptFmt, s.profile.BrandName, s.profile.URLSlug()), true
}
