package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threeonelabs/storebuilder/internal/domain"
)

func TestBuildSequence_FullWalkthrough(t *testing.T) {
	s := newEmptySession(t)

	// Step 0: brand + type.
	r := s.SubmitTurn("I'm opening an ecommerce store called Lumen Goods")
	assert.True(t, r.AdvancedStep)
	assert.Equal(t, "Goods", r.Profile.BrandName)
	assert.Equal(t, domain.TypeECommerce, r.Profile.AgentType)
	assert.Contains(t, r.Reply, "hero section")
	assert.Equal(t, domain.StepHero, s.Step())

	// Step 1: hero copy.
	r = s.SubmitTurn("Premium Fashion for Modern Living\n20% off - Limited Time")
	assert.True(t, r.AdvancedStep)
	assert.Equal(t, "Premium Fashion for Modern Living", r.Profile.HeroHeader)
	assert.Equal(t, "20% off - Limited Time", r.Profile.HeroSubheader)
	assert.Contains(t, r.Reply, "products")

	// Step 2: catalog.
	r = s.SubmitTurn("T-Shirt $29, Hoodie $65, Cap $15")
	assert.True(t, r.AdvancedStep)
	require.Len(t, r.Profile.Products, 3)
	require.Len(t, r.Profile.ProductPills, 3)
	assert.Equal(t, "T-Shirt", r.Profile.ProductPills[0].Name)
	assert.Equal(t, "Hoodie", r.Profile.ProductPills[1].Name)
	assert.Equal(t, "Cap", r.Profile.ProductPills[2].Name)
	assert.Contains(t, r.Reply, "3 products added")

	// Step 3: background.
	r = s.SubmitTurn("https://images.example.com/bg.jpg")
	assert.True(t, r.AdvancedStep)
	assert.Equal(t, "https://images.example.com/bg.jpg", r.Profile.BackgroundImage)
	assert.Contains(t, r.Reply, "tone")

	// Step 4: tone, then complete.
	r = s.SubmitTurn("luxury please")
	assert.True(t, r.AdvancedStep)
	assert.Equal(t, domain.ToneLuxury, r.Profile.SalesTone)
	assert.Contains(t, r.Reply, "Congratulations")
	assert.Contains(t, r.Reply, "31labs.com/goods")
	assert.Equal(t, domain.StepComplete, s.Step())

	// Step 5 is terminal: further turns hit the edit router.
	r = s.SubmitTurn("hello there")
	assert.False(t, r.AdvancedStep)
	assert.Equal(t, domain.IntentUnrecognized, r.Intent)
	assert.Contains(t, r.Reply, "I can help you")
}

func TestStepBrand_FallbackBrand(t *testing.T) {
	s := newEmptySession(t)

	r := s.SubmitTurn("a little candle shop")

	assert.True(t, r.AdvancedStep)
	assert.Equal(t, "Your Brand", r.Profile.BrandName)
	// "shop" is not "store": classified as a generic business.
	assert.Equal(t, domain.TypeBusiness, r.Profile.AgentType)
}

func TestStepCatalog_HoldsOnZeroProducts(t *testing.T) {
	s := newEmptySession(t)
	s.SubmitTurn("Lumen store")
	s.SubmitTurn("Big Header")

	r := s.SubmitTurn("hmm, not sure yet")

	assert.False(t, r.AdvancedStep)
	assert.Empty(t, r.Profile.Products)
	assert.Contains(t, r.Reply, "T-Shirt $29")
	assert.Equal(t, domain.StepCatalog, s.Step())

	// Retrying with usable input advances.
	r = s.SubmitTurn("Candle $12")
	assert.True(t, r.AdvancedStep)
	require.Len(t, r.Profile.Products, 1)
	assert.Equal(t, domain.StepBackground, s.Step())
}

func TestStepBackground_OptOutVariants(t *testing.T) {
	for _, input := range []string{"skip", "no background please", "use default"} {
		t.Run(input, func(t *testing.T) {
			s := newEmptySession(t)
			s.SubmitTurn("Lumen store")
			s.SubmitTurn("Header")
			s.SubmitTurn("Candle $12")

			r := s.SubmitTurn(input)

			assert.True(t, r.AdvancedStep)
			assert.Equal(t, "", r.Profile.BackgroundImage)
		})
	}
}

func TestStepTone_DefaultsFriendly(t *testing.T) {
	s := newEmptySession(t)
	s.SubmitTurn("Lumen store")
	s.SubmitTurn("Header")
	s.SubmitTurn("Candle $12")
	s.SubmitTurn("skip")

	r := s.SubmitTurn("whatever feels right")

	assert.Equal(t, domain.ToneFriendly, r.Profile.SalesTone)
	assert.Equal(t, domain.StepComplete, s.Step())
}
