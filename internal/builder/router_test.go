package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threeonelabs/storebuilder/internal/domain"
)

// completedSession returns a session past the build sequence with a
// populated profile.
func completedSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(domain.AgentProfile{
		BrandName:     "Lumen",
		HeroHeader:    "Old Header",
		HeroSubheader: "Old Sub",
		Products:      []domain.Product{{ID: "p1", Name: "Candle", Price: 12, Image: "img-1"}},
		ProductPills:  []domain.Pill{{Name: "Candle", Image: "img-1"}},
		SalesTone:     domain.ToneFriendly,
		AgentType:     domain.TypeECommerce,
	}, nil, testLogger())
}

func TestRouteEdit_Hero(t *testing.T) {
	s := completedSession(t)

	r := s.SubmitTurn("change the hero to Summer Sale")

	assert.Equal(t, domain.IntentSetHero, r.Intent)
	assert.Equal(t, "Summer Sale", r.Profile.HeroHeader)
	assert.Contains(t, r.Reply, "Updated")
	assert.Contains(t, r.Reply, "Summer Sale")
}

func TestRouteEdit_HeroAddedWhenEmpty(t *testing.T) {
	s := NewSession(domain.AgentProfile{BrandName: "Lumen"}, nil, testLogger())

	r := s.SubmitTurn("hero: First Header")

	assert.Contains(t, r.Reply, "Added")
	assert.Equal(t, "First Header", r.Profile.HeroHeader)
}

func TestRouteEdit_SubheaderNeverTriggersHeroGate(t *testing.T) {
	s := completedSession(t)

	r := s.SubmitTurn("subheader: Free shipping today")

	assert.Equal(t, domain.IntentSetSubheader, r.Intent)
	assert.Equal(t, "Free shipping today", r.Profile.HeroSubheader)
	assert.Equal(t, "Old Header", r.Profile.HeroHeader)
}

func TestRouteEdit_HeroGateExcludesSubtitle(t *testing.T) {
	s := completedSession(t)

	r := s.SubmitTurn("change the hero subtitle to Deals Inside")

	assert.Equal(t, domain.IntentSetSubheader, r.Intent)
	assert.Equal(t, "Deals Inside", r.Profile.HeroSubheader)
	assert.Equal(t, "Old Header", r.Profile.HeroHeader)
}

func TestRouteEdit_Brand(t *testing.T) {
	s := completedSession(t)

	r := s.SubmitTurn("change brand to LUXE")

	assert.Equal(t, domain.IntentSetBrand, r.Intent)
	assert.Equal(t, "LUXE", r.Profile.BrandName)
	assert.Contains(t, r.Reply, "LUXE")
}

func TestRouteEdit_AddPill(t *testing.T) {
	s := completedSession(t)

	r := s.SubmitTurn("add product pill Hoodies")

	assert.Equal(t, domain.IntentAddPill, r.Intent)
	require.Len(t, r.Profile.ProductPills, 2)
	assert.Equal(t, "Hoodies", r.Profile.ProductPills[1].Name)
	// New pill borrows the first pill's image.
	assert.Equal(t, "img-1", r.Profile.ProductPills[1].Image)
	// Products are untouched: pills extended independently.
	assert.Len(t, r.Profile.Products, 1)
}

func TestRouteEdit_AddPill_NoExistingPills(t *testing.T) {
	s := NewSession(domain.AgentProfile{BrandName: "Lumen"}, nil, testLogger())

	r := s.SubmitTurn("add category Accessories")

	require.Len(t, r.Profile.ProductPills, 1)
	assert.Equal(t, "Accessories", r.Profile.ProductPills[0].Name)
	assert.Equal(t, domain.DefaultProductImage, r.Profile.ProductPills[0].Image)
}

func TestRouteEdit_Tone(t *testing.T) {
	s := completedSession(t)

	r := s.SubmitTurn("make it more professional")

	assert.Equal(t, domain.IntentSetTone, r.Intent)
	assert.Equal(t, domain.ToneProfessional, r.Profile.SalesTone)
	assert.Contains(t, r.Reply, "professional")
}

func TestRouteEdit_ClarifyOnEmptyCapture(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		intent    domain.EditIntent
		clarifies string
	}{
		{name: "hero no value", input: "hero", intent: domain.IntentSetHero, clarifies: "hero"},
		{name: "subheader no value", input: "subheader", intent: domain.IntentSetSubheader, clarifies: "subheader"},
		{name: "brand no value", input: "brand", intent: domain.IntentSetBrand, clarifies: "brand"},
		{name: "pill no value", input: "add product pill", intent: domain.IntentAddPill, clarifies: "pill"},
		{name: "tone no value", input: "change the tone", intent: domain.IntentSetTone, clarifies: "tone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := completedSession(t)
			before := s.Profile()

			r := s.SubmitTurn(tt.input)

			assert.Equal(t, tt.intent, r.Intent)
			assert.Contains(t, r.Reply, tt.clarifies)
			assert.Equal(t, before, r.Profile, "clarifying replies must not mutate the profile")
		})
	}
}

func TestRouteEdit_FallbackHelp(t *testing.T) {
	s := completedSession(t)
	before := s.Profile()

	r := s.SubmitTurn("what's the weather like")

	assert.Equal(t, domain.IntentUnrecognized, r.Intent)
	assert.Contains(t, r.Reply, "I can help you")
	assert.Equal(t, before, r.Profile)
}

func TestRouteEdit_PriorityOrder_HeroBeatsBrand(t *testing.T) {
	s := completedSession(t)

	// Both "hero" and "brand" appear; the hero gate is evaluated first.
	r := s.SubmitTurn("set the hero for my brand to Flash Sale")

	assert.Equal(t, domain.IntentSetHero, r.Intent)
	assert.Equal(t, "Lumen", r.Profile.BrandName)
}
