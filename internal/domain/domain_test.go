package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgentProfile_Empty(t *testing.T) {
	tests := []struct {
		name    string
		profile AgentProfile
		want    bool
	}{
		{name: "zero value", profile: AgentProfile{}, want: true},
		{name: "brand only", profile: AgentProfile{BrandName: "LUXE"}, want: false},
		{name: "hero only", profile: AgentProfile{HeroHeader: "Welcome"}, want: false},
		{name: "products only", profile: AgentProfile{Products: []Product{{ID: "p1", Name: "Cap"}}}, want: false},
		{name: "subheader alone does not count", profile: AgentProfile{HeroSubheader: "20% off"}, want: true},
		{name: "background alone does not count", profile: AgentProfile{BackgroundImage: "https://x/img.png"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.Empty())
		})
	}
}

func TestAgentProfile_Clone(t *testing.T) {
	orig := AgentProfile{
		BrandName: "Nova",
		Products:  []Product{{ID: "p1", Name: "T-Shirt", Price: 29}},
		ProductPills: []Pill{
			{Name: "T-Shirt", Image: "https://x/img.png"},
		},
	}

	clone := orig.Clone()
	clone.Products[0].Name = "Hoodie"
	clone.ProductPills[0].Name = "Hoodie"

	assert.Equal(t, "T-Shirt", orig.Products[0].Name)
	assert.Equal(t, "T-Shirt", orig.ProductPills[0].Name)
}

func TestAgentProfile_URLSlug(t *testing.T) {
	p := AgentProfile{BrandName: "Lumen Goods"}
	assert.Equal(t, "lumen-goods", p.URLSlug())

	assert.Equal(t, "", AgentProfile{}.URLSlug())
}

func TestPillsFromProducts(t *testing.T) {
	products := []Product{
		{ID: "p1", Name: "T-Shirt", Price: 29, Image: "img-a"},
		{ID: "p2", Name: "Hoodie", Price: 65, Image: "img-b"},
	}

	pills := PillsFromProducts(products)

	assert.Equal(t, []Pill{
		{Name: "T-Shirt", Image: "img-a"},
		{Name: "Hoodie", Image: "img-b"},
	}, pills)

	assert.Empty(t, PillsFromProducts(nil))
}

func TestBuildStep_Complete(t *testing.T) {
	assert.False(t, StepBrand.Complete())
	assert.False(t, StepTone.Complete())
	assert.True(t, StepComplete.Complete())
}

func TestBuildStep_String(t *testing.T) {
	assert.Equal(t, "brand", StepBrand.String())
	assert.Equal(t, "complete", StepComplete.String())
	assert.Equal(t, "unknown", BuildStep(42).String())
}
