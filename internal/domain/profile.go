// Package domain holds the core types for the storefront agent builder.
package domain

import "strings"

// SalesTone is the voice the storefront agent speaks in.
type SalesTone string

const (
	ToneFriendly     SalesTone = "friendly"
	ToneProfessional SalesTone = "professional"
	ToneCasual       SalesTone = "casual"
	ToneLuxury       SalesTone = "luxury"
)

// AgentType classifies the kind of business the agent fronts.
type AgentType string

const (
	TypeECommerce AgentType = "eCommerce"
	TypeBusiness  AgentType = "Business"
)

// DefaultProductImage is the placeholder shown for products created
// without an image of their own.
const DefaultProductImage = "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?w=400"

// Product is a single catalog entry. Products are never mutated in place;
// replacement is by id match.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

// Pill is a display-only projection of a product or a manually added
// category. It has no identity of its own.
type Pill struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// AgentProfile is the structured storefront profile the builder assembles.
type AgentProfile struct {
	BrandName       string    `json:"brandName,omitempty"`
	HeroHeader      string    `json:"heroHeader,omitempty"`
	HeroSubheader   string    `json:"heroSubheader,omitempty"`
	Products        []Product `json:"products,omitempty"`
	ProductPills    []Pill    `json:"productPills,omitempty"`
	BackgroundImage string    `json:"backgroundImage,omitempty"`
	SalesTone       SalesTone `json:"salesTone,omitempty"`
	AgentType       AgentType `json:"agentType,omitempty"`
}

// Empty reports whether the profile carries no build progress. A profile
// with any of brand name, hero header, or products set counts as started.
func (p AgentProfile) Empty() bool {
	return p.BrandName == "" && p.HeroHeader == "" && len(p.Products) == 0
}

// Clone returns a deep copy so callers can hold a snapshot without
// aliasing the session's live slices.
func (p AgentProfile) Clone() AgentProfile {
	out := p
	if p.Products != nil {
		out.Products = make([]Product, len(p.Products))
		copy(out.Products, p.Products)
	}
	if p.ProductPills != nil {
		out.ProductPills = make([]Pill, len(p.ProductPills))
		copy(out.ProductPills, p.ProductPills)
	}
	return out
}

// URLSlug derives the published agent path from the brand name.
func (p AgentProfile) URLSlug() string {
	return strings.ReplaceAll(strings.ToLower(p.BrandName), " ", "-")
}

// PillsFromProducts rebuilds the pill projection from a product list,
// preserving order.
func PillsFromProducts(products []Product) []Pill {
	pills := make([]Pill, 0, len(products))
	for _, prod := range products {
		pills = append(pills, Pill{Name: prod.Name, Image: prod.Image})
	}
	return pills
}
