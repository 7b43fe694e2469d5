// Package catalog manages the product list on an agent profile outside
// the conversational flow: the studio's add/edit/delete product surface.
// Every mutation rebuilds the pill projection from the product list; the
// conversational core never re-derives pills on this path's behalf.
package catalog

import (
	"github.com/google/uuid"
	"github.com/threeonelabs/storebuilder/internal/domain"
)

// Upsert inserts prod, or replaces the existing product with the same id.
// A missing id gets a fresh one; a missing image gets the placeholder.
// Returns the stored product.
func Upsert(profile *domain.AgentProfile, prod domain.Product) domain.Product {
	if prod.ID == "" {
		prod.ID = uuid.New().String()
	}
	if prod.Image == "" {
		prod.Image = domain.DefaultProductImage
	}

	replaced := false
	for i, existing := range profile.Products {
		if existing.ID == prod.ID {
			profile.Products[i] = prod
			replaced = true
			break
		}
	}
	if !replaced {
		profile.Products = append(profile.Products, prod)
	}

	profile.ProductPills = domain.PillsFromProducts(profile.Products)
	return prod
}

// Delete removes the product with the given id and renumbers the pill
// projection. Reports whether anything was removed.
func Delete(profile *domain.AgentProfile, id string) bool {
	kept := profile.Products[:0]
	removed := false
	for _, prod := range profile.Products {
		if prod.ID == id {
			removed = true
			continue
		}
		kept = append(kept, prod)
	}
	if !removed {
		return false
	}

	profile.Products = kept
	profile.ProductPills = domain.PillsFromProducts(profile.Products)
	return true
}
