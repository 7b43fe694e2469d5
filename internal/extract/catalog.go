package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/threeonelabs/storebuilder/internal/domain"
)

// productPattern matches "name, optional separator/currency, price" pairs
// like "T-Shirt $29" or "Hoodie: 65.00". Prices carry zero or exactly two
// fractional digits.
var productPattern = regexp.MustCompile(`([A-Za-z][A-Za-z0-9\s&'-]*?)\s*:?\s*\$?\s*(\d+(?:\.\d{2})?)`)

// Catalog scans a turn for product name/price pairs. Each match becomes a
// Product with a fresh id and the default placeholder image. A price that
// fails to parse drops that match only, never the whole turn. Zero matches
// is a valid empty result.
func Catalog(text string) []domain.Product {
	matches := productPattern.FindAllStringSubmatch(text, -1)
	var products []domain.Product
	for _, m := range matches {
		price, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		products = append(products, domain.Product{
			ID:    uuid.New().String(),
			Name:  strings.TrimSpace(m[1]),
			Price: price,
			Image: domain.DefaultProductImage,
		})
	}
	return products
}
