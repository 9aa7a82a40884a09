// Package catalog provides the static, read-only product dataset the
// storefront sells from. The dataset is embedded at build time; there is
// no network fetch and no mutation.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

//go:embed products.json
var productsJSON []byte

// Catalog holds the immutable product set and the fixed category list.
// It is safe for concurrent use: nothing is mutated after construction.
type Catalog struct {
	products []model.Product
	byID     map[string]model.Product
	logger   zerolog.Logger
}

// Load parses the embedded dataset into a Catalog.
func Load(logger zerolog.Logger) (*Catalog, error) {
	return loadFrom(productsJSON, logger)
}

// LoadFrom parses a caller-supplied dataset, mainly for tests.
func LoadFrom(data []byte, logger zerolog.Logger) (*Catalog, error) {
	return loadFrom(data, logger)
}

func loadFrom(data []byte, logger zerolog.Logger) (*Catalog, error) {
	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse product dataset: %w", err)
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id in dataset: %s", p.ID)
		}
		byID[p.ID] = p
	}

	log := logger.With().Str("component", "catalog").Logger()
	log.Debug().Int("count", len(products)).Msg("catalogue loaded")

	return &Catalog{
		products: products,
		byID:     byID,
		logger:   log,
	}, nil
}

// All returns every product in dataset order. The returned slice is a
// copy; callers may reorder it freely.
func (c *Catalog) All() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID resolves a product id, returning model.ErrProductNotFound when it
// is not in the catalogue.
func (c *Catalog) ByID(id string) (*model.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		c.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}
	return &p, nil
}

// Featured returns the products flagged for the featured carousel.
func (c *Catalog) Featured() []model.Product {
	var featured []model.Product
	for _, p := range c.products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// Categories returns the fixed category list with the "All" sentinel
// first, preserving dataset order for the rest.
func (c *Catalog) Categories() []string {
	categories := []string{model.CategoryAll}
	seen := map[string]bool{}
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
