// Package query is the pure product filter and sort pipeline. It holds
// no state: every call recomputes the result from the full product set
// and the current parameters.
package query

import (
	"sort"
	"strings"

	"storefront/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the result ordering.
type SortKey string

const (
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating-desc"

	// SortNewest orders by reverse-lexicographic id. Ids are not
	// timestamps, so this is only an approximation of recency.
	SortNewest SortKey = "newest"
)

// Params are the filter and sort inputs. Zero values disable the
// corresponding filter: CategoryAll (or empty) for Category, an empty
// Search string, a MaxPrice of zero or less, and InStockOnly false.
type Params struct {
	Category    string
	Search      string
	MaxPrice    float64
	InStockOnly bool
	SortKey     SortKey
}

// Apply filters and sorts the product set. The input slice is never
// modified; the sort is stable, so dataset order breaks ties.
func Apply(products []model.Product, params Params) []model.Product {
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matches(p, params) {
			filtered = append(filtered, p)
		}
	}

	less := comparator(params.SortKey)
	if less != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			return less(filtered[i], filtered[j])
		})
	}

	return filtered
}

func matches(p model.Product, params Params) bool {
	if params.Category != "" && params.Category != model.CategoryAll && p.Category != params.Category {
		return false
	}

	if params.Search != "" {
		needle := strings.ToLower(params.Search)
		name := strings.ToLower(p.Name)
		description := strings.ToLower(p.Description)
		if !strings.Contains(name, needle) && !strings.Contains(description, needle) {
			return false
		}
	}

	if params.MaxPrice > 0 && p.Price > params.MaxPrice {
		return false
	}

	if params.InStockOnly && !p.InStock {
		return false
	}

	return true
}

// comparator returns the less function for a sort key, or nil when the
// key is unknown and the filtered order should be left untouched.
func comparator(key SortKey) func(a, b model.Product) bool {
	switch key {
	case SortNameAsc:
		// Collators carry internal buffers, so each sort gets its own.
		c := collate.New(language.English)
		return func(a, b model.Product) bool {
			return c.CompareString(a.Name, b.Name) < 0
		}
	case SortNameDesc:
		c := collate.New(language.English)
		return func(a, b model.Product) bool {
			return c.CompareString(b.Name, a.Name) < 0
		}
	case SortPriceAsc:
		return func(a, b model.Product) bool {
			return a.Price < b.Price
		}
	case SortPriceDesc:
		return func(a, b model.Product) bool {
			return b.Price < a.Price
		}
	case SortRatingDesc:
		return func(a, b model.Product) bool {
			return b.Rating < a.Rating
		}
	case SortNewest:
		return func(a, b model.Product) bool {
			return b.ID < a.ID
		}
	default:
		return nil
	}
}
