package domain

import "strings"

const (
	AllCategories   = "all"
	DefaultMinPrice = 0
	DefaultMaxPrice = 2000
)

type ProductFilter struct {
	Search   string
	Category string
	MinPrice float64
	MaxPrice float64
}

func DefaultProductFilter() ProductFilter {
	return ProductFilter{
		Category: AllCategories,
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
	}
}

func (f ProductFilter) Matches(p Product) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}

	if f.Category != "" && f.Category != AllCategories && p.Category != f.Category {
		return false
	}

	return p.Price >= f.MinPrice && p.Price <= f.MaxPrice
}

func (f ProductFilter) Apply(products []Product) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
