package domain

import "strings"

const UncategorizedCategory = "Uncategorized"

type ProductID string

type Product struct {
	ID          ProductID
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	Image       string
	Variants    []string
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// HasVariant reports whether variant is one of the product's variants.
// The empty variant is always accepted.
func (p Product) HasVariant(variant string) bool {
	if variant == "" {
		return true
	}
	for _, v := range p.Variants {
		if v == variant {
			return true
		}
	}
	return false
}

// NewProduct is an admin submission for the catalog.
type NewProduct struct {
	Name        string  `validate:"required,max=200"`
	Description string  `validate:"max=5000"`
	Price       float64 `validate:"gte=0"`
	Category    string  `validate:"max=100"`
	Stock       int     `validate:"gte=0"`
	Image       string  `validate:"omitempty,url|datauri"`
}

// Normalize trims text fields and fills the default category.
func (p *NewProduct) Normalize() {
	if p == nil {
		return
	}

	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Category = strings.TrimSpace(p.Category)
	p.Image = strings.TrimSpace(p.Image)
	if p.Category == "" {
		p.Category = UncategorizedCategory
	}
}
