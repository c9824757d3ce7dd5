package views

import (
	"fmt"
	"strings"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const wishlistMarker = "♥"

type ProductListOptions struct {
	Filter     domain.ProductFilter
	Categories domain.CategoryIndex
	Wishlist   domain.Wishlist
}

func RenderProducts(products []domain.Product, opts ProductListOptions) string {
	return page(func(s styles) string {
		return renderProducts(products, opts, s)
	})
}

func RenderProduct(product domain.Product, wishlisted bool) string {
	return page(func(s styles) string {
		return renderProduct(product, wishlisted, s)
	})
}

func RenderCategories(categories domain.CategoryIndex) string {
	return page(func(s styles) string {
		return renderCategories(categories, s)
	})
}

func renderProducts(products []domain.Product, opts ProductListOptions, s styles) string {
	lines := []string{
		s.title.Render("Products"),
		s.header.Render(fmt.Sprintf("products: %d  %s", len(products), filterLabel(opts.Filter))),
	}
	if len(opts.Categories) > 0 {
		lines = append(lines, s.faint.Render("categories: "+strings.Join(opts.Categories, ", ")))
	}

	if len(products) == 0 {
		lines = append(lines, s.empty.Render("No products match the current filters."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, p := range products {
		lines = append(lines, s.section.Render(productSummary(p, opts.Wishlist.Contains(p.ID), s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func productSummary(p domain.Product, wishlisted bool, s styles) string {
	title := s.name.Render(p.Name)
	if wishlisted {
		title += " " + s.marker.Render(wishlistMarker)
	}

	meta := fmt.Sprintf("%s  %s  %s", s.price.Render(formatPrice(p.Price)), p.Category, stockLabel(p, s))
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		s.detail.Render(meta),
		s.faint.Render("id: "+string(p.ID)),
	)
}

func renderProduct(p domain.Product, wishlisted bool, s styles) string {
	title := s.title.Render(p.Name)
	if wishlisted {
		title += " " + s.marker.Render(wishlistMarker+" in wishlist")
	}

	lines := []string{
		title,
		s.faint.Render("id: " + string(p.ID)),
		s.price.Render(formatPrice(p.Price)),
		s.detail.Render("category: " + categoryLabel(p.Category)),
		stockLabel(p, s),
	}
	if desc := strings.TrimSpace(p.Description); desc != "" {
		lines = append(lines, s.section.Render(s.detail.Render(desc)))
	}
	if len(p.Variants) > 0 {
		lines = append(lines, s.section.Render(s.detail.Render("variants: "+strings.Join(p.Variants, ", "))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCategories(categories domain.CategoryIndex, s styles) string {
	lines := []string{
		s.title.Render("Categories"),
		s.header.Render(fmt.Sprintf("categories: %d", len(categories))),
	}
	if len(categories) == 0 {
		lines = append(lines, s.empty.Render("No categories available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, c := range categories {
		lines = append(lines, s.detail.Render("- "+c))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func filterLabel(f domain.ProductFilter) string {
	parts := make([]string, 0, 3)
	if term := strings.TrimSpace(f.Search); term != "" {
		parts = append(parts, fmt.Sprintf("search=%q", term))
	}
	category := f.Category
	if category == "" {
		category = domain.AllCategories
	}
	parts = append(parts, "category="+category)
	parts = append(parts, fmt.Sprintf("price=%s-%s", formatPrice(f.MinPrice), formatPrice(f.MaxPrice)))
	return strings.Join(parts, " ")
}

func stockLabel(p domain.Product, s styles) string {
	if !p.InStock() {
		return s.warning.Render("out of stock")
	}
	return s.success.Render(fmt.Sprintf("%d in stock", p.Stock))
}

func categoryLabel(category string) string {
	if strings.TrimSpace(category) == "" {
		return domain.UncategorizedCategory
	}
	return category
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

func RenderProductNotFound(id domain.ProductID) string {
	return page(func(s styles) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render("Product not found"),
			s.empty.Render(fmt.Sprintf("No product with id %q.", id)),
		)
	})
}
