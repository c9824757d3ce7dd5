package views

import (
	"fmt"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func RenderCart(cart domain.CartView) string {
	return page(func(s styles) string {
		return renderCart(cart, s)
	})
}

// RenderCheckout prints the external checkout page the user must open.
func RenderCheckout(url string) string {
	return page(func(s styles) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render("Checkout"),
			s.detail.Render("Continue to payment at:"),
			s.name.Render(url),
		)
	})
}

// renderCart lists only items whose product still resolves. Lines with a
// missing product are left out of the count and the total.
func renderCart(cart domain.CartView, s styles) string {
	items := cart.ValidItems()
	lines := []string{
		s.title.Render("Cart"),
		s.header.Render(fmt.Sprintf("items: %d", len(items))),
	}

	if len(items) == 0 {
		lines = append(lines, s.empty.Render("Your cart is empty."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, item := range items {
		lines = append(lines, s.section.Render(cartLine(item, s)))
	}
	lines = append(lines, s.section.Render(s.title.Render("Total: "+formatPrice(cart.Total()))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func cartLine(item domain.CartItem, s styles) string {
	name := s.name.Render(item.Product.Name)
	if item.Variant != "" {
		name += " " + s.faint.Render("("+item.Variant+")")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		name,
		s.detail.Render(fmt.Sprintf("%d x %s = %s",
			item.Quantity,
			formatPrice(item.Product.Price),
			s.price.Render(formatPrice(item.Subtotal())),
		)),
		s.faint.Render("id: "+string(item.Product.ID)),
	)
}
