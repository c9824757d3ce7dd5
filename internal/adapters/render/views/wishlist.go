package views

import (
	"fmt"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func RenderWishlist(wishlist domain.Wishlist) string {
	return page(func(s styles) string {
		return renderWishlist(wishlist, s)
	})
}

// Entries are snapshots taken when they were added, so price and stock may
// differ from the live catalog.
func renderWishlist(wishlist domain.Wishlist, s styles) string {
	lines := []string{
		s.title.Render("Wishlist"),
		s.header.Render(fmt.Sprintf("saved: %d", len(wishlist))),
	}

	if len(wishlist) == 0 {
		lines = append(lines, s.empty.Render("Your wishlist is empty."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range wishlist {
		stock := s.success.Render(fmt.Sprintf("%d in stock", entry.Stock))
		if entry.Stock <= 0 {
			stock = s.warning.Render("out of stock")
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.name.Render(entry.Name)+" "+s.marker.Render(wishlistMarker),
			s.detail.Render(s.price.Render(formatPrice(entry.Price))+"  "+stock),
			s.faint.Render("id: "+string(entry.ID)),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
