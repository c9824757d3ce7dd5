package views

import (
	"fmt"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const orderDateLayout = "2006-01-02"

type OrdersOptions struct {
	// Admin adds the buyer column to each order.
	Admin bool
}

func RenderOrders(orders []domain.Order, opts OrdersOptions) string {
	return page(func(s styles) string {
		return renderOrders(orders, opts, s)
	})
}

func renderOrders(orders []domain.Order, opts OrdersOptions, s styles) string {
	title := "My Orders"
	if opts.Admin {
		title = "All Orders"
	}
	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("orders: %d", len(orders))),
	}

	if len(orders) == 0 {
		lines = append(lines, s.empty.Render("No orders yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, order := range orders {
		lines = append(lines, s.section.Render(orderLine(order, opts, s)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func orderLine(order domain.Order, opts OrdersOptions, s styles) string {
	head := s.name.Render("#"+order.ShortID()) + "  " + s.status.Render(statusLabel(order.Status))
	if opts.Admin {
		head += "  " + s.faint.Render("user ..."+order.ShortUserID())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		head,
		s.detail.Render(fmt.Sprintf("%s  items: %d  total: %s",
			orderDate(order),
			order.ItemCount(),
			s.price.Render(formatPrice(order.Total)),
		)),
	)
}

func statusLabel(status string) string {
	if status == "" {
		return "unknown"
	}
	return status
}

func orderDate(order domain.Order) string {
	if order.CreatedAt.IsZero() {
		return "-"
	}
	return order.CreatedAt.Format(orderDateLayout)
}
