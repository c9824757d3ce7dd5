package views

import (
	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	accessDeniedTitle   = "Access Denied"
	accessDeniedMessage = "You don't have permission to access this page."
)

func RenderProfile(user domain.User) string {
	return page(func(s styles) string {
		return renderProfile(user, s)
	})
}

// RenderAccessDenied is shown to signed-in users who lack the role a command
// requires.
func RenderAccessDenied() string {
	return page(func(s styles) string {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 2).
			Render(lipgloss.JoinVertical(lipgloss.Left,
				s.boxTitle.Render(accessDeniedTitle),
				s.detail.Render(accessDeniedMessage),
			))
	})
}

func renderProfile(user domain.User, s styles) string {
	role := string(user.Role)
	if role == "" {
		role = "none"
	}

	lines := []string{
		s.title.Render(user.DisplayName()),
		s.detail.Render("email: " + valueOrDash(user.Email)),
		s.detail.Render("role: " + role),
		s.faint.Render("id: " + string(user.ID)),
	}
	if user.HasRole(domain.RoleAdmin) {
		lines = append(lines, s.badge.Render("admin"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
