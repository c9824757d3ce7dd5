package views

import (
	"context"
	"fmt"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardLoaders supplies the dashboard's data. CartCount may be nil when
// nobody is signed in.
type DashboardLoaders struct {
	User          func() *domain.User
	WishlistCount func(ctx context.Context) int
	CartCount     func(ctx context.Context) (int, error)
}

// RefreshMsg asks the dashboard to reload the selected counts. The watch
// command sends one for every bus event and the r key sends a full one.
type RefreshMsg struct {
	Wishlist bool
	Cart     bool
}

type wishlistCountMsg struct {
	count int
}

type cartCountMsg struct {
	count int
	err   error
}

type Dashboard struct {
	ctx     context.Context
	loaders DashboardLoaders
	spinner spinner.Model
	styles  styles

	user      *domain.User
	wishlist  int
	cart      int
	cartKnown bool
	pending   int
	refreshes int
	quitting  bool
}

func NewDashboard(ctx context.Context, loaders DashboardLoaders) Dashboard {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Dashboard{
		ctx:     ctx,
		loaders: loaders,
		spinner: sp,
		styles:  newStyles(),
	}
}

func (d Dashboard) Init() tea.Cmd {
	return tea.Batch(d.spinner.Tick, func() tea.Msg {
		return RefreshMsg{Wishlist: true, Cart: true}
	})
}

func (d Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			d.quitting = true
			return d, tea.Quit
		case "r":
			return d.Update(RefreshMsg{Wishlist: true, Cart: true})
		}
		return d, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd
	case RefreshMsg:
		d.refreshes++
		d.user = d.currentUser()
		cmds := make([]tea.Cmd, 0, 2)
		if msg.Wishlist {
			cmds = append(cmds, d.loadWishlist())
		}
		if msg.Cart {
			cmds = append(cmds, d.loadCart())
		}
		d.pending += len(cmds)
		return d, tea.Batch(cmds...)
	case wishlistCountMsg:
		d.pending = max(d.pending-1, 0)
		d.wishlist = msg.count
		return d, nil
	case cartCountMsg:
		d.pending = max(d.pending-1, 0)
		if msg.err != nil {
			d.cartKnown = false
			return d, nil
		}
		d.cart = msg.count
		d.cartKnown = true
		return d, nil
	default:
		return d, nil
	}
}

func (d Dashboard) View() string {
	if d.quitting {
		return ""
	}

	s := d.styles
	user := s.faint.Render("not signed in")
	if d.user != nil {
		user = s.name.Render(d.user.DisplayName())
		if d.user.HasRole(domain.RoleAdmin) {
			user += " " + s.badge.Render("admin")
		}
	}

	cart := "-"
	if d.cartKnown {
		cart = fmt.Sprintf("%d", d.cart)
	}

	status := s.faint.Render("r refresh • q quit")
	if d.pending > 0 {
		status = d.spinner.View() + " " + s.faint.Render("refreshing...")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Storefront"),
		user,
		s.section.Render(
			s.badge.Render("cart")+" "+s.detail.Render(cart)+"   "+
				s.marker.Render(wishlistMarker)+" "+s.detail.Render(fmt.Sprintf("%d", d.wishlist)),
		),
		s.section.Render(status),
	)
}

func (d Dashboard) currentUser() *domain.User {
	if d.loaders.User == nil {
		return nil
	}
	return d.loaders.User()
}

func (d Dashboard) loadWishlist() tea.Cmd {
	ctx, load := d.ctx, d.loaders.WishlistCount
	return func() tea.Msg {
		if load == nil {
			return wishlistCountMsg{}
		}
		return wishlistCountMsg{count: load(ctx)}
	}
}

func (d Dashboard) loadCart() tea.Cmd {
	ctx, load := d.ctx, d.loaders.CartCount
	return func() tea.Msg {
		if load == nil {
			return cartCountMsg{err: domain.ErrLoginRequired}
		}
		count, err := load(ctx)
		return cartCountMsg{count: count, err: err}
	}
}
