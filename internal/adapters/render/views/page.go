package views

// page draws a static view with the shared styles. Static views print once;
// only Dashboard runs a bubbletea program.
func page(draw func(s styles) string) string {
	return draw(newStyles())
}
