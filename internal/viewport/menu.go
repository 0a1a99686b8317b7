package viewport

// Menu is the mobile navigation menu's open flag.
type Menu struct {
	open bool
}

// Open reports whether the menu is open.
func (m *Menu) Open() bool { return m.open }

// Toggle flips the menu and returns the new value.
func (m *Menu) Toggle() bool {
	m.open = !m.open
	return m.open
}

// Close forces the menu closed.
func (m *Menu) Close() { m.open = false }
