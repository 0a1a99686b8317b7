package page

import "github.com/Zachkp/portfolio/internal/tracker"

// Signal is one discrete message delivered to a View.
type Signal interface {
	signal()
}

// Scroll reports the vertical scroll offset.
type Scroll struct{ Offset float64 }

// PointerMove reports the pointer position.
type PointerMove struct{ X, Y float64 }

// Resize reports the window width.
type Resize struct{ Width float64 }

// Visibility reports a batch of section measurements.
type Visibility struct{ Entries []tracker.Measurement }

// ToggleMenu is the user opening or closing the mobile menu.
type ToggleMenu struct{}

// Navigate asks the page to scroll a section into view.
type Navigate struct{ SectionID string }

func (Scroll) signal()      {}
func (PointerMove) signal() {}
func (Resize) signal()      {}
func (Visibility) signal()  {}
func (ToggleMenu) signal()  {}
func (Navigate) signal()    {}
