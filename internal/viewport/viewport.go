// Package viewport turns raw browser signals into derived layout state.
package viewport

import "math"

// Layout is the responsive layout variant selected by window width.
type Layout string

const (
	Compact Layout = "compact"
	Wide    Layout = "wide"
)

const (
	// DefaultScrollThreshold is the offset past which the page counts as
	// scrolled. The comparison is strict.
	DefaultScrollThreshold = 50.0
	// DefaultBreakpoint is the narrowest width that uses the wide layout.
	DefaultBreakpoint = 1280.0
)

// Pointer is the position of the latest pointer-move event.
type Pointer struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// State is the derived viewport state of one page view.
type State struct {
	Scrolled bool    `json:"scrolled"`
	Layout   Layout  `json:"layout"`
	Pointer  Pointer `json:"pointer"`
}

// Options configures an Observer. Zero values select the defaults.
type Options struct {
	ScrollThreshold float64
	Breakpoint      float64
	// InitialWidth seeds the layout before the first resize signal.
	InitialWidth float64
}

// Observer derives State from scroll, pointer and resize signals. Crossing
// the layout breakpoint closes the menu it was given.
type Observer struct {
	scrollThreshold float64
	breakpoint      float64
	menu            *Menu
	state           State
}

// NewObserver returns an observer wired to menu. menu may be nil.
func NewObserver(menu *Menu, opts Options) *Observer {
	if opts.ScrollThreshold <= 0 {
		opts.ScrollThreshold = DefaultScrollThreshold
	}
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = DefaultBreakpoint
	}
	o := &Observer{
		scrollThreshold: opts.ScrollThreshold,
		breakpoint:      opts.Breakpoint,
		menu:            menu,
	}
	o.state.Layout = o.layoutFor(clamp(opts.InitialWidth))
	return o
}

// State returns the current derived state.
func (o *Observer) State() State { return o.state }

// OnScroll records a vertical scroll offset. Negative offsets count as zero.
func (o *Observer) OnScroll(offset float64) {
	o.state.Scrolled = clamp(offset) > o.scrollThreshold
}

// OnPointerMove records the pointer position.
func (o *Observer) OnPointerMove(x, y float64) {
	o.state.Pointer = Pointer{X: clamp(x), Y: clamp(y)}
}

// OnResize records the window width and switches layout. The menu is
// closed whenever the layout changes.
func (o *Observer) OnResize(width float64) {
	next := o.layoutFor(clamp(width))
	if next == o.state.Layout {
		return
	}
	o.state.Layout = next
	if o.menu != nil {
		o.menu.Close()
	}
}

func (o *Observer) layoutFor(width float64) Layout {
	if width >= o.breakpoint {
		return Wide
	}
	return Compact
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}
