// Package page composes the section tracker, viewport observer and mobile
// menu into the state machine behind one page view.
//
// Every browser signal is delivered to View.Dispatch as a discrete message
// and runs to completion before the next one. Views are not safe for
// concurrent use; the transport that owns a view dispatches from a single
// goroutine.
package page

import (
	"github.com/Zachkp/portfolio/internal/tracker"
	"github.com/Zachkp/portfolio/internal/viewport"
)

// Snapshot is the state the rendering layer reads.
type Snapshot struct {
	ActiveSection string           `json:"activeSection"`
	Scrolled      bool             `json:"scrolled"`
	Layout        viewport.Layout  `json:"layout"`
	MenuOpen      bool             `json:"menuOpen"`
	Pointer       viewport.Pointer `json:"pointer"`
}

// Listener receives page output. Any field may be nil.
type Listener struct {
	// State is called with the new snapshot whenever it changes.
	State func(Snapshot)
	// ScrollTo is called when the page asks the host to scroll a section
	// into view.
	ScrollTo func(sectionID string)
	// SectionChange is called when the active section changes.
	SectionChange func(tracker.Change)
}

// Options configures a View.
type Options struct {
	Predicate tracker.Predicate
	Viewport  viewport.Options
}

// View is the state of one page load.
type View struct {
	tracker   *tracker.Tracker
	observer  *viewport.Observer
	menu      *viewport.Menu
	last      Snapshot
	listeners []Listener
}

// NewView returns a view over the given sections.
func NewView(catalog *tracker.Catalog, opts Options) *View {
	menu := &viewport.Menu{}
	v := &View{
		tracker:  tracker.New(catalog, opts.Predicate),
		observer: viewport.NewObserver(menu, opts.Viewport),
		menu:     menu,
	}
	v.tracker.Subscribe(func(ch tracker.Change) {
		for _, l := range v.listeners {
			if l.SectionChange != nil {
				l.SectionChange(ch)
			}
		}
	})
	v.last = v.snapshot()
	return v
}

// Snapshot returns the current state.
func (v *View) Snapshot() Snapshot { return v.last }

// Catalog returns the sections of the page.
func (v *View) Catalog() *tracker.Catalog { return v.tracker.Catalog() }

// Subscribe registers l for page output.
func (v *View) Subscribe(l Listener) {
	v.listeners = append(v.listeners, l)
}

// Dispatch applies one signal and publishes the resulting snapshot if it
// differs from the previous one. It reports whether the state changed.
func (v *View) Dispatch(s Signal) bool {
	switch s := s.(type) {
	case Scroll:
		v.observer.OnScroll(s.Offset)
	case PointerMove:
		v.observer.OnPointerMove(s.X, s.Y)
	case Resize:
		v.observer.OnResize(s.Width)
	case Visibility:
		v.tracker.Observe(s.Entries...)
	case ToggleMenu:
		v.menu.Toggle()
	case Navigate:
		v.requestScroll(s.SectionID)
	}
	return v.publish()
}

// RequestScroll closes the menu and asks the host to scroll to sectionID.
// Unknown sections and sections without an anchor are ignored.
func (v *View) RequestScroll(sectionID string) bool {
	ok := v.requestScroll(sectionID)
	v.publish()
	return ok
}

func (v *View) requestScroll(sectionID string) bool {
	if !v.tracker.Catalog().Selectable(sectionID) {
		return false
	}
	v.menu.Close()
	for _, l := range v.listeners {
		if l.ScrollTo != nil {
			l.ScrollTo(sectionID)
		}
	}
	return true
}

func (v *View) publish() bool {
	next := v.snapshot()
	if next == v.last {
		return false
	}
	v.last = next
	for _, l := range v.listeners {
		if l.State != nil {
			l.State(next)
		}
	}
	return true
}

func (v *View) snapshot() Snapshot {
	vs := v.observer.State()
	return Snapshot{
		ActiveSection: v.tracker.Current(),
		Scrolled:      vs.Scrolled,
		Layout:        vs.Layout,
		MenuOpen:      v.menu.Open(),
		Pointer:       vs.Pointer,
	}
}
