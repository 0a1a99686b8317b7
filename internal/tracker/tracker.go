// Package tracker decides which single section of the page is active.
//
// A Tracker consumes batches of visibility measurements and keeps one
// current section. Which measurements count is decided by a Predicate, so
// the intersection-ratio policy and the older fixed-offset policy are both
// available. Ties inside a batch resolve to document order.
//
// A Tracker is not safe for concurrent use; it is owned by one page view
// and driven from a single goroutine.
package tracker

// Change describes a transition of the active section.
type Change struct {
	Previous string
	Current  string
}

type listener struct {
	id int
	fn func(Change)
}

// Tracker holds the active section of one page view.
type Tracker struct {
	catalog   *Catalog
	qualifies Predicate
	current   string
	measured  bool
	latest    map[string]Measurement
	listeners []listener
	nextID    int
}

// New returns a tracker over catalog using qualifies. A nil predicate
// selects the intersection policy at DefaultThreshold.
func New(catalog *Catalog, qualifies Predicate) *Tracker {
	if catalog == nil {
		catalog = NewCatalog()
	}
	if qualifies == nil {
		qualifies = IntersectionRatio(DefaultThreshold)
	}
	return &Tracker{
		catalog:   catalog,
		qualifies: qualifies,
		current:   catalog.Initial(),
		latest:    make(map[string]Measurement),
	}
}

// Current returns the active section ID.
func (t *Tracker) Current() string { return t.current }

// Measured reports whether any usable measurement has been observed.
func (t *Tracker) Measured() bool { return t.measured }

// Catalog returns the sections the tracker selects from.
func (t *Tracker) Catalog() *Catalog { return t.catalog }

// Subscribe registers fn to be called after every change of the active
// section. The returned func removes the subscription.
func (t *Tracker) Subscribe(fn func(Change)) func() {
	id := t.nextID
	t.nextID++
	t.listeners = append(t.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range t.listeners {
			if l.id == id {
				t.listeners = append(t.listeners[:i:i], t.listeners[i+1:]...)
				return
			}
		}
	}
}

// Observe applies one batch of measurements and returns the resulting
// change, if any. Measurements for unknown or absent sections are ignored.
func (t *Tracker) Observe(batch ...Measurement) (Change, bool) {
	best := -1
	for _, raw := range batch {
		s, ok := t.catalog.Lookup(raw.SectionID)
		if !ok || !s.Present {
			continue
		}
		m := raw.normalized()
		t.latest[s.ID] = m
		t.measured = true
		if t.qualifies(m, s) && (best < 0 || s.Order < best) {
			best = s.Order
		}
	}

	next := t.current
	switch {
	case best >= 0:
		next = t.catalog.sections[best].ID
	case !t.stillQualifies(t.current):
		if id, ok := t.firstQualifying(); ok {
			next = id
		}
	}
	return t.set(next)
}

// stillQualifies reports whether the last measurement retained for id
// qualifies. Sections that were never measured keep their standing.
func (t *Tracker) stillQualifies(id string) bool {
	m, ok := t.latest[id]
	if !ok {
		return true
	}
	s, _ := t.catalog.Lookup(id)
	return t.qualifies(m, s)
}

func (t *Tracker) firstQualifying() (string, bool) {
	for _, s := range t.catalog.sections {
		m, ok := t.latest[s.ID]
		if ok && s.Present && t.qualifies(m, s) {
			return s.ID, true
		}
	}
	return "", false
}

func (t *Tracker) set(id string) (Change, bool) {
	if id == t.current {
		return Change{}, false
	}
	ch := Change{Previous: t.current, Current: id}
	t.current = id
	for _, l := range t.listeners {
		l.fn(ch)
	}
	return ch, true
}
