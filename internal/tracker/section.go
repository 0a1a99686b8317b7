package tracker

// Section is one named block of the page, in document order.
type Section struct {
	ID    string
	Order int
	Label string
	// Present reports whether the page rendered an anchor for the section.
	// Absent sections are never selectable.
	Present bool
}

// DefaultSection is the active section before anything has been measured
// when the page declares no sections of its own.
const DefaultSection = "home"

// Catalog is the ordered, immutable set of sections declared by a page.
type Catalog struct {
	sections []Section
	index    map[string]int
}

// NewCatalog builds a catalog from sections given in document order.
// Duplicate IDs keep their first occurrence; Order is reassigned from the
// slice position so it always matches document order.
func NewCatalog(sections ...Section) *Catalog {
	c := &Catalog{index: make(map[string]int, len(sections))}
	for _, s := range sections {
		if s.ID == "" {
			continue
		}
		if _, dup := c.index[s.ID]; dup {
			continue
		}
		s.Order = len(c.sections)
		c.index[s.ID] = s.Order
		c.sections = append(c.sections, s)
	}
	return c
}

// Sections returns a copy of the declared sections in document order.
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// Lookup returns the section with the given ID.
func (c *Catalog) Lookup(id string) (Section, bool) {
	i, ok := c.index[id]
	if !ok {
		return Section{}, false
	}
	return c.sections[i], true
}

// Selectable reports whether id names a declared section with an anchor.
func (c *Catalog) Selectable(id string) bool {
	s, ok := c.Lookup(id)
	return ok && s.Present
}

// Initial returns the section that is active before the first measurement.
func (c *Catalog) Initial() string {
	for _, s := range c.sections {
		if s.Present {
			return s.ID
		}
	}
	return DefaultSection
}

// Len returns the number of declared sections.
func (c *Catalog) Len() int { return len(c.sections) }
