package tracker

import (
	"math"
	"testing"
)

func pageSections(ids ...string) *Catalog {
	sections := make([]Section, 0, len(ids))
	for _, id := range ids {
		sections = append(sections, Section{ID: id, Present: true})
	}
	return NewCatalog(sections...)
}

func seen(id string, ratio float64) Measurement {
	return Measurement{SectionID: id, Intersecting: ratio > 0, Ratio: ratio}
}

func TestTrackerScenario(t *testing.T) {
	tr := New(pageSections("home", "about", "skills"), nil)
	if got := tr.Current(); got != "home" {
		t.Fatalf("initial section = %q, want home", got)
	}

	tr.Observe(seen("about", 0.6))
	if got := tr.Current(); got != "about" {
		t.Fatalf("after about enters: %q, want about", got)
	}

	tr.Observe(seen("about", 0), seen("skills", 0.55))
	if got := tr.Current(); got != "skills" {
		t.Fatalf("after skills enters: %q, want skills", got)
	}
}

func TestTrackerTieBreakUsesDocumentOrder(t *testing.T) {
	tr := New(pageSections("home", "about", "skills", "projects"), nil)

	// Batch order must not matter.
	tr.Observe(seen("projects", 0.9), seen("skills", 0.5))
	if got := tr.Current(); got != "skills" {
		t.Fatalf("current = %q, want skills", got)
	}
}

func TestTrackerEmitsOnlyOnChange(t *testing.T) {
	tr := New(pageSections("home", "about", "skills"), nil)
	var changes []Change
	tr.Subscribe(func(c Change) { changes = append(changes, c) })

	ev := seen("about", 0.7)
	tr.Observe(ev)
	tr.Observe(ev)
	tr.Observe(seen("about", 0.8))

	if len(changes) != 1 {
		t.Fatalf("changes = %d, want 1: %+v", len(changes), changes)
	}
	want := Change{Previous: "home", Current: "about"}
	if changes[0] != want {
		t.Fatalf("change = %+v, want %+v", changes[0], want)
	}
}

func TestTrackerUnsubscribe(t *testing.T) {
	tr := New(pageSections("home", "about"), nil)
	calls := 0
	cancel := tr.Subscribe(func(Change) { calls++ })
	tr.Observe(seen("about", 1))
	cancel()
	tr.Observe(seen("about", 0), seen("home", 1))
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestTrackerBelowThresholdKeepsCurrent(t *testing.T) {
	tr := New(pageSections("home", "about"), nil)
	tr.Observe(seen("about", 0.49))
	if got := tr.Current(); got != "home" {
		t.Fatalf("current = %q, want home", got)
	}
	tr.Observe(seen("about", 0.5))
	if got := tr.Current(); got != "about" {
		t.Fatalf("threshold is inclusive: current = %q, want about", got)
	}
}

func TestTrackerFallsBackToRetainedSection(t *testing.T) {
	tr := New(pageSections("home", "about", "skills"), nil)
	tr.Observe(seen("about", 0.6), seen("skills", 0.6))
	if got := tr.Current(); got != "about" {
		t.Fatalf("current = %q, want about", got)
	}

	// about leaves while skills is still above the threshold.
	tr.Observe(seen("about", 0.1))
	if got := tr.Current(); got != "skills" {
		t.Fatalf("current = %q, want skills", got)
	}
}

func TestTrackerSkipsAbsentSections(t *testing.T) {
	catalog := NewCatalog(
		Section{ID: "home", Present: true},
		Section{ID: "projects", Present: false},
		Section{ID: "contact", Present: true},
	)
	tr := New(catalog, nil)

	tr.Observe(seen("projects", 1), seen("ghost", 1))
	if got := tr.Current(); got != "home" {
		t.Fatalf("current = %q, want home", got)
	}
	if tr.Measured() {
		t.Fatal("absent sections must not count as measurements")
	}

	tr.Observe(seen("projects", 1), seen("contact", 0.6))
	if got := tr.Current(); got != "contact" {
		t.Fatalf("current = %q, want contact", got)
	}
}

func TestTrackerAlwaysOnDeclaredSection(t *testing.T) {
	tr := New(pageSections("home", "about", "skills", "projects", "experience", "contact"), nil)
	batches := [][]Measurement{
		{seen("contact", 1), seen("home", 0.2)},
		{seen("nope", 1)},
		{seen("skills", math.NaN())},
		{seen("experience", 7)},
		{seen("experience", -3), seen("about", 0.5)},
		{},
	}
	for i, b := range batches {
		tr.Observe(b...)
		if !tr.Catalog().Selectable(tr.Current()) {
			t.Fatalf("batch %d: current %q is not a selectable section", i, tr.Current())
		}
	}
	if got := tr.Current(); got != "about" {
		t.Fatalf("current = %q, want about", got)
	}
}

func TestTrackerInitialSection(t *testing.T) {
	tests := []struct {
		name    string
		catalog *Catalog
		want    string
	}{
		{"first present", NewCatalog(Section{ID: "intro"}, Section{ID: "about", Present: true}), "about"},
		{"empty page", NewCatalog(), DefaultSection},
		{"nil catalog", nil, DefaultSection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.catalog, nil).Current(); got != tt.want {
				t.Fatalf("initial = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrackerOffsetPolicy(t *testing.T) {
	tr := New(pageSections("home", "about", "skills"), AnchorOffset(DefaultOffset))

	// Every scroll reports the geometry of each section.
	tr.Observe(
		Measurement{SectionID: "home", Top: -700, Bottom: 100},
		Measurement{SectionID: "about", Top: 100, Bottom: 900},
		Measurement{SectionID: "skills", Top: 900, Bottom: 1500},
	)
	if got := tr.Current(); got != "home" {
		t.Fatalf("both edges on the probe line: %q, want home (first in order)", got)
	}

	tr.Observe(
		Measurement{SectionID: "home", Top: -750, Bottom: 50},
		Measurement{SectionID: "about", Top: 50, Bottom: 850},
		Measurement{SectionID: "skills", Top: 850, Bottom: 1450},
	)
	if got := tr.Current(); got != "about" {
		t.Fatalf("current = %q, want about", got)
	}
}

func TestCatalogDropsDuplicates(t *testing.T) {
	c := NewCatalog(
		Section{ID: "home", Present: true},
		Section{ID: ""},
		Section{ID: "home", Label: "again"},
		Section{ID: "about", Present: true},
	)
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}
	s, ok := c.Lookup("about")
	if !ok || s.Order != 1 {
		t.Fatalf("about = %+v, %v; want order 1", s, ok)
	}
}
