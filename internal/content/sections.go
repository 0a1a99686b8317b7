package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Zachkp/portfolio/internal/tracker"
)

// SectionIDs lists the page's sections in document order.
var SectionIDs = []string{"home", "about", "skills", "projects", "experience", "contact"}

var titleCase = cases.Title(language.English)

// SectionLabel returns the navigation label for a section ID.
func SectionLabel(id string) string {
	return titleCase.String(strings.ReplaceAll(id, "-", " "))
}

// Sections returns the page's section catalog. A section is present only
// when the store has something to render in it.
func (s *Store) Sections() *tracker.Catalog {
	sections := make([]tracker.Section, 0, len(SectionIDs))
	for _, id := range SectionIDs {
		sections = append(sections, tracker.Section{
			ID:      id,
			Label:   SectionLabel(id),
			Present: s.renders(id),
		})
	}
	return tracker.NewCatalog(sections...)
}

func (s *Store) renders(id string) bool {
	switch id {
	case "home":
		return true
	case "about":
		return len(s.doc.Profile.Bio) > 0
	case "skills":
		return len(s.doc.Skills) > 0
	case "projects":
		return len(s.doc.Projects) > 0
	case "experience":
		return len(s.doc.Experiences) > 0 || len(s.doc.Education) > 0
	case "contact":
		// The contact form is always rendered.
		return true
	}
	return false
}
