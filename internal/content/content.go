// Package content holds the portfolio's read-only records: projects,
// skills, work history and the bio copy.
package content

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when content fails validation.
var ErrInvalid = errors.New("invalid content")

// Category groups skills on the page.
type Category string

const (
	Frontend Category = "frontend"
	Backend  Category = "backend"
	Tools    Category = "tools"
)

// Categories lists skill categories in display order.
var Categories = []Category{Frontend, Backend, Tools}

// Label returns the heading shown above a category's skills.
func (c Category) Label() string {
	switch c {
	case Frontend:
		return "Frontend"
	case Backend:
		return "Backend"
	case Tools:
		return "Tools & Others"
	}
	return string(c)
}

type Project struct {
	ID           int      `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	RepoURL      string   `yaml:"repo_url" json:"repo_url"`
	LiveURL      string   `yaml:"live_url,omitempty" json:"live_url,omitempty"`
	Image        string   `yaml:"image" json:"image"`
	Featured     bool     `yaml:"featured" json:"featured"`
}

type Skill struct {
	Name     string   `yaml:"name" json:"name"`
	Level    int      `yaml:"level" json:"level"`
	Category Category `yaml:"category" json:"category"`
}

type Experience struct {
	Company    string   `yaml:"company" json:"company"`
	Position   string   `yaml:"position" json:"position"`
	Duration   string   `yaml:"duration" json:"duration"`
	Location   string   `yaml:"location" json:"location"`
	LogoPath   string   `yaml:"logo,omitempty" json:"logo,omitempty"`
	Highlights []string `yaml:"highlights" json:"highlights"`
}

// Education is a degree or certification.
type Education struct {
	Credential  string   `yaml:"credential" json:"credential"`
	Institution string   `yaml:"institution" json:"institution"`
	Duration    string   `yaml:"duration" json:"duration"`
	Highlights  []string `yaml:"highlights" json:"highlights"`
}

// Links are the owner's public profiles.
type Links struct {
	GitHub   string `yaml:"github" json:"github"`
	LinkedIn string `yaml:"linkedin" json:"linkedin"`
	Email    string `yaml:"email" json:"email"`
}

// Profile is the hero and about copy. Bio paragraphs are markdown.
type Profile struct {
	Name    string   `yaml:"name" json:"name"`
	Tagline string   `yaml:"tagline" json:"tagline"`
	Intro   string   `yaml:"intro" json:"intro"`
	Bio     []string `yaml:"bio" json:"bio"`
	Links   Links    `yaml:"links" json:"links"`
}

// Document is the serialized form of a Store.
type Document struct {
	Profile     Profile      `yaml:"profile" json:"profile"`
	Projects    []Project    `yaml:"projects" json:"projects"`
	Skills      []Skill      `yaml:"skills" json:"skills"`
	Experiences []Experience `yaml:"experience" json:"experience"`
	Education   []Education  `yaml:"education,omitempty" json:"education,omitempty"`
}

// Store is an immutable content collection. Accessors return copies.
type Store struct {
	doc Document
}

// New validates doc and returns a store over a private copy of it.
func New(doc Document) (*Store, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &Store{doc: doc.clone()}, nil
}

// Load reads a YAML content file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing content %s: %w", path, err)
	}
	return New(doc)
}

func (s *Store) Profile() Profile {
	p := s.doc.Profile
	p.Bio = append([]string(nil), p.Bio...)
	return p
}

func (s *Store) Projects() []Project { return s.doc.clone().Projects }

func (s *Store) Experiences() []Experience { return s.doc.clone().Experiences }

func (s *Store) Education() []Education { return s.doc.clone().Education }

// Document returns a copy of the whole collection.
func (s *Store) Document() Document { return s.doc.clone() }

// YAML encodes the collection in the format Load reads.
func (s *Store) YAML() ([]byte, error) {
	return yaml.Marshal(s.doc)
}

// SkillGroup is the skills of one category.
type SkillGroup struct {
	Category Category
	Label    string
	Skills   []Skill
}

// SkillGroups returns skills grouped by category in display order. Empty
// categories are omitted.
func (s *Store) SkillGroups() []SkillGroup {
	var groups []SkillGroup
	for _, c := range Categories {
		g := SkillGroup{Category: c, Label: c.Label()}
		for _, sk := range s.doc.Skills {
			if sk.Category == c {
				g.Skills = append(g.Skills, sk)
			}
		}
		if len(g.Skills) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Validate checks required fields and value ranges.
func (d Document) Validate() error {
	var problems []string
	if strings.TrimSpace(d.Profile.Name) == "" {
		problems = append(problems, "profile name is required")
	}
	for i, p := range d.Projects {
		if strings.TrimSpace(p.Title) == "" {
			problems = append(problems, fmt.Sprintf("project %d: title is required", i))
		}
	}
	for i, sk := range d.Skills {
		if strings.TrimSpace(sk.Name) == "" {
			problems = append(problems, fmt.Sprintf("skill %d: name is required", i))
		}
		if sk.Level < 0 || sk.Level > 100 {
			problems = append(problems, fmt.Sprintf("skill %q: level %d out of range 0-100", sk.Name, sk.Level))
		}
		if !validCategory(sk.Category) {
			problems = append(problems, fmt.Sprintf("skill %q: unknown category %q", sk.Name, sk.Category))
		}
	}
	for i, e := range d.Experiences {
		if strings.TrimSpace(e.Company) == "" || strings.TrimSpace(e.Position) == "" {
			problems = append(problems, fmt.Sprintf("experience %d: company and position are required", i))
		}
	}
	for i, e := range d.Education {
		if strings.TrimSpace(e.Credential) == "" || strings.TrimSpace(e.Institution) == "" {
			problems = append(problems, fmt.Sprintf("education %d: credential and institution are required", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

func validCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (d Document) clone() Document {
	out := d
	out.Profile.Bio = append([]string(nil), d.Profile.Bio...)
	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		out.Projects[i] = p
	}
	out.Skills = append([]Skill(nil), d.Skills...)
	out.Experiences = make([]Experience, len(d.Experiences))
	for i, e := range d.Experiences {
		e.Highlights = append([]string(nil), e.Highlights...)
		out.Experiences[i] = e
	}
	if d.Education != nil {
		out.Education = make([]Education, len(d.Education))
		for i, e := range d.Education {
			e.Highlights = append([]string(nil), e.Highlights...)
			out.Education[i] = e
		}
	}
	return out
}
