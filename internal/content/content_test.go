package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultContent(t *testing.T) {
	s := Default()
	if got := len(s.Projects()); got != 4 {
		t.Errorf("projects = %d, want 4", got)
	}
	if got := len(s.Experiences()); got != 2 {
		t.Errorf("experiences = %d, want 2", got)
	}
	for _, e := range s.Experiences() {
		if len(e.Highlights) == 0 {
			t.Errorf("experience %q has no highlights", e.Company)
		}
	}
	edu := s.Education()
	if len(edu) != 2 || edu[0].Institution != "Western Governors University" {
		t.Errorf("education = %+v", edu)
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	s := Default()
	projects := s.Projects()
	projects[0].Title = "changed"
	projects[0].Technologies[0] = "changed"
	exp := s.Experiences()
	exp[0].Highlights[0] = "changed"

	if s.Projects()[0].Title == "changed" || s.Projects()[0].Technologies[0] == "changed" {
		t.Fatal("project mutation leaked into the store")
	}
	if s.Experiences()[0].Highlights[0] == "changed" {
		t.Fatal("experience mutation leaked into the store")
	}

	doc := s.Document()
	doc.Education[0].Highlights[0] = "changed"
	doc.Profile.Bio[0] = "changed"
	if s.Education()[0].Highlights[0] == "changed" || s.Profile().Bio[0] == "changed" {
		t.Fatal("document mutation leaked into the store")
	}
}

func TestSkillGroups(t *testing.T) {
	s, err := New(Document{
		Profile: Profile{Name: "Test"},
		Skills: []Skill{
			{Name: "Git", Level: 90, Category: Tools},
			{Name: "React", Level: 95, Category: Frontend},
			{Name: "Docker", Level: 75, Category: Tools},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	groups := s.SkillGroups()
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2 (empty backend omitted)", len(groups))
	}
	if groups[0].Category != Frontend || groups[1].Category != Tools {
		t.Fatalf("group order = %s, %s", groups[0].Category, groups[1].Category)
	}
	if groups[1].Label != "Tools & Others" {
		t.Fatalf("tools label = %q", groups[1].Label)
	}
	if len(groups[1].Skills) != 2 || groups[1].Skills[0].Name != "Git" {
		t.Fatalf("tools skills = %+v", groups[1].Skills)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		message string
	}{
		{"missing name", Document{}, "profile name is required"},
		{"bad level", Document{Profile: Profile{Name: "x"}, Skills: []Skill{{Name: "Go", Level: 101, Category: Backend}}}, "out of range"},
		{"bad category", Document{Profile: Profile{Name: "x"}, Skills: []Skill{{Name: "Go", Level: 10, Category: "devops"}}}, "unknown category"},
		{"untitled project", Document{Profile: Profile{Name: "x"}, Projects: []Project{{ID: 1}}}, "title is required"},
		{"bare experience", Document{Profile: Profile{Name: "x"}, Experiences: []Experience{{Company: "Acme"}}}, "company and position"},
		{"bare education", Document{Profile: Profile{Name: "x"}, Education: []Education{{Credential: "BSc"}}}, "credential and institution"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.doc)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Fatalf("err = %v, want %q", err, tt.message)
			}
		})
	}
}

func TestLoadRoundTripsYAML(t *testing.T) {
	data, err := Default().YAML()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := s.Profile().Name, Default().Profile().Name; got != want {
		t.Fatalf("name = %q, want %q", got, want)
	}
	if got := len(s.Education()); got != 2 {
		t.Fatalf("education = %d, want 2", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("profile: [unclosed"), 0o644)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parsing content") {
		t.Fatalf("err = %v, want parse error", err)
	}
}

func TestSectionsFollowContent(t *testing.T) {
	s, err := New(Document{
		Profile:  Profile{Name: "x"},
		Projects: []Project{{Title: "One"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	catalog := s.Sections()
	want := map[string]bool{
		"home": true, "about": false, "skills": false,
		"projects": true, "experience": false, "contact": true,
	}
	for _, sec := range catalog.Sections() {
		if sec.Present != want[sec.ID] {
			t.Errorf("%s present = %v, want %v", sec.ID, sec.Present, want[sec.ID])
		}
	}
	if sec, _ := catalog.Lookup("experience"); sec.Label != "Experience" {
		t.Errorf("label = %q, want Experience", sec.Label)
	}
}

func TestEducationAloneMarksExperiencePresent(t *testing.T) {
	s, err := New(Document{
		Profile:   Profile{Name: "x"},
		Education: []Education{{Credential: "BSc", Institution: "WGU"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if sec, _ := s.Sections().Lookup("experience"); !sec.Present {
		t.Fatal("experience should be present when only education is listed")
	}
}

func TestRenderer(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render("training **Muay Thai** <script>x</script>")
	if err != nil {
		t.Fatal(err)
	}
	html := string(out)
	if !strings.Contains(html, "<strong>Muay Thai</strong>") {
		t.Errorf("missing emphasis: %s", html)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("raw html was rendered: %s", html)
	}
}
