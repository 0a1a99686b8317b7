package main

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/live"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/tracker"
)

type server struct {
	cfg      *Config
	db       *store.DB
	content  *content.Store
	sections *tracker.Catalog
	md       *content.Renderer
	pageOpts page.Options
	mailer   Mailer
	admin    *adminAuth
}

func newServer(cfg *Config, db *store.DB, cs *content.Store, mailer Mailer) (*server, error) {
	opts, err := cfg.PageOptions()
	if err != nil {
		return nil, err
	}
	admin, err := newAdminAuth(cfg.Admin)
	if err != nil {
		return nil, err
	}
	return &server{
		cfg:      cfg,
		db:       db,
		content:  cs,
		sections: cs.Sections(),
		md:       content.NewRenderer(),
		pageOpts: opts,
		mailer:   mailer,
		admin:    admin,
	}, nil
}

func (s *server) routes() *gin.Engine {
	r := gin.Default()
	r.SetFuncMap(template.FuncMap{
		"markdown": s.md.MustRender,
		"join":     strings.Join,
	})
	r.LoadHTMLGlob(s.cfg.TemplatesGlob)

	r.Static("/images", s.cfg.ImagesDir)
	r.Static("/static", s.cfg.StaticDir)

	r.Use(s.visitorTrackingMiddleware())

	// Home page route
	r.GET("/", s.handleIndex)

	// Live section tracking for one page view
	r.GET("/live", s.handleLive)

	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", s.handleContact)

	s.setupAdminRoutes(r)
	return r
}

func (s *server) handleIndex(c *gin.Context) {
	profile := s.content.Profile()
	initial := page.NewView(s.sections, s.pageOpts).Snapshot()

	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile":     profile,
		"sections":    s.sections.Sections(),
		"state":       initial,
		"projects":    s.content.Projects(),
		"skillGroups": s.content.SkillGroups(),
		"experiences": s.content.Experiences(),
		"education":   s.content.Education(),
		"year":        time.Now().Year(),
	})
}

func (s *server) handleLive(c *gin.Context) {
	var hook live.SectionHook
	// Respect Do Not Track header
	if c.GetHeader("DNT") != "1" {
		hook = s.recordSection
	}
	live.NewHandler(s.sections, s.pageOpts, hook).ServeHTTP(c.Writer, c.Request)
}

func (s *server) recordSection(viewID string, ch tracker.Change) {
	go func() {
		if err := s.db.RecordSectionView(context.Background(), viewID, ch.Current); err != nil {
			log.Printf("Error recording section view: %v", err)
		}
	}()
}
