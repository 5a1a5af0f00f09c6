package main

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ahzammaqsood/portfolio/internal/projects"
	"github.com/ahzammaqsood/portfolio/internal/store"
	"github.com/ahzammaqsood/portfolio/internal/tracking"
)

type server struct {
	cfg      Config
	log      *zap.Logger
	catalog  *projects.Catalog
	renderer *projects.Renderer
	store    *store.Store
	tracker  *tracking.Tracker
	mailer   Mailer
	admin    *adminAuth
	now      func() time.Time
}

// workCard is one tile of the work grid.
type workCard struct {
	ID           string
	Title        string
	Category     string
	ImageClass   string
	Summary      string
	Technologies []string
}

type workGrid struct {
	Active string
	Cards  []workCard
}

type pageData struct {
	Owner        string
	Theme        string
	About        string
	Typed        []TypedPhrase
	Services     []Service
	Stats        []Stat
	Skills       []Skill
	Filters      []string
	Work         workGrid
	Modal        template.HTML
	ModalOpen    bool
	ScrollLocked bool
}

// pageScroll tracks whether the rendered page must suppress scrolling
// behind an open project view.
type pageScroll struct {
	locked bool
}

func (p *pageScroll) Lock()   { p.locked = true }
func (p *pageScroll) Unlock() { p.locked = false }

func newRouter(s *server) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	static, err := staticFiles()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.log))
	r.Use(s.visitorTracking())
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(static))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Home page route
	r.GET("/", s.handleIndex)

	// HTMX fragments
	r.GET("/projects/:id", s.handleProjectFragment)
	r.GET("/work", s.handleWork)

	api := r.Group("/api")
	api.GET("/projects", s.handleAPIProjects)
	api.GET("/projects/:id", s.handleAPIProject)

	r.POST("/theme", s.handleTheme)
	r.POST("/contact", s.handleContact)

	s.setupAdminRoutes(r)

	return r, nil
}

func (s *server) handleIndex(c *gin.Context) {
	scroll := &pageScroll{}
	modal := projects.NewModal(s.catalog, scroll)

	if id := c.Query("project"); id != "" {
		if err := modal.Open(id); err != nil {
			s.log.Debug("project view not opened", zap.String("project", id), zap.Error(err))
		} else {
			s.tracker.ProjectView(c.ClientIP(), id)
		}
	}

	data := pageData{
		Owner:    OwnerName,
		Theme:    themeFrom(c),
		About:    AboutMe,
		Typed:    TypedPhrases,
		Services: Services,
		Stats:    Stats,
		Skills:   Skills,
		Filters:  append([]string{projects.FilterAll}, s.catalog.Categories()...),
		Work:     s.workGrid(projects.FilterAll),
	}

	if v, ok := modal.View(); ok {
		html, err := s.renderer.Fragment(v)
		if err != nil {
			s.log.Error("rendering project view", zap.String("project", v.ID), zap.Error(err))
			modal.Close()
		} else {
			data.Modal = html
			data.ModalOpen = true
		}
	}
	data.ScrollLocked = scroll.locked

	c.HTML(http.StatusOK, "index.html", data)
}

// handleProjectFragment returns the detail view markup for HTMX. Unknown
// ids get an empty 404, which HTMX does not swap in.
func (s *server) handleProjectFragment(c *gin.Context) {
	id := c.Param("id")
	rec, err := s.catalog.Get(id)
	if err != nil {
		s.log.Debug("project view not opened", zap.String("project", id), zap.Error(err))
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	html, err := s.renderer.Fragment(projects.Render(rec))
	if err != nil {
		s.log.Error("rendering project view", zap.String("project", id), zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	s.tracker.ProjectView(c.ClientIP(), id)
	c.Header("HX-Trigger", "project-modal-open")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *server) handleWork(c *gin.Context) {
	filter := c.DefaultQuery("filter", projects.FilterAll)
	c.HTML(http.StatusOK, "work-grid.html", s.workGrid(filter))
}

func (s *server) workGrid(filter string) workGrid {
	recs := s.catalog.Filter(filter)
	cards := make([]workCard, 0, len(recs))
	for _, rec := range recs {
		cards = append(cards, workCard{
			ID:           rec.ID,
			Title:        rec.Title,
			Category:     rec.Category,
			ImageClass:   rec.ImageClass,
			Summary:      rec.Description,
			Technologies: rec.Technologies,
		})
	}
	return workGrid{Active: filter, Cards: cards}
}

func (s *server) handleAPIProjects(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Filter(c.Query("category")))
}

func (s *server) handleAPIProject(c *gin.Context) {
	rec, err := s.catalog.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}
