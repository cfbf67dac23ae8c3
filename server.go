package main

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muthukumaran/portfolio/internal/clock"
	"github.com/muthukumaran/portfolio/internal/content"
	"github.com/muthukumaran/portfolio/internal/mailto"
	"github.com/muthukumaran/portfolio/internal/motion"
	"github.com/muthukumaran/portfolio/web"
)

// motionSteps is the number of keyframe intervals sampled per layer.
const motionSteps = 10

type server struct {
	site      *content.Site
	cfg       config
	clock     clock.Clock
	logger    *slog.Logger
	hasher    *ipHasher
	templates *template.Template

	about     template.HTML
	projects  []projectView
	motionCSS template.CSS
}

type projectView struct {
	content.Project
	DescriptionHTML template.HTML
}

// pageData feeds index.html and its fragments.
type pageData struct {
	Site       *content.Site
	About      template.HTML
	Projects   []projectView
	MotionCSS  template.CSS
	MailtoHref string
	Static     bool
}

func newServer(site *content.Site, cfg config, clk clock.Clock, logger *slog.Logger) (*server, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	hasher, err := newIPHasher(cfg.LogHashSalt)
	if err != nil {
		return nil, err
	}

	about, err := content.Markdown(site.Profile.About)
	if err != nil {
		return nil, fmt.Errorf("about: %w", err)
	}
	projects := make([]projectView, len(site.Projects))
	for i, p := range site.Projects {
		description, err := content.Markdown(p.Description)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", p.Title, err)
		}
		projects[i] = projectView{Project: p, DescriptionHTML: description}
	}

	layers := append(motion.Hero(), motion.Progress())
	return &server{
		site:      site,
		cfg:       cfg,
		clock:     clk,
		logger:    logger,
		hasher:    hasher,
		templates: templates,
		about:     about,
		projects:  projects,
		motionCSS: template.CSS(motion.Stylesheet(layers, motionSteps)),
	}, nil
}

func (s *server) page(static bool) pageData {
	return pageData{
		Site:       s.site,
		About:      s.about,
		Projects:   s.projects,
		MotionCSS:  s.motionCSS,
		MailtoHref: mailto.Build(s.site.Contact.Email, mailto.Values{}),
		Static:     static,
	}
}

func (s *server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger, s.hasher))
	r.SetHTMLTemplate(s.templates)

	r.StaticFS("/static", http.FS(web.Static()))
	r.Static("/images", s.cfg.ImagesDir)

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", s.page(false))
	})

	// HTMX section fragments
	r.GET("/skills-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "skills-content.html", s.page(false))
	})
	r.GET("/projects-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "projects-content.html", s.page(false))
	})
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", s.page(false))
	})

	r.GET("/contact/link", s.handleContactLink)
	r.POST("/contact", s.handleContact)
	r.GET("/reveal", s.handleReveal)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
