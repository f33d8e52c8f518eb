// Package web serves the portfolio page, its HTMX fragments and the JSON content API.
package web

import (
	"context"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/William-WYL/portfolio/internal/admin"
	"github.com/William-WYL/portfolio/internal/contact"
	"github.com/William-WYL/portfolio/internal/content"
	"github.com/William-WYL/portfolio/internal/session"
	"github.com/William-WYL/portfolio/internal/store"
)

// Config holds the page and server settings the handlers need.
type Config struct {
	Port             string
	SplashDuration   time.Duration
	CarouselInterval time.Duration
	CarouselPageSize int
	SessionTTL       time.Duration
	CORSOrigins      []string
	SecureCookies    bool
}

// Deps are the collaborators of the server. DB and Admin may be nil, which turns
// off the submission log and the dashboard.
type Deps struct {
	Catalog  content.Catalog
	Sessions session.Store
	Relay    contact.Relay
	Contact  contact.Options
	DB       *store.DB
	Admin    *admin.Admin
}

// Server is the portfolio site.
type Server struct {
	cfg        Config
	deps       Deps
	engine     *gin.Engine
	httpServer *http.Server
	now        func() time.Time
}

func New(cfg Config, deps Deps) *Server {
	if cfg.CarouselPageSize < 1 {
		cfg.CarouselPageSize = 3
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	s := &Server{cfg: cfg, deps: deps, now: time.Now}
	s.engine = s.buildRouter()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(mustTemplates())
	r.StaticFS("/static", staticFS())

	if s.deps.Admin != nil {
		r.Use(s.deps.Admin.TrackingMiddleware())
		s.deps.Admin.RegisterRoutes(r)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	corsCfg := cors.Config{
		AllowOrigins: s.cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Accept", "Content-Type"},
		MaxAge:       5 * time.Minute,
	}
	if len(corsCfg.AllowOrigins) == 0 || slices.Contains(corsCfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
	}

	api := r.Group("/api/v1")
	api.Use(cors.New(corsCfg))
	api.GET("/content", s.getContent)
	api.GET("/sections", s.getSections)

	page := r.Group("/")
	page.Use(s.sessionMiddleware())
	page.GET("/", s.getIndex)
	page.POST("/theme", s.postTheme)
	page.GET("/sections/:id", s.getSection)

	certs := page.Group("/certifications")
	certs.GET("", s.getCertifications)
	certs.POST("/next", s.postCertNext)
	certs.POST("/prev", s.postCertPrev)
	certs.POST("/tick", s.postCertTick)
	certs.POST("/page/:index", s.postCertJump)
	certs.POST("/open/:id", s.postCertOpen)
	certs.POST("/close", s.postCertClose)

	page.GET("/contact/form", s.getContactForm)
	page.POST("/contact", s.postContact)

	return r
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("portfolio listening on :%s", s.cfg.Port)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
