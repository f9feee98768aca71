// Package web serves the portfolio page and its HTMX fragments with gin.
package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/viewstate"
)

// Server wires the page, fragment, contact and admin routes together.
type Server struct {
	cfg      *config.Config
	content  *content.Holder
	sessions *viewstate.Store
	db       *store.DB
	mailer   mail.Sender
	log      *zap.Logger
	tmpl     *template.Template

	adminToken  string
	hashingSalt string

	engine *gin.Engine
}

// New builds a server. Random admin token and IP hashing salt are generated
// per process, so restarting logs admins out and rotates visitor hashes.
func New(cfg *config.Config, holder *content.Holder, db *store.DB, mailer mail.Sender, log *zap.Logger) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	token, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("generating admin token: %w", err)
	}
	salt, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("generating hashing salt: %w", err)
	}

	s := &Server{
		cfg:         cfg,
		content:     holder,
		sessions:    viewstate.NewStore(),
		db:          db,
		mailer:      mailer,
		log:         log,
		tmpl:        tmpl,
		adminToken:  token,
		hashingSalt: salt,
	}
	s.engine = s.buildRouter()
	return s, nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(s.tmpl)
	r.Use(requestLogger(s.log, s.hashIP))
	r.Use(gin.CustomRecovery(func(c *gin.Context, rec any) {
		s.log.Error("panic serving request", zap.Any("recovered", rec), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	r.Static("/assets", s.cfg.AssetsDir)
	r.Static("/images", s.cfg.ImagesDir)
	r.StaticFS("/static", http.FS(StaticFiles()))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	site := r.Group("/")
	site.Use(sessionMiddleware())
	if s.cfg.Tracking.Enabled {
		site.Use(s.visitorTrackingMiddleware())
	}

	site.GET("/", s.handleIndex)
	site.POST("/ui/scroll", s.handleScroll)
	site.POST("/ui/theme", s.handleTheme)
	site.POST("/ui/menu", s.handleMenu)
	site.GET("/api/skills", s.handleSkills)
	site.GET("/api/state", s.handleState)

	site.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact-form", gin.H{"title": "Get in Touch"})
	})
	site.POST("/contact", s.handleContact)

	s.setupAdminRoutes(r)
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Sessions exposes the view-state store.
func (s *Server) Sessions() *viewstate.Store { return s.sessions }

// RunMaintenance evicts idle sessions and, when tracking is enabled, removes
// visitor data past the retention window. It runs once immediately and then
// every interval until ctx is cancelled.
func (s *Server) RunMaintenance(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.maintain(ctx)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Server) maintain(ctx context.Context) {
	if n := s.sessions.Sweep(s.cfg.SessionMaxIdle); n > 0 {
		s.log.Debug("evicted idle sessions", zap.Int("count", n))
	}
	if !s.cfg.Tracking.Enabled || s.cfg.Retention() == 0 {
		return
	}
	n, err := s.db.Cleanup(ctx, s.cfg.Retention())
	if err != nil {
		s.log.Warn("privacy cleanup failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.log.Info("privacy cleanup removed visitor records",
			zap.Int64("rows", n), zap.Int("retention_days", s.cfg.Tracking.RetentionDays))
	}
}

func (s *Server) hashIP(ip string) string {
	return store.HashIP(s.hashingSalt, ip)
}

// RenderPage writes the full page for c in the initial view state. It backs
// the static export.
func RenderPage(w io.Writer, c *content.Content) error {
	tmpl, err := parseTemplates()
	if err != nil {
		return err
	}
	data, err := newPageData(c, viewstate.Initial())
	if err != nil {
		return err
	}
	return tmpl.ExecuteTemplate(w, "index", data)
}
