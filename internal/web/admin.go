package web

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
)

const (
	adminCookie = "admin_token"

	// Development fallbacks, refused by config validation in release mode.
	devAdminUsername = "admin"
	devAdminPassword = "admin123"
)

// adminCredentials returns the configured login, falling back to the
// development defaults when none is set.
func (s *Server) adminCredentials() (username, password string) {
	username, password = s.cfg.Admin.Username, s.cfg.Admin.Password
	if username == "" {
		username = devAdminUsername
		s.log.Warn("using default admin username; set admin.username")
	}
	if password == "" && s.cfg.Mode != config.ModeRelease {
		password = devAdminPassword
		s.log.Warn("using default admin password; set admin.password")
	}
	return username, password
}

func equalConstantTime(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// adminAuthMiddleware redirects to the login page unless the admin cookie
// carries this process's token.
func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equalConstantTime(token, s.adminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy", gin.H{
			"title":         "Privacy Policy",
			"retentionDays": s.cfg.Tracking.RetentionDays,
			"tracking":      s.cfg.Tracking.Enabled,
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login", gin.H{"title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username, password := s.adminCredentials()
		okUser := equalConstantTime(c.PostForm("username"), username)
		okPass := password != "" && equalConstantTime(c.PostForm("password"), password)

		client := s.hashIP(c.ClientIP())
		if !okUser || !okPass {
			s.log.Warn("failed admin login attempt", zap.String("client", client))
			c.HTML(http.StatusUnauthorized, "admin-login", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", s.cfg.Mode == config.ModeRelease, true)
		s.log.Info("admin login successful", zap.String("client", client))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		s.log.Info("admin logout", zap.String("client", s.hashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuthMiddleware())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.db.Stats(c.Request.Context())
		if err != nil {
			s.log.Error("error loading admin stats", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error", gin.H{"error": "Failed to load statistics"})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard", gin.H{
			"stats":    stats,
			"sessions": s.sessions.Len(),
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.db.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.db.RecentVisitors(c.Request.Context(), 200)
		if err != nil {
			s.log.Error("error loading visitors", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error", gin.H{"error": "Failed to load visitors"})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors", gin.H{"visitors": visitors})
	})

	admin.GET("/messages", func(c *gin.Context) {
		msgs, err := s.db.Messages(c.Request.Context(), 200)
		if err != nil {
			s.log.Error("error loading messages", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error", gin.H{"error": "Failed to load messages"})
			return
		}
		c.HTML(http.StatusOK, "admin-messages", gin.H{"messages": msgs})
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		retention := s.cfg.Retention()
		if retention == 0 {
			c.JSON(http.StatusOK, gin.H{"message": "Retention disabled", "removed": 0})
			return
		}
		n, err := s.db.Cleanup(c.Request.Context(), retention)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": n})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.db.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		s.log.Info("admin stats exported", zap.String("client", s.hashIP(c.ClientIP())))
		c.JSON(http.StatusOK, stats)
	})
}
