package web

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionCookie = "portfolio_session"
	sessionKey    = "session"
)

// requestLogger logs one line per request. Client addresses are hashed
// before they reach the log.
func requestLogger(log *zap.Logger, hashIP func(string) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client", hashIP(c.ClientIP())),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case strings.HasPrefix(c.Request.URL.Path, "/ui/"):
			// Scroll sync fires many times per visit.
			log.Debug("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// sessionMiddleware assigns each browser a random session id, which keys
// its view state.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// visitorTrackingMiddleware records page loads with hashed IPs. Fragment
// requests and Do Not Track browsers are skipped.
func (s *Server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet ||
			strings.HasPrefix(path, "/ui/") ||
			strings.HasPrefix(path, "/api/") {
			c.Next()
			return
		}

		if doNotTrack(c) {
			c.Next()
			return
		}

		hashed := s.hashIP(c.ClientIP())
		userAgent := c.GetHeader("User-Agent")
		go s.trackVisitor(hashed, userAgent, path)
		c.Next()
	}
}

// doNotTrack reports whether the browser opted out of analytics.
func doNotTrack(c *gin.Context) bool {
	return c.GetHeader("DNT") == "1"
}

func (s *Server) trackVisitor(hashedIP, userAgent, path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.db.RecordVisit(ctx, hashedIP, userAgent, path); err != nil {
		s.log.Warn("error recording visitor", zap.Error(err))
	}
}
