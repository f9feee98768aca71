package web

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/arc"
	"github.com/Zachkp/portfolio/internal/section"
	"github.com/Zachkp/portfolio/internal/viewstate"
)

func (s *Server) handleIndex(c *gin.Context) {
	st := s.sessions.Get(sessionID(c))
	data, err := newPageData(s.content.Get(), st)
	if err != nil {
		s.log.Error("building page", zap.Error(err))
		c.String(http.StatusInternalServerError, "Sorry, the page could not be rendered.")
		return
	}
	c.HTML(http.StatusOK, "index", data)
}

type scrollForm struct {
	ScrollY        float64 `form:"scrollY"`
	ViewportHeight float64 `form:"viewportHeight" binding:"gte=0"`
}

// handleScroll recomputes the active section from the client's scroll
// position and region offsets, then returns the refreshed nav.
func (s *Server) handleScroll(c *gin.Context) {
	var form scrollForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sid := sessionID(c)
	offsets := make(map[section.ID]float64, len(section.Order))
	for _, id := range section.Order {
		raw, ok := c.GetPostForm("offset_" + string(id))
		if !ok {
			continue
		}
		top, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		offsets[id] = top
	}

	regions := section.RegionsFromOffsets(offsets)
	scroll := section.ScrollState{ScrollY: form.ScrollY, ViewportHeight: form.ViewportHeight}

	// The tracker runs under the session lock so concurrent posts from one
	// browser never start from a stale active section.
	var changed section.ID
	st := s.sessions.Update(sid, func(cur viewstate.State) viewstate.State {
		tracker := section.NewTracker(regions, section.StartAt(cur.Active))
		unsubscribe := tracker.Subscribe(func(id section.ID) { changed = id })
		defer unsubscribe()
		return cur.WithActive(tracker.Update(scroll))
	})
	if changed != "" && !doNotTrack(c) {
		s.recordSectionView(sid, changed)
	}
	c.HTML(http.StatusOK, "nav", navData(s.content.Get(), st))
}

func (s *Server) recordSectionView(sid string, id section.ID) {
	if !s.cfg.Tracking.Enabled {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.db.RecordSectionView(ctx, sid, id); err != nil {
		s.log.Warn("error recording section view", zap.Error(err), zap.String("section", string(id)))
	}
}

func (s *Server) handleTheme(c *gin.Context) {
	st := s.sessions.Update(sessionID(c), viewstate.State.ToggleDarkMode)
	data, err := newPageData(s.content.Get(), st)
	if err != nil {
		s.log.Error("building page", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	c.HTML(http.StatusOK, "page", data)
}

// handleMenu toggles the mobile menu; close=1 only ever closes it, which is
// what following a menu link does.
func (s *Server) handleMenu(c *gin.Context) {
	update := viewstate.State.ToggleMenu
	if c.Query("close") == "1" {
		update = viewstate.State.CloseMenu
	}
	st := s.sessions.Update(sessionID(c), update)
	c.HTML(http.StatusOK, "nav", navData(s.content.Get(), st))
}

type skillArc struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	arc.Params
}

func (s *Server) handleSkills(c *gin.Context) {
	skills := s.content.Get().Skills
	out := make([]skillArc, 0, len(skills))
	for _, sk := range skills {
		out = append(out, skillArc{Name: sk.Name, Level: sk.Level, Params: arc.ForLevel(sk.Level)})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, s.sessions.Get(sessionID(c)))
}
