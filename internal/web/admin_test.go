package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/section"
	"github.com/Zachkp/portfolio/internal/store"
)

func login(h *harness, username, password string) int {
	h.t.Helper()
	rec := h.do(http.MethodPost, "/admin/login", url.Values{"username": {username}, "password": {password}})
	return rec.Code
}

func TestAdminRequiresLogin(t *testing.T) {
	h := newHarness(t, nil)

	for _, path := range []string{"/admin/dashboard", "/admin/api/stats", "/admin/visitors", "/admin/messages", "/admin/export/stats"} {
		rec := h.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"), path)
	}
}

func TestAdminLogin(t *testing.T) {
	h := newHarness(t, nil)

	assert.Equal(t, http.StatusUnauthorized, login(h, "admin", "wrong"))
	assert.Equal(t, http.StatusUnauthorized, login(h, "root", "s3cret"))
	assert.Equal(t, http.StatusFound, login(h, "admin", "s3cret"))

	rec := h.do(http.MethodGet, "/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Section views")

	rec = h.do(http.MethodGet, "/admin/logout", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	rec = h.do(http.MethodGet, "/admin/dashboard", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestAdminForgedTokenRejected(t *testing.T) {
	h := newHarness(t, nil)
	h.cookies = append(h.cookies, &http.Cookie{Name: adminCookie, Value: "forged"})

	rec := h.do(http.MethodGet, "/admin/api/stats", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestAdminDevDefaultPassword(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.Mode = config.ModeDebug
		c.Admin.Password = ""
	})
	assert.Equal(t, http.StatusFound, login(h, "admin", devAdminPassword))
}

func TestAdminNoDefaultPasswordInRelease(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.Mode = config.ModeRelease
		c.Admin.Password = ""
	})
	assert.Equal(t, http.StatusUnauthorized, login(h, "admin", devAdminPassword))
	assert.Equal(t, http.StatusUnauthorized, login(h, "admin", ""))
}

func TestAdminStatsAPI(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.db.RecordVisit(ctx, "abc", "ua", "/"))
	require.NoError(t, h.db.RecordSectionView(ctx, "s", section.Skills))
	_, err := h.db.SaveMessage(ctx, store.Message{Name: "Ada", Email: "ada@example.com", Body: "hi"})
	require.NoError(t, err)

	require.Equal(t, http.StatusFound, login(h, "admin", "s3cret"))

	rec := h.do(http.MethodGet, "/admin/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats store.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.TotalVisitors)
	assert.EqualValues(t, 1, stats.TotalMessages)
	assert.Equal(t, store.SectionCount{Section: section.Skills, Views: 1}, stats.SectionViews[2])

	rec = h.do(http.MethodGet, "/admin/export/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "portfolio-stats.json")

	rec = h.do(http.MethodGet, "/admin/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ada@example.com")

	rec = h.do(http.MethodGet, "/admin/visitors", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<code>abc</code>")
}

func TestAdminPrivacyCleanup(t *testing.T) {
	h := newHarness(t, nil)
	require.Equal(t, http.StatusFound, login(h, "admin", "s3cret"))

	rec := h.do(http.MethodPost, "/admin/privacy/cleanup", url.Values{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"removed":0`)
}
