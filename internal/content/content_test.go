package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/arc"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Skills, 6)
	assert.Len(t, c.Projects, 3)
	assert.Len(t, c.About, 3)
}

func TestDefaultReturnsCopies(t *testing.T) {
	a := Default()
	a.Skills[0].Level = 10
	assert.Equal(t, 90, Default().Skills[0].Level)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	writeFile(t, path, `
owner:
  name: Ada Lovelace
  tagline: Analyst
skills:
  - name: Go
    level: 95
  - name: SQL
    level: 70
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", c.Owner.Name)
	assert.Equal(t, []Skill{{Name: "Go", Level: 95}, {Name: "SQL", Level: 70}}, c.Skills)
	assert.Len(t, c.Projects, 3, "projects fall back to defaults")
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	writeFile(t, path, "skills: [")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing content")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Content)
		want   string
	}{
		{"missing owner", func(c *Content) { c.Owner.Name = "" }, "owner.name"},
		{"level too high", func(c *Content) { c.Skills[0].Level = 120 }, "React"},
		{"negative level", func(c *Content) { c.Skills[2].Level = -1 }, "TypeScript"},
		{"duplicate skill", func(c *Content) { c.Skills[1].Name = "React" }, "duplicate"},
		{"empty skill name", func(c *Content) { c.Skills[1].Name = "" }, "name is required"},
		{"untitled project", func(c *Content) { c.Projects[0].Title = "" }, "title"},
		{"relative social", func(c *Content) { c.Socials[0].Href = "github.com/x" }, "scheme"},
		{"animation without src", func(c *Content) { c.Animations[0].Src = "" }, "src"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateWrapsLevelError(t *testing.T) {
	c := Default()
	c.Skills[0].Level = 101
	assert.True(t, errors.Is(c.Validate(), arc.ErrLevelOutOfRange))
}

func TestRings(t *testing.T) {
	rings := Default().Rings()
	require.Len(t, rings, 6)
	assert.Equal(t, "React", rings[0].Label)
	assert.Equal(t, arc.Ring("React", 90), rings[0])
}

func TestAnimationsFor(t *testing.T) {
	c := Default()
	assert.Len(t, c.AnimationsFor("home"), 4)
	assert.Len(t, c.AnimationsFor("about"), 2)
	assert.Empty(t, c.AnimationsFor("skills"))
}

func TestAboutHTML(t *testing.T) {
	c := Default()
	paras, err := c.AboutHTML()
	require.NoError(t, err)
	require.Len(t, paras, 3)
	assert.Contains(t, string(paras[0]), "<strong>Full Stack Developer</strong>")
	assert.True(t, strings.HasPrefix(string(paras[1]), "<p>"))
}

func TestWatcherReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "content.yml")
	writeFile(t, path, "owner:\n  name: First\n")
	first, err := Load(path)
	require.NoError(t, err)

	holder := NewHolder(first)
	w, err := NewWatcher(path, holder, zap.NewNop())
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	writeFile(t, path, "owner:\n  name: Second\n")
	assert.Eventually(t, func() bool {
		return holder.Get().Owner.Name == "Second"
	}, 2*time.Second, 10*time.Millisecond)

	// An invalid edit keeps the last good content.
	writeFile(t, path, "skills:\n  - name: Go\n    level: 300\n")
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, "Second", holder.Get().Owner.Name)

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherKeepsContentWhenFileRemoved(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "content.yml")
	writeFile(t, path, "owner:\n  name: Custom\n")
	first, err := Load(path)
	require.NoError(t, err)

	holder := NewHolder(first)
	w, err := NewWatcher(path, holder, zap.NewNop())
	require.NoError(t, err)
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	backup := filepath.Join(dir, "content.bak")
	require.NoError(t, os.Rename(path, backup))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, "Custom", holder.Get().Owner.Name)

	writeFile(t, backup, "owner:\n  name: Restored\n")
	require.NoError(t, os.Rename(backup, path))
	assert.Eventually(t, func() bool {
		return holder.Get().Owner.Name == "Restored"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}
