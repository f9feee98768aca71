// Package content holds the portfolio's static copy: owner details, about
// paragraphs, skills, projects and the decorative animations.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/arc"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid content")

type Owner struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Email   string `yaml:"email"`
}

type Social struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	Href  string `yaml:"href"`
}

// Paragraph is Markdown text shown in the about section.
type Paragraph struct {
	ID   int    `yaml:"id"`
	Text string `yaml:"text"`
}

type Skill struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
}

type Project struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Link        string `yaml:"link,omitempty"`
}

// Animation places a lottie file on the page. Playback is left to the
// lottie-player web component.
type Animation struct {
	Section string `yaml:"section"`
	Src     string `yaml:"src"`
	Size    int    `yaml:"size"`
	Mobile  bool   `yaml:"mobile"`
	Top     string `yaml:"top,omitempty"`
	Left    string `yaml:"left,omitempty"`
	Right   string `yaml:"right,omitempty"`
}

type Content struct {
	Owner      Owner       `yaml:"owner"`
	Socials    []Social    `yaml:"socials"`
	About      []Paragraph `yaml:"about"`
	Skills     []Skill     `yaml:"skills"`
	Projects   []Project   `yaml:"projects"`
	Animations []Animation `yaml:"animations"`
}

// Load reads a YAML content file. Top-level keys missing from the file keep
// their default values. A missing file yields the defaults.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	return parse(path, data)
}

// parse overlays data on the defaults and validates the result.
func parse(path string, data []byte) (*Content, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing content %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the content for values the page cannot render.
func (c *Content) Validate() error {
	if c.Owner.Name == "" {
		return fmt.Errorf("%w: owner.name is required", ErrInvalid)
	}

	seen := make(map[string]bool, len(c.Skills))
	for i, s := range c.Skills {
		if s.Name == "" {
			return fmt.Errorf("%w: skills[%d]: name is required", ErrInvalid, i)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: skills[%d]: duplicate skill %q", ErrInvalid, i, s.Name)
		}
		seen[s.Name] = true
		if err := arc.Validate(s.Level); err != nil {
			return fmt.Errorf("%w: skills[%d] %q: %w", ErrInvalid, i, s.Name, err)
		}
	}

	for i, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("%w: projects[%d]: title is required", ErrInvalid, i)
		}
	}

	for i, s := range c.Socials {
		u, err := url.Parse(s.Href)
		if err != nil || u.Scheme == "" {
			return fmt.Errorf("%w: socials[%d]: href %q needs a scheme", ErrInvalid, i, s.Href)
		}
	}

	for i, a := range c.Animations {
		if a.Src == "" {
			return fmt.Errorf("%w: animations[%d]: src is required", ErrInvalid, i)
		}
	}
	return nil
}

// Rings returns the progress ring for every skill, in order.
func (c *Content) Rings() []arc.RingView {
	rings := make([]arc.RingView, 0, len(c.Skills))
	for _, s := range c.Skills {
		rings = append(rings, arc.Ring(s.Name, s.Level))
	}
	return rings
}

// AnimationsFor returns the animations placed in the named section.
func (c *Content) AnimationsFor(name string) []Animation {
	var out []Animation
	for _, a := range c.Animations {
		if a.Section == name {
			out = append(out, a)
		}
	}
	return out
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// AboutHTML renders the about paragraphs. The content file is trusted input.
func (c *Content) AboutHTML() ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(c.About))
	for _, p := range c.About {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(p.Text), &buf); err != nil {
			return nil, fmt.Errorf("rendering about paragraph %d: %w", p.ID, err)
		}
		out = append(out, template.HTML(buf.String()))
	}
	return out, nil
}
