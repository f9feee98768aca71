package web

import (
	"html/template"

	"github.com/Zachkp/portfolio/internal/arc"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/section"
	"github.com/Zachkp/portfolio/internal/viewstate"
)

// NavItem is one navigation link.
type NavItem struct {
	ID     section.ID
	Active bool
}

// PageData is the view model for the page and its fragments.
type PageData struct {
	State    viewstate.State
	Theme    string
	Nav      []NavItem
	Owner    content.Owner
	Socials  []content.Social
	About    []template.HTML
	Rings    []arc.RingView
	Projects []content.Project

	HomeAnimations  []content.Animation
	AboutAnimations []content.Animation
}

func newNav(active section.ID) []NavItem {
	items := make([]NavItem, 0, len(section.Order))
	for _, id := range section.Order {
		items = append(items, NavItem{ID: id, Active: id == active})
	}
	return items
}

func newPageData(c *content.Content, st viewstate.State) (*PageData, error) {
	about, err := c.AboutHTML()
	if err != nil {
		return nil, err
	}
	return &PageData{
		State:           st,
		Theme:           st.Theme(),
		Nav:             newNav(st.Active),
		Owner:           c.Owner,
		Socials:         c.Socials,
		About:           about,
		Rings:           c.Rings(),
		Projects:        c.Projects,
		HomeAnimations:  c.AnimationsFor(string(section.Home)),
		AboutAnimations: c.AnimationsFor(string(section.About)),
	}, nil
}

// navData is enough for the nav fragment alone.
func navData(c *content.Content, st viewstate.State) *PageData {
	return &PageData{
		State: st,
		Theme: st.Theme(),
		Nav:   newNav(st.Active),
		Owner: c.Owner,
	}
}
