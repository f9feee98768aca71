// Package viewstate holds the page's UI flags as immutable snapshots.
//
// Handlers never mutate a State; every update returns a new snapshot which the
// Store then publishes for the session.
package viewstate

import "github.com/Zachkp/portfolio/internal/section"

// State is one session's view of the page.
type State struct {
	DarkMode bool       `json:"darkMode"`
	MenuOpen bool       `json:"menuOpen"`
	Active   section.ID `json:"activeSection"`
}

// Initial is the state before any interaction: light theme, menu closed,
// first section active.
func Initial() State {
	return State{Active: section.Default}
}

func (s State) ToggleDarkMode() State {
	s.DarkMode = !s.DarkMode
	return s
}

func (s State) ToggleMenu() State {
	s.MenuOpen = !s.MenuOpen
	return s
}

// CloseMenu is used when a mobile menu link is followed.
func (s State) CloseMenu() State {
	s.MenuOpen = false
	return s
}

// WithActive returns s with id as the active section. Unknown ids leave s
// unchanged so Active always names a page region.
func (s State) WithActive(id section.ID) State {
	if section.Valid(id) {
		s.Active = id
	}
	return s
}

// Theme returns the theme name used as a CSS hook.
func (s State) Theme() string {
	if s.DarkMode {
		return "dark"
	}
	return "light"
}
