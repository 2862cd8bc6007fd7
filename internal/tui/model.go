package tui

import (
	"chipbar/internal/filterbar"
	"chipbar/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Tab is one browsing context. Replace navigation grows its history;
// open-new navigation starts a new tab.
type Tab struct {
	URL     string
	History []string
}

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Controller *filterbar.Controller
	Links      []model.Link
	Rendering  model.Rendering

	// Browsing
	Tabs      []Tab
	ActiveTab int
	Status    string // Last navigation, shown in the footer

	// UI State
	ChipIdx    int
	LinkIdx    int
	WindowSize tea.WindowSizeMsg

	// URL editing
	InputMode   bool
	InputBuffer textinput.Model

	// Report pane
	ShowReport     bool
	ReportViewport viewport.Model
}

// InitialModel returns the state for browsing rawURL with the given sidebar.
func InitialModel(ctrl *filterbar.Controller, rawURL string, links []model.Link) AppModel {
	ti := textinput.New()
	ti.Placeholder = "/samples?key=value"
	ti.CharLimit = 2048
	ti.Width = 60

	m := AppModel{
		Controller:     ctrl,
		Links:          links,
		Tabs:           []Tab{{URL: rawURL}},
		InputBuffer:    ti,
		ReportViewport: viewport.New(80, 20),
	}
	m.refresh()
	return m
}

// CurrentURL is the URL of the active tab.
func (m AppModel) CurrentURL() string {
	return m.Tabs[m.ActiveTab].URL
}
