package tui

import (
	"fmt"
	"strings"

	"chipbar/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.ReportViewport.Width = msg.Width - 4
		m.ReportViewport.Height = msg.Height - 10 // minus header/chips/footer
		if m.ReportViewport.Height < 3 {
			m.ReportViewport.Height = 3
		}
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				if target := strings.TrimSpace(m.InputBuffer.Value()); target != "" {
					m.navigate(target, model.NavigateReplace)
					m.Status = "Opened " + target
				}
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		if m.ShowReport {
			switch msg.String() {
			case "r", "esc":
				m.ShowReport = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			m.ReportViewport, cmd = m.ReportViewport.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left", "h":
			if m.ChipIdx > 0 {
				m.ChipIdx--
			}
		case "right", "l":
			if m.ChipIdx < len(m.Rendering.Filters)-1 {
				m.ChipIdx++
			}
		case "up", "k":
			if m.LinkIdx > 0 {
				m.LinkIdx--
			}
		case "down", "j":
			if m.LinkIdx < len(m.Rendering.Links)-1 {
				m.LinkIdx++
			}
		case "x", "delete", "backspace":
			m.removeSelected()
		case "enter":
			if m.LinkIdx < len(m.Rendering.Links) {
				link := m.Rendering.Links[m.LinkIdx]
				m.navigate(link.Href, model.NavigateReplace)
				m.Status = "Applied " + strings.TrimSpace(link.Label)
			}
		case "b":
			m.back()
		case "tab":
			m.ActiveTab = (m.ActiveTab + 1) % len(m.Tabs)
			m.refresh()
		case "w":
			m.closeTab()
		case "r":
			m.ShowReport = true
			m.ReportViewport.GotoTop()
		case "e":
			m.InputMode = true
			m.InputBuffer.SetValue(m.CurrentURL())
			m.InputBuffer.CursorEnd()
			m.InputBuffer.Focus()
			return m, textinput.Blink
		}
	}

	return m, cmd
}

// removeSelected drops the selected chip and navigates per the controller's mode.
func (m *AppModel) removeSelected() {
	if m.ChipIdx >= len(m.Rendering.Filters) {
		return
	}
	id := m.Rendering.Filters[m.ChipIdx].ID

	nav, err := m.Controller.Remove(m.CurrentURL(), id)
	if err != nil {
		m.Status = fmt.Sprintf("Error: %v", err)
		return
	}
	m.navigate(nav.URL, nav.Mode)
	m.Status = fmt.Sprintf("Removed %s", strings.Join(nav.Removed, ", "))
}

// navigate moves the active tab to target, or opens a new tab for NavigateOpenNew.
func (m *AppModel) navigate(target string, mode model.NavigationMode) {
	if mode == model.NavigateOpenNew {
		m.Tabs = append(m.Tabs, Tab{URL: target})
		m.ActiveTab = len(m.Tabs) - 1
	} else {
		tab := &m.Tabs[m.ActiveTab]
		tab.History = append(tab.History, tab.URL)
		tab.URL = target
	}
	m.refresh()
}

func (m *AppModel) back() {
	tab := &m.Tabs[m.ActiveTab]
	if len(tab.History) == 0 {
		m.Status = "No history"
		return
	}
	tab.URL = tab.History[len(tab.History)-1]
	tab.History = tab.History[:len(tab.History)-1]
	m.Status = "Back"
	m.refresh()
}

func (m *AppModel) closeTab() {
	if len(m.Tabs) <= 1 {
		return
	}
	m.Tabs = append(m.Tabs[:m.ActiveTab], m.Tabs[m.ActiveTab+1:]...)
	if m.ActiveTab >= len(m.Tabs) {
		m.ActiveTab = len(m.Tabs) - 1
	}
	m.refresh()
}

// refresh re-renders the active tab and clamps the cursors.
func (m *AppModel) refresh() {
	url := m.CurrentURL()
	m.Rendering = m.Controller.Render(url, m.Links)
	m.ReportViewport.SetContent(m.Controller.Report(url, m.Links, true))

	// Bounds check
	if m.ChipIdx >= len(m.Rendering.Filters) {
		if len(m.Rendering.Filters) > 0 {
			m.ChipIdx = len(m.Rendering.Filters) - 1
		} else {
			m.ChipIdx = 0
		}
	}
	if m.LinkIdx >= len(m.Rendering.Links) {
		m.LinkIdx = 0
	}
}
