package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chipbar/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("238")).
			Padding(0, 1)

	selectedChipStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Padding(0, 1)

	chipKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	activeLinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red, like the page highlight
			Bold(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))
)

func (m AppModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("chipbar " + model.Version))
	b.WriteString("  ")
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	if m.InputMode {
		b.WriteString("URL: " + m.InputBuffer.View())
	} else {
		b.WriteString("URL: " + urlStyle.Render(m.CurrentURL()))
	}
	b.WriteString("\n\n")

	if m.ShowReport {
		b.WriteString(panelStyle.Render(m.ReportViewport.View()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("↑/↓ scroll • r/esc close • q quit"))
		return b.String()
	}

	width := m.WindowSize.Width - 4
	if width < 40 {
		width = 40
	}
	sideWidth := width / 3
	mainWidth := width - sideWidth

	side := panelStyle.Width(sideWidth).Render(m.sidebarView())
	chips := panelStyle.Width(mainWidth).Render(m.chipsView())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, side, chips))
	b.WriteString("\n")

	if m.Status != "" {
		b.WriteString(m.Status)
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("←/→ chip • x remove • ↑/↓ link • enter apply • e edit • b back • tab next tab • w close tab • r report • q quit"))
	return b.String()
}

func (m AppModel) tabsView() string {
	if len(m.Tabs) == 1 {
		return ""
	}
	parts := make([]string, len(m.Tabs))
	for i := range m.Tabs {
		label := fmt.Sprintf("%d", i+1)
		if i == m.ActiveTab {
			parts[i] = model.IconTab + label
		} else {
			parts[i] = dimStyle.Render(" " + label)
		}
	}
	return strings.Join(parts, " ")
}

func (m AppModel) sidebarView() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Sidebar"))
	b.WriteString("\n")
	if len(m.Rendering.Links) == 0 {
		b.WriteString(dimStyle.Render("(no links)"))
		return b.String()
	}
	for i, l := range m.Rendering.Links {
		cursor := "  "
		if i == m.LinkIdx {
			cursor = "> "
		}
		icon, style := model.IconInactive, linkStyle
		if l.Active {
			icon, style = model.IconActive, activeLinkStyle
		}
		b.WriteString(cursor + style.Render(icon+" "+strings.TrimSpace(l.Label)))
		if i < len(m.Rendering.Links)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// chipsView is the filter container. It stays empty when there are no filters.
func (m AppModel) chipsView() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Filters"))
	b.WriteString("\n")

	r := m.Rendering
	if r.Empty {
		return b.String()
	}

	if r.Options.ChipFormat == model.ChipPlain {
		b.WriteString(r.Text)
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("selected: " + r.Filters[m.ChipIdx].ID))
		return b.String()
	}

	chips := make([]string, len(r.Filters))
	for i, f := range r.Filters {
		style := chipStyle
		if i == m.ChipIdx {
			style = selectedChipStyle
		}
		chips[i] = style.Render(chipKeyStyle.Render(f.Key) + " " + f.Label + " " + model.IconClose)
	}
	b.WriteString(strings.Join(chips, " "))
	return b.String()
}
