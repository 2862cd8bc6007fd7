package filterbar

import (
	"fmt"
	"strings"

	"chipbar/internal/model"
)

// Report renders rawURL and summarizes the result for the terminal.
// Verbose adds link targets, the options and each chip's removal target.
func (c *Controller) Report(rawURL string, links []model.Link, verbose bool) string {
	r := c.Render(rawURL, links)
	var sb strings.Builder

	sb.WriteString("=== chipbar report ===\n")
	fmt.Fprintf(&sb, "URL:   %s\n", rawURL)
	fmt.Fprintf(&sb, "Path:  %s\n", r.Path)
	if r.Empty {
		sb.WriteString("\nNo filters applied.\n")
	} else {
		fmt.Fprintf(&sb, "\n%s\n\n", r.Text)
		fmt.Fprintf(&sb, "Chips (%d):\n", len(r.Filters))
		for i, f := range r.Filters {
			fmt.Fprintf(&sb, "%3d. %s %s\n", i+1, model.IconClose, f.ID)
		}
		fmt.Fprintf(&sb, "\nActive values: %s\n", strings.Join(r.Active, ", "))
	}

	if len(r.Links) > 0 {
		sb.WriteString("\nSidebar:\n")
		for _, l := range r.Links {
			icon := model.IconInactive
			if l.Active {
				icon = model.IconActive
			}
			fmt.Fprintf(&sb, "  %s %s", icon, strings.TrimSpace(l.Label))
			if verbose {
				fmt.Fprintf(&sb, "  -> %s", l.Href)
			}
			sb.WriteString("\n")
		}
	}

	if verbose {
		opts := c.opts
		sb.WriteString("\nOptions:\n")
		fmt.Fprintf(&sb, "  chip format: %s\n", opts.ChipFormat)
		fmt.Fprintf(&sb, "  match by:    %s\n", opts.MatchBy)
		fmt.Fprintf(&sb, "  navigation:  %s\n", opts.Navigation)

		if !r.Empty {
			sb.WriteString("\nRemoval targets:\n")
			for _, f := range r.Filters {
				nav, err := c.Remove(rawURL, f.ID)
				if err != nil {
					fmt.Fprintf(&sb, "  %s: %v\n", f.ID, err)
					continue
				}
				fmt.Fprintf(&sb, "  %s -> %s\n", f.ID, nav.URL)
			}
		}
	}

	return sb.String()
}
