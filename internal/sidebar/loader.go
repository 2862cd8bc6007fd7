package sidebar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"chipbar/internal/model"
	"chipbar/internal/query"
)

// Load reads a sidebar file. Each non-blank line is "key=value" with an optional
// " | Label" suffix; lines starting with '#' are comments.
func Load(path string) ([]model.Link, error) {
	path = expandTilde(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sidebar: %w", err)
	}
	defer file.Close()

	links, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("read sidebar %s: %w", path, err)
	}
	return links, nil
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}

// Parse reads sidebar links from r.
func Parse(r io.Reader) ([]model.Link, error) {
	var links []model.Link
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, label, hasLabel := strings.Cut(line, "|")
		entry = strings.TrimSpace(entry)
		// A bare word is a value with no key.
		p := model.Param{Value: entry}
		if strings.Contains(entry, "=") {
			params := query.Parse("?" + entry)
			if len(params) == 0 {
				continue
			}
			p = params[0]
		}

		link := model.Link{Key: p.Key, Value: p.Value, Label: p.Value}
		if hasLabel {
			link.Label = strings.TrimSpace(label)
		}
		links = append(links, link)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return links, nil
}

// Default is the sidebar shown when no file is configured.
func Default() []model.Link {
	facets := []struct{ key, value string }{
		{"ScientificName", "Homo sapiens"},
		{"ScientificName", "Mus musculus"},
		{"ScientificName", "Saccharomyces cerevisiae"},
		{"LIBRARYTYPE", "Ribo-Seq"},
		{"LIBRARYTYPE", "RNA-Seq"},
		{"CELL_LINE", "HeLa"},
		{"CELL_LINE", "HEK293"},
		{"INHIBITOR", "CHX"},
		{"INHIBITOR", "HARR"},
		{"verified", "True"},
	}
	links := make([]model.Link, len(facets))
	for i, f := range facets {
		links[i] = model.Link{Key: f.key, Value: f.value, Label: f.value}
	}
	return links
}
