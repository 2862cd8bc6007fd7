package filterbar

import (
	"errors"
	"fmt"
	"strings"

	"chipbar/internal/model"
	"chipbar/internal/query"
)

// ErrUnknownFilter is returned by Remove when the clicked identifier is not a rendered chip.
var ErrUnknownFilter = errors.New("filter is not rendered")

// Controller derives the filter bar from a URL.
type Controller struct {
	opts model.Options
}

func NewController(opts model.Options) *Controller {
	return &Controller{opts: opts}
}

// Options returns the controller's configuration.
func (c *Controller) Options() model.Options {
	return c.opts
}

// Render derives the chips, the active value set and the sidebar highlights for rawURL.
// The same URL and links always produce the same rendering.
func (c *Controller) Render(rawURL string, links []model.Link) model.Rendering {
	path, rawQuery := query.SplitURL(rawURL)
	params := query.Parse(rawURL)

	r := model.Rendering{
		Path:     path,
		RawQuery: rawQuery,
		Options:  c.opts,
		Empty:    len(params) == 0,
	}

	// Dedupe on the identifier, not the value: tag=a and kind=a are two chips.
	seenFilter := make(map[string]bool)
	seenValue := make(map[string]bool)
	for _, p := range params {
		if !seenValue[p.Value] {
			seenValue[p.Value] = true
			r.Active = append(r.Active, p.Value)
		}

		id := query.Identifier(p.Key, p.Value)
		if seenFilter[id] {
			continue
		}
		seenFilter[id] = true
		r.Filters = append(r.Filters, model.Filter{
			ID:    id,
			Key:   p.Key,
			Value: p.Value,
			Label: p.Value,
		})
	}

	if !r.Empty {
		r.Text = "Filters: " + strings.Join(r.IDs(), "&")
	}

	r.Links = make([]model.Link, len(links))
	for i, l := range links {
		l.Active = seenValue[strings.TrimSpace(l.Label)]
		l.Href = addHref(path, r.Filters, l.Key, l.Value)
		r.Links[i] = l
	}

	return r
}

// Remove computes where to navigate after the chip named clickedID is removed.
// The remaining chips keep their relative order. Removing the last chip
// yields the bare path.
func (c *Controller) Remove(rawURL, clickedID string) (model.Navigation, error) {
	r := c.Render(rawURL, nil)

	var clicked *model.Filter
	for i := range r.Filters {
		if r.Filters[i].ID == clickedID {
			clicked = &r.Filters[i]
			break
		}
	}
	if clicked == nil {
		return model.Navigation{}, fmt.Errorf("remove %q from %q: %w", clickedID, rawURL, ErrUnknownFilter)
	}

	var kept []model.Param
	var removed []string
	for _, f := range r.Filters {
		if c.matches(f, *clicked) {
			removed = append(removed, f.ID)
			continue
		}
		kept = append(kept, model.Param{Key: f.Key, Value: f.Value})
	}

	rawQuery := query.Encode(kept)
	return model.Navigation{
		Path:     r.Path,
		RawQuery: rawQuery,
		URL:      query.Join(r.Path, rawQuery),
		Mode:     c.opts.Navigation,
		Removed:  removed,
	}, nil
}

// matches reports whether f is excluded when clicked is removed.
// Text matching drops every chip rendered with the same label.
func (c *Controller) matches(f, clicked model.Filter) bool {
	if c.opts.MatchBy == model.MatchText {
		return f.Label == clicked.Label
	}
	return f.ID == clicked.ID
}

// addHref is the URL that adds key=value to the current filters.
// A filter that is already active leaves the query unchanged.
func addHref(path string, filters []model.Filter, key, value string) string {
	pairs := make([]model.Param, 0, len(filters)+1)
	present := false
	for _, f := range filters {
		if f.Key == key && f.Value == value {
			present = true
		}
		pairs = append(pairs, model.Param{Key: f.Key, Value: f.Value})
	}
	if !present && key != "" {
		pairs = append(pairs, model.Param{Key: key, Value: value})
	}
	return query.Join(path, query.Encode(pairs))
}
