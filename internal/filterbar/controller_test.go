package filterbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chipbar/internal/model"
)

func sidebarLinks() []model.Link {
	return []model.Link{
		{Key: "status", Value: "active", Label: "  active  "},
		{Key: "status", Value: "retired", Label: "retired"},
		{Key: "type", Value: "book", Label: "book"},
	}
}

func TestRender_Empty(t *testing.T) {
	c := NewController(model.DefaultOptions())

	for _, raw := range []string{"", "/samples", "/samples?", "/samples?&&"} {
		r := c.Render(raw, sidebarLinks())
		assert.True(t, r.Empty, raw)
		assert.Empty(t, r.Filters, raw)
		assert.Empty(t, r.Text, raw)
		assert.Empty(t, mustHTML(t, r), raw)
		for _, l := range r.Links {
			assert.False(t, l.Active, raw)
		}
	}
}

func TestRender_Filters(t *testing.T) {
	c := NewController(model.DefaultOptions())

	r := c.Render("/samples?status=active&type=book", sidebarLinks())
	require.False(t, r.Empty)
	assert.Equal(t, "/samples", r.Path)
	assert.Equal(t, []string{"status=active", "type=book"}, r.IDs())
	assert.Equal(t, []string{"active", "book"}, r.Active)
	assert.Equal(t, "Filters: status=active&type=book", r.Text)

	require.Len(t, r.Links, 3)
	assert.True(t, r.Links[0].Active, "trimmed label matches")
	assert.False(t, r.Links[1].Active)
	assert.True(t, r.Links[2].Active)
}

func TestRender_Dedupe(t *testing.T) {
	c := NewController(model.DefaultOptions())

	r := c.Render("?tag=a&tag=b&tag=a&kind=a", nil)
	assert.Equal(t, []string{"tag=a", "tag=b", "kind=a"}, r.IDs())
	assert.Equal(t, []string{"a", "b"}, r.Active)
}

func TestRender_Idempotent(t *testing.T) {
	c := NewController(model.DefaultOptions())

	url := "/samples?status=active&type=book&name=Homo+sapiens"
	first := c.Render(url, sidebarLinks())
	second := c.Render(url, sidebarLinks())
	assert.Equal(t, first, second)
	assert.Equal(t, mustHTML(t, first), mustHTML(t, second))
}

func TestRender_LinkHref(t *testing.T) {
	c := NewController(model.DefaultOptions())

	r := c.Render("/samples?status=active", sidebarLinks())
	assert.Equal(t, "/samples?status=active", r.Links[0].Href, "already active")
	assert.Equal(t, "/samples?status=active&status=retired", r.Links[1].Href)
	assert.Equal(t, "/samples?status=active&type=book", r.Links[2].Href)
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		id      string
		wantURL string
	}{
		{"First", "?status=active&type=book", "status=active", "?type=book"},
		{"RepeatedKey", "?tag=a&tag=b", "tag=a", "?tag=b"},
		{"Middle", "/s?a=1&b=2&c=3", "b=2", "/s?a=1&c=3"},
		{"Last", "/samples?status=active", "status=active", "/samples"},
		{"Duplicates", "/s?tag=a&tag=b&tag=a", "tag=a", "/s?tag=b"},
		{"Escaped", "/s?name=Homo+sapiens&q=a%26b", "name=Homo sapiens", "/s?q=a%26b"},
	}

	c := NewController(model.DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav, err := c.Remove(tt.url, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, nav.URL)
			assert.Equal(t, []string{tt.id}, nav.Removed)
			assert.Equal(t, model.NavigateReplace, nav.Mode)
		})
	}
}

func TestRemove_PreservesOrder(t *testing.T) {
	c := NewController(model.DefaultOptions())

	url := "/s?e=5&d=4&c=3&b=2&a=1"
	ids := c.Render(url, nil).IDs()
	for i, id := range ids {
		nav, err := c.Remove(url, id)
		require.NoError(t, err)

		rest := append(append([]string{}, ids[:i]...), ids[i+1:]...)
		assert.Equal(t, rest, c.Render(nav.URL, nil).IDs())
	}
}

func TestRemove_Unknown(t *testing.T) {
	c := NewController(model.DefaultOptions())

	_, err := c.Remove("?a=1", "b=2")
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func TestRemove_MatchByText(t *testing.T) {
	opts := model.DefaultOptions()
	opts.MatchBy = model.MatchText
	c := NewController(opts)

	// Two keys render the same label, so both chips go.
	nav, err := c.Remove("/s?owner=x&reviewer=x&tag=y", "owner=x")
	require.NoError(t, err)
	assert.Equal(t, "/s?tag=y", nav.URL)
	assert.Equal(t, []string{"owner=x", "reviewer=x"}, nav.Removed)

	byID := NewController(model.DefaultOptions())
	nav, err = byID.Remove("/s?owner=x&reviewer=x&tag=y", "owner=x")
	require.NoError(t, err)
	assert.Equal(t, "/s?reviewer=x&tag=y", nav.URL)
}

func TestRemove_OpenNew(t *testing.T) {
	opts := model.DefaultOptions()
	opts.Navigation = model.NavigateOpenNew
	c := NewController(opts)

	nav, err := c.Remove("/s?a=1", "a=1")
	require.NoError(t, err)
	assert.Equal(t, model.NavigateOpenNew, nav.Mode)
	assert.Equal(t, "/s", nav.URL)
}

func TestReport(t *testing.T) {
	c := NewController(model.DefaultOptions())

	out := c.Report("/samples?status=active&type=book", sidebarLinks(), true)
	assert.Contains(t, out, "Filters: status=active&type=book")
	assert.Contains(t, out, "Chips (2):")
	assert.Contains(t, out, model.IconActive+" active")
	assert.Contains(t, out, model.IconInactive+" retired")
	assert.Contains(t, out, "status=active -> /samples?type=book")
	assert.Contains(t, out, "match by:    identifier")

	out = c.Report("/samples", nil, false)
	assert.Contains(t, out, "No filters applied.")
	assert.NotContains(t, out, "Filters:")
}
