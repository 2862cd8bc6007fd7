package filterbar

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chipbar/internal/model"
)

func mustHTML(t *testing.T, r model.Rendering) string {
	t.Helper()
	out, err := HTML(r)
	require.NoError(t, err)
	return string(out)
}

func TestHTML_Plain(t *testing.T) {
	opts := model.DefaultOptions()
	opts.ChipFormat = model.ChipPlain
	c := NewController(opts)

	got := mustHTML(t, c.Render("/s?status=active&type=book", nil))
	assert.Equal(t, "Filters: status=active&amp;type=book", got)
}

func TestHTML_Rich(t *testing.T) {
	c := NewController(model.DefaultOptions())

	got := mustHTML(t, c.Render("/s?status=active&type=book", nil))
	assert.True(t, strings.HasPrefix(got, `<ul class="chips">`))
	assert.True(t, strings.HasSuffix(got, `</ul>`))
	assert.Equal(t, 2, strings.Count(got, `<li class="chip">`))
	assert.Contains(t, got, `data-filter="status=active"`)
	assert.Contains(t, got, `data-filter="type=book"`)
	assert.Contains(t, got, `href="/remove?`)
	assert.NotContains(t, got, `target="_blank"`)
}

func TestHTML_RichOpenNew(t *testing.T) {
	opts := model.DefaultOptions()
	opts.Navigation = model.NavigateOpenNew
	c := NewController(opts)

	got := mustHTML(t, c.Render("/s?a=1", nil))
	assert.Contains(t, got, `target="_blank"`)
}

func TestHTML_EscapesValues(t *testing.T) {
	c := NewController(model.DefaultOptions())

	got := mustHTML(t, c.Render("/s?q=%3Cscript%3E", nil))
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteHTML_Error(t *testing.T) {
	c := NewController(model.DefaultOptions())

	err := WriteHTML(failingWriter{}, c.Render("/s?a=1", nil))
	assert.Error(t, err)
}

func TestRemoveHref(t *testing.T) {
	assert.Equal(t, "/remove?from=%2Fs%3Fa%3D1&id=a%3D1", RemoveHref("/s", "a=1", "a=1"))
}
