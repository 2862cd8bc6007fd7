package filterbar

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"chipbar/internal/model"
	"chipbar/internal/query"
)

// RemovePath is the endpoint a chip's close control points at.
const RemovePath = "/remove"

const chipsHTML = `{{if not .Empty}}{{if .Plain}}{{.Text}}{{else}}<ul class="chips">
{{- range .Filters}}
  <li class="chip"><span class="chip-key">{{.Key}}</span> <span class="chip-label">{{.Label}}</span> <a class="chip-close" data-filter="{{.ID}}" href="{{removeHref $.Path $.RawQuery .ID}}"{{if $.OpenNew}} target="_blank" rel="noopener"{{end}} title="Remove {{.ID}}">×</a></li>
{{- end}}
</ul>{{end}}{{end}}`

var chipsTmpl = template.Must(template.New("chips").Funcs(template.FuncMap{
	"removeHref": RemoveHref,
}).Parse(chipsHTML))

type chipsData struct {
	model.Rendering
	Plain   bool
	OpenNew bool
}

// RemoveHref is the removal endpoint URL for the chip id on the page path?rawQuery.
func RemoveHref(path, rawQuery, id string) string {
	v := url.Values{}
	v.Set("from", query.Join(path, rawQuery))
	v.Set("id", id)
	return RemovePath + "?" + v.Encode()
}

// WriteHTML writes the filter container contents for r.
// An empty rendering writes nothing.
func WriteHTML(w io.Writer, r model.Rendering) error {
	return chipsTmpl.Execute(w, chipsData{
		Rendering: r,
		Plain:     r.Options.ChipFormat == model.ChipPlain,
		OpenNew:   r.Options.Navigation == model.NavigateOpenNew,
	})
}

// HTML returns the filter container contents for r.
func HTML(r model.Rendering) (template.HTML, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, r); err != nil {
		return "", fmt.Errorf("render chips: %w", err)
	}
	return template.HTML(buf.String()), nil
}
