package model

// Param is a single key/value pair from a query string, in the order it appeared.
type Param struct {
	Key   string
	Value string
}

// Filter is one rendered chip.
type Filter struct {
	ID    string // The literal key=value identifier used for removal
	Key   string
	Value string
	Label string // Display text (the value)
}

// Link is a sidebar link that can be highlighted when its label matches an active value.
type Link struct {
	Key    string
	Value  string
	Label  string // Visible text, compared trimmed against active values
	Href   string // URL that adds this link's filter to the current set
	Active bool
}

// Rendering is the output of one render pass over a URL.
type Rendering struct {
	Path     string
	RawQuery string
	Options  Options
	Filters  []Filter
	Active   []string // Raw values in first-seen order (the active value set)
	Links    []Link
	Text     string // Plain form: "Filters: k1=v1&k2=v2"
	Empty    bool   // True when the URL carries no parameters
}

// IDs returns the identifiers of the rendered chips in order.
func (r Rendering) IDs() []string {
	ids := make([]string, len(r.Filters))
	for i, f := range r.Filters {
		ids[i] = f.ID
	}
	return ids
}

// Navigation is where the browser should go after a chip is removed.
type Navigation struct {
	Path     string
	RawQuery string
	URL      string // Path, plus "?" and RawQuery when non-empty
	Mode     NavigationMode
	Removed  []string // Identifiers excluded from the new query
}
