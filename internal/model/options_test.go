package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions("", "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)

	opts, err = ParseOptions("plain", "text", "openNew")
	require.NoError(t, err)
	assert.Equal(t, Options{ChipFormat: ChipPlain, MatchBy: MatchText, Navigation: NavigateOpenNew}, opts)

	opts, err = ParseOptions("richWithClose", "identifier", "open-new")
	require.NoError(t, err)
	assert.Equal(t, ChipRich, opts.ChipFormat)
	assert.Equal(t, NavigateOpenNew, opts.Navigation)
}

func TestParseOptions_Unknown(t *testing.T) {
	tests := []struct {
		name                            string
		chipFormat, matchBy, navigation string
	}{
		{"ChipFormat", "fancy", "", ""},
		{"MatchBy", "", "label", ""},
		{"Navigation", "", "", "popup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions(tt.chipFormat, tt.matchBy, tt.navigation)
			assert.ErrorIs(t, err, ErrUnknownOption)
		})
	}
}

func TestOptionsJSON(t *testing.T) {
	b, err := json.Marshal(Options{ChipFormat: ChipPlain, MatchBy: MatchText, Navigation: NavigateOpenNew})
	require.NoError(t, err)
	assert.JSONEq(t, `{"chipFormat":"plain","matchBy":"text","navigationMode":"open-new"}`, string(b))
}

func TestRenderingIDs(t *testing.T) {
	r := Rendering{Filters: []Filter{{ID: "a=1"}, {ID: "b=2"}}}
	assert.Equal(t, []string{"a=1", "b=2"}, r.IDs())
	assert.Empty(t, Rendering{}.IDs())
}
