package model

import (
	"errors"
	"fmt"
)

// ErrUnknownOption is returned when an option string has no matching value.
var ErrUnknownOption = errors.New("unknown option value")

// ChipFormat selects how the filter container is rendered.
type ChipFormat int

const (
	ChipRich  ChipFormat = iota // List of chips with a close control
	ChipPlain                   // Single "Filters: ..." line
)

// MatchBy selects how a clicked chip is identified on removal.
type MatchBy int

const (
	MatchIdentifier MatchBy = iota // Compare the key=value identifier
	MatchText                      // Compare the rendered label (legacy)
)

// NavigationMode selects how the removal target is opened.
type NavigationMode int

const (
	NavigateReplace NavigationMode = iota // Same document, keeps back-button history
	NavigateOpenNew                       // New browsing context
)

// Options is the versioned configuration of the filter bar.
type Options struct {
	ChipFormat ChipFormat     `json:"chipFormat"`
	MatchBy    MatchBy        `json:"matchBy"`
	Navigation NavigationMode `json:"navigationMode"`
}

// DefaultOptions returns rich chips, identifier matching and in-place navigation.
func DefaultOptions() Options {
	return Options{}
}

func (f ChipFormat) String() string {
	if f == ChipPlain {
		return "plain"
	}
	return "rich"
}

func (m MatchBy) String() string {
	if m == MatchText {
		return "text"
	}
	return "identifier"
}

func (n NavigationMode) String() string {
	if n == NavigateOpenNew {
		return "open-new"
	}
	return "replace"
}

func (f ChipFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (m MatchBy) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (n NavigationMode) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// ParseChipFormat accepts "plain", "rich" or "richWithClose".
func ParseChipFormat(s string) (ChipFormat, error) {
	switch s {
	case "rich", "richWithClose", "":
		return ChipRich, nil
	case "plain":
		return ChipPlain, nil
	}
	return ChipRich, fmt.Errorf("chip format %q: %w", s, ErrUnknownOption)
}

// ParseMatchBy accepts "identifier" or "text".
func ParseMatchBy(s string) (MatchBy, error) {
	switch s {
	case "identifier", "id", "":
		return MatchIdentifier, nil
	case "text":
		return MatchText, nil
	}
	return MatchIdentifier, fmt.Errorf("match by %q: %w", s, ErrUnknownOption)
}

// ParseNavigationMode accepts "replace", "open-new" or "openNew".
func ParseNavigationMode(s string) (NavigationMode, error) {
	switch s {
	case "replace", "":
		return NavigateReplace, nil
	case "open-new", "openNew", "new":
		return NavigateOpenNew, nil
	}
	return NavigateReplace, fmt.Errorf("navigation mode %q: %w", s, ErrUnknownOption)
}

// ParseOptions builds Options from the three option strings.
func ParseOptions(chipFormat, matchBy, navigation string) (Options, error) {
	var opts Options
	var err error
	if opts.ChipFormat, err = ParseChipFormat(chipFormat); err != nil {
		return opts, err
	}
	if opts.MatchBy, err = ParseMatchBy(matchBy); err != nil {
		return opts, err
	}
	if opts.Navigation, err = ParseNavigationMode(navigation); err != nil {
		return opts, err
	}
	return opts, nil
}
