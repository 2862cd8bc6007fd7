package model

// Centralized icons for the terminal chip bar
// Using simple single-width characters for consistent terminal rendering
const (
	IconClose    = "×" // Chip removal control
	IconActive   = "●" // Highlighted sidebar link
	IconInactive = "○" // Sidebar link not in the active set
	IconTab      = "▸" // Current tab marker
	IconNone     = "-" // No filters
)

// Version is the current chipbar release.
const Version = "0.3.1"
