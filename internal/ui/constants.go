// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// TitleHeight is the space for the title line inside a panel.
	TitleHeight = 1
)
