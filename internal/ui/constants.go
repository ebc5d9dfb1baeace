// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for sidebar width (1/3 of total width)
	SidebarWidthRatio = 3

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Fallback terminal dimensions, used before the host reports a real size
const (
	FallbackTerminalWidth  = 80
	FallbackTerminalHeight = 24
)

// Minimum terminal dimensions enforced by layout calculations
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 10
)

// Settle delays for deferred re-measurement. A resize burst (terminal font
// change, window snap) settles faster than a focus transition.
const (
	ResizeSettleDelay = 200 * time.Millisecond
	FocusSettleDelay  = 350 * time.Millisecond
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)
