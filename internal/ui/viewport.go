package ui

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/banterhq/banter/internal/logger"
)

// RemeasureMsg asks the tracker to re-evaluate its layout after a settle
// delay. The generation field ties the message to the activation that
// scheduled it; stale generations are dropped.
type RemeasureMsg struct {
	generation int
}

// ViewportTracker holds the terminal dimensions and the layout derived from
// them. Size changes land immediately; focus transitions and resize bursts
// also schedule a deferred re-measure, since terminals report sizes
// mid-animation (window snapping, font zoom) that settle a moment later.
//
// One tracker is constructed per app instance and passed down explicitly.
// Deactivate invalidates any re-measure still in flight.
type ViewportTracker struct {
	active     bool
	generation int

	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int
	ChatWidth     int

	log *slog.Logger
}

// NewViewportTracker creates an inactive tracker.
func NewViewportTracker() *ViewportTracker {
	return &ViewportTracker{
		HeaderHeight: HeaderHeight,
		FooterHeight: FooterHeight,
		log:          logger.WithComponent("ui"),
	}
}

// Activate starts tracking and performs the first measurement immediately,
// using the fallback size until the terminal reports a real one.
func (t *ViewportTracker) Activate() {
	t.active = true
	t.generation++
	if t.TerminalWidth == 0 || t.TerminalHeight == 0 {
		t.measure(FallbackTerminalWidth, FallbackTerminalHeight)
	}
}

// Deactivate stops tracking. Pending re-measure ticks from this activation
// become no-ops.
func (t *ViewportTracker) Deactivate() {
	t.active = false
	t.generation++
}

// Active reports whether the tracker is currently measuring.
func (t *ViewportTracker) Active() bool {
	return t.active
}

// Update reacts to size, focus, and settle messages. It returns a command
// when a deferred re-measure was scheduled, nil otherwise.
func (t *ViewportTracker) Update(msg tea.Msg) tea.Cmd {
	if !t.active {
		return nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.measure(msg.Width, msg.Height)
		return t.scheduleRemeasure(ResizeSettleDelay)
	case tea.FocusMsg, tea.BlurMsg:
		// Focus transitions can change the usable area (overlay bars,
		// on-screen keyboards under some terminals); give it time to settle.
		return t.scheduleRemeasure(FocusSettleDelay)
	case RemeasureMsg:
		if msg.generation != t.generation {
			return nil
		}
		t.measure(t.TerminalWidth, t.TerminalHeight)
	}
	return nil
}

func (t *ViewportTracker) scheduleRemeasure(delay time.Duration) tea.Cmd {
	gen := t.generation
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return RemeasureMsg{generation: gen}
	})
}

// measure recalculates all dimensions from a terminal size.
func (t *ViewportTracker) measure(width, height int) {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	t.TerminalWidth = width
	t.TerminalHeight = height

	t.HeaderHeight = HeaderHeight
	t.FooterHeight = FooterHeight

	// Content area is everything between header and footer
	t.ContentHeight = height - t.HeaderHeight - t.FooterHeight

	// Sidebar is 1/3 of width, chat gets the rest
	t.SidebarWidth = width / SidebarWidthRatio
	t.ChatWidth = width - t.SidebarWidth

	t.log.Debug("viewport measured",
		"width", width,
		"height", height,
		"contentHeight", t.ContentHeight,
		"sidebarWidth", t.SidebarWidth,
		"chatWidth", t.ChatWidth,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (t *ViewportTracker) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (t *ViewportTracker) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
