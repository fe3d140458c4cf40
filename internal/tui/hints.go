package tui

import (
	"strings"

	"github.com/mark3labs/onboardr/internal/tui/theme"
)

// Standard key representations for consistent hints across the app.
const (
	KeyUpDown = "↑/↓"
	KeyEnter  = "enter"
	KeyEsc    = "esc"
	KeyTab    = "tab"
	KeyCtrlE  = "ctrl+e"
	KeyCtrlR  = "ctrl+r"
	KeyM      = "m"
	KeyC      = "c"
	KeyO      = "o"
	KeyQ      = "q"
)

// RenderHint renders a single key-description pair.
// Example: RenderHint("enter", "select") -> "enter select"
func RenderHint(key, desc string) string {
	s := theme.Current().S()
	return s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
}

// RenderHintBar renders a hint bar with multiple key-description pairs.
// Example: RenderHintBar("↑/↓", "choose", "enter", "start")
// Returns: "↑/↓ choose • enter start"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSeparator.Render("•") + " ")
		}
		b.WriteString(RenderHint(pairs[i], pairs[i+1]))
	}
	return b.String()
}

// HintWelcome returns hints for the goal dialog.
func HintWelcome() string {
	return RenderHintBar(KeyUpDown, "choose", KeyTab, "fill", KeyCtrlE, "editor", KeyEnter, "start", KeyEsc, "quit")
}

// HintComplete returns hints for the completion screen.
func HintComplete() string {
	return RenderHintBar(KeyTab, "switch", KeyEnter, "select", KeyCtrlR, "restart", KeyQ, "quit")
}
