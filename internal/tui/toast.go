package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/onboardr/internal/tui/theme"
)

// ToastDuration is how long a toast stays on screen.
const ToastDuration = 3 * time.Second

// ToastDismissMsg is sent when a toast should be dismissed. Seq identifies
// the toast it was scheduled for.
type ToastDismissMsg struct {
	Seq int
}

// Toast is a minimal notification shown in the bottom-right corner.
// Showing a new toast replaces the current one and restarts the timer.
type Toast struct {
	message string
	visible bool
	seq     int
}

// NewToast creates a new Toast component.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays msg and returns the command that dismisses it.
func (t *Toast) Show(msg string) tea.Cmd {
	t.message = msg
	t.visible = true
	t.seq++
	seq := t.seq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastDismissMsg{Seq: seq}
	})
}

// Update handles dismissal. A dismissal for an older toast is ignored so a
// replaced toast keeps its full duration.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(ToastDismissMsg); ok && m.Seq == t.seq {
		t.visible = false
		t.message = ""
	}
	return nil
}

// View renders the toast body, or "" when hidden. The caller positions it.
func (t *Toast) View(maxWidth int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	style := theme.Current().S().Toast
	content := style.Render(t.message)
	if maxWidth > 2 && lipgloss.Width(content) > maxWidth-2 {
		content = style.Width(maxWidth - 2).Render(t.message)
	}
	return content
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// GetMessage returns the current toast message (empty if not visible).
func (t *Toast) GetMessage() string {
	if !t.visible {
		return ""
	}
	return t.message
}
