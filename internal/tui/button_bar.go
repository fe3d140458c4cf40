package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/onboardr/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// Button represents a single button in a button bar.
type Button struct {
	Label string
	State ButtonState
}

// RenderButton renders one button.
func RenderButton(btn Button) string {
	s := theme.Current().S()
	switch btn.State {
	case ButtonDisabled:
		return s.ButtonDisabled.Render(btn.Label)
	case ButtonFocused:
		return s.ButtonFocused.Render(btn.Label)
	default:
		return s.ButtonNormal.Render(btn.Label)
	}
}

// RenderButtonBar renders buttons side by side, centered in width.
// A non-positive width skips centering.
func RenderButtonBar(width int, buttons ...Button) string {
	if len(buttons) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		rendered = append(rendered, RenderButton(btn))
	}
	bar := strings.Join(rendered, "")
	if width <= 0 {
		return bar
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}

// buttonState maps enabled/focused flags to a ButtonState.
func buttonState(enabled, focused bool) ButtonState {
	switch {
	case !enabled:
		return ButtonDisabled
	case focused:
		return ButtonFocused
	default:
		return ButtonNormal
	}
}
