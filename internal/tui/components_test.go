package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func TestRenderHintBar(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
		want  string
	}{
		{name: "empty", pairs: nil, want: ""},
		{name: "odd pairs", pairs: []string{"enter"}, want: ""},
		{name: "single", pairs: []string{"enter", "start"}, want: "enter start"},
		{name: "multiple", pairs: []string{"↑/↓", "choose", "enter", "start"}, want: "↑/↓ choose • enter start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ansi.Strip(RenderHintBar(tt.pairs...)))
		})
	}
}

func TestHintBars(t *testing.T) {
	welcome := ansi.Strip(HintWelcome())
	assert.Contains(t, welcome, "ctrl+e editor")
	assert.Contains(t, welcome, "esc quit")

	complete := ansi.Strip(HintComplete())
	assert.Contains(t, complete, "tab switch")
	assert.Contains(t, complete, "ctrl+r restart")
}

func TestButtonState(t *testing.T) {
	tests := []struct {
		enabled, focused bool
		want             ButtonState
	}{
		{false, false, ButtonDisabled},
		{false, true, ButtonDisabled},
		{true, false, ButtonNormal},
		{true, true, ButtonFocused},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, buttonState(tt.enabled, tt.focused))
	}
}

func TestRenderButtonBar(t *testing.T) {
	assert.Empty(t, RenderButtonBar(40))

	bar := ansi.Strip(RenderButtonBar(0,
		Button{Label: "Mark as Done", State: ButtonFocused},
		Button{Label: "Copy", State: ButtonNormal},
	))
	assert.Contains(t, bar, "Mark as Done")
	assert.Contains(t, bar, "Copy")
	assert.Less(t, strings.Index(bar, "Mark as Done"), strings.Index(bar, "Copy"))

	centered := RenderButtonBar(60, Button{Label: "Start Setup"})
	assert.Equal(t, 60, ansi.StringWidth(centered))
}

func TestCompleteView_Focus(t *testing.T) {
	c := NewCompleteView()
	assert.Equal(t, completeDashboard, c.Focused())

	c.Next()
	assert.Equal(t, completeRestart, c.Focused())
	c.Next()
	assert.Equal(t, completeDashboard, c.Focused(), "focus wraps")
	c.Prev()
	assert.Equal(t, completeRestart, c.Focused())

	c.Reset()
	assert.Equal(t, completeDashboard, c.Focused())
}
