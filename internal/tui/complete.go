package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/onboardr/internal/tui/theme"
)

// Completion screen buttons, in focus order.
const (
	completeDashboard = iota
	completeRestart
	completeButtonCount
)

const completeWidth = 60

// CompleteView is the congratulations screen shown after the last step.
type CompleteView struct {
	focused int
}

// NewCompleteView creates the completion screen with the dashboard button
// focused.
func NewCompleteView() *CompleteView {
	return &CompleteView{focused: completeDashboard}
}

// Next moves focus to the next button.
func (c *CompleteView) Next() {
	c.focused = (c.focused + 1) % completeButtonCount
}

// Prev moves focus to the previous button.
func (c *CompleteView) Prev() {
	c.focused = (c.focused + completeButtonCount - 1) % completeButtonCount
}

// Focused returns the focused button.
func (c *CompleteView) Focused() int {
	return c.focused
}

// Reset restores the initial focus.
func (c *CompleteView) Reset() {
	c.focused = completeDashboard
}

// View renders the screen for goal.
func (c *CompleteView) View(brand, goal string) string {
	s := theme.Current().S()
	inner := completeWidth - 4

	var b strings.Builder
	b.WriteString(s.Success.Width(inner).Align(lipgloss.Center).Render(iconCompleted))
	b.WriteString("\n")
	b.WriteString(s.ModalTitle.Width(inner).Render("Congratulations!"))
	b.WriteString("\n")
	b.WriteString(s.ModalSubtitle.Width(inner).Render("You've successfully completed the " + brand + " setup"))
	b.WriteString("\n\n")
	b.WriteString(s.InputLabel.Width(inner).Render(`Your Goal: "` + goal + `"`))
	b.WriteString("\n")
	b.WriteString(s.Muted.Width(inner).Render("You're now ready to accept payments! Your integration is live in test mode."))
	b.WriteString("\n\n")
	b.WriteString(RenderButtonBar(inner,
		Button{Label: "Go to Dashboard", State: buttonState(true, c.focused == completeDashboard)},
		Button{Label: "Start New Setup", State: buttonState(true, c.focused == completeRestart)},
	))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Center, HintComplete()))

	return s.ModalContainer.Render(b.String())
}
