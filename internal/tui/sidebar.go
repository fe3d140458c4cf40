package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/progress"
	"github.com/mark3labs/onboardr/internal/onboarding"
	"github.com/mark3labs/onboardr/internal/tui/theme"
)

// SidebarWidth is the sidebar's width including its border.
const SidebarWidth = 36

// Status icons used by the sidebar and step cards.
const (
	iconCompleted = "✓"
	iconActive    = "●"
	iconPending   = "○"
)

// statusIcon returns the styled icon for a step status.
func statusIcon(status onboarding.Status) string {
	s := theme.Current().S()
	switch status {
	case onboarding.StatusCompleted:
		return s.StepIconDone.Render(iconCompleted)
	case onboarding.StatusActive:
		return s.StepIconActive.Render(iconActive)
	default:
		return s.StepIconPending.Render(iconPending)
	}
}

// renderSidebar renders the progress column: counter, progress bar and
// the step list with status icons.
func renderSidebar(steps onboarding.Sequence, p onboarding.Progress, height int) string {
	th := theme.Current()
	s := th.S()
	inner := SidebarWidth - 5

	var b strings.Builder
	b.WriteString(s.SidebarTitle.Render("Setup Progress"))
	b.WriteString("\n\n")
	b.WriteString(s.Muted.Render(fmt.Sprintf("Steps completed %d/%d", p.Completed, p.Total)))
	b.WriteString("\n")

	bar := progress.New(
		progress.WithColors(theme.HexToColor(th.Primary), theme.HexToColor(th.Success)),
		progress.WithoutPercentage(),
		progress.WithWidth(inner-5),
	)
	b.WriteString(bar.ViewAs(p.Ratio()))
	b.WriteString(s.Text.Render(fmt.Sprintf(" %3.0f%%", p.Percentage)))
	b.WriteString("\n\n")

	for i, step := range steps {
		title := step.Title
		switch step.Status {
		case onboarding.StatusActive:
			title = s.StepTitleActive.Render(title)
		case onboarding.StatusCompleted:
			title = s.StepTitle.Render(title)
		default:
			title = s.StepTitlePending.Render(title)
		}
		b.WriteString(statusIcon(step.Status) + " " + title)
		b.WriteString("\n")
		b.WriteString(s.StepDesc.Width(inner).PaddingLeft(2).Render(step.Description))
		if i < len(steps)-1 {
			b.WriteString("\n\n")
		}
	}

	if p.Done() {
		b.WriteString("\n\n")
		b.WriteString(s.AllDoneBox.Width(inner).Render(
			iconCompleted + " All Done!\n" + s.Muted.Render("You're ready to start accepting payments")))
	}

	style := s.SidebarContainer.Width(SidebarWidth)
	if height > 0 {
		style = style.Height(height)
	}
	return style.Render(b.String())
}
