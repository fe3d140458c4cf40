package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/onboardr/internal/onboarding"
	"github.com/mark3labs/onboardr/internal/tui/theme"
)

const (
	labelMarkDone      = "Mark as Done"
	labelCopy          = "Copy"
	labelOpenDashboard = "Open Dashboard"
	labelCompleted     = "Completed"
	labelGenerating    = "Generating..."
)

// StepCard holds the interaction state of the active step's card. A new
// card is created whenever the cursor moves; closing it cancels any task
// the card started.
type StepCard struct {
	stepID     onboarding.StepID
	revealed   bool
	generating bool
	spinner    spinner.Model
	cancel     context.CancelFunc
}

func newStepCard(id onboarding.StepID) *StepCard {
	return &StepCard{
		stepID:  id,
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

// Generating reports whether a key generation task is in flight.
func (c *StepCard) Generating() bool {
	return c.generating
}

// Revealed reports whether the checkout snippet is shown.
func (c *StepCard) Revealed() bool {
	return c.revealed
}

// startGeneration launches the simulated key generation bound to a child of
// parent. The result carries generation so a stale card's result can be
// recognized.
func (c *StepCard) startGeneration(parent context.Context, delay time.Duration, generation int) tea.Cmd {
	ctx, cancel := context.WithCancel(parent)
	c.cancel = cancel
	c.generating = true
	return tea.Batch(c.spinner.Tick, generateAPIKeys(ctx, delay, generation))
}

// Update advances the spinner while generating.
func (c *StepCard) Update(msg tea.Msg) tea.Cmd {
	if !c.generating {
		return nil
	}
	var cmd tea.Cmd
	c.spinner, cmd = c.spinner.Update(msg)
	return cmd
}

// Close cancels the card's outstanding task, if any.
func (c *StepCard) Close() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generating = false
}

// generateAPIKeys waits for delay unless ctx ends first.
func generateAPIKeys(ctx context.Context, delay time.Duration, generation int) tea.Cmd {
	return func() tea.Msg {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			return apiKeysGeneratedMsg{generation: generation}
		case <-ctx.Done():
			return apiKeysGeneratedMsg{generation: generation, err: ctx.Err()}
		}
	}
}

// buttons returns the active card's controls. The first enabled button is
// the primary action bound to enter.
func (c *StepCard) buttons(step onboarding.Step) []Button {
	primary := Button{Label: step.ActionLabel(), State: ButtonFocused}

	switch step.Kind.(type) {
	case onboarding.GenerateAPIKeys:
		if c.generating {
			return []Button{{Label: labelGenerating, State: ButtonDisabled}}
		}
	case onboarding.CreateCheckoutButton:
		if c.revealed {
			return []Button{
				{Label: labelMarkDone, State: ButtonFocused},
				{Label: labelCopy, State: ButtonNormal},
			}
		}
	case onboarding.SearchTransactions:
		return []Button{primary, {Label: labelOpenDashboard, State: ButtonNormal}}
	}
	return []Button{primary}
}

// hints returns the key hints for the active card.
func (c *StepCard) hints(step onboarding.Step) string {
	pairs := []string{}
	switch step.Kind.(type) {
	case onboarding.GenerateAPIKeys:
		if !c.generating {
			pairs = append(pairs, KeyEnter, strings.ToLower(step.ActionLabel()))
		}
	case onboarding.CreateCheckoutButton:
		if c.revealed {
			pairs = append(pairs, KeyEnter+"/"+KeyM, "mark done", KeyC, "copy")
		} else {
			pairs = append(pairs, KeyEnter, strings.ToLower(step.ActionLabel()))
		}
	case onboarding.SearchTransactions:
		pairs = append(pairs, KeyEnter, strings.ToLower(step.ActionLabel()), KeyO, "open only")
	default:
		pairs = append(pairs, KeyEnter, strings.ToLower(step.ActionLabel()))
	}
	pairs = append(pairs, KeyCtrlR, "restart", KeyQ, "quit")
	return RenderHintBar(pairs...)
}

// renderCards renders every step as a card: completed and pending steps
// collapsed, the active step expanded.
func renderCards(steps onboarding.Sequence, card *StepCard, width int) string {
	cards := make([]string, 0, len(steps))
	for i, step := range steps {
		switch step.Status {
		case onboarding.StatusActive:
			cards = append(cards, renderActiveCard(step, i, len(steps), card, width))
		case onboarding.StatusCompleted:
			cards = append(cards, renderCompletedCard(step, width))
		default:
			cards = append(cards, renderPendingCard(step, width))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderPendingCard(step onboarding.Step, width int) string {
	s := theme.Current().S()
	header := cardHeader(statusIcon(step.Status)+" "+step.Title, s.BadgeWaiting.Render("Waiting"), width-4)
	return s.CardInactive.Width(width).Render(header)
}

func renderCompletedCard(step onboarding.Step, width int) string {
	s := theme.Current().S()
	header := cardHeader(statusIcon(step.Status)+" "+s.CardTitle.Render(step.Title), s.BadgeDone.Render(labelCompleted), width-4)
	body := s.Validation.Render(iconCompleted + " " + step.ValidationText)
	return s.CardDone.Width(width).Render(header + "\n" + body)
}

func renderActiveCard(step onboarding.Step, index, total int, card *StepCard, width int) string {
	s := theme.Current().S()
	inner := width - 4

	var b strings.Builder
	badge := s.BadgeActive.Render(fmt.Sprintf("Step %d of %d", index+1, total))
	b.WriteString(cardHeader(statusIcon(step.Status)+" "+s.CardTitle.Render(step.Title), badge, inner))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(step.Description))
	b.WriteString("\n\n")
	b.WriteString(renderMarkdown(step.Content, inner))
	b.WriteString("\n")

	if k, ok := step.Kind.(onboarding.CreateCheckoutButton); ok && card.revealed {
		b.WriteString("\n")
		b.WriteString(s.CodeBlock.Width(inner).Render(highlightSnippet(k.Snippet)))
		b.WriteString("\n")
	}

	if card.generating {
		b.WriteString("\n")
		b.WriteString(card.spinner.View() + " " + s.Muted.Render("Generating your API keys..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderButtonBar(0, card.buttons(step)...))
	b.WriteString("\n\n")
	b.WriteString(card.hints(step))

	return s.CardActive.Width(width).Render(b.String())
}

// cardHeader lays out a title on the left and a badge on the right.
func cardHeader(title, badge string, width int) string {
	gap := width - lipgloss.Width(title) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + badge
}
