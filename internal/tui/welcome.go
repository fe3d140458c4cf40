package tui

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/onboardr/internal/onboarding"
	"github.com/mark3labs/onboardr/internal/tui/theme"
)

const (
	goalPlaceholder = "e.g., Add Buy Now button to my website"
	goalCharLimit   = 200
	welcomeWidth    = 64
)

// WelcomeView is the goal dialog shown in the welcome phase: a text input,
// matching suggestions and the Start Setup button.
type WelcomeView struct {
	brand    string
	input    textinput.Model
	selected int // index into the shown suggestions, -1 for none
}

// NewWelcomeView creates the goal dialog with the input focused.
func NewWelcomeView(brand string) *WelcomeView {
	ti := textinput.New()
	ti.Placeholder = goalPlaceholder
	ti.CharLimit = goalCharLimit
	ti.Prompt = ""
	ti.SetWidth(welcomeWidth - 8)
	ti.Focus()

	return &WelcomeView{
		brand:    brand,
		input:    ti,
		selected: -1,
	}
}

// Init starts the cursor blinking.
func (w *WelcomeView) Init() tea.Cmd {
	return textinput.Blink
}

// Value returns the raw input text.
func (w *WelcomeView) Value() string {
	return w.input.Value()
}

// SetValue replaces the input text and clears the suggestion selection.
func (w *WelcomeView) SetValue(s string) {
	w.input.SetValue(s)
	w.input.CursorEnd()
	w.selected = -1
}

// Reset clears the dialog for a new run.
func (w *WelcomeView) Reset() {
	w.input.Reset()
	w.selected = -1
}

// Suggestions returns the suggestions matching the current input.
func (w *WelcomeView) Suggestions() ([]string, int) {
	return onboarding.FilterSuggestions(w.input.Value())
}

// Selected returns the highlighted suggestion, if any.
func (w *WelcomeView) Selected() (string, bool) {
	shown, _ := w.Suggestions()
	if w.selected < 0 || w.selected >= len(shown) {
		return "", false
	}
	return shown[w.selected], true
}

// Update handles suggestion navigation and forwards everything else to the
// text input. Submission and quitting are handled by the App.
func (w *WelcomeView) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		shown, _ := w.Suggestions()
		switch msg.String() {
		case "down":
			if len(shown) > 0 {
				w.selected = (w.selected + 1) % len(shown)
			}
			return nil
		case "up":
			if len(shown) > 0 {
				if w.selected <= 0 {
					w.selected = len(shown) - 1
				} else {
					w.selected--
				}
			}
			return nil
		case "tab":
			if s, ok := w.Selected(); ok {
				w.SetValue(s)
			} else if len(shown) > 0 {
				w.SetValue(shown[0])
			}
			return nil
		}
	}

	before := w.input.Value()
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	if w.input.Value() != before {
		w.selected = -1
	}
	return cmd
}

// OpenEditor composes the goal in $EDITOR, seeded with the current input.
func (w *WelcomeView) OpenEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "onboardr_goal_*.txt")
	if err != nil {
		return nil
	}
	if _, err := tmpfile.WriteString(w.input.Value()); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()

	cmd, err := editor.Command("onboardr", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		return nil
	}

	path := tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer func() { _ = os.Remove(path) }()
		if err != nil {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		return GoalEditedMsg{Content: flattenGoal(string(content))}
	})
}

// flattenGoal flattens editor output to a single line.
func flattenGoal(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// View renders the dialog. canSubmit controls the Start Setup button.
func (w *WelcomeView) View(canSubmit bool) string {
	s := theme.Current().S()
	inner := welcomeWidth - 4

	var b strings.Builder
	b.WriteString(s.ModalTitle.Width(inner).Render("Welcome to " + w.brand))
	b.WriteString("\n")
	b.WriteString(s.ModalSubtitle.Width(inner).Render("Let's get you set up with payments in just a few steps. What's your main goal today?"))
	b.WriteString("\n\n")

	b.WriteString(s.InputLabel.Render("Your Goal"))
	b.WriteString("\n")
	b.WriteString(s.InputBox.Width(inner).Render(w.input.View()))
	b.WriteString("\n")

	shown, overflow := w.Suggestions()
	if len(shown) > 0 {
		b.WriteString(s.Muted.Render("Suggestions"))
		b.WriteString("\n")
		for i, sug := range shown {
			if i == w.selected {
				b.WriteString(s.SuggestionSelected.Render("› " + sug))
			} else {
				b.WriteString(s.Suggestion.Render("  " + sug))
			}
			b.WriteString("\n")
		}
		if overflow > 0 {
			b.WriteString(s.Subtle.PaddingLeft(4).Render(fmt.Sprintf("+%d more", overflow)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(RenderButtonBar(inner, Button{
		Label: "Start Setup",
		State: buttonState(canSubmit, canSubmit),
	}))
	b.WriteString("\n")
	b.WriteString(s.Subtle.Width(inner).Align(lipgloss.Center).Render("This will create a personalized checklist for you"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Center, HintWelcome()))

	return s.ModalContainer.Render(b.String())
}
