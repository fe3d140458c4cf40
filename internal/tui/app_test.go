package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/onboardr/internal/onboarding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_EmptyGoalRejected(t *testing.T) {
	_, err := NewApp(context.Background(), Options{Goal: "   "})
	require.ErrorIs(t, err, onboarding.ErrEmptyGoal)
}

func TestNewApp_GoalSkipsWelcome(t *testing.T) {
	app := newTestApp(t, "Add Buy Now button to my website")

	assert.Equal(t, onboarding.PhaseRunning, app.wizard.Phase())
	require.NotNil(t, app.card)
	assert.Equal(t, onboarding.StepTestMode, app.card.stepID)
	assert.Nil(t, app.Init())
}

func TestApp_WelcomeEnterWithoutGoal(t *testing.T) {
	app := newTestApp(t, "")
	assert.NotNil(t, app.Init())

	app.press("enter")
	assert.Equal(t, onboarding.PhaseWelcome, app.wizard.Phase())

	app.typeText("   ")
	app.press("enter")
	assert.Equal(t, onboarding.PhaseWelcome, app.wizard.Phase(), "whitespace-only goal is not submitted")
}

func TestApp_TypeAndSubmit(t *testing.T) {
	app := newTestApp(t, "")

	app.typeText("Sell q stickers")
	assert.Equal(t, onboarding.PhaseWelcome, app.wizard.Phase(), "typing q in the dialog does not quit")
	app.press("enter")

	assert.Equal(t, onboarding.PhaseRunning, app.wizard.Phase())
	assert.Equal(t, "Sell q stickers", app.wizard.Goal())
	assert.Equal(t, 0, app.wizard.Cursor())
}

func TestApp_SuggestionNavigation(t *testing.T) {
	app := newTestApp(t, "")

	app.press("down")
	app.press("down")
	sel, ok := app.welcome.Selected()
	require.True(t, ok)
	assert.Equal(t, "Set up subscription payments", sel)

	app.press("enter")
	assert.Equal(t, onboarding.PhaseRunning, app.wizard.Phase())
	assert.Equal(t, "Set up subscription payments", app.wizard.Goal())

	checkout, ok := app.wizard.Steps().Find(onboarding.StepCheckoutButton)
	require.True(t, ok)
	assert.Contains(t, checkout.CodeSnippet, "mode: 'subscription'")
}

func TestApp_TabFillsSuggestion(t *testing.T) {
	app := newTestApp(t, "")

	app.typeText("donat")
	app.press("tab")
	assert.Equal(t, "Create a donation page", app.welcome.Value())

	app.press("up")
	app.press("tab")
	assert.Equal(t, "Create a donation page", app.welcome.Value(), "single match wraps to itself")
}

func TestApp_GoalEditedMsg(t *testing.T) {
	app := newTestApp(t, "")
	app.Update(GoalEditedMsg{Content: "Accept recurring donations"})
	assert.Equal(t, "Accept recurring donations", app.welcome.Value())
}

func TestApp_Quit(t *testing.T) {
	tests := []struct {
		name string
		goal string
		key  string
	}{
		{name: "esc on welcome", goal: "", key: "esc"},
		{name: "ctrl+c on welcome", goal: "", key: "ctrl+c"},
		{name: "q while running", goal: "goal", key: "q"},
		{name: "ctrl+c while running", goal: "goal", key: "ctrl+c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, tt.goal)
			assert.True(t, isQuit(app.press(tt.key)))
			assert.True(t, app.quitting)
			assert.False(t, app.View().AltScreen)
		})
	}
}

func TestApp_WalkThroughAllSteps(t *testing.T) {
	app := newTestApp(t, "Add Buy Now button to my website")

	// Confirm test mode.
	app.pressAndRun(t, "enter")
	require.Equal(t, 1, app.wizard.Cursor())

	// Generate keys: the step stays active until the task reports back.
	cmd := app.press("enter")
	require.NotNil(t, cmd)
	assert.True(t, app.card.Generating())
	assert.Nil(t, app.press("enter"), "a second press while generating is ignored")
	assert.Equal(t, 1, app.wizard.Cursor())
	app.run(t, cmd)
	require.Equal(t, 2, app.wizard.Cursor())

	// Checkout: reveal, copy, then mark done.
	app.pressAndRun(t, "m")
	assert.Equal(t, 2, app.wizard.Cursor(), "mark done needs the code revealed")
	app.pressAndRun(t, "enter")
	assert.True(t, app.card.Revealed())
	assert.Equal(t, 2, app.wizard.Cursor())
	app.pressAndRun(t, "c")
	assert.Equal(t, "Code copied!", app.toast.GetMessage())
	app.pressAndRun(t, "m")
	require.Equal(t, 3, app.wizard.Cursor())

	// Copy code completes and copies.
	app.pressAndRun(t, "enter")
	require.Equal(t, 4, app.wizard.Cursor())
	writes := app.clipboard.Writes()
	require.Len(t, writes, 2)
	assert.Contains(t, writes[1], "mode: 'payment'")

	// Email notifications.
	app.pressAndRun(t, "enter")
	require.Equal(t, 5, app.wizard.Cursor())

	// Open-only leaves the step active; the primary action completes.
	app.pressAndRun(t, "o")
	assert.Equal(t, 5, app.wizard.Cursor())
	app.pressAndRun(t, "enter")

	assert.Equal(t, onboarding.PhaseComplete, app.wizard.Phase())
	assert.True(t, app.wizard.Progress().Done())
	assert.Nil(t, app.card)
	assert.Equal(t, []string{onboarding.DefaultDashboardURL, onboarding.DefaultDashboardURL}, app.opener.Opened())

	outcome := app.Outcome()
	assert.Equal(t, onboarding.PhaseComplete, outcome.Phase)
	assert.Equal(t, 6, outcome.Progress.Completed)
}

func TestApp_StaleKeyGenerationIgnored(t *testing.T) {
	app := newTestApp(t, "goal")
	app.pressAndRun(t, "enter")

	stale := app.generation
	cmd := app.press("enter")
	require.NotNil(t, cmd)

	// Restart tears the card down before the task reports back.
	app.press("ctrl+r")
	require.Equal(t, onboarding.PhaseWelcome, app.wizard.Phase())
	assert.NotEqual(t, stale, app.generation)

	app.typeText("goal")
	app.pressAndRun(t, "enter")
	app.pressAndRun(t, "enter")
	require.Equal(t, 1, app.wizard.Cursor())

	app.Update(apiKeysGeneratedMsg{generation: stale})
	assert.Equal(t, 1, app.wizard.Cursor(), "result for a torn-down card must not complete the new one")

	msgs := collectMsgs(cmd)
	var got *apiKeysGeneratedMsg
	for _, m := range msgs {
		if r, ok := m.(apiKeysGeneratedMsg); ok {
			got = &r
		}
	}
	require.NotNil(t, got)
	assert.ErrorIs(t, got.err, context.Canceled, "restart cancels the running task")
}

func TestApp_RestartFromEveryPhase(t *testing.T) {
	app := newTestApp(t, "goal")
	for app.wizard.Phase() == onboarding.PhaseRunning {
		app.pressAndRun(t, "enter")
	}
	require.Equal(t, onboarding.PhaseComplete, app.wizard.Phase())

	app.press("ctrl+r")
	assert.Equal(t, onboarding.PhaseWelcome, app.wizard.Phase())
	assert.Empty(t, app.wizard.Goal())
	assert.Empty(t, app.wizard.Steps())
	assert.Equal(t, 0, app.wizard.Cursor())
	assert.Empty(t, app.welcome.Value())
}

func TestApp_CompleteScreenButtons(t *testing.T) {
	app := newTestApp(t, "goal")
	for app.wizard.Phase() == onboarding.PhaseRunning {
		app.pressAndRun(t, "enter")
	}
	require.Equal(t, onboarding.PhaseComplete, app.wizard.Phase())
	opened := len(app.opener.Opened())

	app.pressAndRun(t, "enter")
	assert.Len(t, app.opener.Opened(), opened+1, "Go to Dashboard is focused first")
	assert.Equal(t, onboarding.PhaseComplete, app.wizard.Phase())

	app.press("tab")
	assert.Equal(t, completeRestart, app.complete.Focused())
	app.press("shift+tab")
	assert.Equal(t, completeDashboard, app.complete.Focused())
	app.press("right")

	app.press("enter")
	assert.Equal(t, onboarding.PhaseWelcome, app.wizard.Phase())
}

func TestApp_CollaboratorFailuresDoNotBlock(t *testing.T) {
	app := newTestApp(t, "goal")
	app.clipboard.err = errFake
	app.opener.err = errFake

	for i := 0; i < 3; i++ {
		for app.wizard.Cursor() == i {
			app.pressAndRun(t, "enter")
		}
	}
	require.Equal(t, 3, app.wizard.Cursor())

	app.pressAndRun(t, "enter")
	assert.Equal(t, 4, app.wizard.Cursor(), "copy failure still completes the step")
	assert.Equal(t, "Could not copy code", app.toast.GetMessage())

	app.pressAndRun(t, "enter")
	app.pressAndRun(t, "enter")
	assert.Equal(t, onboarding.PhaseComplete, app.wizard.Phase(), "open failure still completes the step")
	assert.Equal(t, "Could not open dashboard", app.toast.GetMessage())
}

func TestApp_RenderWelcome(t *testing.T) {
	app := newTestApp(t, "")
	screen := app.screen()

	assert.Contains(t, screen, "Welcome to PayFlow")
	assert.Contains(t, screen, "Let's get you set up with payments")
	assert.Contains(t, screen, "Your Goal")
	assert.Contains(t, screen, goalPlaceholder)
	assert.Contains(t, screen, "Add Buy Now button to my website")
	assert.Contains(t, screen, "+10 more")
	assert.Contains(t, screen, "Start Setup")
	assert.Contains(t, screen, "This will create a personalized checklist for you")

	app.typeText("zzz")
	screen = app.screen()
	assert.NotContains(t, screen, "Suggestions")
	assert.NotContains(t, screen, "more")
}

func TestApp_RenderRunning(t *testing.T) {
	app := newTestApp(t, "Add Buy Now button to my website")
	app.pressAndRun(t, "enter")

	screen := app.screen()
	assert.Contains(t, screen, "Setup Progress")
	assert.Contains(t, screen, "Steps completed 1/6")
	assert.Contains(t, screen, "17%")
	assert.Contains(t, screen, "Setting up: Add Buy Now button to my website")
	assert.Contains(t, screen, "Complete each step below to get your payment system ready")
	assert.Contains(t, screen, "Test mode confirmed")
	assert.Contains(t, screen, "Step 2 of 6")
	assert.Contains(t, screen, "Generate Keys")
	assert.Contains(t, screen, "Waiting")
	assert.NotContains(t, screen, "All Done!")
}

func TestApp_RenderCheckoutSnippet(t *testing.T) {
	app := newTestApp(t, "Set up subscription payments")
	for app.wizard.Cursor() < 2 {
		app.pressAndRun(t, "enter")
	}
	assert.NotContains(t, app.screen(), "redirectToCheckout")

	app.pressAndRun(t, "enter")
	screen := app.screen()
	assert.Contains(t, screen, "Create Subscription Button")
	assert.Contains(t, screen, "redirectToCheckout")
	assert.Contains(t, screen, labelMarkDone)
}

func TestApp_RenderComplete(t *testing.T) {
	app := newTestApp(t, "Sell digital downloads")
	for app.wizard.Phase() == onboarding.PhaseRunning {
		app.pressAndRun(t, "enter")
	}

	screen := app.screen()
	assert.Contains(t, screen, "Congratulations!")
	assert.Contains(t, screen, "You've successfully completed the PayFlow setup")
	assert.Contains(t, screen, `Your Goal: "Sell digital downloads"`)
	assert.Contains(t, screen, "You're now ready to accept payments!")
	assert.Contains(t, screen, "Go to Dashboard")
	assert.Contains(t, screen, "Start New Setup")
	assert.Contains(t, screen, "Steps completed 6/6")
	assert.Contains(t, screen, "All Done!")
	assert.Contains(t, screen, "You're ready to start")
}

func TestApp_RenderCompleteGoalVerbatim(t *testing.T) {
	app := newTestApp(t, `Sell "VIP" passes\today`)
	for app.wizard.Phase() == onboarding.PhaseRunning {
		app.pressAndRun(t, "enter")
	}

	screen := app.screen()
	assert.Contains(t, screen, `Your Goal: "Sell "VIP" passes\today"`)
	assert.NotContains(t, screen, `\"VIP\"`)
}

func TestApp_RenderNarrowHidesSidebar(t *testing.T) {
	app := newTestApp(t, "goal")
	app.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	assert.NotContains(t, app.screen(), "Setup Progress")
}
