// Package tui is the terminal front end of the onboarding wizard. The App
// model routes input by wizard phase: the goal dialog, the step cards with
// the progress sidebar, and the completion screen.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/onboardr/internal/logger"
	"github.com/mark3labs/onboardr/internal/onboarding"
	"github.com/mark3labs/onboardr/internal/tui/theme"
)

// Fallback canvas size until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 32
)

// minWidthWithSidebar is the narrowest terminal that still shows the sidebar.
const minWidthWithSidebar = SidebarWidth + 44

// Options configures the App.
type Options struct {
	Brand        string
	DashboardURL string
	APIKeyDelay  time.Duration

	// Goal, when set, is submitted before the first frame so the welcome
	// dialog is skipped.
	Goal string

	AltScreen bool
	Clipboard Clipboard
	Opener    Opener
	Logger    *logger.Logger
}

// Outcome summarizes a finished session.
type Outcome struct {
	Phase    onboarding.Phase
	Goal     string
	Progress onboarding.Progress
}

// App is the root bubbletea model.
type App struct {
	ctx  context.Context
	opts Options
	log  *logger.Logger

	wizard   *onboarding.Wizard
	welcome  *WelcomeView
	card     *StepCard
	complete *CompleteView
	toast    *Toast

	width      int
	height     int
	generation int
	quitting   bool
}

// NewApp creates the root model. Tasks started by the App are bound to ctx.
func NewApp(ctx context.Context, opts Options) (*App, error) {
	if opts.Brand == "" {
		opts.Brand = "PayFlow"
	}
	if opts.DashboardURL == "" {
		opts.DashboardURL = onboarding.DefaultDashboardURL
	}
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard{}
	}
	if opts.Opener == nil {
		opts.Opener = BrowserOpener{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Component("tui")
	}

	a := &App{
		ctx:  ctx,
		opts: opts,
		log:  opts.Logger,
		wizard: onboarding.NewWizard(
			onboarding.WithAPIKeyDelay(opts.APIKeyDelay),
			onboarding.WithDashboardURL(opts.DashboardURL),
		),
		welcome:  NewWelcomeView(opts.Brand),
		complete: NewCompleteView(),
		toast:    NewToast(),
	}
	a.wizard.SetObserver(func(tr onboarding.Transition) {
		a.log.Debug("transition %s -> %s cursor=%d goal=%q", tr.From, tr.To, tr.Cursor, tr.Goal)
	})

	if opts.Goal != "" {
		if err := a.wizard.SubmitGoal(opts.Goal); err != nil {
			return nil, fmt.Errorf("starting with goal: %w", err)
		}
		a.log.Info("goal submitted: %q", a.wizard.Goal())
		a.resetCard()
	}

	return a, nil
}

// Outcome reports the session state.
func (a *App) Outcome() Outcome {
	return Outcome{
		Phase:    a.wizard.Phase(),
		Goal:     a.wizard.Goal(),
		Progress: a.wizard.Progress(),
	}
}

// Close cancels outstanding tasks.
func (a *App) Close() {
	if a.card != nil {
		a.card.Close()
	}
}

// Init initializes the application and returns any initial commands.
func (a *App) Init() tea.Cmd {
	if a.wizard.Phase() == onboarding.PhaseWelcome {
		return a.welcome.Init()
	}
	return nil
}

// Update handles incoming messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyPressMsg:
		return a, a.handleKeyPress(msg)

	case apiKeysGeneratedMsg:
		return a, a.handleKeysGenerated(msg)

	case copyResultMsg:
		if msg.err != nil {
			a.log.Warn("clipboard write failed: %v", msg.err)
			return a, a.toast.Show("Could not copy code")
		}
		return a, a.toast.Show("Code copied!")

	case openResultMsg:
		if msg.err != nil {
			a.log.Warn("opening %s failed: %v", msg.url, msg.err)
			return a, a.toast.Show("Could not open dashboard")
		}
		a.log.Info("opened %s", msg.url)
		return a, nil

	case GoalEditedMsg:
		if a.wizard.Phase() == onboarding.PhaseWelcome {
			a.welcome.SetValue(msg.Content)
		}
		return a, nil

	case ToastDismissMsg:
		return a, a.toast.Update(msg)

	case spinner.TickMsg:
		if a.card != nil {
			return a, a.card.Update(msg)
		}
		return a, nil
	}

	if a.wizard.Phase() == onboarding.PhaseWelcome {
		return a, a.welcome.Update(msg)
	}
	return a, nil
}

func (a *App) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}

	switch a.wizard.Phase() {
	case onboarding.PhaseWelcome:
		return a.handleWelcomeKey(msg)
	case onboarding.PhaseRunning:
		return a.handleRunningKey(msg)
	case onboarding.PhaseComplete:
		return a.handleCompleteKey(msg)
	}
	return nil
}

func (a *App) handleWelcomeKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return a.quit()
	case "enter":
		if sel, ok := a.welcome.Selected(); ok {
			a.welcome.SetValue(sel)
		}
		return a.submitGoal(a.welcome.Value())
	case "ctrl+e":
		return a.welcome.OpenEditor()
	}
	return a.welcome.Update(msg)
}

func (a *App) handleRunningKey(msg tea.KeyPressMsg) tea.Cmd {
	step, ok := a.wizard.ActiveStep()
	if !ok || a.card == nil {
		return nil
	}

	switch msg.String() {
	case "enter":
		return a.primaryAction(step)
	case "m":
		if _, ok := step.Kind.(onboarding.CreateCheckoutButton); ok && a.card.Revealed() {
			return a.completeStep()
		}
	case "c":
		switch k := step.Kind.(type) {
		case onboarding.CreateCheckoutButton:
			if a.card.Revealed() {
				return a.copyCmd(k.Snippet)
			}
		case onboarding.CopyIntegrationCode:
			return a.primaryAction(step)
		}
	case "o":
		if k, ok := step.Kind.(onboarding.SearchTransactions); ok {
			return a.openCmd(k.DashboardURL)
		}
	case "ctrl+r":
		return a.restart()
	case "q":
		return a.quit()
	}
	return nil
}

func (a *App) handleCompleteKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "right", "l":
		a.complete.Next()
	case "shift+tab", "left", "h":
		a.complete.Prev()
	case "enter":
		if a.complete.Focused() == completeRestart {
			return a.restart()
		}
		return a.openCmd(a.opts.DashboardURL)
	case "ctrl+r":
		return a.restart()
	case "q", "esc":
		return a.quit()
	}
	return nil
}

// primaryAction performs the active step's main interaction.
func (a *App) primaryAction(step onboarding.Step) tea.Cmd {
	a.log.Debug("primary action on %s", step.ID)

	switch k := step.Kind.(type) {
	case onboarding.ConfirmTestMode, onboarding.EnableEmailNotifications:
		return a.completeStep()

	case onboarding.GenerateAPIKeys:
		if a.card.Generating() {
			return nil
		}
		return a.card.startGeneration(a.ctx, k.Delay, a.generation)

	case onboarding.CreateCheckoutButton:
		if !a.card.Revealed() {
			a.card.revealed = true
			return nil
		}
		return a.completeStep()

	case onboarding.CopyIntegrationCode:
		return tea.Batch(a.copyCmd(k.Snippet), a.completeStep())

	case onboarding.SearchTransactions:
		return tea.Batch(a.openCmd(k.DashboardURL), a.completeStep())
	}
	return nil
}

func (a *App) handleKeysGenerated(msg apiKeysGeneratedMsg) tea.Cmd {
	if msg.generation != a.generation {
		a.log.Debug("dropping stale key generation result (generation %d, current %d)", msg.generation, a.generation)
		return nil
	}
	if msg.err != nil {
		a.log.Debug("key generation canceled: %v", msg.err)
		return nil
	}
	step, ok := a.wizard.ActiveStep()
	if !ok {
		return nil
	}
	if _, ok := step.Kind.(onboarding.GenerateAPIKeys); !ok {
		return nil
	}
	return a.completeStep()
}

func (a *App) submitGoal(text string) tea.Cmd {
	if !a.wizard.CanSubmit(text) {
		return nil
	}
	if err := a.wizard.SubmitGoal(text); err != nil {
		a.log.Warn("submit goal: %v", err)
		return nil
	}
	a.log.Info("goal submitted: %q", a.wizard.Goal())
	a.resetCard()
	return nil
}

func (a *App) completeStep() tea.Cmd {
	step, _ := a.wizard.ActiveStep()
	if err := a.wizard.CompleteActiveStep(); err != nil {
		a.log.Warn("complete step: %v", err)
		return nil
	}
	a.log.Info("step %s completed (%d/%d)", step.ID, a.wizard.Progress().Completed, a.wizard.Progress().Total)
	a.resetCard()
	if a.wizard.Phase() == onboarding.PhaseComplete {
		a.complete.Reset()
		a.log.Info("setup complete for goal %q", a.wizard.Goal())
	}
	return nil
}

func (a *App) restart() tea.Cmd {
	a.log.Info("restarting setup")
	a.wizard.Restart()
	a.resetCard()
	a.welcome.Reset()
	a.complete.Reset()
	return a.welcome.Init()
}

func (a *App) quit() tea.Cmd {
	a.quitting = true
	a.Close()
	return tea.Quit
}

// resetCard tears down the current card and builds one for the active step.
// Bumping the generation invalidates results of tasks the old card started.
func (a *App) resetCard() {
	if a.card != nil {
		a.card.Close()
		a.card = nil
	}
	a.generation++
	if step, ok := a.wizard.ActiveStep(); ok {
		a.card = newStepCard(step.ID)
	}
}

func (a *App) copyCmd(text string) tea.Cmd {
	cb := a.opts.Clipboard
	return func() tea.Msg {
		return copyResultMsg{err: cb.WriteAll(text)}
	}
}

func (a *App) openCmd(url string) tea.Cmd {
	ctx, opener := a.ctx, a.opts.Opener
	return func() tea.Msg {
		return openResultMsg{url: url, err: opener.Open(ctx, url)}
	}
}

// View renders the current view.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = a.opts.AltScreen
	view.WindowTitle = a.opts.Brand + " setup"

	if a.quitting {
		view.AltScreen = false
		view.SetContent("")
		return view
	}

	view.SetContent(a.render())
	view.BackgroundColor = theme.HexToColor(theme.Current().BgCrust)
	return view
}

// render draws the current frame to a string.
func (a *App) render() string {
	width, height := a.width, a.height
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}

	canvas := uv.NewScreenBuffer(width, height)
	a.Draw(canvas, canvas.Bounds())
	return canvas.Render()
}

// Draw renders all components to the screen buffer.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) {
	switch a.wizard.Phase() {
	case onboarding.PhaseWelcome:
		modal := a.welcome.View(a.wizard.CanSubmit(a.welcome.Value()))
		drawCentered(scr, area, modal)

	case onboarding.PhaseRunning:
		main := a.drawSidebar(scr, area)
		uv.NewStyledString(a.runningView(main.Dx(), main.Dy())).Draw(scr, main)

	case onboarding.PhaseComplete:
		main := a.drawSidebar(scr, area)
		drawCentered(scr, main, a.complete.View(a.opts.Brand, a.wizard.Goal()))
	}

	if toast := a.toast.View(area.Dx()); toast != "" {
		w, h := lipgloss.Width(toast), lipgloss.Height(toast)
		x := max(area.Max.X-w-1, area.Min.X)
		y := max(area.Max.Y-h-1, area.Min.Y)
		uv.NewStyledString(toast).Draw(scr, uv.Rect(x, y, w, h))
	}
}

// drawSidebar draws the progress sidebar when the terminal is wide enough
// and returns the remaining area.
func (a *App) drawSidebar(scr uv.Screen, area uv.Rectangle) uv.Rectangle {
	if area.Dx() < minWidthWithSidebar {
		return area
	}
	sidebar := uv.Rect(area.Min.X, area.Min.Y, SidebarWidth, area.Dy())
	uv.NewStyledString(renderSidebar(a.wizard.Steps(), a.wizard.Progress(), area.Dy())).Draw(scr, sidebar)
	return uv.Rect(area.Min.X+SidebarWidth+1, area.Min.Y, area.Dx()-SidebarWidth-1, area.Dy())
}

// runningView renders the goal header and step cards, scrolled so the
// active card starts near the top when everything does not fit.
func (a *App) runningView(width, height int) string {
	s := theme.Current().S()
	steps := a.wizard.Steps()
	cardWidth := max(width-2, 20)

	header := s.HeaderTitle.Render("Setting up: ") + s.Text.Render(a.wizard.Goal()) + "\n" +
		s.Muted.Render("Complete each step below to get your payment system ready")
	before := renderCards(steps[:a.wizard.Cursor()], a.card, cardWidth)
	cards := renderCards(steps, a.card, cardWidth)

	lines := strings.Split(header+"\n\n"+cards, "\n")
	if height <= 0 || len(lines) <= height {
		return strings.Join(lines, "\n")
	}

	anchor := lipgloss.Height(header) + 1
	if a.wizard.Cursor() > 0 {
		anchor += lipgloss.Height(before)
	}
	offset := min(max(anchor-2, 0), len(lines)-height)
	return strings.Join(lines[offset:offset+height], "\n")
}

func drawCentered(scr uv.Screen, area uv.Rectangle, content string) {
	placed := lipgloss.Place(area.Dx(), area.Dy(), lipgloss.Center, lipgloss.Center, content)
	uv.NewStyledString(placed).Draw(scr, area)
}

// Run starts the TUI and blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, opts Options) (Outcome, error) {
	app, err := NewApp(ctx, opts)
	if err != nil {
		return Outcome{}, err
	}
	defer app.Close()

	p := tea.NewProgram(app, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, context.Canceled) {
		return app.Outcome(), fmt.Errorf("running TUI: %w", err)
	}
	return app.Outcome(), nil
}
