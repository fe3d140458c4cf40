package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/onboardr/internal/logger"
	"github.com/stretchr/testify/require"
)

func init() {
	// Ascii profile keeps rendering deterministic across terminals.
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for rendering tests.
const (
	testWidth  = 120
	testHeight = 44
)

type fakeClipboard struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, text)
	return nil
}

func (c *fakeClipboard) Writes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.writes...)
}

type fakeOpener struct {
	mu     sync.Mutex
	opened []string
	err    error
}

func (o *fakeOpener) Open(_ context.Context, url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.opened = append(o.opened, url)
	return nil
}

func (o *fakeOpener) Opened() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.opened...)
}

var errFake = errors.New("fake failure")

type testApp struct {
	*App
	clipboard *fakeClipboard
	opener    *fakeOpener
}

// newTestApp builds an App with fakes, a short key delay and a sized
// window. goal may be empty to start at the welcome dialog.
func newTestApp(t *testing.T, goal string) *testApp {
	t.Helper()

	cb := &fakeClipboard{}
	op := &fakeOpener{}
	app, err := NewApp(context.Background(), Options{
		Goal:        goal,
		APIKeyDelay: 5 * time.Millisecond,
		Clipboard:   cb,
		Opener:      op,
		Logger:      logger.New(),
	})
	require.NoError(t, err)
	app.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	t.Cleanup(app.Close)

	return &testApp{App: app, clipboard: cb, opener: op}
}

// press sends a key and returns the resulting command.
func (a *testApp) press(k string) tea.Cmd {
	_, cmd := a.Update(keyPress(k))
	return cmd
}

// typeText sends one key press per rune.
func (a *testApp) typeText(s string) {
	for _, r := range s {
		a.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// pressAndRun sends a key and feeds every message its command produces
// back into the app.
func (a *testApp) pressAndRun(t *testing.T, k string) {
	t.Helper()
	a.run(t, a.press(k))
}

// run executes cmd and feeds the resulting messages back into the app.
// Ticks for spinners and toasts are skipped.
func (a *testApp) run(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		a.Update(msg)
	}
}

// screen renders the current frame without ANSI sequences.
func (a *testApp) screen() string {
	return ansi.Strip(a.render())
}

// collectMsgs executes cmd, flattening batches. Commands that would block on
// a timer for more than a short while are not executed.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(500 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+r":
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	}
	r := []rune(k)
	return tea.KeyPressMsg{Code: r[0], Text: k}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
