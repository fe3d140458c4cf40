package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Opener opens a URL in the user's browser.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// SystemClipboard is the Clipboard backed by the OS clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this system")
	}
	return clipboard.WriteAll(text)
}

// BrowserOpener opens URLs with the platform's default handler.
type BrowserOpener struct{}

// Open hands url to the system browser. The handler's output is discarded so
// it cannot draw over the TUI.
func (BrowserOpener) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}
