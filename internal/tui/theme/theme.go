// Package theme holds the TUI color palettes and the lipgloss styles built
// from them.
package theme

import (
	"fmt"
	"image/color"
	"sort"
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // hex, converted with HexToColor
	Secondary string
	Tertiary  string

	// Background hierarchy (dark→light for dark themes)
	BgCrust    string
	BgBase     string
	BgMantle   string
	BgSurface0 string
	BgSurface1 string
	BgSurface2 string
	BgOverlay  string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Warning string
	Error   string
	Info    string

	// Border colors
	BorderMuted   string
	BorderDefault string
	BorderFocused string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// GlamourStyle returns the glamour standard style matching the palette.
func (t *Theme) GlamourStyle() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// HexToColor converts a "#rrggbb" string to a color usable by lipgloss.
func HexToColor(hex string) color.Color {
	return lipgloss.Color(hex)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]func() *Theme{
		"catppuccin-mocha": NewCatppuccinMocha,
		"catppuccin-latte": NewCatppuccinLatte,
	}
	current = NewCatppuccinMocha()
)

// Current returns the active theme.
func Current() *Theme {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return current
}

// SetCurrent activates the registered theme with the given name.
func SetCurrent(name string) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	ctor, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	current = ctor()
	return nil
}

// ForStyle maps a glamour style name ("dark", "light") to a theme name.
// Anything else is treated as a theme name.
func ForStyle(style string) string {
	switch style {
	case "", "dark", "auto":
		return "catppuccin-mocha"
	case "light":
		return "catppuccin-latte"
	default:
		return style
	}
}

// Names returns the registered theme names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
