package tui

// Messages produced by the TUI's own commands.

// apiKeysGeneratedMsg reports the end of a simulated key generation. It is
// ignored unless generation still matches the app's card generation.
type apiKeysGeneratedMsg struct {
	generation int
	err        error
}

// copyResultMsg reports a clipboard write.
type copyResultMsg struct {
	err error
}

// openResultMsg reports an attempt to open a URL.
type openResultMsg struct {
	url string
	err error
}

// GoalEditedMsg carries a goal composed in the external editor.
type GoalEditedMsg struct {
	Content string
}
