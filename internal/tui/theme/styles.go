package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	HeaderTitle lipgloss.Style
	Muted       lipgloss.Style
	Subtle      lipgloss.Style
	Text        lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style

	// Modal (welcome and complete dialogs)
	ModalContainer lipgloss.Style
	ModalTitle     lipgloss.Style
	ModalSubtitle  lipgloss.Style
	InputBox       lipgloss.Style
	InputLabel     lipgloss.Style

	// Suggestions under the goal input
	Suggestion         lipgloss.Style
	SuggestionSelected lipgloss.Style

	// Buttons
	ButtonNormal   lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style

	// Hint bar
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	// Sidebar
	SidebarContainer lipgloss.Style
	SidebarTitle     lipgloss.Style
	StepIconDone     lipgloss.Style
	StepIconActive   lipgloss.Style
	StepIconPending  lipgloss.Style
	StepTitle        lipgloss.Style
	StepTitleActive  lipgloss.Style
	StepTitlePending lipgloss.Style
	StepDesc         lipgloss.Style
	AllDoneBox       lipgloss.Style

	// Step cards
	CardActive   lipgloss.Style
	CardInactive lipgloss.Style
	CardDone     lipgloss.Style
	CardTitle    lipgloss.Style
	BadgeWaiting lipgloss.Style
	BadgeActive  lipgloss.Style
	BadgeDone    lipgloss.Style
	Validation   lipgloss.Style
	CodeBlock    lipgloss.Style

	Toast lipgloss.Style
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	primary := HexToColor(t.Primary)
	tertiary := HexToColor(t.Tertiary)
	base := HexToColor(t.BgBase)
	mantle := HexToColor(t.BgMantle)
	surface0 := HexToColor(t.BgSurface0)
	surface2 := HexToColor(t.BgSurface2)
	overlay := HexToColor(t.BgOverlay)
	fgMuted := HexToColor(t.FgMuted)
	fgSubtle := HexToColor(t.FgSubtle)
	fgBase := HexToColor(t.FgBase)
	success := HexToColor(t.Success)
	warning := HexToColor(t.Warning)
	errColor := HexToColor(t.Error)
	borderMuted := HexToColor(t.BorderMuted)
	borderFocused := HexToColor(t.BorderFocused)

	button := lipgloss.NewStyle().Padding(0, 2).MarginLeft(1).MarginRight(1)
	card := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	return &Styles{
		HeaderTitle: lipgloss.NewStyle().Foreground(primary).Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(fgMuted),
		Subtle:      lipgloss.NewStyle().Foreground(overlay),
		Text:        lipgloss.NewStyle().Foreground(fgBase),
		Success:     lipgloss.NewStyle().Foreground(success).Bold(true),
		Error:       lipgloss.NewStyle().Foreground(errColor),

		ModalContainer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tertiary).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Align(lipgloss.Center),
		ModalSubtitle: lipgloss.NewStyle().
			Foreground(fgMuted).
			Align(lipgloss.Center),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderFocused).
			Padding(0, 1),
		InputLabel: lipgloss.NewStyle().Foreground(fgSubtle).Bold(true),

		Suggestion:         lipgloss.NewStyle().Foreground(fgMuted).PaddingLeft(2),
		SuggestionSelected: lipgloss.NewStyle().Foreground(primary).Bold(true).PaddingLeft(2),

		ButtonNormal:   button.Foreground(fgBase).Background(surface0),
		ButtonDisabled: button.Foreground(overlay).Background(mantle),
		ButtonFocused:  button.Foreground(base).Background(tertiary).Bold(true),

		HintKey:       lipgloss.NewStyle().Foreground(fgSubtle).Bold(true),
		HintDesc:      lipgloss.NewStyle().Foreground(fgMuted),
		HintSeparator: lipgloss.NewStyle().Foreground(surface2),

		SidebarContainer: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(borderMuted).
			Padding(1, 2),
		SidebarTitle:     lipgloss.NewStyle().Foreground(primary).Bold(true),
		StepIconDone:     lipgloss.NewStyle().Foreground(success),
		StepIconActive:   lipgloss.NewStyle().Foreground(primary),
		StepIconPending:  lipgloss.NewStyle().Foreground(overlay),
		StepTitle:        lipgloss.NewStyle().Foreground(fgBase),
		StepTitleActive:  lipgloss.NewStyle().Foreground(primary).Bold(true),
		StepTitlePending: lipgloss.NewStyle().Foreground(overlay),
		StepDesc:         lipgloss.NewStyle().Foreground(fgMuted),
		AllDoneBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(success).
			Foreground(success).
			Padding(0, 1),

		CardActive:   card.BorderForeground(borderFocused),
		CardInactive: card.BorderForeground(borderMuted).Foreground(overlay),
		CardDone:     card.BorderForeground(success),
		CardTitle:    lipgloss.NewStyle().Foreground(fgBase).Bold(true),
		BadgeWaiting: lipgloss.NewStyle().Foreground(overlay).Background(mantle).Padding(0, 1),
		BadgeActive:  lipgloss.NewStyle().Foreground(base).Background(primary).Padding(0, 1),
		BadgeDone:    lipgloss.NewStyle().Foreground(base).Background(success).Padding(0, 1),
		Validation:   lipgloss.NewStyle().Foreground(success),
		CodeBlock: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(surface2).
			Padding(0, 1),

		Toast: lipgloss.NewStyle().
			Foreground(base).
			Background(warning).
			Padding(0, 1).
			Bold(true),
	}
}
