// Package checklist renders a goal's generated step sequence outside the
// TUI: as a Markdown document, as YAML, or as a unified diff against the
// unspecialized catalog.
package checklist

import (
	"fmt"
	"strings"

	"charm.land/glamour/v2"
	"github.com/aymanbagabas/go-udiff"
	"github.com/gosimple/slug"
	"github.com/mark3labs/onboardr/internal/onboarding"
	"gopkg.in/yaml.v3"
)

// Format selects the export encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

// ParseFormat accepts "markdown", "md", "yaml" and "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want markdown or yaml)", s)
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".md"
}

// Item is one exported step.
type Item struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Action      string `yaml:"action"`
	Content     string `yaml:"content"`
	Snippet     string `yaml:"snippet,omitempty"`
	Validation  string `yaml:"validation"`
}

// Checklist is the exported form of a generated sequence.
type Checklist struct {
	Goal         string `yaml:"goal"`
	Subscription bool   `yaml:"subscription"`
	Steps        []Item `yaml:"steps"`
}

// New generates the checklist for goal. The goal is trimmed; an empty goal
// returns [onboarding.ErrEmptyGoal].
func New(goal string, opts ...onboarding.Option) (Checklist, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return Checklist{}, onboarding.ErrEmptyGoal
	}
	return Checklist{
		Goal:         goal,
		Subscription: onboarding.IsSubscriptionGoal(goal),
		Steps:        items(onboarding.Generate(goal, opts...)),
	}, nil
}

func items(steps onboarding.Sequence) []Item {
	out := make([]Item, 0, len(steps))
	for _, s := range steps {
		out = append(out, Item{
			ID:          string(s.ID),
			Title:       s.Title,
			Description: s.Description,
			Action:      s.ActionLabel(),
			Content:     s.Content,
			Snippet:     s.CodeSnippet,
			Validation:  s.ValidationText,
		})
	}
	return out
}

// Render encodes c in format f.
func (c Checklist) Render(f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		data, err := yaml.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("marshaling checklist: %w", err)
		}
		return data, nil
	case FormatMarkdown:
		return []byte(c.Markdown()), nil
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// Markdown renders the checklist as a Markdown document with one section
// per step and an unchecked task item for its action.
func (c Checklist) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Setup checklist: %s\n\n", c.Goal)
	b.WriteString(stepsMarkdown(c.Steps))
	return b.String()
}

func stepsMarkdown(steps []Item) string {
	var b strings.Builder
	for i, s := range steps {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, s.Title)
		fmt.Fprintf(&b, "_%s_\n\n", s.Description)
		fmt.Fprintf(&b, "%s\n\n", s.Content)
		if s.Snippet != "" {
			fmt.Fprintf(&b, "```html\n%s\n```\n\n", s.Snippet)
		}
		fmt.Fprintf(&b, "- [ ] %s\n", s.Action)
	}
	return b.String()
}

// Diff returns a unified diff from the base catalog to the goal's steps, or
// "" when the goal changes nothing.
func (c Checklist) Diff(opts ...onboarding.Option) string {
	base := stepsMarkdown(items(onboarding.BaseCatalog(opts...)))
	return udiff.Unified("base", DefaultFilename(c.Goal, FormatMarkdown), base, stepsMarkdown(c.Steps))
}

// DefaultFilename derives an export file name from the goal.
func DefaultFilename(goal string, f Format) string {
	name := slug.Make(goal)
	if name == "" {
		name = "checklist"
	}
	return name + f.Ext()
}

// Pretty renders Markdown for a terminal using the named glamour style.
func Pretty(markdown, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
