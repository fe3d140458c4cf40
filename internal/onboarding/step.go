// Package onboarding holds the wizard's domain: the step catalog generated
// from a user's goal, the cursor-driven step state machine, progress
// aggregation and the phase controller that ties them together.
//
// Key types:
//   - [Step] is one unit of onboarding work; its [Kind] carries the data the
//     step's interaction needs
//   - [Sequence] is the ordered, fixed-length list of steps for a run
//   - [Wizard] owns phase, goal, sequence and cursor for a session
//
// Nothing in this package performs I/O. Side effects (clipboard, opening a
// browser, timers) belong to the presentation layer, which dispatches on
// [Kind] with a type switch.
package onboarding

import "time"

// Status is the display status of a step. It is always derived from the
// cursor position and never set directly.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// StepID identifies a step within a sequence.
type StepID string

const (
	StepTestMode           StepID = "test-mode"
	StepAPIKeys            StepID = "api-keys"
	StepCheckoutButton     StepID = "checkout-button"
	StepCopyCode           StepID = "copy-code"
	StepEmailNotifications StepID = "email-notifications"
	StepSearchTransaction  StepID = "search-transaction"
)

// defaultActionLabel is shown on the primary control when a step has no
// explicit action label.
const defaultActionLabel = "Complete Step"

// Step is one unit of onboarding work.
type Step struct {
	ID             StepID
	Title          string
	Description    string
	Action         string
	Content        string
	CodeSnippet    string
	ValidationText string

	// Kind carries the step-specific interaction data.
	Kind Kind

	// Status is derived from the wizard cursor, see [Derive].
	Status Status
}

// ActionLabel returns the label for the step's primary control.
func (s Step) ActionLabel() string {
	if s.Action == "" {
		return defaultActionLabel
	}
	return s.Action
}

// HasSnippet reports whether the step has a code block to reveal.
func (s Step) HasSnippet() bool {
	return s.CodeSnippet != ""
}

// Kind is the closed set of step behaviours. Each variant carries only the
// fields its interaction needs; consumers switch on the concrete type.
type Kind interface {
	isKind()
}

// ConfirmTestMode completes on a single confirmation.
type ConfirmTestMode struct{}

// GenerateAPIKeys completes after a simulated asynchronous delay.
type GenerateAPIKeys struct {
	Delay time.Duration
}

// CreateCheckoutButton is a two-stage step: reveal the snippet, then mark done.
type CreateCheckoutButton struct {
	Snippet string
	Mode    PaymentMode
}

// CopyIntegrationCode copies Snippet to the clipboard and completes.
type CopyIntegrationCode struct {
	Snippet string
}

// EnableEmailNotifications completes on a single confirmation.
type EnableEmailNotifications struct{}

// SearchTransactions opens the dashboard and completes.
type SearchTransactions struct {
	DashboardURL string
}

func (ConfirmTestMode) isKind()          {}
func (GenerateAPIKeys) isKind()          {}
func (CreateCheckoutButton) isKind()     {}
func (CopyIntegrationCode) isKind()      {}
func (EnableEmailNotifications) isKind() {}
func (SearchTransactions) isKind()       {}

// PaymentMode is the checkout mode literal embedded in the integration snippet.
type PaymentMode string

const (
	ModePayment      PaymentMode = "payment"
	ModeSubscription PaymentMode = "subscription"
)

// Sequence is the ordered list of steps for one run. Its length and step
// identifiers never change after generation.
type Sequence []Step

// Len returns the number of steps.
func (s Sequence) Len() int {
	return len(s)
}

// IDs returns the step identifiers in order.
func (s Sequence) IDs() []StepID {
	ids := make([]StepID, len(s))
	for i, step := range s {
		ids[i] = step.ID
	}
	return ids
}

// Find returns the step with the given id.
func (s Sequence) Find(id StepID) (Step, bool) {
	for _, step := range s {
		if step.ID == id {
			return step, true
		}
	}
	return Step{}, false
}

// clone returns a copy that shares no backing array with s.
func (s Sequence) clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}
