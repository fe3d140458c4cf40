package onboarding

import (
	"errors"
	"strings"
)

// Sentinel errors for wizard transitions.
var (
	// ErrEmptyGoal is returned when a goal is empty after trimming. The UI
	// gates submission with [Wizard.CanSubmit] so users never see it.
	ErrEmptyGoal = errors.New("goal cannot be empty")

	// ErrWrongPhase is returned when an action is not valid in the current phase.
	ErrWrongPhase = errors.New("action not allowed in current phase")
)

// Phase is the top-level wizard state.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhaseRunning
	PhaseComplete
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseRunning:
		return "running"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Transition describes a phase or cursor change.
type Transition struct {
	From   Phase
	To     Phase
	Cursor int
	Goal   string
}

// Observer is invoked after every state change.
type Observer func(Transition)

// Wizard owns the state of one onboarding session: phase, goal, the generated
// sequence and the cursor. Step statuses are derived on read.
//
// A Wizard is not safe for concurrent use; it is driven from a single event
// loop.
type Wizard struct {
	phase    Phase
	goal     string
	steps    Sequence
	cursor   int
	opts     []Option
	observer Observer
}

// NewWizard creates a wizard in the welcome phase. opts are passed to
// [Generate] on every goal submission.
func NewWizard(opts ...Option) *Wizard {
	return &Wizard{
		phase: PhaseWelcome,
		opts:  opts,
	}
}

// SetObserver registers fn to receive transitions. Pass nil to remove it.
func (w *Wizard) SetObserver(fn Observer) {
	w.observer = fn
}

// CanSubmit reports whether text is an acceptable goal.
func (w *Wizard) CanSubmit(text string) bool {
	return w.phase == PhaseWelcome && strings.TrimSpace(text) != ""
}

// SubmitGoal ends the welcome phase: it trims text, generates the step
// sequence and starts at the first step.
func (w *Wizard) SubmitGoal(text string) error {
	if w.phase != PhaseWelcome {
		return ErrWrongPhase
	}
	goal := strings.TrimSpace(text)
	if goal == "" {
		return ErrEmptyGoal
	}

	w.goal = goal
	w.steps = Generate(goal, w.opts...)
	w.cursor = 0
	w.transition(PhaseRunning)
	return nil
}

// CompleteActiveStep signals that the active step is done. It advances the
// cursor, or moves to the complete phase after the last step. On completion
// the cursor is parked at the sequence length so every step reads completed.
func (w *Wizard) CompleteActiveStep() error {
	if w.phase != PhaseRunning {
		return ErrWrongPhase
	}

	next, done := Advance(w.cursor, len(w.steps))
	if done {
		w.cursor = len(w.steps)
		w.transition(PhaseComplete)
		return nil
	}

	w.cursor = next
	w.transition(PhaseRunning)
	return nil
}

// Restart returns to the welcome phase from any phase and discards the
// goal, sequence and cursor.
func (w *Wizard) Restart() {
	w.goal = ""
	w.steps = nil
	w.cursor = 0
	w.transition(PhaseWelcome)
}

// Phase returns the current phase.
func (w *Wizard) Phase() Phase {
	return w.phase
}

// Goal returns the submitted goal, or "" in the welcome phase.
func (w *Wizard) Goal() string {
	return w.goal
}

// Cursor returns the index of the active step.
func (w *Wizard) Cursor() int {
	return w.cursor
}

// Steps returns the sequence with statuses derived from the cursor.
func (w *Wizard) Steps() Sequence {
	return Derive(w.steps, w.cursor)
}

// ActiveStep returns the step at the cursor while running.
func (w *Wizard) ActiveStep() (Step, bool) {
	if w.phase != PhaseRunning || w.cursor >= len(w.steps) {
		return Step{}, false
	}
	step := w.steps[w.cursor]
	step.Status = StatusActive
	return step, true
}

// Progress aggregates the derived sequence.
func (w *Wizard) Progress() Progress {
	return Aggregate(w.Steps())
}

func (w *Wizard) transition(to Phase) {
	from := w.phase
	w.phase = to
	if w.observer != nil {
		w.observer(Transition{From: from, To: to, Cursor: w.cursor, Goal: w.goal})
	}
}
