package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	seq := Generate("Add Buy Now button to my website")

	for cursor := 0; cursor < seq.Len(); cursor++ {
		derived := Derive(seq, cursor)

		active := 0
		for i, step := range derived {
			switch {
			case i < cursor:
				assert.Equal(t, StatusCompleted, step.Status, "cursor %d index %d", cursor, i)
			case i == cursor:
				assert.Equal(t, StatusActive, step.Status, "cursor %d index %d", cursor, i)
				active++
			default:
				assert.Equal(t, StatusPending, step.Status, "cursor %d index %d", cursor, i)
			}
		}
		assert.Equal(t, 1, active, "exactly one active step at cursor %d", cursor)
	}
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	seq := Generate("goal")
	_ = Derive(seq, 3)

	for _, step := range seq {
		assert.Equal(t, StatusPending, step.Status)
	}
}

func TestDerive_PastEnd(t *testing.T) {
	derived := Derive(Generate("goal"), 6)
	for _, step := range derived {
		assert.Equal(t, StatusCompleted, step.Status)
	}
}

func TestDerive_Empty(t *testing.T) {
	assert.Empty(t, Derive(nil, 0))
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name     string
		cursor   int
		length   int
		wantNext int
		wantDone bool
	}{
		{name: "first step", cursor: 0, length: 6, wantNext: 1, wantDone: false},
		{name: "middle step", cursor: 3, length: 6, wantNext: 4, wantDone: false},
		{name: "second to last", cursor: 4, length: 6, wantNext: 5, wantDone: false},
		{name: "last step", cursor: 5, length: 6, wantNext: 5, wantDone: true},
		{name: "single step", cursor: 0, length: 1, wantNext: 0, wantDone: true},
		{name: "empty sequence", cursor: 0, length: 0, wantNext: 0, wantDone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, done := Advance(tt.cursor, tt.length)
			assert.Equal(t, tt.wantNext, next)
			assert.Equal(t, tt.wantDone, done)
		})
	}
}

func TestAggregate(t *testing.T) {
	seq := Generate("goal")

	tests := []struct {
		name          string
		cursor        int
		wantCompleted int
		wantPercent   float64
	}{
		{name: "none", cursor: 0, wantCompleted: 0, wantPercent: 0},
		{name: "one", cursor: 1, wantCompleted: 1, wantPercent: 16.67},
		{name: "two", cursor: 2, wantCompleted: 2, wantPercent: 33.33},
		{name: "all", cursor: 6, wantCompleted: 6, wantPercent: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Aggregate(Derive(seq, tt.cursor))
			assert.Equal(t, tt.wantCompleted, p.Completed)
			assert.Equal(t, 6, p.Total)
			assert.InDelta(t, tt.wantPercent, p.Percentage, 0.01)
			assert.InDelta(t, tt.wantPercent/100, p.Ratio(), 0.0001)
		})
	}
}

func TestAggregate_Empty(t *testing.T) {
	p := Aggregate(nil)
	require.Equal(t, Progress{}, p)
	assert.False(t, p.Done())
}

func TestProgress_Done(t *testing.T) {
	seq := Generate("goal")
	assert.False(t, Aggregate(Derive(seq, 5)).Done())
	assert.True(t, Aggregate(Derive(seq, 6)).Done())
}
