package onboarding

// StatusAt returns the derived status of index i for the given cursor.
func StatusAt(i, cursor int) Status {
	switch {
	case i < cursor:
		return StatusCompleted
	case i == cursor:
		return StatusActive
	default:
		return StatusPending
	}
}

// Derive returns a copy of seq with each step's status derived from cursor:
// completed before it, active at it, pending after it. A cursor at or past
// the end marks every step completed.
func Derive(seq Sequence, cursor int) Sequence {
	out := seq.clone()
	for i := range out {
		out[i].Status = StatusAt(i, cursor)
	}
	return out
}

// Advance moves the cursor past a completed step. When cursor is the last
// index (or the sequence is empty) it reports done and leaves the cursor
// where it is.
func Advance(cursor, length int) (next int, done bool) {
	if length <= 0 {
		return cursor, true
	}
	if cursor < length-1 {
		return cursor + 1, false
	}
	return cursor, true
}
