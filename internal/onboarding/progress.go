package onboarding

// Progress is the aggregated completion view of a sequence.
type Progress struct {
	Completed  int
	Total      int
	Percentage float64
}

// Aggregate counts completed steps and computes the completion percentage.
// An empty sequence yields the zero Progress.
func Aggregate(seq Sequence) Progress {
	p := Progress{Total: len(seq)}
	if p.Total == 0 {
		return p
	}
	for _, step := range seq {
		if step.Status == StatusCompleted {
			p.Completed++
		}
	}
	p.Percentage = float64(p.Completed) / float64(p.Total) * 100
	return p
}

// Ratio returns the completed fraction in [0, 1].
func (p Progress) Ratio() float64 {
	return p.Percentage / 100
}

// Done reports whether every step is completed.
func (p Progress) Done() bool {
	return p.Total > 0 && p.Completed == p.Total
}
