package filter

// Stats counts verdicts over one run. Each candidate document is recorded
// exactly once.
type Stats struct {
	Seen       int
	Short      int
	Hiragana   int
	Repetition int
	Accepted   int
}

// Record tallies one verdict.
func (s *Stats) Record(v Verdict) {
	s.Seen++
	switch v {
	case RejectShort:
		s.Short++
	case RejectHiragana:
		s.Hiragana++
	case RejectRepetition:
		s.Repetition++
	case Accept:
		s.Accepted++
	}
}

// AcceptanceRate returns accepted documents as a fraction of all candidates
// seen, or 0 when nothing was seen.
func (s *Stats) AcceptanceRate() float64 {
	if s.Seen == 0 {
		return 0
	}
	return float64(s.Accepted) / float64(s.Seen)
}
