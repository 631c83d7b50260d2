package check

// Summary aggregates per-frame outcomes across the checked frame window so
// the process can report a single pass/fail result.
type Summary struct {
	Reports []*Report

	// Errored counts frames whose construction or precondition failed;
	// those frames produce no Report.
	Errored int
}

// Add appends one frame's report.
func (s *Summary) Add(r *Report) {
	s.Reports = append(s.Reports, r)
}

// AddError records a frame that could not be checked at all.
func (s *Summary) AddError() {
	s.Errored++
}

// TotalViolations returns the violation count across all checked frames.
func (s *Summary) TotalViolations() int {
	total := 0
	for _, r := range s.Reports {
		total += len(r.Violations)
	}
	return total
}

// Passed reports whether every checked frame passed and none errored.
func (s *Summary) Passed() bool {
	if s.Errored > 0 {
		return false
	}
	for _, r := range s.Reports {
		if !r.Passed() {
			return false
		}
	}
	return true
}
