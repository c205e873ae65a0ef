package subsume

import (
	"time"

	"babysub/internal/cnf"
	"babysub/internal/console"
)

// Stats are the observable counters of a simplification run. Checked counts
// candidate clauses examined during containment checks, Subsumed the clauses
// marked garbage.
type Stats struct {
	Checked  int
	Subsumed int
}

// Report prints the run statistics on the comment channel.
func (s Stats) Report(log *console.Logger, f *cnf.Formula, elapsed time.Duration) {
	log.Message("%-20s %10d    clauses %.2f per subsumed",
		"checked:", s.Checked, average(s.Checked, s.Subsumed))
	log.Message("%-20s %10d    clauses %.0f%%",
		"subsumed:", s.Subsumed, percent(s.Subsumed, f.Parsed))
	log.Message("%-20s %13.2f seconds", "process-time:", elapsed.Seconds())
}

func average(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

func percent(a, b int) float64 {
	return 100 * average(a, b)
}
