package ingest

import "fmt"

// Skip records one record left out of a load and why.
type Skip struct {
	ID     string
	Reason string
}

// Result tallies one family's load. Skips hold records that could not be
// normalized; they never abort the batch.
type Result struct {
	Family    string
	Succeeded int
	Skips     []Skip
}

func (r *Result) skip(id, reason string) {
	r.Skips = append(r.Skips, Skip{ID: id, Reason: reason})
}

// Summary returns a one-line tally for logging.
func (r Result) Summary() string {
	return fmt.Sprintf("%s: loaded=%d skipped=%d", r.Family, r.Succeeded, len(r.Skips))
}
