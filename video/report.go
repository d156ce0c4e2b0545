package video

import "fmt"

// Outcome classifies what happened to a single file.
type Outcome int

const (
	OutcomeOK      Outcome = iota // already compliant, untouched
	OutcomeFixed                  // converted and verified
	OutcomeSkipped                // unreadable by the prober
	OutcomeMissing                // path did not resolve to an existing file
	OutcomeFailed                 // conversion or post-check failed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeFixed:
		return "fixed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeMissing:
		return "missing"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// FileResult is the per-file record the orchestrator collects. Per-file
// failures end up here instead of aborting the batch.
type FileResult struct {
	Path    string
	Outcome Outcome
	Action  string // "LOOP" or "NORM" when a conversion was attempted
	Detail  string // reason the file needed fixing, or skip/miss context
	Err     error
}

// Tally aggregates results for the end-of-run summary. It is an ordinary
// value owned by the orchestrator, not shared state.
type Tally struct {
	Found   int
	OK      int
	Fixed   int
	Skipped int
	Missing int
	Failed  int
}

// Add folds one result into the tally.
func (t *Tally) Add(r FileResult) {
	t.Found++
	switch r.Outcome {
	case OutcomeOK:
		t.OK++
	case OutcomeFixed:
		t.Fixed++
	case OutcomeSkipped:
		t.Skipped++
	case OutcomeMissing:
		t.Missing++
	case OutcomeFailed:
		t.Failed++
	}
}

// Summary renders the end-of-run line.
func (t Tally) Summary() string {
	return fmt.Sprintf("Done. found=%d ok=%d fixed=%d skipped=%d missing=%d failed=%d",
		t.Found, t.OK, t.Fixed, t.Skipped, t.Missing, t.Failed)
}
