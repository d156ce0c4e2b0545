package video

import "testing"

func TestTallyAdd(t *testing.T) {
	var tally Tally
	for _, o := range []Outcome{
		OutcomeOK, OutcomeOK,
		OutcomeFixed,
		OutcomeSkipped,
		OutcomeMissing,
		OutcomeFailed, OutcomeFailed, OutcomeFailed,
	} {
		tally.Add(FileResult{Outcome: o})
	}

	if tally.Found != 8 {
		t.Errorf("Expected Found=8, got %d", tally.Found)
	}
	if tally.OK != 2 {
		t.Errorf("Expected OK=2, got %d", tally.OK)
	}
	if tally.Fixed != 1 {
		t.Errorf("Expected Fixed=1, got %d", tally.Fixed)
	}
	if tally.Skipped != 1 {
		t.Errorf("Expected Skipped=1, got %d", tally.Skipped)
	}
	if tally.Missing != 1 {
		t.Errorf("Expected Missing=1, got %d", tally.Missing)
	}
	if tally.Failed != 3 {
		t.Errorf("Expected Failed=3, got %d", tally.Failed)
	}
}

func TestTallySummary(t *testing.T) {
	tally := Tally{Found: 5, OK: 2, Fixed: 1, Skipped: 1, Missing: 0, Failed: 1}

	expected := "Done. found=5 ok=2 fixed=1 skipped=1 missing=0 failed=1"
	if got := tally.Summary(); got != expected {
		t.Errorf("Summary() = %q, expected %q", got, expected)
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeOK, "ok"},
		{OutcomeFixed, "fixed"},
		{OutcomeSkipped, "skipped"},
		{OutcomeMissing, "missing"},
		{OutcomeFailed, "failed"},
		{Outcome(42), "outcome(42)"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, expected %q", int(tt.outcome), got, tt.expected)
		}
	}
}
