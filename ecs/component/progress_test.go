package component

import "testing"

func TestLevelProgressTransitions(t *testing.T) {
	p := NewLevelProgress()
	if p.State() != StateNoLevel {
		t.Fatalf("expected no level at startup, got %s", p.State())
	}

	p.Request(0)
	if !p.NeedsLoad() || p.State() != StateTransitioning {
		t.Fatalf("expected pending load after request")
	}
	p.Commit(3)
	if p.State() != StateLoaded || p.Current != 0 || p.Total != 3 {
		t.Fatalf("unexpected progress after commit: %+v", p)
	}

	p.Advance()
	if p.Desired != 1 {
		t.Fatalf("expected desired 1 after advance, got %d", p.Desired)
	}
	p.Commit(3)

	p.Reload()
	if p.Desired != 1 || p.Current != NoLevel {
		t.Fatalf("expected reload of 1 with current unset, got %+v", p)
	}
	p.Reload()
	if p.Desired != 1 {
		t.Fatalf("second reload should keep desired 1, got %d", p.Desired)
	}
	p.Commit(3)

	p.Advance()
	p.Commit(3)
	p.Advance()
	p.Commit(3)
	if !p.Finished() || p.State() != StateFinished {
		t.Fatalf("expected finished at index %d of %d", p.Current, p.Total)
	}
	if p.NeedsLoad() {
		t.Fatalf("finished progress should not need a load")
	}
}

func TestLevelProgressAdvanceWithoutCurrent(t *testing.T) {
	p := NewLevelProgress()
	p.Advance()
	if p.Desired != 1 {
		t.Fatalf("expected desired 1, got %d", p.Desired)
	}
}

func TestLevelProgressEmptySetIsFinished(t *testing.T) {
	p := NewLevelProgress()
	p.Request(0)
	p.Commit(0)
	if !p.Finished() {
		t.Fatalf("an empty level set should be an immediate win")
	}
}
