package component

import (
	"testing"
	"time"
)

func TestCountdown(t *testing.T) {
	c := NewCountdown(2 * time.Second)
	c.Tick(1500 * time.Millisecond)
	if c.Finished() {
		t.Fatalf("should not finish early")
	}
	if got := c.Remaining(); got != 500*time.Millisecond {
		t.Fatalf("expected 500ms remaining, got %v", got)
	}
	c.Tick(-time.Second)
	if c.Elapsed != 1500*time.Millisecond {
		t.Fatalf("negative ticks must be ignored, elapsed %v", c.Elapsed)
	}
	c.Tick(500 * time.Millisecond)
	if !c.Finished() || c.Remaining() != 0 {
		t.Fatalf("expected finished at duration, remaining %v", c.Remaining())
	}
}

func TestToneFor(t *testing.T) {
	cases := []struct {
		remaining time.Duration
		want      Tone
	}{
		{5 * time.Second, ToneWhite},
		{2001 * time.Millisecond, ToneWhite},
		{2 * time.Second, ToneYellow},
		{1500 * time.Millisecond, ToneYellow},
		{time.Second, ToneRed},
		{0, ToneRed},
	}
	for _, tc := range cases {
		t.Run(tc.remaining.String(), func(t *testing.T) {
			if got := ToneFor(tc.remaining); got != tc.want {
				t.Fatalf("expected tone %d, got %d", tc.want, got)
			}
		})
	}
}

func TestTimerText(t *testing.T) {
	if got := TimerText(12340 * time.Millisecond); got != "Time: 12.3" {
		t.Fatalf("unexpected readout %q", got)
	}
}
