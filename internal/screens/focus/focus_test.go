package focus

import (
	"testing"

	"github.com/akshad/studyquest/internal/challenge"
	"github.com/akshad/studyquest/internal/timer"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{1500, "25:00"},
		{-3, "00:00"},
	}
	for _, tc := range cases {
		if got := formatClock(tc.seconds); got != tc.want {
			t.Errorf("formatClock(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestNextPhaseCycles(t *testing.T) {
	p := timer.PhaseFocus
	seen := map[timer.Phase]bool{}
	for i := 0; i < 3; i++ {
		seen[p] = true
		p = nextPhase(p)
	}
	if len(seen) != 3 {
		t.Errorf("cycle visited %d phases, want 3", len(seen))
	}
	if p != timer.PhaseFocus {
		t.Errorf("cycle of 3 should return to focus, got %q", p)
	}
}

func TestQuizPointsCoverEveryTier(t *testing.T) {
	for _, d := range challenge.Difficulties() {
		if quizPoints[d] <= 0 {
			t.Errorf("quizPoints[%s] = %d, want positive", d, quizPoints[d])
		}
	}
	if !(quizPoints[challenge.Easy] < quizPoints[challenge.Medium] &&
		quizPoints[challenge.Medium] < quizPoints[challenge.Hard]) {
		t.Error("quiz points should increase with difficulty")
	}
}
