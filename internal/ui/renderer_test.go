package ui

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/numberguess/internal/engine"
	"github.com/samdwyer/numberguess/internal/gamedata"
)

func newTestScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error: %v", err)
	}
	sim.SetSize(80, 25)
	t.Cleanup(screen.Close)
	return screen, sim
}

// rowText reads back one screen row with trailing blanks removed.
func rowText(s tcell.Screen, y int) string {
	width, _ := s.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestTrackColumn(t *testing.T) {
	tests := []struct {
		n, width, want int
	}{
		{1, 50, 0},
		{100, 50, 49},
		{50, 50, 24},
		{51, 50, 25},
		{0, 50, 0},
		{500, 50, 49},
		{42, 1, 0},
		{42, 0, 0},
	}

	for _, tt := range tests {
		if got := TrackColumn(tt.n, tt.width); got != tt.want {
			t.Errorf("TrackColumn(%d, %d) = %d, want %d", tt.n, tt.width, got, tt.want)
		}
	}
}

func TestBoundsHint(t *testing.T) {
	if got, want := BoundsHint(engine.Bounds{Lower: 31, Upper: 59}), "31 – 59"; got != want {
		t.Errorf("BoundsHint() = %q, want %q", got, want)
	}
}

func TestHistoryLines(t *testing.T) {
	history := []engine.GuessRecord{
		{Value: 42, Relation: engine.RelationCorrect},
		{Value: 50, Relation: engine.RelationHigh},
		{Value: 7, Relation: engine.RelationLow},
	}
	want := []string{" 42  Correct", " 50  Too high", "  7  Too low"}

	got := HistoryLines(history)
	if len(got) != len(want) {
		t.Fatalf("HistoryLines() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("HistoryLines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderPlaying(t *testing.T) {
	screen, sim := newTestScreen(t)
	r := NewRenderer(screen, gamedata.MustLoadTheme())

	e := engine.New(engine.Config{Seed: 1})
	r.Render(e.Snapshot())

	if got := rowText(sim, titleRow); !strings.Contains(got, "Number Guessing Game") {
		t.Errorf("title row = %q", got)
	}
	if got := rowText(sim, statusRow); !strings.Contains(got, "Attempts 0") || !strings.Contains(got, "Playing") {
		t.Errorf("status row = %q", got)
	}
	if got := rowText(sim, feedbackRow); !strings.Contains(got, engine.MsgPrompt) {
		t.Errorf("feedback row = %q", got)
	}
	if got := rowText(sim, labelsRow); !strings.Contains(got, "1 – 100") {
		t.Errorf("labels row = %q", got)
	}
	if got := rowText(sim, inputRow); !strings.Contains(got, "Enter a number (1-100)") {
		t.Errorf("input row = %q, want placeholder", got)
	}
	if got := rowText(sim, historyRow); got != "" {
		t.Errorf("history row = %q, want empty before any guess", got)
	}
}

func TestRenderAfterGuesses(t *testing.T) {
	screen, sim := newTestScreen(t)
	r := NewRenderer(screen, nil)

	seed := int64(3)
	target := engine.DrawTarget(rand.New(rand.NewSource(seed)))
	guess := 1
	if target == 1 {
		guess = 100
	}

	e := engine.New(engine.Config{Seed: seed})
	e.SubmitGuess(context.Background(), strconv.Itoa(guess))
	e.SetInput("12")
	snap := e.Snapshot()
	r.Render(snap)

	if got := rowText(sim, historyRow); !strings.Contains(got, "Recent guesses") {
		t.Errorf("history title row = %q", got)
	}
	wantLine := HistoryLines(snap.History)[0]
	if got := rowText(sim, historyRow+1); got != strings.Repeat(" ", leftMargin)+wantLine {
		t.Errorf("first history row = %q, want %q", got, wantLine)
	}
	if got := rowText(sim, inputRow); !strings.Contains(got, "> 12") {
		t.Errorf("input row = %q, want typed input", got)
	}
	if got := rowText(sim, labelsRow); !strings.Contains(got, BoundsHint(snap.Bounds)) {
		t.Errorf("labels row = %q, want %q", got, BoundsHint(snap.Bounds))
	}
	if got := rowText(sim, statusRow); !strings.Contains(got, "Attempts 1") {
		t.Errorf("status row = %q", got)
	}
}

func TestRenderFinished(t *testing.T) {
	screen, sim := newTestScreen(t)
	r := NewRenderer(screen, nil)

	e := engine.New(engine.Config{Seed: 5})
	e.GiveUp(context.Background())
	r.Render(e.Snapshot())

	target, _ := e.Target()
	want := fmt.Sprintf("You gave up. The number was %d.", target)
	if got := rowText(sim, feedbackRow); !strings.Contains(got, want) {
		t.Errorf("feedback row = %q, want %q", got, want)
	}
	if got := rowText(sim, statusRow); !strings.Contains(got, "Gave up") {
		t.Errorf("status row = %q", got)
	}
	if got := rowText(sim, helpRow); got != strings.Repeat(" ", leftMargin)+helpFinished {
		t.Errorf("help row = %q, want %q", got, helpFinished)
	}
}
