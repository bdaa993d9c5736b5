package ui

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/lo"

	"github.com/samdwyer/numberguess/internal/engine"
	"github.com/samdwyer/numberguess/internal/gamedata"
)

// Layout rows. Everything below historyRow is the guess list.
const (
	leftMargin = 2
	trackWidth = 50

	titleRow    = 1
	subtitleRow = 2
	statusRow   = 4
	feedbackRow = 6
	labelsRow   = 8
	trackRow    = 9
	inputRow    = 11
	helpRow     = 12
	historyRow  = 14
)

const (
	inputPrompt  = "> "
	helpPlaying  = "Enter guess  Ctrl-G give up  Ctrl-N play again  Esc quit"
	helpFinished = "Enter or n play again  q quit"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.Theme
}

// NewRenderer creates a new renderer for the given screen. A nil theme
// falls back to gamedata.DefaultTheme.
func NewRenderer(screen *Screen, theme *gamedata.Theme) *Renderer {
	if theme == nil {
		theme = gamedata.DefaultTheme()
	}
	return &Renderer{screen: screen, theme: theme}
}

// Render draws a full frame for snap.
func (r *Renderer) Render(snap engine.Snapshot) {
	r.screen.Clear()

	r.screen.DrawText(leftMargin, titleRow, r.theme.Title, r.style("accent").Bold(true))
	r.screen.DrawText(leftMargin, subtitleRow, r.theme.Subtitle, r.style("muted"))

	r.renderStatus(snap)
	r.screen.DrawText(leftMargin, feedbackRow, snap.Feedback, r.style(snap.Status.String()).Bold(true))
	r.renderTrack(snap)
	r.renderInput(snap)
	r.renderHistory(snap)

	r.screen.Show()
}

func (r *Renderer) renderStatus(snap engine.Snapshot) {
	x := r.screen.DrawText(leftMargin, statusRow, "Attempts ", r.style("muted"))
	x = r.screen.DrawText(x, statusRow, fmt.Sprintf("%d", snap.Attempts), r.style("text").Bold(true))
	x = r.screen.DrawText(x, statusRow, "   Status ", r.style("muted"))
	r.screen.DrawText(x, statusRow, snap.Status.Label(), r.style(snap.Status.String()).Bold(true))
}

// renderTrack draws the 1..100 range with the bounds filled in and a marker
// over the most recent guess.
func (r *Renderer) renderTrack(snap engine.Snapshot) {
	muted := r.style("muted")
	minLabel := fmt.Sprintf("%d", engine.MinValue)
	maxLabel := fmt.Sprintf("%d", engine.MaxValue)
	hint := BoundsHint(snap.Bounds)

	r.screen.DrawText(leftMargin, labelsRow, minLabel, muted)
	hintX := leftMargin + (trackWidth-utf8.RuneCountInString(hint))/2
	r.screen.DrawText(hintX, labelsRow, hint, r.style("accent"))
	r.screen.DrawText(leftMargin+trackWidth-len(maxLabel), labelsRow, maxLabel, muted)

	from := TrackColumn(snap.Bounds.Lower, trackWidth)
	to := TrackColumn(snap.Bounds.Upper, trackWidth)
	for col := 0; col < trackWidth; col++ {
		ch, style := '─', r.style("track")
		if col >= from && col <= to {
			ch, style = '━', r.style("fill")
		}
		r.screen.SetContent(leftMargin+col, trackRow, ch, style)
	}

	if snap.HasGuess {
		col := TrackColumn(snap.LastGuess, trackWidth)
		r.screen.SetContent(leftMargin+col, trackRow, '┃', r.style("marker").Bold(true))
	}
}

func (r *Renderer) renderInput(snap engine.Snapshot) {
	x := r.screen.DrawText(leftMargin, inputRow, inputPrompt, r.style("accent"))

	if snap.Status != engine.StatusPlaying {
		r.screen.HideCursor()
		r.screen.DrawText(leftMargin, helpRow, helpFinished, r.style("muted"))
		return
	}

	if snap.Input == "" {
		r.screen.DrawText(x, inputRow, r.theme.Placeholder, r.style("muted"))
		r.screen.ShowCursor(x, inputRow)
	} else {
		end := r.screen.DrawText(x, inputRow, snap.Input, r.style("text"))
		r.screen.ShowCursor(end, inputRow)
	}
	r.screen.DrawText(leftMargin, helpRow, helpPlaying, r.style("muted"))
}

func (r *Renderer) renderHistory(snap engine.Snapshot) {
	if len(snap.History) == 0 {
		return
	}

	_, height := r.screen.Size()
	r.screen.DrawText(leftMargin, historyRow, r.theme.HistoryTitle, r.style("accent").Bold(true))

	visible := lo.Slice(snap.History, 0, max(0, height-historyRow-1))
	for i, line := range HistoryLines(visible) {
		r.screen.DrawText(leftMargin, historyRow+1+i, line, r.style(visible[i].Relation.String()))
	}
}

func (r *Renderer) style(key string) tcell.Style {
	return tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(r.theme.Color(key))
}

// TrackColumn maps n in [MinValue, MaxValue] to a column in a track of
// the given width. Out of range values are clamped to the ends.
func TrackColumn(n, width int) int {
	if width <= 1 {
		return 0
	}
	span := float64(engine.MaxValue - engine.MinValue)
	col := int(math.Round(float64(n-engine.MinValue) / span * float64(width-1)))
	return lo.Clamp(col, 0, width-1)
}

// BoundsHint formats the bounds as shown above the track.
func BoundsHint(b engine.Bounds) string {
	return fmt.Sprintf("%d – %d", b.Lower, b.Upper)
}

// HistoryLines formats guess records for the recent guesses list.
func HistoryLines(history []engine.GuessRecord) []string {
	return lo.Map(history, func(rec engine.GuessRecord, _ int) string {
		return fmt.Sprintf("%3d  %s", rec.Value, rec.Relation.Label())
	})
}
