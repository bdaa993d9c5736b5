package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/numberguess/internal/telemetry"
)

const (
	// MinValue is the smallest number the target can be.
	MinValue = 1
	// MaxValue is the largest number the target can be.
	MaxValue = 100
)

// Player-facing messages.
const (
	MsgPrompt     = "Make a guess!"
	MsgNotANumber = "Please enter a whole number between 1 and 100."
	MsgOutOfRange = "Your guess must be between 1 and 100."
	MsgTooLow     = "Too low. Try a higher number."
	MsgTooHigh    = "Too high. Try a lower number."
	msgCorrectFmt = "Correct! You guessed it in %d attempts."
	msgGaveUpFmt  = "You gave up. The number was %d."
)

// Config holds engine options.
type Config struct {
	// Seed for the target generator. A seed of 0 means a time-based seed.
	Seed int64
}

// Engine owns all state for one play session. It is not safe for
// concurrent use.
type Engine struct {
	rng  *rand.Rand
	draw func() int

	gameID   string
	target   int
	attempts int
	history  []GuessRecord
	status   Status
	feedback string
	input    string
}

// New creates an engine and starts the first game.
func New(cfg Config) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &Engine{rng: rand.New(rand.NewSource(seed))}
	e.draw = func() int { return DrawTarget(e.rng) }
	e.StartNewGame(context.Background())
	return e
}

// DrawTarget picks a number uniformly from [MinValue, MaxValue].
func DrawTarget(rng *rand.Rand) int {
	return rng.Intn(MaxValue-MinValue+1) + MinValue
}

// StartNewGame resets every field for a fresh game.
func (e *Engine) StartNewGame(ctx context.Context) {
	tracer := telemetry.Tracer("engine")
	_, span := tracer.Start(ctx, "game.start")
	defer span.End()

	next := Engine{
		rng:      e.rng,
		draw:     e.draw,
		gameID:   uuid.NewString(),
		target:   e.draw(),
		history:  []GuessRecord{},
		status:   StatusPlaying,
		feedback: MsgPrompt,
	}
	previous := e.gameID
	*e = next

	span.SetAttributes(
		attribute.String("game.id", e.gameID),
		attribute.String("game.previous_id", previous),
	)
}

// SubmitGuess validates raw and applies it as a guess. It does nothing
// once the game has ended. Invalid input only changes the feedback.
func (e *Engine) SubmitGuess(ctx context.Context, raw string) {
	if e.status != StatusPlaying {
		return
	}

	tracer := telemetry.Tracer("engine")
	_, span := tracer.Start(ctx, "game.guess")
	defer span.End()
	span.SetAttributes(attribute.String("game.id", e.gameID))

	value, err := ParseGuess(raw)
	if err != nil {
		switch {
		case errors.Is(err, ErrOutOfRange):
			e.feedback = MsgOutOfRange
		default:
			e.feedback = MsgNotANumber
		}
		span.SetAttributes(
			attribute.Bool("guess.rejected", true),
			attribute.String("guess.error", err.Error()),
		)
		return
	}

	e.attempts++
	relation := relate(value, e.target)
	switch relation {
	case RelationLow:
		e.feedback = MsgTooLow
	case RelationHigh:
		e.feedback = MsgTooHigh
	case RelationCorrect:
		e.feedback = fmt.Sprintf(msgCorrectFmt, e.attempts)
		e.status = StatusWon
	}
	e.history = append([]GuessRecord{{Value: value, Relation: relation}}, e.history...)
	e.input = ""

	span.SetAttributes(
		attribute.Int("guess.value", value),
		attribute.String("guess.relation", relation.String()),
		attribute.Int("game.attempts", e.attempts),
		attribute.String("game.status", e.status.String()),
	)
}

// Submit sends the pending input buffer as a guess.
func (e *Engine) Submit(ctx context.Context) {
	e.SubmitGuess(ctx, e.input)
}

// GiveUp ends the game and reveals the target.
func (e *Engine) GiveUp(ctx context.Context) {
	if e.status != StatusPlaying {
		return
	}

	tracer := telemetry.Tracer("engine")
	_, span := tracer.Start(ctx, "game.give_up")
	defer span.End()

	e.status = StatusGaveUp
	e.feedback = fmt.Sprintf(msgGaveUpFmt, e.target)

	span.SetAttributes(
		attribute.String("game.id", e.gameID),
		attribute.Int("game.attempts", e.attempts),
		attribute.Int("game.target", e.target),
	)
}

// Bounds is the narrowest interval known to contain the target.
type Bounds struct {
	Lower, Upper int
}

// Bounds derives the narrowing hint from the history, newest first.
// A correct record pins both ends and ends the walk.
func (e *Engine) Bounds() Bounds {
	b := Bounds{Lower: MinValue, Upper: MaxValue}
	for _, rec := range e.history {
		switch rec.Relation {
		case RelationLow:
			b.Lower = max(b.Lower, rec.Value+1)
		case RelationHigh:
			b.Upper = min(b.Upper, rec.Value-1)
		case RelationCorrect:
			b.Lower, b.Upper = rec.Value, rec.Value
			return b
		}
	}
	return b
}

// Status returns the game status.
func (e *Engine) Status() Status { return e.status }

// Attempts returns the number of accepted guesses this game.
func (e *Engine) Attempts() int { return e.attempts }

// Feedback returns the current message for the player.
func (e *Engine) Feedback() string { return e.feedback }

// GameID identifies the current game.
func (e *Engine) GameID() string { return e.gameID }

// Input returns the pending input buffer.
func (e *Engine) Input() string { return e.input }

// History returns a copy of the guess history, newest first.
func (e *Engine) History() []GuessRecord {
	out := make([]GuessRecord, len(e.history))
	copy(out, e.history)
	return out
}

// Target returns the secret number. It is only revealed once the game
// is no longer being played.
func (e *Engine) Target() (int, bool) {
	if e.status == StatusPlaying {
		return 0, false
	}
	return e.target, true
}

// LastGuess returns the most recent accepted guess, if any.
func (e *Engine) LastGuess() (int, bool) {
	if len(e.history) == 0 {
		return 0, false
	}
	return e.history[0].Value, true
}

// SetInput replaces the pending input buffer.
func (e *Engine) SetInput(s string) {
	if e.status != StatusPlaying {
		return
	}
	e.input = s
}

// AppendInput adds r to the pending input buffer.
func (e *Engine) AppendInput(r rune) {
	if e.status != StatusPlaying {
		return
	}
	e.input += string(r)
}

// Backspace drops the last rune of the pending input buffer.
func (e *Engine) Backspace() {
	if e.status != StatusPlaying || e.input == "" {
		return
	}
	runes := []rune(e.input)
	e.input = string(runes[:len(runes)-1])
}

// ClearInput empties the pending input buffer.
func (e *Engine) ClearInput() {
	e.input = ""
}
