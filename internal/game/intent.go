package game

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/numberguess/internal/engine"
)

// Intent is a player action decoded from a key press.
type Intent int

const (
	// IntentNone ignores the key.
	IntentNone Intent = iota
	// IntentType appends the key's rune to the input.
	IntentType
	// IntentErase removes the last input rune.
	IntentErase
	// IntentGuess submits the input as a guess.
	IntentGuess
	// IntentGiveUp reveals the number and ends the game.
	IntentGiveUp
	// IntentNewGame starts over with a fresh number.
	IntentNewGame
	// IntentQuit leaves the program.
	IntentQuit
)

// String returns a human-readable intent name.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentType:
		return "type"
	case IntentErase:
		return "erase"
	case IntentGuess:
		return "guess"
	case IntentGiveUp:
		return "give_up"
	case IntentNewGame:
		return "new_game"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// IntentFor maps a key press to an intent given the current status.
// Typing and guessing only apply while playing; once the game is over,
// Enter and n restart and q quits.
func IntentFor(key tcell.Key, r rune, status engine.Status) Intent {
	playing := status == engine.StatusPlaying

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyCtrlN:
		return IntentNewGame
	case tcell.KeyCtrlG:
		if playing {
			return IntentGiveUp
		}
	case tcell.KeyEnter:
		if playing {
			return IntentGuess
		}
		return IntentNewGame
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if playing {
			return IntentErase
		}
	case tcell.KeyRune:
		if playing {
			if unicode.IsPrint(r) {
				return IntentType
			}
			return IntentNone
		}
		switch r {
		case 'n', 'N':
			return IntentNewGame
		case 'q', 'Q':
			return IntentQuit
		}
	}
	return IntentNone
}
