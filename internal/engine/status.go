// Package engine holds the number guessing state machine.
package engine

// Status represents where the current game is in its lifecycle.
type Status int

const (
	// StatusPlaying accepts guesses.
	StatusPlaying Status = iota
	// StatusWon is reached on a correct guess.
	StatusWon
	// StatusGaveUp is reached when the player gives up.
	StatusGaveUp
)

// String returns a machine-friendly status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusGaveUp:
		return "gaveup"
	default:
		return "unknown"
	}
}

// Label returns the player-facing status text.
func (s Status) Label() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusWon:
		return "You won!"
	case StatusGaveUp:
		return "Gave up"
	default:
		return "unknown"
	}
}

// Relation is how a guess compares to the target.
type Relation int

const (
	// RelationLow means the guess was below the target.
	RelationLow Relation = iota
	// RelationHigh means the guess was above the target.
	RelationHigh
	// RelationCorrect means the guess hit the target.
	RelationCorrect
)

// String returns a machine-friendly relation name.
func (r Relation) String() string {
	switch r {
	case RelationLow:
		return "low"
	case RelationHigh:
		return "high"
	case RelationCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// Label returns the text shown in the guess history.
func (r Relation) Label() string {
	switch r {
	case RelationLow:
		return "Too low"
	case RelationHigh:
		return "Too high"
	case RelationCorrect:
		return "Correct"
	default:
		return "unknown"
	}
}

// GuessRecord is one accepted guess.
type GuessRecord struct {
	Value    int
	Relation Relation
}

// relate compares value to target.
func relate(value, target int) Relation {
	switch {
	case value < target:
		return RelationLow
	case value > target:
		return RelationHigh
	default:
		return RelationCorrect
	}
}
