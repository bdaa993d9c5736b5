package engine

// Snapshot is a read-only view of the engine for presentation.
// Target is zero and Revealed false while the game is being played.
type Snapshot struct {
	GameID    string
	Status    Status
	Attempts  int
	Feedback  string
	Input     string
	History   []GuessRecord
	Bounds    Bounds
	Target    int
	Revealed  bool
	LastGuess int
	HasGuess  bool
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	target, revealed := e.Target()
	last, hasGuess := e.LastGuess()
	return Snapshot{
		GameID:    e.gameID,
		Status:    e.status,
		Attempts:  e.attempts,
		Feedback:  e.feedback,
		Input:     e.input,
		History:   e.History(),
		Bounds:    e.Bounds(),
		Target:    target,
		Revealed:  revealed,
		LastGuess: last,
		HasGuess:  hasGuess,
	}
}
