package engine

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNotANumber is returned for input that is not a whole number.
	ErrNotANumber = errors.New("not a whole number")
	// ErrOutOfRange is returned for whole numbers outside [MinValue, MaxValue].
	ErrOutOfRange = errors.New("guess out of range")
)

// ParseGuess parses raw player input into a guess in [MinValue, MaxValue].
// Surrounding whitespace is ignored; anything else that is not a base-10
// integer yields ErrNotANumber.
func ParseGuess(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		// Atoi reports overflow separately; a huge integer is still a number.
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOutOfRange
		}
		return 0, ErrNotANumber
	}
	if value < MinValue || value > MaxValue {
		return 0, ErrOutOfRange
	}
	return value, nil
}
