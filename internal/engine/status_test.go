package engine

import (
	"errors"
	"testing"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
		label    string
	}{
		{StatusPlaying, "playing", "Playing"},
		{StatusWon, "won", "You won!"},
		{StatusGaveUp, "gaveup", "Gave up"},
		{Status(99), "unknown", "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.expected)
		}
		if got := tt.status.Label(); got != tt.label {
			t.Errorf("Status(%d).Label() = %q, want %q", tt.status, got, tt.label)
		}
	}
}

func TestRelationString(t *testing.T) {
	tests := []struct {
		relation Relation
		expected string
		label    string
	}{
		{RelationLow, "low", "Too low"},
		{RelationHigh, "high", "Too high"},
		{RelationCorrect, "correct", "Correct"},
		{Relation(7), "unknown", "unknown"},
	}

	for _, tt := range tests {
		if got := tt.relation.String(); got != tt.expected {
			t.Errorf("Relation(%d).String() = %q, want %q", tt.relation, got, tt.expected)
		}
		if got := tt.relation.Label(); got != tt.label {
			t.Errorf("Relation(%d).Label() = %q, want %q", tt.relation, got, tt.label)
		}
	}
}

func TestParseGuess(t *testing.T) {
	tests := []struct {
		input string
		want  int
		err   error
	}{
		{"1", 1, nil},
		{"100", 100, nil},
		{" 42 ", 42, nil},
		{"+7", 7, nil},
		{"007", 7, nil},
		{"0", 0, ErrOutOfRange},
		{"101", 0, ErrOutOfRange},
		{"-1", 0, ErrOutOfRange},
		{"18446744073709551616", 0, ErrOutOfRange},
		{"", 0, ErrNotANumber},
		{"abc", 0, ErrNotANumber},
		{"4 2", 0, ErrNotANumber},
		{"1e2", 0, ErrNotANumber},
		{"0x10", 0, ErrNotANumber},
	}

	for _, tt := range tests {
		got, err := ParseGuess(tt.input)
		if !errors.Is(err, tt.err) {
			t.Errorf("ParseGuess(%q) error = %v, want %v", tt.input, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGuess(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
