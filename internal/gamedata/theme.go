package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const themeFile = "theme.json"

// ThemeColors holds hex colour codes keyed by what they paint.
type ThemeColors struct {
	Text   string `json:"text"`
	Muted  string `json:"muted"`
	Accent string `json:"accent"`
	Track  string `json:"track"`
	Fill   string `json:"fill"`
	Marker string `json:"marker"`

	// Status colours, keyed like engine.Status.String().
	Playing string `json:"playing"`
	Won     string `json:"won"`
	GaveUp  string `json:"gaveup"`

	// Relation colours, keyed like engine.Relation.String().
	Low     string `json:"low"`
	High    string `json:"high"`
	Correct string `json:"correct"`
}

// Theme is the text and colour set used by the terminal renderer.
type Theme struct {
	Title        string      `json:"title"`
	Subtitle     string      `json:"subtitle"`
	Placeholder  string      `json:"placeholder"`
	HistoryTitle string      `json:"historyTitle"`
	Colors       ThemeColors `json:"colors"`
}

// LoadTheme loads the embedded theme.json and checks every colour parses.
func LoadTheme() (*Theme, error) {
	theme, err := Load[Theme](themeFile)
	if err != nil {
		return nil, err
	}
	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", themeFile, err)
	}
	return &theme, nil
}

// MustLoadTheme loads the theme, panicking on error.
func MustLoadTheme() *Theme {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}

// DefaultTheme is a plain fallback used when no theme data is available.
func DefaultTheme() *Theme {
	return &Theme{
		Title:        "Number Guessing Game",
		Subtitle:     "Guess the secret number between 1 and 100",
		Placeholder:  "Enter a number (1-100)",
		HistoryTitle: "Recent guesses",
		Colors: ThemeColors{
			Text:    "#FFFFFF",
			Muted:   "#808080",
			Accent:  "#FFFF00",
			Track:   "#404040",
			Fill:    "#00AFFF",
			Marker:  "#FFFFFF",
			Playing: "#00AFFF",
			Won:     "#00FF00",
			GaveUp:  "#FF8000",
			Low:     "#00AFFF",
			High:    "#FF8000",
			Correct: "#00FF00",
		},
	}
}

// Validate returns an error naming a colour that does not parse.
func (t *Theme) Validate() error {
	for name, hex := range t.Colors.named() {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("color %s: %w", name, err)
		}
	}
	return nil
}

// Color returns the colour for key, falling back to white for unknown
// keys or bad values.
func (t *Theme) Color(key string) tcell.Color {
	hex, ok := t.Colors.named()[key]
	if !ok {
		return tcell.ColorWhite
	}
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

func (c ThemeColors) named() map[string]string {
	return map[string]string{
		"text":    c.Text,
		"muted":   c.Muted,
		"accent":  c.Accent,
		"track":   c.Track,
		"fill":    c.Fill,
		"marker":  c.Marker,
		"playing": c.Playing,
		"won":     c.Won,
		"gaveup":  c.GaveUp,
		"low":     c.Low,
		"high":    c.High,
		"correct": c.Correct,
	}
}
