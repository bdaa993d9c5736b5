// Package game runs the interactive session: it reads terminal events,
// turns them into intents for the engine, and redraws after each one.
package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/numberguess/internal/engine"
	"github.com/samdwyer/numberguess/internal/gamedata"
	"github.com/samdwyer/numberguess/internal/telemetry"
	"github.com/samdwyer/numberguess/internal/ui"
)

// Game holds the session: one engine plus the screen it is drawn on.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *engine.Engine
	running  bool
}

// New creates a game on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(cfg, screen), nil
}

// NewWithScreen creates a game on an existing tcell screen, such as a
// tcell.SimulationScreen.
func NewWithScreen(cfg Config, s tcell.Screen) (*Game, error) {
	screen, err := ui.NewScreenFrom(s)
	if err != nil {
		return nil, err
	}
	return newGame(cfg, screen), nil
}

func newGame(cfg Config, screen *ui.Screen) *Game {
	theme, err := gamedata.LoadTheme()
	if err != nil {
		log.Warn().Err(err).Msg("theme not loaded, using default")
		theme = gamedata.DefaultTheme()
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		engine:   engine.New(engine.Config{Seed: cfg.Seed}),
		running:  true,
	}
}

// Engine exposes the session's engine.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Run executes the main loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	log.Info().Str("game_id", g.engine.GameID()).Msg("session started")

	for g.running {
		g.renderer.Render(g.engine.Snapshot())
		g.handleInput(ctx)
	}

	g.Close()
	log.Info().Msg("session ended")
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.Apply(ctx, IntentFor(ev.Key(), ev.Rune(), g.engine.Status()), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// Apply performs intent against the engine. r is only used by IntentType.
func (g *Game) Apply(ctx context.Context, intent Intent, r rune) {
	if intent == IntentNone {
		return
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.intent")
	defer span.End()
	span.SetAttributes(
		attribute.String("intent", intent.String()),
		attribute.String("game.id", g.engine.GameID()),
	)

	switch intent {
	case IntentType:
		g.engine.AppendInput(r)
	case IntentErase:
		g.engine.Backspace()
	case IntentGuess:
		input := g.engine.Input()
		g.engine.Submit(ctx)
		log.Debug().
			Str("game_id", g.engine.GameID()).
			Str("input", input).
			Int("attempts", g.engine.Attempts()).
			Str("status", g.engine.Status().String()).
			Msg(g.engine.Feedback())
	case IntentGiveUp:
		g.engine.GiveUp(ctx)
		log.Info().
			Str("game_id", g.engine.GameID()).
			Int("attempts", g.engine.Attempts()).
			Msg("gave up")
	case IntentNewGame:
		previous := g.engine.GameID()
		g.engine.StartNewGame(ctx)
		log.Info().
			Str("previous_game_id", previous).
			Str("game_id", g.engine.GameID()).
			Msg("new game")
	case IntentQuit:
		g.running = false
	}

	if status := g.engine.Status(); status != engine.StatusPlaying {
		span.SetAttributes(attribute.String("game.status", status.String()))
	}
}

// Running reports whether the loop will keep going.
func (g *Game) Running() bool {
	return g.running
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
