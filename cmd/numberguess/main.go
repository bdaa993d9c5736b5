// Package main is the entry point for numberguess.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/numberguess/internal/game"
	"github.com/samdwyer/numberguess/internal/logging"
	"github.com/samdwyer/numberguess/internal/telemetry"
)

func main() {
	// Load .env file for local development
	envErr := godotenv.Load()

	closeLog, err := logging.Setup(logging.Config{
		Level: os.Getenv("LOG_LEVEL"),
		File:  os.Getenv("NUMBERGUESS_LOG_FILE"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup failed: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.Debug().Err(envErr).Msg(".env file not loaded")
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, telemetry.Config{Enabled: setupOTelEnv()})
	if err != nil {
		log.Warn().Err(err).Msg("telemetry setup failed, running without traces")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("telemetry shutdown")
			}
		}()
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize game")
		fmt.Fprintf(os.Stderr, "failed to initialize game: %v\n", err)
		os.Exit(1)
	}

	if err := g.Run(ctx); err != nil {
		log.Error().Err(err).Msg("game error")
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// configured and reports whether tracing should be enabled.
// NUMBERGUESS_TELEMETRY=false turns tracing off even with a key present.
func setupOTelEnv() bool {
	if raw := os.Getenv("NUMBERGUESS_TELEMETRY"); raw != "" {
		if on, err := strconv.ParseBool(raw); err == nil && !on {
			return false
		}
	}

	apiKey := os.Getenv("HONEYCOMB_NUMBERGUESS_API_KEY")
	if apiKey == "" {
		return os.Getenv(telemetry.EnvEndpoint) != ""
	}

	dataset := os.Getenv("HONEYCOMB_NUMBERGUESS_DATASET")
	if dataset == "" {
		dataset = "numberguess"
	}
	os.Setenv(telemetry.EnvEndpoint, "https://api.honeycomb.io")
	os.Setenv(telemetry.EnvHeaders,
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
