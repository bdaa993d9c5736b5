package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numberguess.log")

	closeFn, err := Setup(Config{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	t.Cleanup(func() { log.Logger = zerolog.Nop() })

	log.Info().Str("game_id", "abc").Msg("game started")
	if err := closeFn(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(content)
	if !strings.Contains(line, `"message":"game started"`) {
		t.Errorf("log file missing message, got %q", line)
	}
	if !strings.Contains(line, `"game_id":"abc"`) {
		t.Errorf("log file missing field, got %q", line)
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("GlobalLevel() = %v, want debug", zerolog.GlobalLevel())
	}
}

func TestSetupDefaults(t *testing.T) {
	closeFn, err := Setup(Config{})
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	if err := closeFn(); err != nil {
		t.Errorf("close error: %v", err)
	}
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("GlobalLevel() = %v, want info", zerolog.GlobalLevel())
	}
}

func TestSetupBadLevel(t *testing.T) {
	if _, err := Setup(Config{Level: "loud"}); err == nil {
		t.Error("Setup() with unknown level should fail")
	}
}

func TestSetupBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "x.log")
	if _, err := Setup(Config{File: path}); err == nil {
		t.Error("Setup() with unwritable path should fail")
	}
}
