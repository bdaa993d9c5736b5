package main

import (
	"os"
	"testing"

	"github.com/samdwyer/numberguess/internal/telemetry"
)

func TestSetupOTelEnv(t *testing.T) {
	tests := []struct {
		name        string
		apiKey      string
		dataset     string
		endpoint    string
		toggle      string
		wantEnabled bool
		wantHeaders string
	}{
		{"nothing configured", "", "", "", "", false, ""},
		{"plain endpoint", "", "", "http://localhost:4318", "", true, ""},
		{"api key default dataset", "key1", "", "", "", true, "x-honeycomb-team=key1,x-honeycomb-dataset=numberguess"},
		{"api key custom dataset", "key2", "games", "", "", true, "x-honeycomb-team=key2,x-honeycomb-dataset=games"},
		{"explicitly disabled", "key3", "", "", "false", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HONEYCOMB_NUMBERGUESS_API_KEY", tt.apiKey)
			t.Setenv("HONEYCOMB_NUMBERGUESS_DATASET", tt.dataset)
			t.Setenv("NUMBERGUESS_TELEMETRY", tt.toggle)
			t.Setenv(telemetry.EnvEndpoint, tt.endpoint)
			t.Setenv(telemetry.EnvHeaders, "")

			if got := setupOTelEnv(); got != tt.wantEnabled {
				t.Errorf("setupOTelEnv() = %v, want %v", got, tt.wantEnabled)
			}
			if got := os.Getenv(telemetry.EnvHeaders); got != tt.wantHeaders {
				t.Errorf("%s = %q, want %q", telemetry.EnvHeaders, got, tt.wantHeaders)
			}
		})
	}
}
