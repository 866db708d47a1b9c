package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupWriter(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	tests := []struct {
		name    string
		opts    Logger
		level   zerolog.Level
		json    bool
		emitted bool
	}{
		{"json info", Logger{Level: "info", Format: "json"}, zerolog.InfoLevel, true, true},
		{"console debug", Logger{Level: "debug", Format: "console"}, zerolog.DebugLevel, false, true},
		{"error suppresses info", Logger{Level: "error", Format: "json"}, zerolog.ErrorLevel, true, false},
		{"invalid falls back to info", Logger{Level: "loud", Format: "json"}, zerolog.InfoLevel, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.opts.SetupWriter(&buf)

			if zerolog.GlobalLevel() != tt.level {
				t.Errorf("Expected level %v, got %v", tt.level, zerolog.GlobalLevel())
			}

			log.Info().Str("component", "test").Msg("hello")
			out := buf.String()

			if !tt.emitted {
				if out != "" {
					t.Errorf("Expected no output, got %q", out)
				}
				return
			}
			if !strings.Contains(out, "hello") {
				t.Errorf("Expected message in output, got %q", out)
			}
			if tt.json != strings.HasPrefix(out, "{") {
				t.Errorf("Expected json=%v, got %q", tt.json, out)
			}
		})
	}
}
