package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skillet-dev/skillet/internal/config"
)

func TestNewFromConfig_DefaultsToStderr(t *testing.T) {
	cfg := &config.Config{
		Logging: config.LoggingConfig{
			Level:  config.LogLevelInfo,
			Format: config.LogFormatText,
			File:   "", // No file
		},
	}

	logger, closer, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	if closer != nil {
		t.Error("Expected no closer when no file configured")
	}
	if logger == nil {
		t.Fatal("Expected logger to be non-nil")
	}
}

func TestNewFromConfig_WritesFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "skillet.log")

	cfg := &config.Config{
		Logging: config.LoggingConfig{
			Level:  config.LogLevelDebug,
			Format: config.LogFormatJSON,
			File:   logPath,
		},
	}

	logger, closer, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	if closer == nil {
		t.Fatal("Expected closer when file configured")
	}
	defer closer.Close()

	logger.Info("installed", "skill", "pdf")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"skill":"pdf"`) {
		t.Errorf("log file missing expected entry, got: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   config.LogLevel
		want slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarn, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewForTest_Silent(t *testing.T) {
	logger := NewForTest()
	if logger == nil {
		t.Fatal("NewForTest returned nil")
	}
	// Should not panic or write anywhere visible.
	logger.Info("ignored")
}
