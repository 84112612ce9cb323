package logger

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		want  slog.Level
	}{
		{name: "debug level", level: LevelDebug, want: slog.LevelDebug},
		{name: "info level", level: LevelInfo, want: slog.LevelInfo},
		{name: "warn level", level: LevelWarn, want: slog.LevelWarn},
		{name: "error level", level: LevelError, want: slog.LevelError},
		{name: "unknown level defaults to info", level: Level("loud"), want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(Config{Level: tt.level, Format: FormatText, Output: "discard"})
			if logger.Logger == nil {
				t.Fatal("Expected logger to be created")
			}

			ctx := context.Background()
			if !logger.Enabled(ctx, tt.want) {
				t.Errorf("Expected level %v to be enabled", tt.want)
			}
			if tt.want > slog.LevelDebug && logger.Enabled(ctx, tt.want-1) {
				t.Errorf("Expected level below %v to be disabled", tt.want)
			}
		})
	}
}

func readLog(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "json.log")

	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: path})
	logger.Info("record inserted", "table", "income")

	var logEntry map[string]interface{}
	if err := json.Unmarshal([]byte(readLog(t, path)), &logEntry); err != nil {
		t.Fatalf("Expected valid JSON output, got error: %v", err)
	}

	if logEntry["msg"] != "record inserted" {
		t.Errorf("Expected msg to be 'record inserted', got %v", logEntry["msg"])
	}

	if logEntry["table"] != "income" {
		t.Errorf("Expected table to be 'income', got %v", logEntry["table"])
	}
}

func TestTextFormatWith(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.log")

	logger := New(Config{Level: LevelInfo, Format: FormatText, Output: path}).With("component", "ledger")
	logger.Info("table cleared", "table", "saving")

	output := readLog(t, path)

	if !strings.Contains(output, "table cleared") {
		t.Errorf("Expected output to contain 'table cleared', got %s", output)
	}

	if !strings.Contains(output, "component=ledger") {
		t.Errorf("Expected output to contain 'component=ledger', got %s", output)
	}

	if !strings.Contains(output, "table=saving") {
		t.Errorf("Expected output to contain 'table=saving', got %s", output)
	}
}
