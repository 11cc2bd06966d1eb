package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	config := Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	}

	logger := New(config)
	if logger == nil {
		t.Fatal("Expected logger to be created, got nil")
	}

	logger.Info("test message", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON output, got: %s", buf.String())
	}
	if entry["msg"] != "test message" {
		t.Errorf("Expected msg 'test message', got: %v", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("Expected key 'value', got: %v", entry["key"])
	}
}

func TestNew_TextIsDefaultFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: "xml", Output: &buf})

	logger.Info("survey loaded", "question", "Q")

	output := buf.String()
	if !strings.Contains(output, "msg=\"survey loaded\"") {
		t.Errorf("Expected text output, got: %s", output)
	}
	if !strings.Contains(output, "question=Q") {
		t.Errorf("Expected attribute in output, got: %s", output)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Level != LevelInfo {
		t.Errorf("Expected default level to be %s, got: %s", LevelInfo, config.Level)
	}
	if config.Format != FormatText {
		t.Errorf("Expected default format to be 'text', got: %s", config.Format)
	}
	if config.Output == nil {
		t.Error("Expected default output to be non-nil")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    LogLevel
		expected slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, test := range tests {
		if got := ParseLevel(test.input); got != test.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarn, Format: FormatText, Output: &buf})
	ctx := context.Background()

	logger.DebugContext(ctx, "debug message")
	logger.InfoContext(ctx, "info message")
	logger.WarnContext(ctx, "warn message")
	logger.ErrorContext(ctx, "error message")

	output := buf.String()
	if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
		t.Errorf("Expected messages below warn to be filtered, got: %s", output)
	}
	if !strings.Contains(output, "warn message") || !strings.Contains(output, "error message") {
		t.Errorf("Expected warn and error messages, got: %s", output)
	}
}
