package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInitForCLI_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)
	t.Cleanup(func() { defaultLogger = nil })

	Debug("Store", "hidden %d", 1)
	Info("Store", "also hidden")
	Warn("Store", "backup skipped for %s", "hosts.db")
	Error("CLI", errors.New("boom"), "command failed")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug/info entries to be filtered, got:\n%s", out)
	}
	if !strings.Contains(out, "backup skipped for hosts.db") {
		t.Errorf("missing warn entry in:\n%s", out)
	}
	if !strings.Contains(out, "subsystem=Store") {
		t.Errorf("missing subsystem attribute in:\n%s", out)
	}
	if !strings.Contains(out, "error=boom") {
		t.Errorf("missing error attribute in:\n%s", out)
	}
}

func TestLogBeforeInitIsDiscarded(t *testing.T) {
	defaultLogger = nil
	// Must not panic.
	Debug("Store", "nothing to see")
	Error("Store", errors.New("x"), "still nothing")
}
