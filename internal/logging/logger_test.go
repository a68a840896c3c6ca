package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{" DEBUG ", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"info", log.InfoLevel},
		{"", log.InfoLevel},
		{"loud", log.InfoLevel},
	}
	for _, tc := range tests {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewLoggerWithWriter(t *testing.T) {
	t.Setenv(envPrefix, "test ")

	t.Run("env wins", func(t *testing.T) {
		t.Setenv(envLevel, "error")
		var buf bytes.Buffer
		lg := NewLoggerWithWriter(&buf, "debug")
		lg.Warn("dropped")
		lg.Error("kept")
		out := buf.String()
		if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
			t.Errorf("unexpected output:\n%s", out)
		}
		if !strings.Contains(out, "test") {
			t.Errorf("prefix missing:\n%s", out)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		t.Setenv(envLevel, "")
		os.Unsetenv(envLevel)
		var buf bytes.Buffer
		lg := NewLoggerWithWriter(&buf, "debug")
		lg.Debug("traced")
		if !strings.Contains(buf.String(), "traced") {
			t.Errorf("debug line missing:\n%s", buf.String())
		}
		if err := lg.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
}

func TestIsDebug(t *testing.T) {
	t.Setenv(envLevel, "debug")
	if !IsDebug() {
		t.Error("IsDebug() = false")
	}
	t.Setenv(envLevel, "info")
	if IsDebug() {
		t.Error("IsDebug() = true")
	}
}
