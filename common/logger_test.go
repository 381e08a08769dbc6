package common

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityDebug, "DEBUG"},
		{SeverityInfo, "INFO"},
		{SeverityWarning, "WARNING"},
		{SeverityError, "ERROR"},
		{Severity(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.expected {
				t.Errorf("Severity.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	for _, name := range []string{"debug", "INFO", "warn", "Warning", "error"} {
		if _, err := ParseSeverity(name); err != nil {
			t.Errorf("ParseSeverity(%q): %v", name, err)
		}
	}
	if _, err := ParseSeverity("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestStdLogger_Log(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := NewPrefixLogger(&stdout, &stderr, "amdgpu: ", SeverityDebug)

	tests := []struct {
		name     string
		severity Severity
		message  string
		checkOut bool // true for stdout, false for stderr
	}{
		{"Debug", SeverityDebug, "debug message", true},
		{"Info", SeverityInfo, "info message", true},
		{"Warning", SeverityWarning, "warning message", true},
		{"Error", SeverityError, "error message", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout.Reset()
			stderr.Reset()

			logger.Log(tt.severity, tt.message)

			output := stderr.String()
			if tt.checkOut {
				output = stdout.String()
			}

			if !strings.Contains(output, tt.message) {
				t.Errorf("Log output should contain %q, got: %s", tt.message, output)
			}
			if !strings.Contains(output, tt.severity.String()+": amdgpu: ") {
				t.Errorf("Log output should carry severity and prefix, got: %s", output)
			}
		})
	}
}

func TestStdLogger_MinLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := NewStdLoggerWithWriter(&stdout, &stderr, SeverityWarning)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Logf(SeverityInfo, "hidden %d", 3)
	if stdout.Len() != 0 {
		t.Errorf("messages below min level were logged: %s", stdout.String())
	}

	logger.Warning("shown")
	logger.Error(errors.New("bad ib"))
	logger.Error(nil)
	if !strings.Contains(stdout.String(), "shown") {
		t.Errorf("warning missing: %s", stdout.String())
	}
	if strings.Count(stderr.String(), "\n") != 1 || !strings.Contains(stderr.String(), "bad ib") {
		t.Errorf("unexpected error output: %q", stderr.String())
	}
}

func TestNoOpLogger(t *testing.T) {
	var l Logger = NewNoOpLogger()
	l.Log(SeverityError, "x")
	l.Logf(SeverityError, "%s", "x")
	l.Error(errors.New("x"))
	l.Debug("x")
	l.Info("x")
	l.Warning("x")

	if _, ok := OrNoOp(nil).(*NoOpLogger); !ok {
		t.Error("OrNoOp(nil) should return a NoOpLogger")
	}
	std := NewStdLogger(SeverityError)
	if OrNoOp(std) != Logger(std) {
		t.Error("OrNoOp should keep a non-nil logger")
	}
}
