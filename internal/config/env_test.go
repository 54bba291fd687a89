package config

import (
	"bytes"
	"strings"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("ARCADE_TEST_VALUE", "hello")

	if got := GetEnv("ARCADE_TEST_VALUE", "fallback"); got != "hello" {
		t.Errorf("expected hello, got %q", got)
	}
	if got := GetEnv("ARCADE_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		fallback int64
		want     int64
	}{
		{name: "unset", fallback: 7, want: 7},
		{name: "valid", value: "42", set: true, fallback: 7, want: 42},
		{name: "negative", value: "-3", set: true, fallback: 7, want: -3},
		{name: "malformed", value: "abc", set: true, fallback: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "ARCADE_TEST_INT_" + tt.name
			if tt.set {
				t.Setenv(key, tt.value)
			}
			if got := GetEnvInt(key, tt.fallback); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestSeed(t *testing.T) {
	t.Setenv("ARCADE_SEED", "42")
	if got := Seed(); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}

	t.Setenv("ARCADE_SEED", "0")
	if got := Seed(); got == 0 {
		t.Error("expected a time-based seed for 0")
	}
}

func TestNewRandIsDeterministic(t *testing.T) {
	t.Setenv("ARCADE_SEED", "7")
	a, b := NewRand(), NewRand()
	for i := 0; i < 5; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("expected equal sequences, got %d and %d", x, y)
		}
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv("ARCADE_LOG_LEVEL", "debug")
	logger := NewLogger(&buf, "test")
	logger.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected debug line, got %q", buf.String())
	}

	buf.Reset()
	t.Setenv("ARCADE_LOG_LEVEL", "warn")
	logger = NewLogger(&buf, "test")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}
}
