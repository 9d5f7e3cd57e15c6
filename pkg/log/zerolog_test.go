package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf))

	logger.Warn("overflow detected",
		String("domain", "uint8"),
		Uint64("step", 5),
		Int("bits", 8),
		Any("saturated", true),
		Strings("ops", []string{"accumulate"}),
		Err(errors.New("boom")),
		Any("delta", 51.5),
	)

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}

	if got["level"] != "warn" {
		t.Errorf("level = %v, want warn", got["level"])
	}
	if got["message"] != "overflow detected" {
		t.Errorf("message = %v, want overflow detected", got["message"])
	}
	if got["domain"] != "uint8" {
		t.Errorf("domain = %v, want uint8", got["domain"])
	}
	if got["step"] != float64(5) {
		t.Errorf("step = %v, want 5", got["step"])
	}
	if got["saturated"] != true {
		t.Errorf("saturated = %v, want true", got["saturated"])
	}
	if got["error"] != "boom" {
		t.Errorf("error = %v, want boom", got["error"])
	}
	if got["delta"] != 51.5 {
		t.Errorf("delta = %v, want 51.5", got["delta"])
	}
}

func TestConsoleLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, zerolog.WarnLevel)

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("below-level output = %q, want empty", buf.String())
	}

	logger.Error("shown")
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Errorf("output = %q, want it to contain shown", buf.String())
	}
}

func TestNoopLogger(t *testing.T) {
	var logger Logger = NewNoopLogger()
	logger.Debug("x")
	logger.Info("x")
	logger.Warn("x")
	logger.Error("x", Err(errors.New("ignored")))
}
