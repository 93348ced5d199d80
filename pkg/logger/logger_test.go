package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggerWritesServiceAndFields(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "parks-test", Level: zerolog.InfoLevel, Output: &buf})

	ctx := logg.WithRequestID(context.Background(), "req-123")
	ctx = logg.WithUserName(ctx, "alice")
	logg.Info(ctx, "hello")

	out := buf.String()
	for _, want := range []string{`"service":"parks-test"`, `"request_id":"req-123"`, `"user_name":"alice"`, `"message":"hello"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log output to contain %s, got %s", want, out)
		}
	}
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	if got := ParseLevel("nonsense"); got != zerolog.InfoLevel {
		t.Fatalf("expected info level fallback, got %v", got)
	}
	if got := ParseLevel("debug"); got != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", got)
	}
	if got := ParseLevel(""); got != zerolog.InfoLevel {
		t.Fatalf("expected info for empty level, got %v", got)
	}
}

func TestErrorIncludesStack(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "parks-test", Output: &buf})

	logg.Error(context.Background(), "boom", nil)

	if !strings.Contains(buf.String(), `"stack"`) {
		t.Fatalf("expected error log to carry a stack field, got %s", buf.String())
	}
}
