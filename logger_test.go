package trtc

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
	if l.Handler() != slog.DiscardHandler {
		t.Errorf("default handler = %T, want slog.DiscardHandler", l.Handler())
	}
}

// captureLogs installs a debug-level text logger for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestSetLogger(t *testing.T) {
	buf := captureLogs(t)

	NewCanvas(3, 4)
	out := buf.String()
	if !strings.Contains(out, "canvas allocated") || !strings.Contains(out, "pixels=12") {
		t.Errorf("expected canvas allocation log, got: %s", out)
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestLogger_InvalidDivisor(t *testing.T) {
	buf := captureLogs(t)

	_ = catchPanic(func() { Vector(1, 2, 3).Div(0) })
	out := buf.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "invalid divisor") {
		t.Errorf("expected error log before panic, got: %s", out)
	}
}

func TestLogger_OutOfBounds(t *testing.T) {
	buf := captureLogs(t)

	c := NewCanvas(2, 2)
	_ = c.SetPixel(5, 0, Red)
	if !strings.Contains(buf.String(), "pixel out of bounds") {
		t.Errorf("expected out-of-bounds debug log, got: %s", buf.String())
	}
}

func TestSetLoggerConcurrent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(slog.Default())
			} else {
				SetLogger(nil)
			}
		}()
		go func() {
			defer wg.Done()
			_ = Logger()
		}()
	}
	wg.Wait()
}
