package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	zl, closeLog := New("warn", FileConfig{}, &buf)
	defer closeLog()

	zl.Info("hidden")
	zl.Warn("shown")
	_ = zl.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info to be filtered at warn level, got %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "shown") {
		t.Errorf("expected warn line, got %q", out)
	}
}

func TestNew_File(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "cubepano.log")
	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false

	zl, closeLog := New("debug", cfg, nil)
	zl.Debug("to file", Elapsed(time.Now()))
	_ = zl.Sync()

	if err := closeLog(); err != nil {
		t.Fatalf("failed to close log file: %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("expected message in log file, got %q", data)
	}
	if !strings.Contains(string(data), "elapsed") {
		t.Errorf("expected elapsed field in log file, got %q", data)
	}

	// A write after close reopens the file rather than failing.
	zl.Info("after close")
	_ = zl.Sync()
	if err := closeLog(); err != nil {
		t.Errorf("expected second close to succeed, got %v", err)
	}
	data, _ = os.ReadFile(logFile)
	if !strings.Contains(string(data), "after close") {
		t.Errorf("expected reopened file to receive writes, got %q", data)
	}
}

func TestNew_NoSinks(t *testing.T) {
	zl, closeLog := New("debug", FileConfig{}, nil)
	if zl.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected nop logger when no sinks are configured")
	}
	if err := closeLog(); err != nil {
		t.Errorf("expected no-op close, got %v", err)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("x.log")
	if cfg.Path != "x.log" {
		t.Errorf("expected path x.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 || !cfg.Compress {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	zl, closeLog := New("debug", FileConfig{}, &buf)
	defer closeLog()
	log := slog.New(NewSlogHandler(zl))

	log.With("op", "extract").Info("done",
		"name", "px",
		"size", 512,
		slog.Group("uv", "u", 0.5),
		"err", errors.New("boom"),
	)
	_ = zl.Sync()

	out := buf.String()
	for _, want := range []string{"INFO", "done", `"op": "extract"`, `"name": "px"`, `"size": 512`, `"u": 0.5`, "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
}

func TestSlogHandler_Levels(t *testing.T) {
	var buf bytes.Buffer
	zl, closeLog := New("info", FileConfig{}, &buf)
	defer closeLog()
	h := NewSlogHandler(zl)

	if h.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("expected debug to be disabled at info level")
	}
	if !h.Enabled(t.Context(), slog.LevelWarn) {
		t.Error("expected warn to be enabled at info level")
	}

	slog.New(h).Debug("hidden")
	slog.New(h).Warn("shown")
	_ = zl.Sync()
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("expected only the warn record, got %q", out)
	}
}
