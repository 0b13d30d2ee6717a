package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	log := NewLogger(&buf, false)
	log.Debug("hidden")
	log.Info("shown", zap.String("session", "abc"))
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug entry should be filtered at info level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "abc") {
		t.Errorf("info entry missing, got %q", out)
	}

	buf.Reset()
	log = NewLogger(&buf, true)
	log.Debug("visible")
	_ = log.Sync()
	if !strings.Contains(buf.String(), "visible") {
		t.Error("debug entry should be written in debug mode")
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "chat.log")

	log, closeFn, err := NewFileLogger(path, false)
	if err != nil {
		t.Fatalf("NewFileLogger() returned error: %v", err)
	}
	log.Info("submit finished", zap.Int("turns", 2))
	_ = log.Sync()
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "submit finished") {
		t.Errorf("log file missing entry, got %q", string(data))
	}
	if strings.Contains(string(data), "\x1b[") {
		t.Error("file logs should not contain color escapes")
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("nothing")
}
