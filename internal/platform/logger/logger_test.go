package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hunttrack/internal/platform/logger"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()
	if _, err := logger.New("loud"); err == nil {
		t.Fatalf("expected unknown level to fail")
	}
	if _, err := logger.New("debug"); err != nil {
		t.Fatalf("debug level should be accepted: %v", err)
	}
}

func TestNewFileWritesJSON(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "tui.log")
	log, err := logger.NewFile("info", path)
	if err != nil {
		t.Fatalf("new file logger: %v", err)
	}
	log.Info("dashboard refreshed")
	_ = log.Sync()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"dashboard refreshed"`) {
		t.Fatalf("expected json log line, got %s", b)
	}
}
