package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func execute(t *testing.T, dataDir string, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--data", dataDir}, args...))
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestApplicationAndStudyCommands(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	if out := execute(t, dir, "app", "add", "Acme", "Backend Engineer", "--date", "2026-01-05"); !strings.Contains(out, "status=Applied") {
		t.Fatalf("unexpected add output %q", out)
	}
	if out := execute(t, dir, "app", "list"); !strings.Contains(out, "2026-01-05\tApplied\tAcme\tBackend Engineer") {
		t.Fatalf("unexpected list output %q", out)
	}
	if out := execute(t, dir, "study", "log", "1h", "30m", "--date", "2026-01-05"); !strings.Contains(out, "logged 1h 30m on 2026-01-05") {
		t.Fatalf("unexpected log output %q", out)
	}
	if out := execute(t, dir, "dashboard"); !strings.Contains(out, "total=1") {
		t.Fatalf("unexpected dashboard output %q", out)
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	t.Parallel()
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--data", t.TempDir(), "app", "reset"})
	if err := cmd.ExecuteContext(context.Background()); err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Fatalf("expected confirmation error, got %v", err)
	}
}
