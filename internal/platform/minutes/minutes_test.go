package minutes_test

import (
	"testing"

	"hunttrack/internal/platform/minutes"
)

func TestParse(t *testing.T) {
	t.Parallel()
	cases := map[string]int{
		"90":     90,
		"0":      0,
		"1h30m":  90,
		"1h 30m": 90,
		"45m":    45,
		"2:15":   135,
		"1.5h":   90,
		" 70 ":   70,
	}
	for in, want := range cases {
		got, err := minutes.Parse(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %d, got %d", in, want, got)
		}
	}
	for _, bad := range []string{"", "-5", "abc", "1:75", "-1h"} {
		if _, err := minutes.Parse(bad); err == nil {
			t.Fatalf("expected %q to fail", bad)
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()
	if got := minutes.Format(135); got != "2h 15m" {
		t.Fatalf("unexpected format: %s", got)
	}
	if got := minutes.Format(-20); got != "-0h 20m" {
		t.Fatalf("unexpected negative format: %s", got)
	}
}
