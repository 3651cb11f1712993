package app

import "testing"

func TestSplitDuration(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in, duration, notes string
	}{
		{"90 graphs and trees", "90", "graphs and trees"},
		{"1h 30m system design", "1h 30m", "system design"},
		{"1h30m", "1h30m", ""},
		{"2h mock interview", "2h", "mock interview"},
		{"1:30 sql", "1:30", "sql"},
	}
	for _, c := range cases {
		d, n := splitDuration(c.in)
		if d != c.duration || n != c.notes {
			t.Fatalf("%q: got (%q, %q) want (%q, %q)", c.in, d, n, c.duration, c.notes)
		}
	}
}

func TestTabByName(t *testing.T) {
	t.Parallel()
	if tab, ok := tabByName("study"); !ok || tab != tabStudy {
		t.Fatalf("unexpected tab %v %v", tab, ok)
	}
	if _, ok := tabByName("graph"); ok {
		t.Fatalf("unknown tab accepted")
	}
}
