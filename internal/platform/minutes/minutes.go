// Package minutes parses and formats study durations expressed in minutes.
package minutes

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse accepts "90", "1h30m", "1h 30m", "45m", "1:30" and decimal hours
// such as "1.5h". Negative values are rejected.
func Parse(input string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative duration %q", input)
		}
		return n, nil
	}
	if hours, mins, ok := strings.Cut(s, ":"); ok {
		h, herr := strconv.Atoi(strings.TrimSpace(hours))
		m, merr := strconv.Atoi(strings.TrimSpace(mins))
		if herr != nil || merr != nil || h < 0 || m < 0 || m >= 60 {
			return 0, fmt.Errorf("invalid duration %q", input)
		}
		return h*60 + m, nil
	}
	d, err := time.ParseDuration(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", input)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", input)
	}
	return int(d / time.Minute), nil
}

// Format renders minutes as "2h 15m".
func Format(total int) string {
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	return fmt.Sprintf("%s%dh %dm", sign, total/60, total%60)
}
