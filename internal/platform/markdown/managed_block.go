package markdown

import (
	"fmt"
	"strings"
)

// Markers returns the HTML comments that fence the generated block name.
func Markers(name string) (start, end string) {
	return fmt.Sprintf("<!-- hunttrack:%s:start -->", name), fmt.Sprintf("<!-- hunttrack:%s:end -->", name)
}

// ReplaceBlock swaps the content between the markers for name with generated.
// Text outside the markers is kept. Without markers the block is appended.
func ReplaceBlock(body, name, generated string) string {
	startMarker, endMarker := Markers(name)
	block := startMarker + "\n" + strings.TrimRight(generated, "\n") + "\n" + endMarker

	if start := strings.Index(body, startMarker); start >= 0 {
		if rel := strings.Index(body[start:], endMarker); rel >= 0 {
			end := start + rel + len(endMarker)
			return body[:start] + block + body[end:]
		}
	}

	switch {
	case strings.TrimSpace(body) == "":
		return block + "\n"
	case strings.HasSuffix(body, "\n"):
		return body + "\n" + block + "\n"
	default:
		return body + "\n\n" + block + "\n"
	}
}

// Block returns the generated content for name, if present.
func Block(body, name string) (string, bool) {
	startMarker, endMarker := Markers(name)
	start := strings.Index(body, startMarker)
	if start < 0 {
		return "", false
	}
	inner := body[start+len(startMarker):]
	end := strings.Index(inner, endMarker)
	if end < 0 {
		return "", false
	}
	return strings.Trim(inner[:end], "\n"), true
}
