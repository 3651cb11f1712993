package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---\n"

// Document is a markdown file with an optional YAML header.
type Document struct {
	Meta map[string]any
	Body string
}

// Parse splits content into its YAML header and body. Content without a
// leading fence is all body. CRLF line endings are normalized.
func Parse(content string) (Document, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, fence) {
		return Document{Meta: map[string]any{}, Body: content}, nil
	}
	rest := content[len(fence):]
	var raw, body string
	switch {
	case strings.HasPrefix(rest, fence):
		body = rest[len(fence):]
	default:
		idx := strings.Index(rest, "\n"+fence)
		if idx < 0 {
			return Document{}, fmt.Errorf("frontmatter: missing closing fence")
		}
		raw = rest[:idx]
		body = rest[idx+1+len(fence):]
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return Document{}, fmt.Errorf("frontmatter: %w", err)
	}
	return Document{Meta: meta, Body: body}, nil
}

// Render writes the header (keys sorted) followed by a blank line and the body.
func (d Document) Render() (string, error) {
	meta := d.Meta
	if meta == nil {
		meta = map[string]any{}
	}
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("frontmatter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(fence)
	buf.Write(raw)
	buf.WriteString(fence)
	if !strings.HasPrefix(d.Body, "\n") {
		buf.WriteByte('\n')
	}
	buf.WriteString(d.Body)
	return buf.String(), nil
}
