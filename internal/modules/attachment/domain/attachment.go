package domain

import (
	"fmt"
	"path"
	"strings"
	"time"

	apperrors "hunttrack/internal/platform/errors"
	"hunttrack/internal/platform/slug"
)

type Kind string

const (
	KindResume      Kind = "resume"
	KindCoverLetter Kind = "cover_letter"
)

const timestampLayout = "20060102150405"

func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "resume":
		return KindResume, nil
	case "cover_letter", "cover-letter", "coverletter":
		return KindCoverLetter, nil
	default:
		return "", apperrors.Invalid("kind", "unknown attachment kind %q", value)
	}
}

// Dir is the directory under the upload root that holds this kind.
func (k Kind) Dir() string { return string(k) + "s" }

// Attachment describes a stored file. Ref is slash separated and relative to
// the upload root.
type Attachment struct {
	Ref        string
	Kind       Kind
	Size       int64
	Extension  string
	MIME       string
	Pages      int
	ModifiedAt time.Time
}

// Extension returns the lower-case extension of name without the dot.
func Extension(name string) string {
	ext := path.Ext(strings.ReplaceAll(name, "\\", "/"))
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Allowed reports whether ext is in the allow list. Comparison is
// case-insensitive and ignores a leading dot.
func Allowed(ext string, allowed []string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if strings.ToLower(strings.TrimPrefix(strings.TrimSpace(a), ".")) == ext {
			return true
		}
	}
	return false
}

// StoredRef builds the reference a new upload is saved under.
func StoredRef(kind Kind, company, role, ext string, at time.Time) string {
	name := fmt.Sprintf("%s_%s_%s_%s.%s", kind, slug.Underscored(company), slug.Underscored(role), at.UTC().Format(timestampLayout), ext)
	return path.Join(kind.Dir(), name)
}

// CleanRef normalizes ref and rejects anything that would leave the upload
// root.
func CleanRef(ref string) (string, error) {
	raw := strings.TrimSpace(strings.ReplaceAll(ref, "\\", "/"))
	if raw == "" {
		return "", apperrors.Invalid("ref", "is required")
	}
	if strings.HasPrefix(raw, "/") || (len(raw) > 1 && raw[1] == ':') {
		return "", apperrors.Invalid("ref", "must be relative to the upload directory")
	}
	cleaned := path.Clean(raw)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", apperrors.Invalid("ref", "escapes the upload directory")
	}
	return cleaned, nil
}

var mimeTypes = map[string]string{
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"txt":  "text/plain; charset=utf-8",
	"md":   "text/markdown; charset=utf-8",
	"rtf":  "application/rtf",
	"odt":  "application/vnd.oasis.opendocument.text",
}

func MIMEType(ext string) string {
	if t, ok := mimeTypes[strings.ToLower(ext)]; ok {
		return t
	}
	return "application/octet-stream"
}
