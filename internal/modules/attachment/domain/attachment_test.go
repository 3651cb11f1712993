package domain_test

import (
	"testing"
	"time"

	"hunttrack/internal/modules/attachment/domain"
	apperrors "hunttrack/internal/platform/errors"
)

func TestStoredRef(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 3, 4, 9, 5, 7, 0, time.UTC)
	got := domain.StoredRef(domain.KindCoverLetter, "Acme Corp.", "Senior Go Engineer", "pdf", at)
	want := "cover_letters/cover_letter_acme_corp_senior_go_engineer_20260304090507.pdf"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestCleanRefRejectsEscapes(t *testing.T) {
	t.Parallel()
	for _, ref := range []string{"", "../secret.pdf", "resumes/../../x", "/etc/passwd", `C:\x.pdf`, ".."} {
		if _, err := domain.CleanRef(ref); !apperrors.IsValidation(err) {
			t.Fatalf("%q: expected validation error, got %v", ref, err)
		}
	}
	got, err := domain.CleanRef(`resumes\a.pdf`)
	if err != nil || got != "resumes/a.pdf" {
		t.Fatalf("unexpected clean ref %q %v", got, err)
	}
}

func TestAllowedAndMIME(t *testing.T) {
	t.Parallel()
	allowed := []string{"pdf", ".DOCX"}
	if !domain.Allowed(domain.Extension("CV.PDF"), allowed) || !domain.Allowed("docx", allowed) {
		t.Fatalf("expected allowed extensions")
	}
	if domain.Allowed(domain.Extension("run.exe"), allowed) || domain.Allowed("", allowed) {
		t.Fatalf("unexpected allowed extension")
	}
	if domain.MIMEType("pdf") != "application/pdf" || domain.MIMEType("zzz") != "application/octet-stream" {
		t.Fatalf("unexpected mime mapping")
	}
	if _, err := domain.ParseKind("photo"); !apperrors.IsValidation(err) {
		t.Fatalf("expected unknown kind to be rejected")
	}
}
