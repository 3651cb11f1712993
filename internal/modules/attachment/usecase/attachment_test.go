package usecase_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	attachmentout "hunttrack/internal/modules/attachment/adapter/out"
	"hunttrack/internal/modules/attachment/dto"
	attachmentin "hunttrack/internal/modules/attachment/port/in"
	"hunttrack/internal/modules/attachment/service"
	"hunttrack/internal/modules/attachment/usecase"
	apperrors "hunttrack/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

func newUsecase(t *testing.T) (attachmentin.Usecase, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "uploads")
	svc := service.NewAttachmentService(
		fixedClock{now: time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)},
		attachmentout.NewLocalFileStore(root),
		attachmentout.NewPDFPageCounter(),
		[]string{"pdf", "docx", "doc", "txt"},
		nil,
	)
	return usecase.NewInteractor(svc), root
}

// onePagePDF builds a minimal document with a valid xref table.
func onePagePDF() []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
	}
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestSaveNamesAndInspectsResume(t *testing.T) {
	t.Parallel()
	uc, root := newUsecase(t)
	ctx := context.Background()

	saved, err := uc.Save(ctx, dto.SaveInput{
		Kind:     "resume",
		Company:  "Acme Corp",
		Role:     "Go Developer",
		FileName: "My CV.PDF",
		Content:  bytes.NewReader(onePagePDF()),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Ref != "resumes/resume_acme_corp_go_developer_20260304090000.pdf" {
		t.Fatalf("unexpected ref %q", saved.Ref)
	}
	if saved.MIME != "application/pdf" || saved.Pages != 1 || saved.Size == 0 || saved.Kind != "resume" {
		t.Fatalf("unexpected inspection: %+v", saved)
	}
	if _, err := os.Stat(filepath.Join(root, "resumes", filepath.Base(saved.Ref))); err != nil {
		t.Fatalf("file not on disk: %v", err)
	}

	rc, err := uc.Open(ctx, saved.Ref)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Fatalf("unexpected content")
	}
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	t.Parallel()
	uc, root := newUsecase(t)
	_, err := uc.Save(context.Background(), dto.SaveInput{
		Kind: "cover_letter", Company: "Acme", Role: "SRE", FileName: "run.exe", Content: strings.NewReader("x"),
	})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Fatalf("nothing should be written for a rejected upload")
	}
}

func TestInspectBrokenPDFAndDelete(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)
	ctx := context.Background()
	saved, err := uc.Save(ctx, dto.SaveInput{
		Kind: "cover_letter", Company: "Globex", Role: "SRE", FileName: "letter.pdf", Content: strings.NewReader("not a pdf"),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Pages != 0 || saved.Kind != "cover_letter" {
		t.Fatalf("broken pdf should inspect with zero pages: %+v", saved)
	}
	if err := uc.Delete(ctx, saved.Ref); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Inspect(ctx, saved.Ref); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := uc.Delete(ctx, saved.Ref); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestPathEscapeIsRejected(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)
	ctx := context.Background()
	if _, err := uc.Inspect(ctx, "../hunttrack.db"); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := uc.Delete(ctx, "resumes/../../x"); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
