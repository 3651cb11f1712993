package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"hunttrack/internal/modules/attachment/domain"
	attachmentout "hunttrack/internal/modules/attachment/port/out"
	"hunttrack/internal/platform/clock"
	apperrors "hunttrack/internal/platform/errors"
)

type AttachmentService struct {
	clock   clock.Clock
	files   attachmentout.FileStore
	pages   attachmentout.PageCounter
	allowed []string
	logger  *zap.Logger
}

func NewAttachmentService(clk clock.Clock, files attachmentout.FileStore, pages attachmentout.PageCounter, allowed []string, logger *zap.Logger) *AttachmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttachmentService{clock: clk, files: files, pages: pages, allowed: allowed, logger: logger.Named("attachments")}
}

func (s *AttachmentService) Save(ctx context.Context, kind domain.Kind, company, role, fileName string, content io.Reader) (domain.Attachment, error) {
	if strings.TrimSpace(company) == "" {
		return domain.Attachment{}, apperrors.Invalid("company", "is required")
	}
	if strings.TrimSpace(role) == "" {
		return domain.Attachment{}, apperrors.Invalid("role", "is required")
	}
	if content == nil {
		return domain.Attachment{}, apperrors.Invalid("content", "is required")
	}
	ext := domain.Extension(fileName)
	if !domain.Allowed(ext, s.allowed) {
		return domain.Attachment{}, apperrors.Invalid("file", "extension %q is not allowed", ext)
	}
	ref := domain.StoredRef(kind, company, role, ext, s.clock.Now())
	if _, err := s.files.Write(ctx, ref, content); err != nil {
		return domain.Attachment{}, err
	}
	s.logger.Info("attachment saved", zap.String("ref", ref), zap.String("kind", string(kind)))
	return s.Inspect(ctx, ref)
}

func (s *AttachmentService) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	cleaned, err := domain.CleanRef(ref)
	if err != nil {
		return nil, err
	}
	return s.files.Open(ctx, cleaned)
}

// Inspect reports size, type and, for PDFs, the page count. An unreadable PDF
// is reported with zero pages.
func (s *AttachmentService) Inspect(ctx context.Context, ref string) (domain.Attachment, error) {
	cleaned, err := domain.CleanRef(ref)
	if err != nil {
		return domain.Attachment{}, err
	}
	size, modified, err := s.files.Stat(ctx, cleaned)
	if err != nil {
		return domain.Attachment{}, err
	}
	ext := domain.Extension(cleaned)
	out := domain.Attachment{
		Ref:        cleaned,
		Kind:       kindOf(cleaned),
		Size:       size,
		Extension:  ext,
		MIME:       domain.MIMEType(ext),
		ModifiedAt: modified,
	}
	if ext == "pdf" && s.pages != nil {
		pages, err := s.pages.CountPages(ctx, s.files.Path(cleaned))
		if err != nil {
			s.logger.Warn("count pdf pages", zap.String("ref", cleaned), zap.Error(err))
		} else {
			out.Pages = pages
		}
	}
	return out, nil
}

func (s *AttachmentService) Delete(ctx context.Context, ref string) error {
	cleaned, err := domain.CleanRef(ref)
	if err != nil {
		return err
	}
	if err := s.files.Remove(ctx, cleaned); err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}
	s.logger.Info("attachment deleted", zap.String("ref", cleaned))
	return nil
}

func kindOf(ref string) domain.Kind {
	switch {
	case strings.HasPrefix(ref, domain.KindResume.Dir()+"/"):
		return domain.KindResume
	case strings.HasPrefix(ref, domain.KindCoverLetter.Dir()+"/"):
		return domain.KindCoverLetter
	default:
		return ""
	}
}
