package usecase

import (
	"context"
	"io"
	"time"

	"hunttrack/internal/modules/attachment/domain"
	"hunttrack/internal/modules/attachment/dto"
	attachmentin "hunttrack/internal/modules/attachment/port/in"
	"hunttrack/internal/modules/attachment/service"
)

type Interactor struct {
	svc *service.AttachmentService
}

func NewInteractor(svc *service.AttachmentService) attachmentin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Save(ctx context.Context, input dto.SaveInput) (dto.AttachmentOutput, error) {
	kind, err := domain.ParseKind(input.Kind)
	if err != nil {
		return dto.AttachmentOutput{}, err
	}
	saved, err := i.svc.Save(ctx, kind, input.Company, input.Role, input.FileName, input.Content)
	if err != nil {
		return dto.AttachmentOutput{}, err
	}
	return toOutput(saved), nil
}

func (i *Interactor) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	return i.svc.Open(ctx, ref)
}

func (i *Interactor) Inspect(ctx context.Context, ref string) (dto.AttachmentOutput, error) {
	a, err := i.svc.Inspect(ctx, ref)
	if err != nil {
		return dto.AttachmentOutput{}, err
	}
	return toOutput(a), nil
}

func (i *Interactor) Delete(ctx context.Context, ref string) error {
	return i.svc.Delete(ctx, ref)
}

func toOutput(a domain.Attachment) dto.AttachmentOutput {
	return dto.AttachmentOutput{
		Ref:        a.Ref,
		Kind:       string(a.Kind),
		Size:       a.Size,
		Extension:  a.Extension,
		MIME:       a.MIME,
		Pages:      a.Pages,
		ModifiedAt: a.ModifiedAt.UTC().Format(time.RFC3339),
	}
}
