package in

import (
	"context"
	"io"

	"hunttrack/internal/modules/attachment/dto"
)

type Usecase interface {
	Save(ctx context.Context, input dto.SaveInput) (dto.AttachmentOutput, error)
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
	Inspect(ctx context.Context, ref string) (dto.AttachmentOutput, error)
	Delete(ctx context.Context, ref string) error
}
