package in

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"hunttrack/internal/modules/attachment/dto"
	attachmentin "hunttrack/internal/modules/attachment/port/in"
)

type CLIHandler struct {
	usecase attachmentin.Usecase
}

func NewCLIHandler(usecase attachmentin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Save copies the file at source into the upload directory.
func (h CLIHandler) Save(ctx context.Context, kind, company, role, source string) (dto.AttachmentOutput, error) {
	f, err := os.Open(source)
	if err != nil {
		return dto.AttachmentOutput{}, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()
	return h.usecase.Save(ctx, dto.SaveInput{
		Kind:     kind,
		Company:  company,
		Role:     role,
		FileName: filepath.Base(source),
		Content:  f,
	})
}

func (h CLIHandler) Inspect(ctx context.Context, ref string) (dto.AttachmentOutput, error) {
	return h.usecase.Inspect(ctx, ref)
}

func (h CLIHandler) Delete(ctx context.Context, ref string) error {
	return h.usecase.Delete(ctx, ref)
}
