package in

import (
	"context"

	"hunttrack/internal/modules/application/dto"
	applicationin "hunttrack/internal/modules/application/port/in"
)

type CLIHandler struct {
	usecase applicationin.Usecase
}

func NewCLIHandler(usecase applicationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input dto.AddInput) (dto.ApplicationOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Update(ctx context.Context, input dto.UpdateInput) (dto.ApplicationOutput, error) {
	return h.usecase.Update(ctx, input)
}

// SetStatus is the one-field update used by the palette and the CLI.
func (h CLIHandler) SetStatus(ctx context.Context, id, status string) (dto.ApplicationOutput, error) {
	return h.usecase.Update(ctx, dto.UpdateInput{ID: id, Status: &status})
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.ApplicationOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) List(ctx context.Context, statuses []string, from, to string) ([]dto.ApplicationOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{Statuses: statuses, From: from, To: to})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Reset(ctx context.Context) (dto.ResetOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) Statuses() []string {
	return h.usecase.Statuses()
}
