package in

import (
	"context"

	"hunttrack/internal/modules/application/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.ApplicationOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.ApplicationOutput, error)
	Get(ctx context.Context, id string) (dto.ApplicationOutput, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.ApplicationOutput, error)
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) (dto.ResetOutput, error)
	Statuses() []string
}
