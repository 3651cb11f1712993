package in

import (
	"context"

	"hunttrack/internal/modules/study/dto"
)

type Usecase interface {
	Log(ctx context.Context, input dto.LogInput) (dto.StudyLogOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.StudyLogOutput, error)
	Get(ctx context.Context, id string) (dto.StudyLogOutput, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.StudyLogOutput, error)
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) (dto.ResetOutput, error)
}
