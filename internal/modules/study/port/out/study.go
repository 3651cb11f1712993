package out

import (
	"context"

	"hunttrack/internal/modules/study/domain"
)

type Repository interface {
	Create(ctx context.Context, log domain.StudyLog) error
	Update(ctx context.Context, log domain.StudyLog) error
	Get(ctx context.Context, id string) (domain.StudyLog, error)
	List(ctx context.Context, filter domain.Filter) ([]domain.StudyLog, error)
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) (int, error)
}

type ChangeListener interface {
	StudyLogsChanged(ctx context.Context)
}
