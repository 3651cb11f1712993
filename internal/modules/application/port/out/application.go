package out

import (
	"context"

	"hunttrack/internal/modules/application/domain"
)

// Repository persists applications. Update, Get and Delete report
// apperrors.ErrNotFound for unknown ids; driver failures carry
// apperrors.ErrStorage.
type Repository interface {
	Create(ctx context.Context, application domain.Application) error
	Update(ctx context.Context, application domain.Application) error
	Get(ctx context.Context, id string) (domain.Application, error)
	List(ctx context.Context, filter domain.Filter) ([]domain.Application, error)
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) (int, error)
}

// ChangeListener hears about every completed write.
type ChangeListener interface {
	ApplicationsChanged(ctx context.Context)
}
