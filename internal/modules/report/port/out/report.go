package out

import (
	"context"

	"hunttrack/internal/modules/report/domain"
)

// ApplicationSource and StudySource list records in an inclusive date range;
// empty bounds are open.
type ApplicationSource interface {
	Applications(ctx context.Context, from, to string) ([]domain.ApplicationRow, error)
}

type StudySource interface {
	StudyLogs(ctx context.Context, from, to string) ([]domain.StudyRow, error)
}

type HighlightSource interface {
	Highlights(ctx context.Context) (domain.Highlights, error)
}

type DocumentStore interface {
	Read(ctx context.Context, path string) (content string, found bool, err error)
	Write(ctx context.Context, path, content string) error
}
