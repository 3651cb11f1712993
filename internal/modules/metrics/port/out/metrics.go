package out

import (
	"context"

	"hunttrack/internal/modules/metrics/domain"
	"hunttrack/internal/modules/metrics/dto"
)

type ApplicationSource interface {
	Applications(ctx context.Context) ([]domain.ApplicationRecord, error)
}

type StudySource interface {
	StudyLogs(ctx context.Context) ([]domain.StudyRecord, error)
}

// SnapshotPublisher pushes a computed dashboard to outside consumers. It is
// write-only; dashboards are never read back from it.
type SnapshotPublisher interface {
	Publish(ctx context.Context, dashboard dto.DashboardOutput) error
}
