package in

import (
	"context"

	"hunttrack/internal/modules/metrics/dto"
)

type Usecase interface {
	// Dashboard recomputes every aggregate from a fresh read.
	Dashboard(ctx context.Context) (dto.DashboardOutput, error)
	// Publish recomputes the dashboard and hands it to the snapshot publisher.
	Publish(ctx context.Context) (dto.DashboardOutput, error)
}
