package in

import (
	"context"

	"hunttrack/internal/modules/metrics/dto"
	metricsin "hunttrack/internal/modules/metrics/port/in"
)

type CLIHandler struct {
	usecase metricsin.Usecase
}

func NewCLIHandler(usecase metricsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Dashboard(ctx context.Context) (dto.DashboardOutput, error) {
	return h.usecase.Dashboard(ctx)
}

func (h CLIHandler) Publish(ctx context.Context) (dto.DashboardOutput, error) {
	return h.usecase.Publish(ctx)
}
