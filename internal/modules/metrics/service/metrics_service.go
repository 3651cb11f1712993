package service

import (
	"context"
	"time"

	"hunttrack/internal/modules/metrics/domain"
	metricsout "hunttrack/internal/modules/metrics/port/out"
	"hunttrack/internal/platform/clock"
)

type MetricsService struct {
	clock        clock.Clock
	params       domain.Params
	applications metricsout.ApplicationSource
	study        metricsout.StudySource
}

func NewMetricsService(clock clock.Clock, params domain.Params, applications metricsout.ApplicationSource, study metricsout.StudySource) *MetricsService {
	return &MetricsService{clock: clock, params: params, applications: applications, study: study}
}

// Snapshot reads both record sets and computes the aggregates as of now.
func (s *MetricsService) Snapshot(ctx context.Context) (domain.Snapshot, time.Time, error) {
	applications, err := s.applications.Applications(ctx)
	if err != nil {
		return domain.Snapshot{}, time.Time{}, err
	}
	logs, err := s.study.StudyLogs(ctx)
	if err != nil {
		return domain.Snapshot{}, time.Time{}, err
	}
	now := s.clock.Now()
	return domain.Compute(s.params, now, applications, logs), now, nil
}
