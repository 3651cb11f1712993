package out

import (
	"context"

	"hunttrack/internal/modules/achievement/domain"
	achievementout "hunttrack/internal/modules/achievement/port/out"
	metricsin "hunttrack/internal/modules/metrics/port/in"
)

type MetricsProgressAdapter struct {
	metrics metricsin.Usecase
}

func NewMetricsProgressAdapter(metrics metricsin.Usecase) achievementout.ProgressSource {
	return &MetricsProgressAdapter{metrics: metrics}
}

func (a *MetricsProgressAdapter) Progress(ctx context.Context) (domain.Progress, error) {
	dashboard, err := a.metrics.Dashboard(ctx)
	if err != nil {
		return domain.Progress{}, err
	}
	return domain.Progress{
		TotalMinutes:  dashboard.Study.TotalMinutes,
		LongestStreak: dashboard.Study.LongestStreak,
	}, nil
}
