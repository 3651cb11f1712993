package bootstrap

import (
	"context"

	"go.uber.org/zap"

	achievementin "hunttrack/internal/modules/achievement/port/in"
	metricsin "hunttrack/internal/modules/metrics/port/in"
)

// changeHooks runs the follow-ups of a successful write. Its fields are set
// after every module is built, since achievements read study logs through
// metrics and study notifies back here. Failures are logged, never returned.
type changeHooks struct {
	achievements achievementin.Usecase
	metrics      metricsin.Usecase
	publish      bool
	logger       *zap.Logger
}

func (h *changeHooks) ApplicationsChanged(ctx context.Context) {
	h.publishSnapshot(ctx)
}

func (h *changeHooks) StudyLogsChanged(ctx context.Context) {
	if h.achievements != nil {
		fresh, err := h.achievements.Check(ctx)
		if err != nil {
			h.logger.Warn("achievement check failed", zap.Error(err))
		}
		for _, a := range fresh {
			h.logger.Info("achievement unlocked", zap.String("id", a.ID), zap.String("title", a.Title))
		}
	}
	h.publishSnapshot(ctx)
}

func (h *changeHooks) publishSnapshot(ctx context.Context) {
	if !h.publish || h.metrics == nil {
		return
	}
	if _, err := h.metrics.Publish(ctx); err != nil {
		h.logger.Warn("publish dashboard failed", zap.Error(err))
	}
}
