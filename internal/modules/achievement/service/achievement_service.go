package service

import (
	"context"
	"fmt"

	"hunttrack/internal/modules/achievement/domain"
	achievementout "hunttrack/internal/modules/achievement/port/out"
	"hunttrack/internal/platform/clock"
	"hunttrack/internal/platform/tx"
)

type AchievementService struct {
	clock      clock.Clock
	txm        tx.Manager
	milestones []domain.Milestone
	store      achievementout.UnlockStore
	progress   achievementout.ProgressSource
}

func NewAchievementService(clk clock.Clock, txm tx.Manager, milestones []domain.Milestone, store achievementout.UnlockStore, progress achievementout.ProgressSource) *AchievementService {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	return &AchievementService{clock: clk, txm: txm, milestones: milestones, store: store, progress: progress}
}

// Check unlocks every reached milestone not yet unlocked and returns the new
// ones. Unlocks are never revoked.
func (s *AchievementService) Check(ctx context.Context) ([]domain.Status, error) {
	fresh := []domain.Status{}
	err := s.txm.Within(ctx, func(ctx context.Context) error {
		progress, err := s.progress.Progress(ctx)
		if err != nil {
			return fmt.Errorf("read progress: %w", err)
		}
		unlocked, err := s.store.Unlocked(ctx)
		if err != nil {
			return err
		}
		now := s.clock.Now().UTC()
		ids := []string{}
		for _, m := range s.milestones {
			if _, ok := unlocked[m.ID]; ok || !m.Reached(progress) {
				continue
			}
			ids = append(ids, m.ID)
			fresh = append(fresh, domain.Status{Milestone: m, Unlocked: true, UnlockedAt: now, Fraction: 1})
		}
		if len(ids) == 0 {
			return nil
		}
		return s.store.Unlock(ctx, ids, now)
	})
	if err != nil {
		return nil, err
	}
	return fresh, nil
}

// List reports every milestone in catalogue order.
func (s *AchievementService) List(ctx context.Context) ([]domain.Status, error) {
	progress, err := s.progress.Progress(ctx)
	if err != nil {
		return nil, fmt.Errorf("read progress: %w", err)
	}
	unlocked, err := s.store.Unlocked(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Status, 0, len(s.milestones))
	for _, m := range s.milestones {
		status := domain.Status{Milestone: m, Fraction: m.Fraction(progress)}
		if at, ok := unlocked[m.ID]; ok {
			status.Unlocked = true
			status.UnlockedAt = at
			status.Fraction = 1
		}
		out = append(out, status)
	}
	return out, nil
}
