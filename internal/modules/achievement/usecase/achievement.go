package usecase

import (
	"context"
	"time"

	"hunttrack/internal/modules/achievement/domain"
	"hunttrack/internal/modules/achievement/dto"
	achievementin "hunttrack/internal/modules/achievement/port/in"
	"hunttrack/internal/modules/achievement/service"
)

type Interactor struct {
	svc *service.AchievementService
}

func NewInteractor(svc *service.AchievementService) achievementin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Check(ctx context.Context) ([]dto.AchievementOutput, error) {
	statuses, err := i.svc.Check(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(statuses), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.AchievementOutput, error) {
	statuses, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(statuses), nil
}

func toOutputs(statuses []domain.Status) []dto.AchievementOutput {
	out := make([]dto.AchievementOutput, 0, len(statuses))
	for _, s := range statuses {
		item := dto.AchievementOutput{
			ID:          s.Milestone.ID,
			Kind:        string(s.Milestone.Kind),
			Title:       s.Milestone.Title,
			Description: s.Milestone.Description,
			Threshold:   s.Milestone.Threshold,
			Unlocked:    s.Unlocked,
			Progress:    s.Fraction,
		}
		if s.Unlocked && !s.UnlockedAt.IsZero() {
			item.UnlockedAt = s.UnlockedAt.UTC().Format(time.RFC3339)
		}
		out = append(out, item)
	}
	return out
}
