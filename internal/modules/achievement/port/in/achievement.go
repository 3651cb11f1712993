package in

import (
	"context"

	"hunttrack/internal/modules/achievement/dto"
)

type Usecase interface {
	// Check persists newly reached milestones and returns only those.
	Check(ctx context.Context) ([]dto.AchievementOutput, error)
	List(ctx context.Context) ([]dto.AchievementOutput, error)
}
