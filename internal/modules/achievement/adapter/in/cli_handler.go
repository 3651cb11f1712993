package in

import (
	"context"

	"hunttrack/internal/modules/achievement/dto"
	achievementin "hunttrack/internal/modules/achievement/port/in"
)

type CLIHandler struct {
	usecase achievementin.Usecase
}

func NewCLIHandler(usecase achievementin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Check(ctx context.Context) ([]dto.AchievementOutput, error) {
	return h.usecase.Check(ctx)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.AchievementOutput, error) {
	return h.usecase.List(ctx)
}
