package in

import (
	"context"

	"hunttrack/internal/modules/feedback/dto"
)

type Usecase interface {
	Evaluate(ctx context.Context, input dto.EvaluateInput) (dto.FeedbackOutput, error)
}
