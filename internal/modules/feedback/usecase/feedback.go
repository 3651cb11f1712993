package usecase

import (
	"context"

	"hunttrack/internal/modules/feedback/dto"
	feedbackin "hunttrack/internal/modules/feedback/port/in"
	"hunttrack/internal/modules/feedback/service"
)

type Interactor struct {
	svc *service.FeedbackService
}

func NewInteractor(svc *service.FeedbackService) feedbackin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Evaluate(_ context.Context, input dto.EvaluateInput) (dto.FeedbackOutput, error) {
	category := i.svc.Category(input.Metrics)
	return dto.FeedbackOutput{Category: category, Message: i.svc.Message(category)}, nil
}
