package in

import (
	"context"

	"hunttrack/internal/modules/study/dto"
	studyin "hunttrack/internal/modules/study/port/in"
)

type CLIHandler struct {
	usecase studyin.Usecase
}

func NewCLIHandler(usecase studyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Log records duration (e.g. "1h 30m") on date; an empty date is today.
func (h CLIHandler) Log(ctx context.Context, date, duration, notes string) (dto.StudyLogOutput, error) {
	return h.usecase.Log(ctx, dto.LogInput{Date: date, Duration: duration, TopicNotes: notes})
}

func (h CLIHandler) Update(ctx context.Context, input dto.UpdateInput) (dto.StudyLogOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.StudyLogOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) List(ctx context.Context, from, to string) ([]dto.StudyLogOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{From: from, To: to})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Reset(ctx context.Context) (dto.ResetOutput, error) {
	return h.usecase.Reset(ctx)
}
