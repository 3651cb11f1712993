package usecase

import (
	"context"
	"strings"
	"time"

	"hunttrack/internal/modules/study/domain"
	"hunttrack/internal/modules/study/dto"
	studyin "hunttrack/internal/modules/study/port/in"
	studyout "hunttrack/internal/modules/study/port/out"
	"hunttrack/internal/modules/study/service"
	"hunttrack/internal/platform/clock"
	apperrors "hunttrack/internal/platform/errors"
	"hunttrack/internal/platform/minutes"
)

type Interactor struct {
	svc      *service.StudyService
	listener studyout.ChangeListener
}

func NewInteractor(svc *service.StudyService, listener studyout.ChangeListener) studyin.Usecase {
	return &Interactor{svc: svc, listener: listener}
}

func (i *Interactor) Log(ctx context.Context, input dto.LogInput) (dto.StudyLogOutput, error) {
	draft := domain.StudyLog{Minutes: input.Minutes, TopicNotes: input.TopicNotes}
	if strings.TrimSpace(input.Duration) != "" {
		n, err := parseDuration(input.Duration)
		if err != nil {
			return dto.StudyLogOutput{}, err
		}
		draft.Minutes = n
	}
	if strings.TrimSpace(input.Date) != "" {
		day, err := parseDate("date", input.Date)
		if err != nil {
			return dto.StudyLogOutput{}, err
		}
		draft.Date = day
	}
	log, err := i.svc.Create(ctx, draft)
	if err != nil {
		return dto.StudyLogOutput{}, err
	}
	i.changed(ctx)
	return toOutput(log), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.StudyLogOutput, error) {
	patch := domain.Patch{Minutes: input.Minutes, TopicNotes: input.TopicNotes}
	if input.Duration != nil {
		n, err := parseDuration(*input.Duration)
		if err != nil {
			return dto.StudyLogOutput{}, err
		}
		patch.Minutes = &n
	}
	if input.Date != nil {
		day, err := parseDate("date", *input.Date)
		if err != nil {
			return dto.StudyLogOutput{}, err
		}
		patch.Date = &day
	}
	log, err := i.svc.Update(ctx, input.ID, patch)
	if err != nil {
		return dto.StudyLogOutput{}, err
	}
	if !patch.Empty() {
		i.changed(ctx)
	}
	return toOutput(log), nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.StudyLogOutput, error) {
	log, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.StudyLogOutput{}, err
	}
	return toOutput(log), nil
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.StudyLogOutput, error) {
	filter := domain.Filter{}
	if strings.TrimSpace(input.From) != "" {
		day, err := parseDate("from", input.From)
		if err != nil {
			return nil, err
		}
		filter.From = &day
	}
	if strings.TrimSpace(input.To) != "" {
		day, err := parseDate("to", input.To)
		if err != nil {
			return nil, err
		}
		filter.To = &day
	}
	logs, err := i.svc.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StudyLogOutput, 0, len(logs))
	for _, log := range logs {
		out = append(out, toOutput(log))
	}
	return out, nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	if err := i.svc.Delete(ctx, id); err != nil {
		return err
	}
	i.changed(ctx)
	return nil
}

func (i *Interactor) Reset(ctx context.Context) (dto.ResetOutput, error) {
	deleted, err := i.svc.Reset(ctx)
	if err != nil {
		return dto.ResetOutput{}, err
	}
	i.changed(ctx)
	return dto.ResetOutput{Deleted: deleted}, nil
}

func (i *Interactor) changed(ctx context.Context) {
	if i.listener != nil {
		i.listener.StudyLogsChanged(ctx)
	}
}

func toOutput(l domain.StudyLog) dto.StudyLogOutput {
	return dto.StudyLogOutput{
		ID:          l.ID,
		Date:        l.Date.Format(clock.DateLayout),
		Minutes:     l.Minutes,
		TopicNotes:  l.TopicNotes,
		LastUpdated: l.LastUpdated.UTC().Format(time.RFC3339),
	}
}

func parseDuration(value string) (int, error) {
	n, err := minutes.Parse(value)
	if err != nil {
		return 0, apperrors.Invalid("duration", "%v", err)
	}
	return n, nil
}

func parseDate(field, value string) (time.Time, error) {
	day, err := clock.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperrors.Invalid(field, "%q is not a YYYY-MM-DD date", value)
	}
	return day, nil
}
