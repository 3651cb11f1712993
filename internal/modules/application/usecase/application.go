package usecase

import (
	"context"
	"strings"
	"time"

	"hunttrack/internal/modules/application/domain"
	"hunttrack/internal/modules/application/dto"
	applicationin "hunttrack/internal/modules/application/port/in"
	applicationout "hunttrack/internal/modules/application/port/out"
	"hunttrack/internal/modules/application/service"
	"hunttrack/internal/platform/clock"
	apperrors "hunttrack/internal/platform/errors"
)

type Interactor struct {
	svc      *service.ApplicationService
	listener applicationout.ChangeListener
}

func NewInteractor(svc *service.ApplicationService, listener applicationout.ChangeListener) applicationin.Usecase {
	return &Interactor{svc: svc, listener: listener}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.ApplicationOutput, error) {
	applied, err := parseOptionalDate("applied_date", input.AppliedDate)
	if err != nil {
		return dto.ApplicationOutput{}, err
	}
	draft := domain.Application{
		Company:        input.Company,
		Role:           input.Role,
		Status:         input.Status,
		ResumeRef:      input.ResumeRef,
		CoverLetterRef: input.CoverLetterRef,
		Notes:          input.Notes,
	}
	if applied != nil {
		draft.AppliedDate = *applied
	}
	application, err := i.svc.Create(ctx, draft)
	if err != nil {
		return dto.ApplicationOutput{}, err
	}
	i.changed(ctx)
	return toOutput(application), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.ApplicationOutput, error) {
	patch := domain.Patch{
		Company:        input.Company,
		Role:           input.Role,
		Status:         input.Status,
		ResumeRef:      input.ResumeRef,
		CoverLetterRef: input.CoverLetterRef,
		Notes:          input.Notes,
	}
	if input.AppliedDate != nil {
		applied, err := parseDate("applied_date", *input.AppliedDate)
		if err != nil {
			return dto.ApplicationOutput{}, err
		}
		patch.AppliedDate = &applied
	}
	application, err := i.svc.Update(ctx, input.ID, patch)
	if err != nil {
		return dto.ApplicationOutput{}, err
	}
	if !patch.Empty() {
		i.changed(ctx)
	}
	return toOutput(application), nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.ApplicationOutput, error) {
	application, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.ApplicationOutput{}, err
	}
	return toOutput(application), nil
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.ApplicationOutput, error) {
	filter := domain.Filter{Statuses: input.Statuses}
	var err error
	if filter.From, err = parseOptionalDate("from", input.From); err != nil {
		return nil, err
	}
	if filter.To, err = parseOptionalDate("to", input.To); err != nil {
		return nil, err
	}
	applications, err := i.svc.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApplicationOutput, 0, len(applications))
	for _, application := range applications {
		out = append(out, toOutput(application))
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

func (i *Interactor) Statuses() []string {
	return i.svc.Statuses().Values()
}

func (i *Interactor) changed(ctx context.Context) {
	if i.listener != nil {
		i.listener.ApplicationsChanged(ctx)
	}
}

func toOutput(a domain.Application) dto.ApplicationOutput {
	return dto.ApplicationOutput{
		ID:             a.ID,
		Company:        a.Company,
		Role:           a.Role,
		Status:         a.Status,
		AppliedDate:    a.AppliedDate.Format(clock.DateLayout),
		ResumeRef:      a.ResumeRef,
		CoverLetterRef: a.CoverLetterRef,
		Notes:          a.Notes,
		LastUpdated:    a.LastUpdated.UTC().Format(time.RFC3339),
	}
}

func parseDate(field, value string) (time.Time, error) {
	day, err := clock.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperrors.Invalid(field, "%q is not a YYYY-MM-DD date", value)
	}
	return day, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	day, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
