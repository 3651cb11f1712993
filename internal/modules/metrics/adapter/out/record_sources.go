package out

import (
	"context"
	"fmt"
	"time"

	applicationdto "hunttrack/internal/modules/application/dto"
	applicationin "hunttrack/internal/modules/application/port/in"
	"hunttrack/internal/modules/metrics/domain"
	metricsout "hunttrack/internal/modules/metrics/port/out"
	studydto "hunttrack/internal/modules/study/dto"
	studyin "hunttrack/internal/modules/study/port/in"
	"hunttrack/internal/platform/clock"
	apperrors "hunttrack/internal/platform/errors"
)

// ApplicationSourceAdapter reads every application through the application
// module's inbound port.
type ApplicationSourceAdapter struct {
	applications applicationin.Usecase
}

func NewApplicationSourceAdapter(applications applicationin.Usecase) metricsout.ApplicationSource {
	return &ApplicationSourceAdapter{applications: applications}
}

func (a *ApplicationSourceAdapter) Applications(ctx context.Context) ([]domain.ApplicationRecord, error) {
	list, err := a.applications.List(ctx, applicationdto.ListInput{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.ApplicationRecord, 0, len(list))
	for _, item := range list {
		applied, err := clock.ParseDate(item.AppliedDate)
		if err != nil {
			return nil, apperrors.Storage("read applications", fmt.Errorf("applied_date %q: %w", item.AppliedDate, err))
		}
		updated, err := time.Parse(time.RFC3339, item.LastUpdated)
		if err != nil {
			return nil, apperrors.Storage("read applications", fmt.Errorf("last_updated %q: %w", item.LastUpdated, err))
		}
		out = append(out, domain.ApplicationRecord{Status: item.Status, AppliedDate: applied, LastUpdated: updated})
	}
	return out, nil
}

type StudySourceAdapter struct {
	study studyin.Usecase
}

func NewStudySourceAdapter(study studyin.Usecase) metricsout.StudySource {
	return &StudySourceAdapter{study: study}
}

func (a *StudySourceAdapter) StudyLogs(ctx context.Context) ([]domain.StudyRecord, error) {
	list, err := a.study.List(ctx, studydto.ListInput{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.StudyRecord, 0, len(list))
	for _, item := range list {
		day, err := clock.ParseDate(item.Date)
		if err != nil {
			return nil, apperrors.Storage("read study logs", fmt.Errorf("date %q: %w", item.Date, err))
		}
		out = append(out, domain.StudyRecord{Date: day, Minutes: item.Minutes})
	}
	return out, nil
}
