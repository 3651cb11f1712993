package usecase

import (
	"context"
	"io"
	"path/filepath"

	"hunttrack/internal/modules/report/domain"
	"hunttrack/internal/modules/report/dto"
	reportin "hunttrack/internal/modules/report/port/in"
	"hunttrack/internal/modules/report/service"
	"hunttrack/internal/platform/clock"
	apperrors "hunttrack/internal/platform/errors"
)

type Interactor struct {
	svc        *service.ReportService
	clock      clock.Clock
	reportsDir string
}

func NewInteractor(svc *service.ReportService, clk clock.Clock, reportsDir string) reportin.Usecase {
	return &Interactor{svc: svc, clock: clk, reportsDir: reportsDir}
}

func (i *Interactor) ExportCSV(ctx context.Context, kind string, w io.Writer) (dto.ExportOutput, error) {
	var (
		n   int
		err error
	)
	switch kind {
	case dto.ExportApplications:
		n, err = i.svc.ExportApplications(ctx, w)
	case dto.ExportStudy:
		n, err = i.svc.ExportStudy(ctx, w)
	default:
		return dto.ExportOutput{}, apperrors.Invalid("kind", "must be %q or %q", dto.ExportApplications, dto.ExportStudy)
	}
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Kind: kind, Rows: n}, nil
}

func (i *Interactor) WeeklyReport(ctx context.Context, input dto.WeeklyInput) (dto.WeeklyOutput, error) {
	day := clock.Today(i.clock)
	if input.Date != "" {
		parsed, err := clock.ParseDate(input.Date)
		if err != nil {
			return dto.WeeklyOutput{}, apperrors.Invalid("date", "%q is not a YYYY-MM-DD date", input.Date)
		}
		day = parsed
	}
	path := input.Path
	if path == "" {
		path = filepath.Join(i.reportsDir, domain.WeekOf(day).Label()+".md")
	}
	report, created, err := i.svc.Weekly(ctx, day, path)
	if err != nil {
		return dto.WeeklyOutput{}, err
	}
	return dto.WeeklyOutput{
		Path:         path,
		Week:         report.Week.Label(),
		Created:      created,
		Applications: len(report.Applications),
		StudyMinutes: report.StudyMinutes(),
	}, nil
}

