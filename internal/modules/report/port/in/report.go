package in

import (
	"context"
	"io"

	"hunttrack/internal/modules/report/dto"
)

type Usecase interface {
	// ExportCSV writes every record of kind as CSV with a header row.
	ExportCSV(ctx context.Context, kind string, w io.Writer) (dto.ExportOutput, error)
	// WeeklyReport creates or refreshes a weekly markdown report.
	WeeklyReport(ctx context.Context, input dto.WeeklyInput) (dto.WeeklyOutput, error)
}
