package in

import (
	"context"
	"io"

	"hunttrack/internal/modules/report/dto"
	reportin "hunttrack/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ExportCSV(ctx context.Context, kind string, w io.Writer) (dto.ExportOutput, error) {
	return h.usecase.ExportCSV(ctx, kind, w)
}

func (h CLIHandler) WeeklyReport(ctx context.Context, date, path string) (dto.WeeklyOutput, error) {
	return h.usecase.WeeklyReport(ctx, dto.WeeklyInput{Date: date, Path: path})
}
