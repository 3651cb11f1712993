package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"hunttrack/internal/modules/report/domain"
	reportout "hunttrack/internal/modules/report/port/out"
	"hunttrack/internal/platform/clock"
	"hunttrack/internal/platform/markdown"
)

const metricsBlock = "metrics"

type ReportService struct {
	clock      clock.Clock
	apps       reportout.ApplicationSource
	study      reportout.StudySource
	highlights reportout.HighlightSource
	docs       reportout.DocumentStore
	logger     *zap.Logger
}

func NewReportService(clk clock.Clock, apps reportout.ApplicationSource, study reportout.StudySource, highlights reportout.HighlightSource, docs reportout.DocumentStore, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{clock: clk, apps: apps, study: study, highlights: highlights, docs: docs, logger: logger.Named("reports")}
}

func (s *ReportService) ExportApplications(ctx context.Context, w io.Writer) (int, error) {
	rows, err := s.apps.Applications(ctx, "", "")
	if err != nil {
		return 0, err
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Fields())
	}
	return len(rows), writeCSV(w, domain.ApplicationHeader, records)
}

func (s *ReportService) ExportStudy(ctx context.Context, w io.Writer) (int, error) {
	rows, err := s.study.StudyLogs(ctx, "", "")
	if err != nil {
		return 0, err
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Fields())
	}
	return len(rows), writeCSV(w, domain.StudyHeader, records)
}

func writeCSV(w io.Writer, header []string, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Weekly builds the report for the week containing day and merges it into
// the document at path. User text and extra frontmatter keys survive.
func (s *ReportService) Weekly(ctx context.Context, day time.Time, path string) (domain.WeeklyReport, bool, error) {
	week := domain.WeekOf(day)
	from, to := week.Start.Format(clock.DateLayout), week.End.Format(clock.DateLayout)
	apps, err := s.apps.Applications(ctx, from, to)
	if err != nil {
		return domain.WeeklyReport{}, false, err
	}
	logs, err := s.study.StudyLogs(ctx, from, to)
	if err != nil {
		return domain.WeeklyReport{}, false, err
	}
	highlights, err := s.highlights.Highlights(ctx)
	if err != nil {
		return domain.WeeklyReport{}, false, err
	}
	report := domain.WeeklyReport{Week: week, Applications: apps, Study: logs, Highlights: highlights}

	existing, found, err := s.docs.Read(ctx, path)
	if err != nil {
		return domain.WeeklyReport{}, false, err
	}
	doc := markdown.Document{Meta: map[string]any{}, Body: report.Heading()}
	if found {
		doc, err = markdown.Parse(existing)
		if err != nil {
			return domain.WeeklyReport{}, false, fmt.Errorf("parse report %s: %w", path, err)
		}
	}
	for k, v := range report.Meta(s.clock.Now()) {
		doc.Meta[k] = v
	}
	doc.Body = markdown.ReplaceBlock(doc.Body, metricsBlock, report.Markdown())
	rendered, err := doc.Render()
	if err != nil {
		return domain.WeeklyReport{}, false, err
	}
	if err := s.docs.Write(ctx, path, rendered); err != nil {
		return domain.WeeklyReport{}, false, err
	}
	s.logger.Info("weekly report written", zap.String("path", path), zap.String("week", week.Label()), zap.Bool("created", !found))
	return report, !found, nil
}
