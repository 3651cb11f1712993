package out

import (
	"context"

	applicationdto "hunttrack/internal/modules/application/dto"
	applicationin "hunttrack/internal/modules/application/port/in"
	metricsin "hunttrack/internal/modules/metrics/port/in"
	"hunttrack/internal/modules/report/domain"
	reportout "hunttrack/internal/modules/report/port/out"
	studydto "hunttrack/internal/modules/study/dto"
	studyin "hunttrack/internal/modules/study/port/in"
)

type ApplicationSourceAdapter struct {
	applications applicationin.Usecase
}

func NewApplicationSourceAdapter(applications applicationin.Usecase) reportout.ApplicationSource {
	return &ApplicationSourceAdapter{applications: applications}
}

func (a *ApplicationSourceAdapter) Applications(ctx context.Context, from, to string) ([]domain.ApplicationRow, error) {
	list, err := a.applications.List(ctx, applicationdto.ListInput{From: from, To: to})
	if err != nil {
		return nil, err
	}
	out := make([]domain.ApplicationRow, 0, len(list))
	for _, item := range list {
		out = append(out, domain.ApplicationRow{
			ID:             item.ID,
			Company:        item.Company,
			Role:           item.Role,
			Status:         item.Status,
			AppliedDate:    item.AppliedDate,
			ResumeRef:      item.ResumeRef,
			CoverLetterRef: item.CoverLetterRef,
			Notes:          item.Notes,
			LastUpdated:    item.LastUpdated,
		})
	}
	return out, nil
}

type StudySourceAdapter struct {
	study studyin.Usecase
}

func NewStudySourceAdapter(study studyin.Usecase) reportout.StudySource {
	return &StudySourceAdapter{study: study}
}

func (a *StudySourceAdapter) StudyLogs(ctx context.Context, from, to string) ([]domain.StudyRow, error) {
	list, err := a.study.List(ctx, studydto.ListInput{From: from, To: to})
	if err != nil {
		return nil, err
	}
	out := make([]domain.StudyRow, 0, len(list))
	for _, item := range list {
		out = append(out, domain.StudyRow{
			ID:          item.ID,
			Date:        item.Date,
			Minutes:     item.Minutes,
			TopicNotes:  item.TopicNotes,
			LastUpdated: item.LastUpdated,
		})
	}
	return out, nil
}

type HighlightSourceAdapter struct {
	metrics metricsin.Usecase
}

func NewHighlightSourceAdapter(metrics metricsin.Usecase) reportout.HighlightSource {
	return &HighlightSourceAdapter{metrics: metrics}
}

func (a *HighlightSourceAdapter) Highlights(ctx context.Context) (domain.Highlights, error) {
	d, err := a.metrics.Dashboard(ctx)
	if err != nil {
		return domain.Highlights{}, err
	}
	return domain.Highlights{
		WeeklyGoal:    d.Applications.WeeklyGoal,
		DailyTarget:   d.Study.DailyTarget,
		CurrentStreak: d.Study.CurrentStreak,
		LongestStreak: d.Study.LongestStreak,
		Feedback:      d.Feedback.Message,
	}, nil
}
