package usecase

import (
	"context"
	"fmt"
	"time"

	feedbackdto "hunttrack/internal/modules/feedback/dto"
	feedbackin "hunttrack/internal/modules/feedback/port/in"
	"hunttrack/internal/modules/metrics/domain"
	"hunttrack/internal/modules/metrics/dto"
	metricsin "hunttrack/internal/modules/metrics/port/in"
	metricsout "hunttrack/internal/modules/metrics/port/out"
	"hunttrack/internal/modules/metrics/service"
	"hunttrack/internal/platform/clock"
)

type Interactor struct {
	svc       *service.MetricsService
	feedback  feedbackin.Usecase
	publisher metricsout.SnapshotPublisher
}

func NewInteractor(svc *service.MetricsService, feedback feedbackin.Usecase, publisher metricsout.SnapshotPublisher) metricsin.Usecase {
	return &Interactor{svc: svc, feedback: feedback, publisher: publisher}
}

func (i *Interactor) Dashboard(ctx context.Context) (dto.DashboardOutput, error) {
	snapshot, now, err := i.svc.Snapshot(ctx)
	if err != nil {
		return dto.DashboardOutput{}, err
	}
	out := toOutput(snapshot, now)
	if i.feedback != nil {
		fb, err := i.feedback.Evaluate(ctx, feedbackdto.EvaluateInput{Metrics: out.Metrics})
		if err != nil {
			return dto.DashboardOutput{}, fmt.Errorf("evaluate feedback: %w", err)
		}
		out.Feedback = dto.FeedbackOutput{Category: fb.Category, Message: fb.Message}
	}
	return out, nil
}

func (i *Interactor) Publish(ctx context.Context) (dto.DashboardOutput, error) {
	out, err := i.Dashboard(ctx)
	if err != nil {
		return dto.DashboardOutput{}, err
	}
	if i.publisher == nil {
		return out, nil
	}
	if err := i.publisher.Publish(ctx, out); err != nil {
		return out, fmt.Errorf("publish dashboard: %w", err)
	}
	return out, nil
}

func toOutput(s domain.Snapshot, now time.Time) dto.DashboardOutput {
	out := dto.DashboardOutput{
		GeneratedAt:  now.UTC().Format(time.RFC3339),
		Today:        s.Today.Format(clock.DateLayout),
		Distribution: make([]dto.StatusCountOutput, 0, len(s.Distribution)),
		WeeklyTrend:  make([]dto.WeekCountOutput, 0, len(s.WeeklyTrend)),
		DailyTotals:  days(s.DailyTotals),
		RecentStudy:  days(s.Recent),
		Applications: dto.ApplicationStatsOutput{
			Total:             s.Applications.Total,
			Active:            s.Applications.Active,
			Interviews:        s.Applications.Interviews,
			InterviewRate:     s.Applications.InterviewRate,
			AvgResponseDays:   s.Applications.AvgResponseDays,
			RatePerWeek:       s.Applications.RatePerWeek,
			ThisWeek:          s.Applications.ThisWeek,
			WeeklyGoal:        s.Applications.WeeklyGoal,
			GoalProgress:      s.Applications.GoalProgress,
			RemainingThisWeek: s.Applications.RemainingThisWeek,
		},
		Study: dto.StudyStatsOutput{
			TotalMinutes:     s.Study.TotalMinutes,
			StudyDays:        s.Study.StudyDays,
			AvgMinutesPerDay: s.Study.AvgMinutesPerDay,
			TodayMinutes:     s.Study.TodayMinutes,
			WeekMinutes:      s.Study.WeekMinutes,
			DailyTarget:      s.Study.DailyTarget,
			DayProgress:      s.Study.DayProgress,
			WeekProgress:     s.Study.WeekProgress,
			TargetProgress:   s.Study.TargetProgress,
			CurrentStreak:    s.Study.CurrentStreak,
			LongestStreak:    s.Study.LongestStreak,
			ConsistencyPct:   s.Study.ConsistencyPct,
		},
		Metrics: s.Named(),
	}
	for _, c := range s.Distribution {
		out.Distribution = append(out.Distribution, dto.StatusCountOutput{Status: c.Status, Count: c.Count})
	}
	for _, w := range s.WeeklyTrend {
		out.WeeklyTrend = append(out.WeeklyTrend, dto.WeekCountOutput{Week: w.Label, WeekStart: w.WeekStart.Format(clock.DateLayout), Count: w.Count})
	}
	return out
}

func days(totals []domain.DayTotal) []dto.DayTotalOutput {
	out := make([]dto.DayTotalOutput, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.DayTotalOutput{Date: t.Date.Format(clock.DateLayout), Minutes: t.Minutes})
	}
	return out
}
