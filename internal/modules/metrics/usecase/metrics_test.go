package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	feedbackservice "hunttrack/internal/modules/feedback/service"
	feedbackusecase "hunttrack/internal/modules/feedback/usecase"
	"hunttrack/internal/modules/metrics/domain"
	"hunttrack/internal/modules/metrics/dto"
	metricsin "hunttrack/internal/modules/metrics/port/in"
	metricsout "hunttrack/internal/modules/metrics/port/out"
	"hunttrack/internal/modules/metrics/service"
	"hunttrack/internal/modules/metrics/usecase"
	"hunttrack/internal/platform/config"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

type fakeApplications struct {
	records []domain.ApplicationRecord
	err     error
	reads   int
}

func (f *fakeApplications) Applications(context.Context) ([]domain.ApplicationRecord, error) {
	f.reads++
	return f.records, f.err
}

type fakeStudy struct {
	records []domain.StudyRecord
	reads   int
}

func (f *fakeStudy) StudyLogs(context.Context) ([]domain.StudyRecord, error) {
	f.reads++
	return f.records, nil
}

type capturePublisher struct {
	got []dto.DashboardOutput
	err error
}

func (c *capturePublisher) Publish(_ context.Context, d dto.DashboardOutput) error {
	c.got = append(c.got, d)
	return c.err
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func newUsecase(t *testing.T, apps *fakeApplications, study *fakeStudy, pub *capturePublisher) metricsin.Usecase {
	t.Helper()
	cfg := config.Default(t.TempDir())
	rules, err := feedbackservice.RulesFromConfig(cfg.Feedback)
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	feedback := feedbackusecase.NewInteractor(feedbackservice.NewFeedbackService(rules, cfg.Feedback.Messages, nil))
	params := domain.Params{
		Statuses:          cfg.StatusOptions,
		InterviewStatuses: cfg.InterviewStatuses,
		ClosedStatuses:    cfg.ClosedStatuses,
		DailyTarget:       cfg.DailyStudyTargetMinutes,
		WeeklyGoal:        cfg.WeeklyApplicationGoal,
		StreakMinimum:     cfg.StreakMinimumMinutes,
		StreakGraceDays:   cfg.StreakGraceDays,
	}
	svc := service.NewMetricsService(fixedClock{now: time.Date(2026, 3, 4, 21, 0, 0, 0, time.UTC)}, params, apps, study)
	var publisher metricsout.SnapshotPublisher
	if pub != nil {
		publisher = pub
	}
	return usecase.NewInteractor(svc, feedback, publisher)
}

func TestDashboardRecomputesOnEveryRead(t *testing.T) {
	t.Parallel()
	apps := &fakeApplications{}
	study := &fakeStudy{}
	uc := newUsecase(t, apps, study, nil)
	ctx := context.Background()

	empty, err := uc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if empty.Applications.Total != 0 || empty.Feedback.Category != "no_data" {
		t.Fatalf("unexpected empty dashboard: %+v", empty)
	}
	if len(empty.Distribution) != 6 {
		t.Fatalf("expected every configured status, got %d", len(empty.Distribution))
	}

	apps.records = []domain.ApplicationRecord{{Status: "Applied", AppliedDate: day("2026-03-03"), LastUpdated: day("2026-03-03")}}
	study.records = []domain.StudyRecord{{Date: day("2026-03-04"), Minutes: 60}, {Date: day("2026-03-04"), Minutes: 30}}

	full, err := uc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if apps.reads != 2 || study.reads != 2 {
		t.Fatalf("each dashboard must read fresh: %d %d", apps.reads, study.reads)
	}
	if full.Applications.Total != 1 || full.Study.TodayMinutes != 90 || full.Study.DayProgress != 20 {
		t.Fatalf("unexpected aggregates: %+v %+v", full.Applications, full.Study)
	}
	if full.Today != "2026-03-04" || full.GeneratedAt != "2026-03-04T21:00:00Z" {
		t.Fatalf("unexpected timestamps: %s %s", full.Today, full.GeneratedAt)
	}
	if full.Metrics["current_streak"] != 1 || full.Feedback.Category != "study_momentum" {
		t.Fatalf("unexpected feedback inputs: %v -> %s", full.Metrics, full.Feedback.Category)
	}
	if full.Feedback.Message == "" {
		t.Fatalf("feedback message should be filled")
	}
}

func TestDashboardPropagatesSourceErrors(t *testing.T) {
	t.Parallel()
	boom := errors.New("db gone")
	uc := newUsecase(t, &fakeApplications{err: boom}, &fakeStudy{}, nil)
	if _, err := uc.Dashboard(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestPublishHandsDashboardToPublisher(t *testing.T) {
	t.Parallel()
	pub := &capturePublisher{}
	uc := newUsecase(t, &fakeApplications{}, &fakeStudy{}, pub)
	out, err := uc.Publish(context.Background())
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(pub.got) != 1 || pub.got[0].GeneratedAt != out.GeneratedAt {
		t.Fatalf("publisher did not receive the dashboard")
	}

	pub.err = errors.New("redis down")
	if _, err := uc.Publish(context.Background()); err == nil {
		t.Fatalf("expected publish error")
	}
}
