package bootstrap_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	applicationdto "hunttrack/internal/modules/application/dto"
	"hunttrack/internal/bootstrap"
	"hunttrack/internal/platform/config"
)

func TestWiringEndToEnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	cfg := config.Default(dir)
	cfg.Achievements.StudyHours = []int{1}

	app, err := bootstrap.New(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	if _, err := app.ApplicationCLI.Add(ctx, applicationdto.AddInput{Company: "Acme", Role: "SRE"}); err != nil {
		t.Fatalf("add application: %v", err)
	}
	if _, err := app.StudyCLI.Log(ctx, "", "1h 5m", "queues"); err != nil {
		t.Fatalf("log study: %v", err)
	}

	dashboard, err := app.MetricsCLI.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dashboard.Applications.Total != 1 || dashboard.Study.TodayMinutes != 65 || dashboard.Study.CurrentStreak != 1 {
		t.Fatalf("unexpected dashboard: %+v %+v", dashboard.Applications, dashboard.Study)
	}

	// the study write already ran the check
	achievements, err := app.AchievementCLI.List(ctx)
	if err != nil {
		t.Fatalf("achievements: %v", err)
	}
	if achievements[0].ID != "time_1" || !achievements[0].Unlocked {
		t.Fatalf("expected the one hour milestone unlocked: %+v", achievements[0])
	}
	if fresh, err := app.AchievementCLI.Check(ctx); err != nil || len(fresh) != 0 {
		t.Fatalf("unlocks must be reported once: %+v %v", fresh, err)
	}

	var csv bytes.Buffer
	if out, err := app.ReportCLI.ExportCSV(ctx, "applications", &csv); err != nil || out.Rows != 1 {
		t.Fatalf("export: %+v %v", out, err)
	}
	report, err := app.ReportCLI.WeeklyReport(ctx, "", "")
	if err != nil {
		t.Fatalf("weekly report: %v", err)
	}
	if !strings.HasPrefix(report.Path, filepath.Join(dir, "reports")) {
		t.Fatalf("unexpected report path %s", report.Path)
	}

	source := filepath.Join(dir, "cv.txt")
	if err := os.WriteFile(source, []byte("resume"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	saved, err := app.AttachmentCLI.Save(ctx, "resume", "Acme", "SRE", source)
	if err != nil || !strings.HasPrefix(saved.Ref, "resumes/resume_acme_sre_") {
		t.Fatalf("attach: %+v %v", saved, err)
	}
}

func TestStudyWritesAndChecksShareTheWriter(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	cfg := config.Default(t.TempDir())
	cfg.Achievements.StudyHours = []int{1}

	app, err := bootstrap.New(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := app.StudyCLI.Log(ctx, "", "20", ""); err != nil {
				errs <- err
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := app.AchievementCLI.Check(ctx); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent write: %v", err)
	}

	all, err := app.AchievementCLI.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !all[0].Unlocked {
		t.Fatalf("80 logged minutes should unlock the one hour milestone: %+v", all[0])
	}
}
