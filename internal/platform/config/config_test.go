package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hunttrack/internal/platform/config"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaultsWhenDocumentMissing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	cfg, err := config.Load(config.Options{DataDir: dir, Lookup: noEnv})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DailyStudyTargetMinutes != 70 || cfg.WeeklyApplicationGoal != 5 {
		t.Fatalf("unexpected targets: %d %d", cfg.DailyStudyTargetMinutes, cfg.WeeklyApplicationGoal)
	}
	if len(cfg.StatusOptions) != 6 || cfg.StatusOptions[0] != "Applied" {
		t.Fatalf("unexpected status options: %v", cfg.StatusOptions)
	}
	if cfg.UploadDirectory != filepath.Join(dir, "uploads") {
		t.Fatalf("unexpected upload dir: %s", cfg.UploadDirectory)
	}
	if cfg.Storage.Driver != "sqlite" || cfg.Storage.Path != filepath.Join(dir, "hunttrack.db") {
		t.Fatalf("unexpected storage: %+v", cfg.Storage)
	}
	if len(cfg.Feedback.Rules) == 0 || cfg.Feedback.Fallback == "" {
		t.Fatalf("expected built-in feedback rules")
	}
}

func TestLoadMergesDocumentKeys(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	doc := `daily_study_target_minutes: 90
status_options: [Applied, Interview, Offer, Rejected]
closed_statuses: [Rejected]
upload_directory: files
feedback:
  fallback: meh
  rules:
    - category: streaking
      when:
        - {metric: current_streak, op: ">=", value: 2}
  messages:
    streaking: ["nice"]
`
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := config.Load(config.Options{DataDir: dir, Lookup: noEnv})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DailyStudyTargetMinutes != 90 {
		t.Fatalf("expected 90, got %d", cfg.DailyStudyTargetMinutes)
	}
	if cfg.WeeklyApplicationGoal != 5 {
		t.Fatalf("missing key should keep default, got %d", cfg.WeeklyApplicationGoal)
	}
	if strings.Join(cfg.StatusOptions, ",") != "Applied,Interview,Offer,Rejected" {
		t.Fatalf("unexpected statuses: %v", cfg.StatusOptions)
	}
	if cfg.UploadDirectory != filepath.Join(dir, "files") {
		t.Fatalf("relative upload dir not resolved: %s", cfg.UploadDirectory)
	}
	if len(cfg.Feedback.Rules) != 1 || cfg.Feedback.Rules[0].When[0].Value != 2 {
		t.Fatalf("rules not overridden: %+v", cfg.Feedback.Rules)
	}
	if cfg.Feedback.Messages["streaking"][0] != "nice" {
		t.Fatalf("messages not merged")
	}
	if len(cfg.Feedback.Messages["keep_going"]) == 0 {
		t.Fatalf("default messages should survive a partial override")
	}
}

func TestLoadEnvOverridesDocumentAndDotenv(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("weekly_application_goal: 3\n"), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	dotenv := "HUNTTRACK_WEEKLY_APPLICATION_GOAL=8\nHUNTTRACK_LOG_LEVEL=debug\n"
	if err := os.WriteFile(filepath.Join(dir, config.EnvFile), []byte(dotenv), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := config.Load(config.Options{DataDir: dir, Lookup: envMap(map[string]string{
		"HUNTTRACK_WEEKLY_APPLICATION_GOAL": "10",
	})})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.WeeklyApplicationGoal != 10 {
		t.Fatalf("process env should win, got %d", cfg.WeeklyApplicationGoal)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("dotenv value not applied: %s", cfg.LogLevel)
	}
}

func TestLoadRejectsInvalidDocuments(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"empty statuses":     "status_options: []\n",
		"duplicate statuses": "status_options: [Applied, applied]\ninterview_statuses: []\nclosed_statuses: []\n",
		"negative target":    "daily_study_target_minutes: -1\n",
		"unknown driver":     "storage: {driver: mysql}\n",
		"postgres sans dsn":  "storage: {driver: postgres}\n",
		"malformed yaml":     "status_options: [unterminated\n",
	}
	for name, doc := range cases {
		doc := doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(doc), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := config.Load(config.Options{DataDir: dir, Lookup: noEnv}); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadRequiresExplicitConfigPathToExist(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	_, err := config.Load(config.Options{DataDir: dir, ConfigPath: filepath.Join(dir, "missing.yaml"), Lookup: noEnv})
	if err == nil {
		t.Fatalf("expected missing explicit config to fail")
	}
}

func TestLoadFitsDefaultGroupsToCustomStatuses(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	doc := "status_options: [Applied, Phone Screen, Onsite, Hired, Declined]\n"
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := config.Load(config.Options{DataDir: dir, Lookup: noEnv})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.InterviewStatuses) != 0 || len(cfg.ClosedStatuses) != 0 {
		t.Fatalf("stale default groups kept: %v %v", cfg.InterviewStatuses, cfg.ClosedStatuses)
	}
}

func TestLoadFitsDefaultGroupsToEnvStatuses(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(config.Options{DataDir: t.TempDir(), Lookup: envMap(map[string]string{
		"HUNTTRACK_STATUS_OPTIONS": "Applied, offer , Rejected",
	})})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if strings.Join(cfg.StatusOptions, ",") != "Applied,offer,Rejected" {
		t.Fatalf("unexpected statuses: %v", cfg.StatusOptions)
	}
	if strings.Join(cfg.InterviewStatuses, ",") != "offer" {
		t.Fatalf("interview group should keep the configured spelling: %v", cfg.InterviewStatuses)
	}
	if strings.Join(cfg.ClosedStatuses, ",") != "Rejected" {
		t.Fatalf("unexpected closed group: %v", cfg.ClosedStatuses)
	}
}

func TestLoadRewritesGroupsToConfiguredSpelling(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	doc := "interview_statuses: [interview, OFFER]\nclosed_statuses: [rejected]\n"
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := config.Load(config.Options{DataDir: dir, Lookup: noEnv})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if strings.Join(cfg.InterviewStatuses, ",") != "Interview,Offer" {
		t.Fatalf("unexpected interview group: %v", cfg.InterviewStatuses)
	}
	if strings.Join(cfg.ClosedStatuses, ",") != "Rejected" {
		t.Fatalf("unexpected closed group: %v", cfg.ClosedStatuses)
	}
}

func TestLoadRejectsUnknownStatusInWrittenGroup(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	doc := "status_options: [Applied, Hired]\nclosed_statuses: [Rejected]\n"
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := config.Load(config.Options{DataDir: dir, Lookup: noEnv})
	if err == nil || !strings.Contains(err.Error(), `"Rejected"`) {
		t.Fatalf("expected unknown closed status error, got %v", err)
	}
}
