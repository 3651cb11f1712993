package service_test

import (
	"testing"

	"hunttrack/internal/modules/feedback/service"
	"hunttrack/internal/platform/config"
)

type lastPicker struct{ calls int }

func (p *lastPicker) Pick(_ string, options []string) string {
	p.calls++
	return options[len(options)-1]
}

func TestDefaultRulesFromConfig(t *testing.T) {
	t.Parallel()
	rules, err := service.RulesFromConfig(config.DefaultFeedback())
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	svc := service.NewFeedbackService(rules, config.DefaultFeedback().Messages, nil)

	cases := []struct {
		name    string
		metrics map[string]float64
		want    string
	}{
		{"empty tracker", map[string]float64{"has_data": 0}, "no_data"},
		{"both goals", map[string]float64{"has_data": 1, "application_progress": 1, "study_progress": 0.9}, "excelling"},
		{"applications only", map[string]float64{"has_data": 1, "application_progress": 0.8, "study_progress": 0.1}, "job_momentum"},
		{"week long streak", map[string]float64{"has_data": 1, "current_streak": 8, "study_progress": 0.4}, "on_fire"},
		{"short streak", map[string]float64{"has_data": 1, "current_streak": 2, "study_progress": 0.4, "application_progress": 0.4}, "building"},
		{"slow start", map[string]float64{"has_data": 1, "current_streak": 0, "study_progress": 0.1, "application_progress": 0.2}, "slow_start"},
		{"in between", map[string]float64{"has_data": 1, "current_streak": 0, "study_progress": 0.4, "application_progress": 0.4}, "keep_going"},
	}
	for _, tc := range cases {
		if got := svc.Category(tc.metrics); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestConfiguredRulesOverrideDefaults(t *testing.T) {
	t.Parallel()
	cfg := config.FeedbackConfig{
		Fallback: "meh",
		Rules: []config.RuleConfig{{
			Category: "two_days",
			When:     []config.ConditionConfig{{Metric: "current_streak", Op: ">=", Value: 2}},
		}},
	}
	rules, err := service.RulesFromConfig(cfg)
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	svc := service.NewFeedbackService(rules, nil, nil)
	if got := svc.Category(map[string]float64{"current_streak": 2}); got != "two_days" {
		t.Fatalf("got %q", got)
	}
	if got := svc.Category(map[string]float64{"current_streak": 8}); got != "two_days" {
		t.Fatalf("built-in on_fire must not apply, got %q", got)
	}
	if got := svc.Message("meh"); got != "meh" {
		t.Fatalf("category without texts renders as its name, got %q", got)
	}
}

func TestMessageUsesPickerOnlyForWording(t *testing.T) {
	t.Parallel()
	rules, err := service.RulesFromConfig(config.DefaultFeedback())
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	picker := &lastPicker{}
	svc := service.NewFeedbackService(rules, map[string][]string{"building": {"a", "b"}, "no_data": {"only"}}, picker)
	if got := svc.Message("building"); got != "b" {
		t.Fatalf("got %q", got)
	}
	if got := svc.Message("no_data"); got != "only" || picker.calls != 1 {
		t.Fatalf("single option should skip the picker: %q calls=%d", got, picker.calls)
	}
}

func TestRulesFromConfigRejectsBadOperator(t *testing.T) {
	t.Parallel()
	cfg := config.FeedbackConfig{Fallback: "x", Rules: []config.RuleConfig{{Category: "y", When: []config.ConditionConfig{{Metric: "m", Op: "=>"}}}}}
	if _, err := service.RulesFromConfig(cfg); err == nil {
		t.Fatalf("expected error")
	}
}
