package service

import (
	"hunttrack/internal/modules/feedback/domain"
	feedbackout "hunttrack/internal/modules/feedback/port/out"
	"hunttrack/internal/platform/config"
)

type FeedbackService struct {
	rules    domain.RuleSet
	messages map[string][]string
	picker   feedbackout.MessagePicker
}

func NewFeedbackService(rules domain.RuleSet, messages map[string][]string, picker feedbackout.MessagePicker) *FeedbackService {
	copied := make(map[string][]string, len(messages))
	for k, v := range messages {
		copied[k] = append([]string(nil), v...)
	}
	return &FeedbackService{rules: rules, messages: copied, picker: picker}
}

// RulesFromConfig converts the configured feedback section into a rule set.
func RulesFromConfig(cfg config.FeedbackConfig) (domain.RuleSet, error) {
	rules := make([]domain.Rule, 0, len(cfg.Rules))
	for _, rc := range cfg.Rules {
		rule := domain.Rule{Category: rc.Category}
		for _, cc := range rc.When {
			rule.Conditions = append(rule.Conditions, domain.Condition{Metric: cc.Metric, Op: domain.Op(cc.Op), Value: cc.Value})
		}
		rules = append(rules, rule)
	}
	return domain.NewRuleSet(rules, cfg.Fallback)
}

func (s *FeedbackService) Category(metrics map[string]float64) string {
	return s.rules.Select(metrics)
}

// Message picks a text for category. Categories without texts render as
// their own name.
func (s *FeedbackService) Message(category string) string {
	options := s.messages[category]
	if len(options) == 0 {
		return category
	}
	if s.picker == nil || len(options) == 1 {
		return options[0]
	}
	return s.picker.Pick(category, options)
}
