package domain

import (
	"fmt"
	"strings"

	apperrors "hunttrack/internal/platform/errors"
)

type Op string

const (
	OpGTE Op = ">="
	OpGT  Op = ">"
	OpLTE Op = "<="
	OpLT  Op = "<"
	OpEQ  Op = "=="
	OpNE  Op = "!="
)

func (o Op) Validate() error {
	switch o {
	case OpGTE, OpGT, OpLTE, OpLT, OpEQ, OpNE:
		return nil
	default:
		return apperrors.Invalid("op", "unsupported operator %q", string(o))
	}
}

type Condition struct {
	Metric string
	Op     Op
	Value  float64
}

// Holds reports whether the named metric satisfies the condition. Unknown
// metrics never match.
func (c Condition) Holds(metrics map[string]float64) bool {
	v, ok := metrics[c.Metric]
	if !ok {
		return false
	}
	switch c.Op {
	case OpGTE:
		return v >= c.Value
	case OpGT:
		return v > c.Value
	case OpLTE:
		return v <= c.Value
	case OpLT:
		return v < c.Value
	case OpEQ:
		return v == c.Value
	case OpNE:
		return v != c.Value
	default:
		return false
	}
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %g", c.Metric, c.Op, c.Value)
}

// Rule matches when every condition holds. A rule without conditions always
// matches.
type Rule struct {
	Category   string
	Conditions []Condition
}

func (r Rule) Matches(metrics map[string]float64) bool {
	for _, c := range r.Conditions {
		if !c.Holds(metrics) {
			return false
		}
	}
	return true
}

// RuleSet is an ordered list of rules with a fallback category. The first
// matching rule wins.
type RuleSet struct {
	rules    []Rule
	fallback string
}

func NewRuleSet(rules []Rule, fallback string) (RuleSet, error) {
	fallback = strings.TrimSpace(fallback)
	if fallback == "" {
		return RuleSet{}, apperrors.Invalid("fallback", "required")
	}
	copied := make([]Rule, 0, len(rules))
	for i, rule := range rules {
		if strings.TrimSpace(rule.Category) == "" {
			return RuleSet{}, apperrors.Invalid("rules", "rule %d has no category", i)
		}
		for _, c := range rule.Conditions {
			if strings.TrimSpace(c.Metric) == "" {
				return RuleSet{}, apperrors.Invalid("rules", "rule %q has a condition without metric", rule.Category)
			}
			if err := c.Op.Validate(); err != nil {
				return RuleSet{}, err
			}
		}
		copied = append(copied, Rule{Category: rule.Category, Conditions: append([]Condition(nil), rule.Conditions...)})
	}
	return RuleSet{rules: copied, fallback: fallback}, nil
}

// Select returns the category of the first matching rule, or the fallback.
func (s RuleSet) Select(metrics map[string]float64) string {
	for _, rule := range s.rules {
		if rule.Matches(metrics) {
			return rule.Category
		}
	}
	return s.fallback
}

func (s RuleSet) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

func (s RuleSet) Fallback() string {
	return s.fallback
}
