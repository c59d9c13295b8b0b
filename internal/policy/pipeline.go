package policy

import (
	"fmt"

	"github.com/gzhole/aishell/internal/analyzer"
)

// PatternRules converts the policy's pattern table to analyzer-side rules,
// preserving order.
func (p *Policy) PatternRules() ([]analyzer.PatternRule, error) {
	rules := make([]analyzer.PatternRule, 0, len(p.Patterns))
	for i, r := range p.Patterns {
		sev, err := analyzer.ParseSeverity(r.Severity)
		if err != nil {
			id := r.ID
			if id == "" {
				id = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("pattern %s: %w", id, err)
		}
		rules = append(rules, analyzer.PatternRule{
			ID:          r.ID,
			Regex:       r.Regex,
			Severity:    sev,
			Description: r.Description,
			Suggestion:  r.Suggestion,
		})
	}
	return rules, nil
}

// BuildClassifier compiles the policy's pattern table into a classifier.
func BuildClassifier(pol *Policy) (*analyzer.Classifier, error) {
	rules, err := pol.PatternRules()
	if err != nil {
		return nil, err
	}
	return analyzer.NewClassifier(rules)
}
