package analyzer

import (
	"fmt"
	"regexp"

	"github.com/gzhole/aishell/internal/shell"
)

// Classifier matches the unquoted surface of a command against an ordered
// table of sensitive patterns. The table is compiled once in NewClassifier
// and never modified, so a Classifier is safe for concurrent use.
type Classifier struct {
	patterns []SensitivePattern
	combiner *Combiner
}

// NewClassifier compiles rules in the order given.
func NewClassifier(rules []PatternRule) (*Classifier, error) {
	patterns := make([]SensitivePattern, 0, len(rules))
	for i, rule := range rules {
		re, err := regexp.Compile(rule.Regex)
		if err != nil {
			return nil, fmt.Errorf("pattern %s: %w", ruleName(rule, i), err)
		}
		if rule.Severity.Rank() == 0 {
			return nil, fmt.Errorf("pattern %s: unknown severity %q", ruleName(rule, i), rule.Severity)
		}
		patterns = append(patterns, SensitivePattern{
			ID:          rule.ID,
			Pattern:     re,
			Severity:    rule.Severity,
			Description: rule.Description,
			Suggestion:  rule.Suggestion,
		})
	}
	return &Classifier{patterns: patterns, combiner: NewCombiner()}, nil
}

// DefaultClassifier builds a classifier over DefaultRules. The built-in
// table is known to compile.
func DefaultClassifier() *Classifier {
	c, err := NewClassifier(DefaultRules())
	if err != nil {
		panic(fmt.Sprintf("analyzer: built-in rules do not compile: %v", err))
	}
	return c
}

// Patterns returns a copy of the compiled table (for listing/testing).
func (c *Classifier) Patterns() []SensitivePattern {
	out := make([]SensitivePattern, len(c.patterns))
	copy(out, c.patterns)
	return out
}

// Classify tokenizes command and scans its unquoted surface. When the
// command cannot be tokenized (unclosed quote) the raw string is scanned
// instead, so dangerous text is still caught.
func (c *Classifier) Classify(command string) SafetyResult {
	tokens, err := shell.Tokenize(command)
	if err != nil {
		result := c.scan(command)
		result.Fallback = true
		return result
	}
	return c.ClassifyTokens(tokens)
}

// ClassifyTokens scans an already tokenized command.
func (c *Classifier) ClassifyTokens(tokens []shell.Token) SafetyResult {
	return c.scan(shell.Surface(tokens))
}

func (c *Classifier) scan(content string) SafetyResult {
	if isBlank(content) {
		return SafetyResult{Verdict: VerdictSafe}
	}

	var findings []Finding
	for _, p := range c.patterns {
		if p.Pattern.MatchString(content) {
			findings = append(findings, Finding{
				RuleID:   p.ID,
				Severity: p.Severity,
				Message:  p.Message(),
			})
		}
	}
	return c.combiner.Combine(findings)
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

func ruleName(rule PatternRule, index int) string {
	if rule.ID != "" {
		return rule.ID
	}
	return fmt.Sprintf("#%d", index)
}
