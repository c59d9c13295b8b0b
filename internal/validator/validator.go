// Package validator turns a candidate command into a verdict: valid,
// rewritten with fix notes, invalid with errors, or sensitive with
// security warnings.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gzhole/aishell/internal/analyzer"
	"github.com/gzhole/aishell/internal/policy"
	"github.com/gzhole/aishell/internal/quoting"
	"github.com/gzhole/aishell/internal/shell"
)

// NoneSentinel is the command a model returns when it has nothing to run.
const NoneSentinel = "(none)"

// Validator holds the compiled tables for one policy. It has no mutable
// state after New returns and is safe for concurrent use.
type Validator struct {
	classifier   *analyzer.Classifier
	placeholders []*regexp.Regexp
	flags        []string
	rewrites     []policy.Rewrite
	corrector    *quoting.Corrector
}

// New compiles pol. It fails on an invalid pattern, severity or
// placeholder expression.
func New(pol *policy.Policy) (*Validator, error) {
	classifier, err := policy.BuildClassifier(pol)
	if err != nil {
		return nil, err
	}

	placeholders := make([]*regexp.Regexp, 0, len(pol.Placeholders))
	for _, p := range pol.Placeholders {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("placeholder %q: %w", p, err)
		}
		placeholders = append(placeholders, re)
	}

	flags := make([]string, len(pol.HallucinatedFlags))
	copy(flags, pol.HallucinatedFlags)
	rewrites := make([]policy.Rewrite, len(pol.Rewrites))
	copy(rewrites, pol.Rewrites)

	return &Validator{
		classifier:   classifier,
		placeholders: placeholders,
		flags:        flags,
		rewrites:     rewrites,
		corrector:    quoting.NewCorrector(),
	}, nil
}

// Default returns a validator over the built-in policy.
func Default() *Validator {
	v, err := New(policy.DefaultPolicy())
	if err != nil {
		panic(fmt.Sprintf("validator: built-in policy does not compile: %v", err))
	}
	return v
}

// Classifier exposes the compiled risk classifier.
func (v *Validator) Classifier() *analyzer.Classifier {
	return v.classifier
}

// Validate runs the pipeline. Each failing step returns immediately:
//
//	sentinel -> risk -> hidden characters -> placeholders
//	-> existence checks -> injection -> hallucinated flags -> quote balance
//
// A command flagged by the risk classifier is never rewritten. If any
// rewrite was applied, the final command is classified again.
func (v *Validator) Validate(command string) Result {
	cmd := strings.TrimSpace(command)
	if cmd == NoneSentinel {
		return Valid(cmd)
	}

	if warnings := v.securityWarnings(cmd); len(warnings) > 0 {
		return Sensitive(cmd, warnings)
	}

	if hidden := shell.FindHidden(cmd); len(hidden) > 0 {
		errs := make([]ValidationError, len(hidden))
		for i, h := range hidden {
			errs[i] = ValidationError{Kind: SyntaxError, Detail: h.String()}
		}
		return Invalid(cmd, errs)
	}

	if found := v.findPlaceholders(cmd); len(found) > 0 {
		errs := make([]ValidationError, len(found))
		for i, p := range found {
			errs[i] = ValidationError{Kind: PlaceholderDetected, Detail: p}
		}
		return Invalid(cmd, errs)
	}

	var fixes []string
	final := canonicalizeExistence(cmd)
	if final != cmd {
		fixes = append(fixes, fixExistenceCheck)
	}

	if issues := v.corrector.Analyze(final); len(issues) > 0 {
		errs := make([]ValidationError, len(issues))
		for i, issue := range issues {
			errs[i] = ValidationError{Kind: QuotingIssue, Detail: issue.Message()}
		}
		return Invalid(final, errs)
	}

	if found := detectFlags(final, v.flags); len(found) > 0 {
		rewritten := applyRewrites(final, v.rewrites, found)
		remaining := detectFlags(rewritten, v.flags)
		if len(remaining) > 0 {
			errs := make([]ValidationError, len(remaining))
			for i, flag := range remaining {
				errs[i] = ValidationError{Kind: HallucinatedFlag, Detail: flag}
			}
			return Invalid(rewritten, errs)
		}
		for _, flag := range found {
			fixes = append(fixes, "Fixed hallucinated flag: "+flag)
		}
		final = rewritten
	}

	if issue := quoting.CheckBalance(final); issue != nil {
		return Invalid(final, []ValidationError{{Kind: QuotingIssue, Detail: issue.Message()}})
	}

	if len(fixes) == 0 {
		return Valid(final)
	}

	if warnings := v.securityWarnings(final); len(warnings) > 0 {
		return Sensitive(final, warnings)
	}
	return Rewritten(final, fixes)
}

// securityWarnings maps classifier findings onto warnings: Warning and
// Blocked become DangerousPattern, Dangerous becomes DataLoss.
func (v *Validator) securityWarnings(cmd string) []SecurityWarning {
	result := v.classifier.Classify(cmd)
	if result.IsSafe() {
		return nil
	}
	warnings := make([]SecurityWarning, 0, len(result.Findings))
	for _, f := range result.Findings {
		kind := DangerousPattern
		if f.Severity == analyzer.SeverityDangerous {
			kind = DataLoss
		}
		warnings = append(warnings, SecurityWarning{Kind: kind, Message: f.Message})
	}
	return warnings
}

// findPlaceholders returns one entry per distinct matched text, in pattern
// order.
func (v *Validator) findPlaceholders(cmd string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, re := range v.placeholders {
		m := re.FindString(cmd)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		found = append(found, m)
	}
	return found
}
