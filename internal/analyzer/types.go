package analyzer

import (
	"fmt"
	"regexp"
	"strings"
)

// Severity is the danger level attached to a sensitive pattern.
type Severity string

const (
	SeverityWarning   Severity = "warning"
	SeverityDangerous Severity = "dangerous"
	SeverityBlocked   Severity = "blocked"
)

// Rank gives the total order Warning < Dangerous < Blocked. Unknown
// severities rank below Warning.
func (s Severity) Rank() int {
	switch s {
	case SeverityBlocked:
		return 3
	case SeverityDangerous:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// ParseSeverity accepts the lower-case names used in policy files.
func ParseSeverity(s string) (Severity, error) {
	switch sev := Severity(strings.ToLower(strings.TrimSpace(s))); sev {
	case SeverityWarning, SeverityDangerous, SeverityBlocked:
		return sev, nil
	default:
		return "", fmt.Errorf("unknown severity %q (want warning, dangerous or blocked)", s)
	}
}

// PatternRule is the uncompiled form of a sensitive pattern. It mirrors
// policy.PatternRule so this package does not depend on policy loading.
type PatternRule struct {
	ID          string
	Regex       string
	Severity    Severity
	Description string
	Suggestion  string
}

// SensitivePattern is a compiled, immutable entry of the classifier table.
type SensitivePattern struct {
	ID          string
	Pattern     *regexp.Regexp
	Severity    Severity
	Description string
	Suggestion  string
}

// Message is the description, suffixed with " - suggestion" when present.
func (p SensitivePattern) Message() string {
	if p.Suggestion == "" {
		return p.Description
	}
	return p.Description + " - " + p.Suggestion
}

// Finding is one pattern match.
type Finding struct {
	RuleID   string
	Severity Severity
	Message  string
}

// Verdict is the aggregate outcome of a classification.
type Verdict string

const (
	VerdictSafe                 Verdict = "SAFE"
	VerdictWarning              Verdict = "WARNING"
	VerdictRequiresConfirmation Verdict = "REQUIRES_CONFIRMATION"
	VerdictBlocked              Verdict = "BLOCKED"
)

// SafetyResult is what Classify returns. Findings are in table order and
// empty when the verdict is Safe.
type SafetyResult struct {
	Verdict  Verdict
	Findings []Finding

	// Fallback is set when the command could not be tokenized and the raw
	// string was scanned instead of the unquoted surface.
	Fallback bool
}

// IsSafe reports whether no pattern matched.
func (r SafetyResult) IsSafe() bool {
	return r.Verdict == VerdictSafe
}
