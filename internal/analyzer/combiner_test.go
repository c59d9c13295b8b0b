package analyzer

import (
	"testing"
)

func TestCombiner_BlockedWins(t *testing.T) {
	c := NewCombiner()
	findings := []Finding{
		{RuleID: "w1", Severity: SeverityWarning, Message: "warning"},
		{RuleID: "b1", Severity: SeverityBlocked, Message: "blocked"},
		{RuleID: "d1", Severity: SeverityDangerous, Message: "dangerous"},
	}
	result := c.Combine(findings)
	if result.Verdict != VerdictBlocked {
		t.Errorf("expected BLOCKED, got %s", result.Verdict)
	}
	if len(result.Findings) != 3 {
		t.Errorf("expected all 3 findings kept, got %d", len(result.Findings))
	}
	if result.Findings[0].RuleID != "w1" || result.Findings[2].RuleID != "d1" {
		t.Errorf("expected findings in input order, got %v", result.Findings)
	}
}

func TestCombiner_Verdicts(t *testing.T) {
	tests := []struct {
		severities []Severity
		want       Verdict
	}{
		{nil, VerdictSafe},
		{[]Severity{SeverityWarning}, VerdictWarning},
		{[]Severity{SeverityWarning, SeverityWarning}, VerdictWarning},
		{[]Severity{SeverityDangerous}, VerdictRequiresConfirmation},
		{[]Severity{SeverityWarning, SeverityDangerous}, VerdictRequiresConfirmation},
		{[]Severity{SeverityBlocked}, VerdictBlocked},
		{[]Severity{SeverityDangerous, SeverityBlocked}, VerdictBlocked},
	}

	c := NewCombiner()
	for _, tt := range tests {
		var findings []Finding
		for _, s := range tt.severities {
			findings = append(findings, Finding{RuleID: string(s), Severity: s})
		}
		got := c.Combine(findings)
		if got.Verdict != tt.want {
			t.Errorf("severities %v: expected %s, got %s", tt.severities, tt.want, got.Verdict)
		}
	}
}

func TestCombiner_NoFindingsIsSafe(t *testing.T) {
	result := NewCombiner().Combine(nil)
	if !result.IsSafe() {
		t.Errorf("expected SAFE, got %s", result.Verdict)
	}
	if len(result.Findings) != 0 {
		t.Errorf("expected no findings, got %v", result.Findings)
	}
}

func TestMaxSeverity_Empty(t *testing.T) {
	if got := MaxSeverity(nil); got != "" {
		t.Errorf("expected empty severity, got %q", got)
	}
}

func TestSeverity_Rank(t *testing.T) {
	if !(SeverityWarning.Rank() < SeverityDangerous.Rank() && SeverityDangerous.Rank() < SeverityBlocked.Rank()) {
		t.Error("expected Warning < Dangerous < Blocked")
	}
	if Severity("bogus").Rank() != 0 {
		t.Error("expected unknown severity to rank 0")
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{"warning", SeverityWarning, false},
		{" Dangerous ", SeverityDangerous, false},
		{"BLOCKED", SeverityBlocked, false},
		{"critical", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("input %q: expected error=%v, got %v", tt.in, tt.wantErr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("input %q: expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
