package analyzer

// Combiner folds findings into a single verdict using the most restrictive
// severity seen:
//
//	any blocked   -> BLOCKED
//	any dangerous -> REQUIRES_CONFIRMATION
//	any warning   -> WARNING
//	none          -> SAFE
//
// All findings are kept, in the order they were produced.
type Combiner struct{}

func NewCombiner() *Combiner {
	return &Combiner{}
}

func (c *Combiner) Combine(findings []Finding) SafetyResult {
	if len(findings) == 0 {
		return SafetyResult{Verdict: VerdictSafe}
	}

	return SafetyResult{
		Verdict:  severityToVerdict(MaxSeverity(findings)),
		Findings: findings,
	}
}

// MaxSeverity returns the highest severity among findings, or "" if none.
func MaxSeverity(findings []Finding) Severity {
	var highest Severity
	for _, f := range findings {
		if f.Severity.Rank() > highest.Rank() {
			highest = f.Severity
		}
	}
	return highest
}

func severityToVerdict(s Severity) Verdict {
	switch s {
	case SeverityBlocked:
		return VerdictBlocked
	case SeverityDangerous:
		return VerdictRequiresConfirmation
	case SeverityWarning:
		return VerdictWarning
	default:
		return VerdictSafe
	}
}
