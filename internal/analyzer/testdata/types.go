package testdata

// TestCase is one classifier accuracy scenario.
//
// Naming convention for IDs:
//
//	TP-<CATEGORY>-<NNN>  True Positive: dangerous command correctly flagged
//	TN-<CATEGORY>-<NNN>  True Negative: benign command correctly left alone
//	QE-<CATEGORY>-<NNN>  Quote Exemption: dangerous text trapped in quotes
//	FN-<CATEGORY>-<NNN>  False Negative: known gap in the fixed rule set
type TestCase struct {
	ID string

	// Command is the candidate command line as the model produced it.
	Command string

	// ExpectedVerdict is "SAFE", "WARNING", "REQUIRES_CONFIRMATION" or "BLOCKED".
	ExpectedVerdict string

	// Classification is one of TP, TN, QE, FN. FN cases are skipped by the
	// accuracy runner; they document limitations rather than regressions.
	Classification string

	// RuleID, when set, must be among the triggered rules.
	RuleID string

	Description string
	Tags        []string
}

// AllClassifications is the set of valid Classification values.
var AllClassifications = []string{"TP", "TN", "QE", "FN"}

// AllTestCases returns every case in the corpus.
func AllTestCases() []TestCase {
	var all []TestCase
	all = append(all, DestructiveCases...)
	all = append(all, RemoteExecutionCases...)
	all = append(all, PermissionCases...)
	all = append(all, QuoteExemptionCases...)
	all = append(all, BenignCases...)
	return all
}
