// Package execution maps a validation verdict and the user's settings onto
// what the caller may do with a command.
package execution

import (
	"fmt"
	"strings"

	"github.com/gzhole/aishell/internal/config"
	"github.com/gzhole/aishell/internal/validator"
)

type Kind int

const (
	SuggestOnly Kind = iota
	Safe
	RequiresConfirmation
	DryRunOnly
	Blocked
)

func (k Kind) String() string {
	switch k {
	case SuggestOnly:
		return "suggest-only"
	case Safe:
		return "safe"
	case RequiresConfirmation:
		return "requires-confirmation"
	case DryRunOnly:
		return "dry-run"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("mode(%d)", int(k))
	}
}

// Mode is the resolved execution behavior. Reasons is set for
// RequiresConfirmation, Reason for Blocked.
type Mode struct {
	Kind    Kind
	Reasons []string
	Reason  string
}

const (
	reasonAutoExecuteOff = "auto-execute: off"
	reasonHighSafety     = "Command blocked due to high safety level"
)

// Resolve is a pure function of its inputs. Dry run wins over everything;
// a sensitive verdict never resolves to Safe.
func Resolve(settings config.Settings, r validator.Result) Mode {
	if settings.DryRun {
		return Mode{Kind: DryRunOnly}
	}

	switch r.Kind {
	case validator.KindValid, validator.KindRewritten:
		if settings.AutoExecute {
			return Mode{Kind: Safe}
		}
		return Mode{Kind: RequiresConfirmation, Reasons: []string{reasonAutoExecuteOff}}

	case validator.KindInvalid:
		msgs := make([]string, len(r.Errors))
		for i, e := range r.Errors {
			msgs[i] = e.Error()
		}
		return Mode{Kind: Blocked, Reason: "Command validation failed: " + strings.Join(msgs, ", ")}

	case validator.KindSensitive:
		reasons := make([]string, 0, len(r.Warnings))
		dangerous := false
		for _, w := range r.Warnings {
			reasons = append(reasons, warningReason(w))
			if w.Kind == validator.DangerousPattern {
				dangerous = true
			}
		}
		if settings.SafetyLevel == config.SafetyHigh && dangerous {
			return Mode{Kind: Blocked, Reason: reasonHighSafety}
		}
		return Mode{Kind: RequiresConfirmation, Reasons: reasons}
	}

	return Mode{Kind: Blocked, Reason: fmt.Sprintf("unknown validation result %s", r.Kind)}
}

func warningReason(w validator.SecurityWarning) string {
	switch w.Kind {
	case validator.DataLoss:
		return "Data Loss Risk: " + w.Message
	case validator.SystemModification:
		return "System Modification: " + w.Message
	default:
		return "Dangerous Pattern: " + w.Message
	}
}

// CanExecute reports whether the command may run, possibly after
// confirmation.
func (m Mode) CanExecute() bool {
	return m.Kind == Safe || m.Kind == RequiresConfirmation
}

func (m Mode) RequiresConfirmation() bool { return m.Kind == RequiresConfirmation }
func (m Mode) IsDryRun() bool             { return m.Kind == DryRunOnly }
func (m Mode) IsBlocked() bool            { return m.Kind == Blocked }

// DisplayPrefix is prepended to the command when it is shown.
func (m Mode) DisplayPrefix() string {
	switch m.Kind {
	case DryRunOnly:
		return "DRY RUN: "
	case Blocked:
		return fmt.Sprintf("BLOCKED (%s): ", m.Reason)
	default:
		return ""
	}
}

func (m Mode) ConfirmationReasons() []string {
	if m.Kind != RequiresConfirmation {
		return nil
	}
	return m.Reasons
}

func (m Mode) BlockReason() (string, bool) {
	if m.Kind != Blocked {
		return "", false
	}
	return m.Reason, true
}

// Instructions is the hint shown under the command, empty for Safe.
func (m Mode) Instructions() string {
	switch m.Kind {
	case SuggestOnly:
		return "Copy and paste the command above to execute it manually"
	case DryRunOnly:
		return "This is a dry run. Remove --dry-run flag to execute"
	case Blocked:
		return "Command blocked: " + m.Reason
	case RequiresConfirmation:
		return "Use --auto-execute to run without confirmation"
	default:
		return ""
	}
}

func (m Mode) String() string {
	switch m.Kind {
	case Blocked:
		return m.Kind.String() + ": " + m.Reason
	case RequiresConfirmation:
		return m.Kind.String() + ": " + strings.Join(m.Reasons, "; ")
	default:
		return m.Kind.String()
	}
}
