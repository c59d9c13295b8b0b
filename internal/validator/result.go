package validator

import (
	"fmt"
	"strings"
)

// Kind is the outcome of a validation.
type Kind int

const (
	KindValid Kind = iota
	KindRewritten
	KindInvalid
	KindSensitive
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindRewritten:
		return "rewritten"
	case KindInvalid:
		return "invalid"
	case KindSensitive:
		return "sensitive"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is the verdict for one command. Fixes is set only for Rewritten,
// Errors only for Invalid and Warnings only for Sensitive.
type Result struct {
	Kind     Kind
	Command  string
	Fixes    []string
	Errors   []ValidationError
	Warnings []SecurityWarning
}

func Valid(cmd string) Result {
	return Result{Kind: KindValid, Command: cmd}
}

func Rewritten(cmd string, fixes []string) Result {
	return Result{Kind: KindRewritten, Command: cmd, Fixes: fixes}
}

func Invalid(cmd string, errs []ValidationError) Result {
	return Result{Kind: KindInvalid, Command: cmd, Errors: errs}
}

func Sensitive(cmd string, warnings []SecurityWarning) Result {
	return Result{Kind: KindSensitive, Command: cmd, Warnings: warnings}
}

// Summary is a one-line description suitable for logs.
func (r Result) Summary() string {
	switch r.Kind {
	case KindRewritten:
		return fmt.Sprintf("rewritten: %s", strings.Join(r.Fixes, "; "))
	case KindInvalid:
		msgs := make([]string, len(r.Errors))
		for i, e := range r.Errors {
			msgs[i] = e.Error()
		}
		return fmt.Sprintf("invalid: %s", strings.Join(msgs, "; "))
	case KindSensitive:
		msgs := make([]string, len(r.Warnings))
		for i, w := range r.Warnings {
			msgs[i] = w.String()
		}
		return fmt.Sprintf("sensitive: %s", strings.Join(msgs, "; "))
	default:
		return r.Kind.String()
	}
}

// ErrorKind classifies a ValidationError.
type ErrorKind int

const (
	HallucinatedFlag ErrorKind = iota
	PlaceholderDetected
	SyntaxError
	QuotingIssue
)

func (k ErrorKind) String() string {
	switch k {
	case HallucinatedFlag:
		return "hallucinated-flag"
	case PlaceholderDetected:
		return "placeholder"
	case SyntaxError:
		return "syntax"
	case QuotingIssue:
		return "quoting"
	default:
		return fmt.Sprintf("error-kind(%d)", int(k))
	}
}

// ValidationError is a problem that makes a command unusable as written.
// None of these are auto-corrected.
type ValidationError struct {
	Kind   ErrorKind
	Detail string
}

func (e ValidationError) Error() string {
	switch e.Kind {
	case HallucinatedFlag:
		return "Hallucinated flag: " + e.Detail
	case PlaceholderDetected:
		return "Placeholder detected: " + e.Detail
	case SyntaxError:
		return "Syntax error: " + e.Detail
	default:
		return "Quoting issue: " + e.Detail
	}
}

// WarningKind classifies a SecurityWarning.
type WarningKind int

const (
	DataLoss WarningKind = iota
	SystemModification
	DangerousPattern
)

func (k WarningKind) String() string {
	switch k {
	case DataLoss:
		return "data-loss"
	case SystemModification:
		return "system-modification"
	case DangerousPattern:
		return "dangerous-pattern"
	default:
		return fmt.Sprintf("warning-kind(%d)", int(k))
	}
}

// SecurityWarning gates execution of a sensitive command. It is not an
// error: the command may still run after confirmation.
type SecurityWarning struct {
	Kind    WarningKind
	Message string
}

func (w SecurityWarning) String() string {
	return w.Kind.String() + ": " + w.Message
}
