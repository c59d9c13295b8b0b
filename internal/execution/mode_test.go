package execution

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gzhole/aishell/internal/config"
	"github.com/gzhole/aishell/internal/validator"
)

func allSettings() []config.Settings {
	var out []config.Settings
	for _, dry := range []bool{false, true} {
		for _, auto := range []bool{false, true} {
			for _, lvl := range []config.SafetyLevel{config.SafetyLow, config.SafetyMedium, config.SafetyHigh} {
				out = append(out, config.Settings{DryRun: dry, AutoExecute: auto, SafetyLevel: lvl})
			}
		}
	}
	return out
}

func sampleResults() []validator.Result {
	return []validator.Result{
		validator.Valid("ls"),
		validator.Rewritten("ls -a", []string{"Fixed hallucinated flag: --hidden"}),
		validator.Invalid("cat /path/to/x", []validator.ValidationError{{Kind: validator.PlaceholderDetected, Detail: "/path/to/"}}),
		validator.Sensitive("rm -rf /", []validator.SecurityWarning{{Kind: validator.DangerousPattern, Message: "boom"}}),
		validator.Sensitive("rm -rf ~", []validator.SecurityWarning{{Kind: validator.DataLoss, Message: "gone"}}),
	}
}

func TestResolve_DryRunDominates(t *testing.T) {
	for _, s := range allSettings() {
		if !s.DryRun {
			continue
		}
		for _, r := range sampleResults() {
			if m := Resolve(s, r); m.Kind != DryRunOnly {
				t.Errorf("settings %+v, result %s: expected dry-run, got %s", s, r.Kind, m)
			}
		}
	}
}

func TestResolve_SensitiveNeverSafe(t *testing.T) {
	for _, s := range allSettings() {
		for _, r := range sampleResults() {
			if r.Kind != validator.KindSensitive {
				continue
			}
			if m := Resolve(s, r); m.Kind == Safe {
				t.Errorf("settings %+v: sensitive %q resolved to safe", s, r.Command)
			}
		}
	}
}

func TestResolve_ValidAndRewritten(t *testing.T) {
	for _, r := range sampleResults()[:2] {
		auto := Resolve(config.Settings{AutoExecute: true, SafetyLevel: config.SafetyMedium}, r)
		if auto.Kind != Safe || !auto.CanExecute() || auto.RequiresConfirmation() {
			t.Errorf("%s with auto-execute: expected safe, got %s", r.Kind, auto)
		}

		manual := Resolve(config.Settings{SafetyLevel: config.SafetyHigh}, r)
		if manual.Kind != RequiresConfirmation {
			t.Fatalf("%s without auto-execute: expected confirmation, got %s", r.Kind, manual)
		}
		if !reflect.DeepEqual(manual.ConfirmationReasons(), []string{"auto-execute: off"}) {
			t.Errorf("unexpected reasons %v", manual.ConfirmationReasons())
		}
	}
}

func TestResolve_InvalidIsBlocked(t *testing.T) {
	r := validator.Invalid("x", []validator.ValidationError{
		{Kind: validator.PlaceholderDetected, Detail: "/path/to/"},
		{Kind: validator.HallucinatedFlag, Detail: "--frob"},
	})
	m := Resolve(config.Settings{AutoExecute: true, SafetyLevel: config.SafetyLow}, r)
	reason, ok := m.BlockReason()
	if !ok {
		t.Fatalf("expected blocked, got %s", m)
	}
	want := "Command validation failed: Placeholder detected: /path/to/, Hallucinated flag: --frob"
	if reason != want {
		t.Errorf("expected %q, got %q", want, reason)
	}
	if m.CanExecute() {
		t.Error("blocked mode must not be executable")
	}
}

func TestResolve_SensitiveReasons(t *testing.T) {
	r := validator.Sensitive("x", []validator.SecurityWarning{
		{Kind: validator.DataLoss, Message: "a"},
		{Kind: validator.SystemModification, Message: "b"},
		{Kind: validator.DangerousPattern, Message: "c"},
	})
	m := Resolve(config.Settings{AutoExecute: true, SafetyLevel: config.SafetyMedium}, r)
	want := []string{"Data Loss Risk: a", "System Modification: b", "Dangerous Pattern: c"}
	if m.Kind != RequiresConfirmation || !reflect.DeepEqual(m.Reasons, want) {
		t.Errorf("expected confirmation with %v, got %s", want, m)
	}
}

func TestResolve_HighSafetyBlocksDangerousPattern(t *testing.T) {
	r := validator.Default().Validate("rm -rf /")
	m := Resolve(config.Settings{SafetyLevel: config.SafetyHigh}, r)
	if reason, ok := m.BlockReason(); !ok || reason != "Command blocked due to high safety level" {
		t.Errorf("expected high safety block, got %s", m)
	}

	dataLossOnly := validator.Sensitive("rm -rf ~", []validator.SecurityWarning{{Kind: validator.DataLoss, Message: "m"}})
	if m := Resolve(config.Settings{SafetyLevel: config.SafetyHigh}, dataLossOnly); m.Kind != RequiresConfirmation {
		t.Errorf("expected confirmation without a dangerous pattern, got %s", m)
	}
}

func TestMode_DisplayPrefix(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Mode{Kind: DryRunOnly}, "DRY RUN: "},
		{Mode{Kind: Blocked, Reason: "nope"}, "BLOCKED (nope): "},
		{Mode{Kind: Safe}, ""},
		{Mode{Kind: RequiresConfirmation, Reasons: []string{"x"}}, ""},
		{Mode{Kind: SuggestOnly}, ""},
	}
	for _, tt := range tests {
		if got := tt.mode.DisplayPrefix(); got != tt.want {
			t.Errorf("mode %s: expected %q, got %q", tt.mode.Kind, tt.want, got)
		}
	}
}

func TestMode_Queries(t *testing.T) {
	if !(Mode{Kind: DryRunOnly}).IsDryRun() || (Mode{Kind: DryRunOnly}).CanExecute() {
		t.Error("dry-run must report IsDryRun and not be executable")
	}
	if (Mode{Kind: SuggestOnly}).CanExecute() {
		t.Error("suggest-only must not be executable")
	}
	if !(Mode{Kind: Blocked}).IsBlocked() {
		t.Error("expected IsBlocked")
	}
	if (Mode{Kind: Safe}).ConfirmationReasons() != nil {
		t.Error("safe mode has no confirmation reasons")
	}
	if _, ok := (Mode{Kind: Safe}).BlockReason(); ok {
		t.Error("safe mode has no block reason")
	}
}

func TestMode_Instructions(t *testing.T) {
	if (Mode{Kind: Safe}).Instructions() != "" {
		t.Error("safe mode needs no instructions")
	}
	if got := (Mode{Kind: Blocked, Reason: "r"}).Instructions(); !strings.HasSuffix(got, ": r") {
		t.Errorf("unexpected blocked instructions %q", got)
	}
	for _, k := range []Kind{SuggestOnly, DryRunOnly, RequiresConfirmation} {
		if (Mode{Kind: k}).Instructions() == "" {
			t.Errorf("mode %s: expected instructions", k)
		}
	}
}
