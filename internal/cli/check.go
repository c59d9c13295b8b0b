package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gzhole/aishell/internal/redact"
	"github.com/spf13/cobra"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check [flags] -- <command> [args...]",
	Short: "Validate a suggested command without running it",
	Long: `Validate a suggested command and show the verdict, the execution mode it
resolves to and any fixes, errors or warnings. Nothing is executed.
Exits with status 1 when the command is blocked.

Examples:
  aishell check -- ls --hidden
  aishell check --json -- 'rm -rf /'`,
	Args: cobra.MinimumNArgs(1),
	RunE: checkCommand,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the verdict as JSON")
	rootCmd.AddCommand(checkCmd)
}

// checkReport is the --json shape of a verdict.
type checkReport struct {
	Input        string   `json:"input"`
	Command      string   `json:"command"`
	Result       string   `json:"result"`
	Mode         string   `json:"mode"`
	Fixes        []string `json:"fixes,omitempty"`
	Errors       []string `json:"errors,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`
	Rules        []string `json:"rules,omitempty"`
	Reasons      []string `json:"reasons,omitempty"`
	BlockReason  string   `json:"block_reason,omitempty"`
	Credentials  []string `json:"credentials,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
	DurationMS   float64  `json:"duration_ms"`
}

func newCheckReport(e evaluation) checkReport {
	report := checkReport{
		Input:        e.Input,
		Command:      e.Result.Command,
		Result:       e.Result.Kind.String(),
		Mode:         e.Mode.Kind.String(),
		Fixes:        e.Event.Fixes,
		Errors:       e.Event.Errors,
		Warnings:     e.Event.Warnings,
		Rules:        e.ruleIDs(),
		Reasons:      e.Mode.ConfirmationReasons(),
		Credentials:  redact.Detect(e.Input),
		Instructions: e.Mode.Instructions(),
		DurationMS:   e.Event.DurationMS,
	}
	if reason, ok := e.Mode.BlockReason(); ok {
		report.BlockReason = reason
	}
	if len(report.Rules) == 0 {
		report.Rules = nil
	}
	return report
}

func writeCheckJSON(w io.Writer, e evaluation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newCheckReport(e))
}

func checkCommand(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	eval := sess.evaluate(joinArgs(args))

	eval.Event.UserAction = "check"
	sess.audit(eval.Event)

	if checkJSON {
		if err := writeCheckJSON(os.Stdout, eval); err != nil {
			return fmt.Errorf("failed to encode verdict: %w", err)
		}
	} else {
		printEvaluation(os.Stdout, eval)
	}

	if eval.Mode.IsBlocked() {
		os.Exit(1)
	}
	return nil
}
