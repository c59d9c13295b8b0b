package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gzhole/aishell/internal/approval"
	"github.com/gzhole/aishell/internal/execution"
	"github.com/gzhole/aishell/internal/runner"
	"github.com/gzhole/aishell/internal/validator"
	"github.com/spf13/cobra"
)

var runTimeout time.Duration

var runCmd = &cobra.Command{
	Use:   "run [flags] -- <command> [args...]",
	Short: "Validate a suggested command and run it if allowed",
	Long: `Validate a suggested command, resolve its execution mode and act on it:
blocked and dry-run commands are only printed, commands that need
confirmation prompt first, and everything else runs in-process.

Example:
  aishell run -- ls --hidden
  aishell run --auto-execute -- 'test -d build && echo exists'

A suggestion spanning several lines runs as a multi-step plan: each line is
validated and confirmed on its own, and a failed step stops the plan when
the next line depends on it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCommand,
}

func init() {
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "Kill the command after this long (0 = no limit)")
	rootCmd.AddCommand(runCmd)
}

func runCommand(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	ex := &executor{
		sess:    sess,
		ask:     approval.Ask,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		timeout: runTimeout,
	}

	input := joinArgs(args)
	var out outcome
	if plan, ok := execution.ParseSteps(input); ok {
		out = ex.runPlan(cmd.Context(), plan)
	} else {
		out = ex.runOne(cmd.Context(), sess.evaluate(input))
	}

	if out.err != nil {
		return out.err
	}
	if out.code != 0 {
		os.Exit(out.code)
	}
	return nil
}

// executor carries a validated command from its resolved mode to the shell.
type executor struct {
	sess    *session
	ask     func(approval.Prompt) approval.Result
	stdout  io.Writer
	stderr  io.Writer
	timeout time.Duration
}

type outcome struct {
	code int
	halt bool // blocked or denied
	err  error
}

func (ex *executor) runOne(ctx context.Context, eval evaluation) outcome {
	event := eval.Event
	event.Env = os.Environ()
	w := ex.stderr

	printEvaluation(w, eval)

	if eval.Result.Kind == validator.KindValid && eval.Result.Command == validator.NoneSentinel {
		fmt.Fprintln(w, "No command was suggested. Nothing to run.")
		event.UserAction = "none"
		ex.sess.audit(event)
		return outcome{}
	}

	switch eval.Mode.Kind {
	case execution.Blocked:
		fmt.Fprintln(w, dangerStyle.Render("\n❌ BLOCKED"))
		event.UserAction = "blocked"
		ex.sess.audit(event)
		return outcome{code: 1, halt: true}

	case execution.DryRunOnly:
		fmt.Fprintf(w, "\n%s%s\n", eval.Mode.DisplayPrefix(), eval.Result.Command)
		event.UserAction = "dry_run"
		ex.sess.audit(event)
		return outcome{}

	case execution.RequiresConfirmation:
		result := ex.ask(approval.Prompt{
			Command:        eval.Result.Command,
			Original:       eval.Input,
			Fixes:          eval.Result.Fixes,
			TriggeredRules: eval.ruleIDs(),
			Reasons:        eval.Mode.ConfirmationReasons(),
		})
		event.UserAction = result.UserAction

		if !result.Approved {
			fmt.Fprintln(w, "\n❌ Command denied")
			ex.sess.audit(event)
			return outcome{code: 1, halt: true}
		}
		fmt.Fprintln(w, safeStyle.Render("\n✅ Approved - executing command..."))

	case execution.Safe:
		event.UserAction = "auto_execute"

	default:
		fmt.Fprintf(w, "%s\n", eval.Mode.Instructions())
		event.UserAction = "suggest_only"
		ex.sess.audit(event)
		return outcome{}
	}

	res, execErr := runner.Run(ctx, eval.Result.Command, runner.Options{
		Stdout:  ex.stdout,
		Stderr:  ex.stderr,
		Timeout: ex.timeout,
	})
	code := res.ExitCode
	event.ExitCode = &code
	if execErr != nil {
		event.Error = execErr.Error()
	}
	ex.sess.audit(event)

	return outcome{code: code, err: execErr}
}

// runPlan validates and runs each step on its own. A blocked or denied step
// ends the plan, as does a failed step whose successor depends on it.
func (ex *executor) runPlan(ctx context.Context, plan *execution.Plan) outcome {
	var last outcome
	for {
		step, ok := plan.Next()
		if !ok {
			return last
		}
		fmt.Fprintf(ex.stderr, "\n%s", plan.Format())

		last = ex.runOne(ctx, ex.sess.evaluate(step.Command))
		if last.err != nil || last.halt {
			return last
		}
		if !plan.Complete(last.code == 0) {
			fmt.Fprintln(ex.stderr, dangerStyle.Render(
				fmt.Sprintf("\n❌ Step %d failed; the next step depends on it, stopping", step.Number)))
			return last
		}
	}
}
