package approval

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Result struct {
	Approved   bool
	UserAction string
}

// Prompt describes a command waiting for the user's go-ahead.
type Prompt struct {
	Command        string
	Original       string
	Fixes          []string
	TriggeredRules []string
	Reasons        []string
	DryRun         bool
}

// Asker reads the user's decision from In and writes the prompt to Out.
// Interactive reports whether In is a terminal; when it is false every
// prompt is denied without reading input.
type Asker struct {
	In          io.Reader
	Out         io.Writer
	Interactive bool
}

// Stdio returns an Asker bound to the process's stdin/stderr.
func Stdio() *Asker {
	return &Asker{In: os.Stdin, Out: os.Stderr, Interactive: IsInteractive()}
}

func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func Ask(p Prompt) Result {
	return Stdio().Ask(p)
}

func (a *Asker) Ask(p Prompt) Result {
	if !a.Interactive {
		return Result{
			Approved:   false,
			UserAction: "auto_deny_non_interactive",
		}
	}

	out := a.Out
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "╔══════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(out, "║              ⚠️  CONFIRMATION REQUIRED                        ║")
	fmt.Fprintln(out, "╚══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(out, "")
	if p.Original != "" && p.Original != p.Command {
		fmt.Fprintf(out, "Suggested: %s\n", p.Original)
	}
	fmt.Fprintf(out, "Command:   %s\n", p.Command)
	fmt.Fprintln(out, "")

	if len(p.Fixes) > 0 {
		fmt.Fprintln(out, "Fixes applied:")
		for _, fix := range p.Fixes {
			fmt.Fprintf(out, "  • %s\n", fix)
		}
	}

	if len(p.TriggeredRules) > 0 {
		fmt.Fprintf(out, "Triggered rules: %s\n", strings.Join(p.TriggeredRules, ", "))
	}

	if len(p.Reasons) > 0 {
		fmt.Fprintln(out, "Reasons:")
		for _, reason := range p.Reasons {
			fmt.Fprintf(out, "  • %s\n", reason)
		}
	}

	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Options:")
	if p.DryRun {
		fmt.Fprintln(out, "  [a] Approve - show what would run")
	} else {
		fmt.Fprintln(out, "  [a] Approve once - execute this command")
	}
	fmt.Fprintln(out, "  [d] Deny - do not run this command")
	fmt.Fprintln(out, "")

	reader := bufio.NewReader(a.In)

	for {
		fmt.Fprint(out, "Your choice [a/d]: ")
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			return Result{
				Approved:   false,
				UserAction: "error_reading_input",
			}
		}

		input = strings.TrimSpace(strings.ToLower(input))

		switch input {
		case "a", "approve", "yes", "y":
			return Result{
				Approved:   true,
				UserAction: "approve_once",
			}
		case "d", "deny", "no", "n":
			return Result{
				Approved:   false,
				UserAction: "deny",
			}
		default:
			if err != nil {
				return Result{Approved: false, UserAction: "error_reading_input"}
			}
			fmt.Fprintln(out, "Invalid input. Please enter 'a' to approve or 'd' to deny.")
		}
	}
}
