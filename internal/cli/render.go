package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gzhole/aishell/internal/execution"
	"github.com/gzhole/aishell/internal/redact"
	"github.com/gzhole/aishell/internal/validator"
)

var (
	colorSafe    = lipgloss.Color("#10B981")
	colorWarn    = lipgloss.Color("#F59E0B")
	colorDanger  = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorCommand = lipgloss.Color("#60A5FA")

	safeStyle = lipgloss.NewStyle().
			Foreground(colorSafe).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarn).
			Bold(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	commandStyle = lipgloss.NewStyle().
			Foreground(colorCommand)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

func modeStyle(m execution.Mode) lipgloss.Style {
	switch m.Kind {
	case execution.Safe:
		return safeStyle
	case execution.Blocked:
		return dangerStyle
	default:
		return warnStyle
	}
}

func resultStyle(r validator.Result) lipgloss.Style {
	switch r.Kind {
	case validator.KindValid, validator.KindRewritten:
		return safeStyle
	case validator.KindInvalid:
		return dangerStyle
	default:
		return warnStyle
	}
}

// printEvaluation writes the human-readable verdict for one command.
func printEvaluation(w io.Writer, e evaluation) {
	r := e.Result
	fmt.Fprintf(w, "%s %s\n", dimStyle.Render("Input:  "), e.Input)
	fmt.Fprintf(w, "%s %s%s\n", dimStyle.Render("Command:"), e.Mode.DisplayPrefix(), commandStyle.Render(r.Command))
	fmt.Fprintf(w, "%s %s\n", dimStyle.Render("Result: "), resultStyle(r).Render(r.Kind.String()))
	fmt.Fprintf(w, "%s %s\n", dimStyle.Render("Mode:   "), modeStyle(e.Mode).Render(e.Mode.Kind.String()))

	for _, fix := range r.Fixes {
		fmt.Fprintf(w, "  %s %s\n", safeStyle.Render("fix"), fix)
	}
	for _, err := range r.Errors {
		fmt.Fprintf(w, "  %s %s\n", dangerStyle.Render("error"), err.Error())
	}
	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "  %s %s\n", warnStyle.Render("warning"), warning.String())
	}
	if ids := e.ruleIDs(); len(ids) > 0 {
		fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("rules"), strings.Join(ids, ", "))
	}
	for _, reason := range e.Mode.ConfirmationReasons() {
		fmt.Fprintf(w, "  %s %s\n", warnStyle.Render("confirm"), reason)
	}
	if kinds := redact.Detect(e.Input); len(kinds) > 0 {
		fmt.Fprintf(w, "  %s command contains credentials (%s); they are redacted in the audit log\n",
			warnStyle.Render("note"), strings.Join(kinds, ", "))
	}
	if hint := e.Mode.Instructions(); hint != "" {
		fmt.Fprintln(w, dimStyle.Render(hint))
	}
}

func warnf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
