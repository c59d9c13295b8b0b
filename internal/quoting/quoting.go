// Package quoting decides when a path needs shell quoting and spots quoting
// shapes that point at command injection.
package quoting

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gzhole/aishell/internal/shell"
)

// specialChars are the characters that make an unquoted path unsafe to
// paste into a command line.
const specialChars = " \t*?[](){}$`\"'\\|&;<>"

// IsQuoted reports whether s is wrapped in a matching pair of single or
// double quotes.
func IsQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return (first == '\'' || first == '"') && first == last
}

// NeedsQuoting reports whether path contains whitespace or a shell
// metacharacter.
func NeedsQuoting(path string) bool {
	return strings.ContainsAny(path, specialChars)
}

// QuotePath returns path in a form safe to use as a single shell word.
// Already quoted and plain paths are returned unchanged, so QuotePath is
// idempotent. Single quotes are preferred; a path that itself contains a
// single quote is double-quoted with \ " $ and ` escaped.
func QuotePath(path string) string {
	if IsQuoted(path) || !NeedsQuoting(path) {
		return path
	}
	if !strings.Contains(path, "'") {
		return "'" + path + "'"
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range path {
		switch r {
		case '\\', '"', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// IssueKind classifies a quoting problem.
type IssueKind int

const (
	InjectionRisk IssueKind = iota
	UnclosedQuote
)

func (k IssueKind) String() string {
	switch k {
	case InjectionRisk:
		return "injection-risk"
	case UnclosedQuote:
		return "unclosed-quote"
	default:
		return "unknown"
	}
}

// Issue is one quoting problem found in a command.
type Issue struct {
	Kind   IssueKind
	Detail string
}

// Message is the user-facing form of the issue.
func (i Issue) Message() string {
	if i.Kind == InjectionRisk {
		return "Injection risk: " + i.Detail
	}
	return i.Detail
}

// Corrector looks for injection shapes: a command separator or pipe feeding
// a variable expansion, and variables inside backtick substitution.
type Corrector struct {
	injection []*regexp.Regexp
}

func NewCorrector() *Corrector {
	return &Corrector{
		injection: []*regexp.Regexp{
			regexp.MustCompile(`;.*\$\{?[A-Za-z_]`),
			regexp.MustCompile(`\|\s*\$\{?[A-Za-z_]`),
			regexp.MustCompile("`[^`]*\\$\\{?[A-Za-z_][^`]*`"),
		},
	}
}

// Analyze reports at most one injection issue per shape, in a fixed order.
// The whole command is inspected, quoted text included.
func (c *Corrector) Analyze(command string) []Issue {
	var issues []Issue
	for _, re := range c.injection {
		if m := re.FindString(command); m != "" {
			issues = append(issues, Issue{Kind: InjectionRisk, Detail: m})
		}
	}
	return issues
}

// CheckBalance returns an UnclosedQuote issue when command ends inside a
// quoted run. Backslash escapes follow the tokenizer: it escapes the next
// character outside single quotes and is literal inside them.
func CheckBalance(command string) *Issue {
	_, err := shell.Tokenize(command)
	if err == nil {
		return nil
	}
	detail := "Unclosed single quote"
	var pe *shell.ParseError
	if errors.As(err, &pe) && pe.Quote == shell.DoubleQuote {
		detail = "Unclosed double quote"
	}
	return &Issue{Kind: UnclosedQuote, Detail: detail}
}

// Guidelines is the short list of quoting rules shown to users.
func Guidelines() []string {
	return []string{
		"Use single quotes for literal strings (no variable expansion)",
		"Use double quotes when you need variable expansion",
		"Always quote paths with spaces or special characters",
		`Quote variables to prevent word splitting: "$var" not $var`,
		"Avoid mixing single and double quotes unnecessarily",
	}
}
