package validator

import (
	"regexp"
	"strings"

	"github.com/gzhole/aishell/internal/quoting"
)

const (
	existsBranch = "&& echo 'exists' || echo 'not found'"
	existsSuffix = " " + existsBranch

	fixExistenceCheck = "Standardized file existence check format"
)

// pathArg matches one path argument: a quoted string, or unquoted text up to
// the next shell operator (spaces allowed, they are quoted afterwards).
const pathArg = `('[^']*'|"[^"]*"|[^&|;<>'"]+?)`

var (
	testTail    = regexp.MustCompile(`\btest\s+-([fd])\s+` + pathArg + `\s*$`)
	bracketTest = regexp.MustCompile(`\[\s+-([fd])\s+([^\]]+?)\s*\]`)
	statTail    = regexp.MustCompile(`\bstat\s+` + pathArg + `\s*$`)
	lsTail      = regexp.MustCompile(`(^|[;&|]\s*)ls\s+('[^']*'|"[^"]*"|[^\s&|;<>'"]+)\s*$`)
)

// canonicalizeExistence rewrites the common ways of asking "does X exist"
// into `test -f|-d X && echo 'exists' || echo 'not found'`. A command that
// already carries the canonical branch is returned as is.
func canonicalizeExistence(cmd string) string {
	if strings.Contains(cmd, existsBranch) {
		return cmd
	}

	out := rewriteTestTail(cmd)
	out = rewriteBrackets(out)
	if strings.Contains(out, existsBranch) {
		return out
	}
	out = rewriteStatTail(out)
	if strings.Contains(out, existsBranch) {
		return out
	}
	return rewriteLsTail(out)
}

func rewriteTestTail(cmd string) string {
	m := testTail.FindStringSubmatchIndex(cmd)
	if m == nil {
		return cmd
	}
	flag := cmd[m[2]:m[3]]
	path := strings.TrimSpace(cmd[m[4]:m[5]])
	return cmd[:m[0]] + "test -" + flag + " " + quoting.QuotePath(path) + existsSuffix
}

// rewriteBrackets turns `[ -f X ]` into `test -f X`. When the bracket test
// already feeds && or || the caller's branches are kept; when it ends the
// command the canonical branch is appended. Other positions, and [[ ]],
// are left alone.
func rewriteBrackets(cmd string) string {
	matches := bracketTest.FindAllStringSubmatchIndex(cmd, -1)
	if matches == nil {
		return cmd
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if (start > 0 && cmd[start-1] == '[') || (end < len(cmd) && cmd[end] == ']') {
			continue
		}

		rest := strings.TrimLeft(cmd[end:], " \t")
		flag := cmd[m[2]:m[3]]
		path := strings.TrimSpace(cmd[m[4]:m[5]])
		replacement := "test -" + flag + " " + quoting.QuotePath(path)

		switch {
		case strings.HasPrefix(rest, "&&") || strings.HasPrefix(rest, "||"):
		case rest == "":
			replacement += existsSuffix
			end = len(cmd)
		default:
			continue
		}

		b.WriteString(cmd[last:start])
		b.WriteString(replacement)
		last = end
	}
	b.WriteString(cmd[last:])
	return b.String()
}

func rewriteStatTail(cmd string) string {
	if strings.Contains(cmd, "&&") {
		return cmd
	}
	m := statTail.FindStringSubmatchIndex(cmd)
	if m == nil {
		return cmd
	}
	path := strings.TrimSpace(cmd[m[2]:m[3]])
	if strings.HasPrefix(path, "-") {
		return cmd
	}
	return cmd[:m[0]] + "stat " + quoting.QuotePath(path) + " >/dev/null 2>&1" + existsSuffix
}

func rewriteLsTail(cmd string) string {
	m := lsTail.FindStringSubmatchIndex(cmd)
	if m == nil {
		return cmd
	}
	path := cmd[m[4]:m[5]]
	if strings.HasPrefix(path, "-") {
		return cmd
	}
	return cmd[:m[3]] + "test -f " + quoting.QuotePath(path) + existsSuffix
}
