package validator

import (
	"strings"

	"github.com/gzhole/aishell/internal/policy"
)

// indexFlag finds flag in s starting at from, as a whole word: preceded by
// start of input or whitespace and followed by end, whitespace or '='.
func indexFlag(s, flag string, from int) int {
	for i := from; i <= len(s)-len(flag); {
		j := strings.Index(s[i:], flag)
		if j < 0 {
			return -1
		}
		j += i
		end := j + len(flag)
		before := j == 0 || s[j-1] == ' ' || s[j-1] == '\t'
		after := end == len(s) || s[end] == ' ' || s[end] == '\t' || s[end] == '='
		if before && after {
			return j
		}
		i = j + 1
	}
	return -1
}

func hasFlag(s, flag string) bool {
	return indexFlag(s, flag, 0) >= 0
}

func replaceFlag(s, from, to string) string {
	var b strings.Builder
	last := 0
	for {
		j := indexFlag(s, from, last)
		if j < 0 {
			break
		}
		b.WriteString(s[last:j])
		b.WriteString(to)
		last = j + len(from)
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// detectFlags returns the dictionary flags present in cmd, in dictionary
// order.
func detectFlags(cmd string, dictionary []string) []string {
	var found []string
	for _, flag := range dictionary {
		if hasFlag(cmd, flag) {
			found = append(found, flag)
		}
	}
	return found
}

// applyRewrites replaces only the flags in found, using the rewrite table in
// order. Table entries for flags that were not detected are left alone, so a
// valid long flag elsewhere in the command is never touched.
func applyRewrites(cmd string, rewrites []policy.Rewrite, found []string) string {
	for _, r := range rewrites {
		if !contains(found, r.From) {
			continue
		}
		cmd = replaceFlag(cmd, r.From, r.To)
	}
	return cmd
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
