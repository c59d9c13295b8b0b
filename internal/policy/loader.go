package policy

import (
	"fmt"
	"os"

	"github.com/gzhole/aishell/internal/analyzer"
	"gopkg.in/yaml.v3"
)

// Load reads a policy file. A missing file yields DefaultPolicy. Sections
// left out of the file keep their built-in values.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPolicy(), nil
		}
		return nil, err
	}

	var policy Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("failed to parse policy %s: %w", path, err)
	}

	def := DefaultPolicy()
	if policy.Version == "" {
		policy.Version = def.Version
	}
	if policy.Patterns == nil {
		policy.Patterns = def.Patterns
	}
	if policy.Placeholders == nil {
		policy.Placeholders = def.Placeholders
	}
	if policy.HallucinatedFlags == nil {
		policy.HallucinatedFlags = def.HallucinatedFlags
	}
	if policy.Rewrites == nil {
		policy.Rewrites = def.Rewrites
	}

	return &policy, nil
}

// DefaultPolicy returns the built-in rule data.
func DefaultPolicy() *Policy {
	builtin := analyzer.DefaultRules()
	patterns := make([]PatternRule, 0, len(builtin))
	for _, r := range builtin {
		patterns = append(patterns, PatternRule{
			ID:          r.ID,
			Regex:       r.Regex,
			Severity:    string(r.Severity),
			Description: r.Description,
			Suggestion:  r.Suggestion,
		})
	}

	return &Policy{
		Version:  "0.1",
		Patterns: patterns,
		Placeholders: []string{
			`/path/to/`,
			`<[^<>\s]+>`,
			`\[[A-Z_][A-Z_]*\]`,
			`\{[A-Z_][A-Z_]*\}`,
			`your_?file`,
			`example\.`,
			`\bfilename\b`,
			`\bdirname\b`,
		},
		HallucinatedFlags: []string{
			"--hidden",
			"--recursivee",
			"--all",
			"--long",
			"--list",
			"--detailed",
			"--case-insensitive",
			"--ignore-case",
		},
		Rewrites: []Rewrite{
			{From: "--recursivee", To: "-r"},
			{From: "--case-insensitive", To: "-i"},
			{From: "--ignore-case", To: "-i"},
			{From: "--detailed", To: "-la"},
			{From: "--hidden", To: "-a"},
			{From: "--all", To: "-a"},
			{From: "--long", To: "-l"},
			{From: "--list", To: "-l"},
		},
	}
}
