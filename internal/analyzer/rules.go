package analyzer

// DefaultRules is the built-in sensitive pattern table. Order matters only
// for the order findings are reported in; every pattern is always checked.
func DefaultRules() []PatternRule {
	return []PatternRule{
		// Fork bombs
		{
			ID:          "fork-bomb",
			Regex:       `:\(\)\s*\{.*:\s*\|.*:\s*&.*\}.*:`,
			Severity:    SeverityBlocked,
			Description: "Fork bomb detected - this will consume all system resources",
			Suggestion:  "Fork bombs are never safe to execute",
		},
		{
			ID:          "fork-bomb-named",
			Regex:       `bomb\(\)\s*\{.*bomb.*\|.*bomb.*&.*\}.*bomb`,
			Severity:    SeverityBlocked,
			Description: "Fork bomb pattern detected",
			Suggestion:  "This pattern creates infinite processes",
		},

		// Pipe-to-shell
		{
			ID:          "pipe-to-shell",
			Regex:       `\b(curl|wget|fetch)\s+[^|]*\|\s*(sh|bash|zsh|fish)\b`,
			Severity:    SeverityDangerous,
			Description: "Pipe-to-shell detected - executing remote code",
			Suggestion:  "Download and inspect the script before executing",
		},
		{
			ID:          "pipe-to-shell-silent",
			Regex:       `\b(curl|wget|fetch)\b.*\s(-[A-Za-z]*s|--silent).*\|\s*(sh|bash|zsh|fish)\b`,
			Severity:    SeverityDangerous,
			Description: "Silent download piped to shell - very dangerous",
			Suggestion:  "Remove -s flag and inspect the script first",
		},

		// rm, most specific first
		{
			ID:          "rm-rf-root",
			Regex:       `\brm\s+-rf\s+/\s*$`,
			Severity:    SeverityBlocked,
			Description: "rm -rf / will destroy your entire system",
			Suggestion:  "This command is never safe",
		},
		{
			ID:          "rm-system-or-home",
			Regex:       `\brm\s+(-[rfRF]*\s+)*(/|\*|~|\$HOME)`,
			Severity:    SeverityDangerous,
			Description: "Dangerous rm command on system/home directories",
			Suggestion:  "Be very careful with recursive deletions",
		},

		// Permissions and ownership
		{
			ID:          "chmod-777",
			Regex:       `\bchmod\s+777\b`,
			Severity:    SeverityWarning,
			Description: "chmod 777 makes files world-writable (security risk)",
			Suggestion:  "Use more restrictive permissions like 755 or 644",
		},
		{
			ID:          "chmod-recursive-777",
			Regex:       `\bchmod\s+-R\s+777\b`,
			Severity:    SeverityDangerous,
			Description: "Recursive chmod 777 is a major security risk",
			Suggestion:  "Use specific permissions for specific files",
		},
		{
			ID:          "chown-recursive-root",
			Regex:       `\bchown\s+-R\s+[^/]*\s+/`,
			Severity:    SeverityDangerous,
			Description: "Recursive chown on system directory",
			Suggestion:  "Be very careful changing ownership of system files",
		},

		// Disk operations
		{
			ID:          "dd-to-device",
			Regex:       `\bdd\s+.*of=/dev/`,
			Severity:    SeverityDangerous,
			Description: "dd command writing to device - can destroy data",
			Suggestion:  "Double-check the output device path",
		},
		{
			ID:          "dd-zero-fill",
			Regex:       `\bdd\s+.*if=/dev/zero.*of=`,
			Severity:    SeverityDangerous,
			Description: "dd command overwriting with zeros - will destroy data",
			Suggestion:  "Ensure you have the correct output path",
		},
		{
			ID:          "mkfs",
			Regex:       `\bmkfs\.`,
			Severity:    SeverityDangerous,
			Description: "mkfs command creates new filesystem, destroying existing data",
			Suggestion:  "Backup data before creating new filesystem",
		},
		{
			ID:          "fdisk",
			Regex:       `\bfdisk\s+`,
			Severity:    SeverityDangerous,
			Description: "fdisk modifies disk partitions",
			Suggestion:  "Backup partition table before making changes",
		},
		{
			ID:          "redirect-to-disk",
			Regex:       `>\s*/dev/(sd[a-z]|nvme[0-9])`,
			Severity:    SeverityDangerous,
			Description: "Writing directly to disk device",
			Suggestion:  "This can destroy data on the disk",
		},
		{
			ID:          "cat-to-disk",
			Regex:       `\bcat\s+.*>\s*/dev/(sd[a-z]|nvme[0-9])`,
			Severity:    SeverityDangerous,
			Description: "Writing file content directly to disk device",
			Suggestion:  "This will overwrite disk data",
		},
	}
}
