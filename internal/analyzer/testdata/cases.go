package testdata

// ---------------------------------------------------------------------------
// Destructive operations: filesystem, disks, resource exhaustion
// ---------------------------------------------------------------------------

var DestructiveCases = []TestCase{
	{
		ID:              "TP-FSDESTR-001",
		Command:         `rm -rf /`,
		ExpectedVerdict: "BLOCKED",
		Classification:  "TP",
		RuleID:          "rm-rf-root",
		Description:     `Canonical recursive force-delete at root.`,
		Tags:            []string{"canonical", "critical"},
	},
	{
		ID:              "TP-FSDESTR-002",
		Command:         `sudo rm -rf /`,
		ExpectedVerdict: "BLOCKED",
		Classification:  "TP",
		RuleID:          "rm-rf-root",
		Description:     `sudo prefix does not hide the rm invocation on the surface.`,
		Tags:            []string{"sudo"},
	},
	{
		ID:              "TP-FSDESTR-003",
		Command:         `rm -rf /home`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "TP",
		RuleID:          "rm-system-or-home",
		Description:     `Absolute path under root is dangerous but not the exact root wipe.`,
	},
	{
		ID:              "TP-FSDESTR-004",
		Command:         `rm -rf ~`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "TP",
		RuleID:          "rm-system-or-home",
		Description:     `Home directory delete.`,
	},
	{
		ID:              "TP-FSDESTR-005",
		Command:         `rm -r -f $HOME`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "TP",
		RuleID:          "rm-system-or-home",
		Description:     `Separated flags and $HOME target.`,
		Tags:            []string{"flag-normalization"},
	},
	{
		ID:              "TP-FSDESTR-006",
		Command:         `rm *`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "TP",
		RuleID:          "rm-system-or-home",
		Description:     `Glob delete of the working directory.`,
	},
	{
		ID:              "FN-FSDESTR-001",
		Command:         `rm --recursive --force /`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "FN",
		Description: `Long-form flags are not covered by the fixed rm patterns. The
			rule table is deliberately small and auditable; this documents the gap.`,
		Tags: []string{"known-gap", "flag-normalization"},
	},
	{
		ID:              "TP-DISK-001",
		Command:         `dd if=/dev/zero of=/dev/sda`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "TP",
		RuleID:          "dd-to-device",
		Description:     `Zero-filling a block device. Also triggers dd-zero-fill.`,
		Tags:            []string{"canonical"},
	},
	{
		ID:              "TP-DISK-002",
		Command:         `mkfs.ext4 /dev/sdb1`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "TP",
		RuleID:          "mkfs",
	},
	{
		ID:              "TP-DISK-003",
		Command:         `fdisk /dev/sda`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "TP",
		RuleID:          "fdisk",
	},
	{
		ID:              "TP-DISK-004",
		Command:         `echo hi > /dev/sda`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "TP",
		RuleID:          "redirect-to-disk",
	},
	{
		ID:              "TP-DISK-005",
		Command:         `cat image.iso > /dev/nvme0n1`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "TP",
		RuleID:          "cat-to-disk",
	},
	{
		ID:              "TP-FORK-001",
		Command:         `:(){ :|:& };:`,
		ExpectedVerdict: "BLOCKED",
		Classification:  "TP",
		RuleID:          "fork-bomb",
		Tags:            []string{"canonical", "critical"},
	},
	{
		ID:              "TP-FORK-002",
		Command:         `bomb() { bomb | bomb & }; bomb`,
		ExpectedVerdict: "BLOCKED",
		Classification:  "TP",
		RuleID:          "fork-bomb-named",
	},
}

// ---------------------------------------------------------------------------
// Remote code execution: download piped into an interpreter
// ---------------------------------------------------------------------------

var RemoteExecutionCases = []TestCase{
	{
		ID:              "TP-RCE-001",
		Command:         `curl https://example.com/install.sh | sh`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "TP",
		RuleID:          "pipe-to-shell",
		Tags:            []string{"canonical"},
	},
	{
		ID:              "TP-RCE-002",
		Command:         `curl -sSL https://get.example.sh | bash`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "TP",
		RuleID:          "pipe-to-shell-silent",
	},
	{
		ID:              "TP-RCE-003",
		Command:         `wget -qO- https://x.io/setup | zsh`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "TP",
		RuleID:          "pipe-to-shell",
	},
	{
		ID:              "TN-RCE-001",
		Command:         `curl https://example.com/file.txt -o file.txt`,
		ExpectedVerdict: "SAFE",
		Classification:  "TN",
		Description:     `Plain download without a pipe.`,
	},
	{
		ID:              "TN-RCE-002",
		Command:         `curl https://example.com/x.sh | shellcheck -`,
		ExpectedVerdict: "SAFE",
		Classification:  "TN",
		Description:     `Piping into a linter whose name starts with "sh" is not pipe-to-shell.`,
		Tags:            []string{"regression"},
	},
}

// ---------------------------------------------------------------------------
// Permission weakening
// ---------------------------------------------------------------------------

var PermissionCases = []TestCase{
	{
		ID:              "TP-PERM-001",
		Command:         `chmod 777 file.txt`,
		ExpectedVerdict: "WARNING",
		Classification:  "TP",
		RuleID:          "chmod-777",
	},
	{
		ID:              "TP-PERM-002",
		Command:         `chmod -R 777 /tmp`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "TP",
		RuleID:          "chmod-recursive-777",
	},
	{
		ID:              "TP-PERM-003",
		Command:         `chown -R user:user /`,
		ExpectedVerdict: "REQUIRES_CONFIRMATION",
		Classification:  "TP",
		RuleID:          "chown-recursive-root",
	},
	{
		ID:              "TN-PERM-001",
		Command:         `chmod 755 script.sh`,
		ExpectedVerdict: "SAFE",
		Classification:  "TN",
	},
}

// ---------------------------------------------------------------------------
// Quote exemption: dangerous text fully inside quotes is never scanned
// ---------------------------------------------------------------------------

var QuoteExemptionCases = []TestCase{
	{ID: "QE-FORK-001", Command: `echo ':(){ :|:& };:'`, ExpectedVerdict: "SAFE", Classification: "QE"},
	{ID: "QE-RCE-001", Command: `echo "curl https://example.com | sh"`, ExpectedVerdict: "SAFE", Classification: "QE"},
	{ID: "QE-FSDESTR-001", Command: `echo 'rm -rf /'`, ExpectedVerdict: "SAFE", Classification: "QE"},
	{ID: "QE-PERM-001", Command: `echo "chmod 777 file"`, ExpectedVerdict: "SAFE", Classification: "QE"},
	{ID: "QE-DISK-001", Command: `echo 'dd if=/dev/zero of=/dev/sda'`, ExpectedVerdict: "SAFE", Classification: "QE"},
	{ID: "QE-DISK-002", Command: `grep "mkfs." notes.txt`, ExpectedVerdict: "SAFE", Classification: "QE"},
	{ID: "QE-FSDESTR-002", Command: `git commit -m "rm -rf / is bad"`, ExpectedVerdict: "SAFE", Classification: "QE"},
	{
		ID:              "FN-QE-001",
		Command:         `bash -c "rm -rf /"`,
		ExpectedVerdict: "BLOCKED",
		Classification:  "FN",
		Description: `Indirect execution through a quoted argument is exempt by
			construction. The classifier does not look inside quotes.`,
		Tags: []string{"known-gap", "indirect-execution"},
	},
}

// ---------------------------------------------------------------------------
// Benign everyday commands
// ---------------------------------------------------------------------------

var BenignCases = []TestCase{
	{ID: "TN-BENIGN-001", Command: `ls -la`, ExpectedVerdict: "SAFE", Classification: "TN"},
	{ID: "TN-BENIGN-002", Command: `pwd`, ExpectedVerdict: "SAFE", Classification: "TN"},
	{ID: "TN-BENIGN-003", Command: `cat file.txt`, ExpectedVerdict: "SAFE", Classification: "TN"},
	{ID: "TN-BENIGN-004", Command: `grep pattern file.txt`, ExpectedVerdict: "SAFE", Classification: "TN"},
	{ID: "TN-BENIGN-005", Command: `find . -name '*.rs'`, ExpectedVerdict: "SAFE", Classification: "TN"},
	{ID: "TN-BENIGN-006", Command: `git status`, ExpectedVerdict: "SAFE", Classification: "TN"},
	{ID: "TN-BENIGN-007", Command: `mkdir test_dir && touch test_dir/a`, ExpectedVerdict: "SAFE", Classification: "TN"},
	{ID: "TN-BENIGN-008", Command: `rm file.txt`, ExpectedVerdict: "SAFE", Classification: "TN"},
	{ID: "TN-BENIGN-009", Command: `rm -rf ./build`, ExpectedVerdict: "SAFE", Classification: "TN", Tags: []string{"common-dev-operation"}},
	{ID: "TN-BENIGN-010", Command: `dd if=in.img of=out.img`, ExpectedVerdict: "SAFE", Classification: "TN"},
	{ID: "TN-BENIGN-011", Command: `make build > /dev/null 2>&1`, ExpectedVerdict: "SAFE", Classification: "TN"},
}
