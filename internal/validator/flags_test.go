package validator

import (
	"testing"

	"github.com/gzhole/aishell/internal/policy"
)

func TestReplaceFlag(t *testing.T) {
	tests := []struct {
		in, from, to, want string
	}{
		{"ls --all", "--all", "-a", "ls -a"},
		{"ls --all --all", "--all", "-a", "ls -a -a"},
		{"ls --all-files", "--all", "-a", "ls --all-files"},
		{"find . --name=x", "--name", "-name", "find . -name=x"},
		{"--all", "--all", "-a", "-a"},
		{"echo a--all", "--all", "-a", "echo a--all"},
		{"ls\t--all", "--all", "-a", "ls\t-a"},
	}
	for _, tt := range tests {
		if got := replaceFlag(tt.in, tt.from, tt.to); got != tt.want {
			t.Errorf("replace %s in %q: expected %q, got %q", tt.from, tt.in, tt.want, got)
		}
	}
}

func TestDetectFlags_DictionaryOrder(t *testing.T) {
	dict := []string{"--hidden", "--all", "--long"}
	got := detectFlags("ls --long --all", dict)
	if len(got) != 2 || got[0] != "--all" || got[1] != "--long" {
		t.Errorf("expected [--all --long], got %v", got)
	}
	if got := detectFlags("ls --hiddenx", dict); len(got) != 0 {
		t.Errorf("expected no flags, got %v", got)
	}
}

func TestApplyRewrites_OnlyDetectedFlags(t *testing.T) {
	rewrites := []policy.Rewrite{
		{From: "--ignore-case", To: "-i"},
		{From: "--recursive", To: "-r"},
	}
	got := applyRewrites("grep --ignore-case --recursive foo .", rewrites, []string{"--ignore-case"})
	if want := "grep -i --recursive foo ."; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
