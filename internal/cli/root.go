package cli

import (
	"github.com/spf13/cobra"
)

var (
	configPath  string
	policyPath  string
	logPath     string
	dryRun      bool
	autoExecute bool
)

var rootCmd = &cobra.Command{
	Use:   "aishell",
	Short: "aishell - safety gate for model-suggested shell commands",
	Long: `aishell sits between a language model and your terminal. Every suggested
command is tokenized, checked against a table of dangerous patterns, repaired
where the model got flags, quoting or existence checks wrong, and then mapped
to an execution mode (run, confirm, dry run or block) based on your settings.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to settings YAML file (default: ~/.aishell/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&policyPath, "policy", "", "Path to policy YAML file (default: ~/.aishell/policy.yaml)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to audit log file (default: ~/.aishell/audit.jsonl)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Show what would run without executing (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&autoExecute, "auto-execute", false, "Run safe commands without confirmation (overrides config)")
}

func Execute() error {
	return rootCmd.Execute()
}
