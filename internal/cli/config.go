package cli

import (
	"fmt"

	"github.com/gzhole/aishell/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change settings",
	Long: `View or change the settings in ~/.aishell/config.yaml.

Keys: dry_run (bool), auto_execute (bool), safety_level (low, medium, high).

  aishell config show
  aishell config set safety_level high`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings and file locations",
	RunE:  configShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  configSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func configShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, policyPath, logPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cmd, &cfg.Settings)

	data, err := yaml.Marshal(cfg.Settings)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", dimStyle.Render("config:"), cfg.ConfigPath)
	fmt.Printf("%s %s\n", dimStyle.Render("policy:"), cfg.PolicyPath)
	fmt.Printf("%s %s\n", dimStyle.Render("log:   "), cfg.LogPath)
	fmt.Printf("%s %s\n", dimStyle.Render("packs: "), cfg.PacksDir)
	fmt.Println()
	fmt.Print(string(data))
	return nil
}

func configSet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, policyPath, logPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Settings.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("%s = %s\n", args[0], args[1])
	return nil
}
