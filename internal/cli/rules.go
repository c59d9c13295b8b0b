package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/gzhole/aishell/internal/quoting"
	"github.com/spf13/cobra"
)

var rulesShowPacks bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the active pattern table, placeholder shapes and flag fixes",
	Long: `List the rule data the validator is using after merging the policy file
and enabled packs, followed by the quoting guidelines.

  aishell rules
  aishell rules --packs`,
	RunE: rulesCommand,
}

func init() {
	rulesCmd.Flags().BoolVar(&rulesShowPacks, "packs", false, "Also list installed policy packs")
	rootCmd.AddCommand(rulesCmd)
}

func rulesCommand(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("Sensitive patterns"))
	for _, p := range sess.validator.Classifier().Patterns() {
		fmt.Printf("  %-22s %-10s %s\n", p.ID, styledSeverity(string(p.Severity)), p.Description)
		fmt.Printf("  %-22s %s\n", "", dimStyle.Render(p.Pattern.String()))
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Placeholder shapes"))
	for _, ph := range sess.policy.Placeholders {
		fmt.Printf("  %s\n", ph)
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Flag fixes"))
	for _, rw := range sess.policy.Rewrites {
		fmt.Printf("  %-22s → %s\n", rw.From, rw.To)
	}
	fmt.Printf("  %s %s\n", dimStyle.Render("flagged:"), strings.Join(sess.policy.HallucinatedFlags, ", "))

	fmt.Println()
	fmt.Println(headerStyle.Render("Quoting guidelines"))
	for _, g := range quoting.Guidelines() {
		fmt.Printf("  • %s\n", g)
	}

	if rulesShowPacks {
		fmt.Println()
		writePackList(os.Stdout, sess.packs, sess.cfg.PacksDir)
	}
	return nil
}

func styledSeverity(s string) string {
	switch s {
	case "blocked":
		return dangerStyle.Render(s)
	case "dangerous":
		return warnStyle.Render(s)
	default:
		return dimStyle.Render(s)
	}
}
