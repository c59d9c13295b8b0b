package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gzhole/aishell/internal/policy"
	"github.com/spf13/cobra"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Manage rule packs",
	Long: `Rule packs are YAML files in ~/.aishell/packs/ that extend the base policy
with sensitive patterns, placeholder shapes, hallucinated flags and their
rewrites. A pack whose file name starts with an underscore is disabled.

Examples:
  aishell pack list
  aishell pack disable kubernetes
  aishell pack show kubernetes`,
}

func init() {
	packCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List installed rule packs and whether they loaded",
			RunE:  withSession(packList),
		},
		&cobra.Command{
			Use:   "enable <pack-name>",
			Short: "Enable a disabled rule pack",
			Args:  cobra.ExactArgs(1),
			RunE:  withSession(packToggle(true)),
		},
		&cobra.Command{
			Use:   "disable <pack-name>",
			Short: "Disable a rule pack by prefixing its file with an underscore",
			Args:  cobra.ExactArgs(1),
			RunE:  withSession(packToggle(false)),
		},
		&cobra.Command{
			Use:   "show <pack-name>",
			Short: "Show what a rule pack adds to the policy",
			Args:  cobra.ExactArgs(1),
			RunE:  withSession(packShow),
		},
	)
	rootCmd.AddCommand(packCmd)
}

// withSession loads the session before handing off to fn.
func withSession(fn func(*session, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession(cmd)
		if err != nil {
			return err
		}
		return fn(sess, args)
	}
}

func packList(sess *session, _ []string) error {
	dir, err := sess.packsDir()
	if err != nil {
		return err
	}
	writePackList(os.Stdout, sess.packs, dir)
	return nil
}

func writePackList(w io.Writer, infos []policy.PackInfo, dir string) {
	if len(infos) == 0 {
		fmt.Fprintf(w, "No rule packs in %s\n", dir)
		return
	}

	fmt.Fprintln(w, headerStyle.Render("Rule packs"))
	for _, info := range infos {
		switch {
		case info.Err != nil:
			fmt.Fprintf(w, "  %s %s: %s\n", dangerStyle.Render("!"), info.Name, info.Err)
			continue
		case info.Enabled:
			fmt.Fprintf(w, "  %s %-24s %s\n", safeStyle.Render("on "), info.Name, info.Description)
		default:
			fmt.Fprintf(w, "  %s %-24s %s\n", dimStyle.Render("off"), info.Name, info.Description)
		}
		if info.Version != "" {
			fmt.Fprintf(w, "      %s\n", dimStyle.Render(fmt.Sprintf("v%s, %s, %d patterns", info.Version, info.Author, info.PatternCount)))
		}
	}
	fmt.Fprintf(w, "\n%s\n", dimStyle.Render(dir))
}

func packToggle(enable bool) func(*session, []string) error {
	return func(sess *session, args []string) error {
		dir, err := sess.packsDir()
		if err != nil {
			return err
		}

		name := args[0]
		changed, err := policy.SetPackEnabled(dir, name, enable)
		if err != nil {
			return err
		}

		state := "disabled"
		if enable {
			state = "enabled"
		}
		if !changed {
			fmt.Printf("Pack '%s' is already %s.\n", name, state)
			return nil
		}
		fmt.Printf("Pack '%s' %s. It applies from the next command.\n", name, state)
		return nil
	}
}

func packShow(sess *session, args []string) error {
	dir, err := sess.packsDir()
	if err != nil {
		return err
	}
	path, enabled, err := policy.FindPack(dir, args[0])
	if err != nil {
		return err
	}
	pack, err := policy.ReadPack(path)
	if err != nil {
		return err
	}
	writePack(os.Stdout, pack, path, enabled)
	return nil
}

func writePack(w io.Writer, pack *policy.Pack, path string, enabled bool) {
	state := safeStyle.Render("enabled")
	if !enabled {
		state = dimStyle.Render("disabled")
	}
	fmt.Fprintf(w, "%s (%s)\n", headerStyle.Render(pack.Name), state)
	if pack.Description != "" {
		fmt.Fprintln(w, pack.Description)
	}
	fmt.Fprintln(w, dimStyle.Render(path))

	if len(pack.Patterns) > 0 {
		fmt.Fprintln(w, "\nPatterns:")
		for _, p := range pack.Patterns {
			fmt.Fprintf(w, "  %-8s %-28s %s\n", p.Severity, p.ID, p.Description)
		}
	}
	if len(pack.Placeholders) > 0 {
		fmt.Fprintf(w, "\nPlaceholders: %s\n", strings.Join(pack.Placeholders, "  "))
	}
	if len(pack.HallucinatedFlags) > 0 {
		fmt.Fprintf(w, "\nHallucinated flags: %s\n", strings.Join(pack.HallucinatedFlags, " "))
	}
	for _, r := range pack.Rewrites {
		fmt.Fprintf(w, "  %s -> %s\n", r.From, r.To)
	}
}
