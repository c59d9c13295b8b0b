package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gzhole/aishell/internal/config"
	"github.com/gzhole/aishell/internal/logger"
	"github.com/spf13/cobra"
)

var (
	logFilterKind string
	logSlowOnly   bool
	logLast       int
	logSummary    bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View and filter the audit log",
	Long: `View the aishell audit log with filtering and summary options.

Examples:
  aishell log                      # Show all entries
  aishell log --last 20            # Show last 20 entries
  aishell log --kind sensitive     # Show only sensitive verdicts
  aishell log --slow               # Show validations over the latency budget
  aishell log --summary            # Show summary stats`,
	RunE: logCommand,
}

func init() {
	logCmd.Flags().StringVar(&logFilterKind, "kind", "", "Filter by result (valid, rewritten, invalid, sensitive)")
	logCmd.Flags().BoolVar(&logSlowOnly, "slow", false, "Show only validations slower than the latency budget")
	logCmd.Flags().IntVar(&logLast, "last", 0, "Show last N entries")
	logCmd.Flags().BoolVar(&logSummary, "summary", false, "Show summary statistics")
	rootCmd.AddCommand(logCmd)
}

func logCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, policyPath, logPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	events, err := readAuditLog(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("failed to read audit log: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No audit log entries found.")
		return nil
	}

	filtered := filterEvents(events, logFilterKind, logSlowOnly)

	if logLast > 0 && logLast < len(filtered) {
		filtered = filtered[len(filtered)-logLast:]
	}

	if logSummary {
		printSummary(os.Stdout, events)
		return nil
	}

	printEvents(os.Stdout, filtered)
	return nil
}

func readAuditLog(path string) ([]logger.AuditEvent, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var events []logger.AuditEvent
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var event logger.AuditEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue // skip malformed lines
		}
		events = append(events, event)
	}
	return events, scanner.Err()
}

func filterEvents(events []logger.AuditEvent, kind string, slowOnly bool) []logger.AuditEvent {
	if kind == "" && !slowOnly {
		return events
	}

	var filtered []logger.AuditEvent
	for _, e := range events {
		if kind != "" && !strings.EqualFold(e.Result, kind) {
			continue
		}
		if slowOnly && !e.Slow {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func printEvents(w io.Writer, events []logger.AuditEvent) {
	for _, e := range events {
		ts := formatTimestamp(e.Timestamp)
		slow := ""
		if e.Slow {
			slow = warnStyle.Render(" [SLOW]")
		}

		fmt.Fprintf(w, "%s %s %s%s\n", resultIcon(e.Result), ts, e.Command, slow)

		if e.Final != "" && e.Final != e.Command {
			fmt.Fprintf(w, "     Final: %s\n", e.Final)
		}
		fmt.Fprintf(w, "     Mode: %s\n", e.Mode)
		for _, f := range e.Fixes {
			fmt.Fprintf(w, "     Fix: %s\n", f)
		}
		for _, er := range e.Errors {
			fmt.Fprintf(w, "     Error: %s\n", er)
		}
		for _, wn := range e.Warnings {
			fmt.Fprintf(w, "     Warning: %s\n", wn)
		}
		if e.UserAction != "" {
			fmt.Fprintf(w, "     Action: %s\n", e.UserAction)
		}
		if e.ExitCode != nil {
			fmt.Fprintf(w, "     Exit: %d\n", *e.ExitCode)
		}
		if e.Error != "" {
			fmt.Fprintf(w, "     Run error: %s\n", e.Error)
		}
		fmt.Fprintf(w, "     Validation: %.2fms\n", e.DurationMS)
		fmt.Fprintln(w)
	}
}

type logStats struct {
	Total     int
	ByResult  map[string]int
	Slow      int
	Errors    int
	Denied    int
	MaxMS     float64
	AverageMS float64
}

func summarize(events []logger.AuditEvent) logStats {
	s := logStats{Total: len(events), ByResult: map[string]int{}}
	var sum float64
	for _, e := range events {
		s.ByResult[e.Result]++
		if e.Slow {
			s.Slow++
		}
		if e.Error != "" {
			s.Errors++
		}
		if e.UserAction == "deny" || e.UserAction == "auto_deny_non_interactive" {
			s.Denied++
		}
		if e.DurationMS > s.MaxMS {
			s.MaxMS = e.DurationMS
		}
		sum += e.DurationMS
	}
	if s.Total > 0 {
		s.AverageMS = sum / float64(s.Total)
	}
	return s
}

func printSummary(w io.Writer, all []logger.AuditEvent) {
	s := summarize(all)

	fmt.Fprintln(w, "═══════════════════════════════════════════")
	fmt.Fprintln(w, "  aishell Audit Summary")
	fmt.Fprintln(w, "═══════════════════════════════════════════")
	fmt.Fprintf(w, "  Total events:    %d\n", s.Total)
	fmt.Fprintf(w, "  valid:           %d\n", s.ByResult["valid"])
	fmt.Fprintf(w, "  rewritten:       %d\n", s.ByResult["rewritten"])
	fmt.Fprintf(w, "  invalid:         %d\n", s.ByResult["invalid"])
	fmt.Fprintf(w, "  sensitive:       %d\n", s.ByResult["sensitive"])
	fmt.Fprintf(w, "  Denied:          %d\n", s.Denied)
	fmt.Fprintf(w, "  Run errors:      %d\n", s.Errors)
	fmt.Fprintf(w, "  Slow (>%s):    %d\n", config.ValidationBudget, s.Slow)
	fmt.Fprintf(w, "  Validation avg:  %.2fms (max %.2fms)\n", s.AverageMS, s.MaxMS)
	fmt.Fprintln(w, "═══════════════════════════════════════════")

	if len(all) > 0 {
		fmt.Fprintf(w, "  First event:     %s\n", formatTimestamp(all[0].Timestamp))
		fmt.Fprintf(w, "  Last event:      %s\n", formatTimestamp(all[len(all)-1].Timestamp))
	}

	var sensitive []logger.AuditEvent
	for _, e := range all {
		if e.Result == "sensitive" {
			sensitive = append(sensitive, e)
		}
	}
	if len(sensitive) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Sensitive commands:")
		limit := len(sensitive)
		if limit > 10 {
			limit = 10
		}
		for _, e := range sensitive[len(sensitive)-limit:] {
			fmt.Fprintf(w, "    %s %s\n", formatTimestamp(e.Timestamp), e.Command)
		}
	}

	fmt.Fprintln(w)
}

func resultIcon(result string) string {
	switch result {
	case "sensitive":
		return "⚠️ "
	case "invalid":
		return "🛑"
	case "rewritten":
		return "🔧"
	case "valid":
		return "✅"
	default:
		return "❓"
	}
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
