package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/gzhole/aishell/internal/analyzer"
	"github.com/gzhole/aishell/internal/config"
	"github.com/gzhole/aishell/internal/execution"
	"github.com/gzhole/aishell/internal/logger"
	"github.com/gzhole/aishell/internal/policy"
	"github.com/gzhole/aishell/internal/validator"
	"github.com/spf13/cobra"
)

// session bundles what every command needs: resolved paths and settings,
// the merged policy and a validator built from it.
type session struct {
	cfg       *config.Config
	policy    *policy.Policy
	packs     []policy.PackInfo
	validator *validator.Validator
}

func loadSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(configPath, policyPath, logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cmd, &cfg.Settings)

	pol, err := policy.Load(cfg.PolicyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	pol, infos, err := policy.LoadPacks(cfg.PacksDir, pol)
	if err != nil {
		return nil, fmt.Errorf("failed to load packs: %w", err)
	}

	v, err := validator.New(pol)
	if err != nil {
		return nil, fmt.Errorf("failed to build validator: %w", err)
	}

	return &session{cfg: cfg, policy: pol, packs: infos, validator: v}, nil
}

// packsDir returns the packs directory, creating it on first use.
func (s *session) packsDir() (string, error) {
	if err := os.MkdirAll(s.cfg.PacksDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create packs directory: %w", err)
	}
	return s.cfg.PacksDir, nil
}

func applyFlagOverrides(cmd *cobra.Command, s *config.Settings) {
	if cmd == nil {
		return
	}
	if f := cmd.Flags().Lookup("dry-run"); f != nil && f.Changed {
		s.DryRun = dryRun
	}
	if f := cmd.Flags().Lookup("auto-execute"); f != nil && f.Changed {
		s.AutoExecute = autoExecute
	}
}

// evaluation is one command taken through validation and mode resolution.
type evaluation struct {
	Input    string
	Result   validator.Result
	Mode     execution.Mode
	Findings []analyzer.Finding
	Event    logger.AuditEvent
}

func (s *session) evaluate(input string) evaluation {
	timer := logger.StartTimer(config.ValidationBudget)
	result := s.validator.Validate(input)
	event := logger.AuditEvent{}
	timer.Stop(&event)

	mode := execution.Resolve(s.cfg.Settings, result)

	var findings []analyzer.Finding
	if result.Kind == validator.KindSensitive {
		findings = s.validator.Classifier().Classify(result.Command).Findings
	}

	event.Command = input
	event.Final = result.Command
	event.Result = result.Kind.String()
	event.Mode = mode.String()
	event.Fixes = result.Fixes
	for _, e := range result.Errors {
		event.Errors = append(event.Errors, e.Error())
	}
	for _, w := range result.Warnings {
		event.Warnings = append(event.Warnings, w.String())
	}

	return evaluation{
		Input:    input,
		Result:   result,
		Mode:     mode,
		Findings: findings,
		Event:    event,
	}
}

func (e evaluation) ruleIDs() []string {
	ids := make([]string, 0, len(e.Findings))
	for _, f := range e.Findings {
		ids = append(ids, f.RuleID)
	}
	return ids
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func (s *session) audit(event logger.AuditEvent) {
	auditLogger, err := logger.New(s.cfg.LogPath)
	if err != nil {
		warnf("failed to open audit log: %v", err)
		return
	}
	defer auditLogger.Close()

	if err := auditLogger.Log(event); err != nil {
		warnf("failed to write audit log: %v", err)
	}
}
