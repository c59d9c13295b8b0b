package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigDir  = ".aishell"
	DefaultConfigFile = "config.yaml"
	DefaultPolicyFile = "policy.yaml"
	DefaultLogFile    = "audit.jsonl"
	DefaultPacksDir   = "packs"
)

// ValidationBudget is the latency target for a single validation. Calls
// slower than this are flagged in the audit log.
const ValidationBudget = 50 * time.Millisecond

// SafetyLevel controls how strictly sensitive commands are gated.
type SafetyLevel string

const (
	SafetyLow    SafetyLevel = "low"
	SafetyMedium SafetyLevel = "medium"
	SafetyHigh   SafetyLevel = "high"
)

func ParseSafetyLevel(s string) (SafetyLevel, error) {
	switch lvl := SafetyLevel(strings.ToLower(strings.TrimSpace(s))); lvl {
	case SafetyLow, SafetyMedium, SafetyHigh:
		return lvl, nil
	default:
		return "", fmt.Errorf("invalid safety level %q (want low, medium or high)", s)
	}
}

func (l *SafetyLevel) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	lvl, err := ParseSafetyLevel(s)
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

// Settings is the user-editable part of the configuration.
type Settings struct {
	DryRun      bool        `yaml:"dry_run"`
	AutoExecute bool        `yaml:"auto_execute"`
	SafetyLevel SafetyLevel `yaml:"safety_level"`
}

func DefaultSettings() Settings {
	return Settings{SafetyLevel: SafetyMedium}
}

// Set updates one setting by its YAML key.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "dry_run", "auto_execute":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == "dry_run" {
			s.DryRun = b
		} else {
			s.AutoExecute = b
		}
	case "safety_level":
		lvl, err := ParseSafetyLevel(value)
		if err != nil {
			return err
		}
		s.SafetyLevel = lvl
	default:
		return fmt.Errorf("unknown setting %q (want dry_run, auto_execute or safety_level)", key)
	}
	return nil
}

type Config struct {
	ConfigDir  string
	ConfigPath string
	PolicyPath string
	LogPath    string
	PacksDir   string
	Settings   Settings
}

// Load resolves paths under ~/.aishell (created if missing) and reads the
// settings file. Empty arguments select the default locations. A missing
// settings file yields DefaultSettings.
func Load(configPath, policyPath, logPath string) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configDir := filepath.Join(homeDir, DefaultConfigDir)

	if err := ensureDir(configDir); err != nil {
		return nil, err
	}

	cfg := &Config{
		ConfigDir:  configDir,
		ConfigPath: orDefault(configPath, filepath.Join(configDir, DefaultConfigFile)),
		PolicyPath: orDefault(policyPath, filepath.Join(configDir, DefaultPolicyFile)),
		LogPath:    orDefault(logPath, filepath.Join(configDir, DefaultLogFile)),
		PacksDir:   filepath.Join(configDir, DefaultPacksDir),
	}

	settings, err := ReadSettings(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.Settings = settings

	return cfg, nil
}

// ReadSettings parses a settings file. Keys left out keep their defaults.
func ReadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, err
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if settings.SafetyLevel == "" {
		settings.SafetyLevel = SafetyMedium
	}
	return settings, nil
}

// Save writes the settings back to ConfigPath.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c.Settings)
	if err != nil {
		return err
	}
	if err := ensureDir(filepath.Dir(c.ConfigPath)); err != nil {
		return err
	}
	return os.WriteFile(c.ConfigPath, data, 0600)
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func ensureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0700)
	}
	return nil
}
