package policy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pack extends Policy with metadata for rule packs.
// We avoid yaml:",inline" because Policy also has a `version` field.
type Pack struct {
	Name              string        `yaml:"name"`
	Description       string        `yaml:"description"`
	PackVersion       string        `yaml:"version"`
	Author            string        `yaml:"author"`
	Patterns          []PatternRule `yaml:"patterns"`
	Placeholders      []string      `yaml:"placeholders"`
	HallucinatedFlags []string      `yaml:"hallucinated_flags"`
	Rewrites          []Rewrite     `yaml:"rewrites"`
}

// PackInfo is a summary of a pack for listing.
type PackInfo struct {
	Name         string
	Description  string
	Version      string
	Author       string
	Enabled      bool
	Path         string
	PatternCount int
	Err          error
}

// LoadPacks reads all .yaml files from the packs directory and merges them
// into the base policy. Patterns and rewrites from packs are appended after
// the base entries. Placeholders and flags are unioned.
func LoadPacks(packsDir string, base *Policy) (*Policy, []PackInfo, error) {
	var infos []PackInfo

	entries, err := os.ReadDir(packsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil, nil
		}
		return nil, nil, err
	}

	result := clonePolicy(base)

	for _, entry := range entries {
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}

		path := filepath.Join(packsDir, entry.Name())

		// Check if pack is disabled (prefixed with underscore)
		baseName := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		enabled := !strings.HasPrefix(baseName, "_")

		pack, err := ReadPack(path)
		if err != nil {
			infos = append(infos, PackInfo{
				Name:    baseName,
				Enabled: enabled,
				Path:    path,
				Err:     err,
			})
			continue
		}

		info := PackInfo{
			Name:         pack.Name,
			Description:  pack.Description,
			Version:      pack.PackVersion,
			Author:       pack.Author,
			Enabled:      enabled,
			Path:         path,
			PatternCount: len(pack.Patterns),
		}
		if info.Name == "" {
			info.Name = baseName
		}
		infos = append(infos, info)

		if !enabled {
			continue
		}

		mergePackInto(result, pack)
	}

	return result, infos, nil
}

// ErrPackNotFound is returned when neither <name>.yaml nor _<name>.yaml
// exists in the packs directory.
var ErrPackNotFound = errors.New("pack not found")

// FindPack locates a pack by file name, enabled or not.
func FindPack(packsDir, name string) (path string, enabled bool, err error) {
	enabledPath := filepath.Join(packsDir, name+".yaml")
	if _, err := os.Stat(enabledPath); err == nil {
		return enabledPath, true, nil
	}
	disabledPath := filepath.Join(packsDir, "_"+name+".yaml")
	if _, err := os.Stat(disabledPath); err == nil {
		return disabledPath, false, nil
	}
	return "", false, fmt.Errorf("%w: '%s' in %s", ErrPackNotFound, name, packsDir)
}

// SetPackEnabled renames <name>.yaml <-> _<name>.yaml and reports whether
// anything changed.
func SetPackEnabled(packsDir, name string, enable bool) (bool, error) {
	path, enabled, err := FindPack(packsDir, name)
	if err != nil {
		return false, err
	}
	if enabled == enable {
		return false, nil
	}

	to := filepath.Join(packsDir, name+".yaml")
	if !enable {
		to = filepath.Join(packsDir, "_"+name+".yaml")
	}
	if err := os.Rename(path, to); err != nil {
		return false, err
	}
	return true, nil
}

// ReadPack parses a single pack file.
func ReadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse pack %s: %w", path, err)
	}

	return &pack, nil
}

func mergePackInto(target *Policy, pack *Pack) {
	target.Patterns = append(target.Patterns, pack.Patterns...)
	target.Rewrites = append(target.Rewrites, pack.Rewrites...)
	target.Placeholders = union(target.Placeholders, pack.Placeholders)
	target.HallucinatedFlags = union(target.HallucinatedFlags, pack.HallucinatedFlags)
}

func union(dst, src []string) []string {
	existing := make(map[string]bool, len(dst))
	for _, s := range dst {
		existing[s] = true
	}
	for _, s := range src {
		if !existing[s] {
			dst = append(dst, s)
			existing[s] = true
		}
	}
	return dst
}

func clonePolicy(p *Policy) *Policy {
	clone := &Policy{Version: p.Version}

	clone.Patterns = make([]PatternRule, len(p.Patterns))
	copy(clone.Patterns, p.Patterns)

	clone.Placeholders = make([]string, len(p.Placeholders))
	copy(clone.Placeholders, p.Placeholders)

	clone.HallucinatedFlags = make([]string, len(p.HallucinatedFlags))
	copy(clone.HallucinatedFlags, p.HallucinatedFlags)

	clone.Rewrites = make([]Rewrite, len(p.Rewrites))
	copy(clone.Rewrites, p.Rewrites)

	return clone
}

func isYAMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
