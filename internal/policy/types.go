package policy

// Policy is the versioned rule data behind the validator: the sensitive
// pattern table, placeholder shapes and the hallucinated-flag dictionary
// with its rewrite table.
type Policy struct {
	Version           string        `yaml:"version"`
	Patterns          []PatternRule `yaml:"patterns"`
	Placeholders      []string      `yaml:"placeholders"`
	HallucinatedFlags []string      `yaml:"hallucinated_flags"`
	Rewrites          []Rewrite     `yaml:"rewrites"`
}

// PatternRule is a sensitive pattern as it appears in policy YAML.
type PatternRule struct {
	ID          string `yaml:"id"`
	Regex       string `yaml:"regex"`
	Severity    string `yaml:"severity"`
	Description string `yaml:"description"`
	Suggestion  string `yaml:"suggestion,omitempty"`
}

// Rewrite maps a hallucinated long flag to the flag that actually exists.
// A rewrite only fires for a flag listed in HallucinatedFlags. Rewrites are
// tried in order; longer flags sharing a prefix must come first.
type Rewrite struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}
