// Package redact masks credentials in command lines before they are written
// to the audit log.
package redact

import (
	"regexp"
	"strings"
)

type secretPattern struct {
	kind string
	re   *regexp.Regexp
}

var secretPatterns = []secretPattern{
	{"aws", regexp.MustCompile(`(?i)(aws_access_key_id|aws_secret_access_key|aws_session_token)\s*[=:]\s*['"]?[A-Za-z0-9/+=]{20,}['"]?`)},
	{"aws", regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},

	{"github", regexp.MustCompile(`(?i)(github_token|gh_token|github_pat)\s*[=:]\s*['"]?[A-Za-z0-9_-]{30,}['"]?`)},
	{"github", regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{36}`)},

	{"api-key", regexp.MustCompile(`(?i)(api_key|apikey|api-key|secret_key|secretkey|secret-key|access_token|auth_token)\s*[=:]\s*['"]?[A-Za-z0-9_-]{16,}['"]?`)},
	{"private-key", regexp.MustCompile(`-----BEGIN (RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY-----`)},
	{"bearer", regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_-]{20,}`)},
	{"url-credentials", regexp.MustCompile(`https?://[^:/\s]+:[^@\s]+@`)},
	{"slack", regexp.MustCompile(`xox[baprs]-[0-9]{10,13}-[0-9]{10,13}[a-zA-Z0-9-]*`)},
	{"stripe", regexp.MustCompile(`[sr]k_live_[0-9a-zA-Z]{24}`)},

	// curl -u user:pass and mysql -pSECRET style arguments
	{"cli-password", regexp.MustCompile(`(?:^|\s)(?:-u|--user)\s+[^\s:]+:[^\s]+`)},
	{"password", regexp.MustCompile(`(?i)(password|passwd|pwd|secret)\s*[=:]\s*['"]?[^\s'"]{8,}['"]?`)},
}

const redactedPlaceholder = "[REDACTED]"

func Redact(input string) string {
	result := input
	for _, p := range secretPatterns {
		result = p.re.ReplaceAllString(result, redactedPlaceholder)
	}
	return result
}

// Detect lists the kinds of credential found in input, each once, in table
// order.
func Detect(input string) []string {
	var kinds []string
	seen := make(map[string]bool)
	for _, p := range secretPatterns {
		if seen[p.kind] || !p.re.MatchString(input) {
			continue
		}
		seen[p.kind] = true
		kinds = append(kinds, p.kind)
	}
	return kinds
}

func RedactAll(values []string) []string {
	if values == nil {
		return nil
	}
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = Redact(v)
	}
	return result
}

var sensitiveEnvNames = []string{
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
	"AWS_SESSION_TOKEN",
	"GITHUB_TOKEN",
	"GH_TOKEN",
	"GITHUB_PAT",
	"API_KEY",
	"SECRET",
	"AUTH_TOKEN",
	"ACCESS_TOKEN",
	"PASSWORD",
	"PASSWD",
	"DATABASE_URL",
	"REDIS_URL",
	"MONGO_URL",
	"SLACK_TOKEN",
	"NPM_TOKEN",
	"PYPI_TOKEN",
	"OPENAI_API_KEY",
	"ANTHROPIC_API_KEY",
}

// RedactEnvVars masks the value of NAME=value pairs whose name looks like a
// credential.
func RedactEnvVars(envVars []string) []string {
	result := make([]string, 0, len(envVars))
	for _, env := range envVars {
		name, _, ok := strings.Cut(env, "=")
		if ok && isSensitiveName(name) {
			result = append(result, name+"="+redactedPlaceholder)
			continue
		}
		result = append(result, env)
	}
	return result
}

func isSensitiveName(name string) bool {
	upper := strings.ToUpper(name)
	for _, sensitive := range sensitiveEnvNames {
		if strings.Contains(upper, sensitive) {
			return true
		}
	}
	return false
}
