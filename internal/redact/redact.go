// Package redact scrubs secrets from strings before they are logged or
// surfaced in error output. It targets what a BLESS deployment carries:
// KMS ciphertext blobs, per-region password options, AWS ARNs and access
// key ids.
package redact

import (
	"regexp"
	"strings"
)

// Placeholders substituted for redacted content.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedARNPlaceholder        = "[REDACTED_ARN]"
	RedactedCiphertextPlaceholder = "[REDACTED_CIPHERTEXT]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules run in order; earlier rules must not leave text later rules would
// mistake for something else.
var rules = []rule{
	// password style assignments, keeping the option name
	{
		pattern:     regexp.MustCompile(`(?i)([\w.-]*(?:password|passwd|secret))(\s*[=:]\s*)[^\s,;"']+`),
		replacement: "${1}${2}" + RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`arn:aws[\w-]*:[\w-]+:[\w-]*:\d{12}:[^\s"',;]+`),
		replacement: RedactedARNPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b(?:AKIA|ASIA)[A-Z0-9]{16}\b`),
		replacement: RedactedKeyPlaceholder,
	},
}

// KMS CiphertextBlob values are long base64 strings. The leading group holds
// the character before the run so filesystem paths can be told apart.
var ciphertextPattern = regexp.MustCompile(`(^|[^A-Za-z0-9+/])([A-Za-z0-9+/]{40,}={0,2})`)

// redactCiphertext replaces long base64 runs, leaving runs that read as
// paths: those starting with "/" or following "." or "~".
func redactCiphertext(s string) string {
	return ciphertextPattern.ReplaceAllStringFunc(s, func(match string) string {
		m := ciphertextPattern.FindStringSubmatch(match)
		prefix, run := m[1], m[2]
		if strings.HasPrefix(run, "/") || prefix == "." || prefix == "~" {
			return match
		}
		return prefix + RedactedCiphertextPlaceholder
	})
}

var sensitiveKeyParts = []string{"password", "passwd", "secret", "ciphertext"}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return redactCiphertext(result)
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// IsSensitiveKey reports whether values stored under key must never be shown,
// such as the "<region>_password" options.
func IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	for _, part := range sensitiveKeyParts {
		if strings.Contains(k, part) {
			return true
		}
	}
	return false
}

// Value redacts value in full when key is sensitive and otherwise applies String.
func Value(key, value string) string {
	if IsSensitiveKey(key) {
		return RedactedCredentialPlaceholder
	}
	return String(value)
}
