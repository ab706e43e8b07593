// Package guardrail applies mandatory output redaction and persists the
// completed assessment record.
package guardrail

import "regexp"

// Redaction tokens substituted for matched PII.
const (
	RedactedEmail = "[REDACTED_EMAIL]"
	RedactedPhone = "[REDACTED_PHONE]"
)

var (
	emailRE = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRE = regexp.MustCompile(`\+?\d[\d\s\-]{7,}`)
)

// MaskPII replaces every email-like and phone-like substring with its
// redaction token. It is idempotent and total: emails first, then phones,
// all matches replaced. Empty input yields empty output.
func MaskPII(text string) string {
	if text == "" {
		return ""
	}
	text = emailRE.ReplaceAllString(text, RedactedEmail)
	text = phoneRE.ReplaceAllString(text, RedactedPhone)
	return text
}
