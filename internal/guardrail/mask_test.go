package guardrail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPII_EmptyInput(t *testing.T) {
	assert.Equal(t, "", MaskPII(""))
}

func TestMaskPII_EmailAndPhone(t *testing.T) {
	narrative := "Contact john.doe@example.com or +1 555 123 4567."
	masked := MaskPII(narrative)

	assert.NotContains(t, masked, "john.doe@example.com")
	assert.NotContains(t, masked, "+1 555 123 4567")
	assert.Equal(t, 1, strings.Count(masked, RedactedEmail))
	assert.Equal(t, 1, strings.Count(masked, RedactedPhone))
}

func TestMaskPII_AllMatchesReplaced(t *testing.T) {
	narrative := "a@b.com, c@d.org and e@f.net all applied"
	masked := MaskPII(narrative)

	assert.Equal(t, 3, strings.Count(masked, RedactedEmail))
	assert.NotContains(t, masked, "@b.com")
	assert.NotContains(t, masked, "@d.org")
	assert.NotContains(t, masked, "@f.net")
}

func TestMaskPII_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"no pii here",
		"Contact john.doe@example.com or +1 555 123 4567.",
		"call 555-123-4567 now",
	}
	for _, input := range inputs {
		once := MaskPII(input)
		assert.Equal(t, once, MaskPII(once), "input %q", input)
	}
}

func TestMaskPII_LeavesCleanTextUntouched(t *testing.T) {
	narrative := "Overall fit\nThe candidate scores well."
	assert.Equal(t, narrative, MaskPII(narrative))
}
