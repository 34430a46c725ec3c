// FILE: wescoco/src/internal/colorize/severity_test.go
package colorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	testCases := []struct {
		token    string
		expected Severity
	}{
		{"debug", SeverityDebug},
		{"info", SeverityInfo},
		{"warning", SeverityWarning},
		{"error", SeverityError},
		// The engine emits lowercase tokens; anything else is unknown.
		{"ERROR", SeverityUnknown},
		{"warn", SeverityUnknown},
		{"trace", SeverityUnknown},
		{"", SeverityUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseSeverity(tc.token))
		})
	}
}

func TestSeverityStyle(t *testing.T) {
	t.Run("TotalOverKnownSeverities", func(t *testing.T) {
		assert.Equal(t, Style(BrightBlack), SeverityDebug.Style())
		assert.Equal(t, Style(Green), SeverityInfo.Style())
		assert.Equal(t, Style(BrightYellow), SeverityWarning.Style())
		assert.Equal(t, Style(BrightRed), SeverityError.Style())
	})

	t.Run("UnknownFallsBackToNeutral", func(t *testing.T) {
		assert.Equal(t, Style(""), SeverityUnknown.Style())
		assert.Equal(t, "verbatim", SeverityUnknown.Style().Apply("verbatim"))
	})

	t.Run("Deterministic", func(t *testing.T) {
		for sev := SeverityUnknown; sev <= SeverityError; sev++ {
			assert.Equal(t, sev.Style(), sev.Style())
		}
	})
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "debug", SeverityDebug.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", SeverityUnknown.String())
}

func TestStyleApply(t *testing.T) {
	assert.Equal(t, "\x1b[36mtext\x1b[0m", Style(Cyan).Apply("text"))
	assert.Equal(t, "text", Style("").Apply("text"))
}
