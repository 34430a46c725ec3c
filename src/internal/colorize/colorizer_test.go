// FILE: wescoco/src/internal/colorize/colorizer_test.go
package colorize

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sgrRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripSGR(s string) string {
	return sgrRe.ReplaceAllString(s, "")
}

const sampleLine = "20250309 09:45:17 error filesystem: Apple developer's userdata migration: Problem!"

func TestProcess_StripIdentity(t *testing.T) {
	lines := []string{
		sampleLine,
		"20250309 09:45:17 warning config: cache invalid",
		"20250309 09:45:17 debug gui/layout: pass 3",
		"20250309 09:45:17 noise filesystem: unknown severity token",
		"Checking lua scripts... ok",
		"",
		"  indented continuation line",
		"20250309 09:45:17 error filesystem missing colon separator",
		"20250309 09:45 error fs: truncated timestamp",
		"20250309 09:45:17 info ai: victory 🎉 for side 2",
		strings.Repeat("x", 100000),
	}

	for _, line := range lines {
		assert.Equal(t, line, stripSGR(Process(line)), "stripped output must equal input: %q", line)
	}
}

func TestProcess_PassThroughForNonConformingInput(t *testing.T) {
	lines := []string{
		"",
		"Checking lua scripts... ok",
		"20250309 09:45:17 error filesystem missing colon separator",
		"error filesystem: no timestamp",
		"2025030 09:45:17 error filesystem: seven digit date",
		"20250309  09:45:17 error filesystem: double space after date",
		"\tleading tab 20250309 09:45:17 error filesystem: not anchored",
	}

	for _, line := range lines {
		out := Process(line)
		assert.Equal(t, line, out)
		assert.NotContains(t, out, "\x1b", "no escape codes on pass-through: %q", line)
	}
}

func TestProcess_FullMatchDecomposition(t *testing.T) {
	out := Process(sampleLine)

	expected := "\x1b[2m20250309 09:45:17\x1b[0m " +
		"\x1b[1;31merror\x1b[0m " +
		"\x1b[36mfilesystem\x1b[0m" +
		": Apple developer's userdata migration: Problem!"
	assert.Equal(t, expected, out)

	// The message body, embedded colon included, is verbatim and unstyled.
	tail := out[strings.Index(out, ": Apple"):]
	assert.Equal(t, ": Apple developer's userdata migration: Problem!", tail)
	assert.NotContains(t, tail, "\x1b")
}

func TestProcess_SeverityDependentStyling(t *testing.T) {
	errorLine := "20250309 09:45:17 error display: mode lost"
	warningLine := "20250309 09:45:17 warning display: mode lost"

	errOut := Process(errorLine)
	warnOut := Process(warningLine)

	assert.Contains(t, errOut, string(BrightRed)+"error"+Reset)
	assert.Contains(t, warnOut, string(BrightYellow)+"warning"+Reset)

	// Same severity always yields the same codes.
	assert.Equal(t, errOut, Process(errorLine))
	assert.Equal(t, warnOut, Process(warningLine))
}

func TestProcess_Stateless(t *testing.T) {
	b := "20250309 09:45:17 info server: listening"
	alone := Process(b)

	preceding := []string{
		sampleLine,
		"Battle for Wesnoth v1.18.0",
		"",
		"garbage \x1b[31m with raw escapes",
	}
	for _, a := range preceding {
		Process(a)
		assert.Equal(t, alone, Process(b), "result for B must not depend on prior line %q", a)
	}
}

func TestProcess_UnicodeSafety(t *testing.T) {
	line := "20250309 09:45:17 info ai: unit says déjà vu 🗡️⚔️"
	out := Process(line)

	assert.Equal(t, line, stripSGR(out))
	assert.Contains(t, out, "déjà vu 🗡️⚔️")

	domainLine := "20250309 09:45:17 debug sérvér/ユニット: multibyte domain"
	assert.Equal(t, domainLine, stripSGR(Process(domainLine)))
	assert.Contains(t, Process(domainLine), string(Cyan)+"sérvér/ユニット"+Reset)
}

func TestProcess_UnknownSeverityNeutral(t *testing.T) {
	out := Process("20250309 09:45:17 noise filesystem: hello")

	// Timestamp and domain styled, severity token verbatim with no codes.
	expected := "\x1b[2m20250309 09:45:17\x1b[0m noise \x1b[36mfilesystem\x1b[0m: hello"
	assert.Equal(t, expected, out)
}

func TestParse(t *testing.T) {
	t.Run("Conforming", func(t *testing.T) {
		f, ok := Parse(sampleLine)
		require.True(t, ok)
		assert.Equal(t, "20250309 09:45:17", f.Timestamp)
		assert.Equal(t, SeverityError, f.Severity)
		assert.Equal(t, "error", f.SeverityToken)
		assert.Equal(t, "filesystem", f.Domain)
		assert.Equal(t, "Apple developer's userdata migration: Problem!", f.Message)
	})

	t.Run("DomainEndsAtLastColonOfToken", func(t *testing.T) {
		f, ok := Parse("20250309 09:45:17 debug engine/unit: moved")
		require.True(t, ok)
		assert.Equal(t, "engine/unit", f.Domain)
		assert.Equal(t, "moved", f.Message)
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		f, ok := Parse("20250309 09:45:17 info config: ")
		require.True(t, ok)
		assert.Equal(t, "", f.Message)
	})

	t.Run("MissingColonIsNonMatch", func(t *testing.T) {
		_, ok := Parse("20250309 09:45:17 error filesystem no colon here")
		assert.False(t, ok)
	})

	t.Run("PartialMatchIsNonMatch", func(t *testing.T) {
		_, ok := Parse("20250309 09:45:17 error")
		assert.False(t, ok)
	})

	t.Run("UnknownSeverityStillMatches", func(t *testing.T) {
		f, ok := Parse("20250309 09:45:17 trace filesystem: x")
		require.True(t, ok)
		assert.Equal(t, SeverityUnknown, f.Severity)
		assert.Equal(t, "trace", f.SeverityToken)
	})
}
