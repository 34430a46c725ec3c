// FILE: wescoco/src/internal/colorize/colorizer.go
// Package colorize classifies single log lines against the engine's
// `timestamp severity domain: message` grammar and rewrites matching lines
// with per-field ANSI styling. Classification is a pure function of the
// current line; nothing is carried between calls, and a line that does not
// match the grammar in full is returned untouched.
package colorize

import "regexp"

// Fields is the decomposition of a line that matched the log grammar.
// It exists only for the duration of one classification call.
type Fields struct {
	Timestamp     string
	Severity      Severity
	SeverityToken string
	Domain        string
	Message       string
}

// The canonical log line grammar, anchored at both ends. The timestamp is an
// 8-digit date plus HH:MM:SS. Severity and domain are runs of non-whitespace;
// the greedy domain match backs off the final colon, so the domain ends at
// the last ": " boundary of its token and embedded colons in the message are
// left alone.
var lineRe = regexp.MustCompile(`^(\d{8} \d{2}:\d{2}:\d{2}) (\S+) (\S+): (.*)$`)

const (
	timestampStyle Style = Dim
	domainStyle    Style = Cyan
)

// Parse matches the whole line against the log grammar. A partial match is
// a non-match: ok is false and the caller should pass the line through.
func Parse(line string) (Fields, bool) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Fields{}, false
	}
	return Fields{
		Timestamp:     m[1],
		Severity:      ParseSeverity(m[2]),
		SeverityToken: m[2],
		Domain:        m[3],
		Message:       m[4],
	}, true
}

// Render reassembles parsed fields in their original order and separators,
// wrapping each styled span with its style and a reset. The message body is
// emitted verbatim. Stripping the escape sequences from the result yields
// the original line byte for byte.
func Render(f Fields) string {
	return timestampStyle.Apply(f.Timestamp) + " " +
		f.Severity.Style().Apply(f.SeverityToken) + " " +
		domainStyle.Apply(f.Domain) + ": " +
		f.Message
}

// Process rewrites a conforming line with per-field styling and returns any
// other line unchanged. Every input produces a defined output; there is no
// failure mode.
func Process(line string) string {
	f, ok := Parse(line)
	if !ok {
		return line
	}
	return Render(f)
}
