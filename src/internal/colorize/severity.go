// FILE: wescoco/src/internal/colorize/severity.go
package colorize

// Severity is the closed set of level tokens the engine's logging facility
// emits, plus an explicit fallback arm for anything else.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityDebug
	SeverityInfo
	SeverityWarning
	SeverityError
)

// severityStyles is total over the known severities; the unknown arm maps to
// the empty style so an unrecognized token renders verbatim. Built once,
// never mutated.
var severityStyles = map[Severity]Style{
	SeverityDebug:   BrightBlack,
	SeverityInfo:    Green,
	SeverityWarning: BrightYellow,
	SeverityError:   BrightRed,
	SeverityUnknown: "",
}

// ParseSeverity maps a level token to its severity. The engine emits
// lowercase tokens; anything else classifies as unknown.
func ParseSeverity(token string) Severity {
	switch token {
	case "debug":
		return SeverityDebug
	case "info":
		return SeverityInfo
	case "warning":
		return SeverityWarning
	case "error":
		return SeverityError
	default:
		return SeverityUnknown
	}
}

// Style returns the display style for the severity.
func (s Severity) Style() Style {
	return severityStyles[s]
}

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
