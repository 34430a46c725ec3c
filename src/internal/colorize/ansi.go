// FILE: wescoco/src/internal/colorize/ansi.go
package colorize

// Standard ANSI SGR escape sequences understood by Unix terminal emulators.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Dim       = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Invert    = "\x1b[7m"

	Black   = "\x1b[30m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"

	BrightBlack   = "\x1b[1;30m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
	BrightWhite   = "\x1b[1;37m"
)

// Style is a single SGR sequence applied to a span of text. The empty style
// is valid and renders text verbatim.
type Style string

// Apply wraps text in the style followed by a full reset, so the style never
// bleeds past the span into separators, later fields, or terminal state.
func (s Style) Apply(text string) string {
	if s == "" {
		return text
	}
	return string(s) + text + Reset
}
