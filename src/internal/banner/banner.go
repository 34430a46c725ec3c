// FILE: wescoco/src/internal/banner/banner.go
// Package banner highlights the engine's startup banner. Unlike the line
// classifier this stage is stateful on purpose: banner shapes appear once or
// a handful of times at startup, so matched one-shot rules are discarded and
// a match of the final rule ends banner processing for the rest of the run.
package banner

import (
	"regexp"

	"wescoco/src/internal/colorize"
)

// A rule recognizes one banner line shape. Each pattern captures a fixed
// prefix and a free-form value, styled independently. One-shot rules are
// removed after their first match.
type rule struct {
	oneShot bool
	re      *regexp.Regexp
	prefix  colorize.Style
	value   colorize.Style
}

// Ordered to follow the engine's startup sequence. The final rule doubles as
// the end-of-banner marker.
func startupRules() []rule {
	return []rule{
		{
			oneShot: true,
			re:      regexp.MustCompile(`^(Battle for Wesnoth v)(.*)$`),
			prefix:  colorize.Yellow,
			value:   colorize.BrightYellow,
		},
		{
			oneShot: true,
			re:      regexp.MustCompile(`^(Started on )(.*)$`),
			prefix:  colorize.Yellow,
			value:   colorize.BrightYellow,
		},
		{
			oneShot: true,
			re:      regexp.MustCompile(`^(Automatically found a possible data directory at: )(.*)$`),
			prefix:  colorize.Green,
			value:   colorize.BrightGreen,
		},
		{
			oneShot: true,
			re:      regexp.MustCompile(`^(Overriding data directory with )('.*')$`),
			prefix:  colorize.Green,
			value:   colorize.BrightGreen,
		},
		{
			re:     regexp.MustCompile(`^((?:Starting|Now have) with directory: )(.*)$`),
			prefix: colorize.Dim,
			value:  colorize.Dim,
		},
		// filesystem configuration summary, 1.18 layout
		{
			re:     regexp.MustCompile(`^((?:Data|User (?:configuration|data)|Cache) directory: +)(.+)$`),
			prefix: colorize.Dim,
			value:  colorize.BrightBlack,
		},
		// filesystem configuration summary, 1.20 layout
		{
			re:     regexp.MustCompile(`^((?:(?:Game|User) data|Cache): +)(.+)$`),
			prefix: colorize.Dim,
			value:  colorize.BrightBlack,
		},
		// graphical system configuration, last line of the banner
		{
			oneShot: true,
			re:      regexp.MustCompile(`^(Setting mode to )(.+)$`),
			prefix:  colorize.Cyan,
			value:   colorize.BrightCyan,
		},
	}
}

// Processor applies banner rules to lines the classifier did not match.
type Processor struct {
	remaining []rule
}

func New() *Processor {
	return &Processor{remaining: startupRules()}
}

// Active reports whether any banner rules are still in play.
func (p *Processor) Active() bool {
	return len(p.remaining) > 0
}

// Process styles a banner line. ok is false when no remaining rule matched
// and the line should pass through unchanged. Stripping the escape codes
// from a styled result yields the input line byte for byte.
func (p *Processor) Process(line string) (string, bool) {
	for i, r := range p.remaining {
		m := r.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		styled := r.prefix.Apply(m[1]) + r.value.Apply(m[2])
		switch {
		case i == len(p.remaining)-1:
			// The last rule matching ends banner processing entirely.
			p.remaining = nil
		case r.oneShot:
			p.remaining = append(p.remaining[:i], p.remaining[i+1:]...)
		}
		return styled, true
	}
	return line, false
}
