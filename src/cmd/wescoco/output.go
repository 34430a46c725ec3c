// FILE: wescoco/src/cmd/wescoco/output.go
package main

import (
	"fmt"
	"io"
	"os"
)

// Handles startup and fatal messages before the logger exists, respecting
// quiet mode. These go to stdout like all other tool output; stderr is
// reserved for the passthrough stream.
type OutputHandler struct {
	quiet  bool
	stdout io.Writer
}

// Global output handler instance
var output *OutputHandler

// InitOutputHandler initializes the global output handler
func InitOutputHandler(quiet bool) {
	output = &OutputHandler{
		quiet:  quiet,
		stdout: os.Stdout,
	}
}

// Print writes to stdout if not in quiet mode
func (o *OutputHandler) Print(format string, args ...any) {
	if !o.quiet {
		fmt.Fprintf(o.stdout, format, args...)
	}
}

// FatalError writes the message and exits
func (o *OutputHandler) FatalError(code int, format string, args ...any) {
	o.Print(format, args...)
	os.Exit(code)
}

// Helper functions for the global output handler
func Print(format string, args ...any) {
	if output != nil {
		output.Print(format, args...)
	}
}

func FatalError(code int, format string, args ...any) {
	if output != nil {
		output.FatalError(code, format, args...)
	} else {
		fmt.Fprintf(os.Stdout, format, args...)
		os.Exit(code)
	}
}
