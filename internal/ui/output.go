// Package ui provides user interface utilities for formatted terminal output.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const (
	// LabelWidth is the column width of field labels in Field output.
	LabelWidth = 12
)

var (
	// Color/style functions
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()

	// Output destination (stderr, stdout carries the forwarded arguments)
	Out io.Writer = os.Stderr
)

// DisableColor turns off all styling.
func DisableColor() {
	color.NoColor = true
}

// Info prints an informational message with a cyan arrow.
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Cyan("→"), msg)
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Green("✔"), msg)
}

// Fail prints an error message with a red X.
func Fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Red("✘"), msg)
}

// Warn prints a warning message with a yellow circle.
func Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Yellow("○"), msg)
}

// Field prints a dimmed, padded label followed by a value.
func Field(label string, value interface{}) {
	pad := ""
	if n := LabelWidth - len(label); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	fmt.Fprintf(Out, "    %s%s %v\n", Dim(label), pad, value)
}

// Tokens formats a token list for display, quoting each token.
func Tokens(tokens []string) string {
	if len(tokens) == 0 {
		return Dim("(none)")
	}
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = fmt.Sprintf("%q", tok)
	}
	return strings.Join(quoted, " ")
}
