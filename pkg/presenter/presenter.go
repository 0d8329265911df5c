// Package presenter provides consistent CLI output for user-facing messages,
// with color support and a quiet mode. Diagnostics go to stderr, results to
// stdout.
package presenter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// TerminalPresenter writes user-facing messages to a terminal.
type TerminalPresenter struct {
	output      io.Writer
	errorOutput io.Writer
	quiet       bool
}

// New creates a TerminalPresenter on stdout/stderr.
func New() *TerminalPresenter {
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
	return &TerminalPresenter{
		output:      os.Stdout,
		errorOutput: os.Stderr,
	}
}

// NewWithWriters creates a TerminalPresenter with custom writers.
func NewWithWriters(output, errorOutput io.Writer) *TerminalPresenter {
	return &TerminalPresenter{output: output, errorOutput: errorOutput}
}

// SetQuiet suppresses non-error output.
func (p *TerminalPresenter) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// Error displays an error with optional context, always shown even in quiet
// mode.
func (p *TerminalPresenter) Error(err error, context string) {
	if err == nil {
		return
	}
	c := color.New(color.FgRed, color.Bold)
	if context != "" {
		c.Fprintf(p.errorOutput, "[ERROR] %s: %v\n", context, err)
	} else {
		c.Fprintf(p.errorOutput, "[ERROR] %v\n", err)
	}
}

// Success displays a success message.
func (p *TerminalPresenter) Success(message string) {
	if p.quiet {
		return
	}
	color.New(color.FgGreen).Fprintf(p.output, "%s\n", message)
}

// Warning displays a warning message on stderr.
func (p *TerminalPresenter) Warning(message string) {
	if p.quiet {
		return
	}
	color.New(color.FgYellow).Fprintf(p.errorOutput, "[WARNING] %s\n", message)
}

// Info displays an informational message.
func (p *TerminalPresenter) Info(message string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.output, "%s\n", message)
}

var defaultPresenter = New()

// Error displays an error via the default presenter.
func Error(err error, context string) {
	defaultPresenter.Error(err, context)
}

// Success displays a success message via the default presenter.
func Success(message string) {
	defaultPresenter.Success(message)
}

// Warning displays a warning via the default presenter.
func Warning(message string) {
	defaultPresenter.Warning(message)
}

// Info displays an informational message via the default presenter.
func Info(message string) {
	defaultPresenter.Info(message)
}
