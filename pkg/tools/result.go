package tools

import (
	"fmt"
	"strings"
)

// CommandOutput is the structured outcome of a shell command. A non-zero
// exit code is a normal, reportable outcome, not an executor failure.
type CommandOutput struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

func (o *CommandOutput) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "exit code: %d\n", o.ExitCode)
	b.WriteString("stdout:\n")
	b.WriteString(o.Stdout)
	if !strings.HasSuffix(o.Stdout, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("stderr:\n")
	b.WriteString(o.Stderr)
	return b.String()
}

// Result is the normalized outcome of one skill call. Handler failures are
// collapsed into Err rather than surfaced as errors: Dispatch always answers.
type Result struct {
	Content string         `json:"content,omitempty"`
	Command *CommandOutput `json:"command,omitempty"`
	Err     string         `json:"error,omitempty"`
}

// IsError reports whether the call failed.
func (r Result) IsError() bool {
	return r.Err != ""
}

// String renders the result for the transcript. Errors are prefixed so the
// calling loop can pass them through as a normal, if negative, tool reply.
func (r Result) String() string {
	switch {
	case r.Err != "":
		return "Error: " + r.Err
	case r.Content != "":
		return r.Content
	case r.Command != nil:
		return r.Command.String()
	default:
		return "(no output)"
	}
}
