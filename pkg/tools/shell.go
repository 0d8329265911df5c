package tools

import (
	"bytes"
	"context"
	"os/exec"
	"slices"

	"github.com/pkg/errors"
)

// runShell executes command through the registry's shell, capturing stdout,
// stderr and the exit code separately. Only a launch failure is an error;
// a command that runs and exits non-zero is a normal CommandOutput.
func (r *Registry) runShell(ctx context.Context, command string) (*CommandOutput, error) {
	argv := append(slices.Clone(r.shell), command)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	output := &CommandOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		if status, ok := err.(*exec.ExitError); ok {
			output.ExitCode = status.ExitCode()
			return output, nil
		}
		return nil, errors.Wrapf(err, "failed to run command %q", command)
	}

	return output, nil
}
