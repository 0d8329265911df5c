package tools

import (
	"context"
	"fmt"

	"github.com/puppylab/miniagent/pkg/logger"
	"github.com/puppylab/miniagent/pkg/skills"
)

// CallRequest names a target skill and supplies its arguments.
type CallRequest struct {
	Name string            `json:"name"`
	Args map[string]string `json:"args"`
}

// Dispatch looks up the requested skill and runs its handler. It never
// returns an error: an unknown skill, a missing argument, an I/O failure or
// a process-launch failure all collapse into Result.Err. A hung command
// blocks until the caller's context is cancelled; no timeout is imposed here.
func (r *Registry) Dispatch(ctx context.Context, req CallRequest) Result {
	skill, ok := r.skills[req.Name]
	if !ok {
		return Result{Err: fmt.Sprintf("skill %q not found", req.Name)}
	}

	log := logger.G(ctx).WithField("skill", req.Name)
	log.Debug("dispatching skill call")

	var result Result
	switch skill.Kind {
	case skills.KindBuiltin:
		result = r.runBuiltin(ctx, skill.Builtin, req.Args)
	default:
		result = r.runTemplated(ctx, skill, req.Args)
	}

	if result.IsError() {
		log.WithField("error", result.Err).Debug("skill call failed")
	}
	return result
}

// runTemplated binds the call arguments into the skill's command template and
// runs it through the shell. A zero exit returns the captured stdout; a
// non-zero exit reports the full exit/stdout/stderr triple.
func (r *Registry) runTemplated(ctx context.Context, skill *skills.Skill, args map[string]string) Result {
	command, err := bindTemplate(skill.Template, skill.Params, args)
	if err != nil {
		return Result{Err: err.Error()}
	}

	output, err := r.runShell(ctx, command)
	if err != nil {
		return Result{Err: err.Error()}
	}

	result := Result{Command: output}
	if output.ExitCode == 0 {
		result.Content = output.Stdout
	}
	return result
}
