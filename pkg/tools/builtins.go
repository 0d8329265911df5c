package tools

import (
	"context"
	"fmt"
	"os"

	"github.com/puppylab/miniagent/pkg/skills"
)

func builtinSkill(id string) *skills.Skill {
	switch id {
	case BuiltinReadFile:
		return &skills.Skill{
			Name:        BuiltinReadFile,
			Description: "Read a file and return its full text content.",
			Kind:        skills.KindBuiltin,
			Builtin:     BuiltinReadFile,
			Params: []skills.Parameter{
				{Name: "file_path", Description: "The path of the file to read"},
			},
		}
	case BuiltinWriteFile:
		return &skills.Skill{
			Name:        BuiltinWriteFile,
			Description: "Write content to a file, overwriting any existing content.",
			Kind:        skills.KindBuiltin,
			Builtin:     BuiltinWriteFile,
			Params: []skills.Parameter{
				{Name: "file_path", Description: "The path of the file to write"},
				{Name: "content", Description: "The content to write to the file"},
			},
		}
	case BuiltinExecCommand:
		return &skills.Skill{
			Name:        BuiltinExecCommand,
			Description: "Run a shell command and report its exit code, stdout and stderr.",
			Kind:        skills.KindBuiltin,
			Builtin:     BuiltinExecCommand,
			Params: []skills.Parameter{
				{Name: "command", Description: "The shell command to run"},
			},
		}
	default:
		panic(fmt.Sprintf("unknown builtin %q", id))
	}
}

func (r *Registry) runBuiltin(ctx context.Context, id string, args map[string]string) Result {
	switch id {
	case BuiltinReadFile:
		path, ok := args["file_path"]
		if !ok {
			return Result{Err: missingParameter("file_path")}
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return Result{Err: fmt.Sprintf("failed to read file: %s", err)}
		}
		return Result{Content: string(content)}

	case BuiltinWriteFile:
		path, ok := args["file_path"]
		if !ok {
			return Result{Err: missingParameter("file_path")}
		}
		content, ok := args["content"]
		if !ok {
			return Result{Err: missingParameter("content")}
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return Result{Err: fmt.Sprintf("failed to write file: %s", err)}
		}
		return Result{Content: fmt.Sprintf("wrote %d bytes to %s", len(content), path)}

	case BuiltinExecCommand:
		command, ok := args["command"]
		if !ok {
			return Result{Err: missingParameter("command")}
		}
		output, err := r.runShell(ctx, command)
		if err != nil {
			return Result{Err: err.Error()}
		}
		return Result{Command: output}

	default:
		return Result{Err: fmt.Sprintf("unknown builtin %q", id)}
	}
}

func missingParameter(name string) string {
	return fmt.Sprintf("missing parameter %q", name)
}
