// Package tools binds loaded skills to executable handlers and dispatches
// structured call requests against them. The registry is built once, before
// any call is accepted, and is read-only afterwards; Dispatch is safe for
// concurrent use without locking.
package tools

import (
	"context"
	"slices"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"

	"github.com/puppylab/miniagent/pkg/logger"
	"github.com/puppylab/miniagent/pkg/skills"
)

// Built-in handler ids. These names are reserved: a skill directory cannot
// shadow them.
const (
	BuiltinReadFile    = "read_file"
	BuiltinWriteFile   = "write_file"
	BuiltinExecCommand = "exec_command"
)

var builtinOrder = []string{BuiltinReadFile, BuiltinWriteFile, BuiltinExecCommand}

// Registry holds the set of registered skills and their dispatch table.
type Registry struct {
	skills map[string]*skills.Skill
	order  []string
	shell  []string
	allow  []glob.Glob
}

// Option configures a Registry.
type Option func(*Registry) error

// WithShell overrides the command line used to run command templates and
// exec_command, e.g. WithShell("sh", "-c"). The skill command is appended as
// the final argument.
func WithShell(argv ...string) Option {
	return func(r *Registry) error {
		if len(argv) == 0 {
			return errors.New("shell must have at least one argument")
		}
		r.shell = argv
		return nil
	}
}

// WithAllowList restricts which templated skills LoadRegistry registers.
// Patterns are glob-style; an empty list allows everything. Built-ins are
// not subject to the allow list.
func WithAllowList(patterns ...string) Option {
	return func(r *Registry) error {
		for _, pattern := range patterns {
			g, err := glob.Compile(pattern)
			if err != nil {
				return errors.Wrapf(err, "invalid allow list pattern %q", pattern)
			}
			r.allow = append(r.allow, g)
		}
		return nil
	}
}

// NewRegistry creates an empty registry. The registry is an explicit value:
// there is no package-level registry state.
func NewRegistry(opts ...Option) (*Registry, error) {
	r := &Registry{
		skills: make(map[string]*skills.Skill),
		shell:  []string{"bash", "-c"},
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// LoadRegistry loads every skill under root, registers them in directory
// order and appends the built-ins. Any load or registration failure aborts
// the whole construction; a partially populated registry is never returned.
func LoadRegistry(ctx context.Context, root string, opts ...Option) (*Registry, error) {
	registry, err := NewRegistry(opts...)
	if err != nil {
		return nil, err
	}

	loaded, err := skills.Load(ctx, root)
	if err != nil {
		return nil, err
	}
	for _, skill := range loaded {
		if !registry.allowed(skill.Name) {
			logger.G(ctx).WithField("skill", skill.Name).Debug("skipping skill, not in allow list")
			continue
		}
		if err := registry.Register(skill); err != nil {
			return nil, err
		}
	}

	if err := registry.RegisterBuiltins(); err != nil {
		return nil, err
	}

	logger.G(ctx).WithField("count", len(registry.order)).Debug("skill registry ready")
	return registry, nil
}

func (r *Registry) allowed(name string) bool {
	if len(r.allow) == 0 {
		return true
	}
	for _, g := range r.allow {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Register adds a skill to the registry. A name collision, including a
// templated skill shadowing a built-in name, fails with DuplicateSkillError.
func (r *Registry) Register(skill *skills.Skill) error {
	if _, exists := r.skills[skill.Name]; exists {
		return &skills.DuplicateSkillError{Name: skill.Name}
	}
	if skill.Kind != skills.KindBuiltin && slices.Contains(builtinOrder, skill.Name) {
		return &skills.DuplicateSkillError{Name: skill.Name}
	}

	r.skills[skill.Name] = skill
	r.order = append(r.order, skill.Name)
	return nil
}

// RegisterBuiltins appends the built-in skills in their fixed order.
func (r *Registry) RegisterBuiltins() error {
	for _, name := range builtinOrder {
		if err := r.Register(builtinSkill(name)); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the skill registered under name.
func (r *Registry) Get(name string) (*skills.Skill, bool) {
	skill, ok := r.skills[name]
	return skill, ok
}

// ToolSchemas returns every registered skill shaped for a model-calling
// protocol, in registration order: templated skills in directory order,
// then the built-ins.
func (r *Registry) ToolSchemas() []openai.Tool {
	schemas := make([]openai.Tool, 0, len(r.order))
	for _, name := range r.order {
		schemas = append(schemas, r.skills[name].ToolSchema())
	}
	return schemas
}
