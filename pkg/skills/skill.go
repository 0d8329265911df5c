// Package skills turns human-authored SKILL.md documents into machine-callable
// tool definitions. A skill is packaged as a directory containing a SKILL.md
// with a description section and a usage section; the usage section's first
// line is a shell command template with {name} placeholders, and subsequent
// "- name: text" lines document each placeholder.
package skills

import (
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Kind discriminates the two skill variants.
type Kind int

const (
	// KindTemplated is a skill backed by a shell command template.
	KindTemplated Kind = iota
	// KindBuiltin is a skill backed by a built-in handler.
	KindBuiltin
)

// Parameter is one required string parameter of a skill.
type Parameter struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Skill is the normalized, machine-usable representation of one capability.
// It is a tagged variant: either a command template loaded from a SKILL.md
// document, or a built-in handler identified by Builtin. Skills are
// constructed once at load time and immutable thereafter.
type Skill struct {
	Name        string
	Description string
	Kind        Kind
	Template    string      // KindTemplated only
	Params      []Parameter // required parameters, placeholder order
	Builtin     string      // KindBuiltin only, handler id
}

// ToolSchema shapes the skill for consumption by a model-calling protocol.
// The required list preserves the parameter order of the skill.
func (s *Skill) ToolSchema() openai.Tool {
	properties := make(map[string]jsonschema.Definition, len(s.Params))
	required := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		properties[p.Name] = jsonschema.Definition{
			Type:        jsonschema.String,
			Description: p.Description,
		}
		required = append(required, p.Name)
	}

	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        s.Name,
			Description: s.Description,
			Parameters: jsonschema.Definition{
				Type:       jsonschema.Object,
				Properties: properties,
				Required:   required,
			},
		},
	}
}
