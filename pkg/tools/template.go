package tools

import (
	"regexp"

	"github.com/pkg/errors"

	"github.com/puppylab/miniagent/pkg/skills"
)

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// bindTemplate substitutes call arguments into the {name} placeholders of a
// command template. Every required parameter must be bound; the first one
// without an argument fails the bind. Values are substituted verbatim, with
// no shell escaping: argument content reaches the shell as-is, so callers
// that accept untrusted arguments must quote or reject them upstream.
func bindTemplate(template string, params []skills.Parameter, args map[string]string) (string, error) {
	for _, p := range params {
		if _, ok := args[p.Name]; !ok {
			return "", errors.Errorf("missing binding for parameter %q", p.Name)
		}
	}

	return placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		if value, ok := args[name]; ok {
			return value
		}
		return m
	}), nil
}
