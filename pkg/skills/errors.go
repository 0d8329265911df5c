package skills

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyDescription indicates a description section that is absent,
	// whitespace-only, or empty after joining.
	ErrEmptyDescription = errors.New("description section is empty")
	// ErrEmptyUsage indicates a usage section with no non-blank lines.
	ErrEmptyUsage = errors.New("usage section is empty")
)

// MissingSectionError indicates a SKILL.md without a required section.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("missing %q section", e.Section)
}

// MissingParamDescError indicates a command template placeholder with no
// matching "- name: text" description line.
type MissingParamDescError struct {
	Param string
}

func (e *MissingParamDescError) Error() string {
	return fmt.Sprintf("missing description for parameter %q", e.Param)
}

// DuplicateSkillError indicates a skill name collision at registration time.
type DuplicateSkillError struct {
	Name string
}

func (e *DuplicateSkillError) Error() string {
	return fmt.Sprintf("duplicate skill name %q", e.Name)
}
