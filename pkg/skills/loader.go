package skills

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/puppylab/miniagent/pkg/logger"
)

const skillFileName = "SKILL.md"

// Load parses every skill under root. Immediate subdirectories are candidate
// skills, visited in lexicographic order; a subdirectory without a SKILL.md
// is silently skipped. Any malformed document fails the whole load: the
// registry must never start from a partially loaded state.
func Load(ctx context.Context, root string) ([]*Skill, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read skills directory %s", root)
	}

	var loaded []*Skill
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(root, entry.Name(), skillFileName)
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}

		skill, err := Parse(entry.Name(), string(content))
		if err != nil {
			return nil, errors.Wrapf(err, "skill %q", entry.Name())
		}

		logger.G(ctx).WithField("skill", skill.Name).
			WithField("params", len(skill.Params)).
			Debug("loaded skill")
		loaded = append(loaded, skill)
	}

	return loaded, nil
}

// Parse builds a templated skill from the contents of its SKILL.md. The
// skill name is supplied by the caller (the containing directory's base
// name).
func Parse(name, doc string) (*Skill, error) {
	sections := SplitSections(doc)
	for _, section := range []string{"description", "usage"} {
		if _, ok := sections[section]; !ok {
			return nil, &MissingSectionError{Section: section}
		}
	}

	description, err := ParseDescription(sections["description"])
	if err != nil {
		return nil, err
	}

	template, params, err := ParseUsage(sections["usage"])
	if err != nil {
		return nil, err
	}

	return &Skill{
		Name:        name,
		Description: description,
		Kind:        KindTemplated,
		Template:    template,
		Params:      params,
	}, nil
}
