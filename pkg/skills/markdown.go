package skills

import (
	"regexp"
	"strings"
)

var (
	headingRe     = regexp.MustCompile(`^#{1,5}\s+.+$`)
	headingMarkRe = regexp.MustCompile(`^#{1,5}\s+`)
	placeholderRe = regexp.MustCompile(`\{(\w+)\}`)
	paramLineRe   = regexp.MustCompile(`^-\s*(\w+)\s*:\s*(.*)$`)
)

// SplitSections breaks a markdown document into a mapping from lower-cased,
// trimmed heading text to the trimmed body that follows it, up to the next
// heading of any level. Headings are lines starting with one to five '#'
// characters followed by whitespace. Content before the first heading is
// discarded; a later duplicate heading overwrites the earlier one.
func SplitSections(doc string) map[string]string {
	sections := make(map[string]string)

	var name string
	var body []string
	inSection := false

	flush := func() {
		if inSection {
			sections[name] = strings.TrimSpace(strings.Join(body, "\n"))
		}
		body = body[:0]
	}

	for _, line := range strings.Split(doc, "\n") {
		if headingRe.MatchString(line) {
			flush()
			name = strings.ToLower(strings.TrimSpace(headingMarkRe.ReplaceAllString(line, "")))
			inSection = true
			continue
		}
		if inSection {
			body = append(body, line)
		}
	}
	flush()

	return sections
}

// ParseDescription normalizes a description section into a single line:
// blank lines are dropped and the remaining lines are joined with single
// spaces. Returns ErrEmptyDescription when nothing is left.
func ParseDescription(body string) (string, error) {
	lines := nonBlankLines(body)
	if len(lines) == 0 {
		return "", ErrEmptyDescription
	}
	return strings.Join(lines, " "), nil
}

// ParseUsage extracts the command template and parameter schema from a usage
// section. The first non-blank line is the template; remaining non-blank
// lines of the form "- name: text" describe parameters, anything else is
// ignored. The returned parameters are the template's placeholders in order
// of first appearance with duplicates removed. Every placeholder must be
// described; the first one without a description fails the parse with
// MissingParamDescError. Described names that are not placeholders are
// dropped from the schema.
func ParseUsage(body string) (string, []Parameter, error) {
	lines := nonBlankLines(body)
	if len(lines) == 0 {
		return "", nil, ErrEmptyUsage
	}

	template := lines[0]

	descriptions := make(map[string]string)
	for _, line := range lines[1:] {
		if m := paramLineRe.FindStringSubmatch(line); m != nil {
			descriptions[m[1]] = strings.TrimSpace(m[2])
		}
	}

	var params []Parameter
	seen := make(map[string]bool)
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true

		description, ok := descriptions[name]
		if !ok {
			return "", nil, &MissingParamDescError{Param: name}
		}
		params = append(params, Parameter{Name: name, Description: description})
	}

	return template, params, nil
}

func nonBlankLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
