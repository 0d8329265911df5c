package skills

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSections(t *testing.T) {
	t.Run("basic document", func(t *testing.T) {
		doc := "\n \n# TITLE \nSample Skill\n\n## usage\nls {dir}\nlist files of dir.\n\n## Meta \nCopyright@2026\nhttps://example.org\n"
		sections := SplitSections(doc)

		assert.Equal(t, "Sample Skill", sections["title"])
		assert.Equal(t, "ls {dir}\nlist files of dir.", sections["usage"])
		assert.Equal(t, "Copyright@2026\nhttps://example.org", sections["meta"])
		_, ok := sections["reference"]
		assert.False(t, ok)
	})

	t.Run("no headings returns empty map", func(t *testing.T) {
		sections := SplitSections("just some text\nwith no headings\n")
		assert.Empty(t, sections)
	})

	t.Run("leading content before first heading is discarded", func(t *testing.T) {
		sections := SplitSections("preamble text\n# first\nbody\n")
		assert.Len(t, sections, 1)
		assert.Equal(t, "body", sections["first"])
	})

	t.Run("heading with no body maps to empty string", func(t *testing.T) {
		sections := SplitSections("# first\n# second\ncontent\n")
		assert.Equal(t, "", sections["first"])
		assert.Equal(t, "content", sections["second"])
	})

	t.Run("later duplicate heading overwrites earlier", func(t *testing.T) {
		sections := SplitSections("# usage\nold body\n# usage\nnew body\n")
		assert.Equal(t, "new body", sections["usage"])
	})

	t.Run("heading text is lower-cased and trimmed", func(t *testing.T) {
		sections := SplitSections("##   Description  \ntext\n")
		assert.Equal(t, "text", sections["description"])
	})

	t.Run("six markers is not a heading", func(t *testing.T) {
		sections := SplitSections("# top\n###### deep\nstill in top\n")
		assert.Len(t, sections, 1)
		assert.Equal(t, "###### deep\nstill in top", sections["top"])
	})

	t.Run("marker without whitespace is not a heading", func(t *testing.T) {
		sections := SplitSections("# top\n#tag in body\n")
		assert.Equal(t, "#tag in body", sections["top"])
	})

	t.Run("section bodies end at headings of any level", func(t *testing.T) {
		doc := "# outer\nouter body\n##### inner\ninner body\n"
		sections := SplitSections(doc)
		assert.Equal(t, "outer body", sections["outer"])
		assert.Equal(t, "inner body", sections["inner"])
	})
}

func TestParseDescription(t *testing.T) {
	t.Run("joins non-blank lines with spaces", func(t *testing.T) {
		description, err := ParseDescription("\n Use pandoc to convert \n between the formats \n")
		require.NoError(t, err)
		assert.Equal(t, "Use pandoc to convert between the formats", description)
	})

	t.Run("single line passes through trimmed", func(t *testing.T) {
		description, err := ParseDescription("  Say hello  ")
		require.NoError(t, err)
		assert.Equal(t, "Say hello", description)
	})

	t.Run("empty section fails", func(t *testing.T) {
		_, err := ParseDescription("")
		assert.ErrorIs(t, err, ErrEmptyDescription)
	})

	t.Run("whitespace-only section fails", func(t *testing.T) {
		_, err := ParseDescription("  \n\t\n  ")
		assert.ErrorIs(t, err, ErrEmptyDescription)
	})
}

func TestParseUsage(t *testing.T) {
	usage := `
 pandoc -f {input_format} -t {output_format} -o {output_file} {input_file}
 - input_format: specify input format, can be asciidoc, html, markdown
 - output_format: specify output format, can be asciidoc, docx, pdf
 - output_file: the output file name
 - input_file: the input file name
`

	t.Run("template and ordered parameters", func(t *testing.T) {
		template, params, err := ParseUsage(usage)
		require.NoError(t, err)

		assert.Equal(t, "pandoc -f {input_format} -t {output_format} -o {output_file} {input_file}", template)
		require.Len(t, params, 4)

		names := make([]string, 0, len(params))
		for _, p := range params {
			names = append(names, p.Name)
		}
		assert.Equal(t, []string{"input_format", "output_format", "output_file", "input_file"}, names)
		assert.Equal(t, "the output file name", params[2].Description)
	})

	t.Run("repeated placeholders are collapsed in first-appearance order", func(t *testing.T) {
		_, params, err := ParseUsage("cp {b} {a} {b}\n- a: destination\n- b: source\n")
		require.NoError(t, err)
		require.Len(t, params, 2)
		assert.Equal(t, "b", params[0].Name)
		assert.Equal(t, "a", params[1].Name)
	})

	t.Run("first missing description fails fast", func(t *testing.T) {
		_, _, err := ParseUsage("convert {x} {y}\n")

		var missing *MissingParamDescError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "x", missing.Param)
	})

	t.Run("missing description names the undocumented placeholder", func(t *testing.T) {
		_, _, err := ParseUsage("convert {x} {y}\n- x: the input\n")

		var missing *MissingParamDescError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "y", missing.Param)
	})

	t.Run("descriptions for non-placeholders are dropped", func(t *testing.T) {
		_, params, err := ParseUsage("echo {name}\n- name: the name\n- extra: a note that is not a placeholder\n")
		require.NoError(t, err)
		require.Len(t, params, 1)
		assert.Equal(t, "name", params[0].Name)
	})

	t.Run("non-matching lines are ignored", func(t *testing.T) {
		_, params, err := ParseUsage("echo {name}\nsome free-form note\n- name: the name\n")
		require.NoError(t, err)
		assert.Len(t, params, 1)
	})

	t.Run("empty usage fails", func(t *testing.T) {
		_, _, err := ParseUsage(" \n\t\n")
		assert.ErrorIs(t, err, ErrEmptyUsage)
	})

	t.Run("template without placeholders needs no descriptions", func(t *testing.T) {
		template, params, err := ParseUsage("date\n")
		require.NoError(t, err)
		assert.Equal(t, "date", template)
		assert.Empty(t, params)
	})

	t.Run("parse is idempotent on its structured output", func(t *testing.T) {
		template, params, err := ParseUsage(usage)
		require.NoError(t, err)

		var b strings.Builder
		b.WriteString(template + "\n")
		for _, p := range params {
			fmt.Fprintf(&b, "- %s: %s\n", p.Name, p.Description)
		}

		template2, params2, err := ParseUsage(b.String())
		require.NoError(t, err)
		assert.Equal(t, template, template2)
		assert.Equal(t, params, params2)
	})
}

func TestParse(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		doc := `# greet

## Description
Say hello
to someone.

## Usage
echo hello {name}
- name: the name to greet
`
		skill, err := Parse("greet", doc)
		require.NoError(t, err)

		assert.Equal(t, "greet", skill.Name)
		assert.Equal(t, "Say hello to someone.", skill.Description)
		assert.Equal(t, KindTemplated, skill.Kind)
		assert.Equal(t, "echo hello {name}", skill.Template)
		require.Len(t, skill.Params, 1)
		assert.Equal(t, Parameter{Name: "name", Description: "the name to greet"}, skill.Params[0])
	})

	t.Run("missing description section", func(t *testing.T) {
		_, err := Parse("broken", "## Usage\necho hi\n")

		var missing *MissingSectionError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "description", missing.Section)
	})

	t.Run("missing usage section", func(t *testing.T) {
		_, err := Parse("broken", "## Description\nA skill.\n")

		var missing *MissingSectionError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "usage", missing.Section)
	})
}

func TestToolSchema(t *testing.T) {
	skill := &Skill{
		Name:        "greet",
		Description: "Say hello",
		Kind:        KindTemplated,
		Template:    "echo hello {name}",
		Params:      []Parameter{{Name: "name", Description: "the name to greet"}},
	}

	schema := skill.ToolSchema()
	assert.Equal(t, "function", string(schema.Type))
	require.NotNil(t, schema.Function)
	assert.Equal(t, "greet", schema.Function.Name)
	assert.Equal(t, "Say hello", schema.Function.Description)
}
