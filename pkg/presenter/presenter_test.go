package presenter

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestTerminalPresenter(t *testing.T) {
	t.Run("error goes to the error writer", func(t *testing.T) {
		var out, errOut bytes.Buffer
		p := NewWithWriters(&out, &errOut)

		p.Error(errors.New("boom"), "loading skills")
		assert.Contains(t, errOut.String(), "loading skills")
		assert.Contains(t, errOut.String(), "boom")
		assert.Empty(t, out.String())
	})

	t.Run("nil error prints nothing", func(t *testing.T) {
		var out, errOut bytes.Buffer
		p := NewWithWriters(&out, &errOut)

		p.Error(nil, "context")
		assert.Empty(t, errOut.String())
	})

	t.Run("quiet mode suppresses info but not errors", func(t *testing.T) {
		var out, errOut bytes.Buffer
		p := NewWithWriters(&out, &errOut)
		p.SetQuiet(true)

		p.Info("hidden")
		p.Success("also hidden")
		p.Error(errors.New("still shown"), "")

		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "still shown")
	})
}
