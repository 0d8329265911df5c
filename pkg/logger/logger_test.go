package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogger(t *testing.T) {
	t.Run("falls back to global entry", func(t *testing.T) {
		entry := G(context.Background())
		require.NotNil(t, entry)
		assert.Equal(t, L.Logger, entry.Logger)
	})

	t.Run("retrieves the entry attached to the context", func(t *testing.T) {
		var buf bytes.Buffer
		l := logrus.New()
		l.SetOutput(&buf)
		custom := logrus.NewEntry(l).WithField("component", "test")

		ctx := WithLogger(context.Background(), custom)
		G(ctx).Info("hello")

		assert.Contains(t, buf.String(), "component=test")
		assert.Contains(t, buf.String(), "hello")
	})
}

func TestSetLogLevel(t *testing.T) {
	t.Run("valid level", func(t *testing.T) {
		require.NoError(t, SetLogLevel("debug"))
		assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())
		require.NoError(t, SetLogLevel("info"))
	})

	t.Run("invalid level", func(t *testing.T) {
		assert.Error(t, SetLogLevel("chatty"))
	})
}
