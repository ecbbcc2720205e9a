package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("development logger honours level", func(t *testing.T) {
		l, err := New("development", "warn")
		require.NoError(t, err)
		assert.False(t, l.SugaredLogger.Desugar().Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.SugaredLogger.Desugar().Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		assert.Equal(t, zapcore.InfoLevel, parseLevel("chatty"))
		assert.Equal(t, zapcore.DebugLevel, parseLevel(" DEBUG "))
	})
}

func TestForContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	ctx := WithRequestID(context.Background(), "req-42")
	l.ForContext(ctx).Info("hello", "k", "v")
	l.ForContext(context.Background()).Info("no id")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
	_, has := entries[1].ContextMap()["request_id"]
	assert.False(t, has)
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
	assert.Equal(t, "abc", RequestID(WithRequestID(context.Background(), "abc")))
}
