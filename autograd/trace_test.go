package autograd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTraceEmitsOneEntryPerNode(t *testing.T) {
	a := NewValue(3.0)
	b := a.Add(a) // two distinct nodes: a is shared, not duplicated

	core, logs := observer.New(zapcore.DebugLevel)
	Trace(b, zap.New(core))

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	last := entries[1].ContextMap()
	assert.Equal(t, "leaf", first["op"])
	assert.Equal(t, "add", last["op"])
	assert.Equal(t, 6.0, last["value"])
}

func TestTraceNilLoggerIsSilent(t *testing.T) {
	assert.NotPanics(t, func() {
		Trace(NewValue(1).Tanh(), nil)
	})
}
