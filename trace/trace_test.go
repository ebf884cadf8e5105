package trace_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/partial_ive_go/partial"
	"github.com/on-the-ground/partial_ive_go/trace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var subtract = partial.Func(func(args partial.Args, _ partial.KwArgs) (any, error) {
	return args[0].(int) - args[1].(int), nil
})

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestWrapForwardsResult(t *testing.T) {
	logger, logs := newObservedLogger()

	wrapped := trace.Wrap("subtract", subtract, logger)
	res, err := wrapped.Invoke(partial.Args{10, 5}, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, res)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "invoking target", entries[0].Message)
	assert.Equal(t, "target completed", entries[1].Message)

	start := entries[0].ContextMap()
	assert.Equal(t, "subtract", start["target"])
	assert.EqualValues(t, 2, start["num_args"])
	assert.NotEmpty(t, start["call_id"])
	assert.Equal(t, start["call_id"], entries[1].ContextMap()["call_id"])
}

func TestWrapForwardsErrorUnchanged(t *testing.T) {
	logger, logs := newObservedLogger()
	errBoom := errors.New("boom")
	failing := partial.Func(func(partial.Args, partial.KwArgs) (any, error) {
		return nil, errBoom
	})

	_, err := trace.Wrap("failing", failing, logger).Invoke(nil, nil)
	assert.Equal(t, errBoom, err)

	entries := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "target failed", entries[0].Message)
}

func TestWrapAttachesDelayedCallDiagnostics(t *testing.T) {
	logger, logs := newObservedLogger()

	subFive := partial.Make(subtract, partial.Args{partial.Placeholder, 5}, nil)
	wrapped := trace.Wrap("subFive", subFive, logger)

	res, err := wrapped.Invoke(partial.Args{10}, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, res)

	start := logs.All()[0].ContextMap()
	assert.Equal(t, subFive.String(), start["delayed_call"])
	assert.EqualValues(t, subFive.Fingerprint(), start["fingerprint"])
}

func TestWrappedTargetInsideDelayedCall(t *testing.T) {
	logger, logs := newObservedLogger()

	traced := trace.Wrap("subtract", subtract, logger)
	subFive := partial.Make(traced, partial.Args{partial.Placeholder, 5}, nil)

	res, err := subFive.Invoke(partial.Args{10}, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, res)

	// The inner target saw the merged argument list.
	start := logs.All()[0].ContextMap()
	assert.EqualValues(t, 2, start["num_args"])
}

func TestCallIDsDifferAcrossInvocations(t *testing.T) {
	logger, logs := newObservedLogger()
	wrapped := trace.Wrap("subtract", subtract, logger)

	_, err := wrapped.Invoke(partial.Args{3, 1}, nil)
	require.NoError(t, err)
	_, err = wrapped.Invoke(partial.Args{3, 1}, nil)
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.NotEqual(t,
		entries[0].ContextMap()["call_id"],
		entries[2].ContextMap()["call_id"],
	)
}
