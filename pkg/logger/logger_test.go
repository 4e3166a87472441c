package logger

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

const mockLogLevel int8 = 0 // zapcore.InfoLevel

func discardSink() zapcore.WriteSyncer {
	sink, _, _ := OpenSink("")
	return sink
}

func TestGetReturnsSameInstanceOnSubsequentCalls(t *testing.T) {
	logger1 := Get(mockLogLevel, discardSink())
	logger2 := Get(DebugLevel, discardSink())
	require.NotNil(t, logger1)
	assert.Same(t, logger1, logger2)
}

func TestSetupReusesGlobalLogger(t *testing.T) {
	global := Get(mockLogLevel, discardSink())
	got, err := Setup(mockLogLevel, filepath.Join(t.TempDir(), "unused.log"))
	require.NoError(t, err)
	assert.Same(t, global, got)
}

func TestOpenSinkWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ijqrs.log")
	sink, closeFn, err := OpenSink(path)
	require.NoError(t, err)
	_, err = sink.Write([]byte("{\"message\":\"hi\"}\n"))
	require.NoError(t, err)
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hi")
}

func TestOpenSinkEmptyPathDiscards(t *testing.T) {
	sink, closeFn, err := OpenSink("")
	require.NoError(t, err)
	n, err := sink.Write([]byte("dropped"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	closeFn()
}

func TestOpenSinkBadPath(t *testing.T) {
	_, _, err := OpenSink(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	assert.Error(t, err)
}

func TestWithLogger(t *testing.T) {
	logger := Get(mockLogLevel, discardSink())
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
	assert.Equal(t, ctx, WithLogger(ctx, logger), "same logger keeps the context")

	other := logr.Discard()
	replaced := WithLogger(ctx, &other)
	assert.Same(t, &other, FromContext(replaced))
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	global := Get(mockLogLevel, discardSink())
	assert.Same(t, global, FromContext(context.Background()))
}

func TestFromContextReturnsNoopWithoutGlobal(t *testing.T) {
	orig := globalLogrLogger
	globalLogrLogger = nil
	t.Cleanup(func() { globalLogrLogger = orig })

	assert.Same(t, &defaultNoopLogger, FromContext(context.Background()))
}

func TestSyncWithoutLogger(t *testing.T) {
	orig := globalZapLogger
	globalZapLogger = nil
	t.Cleanup(func() { globalZapLogger = orig })

	assert.NotPanics(t, Sync)
}

func TestIsIgnorableSyncError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "enotty", err: &os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.ENOTTY}, want: true},
		{name: "einval", err: syscall.EINVAL, want: true},
		{name: "windows handle", err: &os.PathError{Op: "sync", Path: "CONOUT$", Err: errors.New("The handle is invalid.")}, want: true},
		{name: "other error", err: assert.AnError, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isIgnorableSyncError(tt.err))
		})
	}
}

func TestWithValuesReturnsNewLogger(t *testing.T) {
	logger := Get(mockLogLevel, discardSink())
	newLogger := WithValues(logger, QueryKey, ".|keys")
	require.NotNil(t, newLogger)
	assert.NotSame(t, logger, newLogger)
}

func TestGetNoopLoggerIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { GetNoopLogger().Info("nothing") })
}
