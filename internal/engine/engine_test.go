package engine

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-based engine stubs need a POSIX sh")
	}
}

func TestResultDisplay(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want string
	}{
		{name: "stdout preferred", res: Result{Stdout: "[1]\n", Stderr: "warn"}, want: "[1]\n"},
		{name: "stderr fallback", res: Result{Stderr: "jq: error: syntax"}, want: "jq: error: syntax"},
		{name: "both empty", res: Result{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.Display())
		})
	}
}

func TestNewDefaultsBinary(t *testing.T) {
	assert.Equal(t, DefaultBinary, New("").Binary)
	assert.Equal(t, "gojq", New("gojq").Binary)
}

func TestExecPassesQueryThenPath(t *testing.T) {
	requireShell(t)
	r := New("sh", "-c", `printf '%s|%s' "$0" "$1"`)
	res, err := r.Run(context.Background(), ".|keys", "/tmp/doc.json")
	require.NoError(t, err)
	assert.Equal(t, ".|keys|/tmp/doc.json", res.Stdout)
	assert.Zero(t, res.ExitCode)
}

func TestExecNonZeroExitIsNotAnError(t *testing.T) {
	requireShell(t)
	r := New("sh", "-c", `echo "jq: error: $0" >&2; exit 3`)
	res, err := r.Run(context.Background(), ".[", "doc.json")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Empty(t, res.Stdout)
	assert.Equal(t, "jq: error: .[\n", res.Display())
}

func TestExecMissingBinary(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "no-such-engine"))
	_, err := r.Run(context.Background(), ".", "doc.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStart))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExecWithRealJQ(t *testing.T) {
	if _, err := exec.LookPath("jq"); err != nil {
		t.Skip("jq not installed")
	}
	doc := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{"b":1,"a":2}`), 0o600))

	res, err := New("jq", "-c").Run(context.Background(), ".|keys", doc)
	require.NoError(t, err)
	assert.Equal(t, "[\"a\",\"b\"]\n", res.Display())
}
