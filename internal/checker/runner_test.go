package checker

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	correctoerrors "github.com/alexisbeaulieu97/correcto/pkg/errors"
)

func writeScript(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o755))
	return path
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell assumptions do not hold on Windows")
	}
}

func TestExecRunnerCapturesStdoutAndStdin(t *testing.T) {
	skipOnWindows(t)
	script := writeScript(t, t.TempDir(), "spellchecker.exe", `#!/bin/sh
read -r word
echo "Suggestions for '$word':"
echo "- fixed"
`)

	res, err := NewExecRunner().Run(context.Background(), Invocation{Path: script, Input: "wrod\n"})
	require.NoError(t, err)

	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "Suggestions for 'wrod':\n- fixed\n", res.Stdout)
	assert.Empty(t, res.Stderr)
	assert.Positive(t, res.Duration)
}

func TestExecRunnerNonZeroExitIsNotAnError(t *testing.T) {
	skipOnWindows(t)
	script := writeScript(t, t.TempDir(), "spellchecker.exe", `#!/bin/sh
echo "dictionary missing" >&2
exit 3
`)

	res, err := NewExecRunner().Run(context.Background(), Invocation{Path: script, Input: "x"})
	require.NoError(t, err)

	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "dictionary missing\n", res.Stderr)
}

func TestExecRunnerUsesWorkDirAndArgs(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	script := writeScript(t, dir, "spellchecker.exe", `#!/bin/sh
pwd
echo "$1"
`)

	res, err := NewExecRunner().Run(context.Background(), Invocation{Path: script, Args: []string{"--lang=en"}, WorkDir: dir})
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, resolved)
	assert.Contains(t, res.Stdout, "--lang=en")
}

func TestExecRunnerMissingBinary(t *testing.T) {
	res, err := NewExecRunner().Run(context.Background(), Invocation{Path: filepath.Join(t.TempDir(), "absent.exe")})
	require.Error(t, err)
	assert.Equal(t, -1, res.ExitCode)
}

func TestExecRunnerEmptyPath(t *testing.T) {
	_, err := NewExecRunner().Run(context.Background(), Invocation{Path: " "})
	require.Error(t, err)
}

func TestExecRunnerHonoursDeadline(t *testing.T) {
	skipOnWindows(t)
	script := writeScript(t, t.TempDir(), "spellchecker.exe", `#!/bin/sh
exec sleep 10
`)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := NewExecRunner().Run(ctx, Invocation{Path: script})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestServiceWithRealProcess(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()

	ok := writeScript(t, dir, "ok.exe", `#!/bin/sh
cat >/dev/null
echo "Suggestions for 'teh':"
echo "- the"
echo "- tech"
`)
	failing := writeScript(t, dir, "fail.exe", `#!/bin/sh
echo "dictionary missing" >&2
exit 1
`)
	slow := writeScript(t, dir, "slow.exe", `#!/bin/sh
exec sleep 10
`)

	t.Run("success", func(t *testing.T) {
		svc := NewService(nil, Options{Path: ok, Timeout: 5 * time.Second}, nil)
		report, err := svc.Check(context.Background(), "teh cat")
		require.NoError(t, err)
		require.Equal(t, []string{"Suggestions for 'teh':", "    - the", "    - tech"}, report.Lines)
	})

	t.Run("process failure", func(t *testing.T) {
		svc := NewService(nil, Options{Path: failing, Timeout: 5 * time.Second}, nil)
		_, err := svc.Check(context.Background(), "teh cat")
		require.Equal(t, correctoerrors.KindProcessFailed, correctoerrors.KindOf(err))
		require.Contains(t, err.Error(), "dictionary missing")
	})

	t.Run("timeout", func(t *testing.T) {
		svc := NewService(nil, Options{Path: slow, Timeout: time.Second}, nil)
		_, err := svc.Check(context.Background(), "teh cat")
		require.Equal(t, correctoerrors.KindTimeout, correctoerrors.KindOf(err))
	})

	t.Run("missing binary", func(t *testing.T) {
		svc := NewService(nil, Options{Path: filepath.Join(dir, "nope.exe"), Timeout: time.Second}, nil)
		_, err := svc.Check(context.Background(), "teh cat")
		require.Equal(t, correctoerrors.KindUnexpected, correctoerrors.KindOf(err))
	})
}
