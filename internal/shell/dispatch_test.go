package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"myshell/internal/config"
)

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Prompt.Color = false
	cfg.History.File = ""

	out := &bytes.Buffer{}
	errw := &bytes.Buffer{}
	return New(strings.NewReader(""), out, errw, cfg), out, errw
}

// chdir stands in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestDispatchMissingRequiredArgFallsThrough(t *testing.T) {
	for _, command := range []string{"cat", "stat", "mkdir", "rmdir", "rm"} {
		t.Run(command, func(t *testing.T) {
			s, out, errw := newTestShell(t)
			require.NoError(t, s.dispatch(command))
			require.Zero(t, out.Len())
			require.Equal(t, "myshell: "+command+": No such file or directory\n", errw.String())
		})
	}
}

func TestDispatchUnrecognizedEchoesWholeLine(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{name: "no token boundary", line: "cdsomething"},
		{name: "unknown command", line: "grep foo bar"},
		{name: "pwd takes no argument", line: "pwd here"},
		{name: "exit takes no argument", line: "exit 1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, out, errw := newTestShell(t)
			require.NoError(t, s.dispatch(tc.line))
			require.Zero(t, out.Len())
			require.Equal(t, "myshell: "+tc.line+": No such file or directory\n", errw.String())
		})
	}
}

func TestDispatchEmptyLineIsNoOp(t *testing.T) {
	s, out, errw := newTestShell(t)
	require.NoError(t, s.dispatch(""))
	require.Zero(t, out.Len())
	require.Zero(t, errw.Len())
}

func TestDispatchExit(t *testing.T) {
	s, _, _ := newTestShell(t)
	require.ErrorIs(t, s.dispatch("exit"), errExit)
}

func TestDispatchLsDefaultsToCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"one", "two"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	chdir(t, dir)

	s, out, errw := newTestShell(t)
	require.NoError(t, s.dispatch("ls"))
	bare := out.String()
	require.Zero(t, errw.Len())

	out.Reset()
	require.NoError(t, s.dispatch("ls ."))
	require.Equal(t, bare, out.String())
	require.ElementsMatch(t, []string{"one", "two"}, strings.Fields(bare))
}

func TestDispatchMkdirRmdirRoundTrip(t *testing.T) {
	chdir(t, t.TempDir())
	s, _, errw := newTestShell(t)

	require.NoError(t, s.dispatch("mkdir foo"))
	info, err := os.Stat("foo")
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.Zero(t, errw.Len())

	require.NoError(t, s.dispatch("rmdir foo"))
	_, err = os.Stat("foo")
	require.True(t, os.IsNotExist(err))
	require.Zero(t, errw.Len())

	require.NoError(t, s.dispatch("rmdir foo"))
	require.Equal(t, "rmdir: no such file or directory\n", errw.String())
}

func TestDispatchErrorReportFormat(t *testing.T) {
	s, out, errw := newTestShell(t)
	require.NoError(t, s.dispatch("cat "+filepath.Join(t.TempDir(), "missing")))
	require.Zero(t, out.Len())
	require.Equal(t, "cat: no such file or directory\n", errw.String())
}

func TestDispatchExtraTokensIgnored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi"), 0o644))
	chdir(t, dir)

	s, out, errw := newTestShell(t)
	require.NoError(t, s.dispatch("cat a.txt b.txt"))
	require.Equal(t, "hi", out.String())
	require.Zero(t, errw.Len())
}

func TestDispatchCdChangesWorkingDirectory(t *testing.T) {
	chdir(t, t.TempDir())
	target := t.TempDir()

	s, _, errw := newTestShell(t)
	require.NoError(t, s.dispatch("cd "+target))
	require.Zero(t, errw.Len())

	wd, err := os.Getwd()
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	require.Equal(t, resolved, wd)

	require.NoError(t, s.dispatch("cd /definitely-not-here"))
	require.Equal(t, "cd: no such file or directory\n", errw.String())
	after, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, resolved, after)
}

func TestDispatchFailureNeverStopsTheLoop(t *testing.T) {
	chdir(t, t.TempDir())
	s, out, errw := newTestShell(t)

	require.NoError(t, s.dispatch("cat missing"))
	require.NoError(t, s.dispatch("pwd"))

	require.Equal(t, "cat: no such file or directory\n", errw.String())
	require.NotZero(t, out.Len())
}
