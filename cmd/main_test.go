package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	if args == nil {
		args = []string{}
	}

	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return out.String(), err
}

func TestRootRunsDemo(t *testing.T) {
	out, err := runRoot(t, "")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Current list length: 3\n"))
	require.True(t, strings.HasSuffix(out, "Final list length: 0\n"))
}

func TestExecCommand(t *testing.T) {
	out, err := runRoot(t, "", "exec", "pushfront 2; pushback 3", "pushfront 1; popfront; popback; popfront; empty")
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3\n1\n3\n2\ntrue\n", out)

	out, err = runRoot(t, "pushback x\npopback\npopback\n", "exec")
	require.NoError(t, err)
	require.Equal(t, "1\nx\n<nil>\n", out)

	_, err = runRoot(t, "", "exec", "shuffle")
	require.Error(t, err)
}

func TestStressCommand(t *testing.T) {
	out, err := runRoot(t, "", "stress", "--size", "1000", "--drain", "back", "--log-level", "error")
	require.NoError(t, err)
	require.Equal(t, "built 1000, released 1000, final length 0\n", out)

	_, err = runRoot(t, "", "stress", "--drain", "sideways")
	require.Error(t, err)
}

func TestDumpConfigCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dlist.toml")
	_, err := runRoot(t, "", "dumpconfig", file)
	require.NoError(t, err)

	cfg, err := loadDemoConfig(file)
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
}

func TestVersionCommand(t *testing.T) {
	out, err := runRoot(t, "", "version")
	require.NoError(t, err)
	require.Equal(t, "dlist version "+DemoVersion+"\n", out)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := runRoot(t, "", "--log-level", "loud")
	require.Error(t, err)
}
