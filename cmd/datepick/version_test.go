package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-19"

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.True(t, strings.HasPrefix(output, "datepick 1.2.3\n"))
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-19")
}

func TestVersionCommandShortForm(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})

	version = "1.2.3"
	commit = "abcdef1234567890"
	date = "2026-10-19"

	out, err := executeCommand(t, "version", "--short")
	require.NoError(t, err)
	require.Equal(t, "datepick 1.2.3 (abcdef1, 2026-10-19)\n", out)

	commit = "none"
	out, err = executeCommand(t, "version", "--short")
	require.NoError(t, err)
	require.Equal(t, "datepick 1.2.3 (none, 2026-10-19)\n", out)
}
