package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/maxmatch"
)

var example1 = filepath.Join("..", "..", "graphio", "testdata", "example1.toml")

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr, logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestEnumerate_Text(t *testing.T) {
	stdout, stderr, err := execute(t, "enumerate", example1)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"[L0-R1 L1-R0 L2-R2 L4-R3 L5-R4 L6-R6]",
		"[L0-R1 L1-R0 L2-R2 L4-R5 L5-R4 L6-R6]",
		"[L0-R1 L1-R0 L3-R2 L4-R3 L5-R4 L6-R6]",
		"[L0-R1 L1-R0 L3-R2 L4-R5 L5-R4 L6-R6]",
	}, lines(stdout))
	assert.Contains(t, stderr, "maximum matchings of size")
}

func TestEnumerate_VariantsAgree(t *testing.T) {
	want, _, err := execute(t, "enumerate", example1)
	require.NoError(t, err)

	for _, args := range [][]string{
		{"--matrix"},
		{"--parallel", "4"},
		{"--provider", "dinic"},
		{"--matrix", "--parallel", "3", "--provider", "hk"},
	} {
		got, _, err := execute(t, append([]string{"enum", example1}, args...)...)
		require.NoError(t, err, args)
		assert.Equal(t, want, got, args)
	}
}

func TestEnumerate_JSONToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "matchings.json")
	stdout, stderr, err := execute(t, "enumerate", example1, "-f", "json", "-o", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var ms []core.Matching
	require.NoError(t, json.Unmarshal(data, &ms))
	require.Len(t, ms, 4)
	assert.Equal(t, core.Pair{Left: "L0", Right: "R1"}, ms[0][0])
}

func TestEnumerate_Limit(t *testing.T) {
	stdout, stderr, err := execute(t, "enumerate", example1, "--limit", "2")
	require.NoError(t, err)
	assert.Len(t, lines(stdout), 2)
	assert.Contains(t, stderr, "stopped early (limit)")
}

func TestEnumerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"negative limit", []string{"enumerate", example1, "--limit=-1"}, ErrInvalidFlag},
		{"zero parallel", []string{"enumerate", example1, "-p", "0"}, ErrInvalidFlag},
		{"negative timeout", []string{"count", example1, "--timeout=-1s"}, ErrInvalidFlag},
		{"unknown provider", []string{"enumerate", example1, "--provider", "greedy"}, ErrInvalidFlag},
		{"bad pair", []string{"check", example1, "--pair", "L0"}, ErrInvalidFlag},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, _, err := execute(t, "enumerate", example1, "-f", "xml")
	assert.Error(t, err)
	_, _, err = execute(t, "enumerate", "missing.toml")
	assert.Error(t, err)
	_, _, err = execute(t, "enumerate")
	assert.Error(t, err)
}

func TestCount(t *testing.T) {
	stdout, stderr, err := execute(t, "count", example1)
	require.NoError(t, err)
	assert.Equal(t, "4\n", stdout)
	assert.Contains(t, stderr, "maximum matchings of size")
	assert.NotContains(t, stderr, "stopped early")

	stdout, stderr, err = execute(t, "count", example1, "-n", "4")
	require.NoError(t, err)
	assert.Equal(t, "4\n", stdout)
	assert.NotContains(t, stderr, "stopped early")

	stdout, stderr, err = execute(t, "count", example1, "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, "3\n", stdout)
	assert.Contains(t, stderr, "limit")
}

func TestCheck(t *testing.T) {
	stdout, _, err := execute(t, "check", example1)
	require.NoError(t, err)
	assert.Contains(t, stdout, "maximum")
	assert.Contains(t, stdout, "6")
	assert.Contains(t, stdout, "valid bipartite graph")

	stdout, _, err = execute(t, "check", example1, "--provider", "dinic",
		"--pair", "L0-R1,L1-R0,L2-R2,L4-R3,L5-R4", "--pair", "L6-R6")
	require.NoError(t, err)
	assert.Contains(t, stdout, "is a maximum matching")

	_, _, err = execute(t, "check", example1, "--pair", "L0-R1,L1-R0")
	assert.ErrorIs(t, err, maxmatch.ErrInconsistentMatching)

	_, _, err = execute(t, "check", filepath.Join("..", "..", "graphio", "testdata", "side_conflict.toml"))
	assert.ErrorIs(t, err, core.ErrSideConflict)
}

func TestParsePairs(t *testing.T) {
	m, err := parsePairs([]string{" L1-R0", "L0-R-1"})
	require.NoError(t, err)
	assert.Equal(t, core.Matching{{Left: "L0", Right: "R-1"}, {Left: "L1", Right: "R0"}}, m)

	m, err = parsePairs(nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	_, err = parsePairs([]string{"-R0"})
	assert.ErrorIs(t, err, ErrInvalidFlag)
}

func TestVerboseLogsToLogger(t *testing.T) {
	var stdout, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"count", example1, "-v"})
	require.NoError(t, root.Execute())

	assert.Equal(t, log.DebugLevel, c.Logger.GetLevel())
	assert.Contains(t, logs.String(), "Counted 4 matchings")
	assert.Contains(t, logs.String(), "enumerate: done")
}

func TestSetVersion(t *testing.T) {
	defer SetVersion("dev", "", "")
	SetVersion("1.0.0", "abc123", "2024-01-01")
	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2024-01-01", date)
}
