package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tagdo/internal/cli"
)

// isolate points home, config and session at temporary locations
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TAGDO_SESSION", "")
	t.Setenv("TAGDO_THEME_FILE", "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"add", "list", "done", "tag", "rm", "clear", "move", "tags", "session"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := root.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
			assert.NotNil(t, sub.Flags().Lookup("json"), "missing --json")
			assert.NotNil(t, sub.Flags().Lookup("quiet"), "missing --quiet")
		})
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("session"))
	assert.NotNil(t, root.PersistentFlags().Lookup("ephemeral"))
}

func TestRootCmd_SessionPersistsAcrossInvocations(t *testing.T) {
	isolate(t)

	_, err := run(t, "add", "Buy", "milk", "--session", "shell-1", "--quiet")
	require.NoError(t, err)
	_, err = run(t, "add", "Call", "bank", "--tag", "urgent", "--session", "shell-1", "--quiet")
	require.NoError(t, err)

	out, err := run(t, "list", "--session", "shell-1", "--json")
	require.NoError(t, err)

	var result struct {
		Success bool `json:"success"`
		Tasks   []struct {
			Text string `json:"text"`
			Tag  string `json:"tag"`
		} `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Tasks, 2)
	assert.Equal(t, "Buy milk", result.Tasks[0].Text)
	assert.Equal(t, "URGENT", result.Tasks[1].Tag)

	// another session sees its own list
	out, err = run(t, "list", "--session", "shell-2", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRootCmd_SessionFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("TAGDO_SESSION", "from-env")

	out, err := run(t, "session", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "from-env\n", out)
}

func TestRootCmd_Ephemeral(t *testing.T) {
	isolate(t)

	_, err := run(t, "add", "gone", "--ephemeral", "--session", "e")
	require.NoError(t, err)

	out, err := run(t, "list", "--session", "e", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRootCmd_UsageErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"list", "--bogus"}},
		{"missing argument", []string{"done", "--ephemeral"}},
		{"extra argument", []string{"tags", "extra"}},
		{"non-numeric id", []string{"rm", "abc", "--ephemeral"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitUsage, cli.CodeFor(err))
		})
	}
}

func TestRootCmd_ConfigInit(t *testing.T) {
	isolate(t)

	_, err := run(t, "config", "init")
	require.NoError(t, err)

	out, err := run(t, "config", "path")
	require.NoError(t, err)
	_, statErr := os.Stat(strings.TrimSpace(out))
	assert.NoError(t, statErr)
}

func TestRootCmd_NotFound(t *testing.T) {
	isolate(t)

	_, err := run(t, "done", "12345", "--ephemeral")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.CodeFor(err))
	assert.True(t, cli.Reported(err))
}
