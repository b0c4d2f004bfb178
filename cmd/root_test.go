package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeRoot runs the real command tree with args and returns everything it
// printed.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs([]string{})
		if f := rootCmd.Flags().Lookup("version"); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func withVersion(t *testing.T, v string) {
	t.Helper()
	original := rootCmd.Version
	t.Cleanup(func() { rootCmd.Version = original })
	SetVersion(v)
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "navhud", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
	assert.Contains(t, rootCmd.Long, "turn-by-turn navigation banner")

	for _, name := range []string{"run", "route", "version", "self-update"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	inspect, _, err := rootCmd.Find([]string{"route", "inspect"})
	require.NoError(t, err)
	assert.Equal(t, "inspect", inspect.Name())
}

func TestVersionOutput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"subcommand", []string{"version"}},
		{"flag", []string{"--version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, "0.4.2")
			out, err := executeRoot(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, "navhud version 0.4.2\n", out)
		})
	}
}

func TestRunRejectsArguments(t *testing.T) {
	_, err := executeRoot(t, "run", "extra")
	assert.Error(t, err)
}
