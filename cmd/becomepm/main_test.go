package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/become-pm/internal/config"
)

func newFlagCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVar(&flagFPS, "fps", 0, "")
	cmd.Flags().StringVar(&flagDBPath, "db", "", "")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "")
	return cmd
}

func TestApplyFlagsKeepsConfigWhenUnset(t *testing.T) {
	cfg := config.Default()
	got := applyFlags(cfg, newFlagCmd())
	assert.Equal(t, cfg, got)
}

func TestApplyFlagsOverrides(t *testing.T) {
	cmd := newFlagCmd()
	require.NoError(t, cmd.Flags().Set("fps", "30"))
	require.NoError(t, cmd.Flags().Set("db", ":memory:"))
	require.NoError(t, cmd.Flags().Set("log-level", "debug"))

	got := applyFlags(config.Default(), cmd)
	assert.Equal(t, 30, got.Game.TargetFPS)
	assert.Equal(t, ":memory:", got.Storage.Path)
	assert.Equal(t, "debug", got.Log.Level)
	assert.NoError(t, got.Validate())
}

func TestApplyFlagsInvalidFPSFailsValidation(t *testing.T) {
	cmd := newFlagCmd()
	require.NoError(t, cmd.Flags().Set("fps", "-1"))

	got := applyFlags(config.Default(), cmd)
	assert.Error(t, got.Validate())
}

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"play", "list", "scores", "reset", "bench"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestTitleOf(t *testing.T) {
	assert.NotEqual(t, "square", titleOf("square"))
	assert.Equal(t, "nope", titleOf("nope"))
}
