package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestDemoConfigRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dlist.toml")

	cfg := defaultConfig()
	cfg.Log.Level = "debug"
	cfg.Stress.Size = 42
	cfg.Stress.Drain = drainBack
	require.NoError(t, writeDemoConfigToFile(cfg, file))

	got, err := loadDemoConfig(file)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestLoadDemoConfigKeepsDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "partial.toml")
	require.NoError(t, os.WriteFile(file, []byte("[Stress]\nSize = 7\n"), 0644))

	got, err := loadDemoConfig(file)
	require.NoError(t, err)
	require.Equal(t, 7, got.Stress.Size)
	require.Equal(t, DefaultDrain, got.Stress.Drain)
	require.Equal(t, DefaultLogLevel, got.Log.Level)
}

func TestLoadDemoConfigMissingFile(t *testing.T) {
	_, err := loadDemoConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestGetDemoConfigFlagsOverrideFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dlist.toml")
	cfg := defaultConfig()
	cfg.Log.Level = "warn"
	cfg.Stress.Size = 5
	require.NoError(t, writeDemoConfigToFile(cfg, file))

	cmd := &cobra.Command{Use: "stress"}
	registerRootFlags(cmd.Flags())
	registerStressFlags(cmd.Flags())
	require.NoError(t, cmd.Flags().Parse([]string{"-c", file, "--size", "9", "--drain", "front"}))

	got, err := getDemoConfig(cmd)
	require.NoError(t, err)
	require.Equal(t, "warn", got.Log.Level)
	require.Equal(t, 9, got.Stress.Size)
	require.Equal(t, drainFront, got.Stress.Drain)
}

func TestSetupLogger(t *testing.T) {
	_, err := setupLogger(logConfig{Level: "debug"}, os.Stderr)
	require.NoError(t, err)

	_, err = setupLogger(logConfig{Level: "loud"}, os.Stderr)
	require.Error(t, err)
}
