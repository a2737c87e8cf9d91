package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bsviz/internal/arraygen"
	"bsviz/internal/config"
	"bsviz/internal/search"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// setupCLI resets the global flags and points --config at a temp file.
func setupCLI(t *testing.T) string {
	t.Helper()
	logger = zap.NewNop()
	for _, k := range []string{"BSVIZ_SPEED", "BSVIZ_THEME", "BSVIZ_DEBUG", "BSVIZ_SEED", "BSVIZ_LOG_DIR"} {
		t.Setenv(k, "")
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	configPath = path
	seed = 7
	searchArray = ""
	searchSize = 0
	searchTarget = 0
	searchGuarantee = true
	traceFormat = "text"
	playSpeed = 0
	configForce = false

	t.Cleanup(func() {
		configPath = ""
		seed = 0
	})
	return path
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestTrace_Text(t *testing.T) {
	setupCLI(t)
	searchArray = "10,20,30,40,50"
	searchTarget = 50

	cmd, out := newTestCmd()
	require.NoError(t, runTrace(cmd, nil))

	got := out.String()
	assert.Contains(t, got, "Array:   [10 20 30 40 50]")
	assert.Contains(t, got, "Starting search for 50 in array of size 5")
	assert.Contains(t, got, "Step 3: Found! Array[4] = 50 equals target 50")
	assert.Contains(t, got, "Result: found at index 4 after 3 comparisons (worst case 3)")
}

func TestTrace_NotFoundText(t *testing.T) {
	setupCLI(t)
	searchArray = "[2 4 6 8 10]"
	searchTarget = 5

	cmd, out := newTestCmd()
	require.NoError(t, runTrace(cmd, nil))
	assert.Contains(t, out.String(), "Search complete: 5 not found in array after 3 comparisons")
	assert.Contains(t, out.String(), "Result: not found")
}

func TestTrace_JSON(t *testing.T) {
	setupCLI(t)
	searchArray = "1,2,3,4,5"
	searchTarget = 3
	traceFormat = "json"

	cmd, out := newTestCmd()
	require.NoError(t, runTrace(cmd, nil))

	var report traceReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.NotEmpty(t, report.Session)
	assert.Equal(t, search.Result{Found: true, Index: 2}, report.Result)
	require.Len(t, report.Steps, 1)
	assert.Equal(t, search.Equal, report.Steps[0].Outcome)
	assert.Equal(t, 3, report.WorstCase)
}

func TestTrace_YAMLGenerated(t *testing.T) {
	setupCLI(t)
	searchSize = 15
	searchTarget = 42
	traceFormat = "yaml"

	cmd, out := newTestCmd()
	require.NoError(t, runTrace(cmd, nil))

	var report traceReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
	assert.Len(t, report.Array, 15)
	assert.Equal(t, 42, report.Target)
	assert.True(t, report.Result.Found, "guarantee places the target")
	assert.Equal(t, 42, report.Array[report.Result.Index])
}

func TestTrace_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
	}{
		{"unsorted array", func() { searchArray = "3,1,2" }},
		{"not a number", func() { searchArray = "1,two,3" }},
		{"size too small", func() { searchSize = 2 }},
		{"target out of range", func() { searchTarget = 1000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLI(t)
			tt.setup()
			cmd, _ := newTestCmd()
			err := runTrace(cmd, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, arraygen.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestTrace_UnknownFormat(t *testing.T) {
	setupCLI(t)
	searchArray = "1,2,3"
	searchTarget = 2
	traceFormat = "xml"

	cmd, _ := newTestCmd()
	err := runTrace(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestPlay_RunsToCompletion(t *testing.T) {
	path := setupCLI(t)
	cfg := config.DefaultConfig()
	cfg.Playback.BaseInterval = "5ms"
	require.NoError(t, cfg.Save(path))

	searchArray = "10,20,30,40,50"
	searchTarget = 50
	playSpeed = 2.0

	cmd, out := newTestCmd()
	require.NoError(t, runPlay(cmd, nil))

	got := out.String()
	assert.Equal(t, 4, strings.Count(got, "Binary Search Visualization"), "ready frame plus one per step")
	assert.Contains(t, got, "Binary Search Visualization - Found")
	assert.Contains(t, got, "Result: found at index 4")
}

func TestConfigInitAndShow(t *testing.T) {
	path := setupCLI(t)

	cmd, out := newTestCmd()
	require.NoError(t, runConfigInit(cmd, nil))
	assert.Contains(t, out.String(), path)
	_, err := os.Stat(path)
	require.NoError(t, err)

	// Second init refuses to clobber without --force.
	err = runConfigInit(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	configForce = true
	require.NoError(t, runConfigInit(cmd, nil))

	t.Setenv("BSVIZ_THEME", "dark")
	cmd, out = newTestCmd()
	require.NoError(t, runConfigShow(cmd, nil))

	var shown config.Config
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &shown))
	assert.Equal(t, "dark", shown.UI.Theme)
	assert.Equal(t, uint64(7), shown.Array.Seed, "--seed applies on top of the file")
	assert.Equal(t, 20, shown.Array.DefaultSize)
}

func TestLoadConfig_RejectsInvalid(t *testing.T) {
	path := setupCLI(t)
	cfg := config.DefaultConfig()
	cfg.Playback.Speed = 9
	require.NoError(t, cfg.Save(path))

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestRootCommandWiring(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"trace", "play", "config"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
	assert.NotNil(t, traceCmd.Flags().Lookup("format"))
	assert.Nil(t, playCmd.Flags().Lookup("format"))
	assert.NotNil(t, playCmd.Flags().Lookup("speed"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("seed"))
}

func TestApplyFlagOverrides(t *testing.T) {
	setupCLI(t)
	cfg := config.DefaultConfig()
	applyFlagOverrides(cfg)
	assert.Equal(t, uint64(7), cfg.Array.Seed)

	seed = 0
	cfg = config.DefaultConfig()
	cfg.Array.Seed = 3
	applyFlagOverrides(cfg)
	assert.Equal(t, uint64(3), cfg.Array.Seed, "unset flag keeps the file value")
}
