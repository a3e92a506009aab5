//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	// Ensure the test binary exists (it should be built by TestMain)
	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// Run directly, not through a PTY, since it exits quickly
	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	t.Logf("Help output length: %d chars", len(output))
	require.Greater(t, len(output), 50, "Help should produce substantial output")
	require.Contains(t, output, "Usage")
	require.Contains(t, output, "--items-file")
	require.Contains(t, output, "init")
}

func TestInitWritesConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "multiselect.toml")
	out, err := exec.Command(binPath, "init", path).CombinedOutput()
	require.NoError(t, err, string(out))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[control]")
	require.Contains(t, string(data), "output_type")

	out, err = exec.Command(binPath, "init", path).CombinedOutput()
	require.Error(t, err, "Existing file is not overwritten")
	require.Contains(t, string(out), "already exists")
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	err := tf.StartApp("Apple", "Banana")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.OpenHelp()
	require.True(t, tf.SeePlain("Navigation"), "Help pager should list key bindings")
	require.True(t, tf.SeePlain("Invert selection"))

	// Leave the pager, then the app
	tf.Quit()
	require.True(t, tf.SeePlain("multiselect"), "Should return to main TUI after closing pager")
	tf.Quit()
}
