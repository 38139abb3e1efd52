package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskplan/internal/app"
)

// newTestContainer creates an app.Container with real infrastructure below
// temporary directories. It returns the container and its working directory.
func newTestContainer(t *testing.T) (*app.Container, string) {
	t.Helper()

	workDir := t.TempDir()
	// Isolate global config and logs
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	container, err := app.New(workDir, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	return container, workDir
}

// execute runs the root command with args and captures stdout and stderr.
func execute(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCommand(c, "test-version")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// mockLaunchTUI replaces launchTUIFunc for the duration of the test and
// reports whether it was called.
func mockLaunchTUI(t *testing.T) *bool {
	t.Helper()

	originalFunc := launchTUIFunc
	t.Cleanup(func() { launchTUIFunc = originalFunc })

	called := false
	launchTUIFunc = func(_ *app.Container) error {
		called = true
		return nil
	}
	return &called
}

