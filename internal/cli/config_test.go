package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskplan/internal/domain"
)

// =============================================================================
// Config Command Tests
// =============================================================================

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	c, _ := newTestContainer(t)

	stdout, _, err := execute(t, c, "config")

	require.NoError(t, err)
	assert.Contains(t, stdout, "show")
	assert.Contains(t, stdout, "init")
	assert.Contains(t, stdout, "template")
}

func TestConfigShowCommand_DisplaysEffectiveConfig(t *testing.T) {
	// Setup
	c, workDir := newTestContainer(t)
	require.NoError(t, os.WriteFile(domain.LocalConfigPath(workDir), []byte("[schedule]\nbudget = 90\npolicy = \"skip\"\n"), 0o600))

	// Execute
	stdout, _, err := execute(t, c, "config", "show")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "[Loaded from]")
	assert.Contains(t, stdout, "config.toml (not found)")
	assert.Contains(t, stdout, "- "+domain.LocalConfigPath(workDir)+"\n")
	assert.Contains(t, stdout, "[Effective Config]")
	assert.Contains(t, stdout, "budget = 90")
	assert.Contains(t, stdout, "policy = 'skip'")
	assert.Contains(t, stdout, "level = 'info'")
}

func TestConfigTemplateCommand_OutputsTemplate(t *testing.T) {
	stdout, _, err := execute(t, nil, "config", "template")

	require.NoError(t, err)
	assert.Contains(t, stdout, "[schedule]")
	assert.Contains(t, stdout, "budget = 60")
	assert.Contains(t, stdout, `policy = "stop"`)
	assert.Contains(t, stdout, "[log]")
}

func TestConfigInitCommand_CreatesLocalConfig(t *testing.T) {
	c, workDir := newTestContainer(t)

	stdout, _, err := execute(t, c, "config", "init")

	require.NoError(t, err)
	path := domain.LocalConfigPath(workDir)
	assert.Contains(t, stdout, "Created config file: "+path)
	assert.FileExists(t, path)
}

func TestConfigInitCommand_WithGlobalFlag(t *testing.T) {
	c, _ := newTestContainer(t)

	stdout, _, err := execute(t, c, "config", "init", "--global")

	require.NoError(t, err)
	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "taskplan", "config.toml")
	assert.Contains(t, stdout, path)
	assert.FileExists(t, path)
}

func TestConfigInitCommand_ErrorIfFileExists(t *testing.T) {
	c, workDir := newTestContainer(t)
	path := domain.LocalConfigPath(workDir)
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0o600))

	_, _, err := execute(t, c, "config", "init")

	assert.ErrorIs(t, err, domain.ErrConfigExists)
	assert.Contains(t, err.Error(), "--force")
	content, _ := os.ReadFile(path)
	assert.Equal(t, "# mine\n", string(content))

	_, _, err = execute(t, c, "config", "init", "--force")
	require.NoError(t, err)
	content, _ = os.ReadFile(path)
	assert.Contains(t, string(content), "[schedule]")
}
