package config

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	testutil.WriteFile(t, afero.NewOsFs(), path, content)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(Sources{})
	require.NoError(t, err)

	assert.Equal(t, ModeStandard, cfg.Output.Mode)
	assert.Empty(t, cfg.Output.Format)
	assert.Empty(t, cfg.Projects)
	assert.NotNil(t, cfg.Options)
}

func TestLoadLayering(t *testing.T) {
	tmpDir := t.TempDir()
	userFile := filepath.Join(tmpDir, "user", "config.toml")
	workspace := filepath.Join(tmpDir, "repo")

	writeFile(t, userFile, `
[options]
typescript = true
unicorn = false

[options.stylistic]
indent = 4
quotes = "double"

[output]
format = "yaml"
`)
	writeFile(t, filepath.Join(workspace, "flatlint.toml"), `
[options]
unicorn = true

[options.stylistic]
quotes = "single"

[output]
mode = "workspace"

[[projects]]
root = "apps/web"

[projects.options]
angular = true
`)

	t.Run("files_only", func(t *testing.T) {
		cfg, err := Load(Sources{UserFile: userFile, WorkspaceDir: workspace})
		require.NoError(t, err)

		assert.Equal(t, true, cfg.Options["typescript"])
		assert.Equal(t, true, cfg.Options["unicorn"], "workspace beats user")
		style := cfg.Options["stylistic"].(map[string]any)
		assert.EqualValues(t, 4, style["indent"])
		assert.Equal(t, "single", style["quotes"])

		assert.Equal(t, FormatYAML, cfg.Output.Format)
		assert.Equal(t, ModeWorkspace, cfg.Output.Mode)

		require.Len(t, cfg.Projects, 1)
		assert.Equal(t, "apps/web", cfg.Projects[0].Root)
		assert.Equal(t, true, cfg.Projects[0].Options["angular"])

		inputs := cfg.ProjectInputs()
		require.Len(t, inputs, 1)
		assert.Equal(t, "apps/web", inputs[0].Root)
	})

	t.Run("env_wins", func(t *testing.T) {
		t.Setenv("FLATLINT_OPTIONS_TYPESCRIPT", "false")
		t.Setenv("FLATLINT_OPTIONS_ISINEDITOR", "true")
		t.Setenv("FLATLINT_OUTPUT_FORMAT", "json")

		cfg, err := Load(Sources{UserFile: userFile, WorkspaceDir: workspace, Env: true})
		require.NoError(t, err)

		assert.Equal(t, false, cfg.Options["typescript"])
		assert.Equal(t, true, cfg.Options["isInEditor"])
		assert.Equal(t, FormatJSON, cfg.Output.Format)
	})

	t.Run("overrides_win", func(t *testing.T) {
		t.Setenv("FLATLINT_OUTPUT_FORMAT", "json")

		cfg, err := Load(Sources{
			UserFile:     userFile,
			WorkspaceDir: workspace,
			Env:          true,
			Overrides:    map[string]any{"output.format": FormatTOML, "output.path": "eslint.toml"},
		})
		require.NoError(t, err)

		assert.Equal(t, FormatTOML, cfg.Output.Format)
		assert.Equal(t, "eslint.toml", cfg.Output.Path)
		assert.Equal(t, ModeWorkspace, cfg.Output.Mode)
	})

	t.Run("invalid_override", func(t *testing.T) {
		_, err := Load(Sources{Overrides: map[string]any{"output.format": "xml"}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestLoadYAMLWorkspaceFile(t *testing.T) {
	workspace := t.TempDir()
	writeFile(t, filepath.Join(workspace, "flatlint.yaml"), `
options:
  vitest:
    typecheck: true
output:
  format: toml
`)

	cfg, err := Load(Sources{WorkspaceDir: workspace})
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, cfg.Output.Format)
	assert.Equal(t, map[string]any{"typecheck": true}, cfg.Options["vitest"])
}

func TestFindWorkspaceFile(t *testing.T) {
	workspace := t.TempDir()
	assert.Empty(t, FindWorkspaceFile(workspace))

	writeFile(t, filepath.Join(workspace, ".flatlint.toml"), "")
	assert.Equal(t, filepath.Join(workspace, ".flatlint.toml"), FindWorkspaceFile(workspace))

	writeFile(t, filepath.Join(workspace, "flatlint.toml"), "")
	assert.Equal(t, filepath.Join(workspace, "flatlint.toml"), FindWorkspaceFile(workspace))
}

func TestLoadErrors(t *testing.T) {
	t.Run("parse_error", func(t *testing.T) {
		workspace := t.TempDir()
		writeFile(t, filepath.Join(workspace, "flatlint.toml"), "[options\n")

		_, err := Load(Sources{WorkspaceDir: workspace})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid_format", func(t *testing.T) {
		workspace := t.TempDir()
		writeFile(t, filepath.Join(workspace, "flatlint.toml"), "[output]\nformat = \"xml\"\n")

		_, err := Load(Sources{WorkspaceDir: workspace})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Equal(t, "output.format", errors.GetErrorDetails(err)["field"])
	})

	t.Run("project_without_root", func(t *testing.T) {
		workspace := t.TempDir()
		writeFile(t, filepath.Join(workspace, "flatlint.toml"), "[[projects]]\n[projects.options]\nvitest = true\n")

		_, err := Load(Sources{WorkspaceDir: workspace})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestScalarValue(t *testing.T) {
	assert.Equal(t, true, ScalarValue("true"))
	assert.Equal(t, false, ScalarValue("0"))
	assert.Equal(t, 4, ScalarValue("4"))
	assert.Equal(t, "tab", ScalarValue("tab"))
}
