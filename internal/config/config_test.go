package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, []string{"quote", "heredoc"}, cfg.Search.Categories)
	assert.False(t, cfg.Search.Diagnostics)
	assert.Empty(t, cfg.Paths.Include)
	assert.Contains(t, cfg.Paths.Ignore, ".git/**")
	require.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("unknown category", func(t *testing.T) {
		cfg := Default()
		cfg.Search.Categories = []string{"quote", "docstring"}
		err := Validate(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("bad glob", func(t *testing.T) {
		cfg := Default()
		cfg.Paths.Ignore = []string{"[unclosed"}
		err := Validate(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidGlob)
	})

	t.Run("multiple problems are all reported", func(t *testing.T) {
		cfg := Default()
		cfg.Search.Categories = []string{"docstring"}
		cfg.Paths.Include = []string{"[unclosed"}
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "docstring")
		assert.Contains(t, err.Error(), "[unclosed")
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing config file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, Default().Search.Categories, cfg.Search.Categories)
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := `search:
  categories:
    - pod
    - comment
  diagnostics: true
paths:
  ignore:
    - "build/**"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".pgrep.yml"), []byte(content), 0o644))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"pod", "comment"}, cfg.Search.Categories)
		assert.True(t, cfg.Search.Diagnostics)
		assert.Equal(t, []string{"build/**"}, cfg.Paths.Ignore)
	})

	t.Run("invalid config file fails", func(t *testing.T) {
		dir := t.TempDir()
		content := `search:
  categories:
    - docstring
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".pgrep.yml"), []byte(content), 0o644))

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "docstring")
	})
}
