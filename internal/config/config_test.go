package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ian-shakespeare/golox/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
		assert.Equal(t, 65, cfg.Exit.DataError)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "golox.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\nprompt:\n  input: \"lox> \"\n"), 0o644))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "lox> ", cfg.Prompt.Input)
		assert.Equal(t, "< ", cfg.Prompt.Result)
		assert.Equal(t, 70, cfg.Exit.TypeError)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log: [unclosed"), 0o644))

		_, err := config.Load(path)
		assert.Error(t, err)
	})
}
