// Released under an MIT license. See LICENSE.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), File)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultArity, cfg.Arity)
	assert.True(t, cfg.History)
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
	assert.False(t, cfg.Lenient())
}

func TestFileOverridesDefaults(t *testing.T) {
	path := write(t, "arity: lenient\nmax_depth: 50\nhistory: false\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.True(t, cfg.Lenient())
	assert.Equal(t, 50, cfg.MaxDepth)
	assert.False(t, cfg.History)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
}

func TestEnvOverridesFile(t *testing.T) {
	path := write(t, "prompt: 'file> '\nlog_level: info\n")

	t.Setenv("EVA_PROMPT", "env> ")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "env> ", cfg.Prompt)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("EVA_MAX_DEPTH", "30")

	cfg, err := Load("", map[string]interface{}{"max_depth": 20})
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.MaxDepth)
}

func TestInvalidSettings(t *testing.T) {
	for _, text := range []string{
		"arity: sloppy\n",
		"max_depth: 0\n",
		"log_level: chatty\n",
	} {
		_, err := Load(write(t, text), nil)
		assert.ErrorIs(t, err, ErrInvalid, text)
	}
}

func TestMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}
