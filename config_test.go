package sweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "collisions:candidates", cfg.Channel)
	assert.Equal(t, 2, cfg.Axes)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Axes = 4
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidAxes)

	cfg = DefaultConfig()
	cfg.Axes = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidAxes)

	cfg = DefaultConfig()
	cfg.Channel = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.MaxTrackers = 0
	assert.Error(t, cfg.Validate())

	_, err := New(Config{})
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.toml")
	data := `
channel = "world:pairs"
axes = 3

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "world:pairs", cfg.Channel)
	assert.Equal(t, 3, cfg.Axes)
	assert.Equal(t, DefaultConfig().PairPersistence, cfg.PairPersistence)
	assert.Equal(t, DefaultConfig().MaxTrackers, cfg.MaxTrackers)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("axes = 7"))
	assert.ErrorIs(t, err, ErrInvalidAxes)

	_, err = ParseConfig([]byte("axes = ["))
	assert.Error(t, err)
}
