package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/curp/pkg/config"
)

type envFileConfig struct {
	Lang   string   `env:"TEST_ENVFILE_LANG" envDefault:"en"`
	QRSize int      `env:"TEST_ENVFILE_QR_SIZE" envDefault:"256"`
	States []string `env:"TEST_ENVFILE_STATES" envSeparator:","`
}

type envFileOverrideConfig struct {
	Lang string `env:"TEST_ENVFILE_LANG"`
}

func TestLoadEnv_File(t *testing.T) {
	os.Unsetenv("TEST_ENVFILE_LANG")
	os.Unsetenv("TEST_ENVFILE_QR_SIZE")
	os.Unsetenv("TEST_ENVFILE_STATES")
	t.Cleanup(func() {
		os.Unsetenv("TEST_ENVFILE_LANG")
		os.Unsetenv("TEST_ENVFILE_QR_SIZE")
		os.Unsetenv("TEST_ENVFILE_STATES")
		config.ResetCache()
	})
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "es", cfg.Lang)
	assert.Equal(t, 512, cfg.QRSize)
	assert.Equal(t, []string{"JALISCO", "MEXICO"}, cfg.States)
}

func TestLoadEnv_ProcessEnvWins(t *testing.T) {
	t.Setenv("TEST_ENVFILE_LANG", "en")
	t.Cleanup(config.ResetCache)
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg envFileOverrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "en", cfg.Lang)
}

func TestLoad_WithEnvFiles(t *testing.T) {
	type fileConfig struct {
		QRSize int `env:"TEST_ENVFILE_QR_SIZE"`
	}
	os.Unsetenv("TEST_ENVFILE_QR_SIZE")
	t.Cleanup(func() {
		os.Unsetenv("TEST_ENVFILE_QR_SIZE")
		config.ResetCache()
	})

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg, config.WithEnvFiles("testdata/.env.test")))
	assert.Equal(t, 512, cfg.QRSize)

	err := config.Load(&cfg, config.WithEnvFiles("testdata/.env.missing"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/.env.missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.NoError(t, config.LoadEnv())
}

func TestResetCache(t *testing.T) {
	type resetConfig struct {
		Value string `env:"TEST_RESET_VALUE"`
	}
	t.Cleanup(config.ResetCache)

	t.Setenv("TEST_RESET_VALUE", "first")
	var first resetConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_RESET_VALUE", "second")
	config.ResetCache()

	var second resetConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "second", second.Value)
}
