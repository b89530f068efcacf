package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/stretchr/testify/require"

	"github.com/0xShuk/breeez/config"
)

const testYaml = `
log:
  level: debug
  format: json
bookkeeping:
  double_entry: false
  simple_entry: true
  log_level: warn
genesis:
  value_denom: ubrz
  reward_decimals: 6
`

func TestConfigLoad(t *testing.T) {
	cfg, err := config.Load(rawbytes.Provider([]byte(testYaml)))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.False(t, cfg.Bookkeeping.DoubleEntry)
	require.True(t, cfg.Bookkeeping.SimpleEntry)
	require.Equal(t, "warn", cfg.Bookkeeping.LogLevel)
	require.Equal(t, uint32(6), cfg.Params().RewardDecimals)
}

func TestConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := config.Load(rawbytes.Provider([]byte("log:\n  level: error\n")))
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
	require.Equal(t, "plain", cfg.Log.Format)
	require.True(t, cfg.Bookkeeping.DoubleEntry)
	require.Equal(t, config.Default().Genesis, cfg.Genesis)
}

func TestConfigLoadEnvOverride(t *testing.T) {
	t.Setenv("BREEEZ_LOG__LEVEL", "warn")
	t.Setenv("BREEEZ_GENESIS__VALUE_DENOM", "uother")
	t.Setenv("BREEEZ_BOOKKEEPING__SIMPLE_ENTRY", "false")

	cfg, err := config.Load(rawbytes.Provider([]byte(testYaml)))
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "uother", cfg.Params().ValueDenom)
	require.False(t, cfg.Bookkeeping.SimpleEntry)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestConfigRejectsInvalidValues(t *testing.T) {
	_, err := config.Load(rawbytes.Provider([]byte("log:\n  format: xml\n")))
	require.Error(t, err)

	_, err = config.Load(rawbytes.Provider([]byte("genesis:\n  reward_decimals: 40\n")))
	require.Error(t, err)

	_, err = config.Load(rawbytes.Provider([]byte("log:\n  level: loud\n")))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.LoadFile(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYaml), 0o600))
	cfg, err = config.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Format = "json"

	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", "collection", "breeezcol")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"collection":"breeezcol"`)
}
