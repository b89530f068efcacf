package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"cosmossdk.io/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	custodykeeper "github.com/0xShuk/breeez/x/custody/keeper"
	registrytypes "github.com/0xShuk/breeez/x/registry/types"
)

// EnvPrefix marks environment overrides. Nested keys use "__", e.g. BREEEZ_LOG__LEVEL.
const EnvPrefix = "BREEEZ_"

type Config struct {
	Log         LogConfig               `koanf:"log"`
	Bookkeeping custodykeeper.LogConfig `koanf:"bookkeeping"`
	Genesis     GenesisConfig           `koanf:"genesis"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type GenesisConfig struct {
	ValueDenom     string `koanf:"value_denom"`
	RewardDecimals uint32 `koanf:"reward_decimals"`
}

func Default() Config {
	params := registrytypes.DefaultParams()
	return Config{
		Log: LogConfig{Level: "info", Format: "plain"},
		Bookkeeping: custodykeeper.LogConfig{
			DoubleEntry: true,
			LogLevel:    "info",
		},
		Genesis: GenesisConfig{
			ValueDenom:     params.ValueDenom,
			RewardDecimals: params.RewardDecimals,
		},
	}
}

// Load reads YAML from provider on top of the defaults, then applies environment overrides.
// A nil provider loads the defaults and the environment only.
func Load(provider koanf.Provider) (Config, error) {
	k := koanf.New(".")
	if provider != nil {
		if err := k.Load(provider, yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("error loading config: %w", err)
		}
	}
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("error loading env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadFile loads path, falling back to the defaults when the file does not exist.
func LoadFile(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Load(nil)
	}
	return Load(file.Provider(path))
}

func (c Config) Validate() error {
	if _, err := log.ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case "plain", "json":
	default:
		return fmt.Errorf("invalid log format %q, expected plain or json", c.Log.Format)
	}
	return c.Params().Validate()
}

// Params are the registry parameters written into a fresh genesis.
func (c Config) Params() registrytypes.Params {
	return registrytypes.NewParams(c.Genesis.ValueDenom, c.Genesis.RewardDecimals)
}

// NewLogger builds the process logger described by the log section.
func (c Config) NewLogger(w io.Writer) (log.Logger, error) {
	filter, err := log.ParseLogLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	opts := []log.Option{log.FilterOption(filter)}
	if c.Log.Format == "json" {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(w, opts...), nil
}
