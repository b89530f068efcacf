package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0xShuk/breeez/config"
)

const (
	flagHome   = "home"
	flagConfig = "config"

	envPrefix = "BREEEZD"
)

// DefaultNodeHome is the home directory used when --home is not given.
var DefaultNodeHome = defaultNodeHome()

func defaultNodeHome() string {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return ".breeez"
	}
	return filepath.Join(userHomeDir, ".breeez")
}

// cliApp carries what PersistentPreRunE loaded to the subcommands.
type cliApp struct {
	viper  *viper.Viper
	config config.Config
	logger log.Logger
}

// configPath is --config when set, otherwise <home>/config/breeez.yaml.
func (a *cliApp) configPath() string {
	if p := a.viper.GetString(flagConfig); p != "" {
		return p
	}
	return filepath.Join(a.viper.GetString(flagHome), "config", "breeez.yaml")
}

// NewRootCmd creates the breeezd root command.
func NewRootCmd() *cobra.Command {
	a := &cliApp{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:          "breeezd",
		Short:        "Breeez collection registry, staking, trade and voting tooling",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFile(a.configPath())
			if err != nil {
				return err
			}
			logger, err := cfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.config = cfg
			a.logger = logger.With("module", "breeezd")
			a.logger.Debug("configuration loaded", "path", a.configPath())
			return nil
		},
	}

	rootCmd.PersistentFlags().String(flagHome, DefaultNodeHome, "directory for config and data")
	rootCmd.PersistentFlags().String(flagConfig, "", "config file (default is <home>/config/breeez.yaml)")
	if err := a.viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	a.viper.SetEnvPrefix(envPrefix)
	a.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.viper.AutomaticEnv()

	rootCmd.AddCommand(
		genesisCmd(a),
		estimateRewardCmd(a),
	)
	return rootCmd
}
