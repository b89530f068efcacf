package cmd

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	staketypes "github.com/0xShuk/breeez/x/stake/types"
)

const flagDecimals = "decimals"

// WholeUnits renders amount base units as whole tokens with the given display exponent.
func WholeUnits(amount math.Int, decimals uint32) string {
	return decimal.NewFromBigInt(amount.BigInt(), -int32(decimals)).String()
}

func estimateRewardCmd(a *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate-reward [elapsed-seconds] [rate]",
		Short: "Estimate the staking reward of one asset",
		Long: `Estimate the reward one staked asset accrues over elapsed-seconds at rate reward base
units per hour. The result is printed in base units and in whole reward tokens.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			elapsed, err := cast.ToInt64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid elapsed seconds %q: %w", args[0], err)
			}
			rate, err := cast.ToUint64E(args[1])
			if err != nil {
				return fmt.Errorf("invalid rate %q: %w", args[1], err)
			}

			decimals := a.config.Genesis.RewardDecimals
			if cmd.Flags().Changed(flagDecimals) {
				decimals, err = cmd.Flags().GetUint32(flagDecimals)
				if err != nil {
					return err
				}
			}

			reward := staketypes.CalculateReward(elapsed, rate)
			a.logger.Debug("reward estimated", "elapsed", elapsed, "rate", rate, "reward", reward.String())
			fmt.Fprintf(cmd.OutOrStdout(), "reward: %s base units (%s tokens)\n", reward, WholeUnits(reward, decimals))
			return nil
		},
	}
	cmd.Flags().Uint32(flagDecimals, 0, "display exponent of the reward asset (default from config)")
	return cmd
}
