package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

type MsgStake struct {
	Owner       string `json:"owner"`
	VerifiedKey string `json:"verified_key"`
	Asset       string `json:"asset"`
}

type MsgStakeResponse struct{}

type MsgWithdrawRewards struct {
	Owner string `json:"owner"`
	Asset string `json:"asset"`
}

type MsgWithdrawRewardsResponse struct {
	Reward math.Int `json:"reward"`
}

type MsgUnstake struct {
	Owner string `json:"owner"`
	Asset string `json:"asset"`
}

type MsgUnstakeResponse struct {
	Reward math.Int `json:"reward"`
}

// MsgServer is the operation surface of the stake engine.
type MsgServer interface {
	Stake(context.Context, *MsgStake) (*MsgStakeResponse, error)
	WithdrawRewards(context.Context, *MsgWithdrawRewards) (*MsgWithdrawRewardsResponse, error)
	Unstake(context.Context, *MsgUnstake) (*MsgUnstakeResponse, error)
}

func validateOwnerAndAsset(owner, asset string) error {
	if _, err := sdk.AccAddressFromBech32(owner); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if err := sdk.ValidateDenom(asset); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid asset: %s", err)
	}
	return nil
}

func (msg *MsgStake) ValidateBasic() error {
	if err := validateOwnerAndAsset(msg.Owner, msg.Asset); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(msg.VerifiedKey); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid verified collection key: %s", err)
	}
	return nil
}

func (msg *MsgWithdrawRewards) ValidateBasic() error {
	return validateOwnerAndAsset(msg.Owner, msg.Asset)
}

func (msg *MsgUnstake) ValidateBasic() error {
	return validateOwnerAndAsset(msg.Owner, msg.Asset)
}
