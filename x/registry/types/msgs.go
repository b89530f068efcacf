package types

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// TradeField selects the trade parameter changed by MsgEditTrade.
type TradeField uint8

const (
	TradeFieldFee TradeField = iota
	TradeFieldDuration
)

func (f TradeField) String() string {
	switch f {
	case TradeFieldFee:
		return "trade_fee"
	case TradeFieldDuration:
		return "trade_duration"
	default:
		return fmt.Sprintf("trade_field(%d)", uint8(f))
	}
}

// VotingField selects the voting parameter changed by MsgEditVoting.
type VotingField uint8

const (
	VotingFieldCount VotingField = iota
	VotingFieldDuration
	VotingFieldQuorum
)

func (f VotingField) String() string {
	switch f {
	case VotingFieldCount:
		return "member_count"
	case VotingFieldDuration:
		return "vote_duration"
	case VotingFieldQuorum:
		return "quorum"
	default:
		return fmt.Sprintf("voting_field(%d)", uint8(f))
	}
}

type MsgCreateCollection struct {
	Owner       string `json:"owner"`
	Treasury    string `json:"treasury"`
	VerifiedKey string `json:"verified_key"`
}

type MsgCreateCollectionResponse struct {
	Address string `json:"address"`
}

type MsgAttachRewardAsset struct {
	Owner       string `json:"owner"`
	VerifiedKey string `json:"verified_key"`
	Denom       string `json:"denom"`
}

type MsgAttachRewardAssetResponse struct{}

type MsgAddStaking struct {
	Owner        string `json:"owner"`
	VerifiedKey  string `json:"verified_key"`
	EmissionRate uint64 `json:"emission_rate"`
}

type MsgAddStakingResponse struct{}

type MsgEditStaking struct {
	Owner        string `json:"owner"`
	VerifiedKey  string `json:"verified_key"`
	EmissionRate uint64 `json:"emission_rate"`
}

type MsgEditStakingResponse struct{}

type MsgAddTrade struct {
	Owner       string `json:"owner"`
	VerifiedKey string `json:"verified_key"`
	Fee         uint64 `json:"fee"`
	Duration    int64  `json:"duration"`
}

type MsgAddTradeResponse struct{}

type MsgEditTrade struct {
	Owner       string     `json:"owner"`
	VerifiedKey string     `json:"verified_key"`
	Field       TradeField `json:"field"`
	Value       uint64     `json:"value"`
}

type MsgEditTradeResponse struct{}

type MsgAddVoting struct {
	Owner       string `json:"owner"`
	VerifiedKey string `json:"verified_key"`
	MemberCount uint64 `json:"member_count"`
	Duration    int64  `json:"duration"`
	Quorum      uint64 `json:"quorum"`
}

type MsgAddVotingResponse struct{}

type MsgEditVoting struct {
	Owner       string      `json:"owner"`
	VerifiedKey string      `json:"verified_key"`
	Field       VotingField `json:"field"`
	Value       uint64      `json:"value"`
}

type MsgEditVotingResponse struct{}

type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// MsgServer is the operation surface of the registry.
type MsgServer interface {
	CreateCollection(context.Context, *MsgCreateCollection) (*MsgCreateCollectionResponse, error)
	AttachRewardAsset(context.Context, *MsgAttachRewardAsset) (*MsgAttachRewardAssetResponse, error)
	AddStaking(context.Context, *MsgAddStaking) (*MsgAddStakingResponse, error)
	EditStaking(context.Context, *MsgEditStaking) (*MsgEditStakingResponse, error)
	AddTrade(context.Context, *MsgAddTrade) (*MsgAddTradeResponse, error)
	EditTrade(context.Context, *MsgEditTrade) (*MsgEditTradeResponse, error)
	AddVoting(context.Context, *MsgAddVoting) (*MsgAddVotingResponse, error)
	EditVoting(context.Context, *MsgEditVoting) (*MsgEditVotingResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

func validateOwner(owner, verifiedKey string) error {
	if _, err := sdk.AccAddressFromBech32(owner); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid owner address: %s", err)
	}
	if err := sdk.ValidateDenom(verifiedKey); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid verified collection key: %s", err)
	}
	return nil
}

func (msg *MsgCreateCollection) ValidateBasic() error {
	if err := validateOwner(msg.Owner, msg.VerifiedKey); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Treasury); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid treasury address: %s", err)
	}
	return nil
}

func (msg *MsgAttachRewardAsset) ValidateBasic() error {
	if err := validateOwner(msg.Owner, msg.VerifiedKey); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid reward denom: %s", err)
	}
	return nil
}

func (msg *MsgAddStaking) ValidateBasic() error {
	if err := validateOwner(msg.Owner, msg.VerifiedKey); err != nil {
		return err
	}
	if msg.EmissionRate == 0 {
		return ErrZeroValue.Wrap("emission rate")
	}
	return nil
}

func (msg *MsgEditStaking) ValidateBasic() error {
	if err := validateOwner(msg.Owner, msg.VerifiedKey); err != nil {
		return err
	}
	if msg.EmissionRate == 0 {
		return ErrZeroValue.Wrap("emission rate")
	}
	return nil
}

func (msg *MsgAddTrade) ValidateBasic() error {
	if err := validateOwner(msg.Owner, msg.VerifiedKey); err != nil {
		return err
	}
	if msg.Fee == 0 {
		return ErrZeroValue.Wrap("fee")
	}
	return ValidateDuration(msg.Duration)
}

func (msg *MsgEditTrade) ValidateBasic() error {
	if err := validateOwner(msg.Owner, msg.VerifiedKey); err != nil {
		return err
	}
	if msg.Field > TradeFieldDuration {
		return ErrInvalidEditKind.Wrap(msg.Field.String())
	}
	if msg.Value == 0 {
		return ErrZeroValue.Wrap(msg.Field.String())
	}
	if msg.Field == TradeFieldDuration && msg.Value > uint64(MaxDuration) {
		return ErrInvalidDuration.Wrapf("%s %d > %d", msg.Field, msg.Value, MaxDuration)
	}
	return nil
}

func (msg *MsgAddVoting) ValidateBasic() error {
	if err := validateOwner(msg.Owner, msg.VerifiedKey); err != nil {
		return err
	}
	return ValidateVoting(msg.MemberCount, msg.Duration, msg.Quorum)
}

func (msg *MsgEditVoting) ValidateBasic() error {
	if err := validateOwner(msg.Owner, msg.VerifiedKey); err != nil {
		return err
	}
	if msg.Field > VotingFieldQuorum {
		return ErrInvalidEditKind.Wrap(msg.Field.String())
	}
	if msg.Value == 0 {
		return ErrZeroValue.Wrap(msg.Field.String())
	}
	if msg.Field == VotingFieldDuration && msg.Value > uint64(MaxDuration) {
		return ErrInvalidDuration.Wrapf("%s %d > %d", msg.Field, msg.Value, MaxDuration)
	}
	return nil
}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return msg.Params.Validate()
}
