package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgCreateTrade opens a trade and funds party one's leg. Each party names the member asset
// that proves its membership of the collection.
type MsgCreateTrade struct {
	PartyOne       string      `json:"party_one"`
	PartyTwo       string      `json:"party_two"`
	VerifiedKey    string      `json:"verified_key"`
	PartyOneMember string      `json:"party_one_member"`
	PartyTwoMember string      `json:"party_two_member"`
	Mode           FundingMode `json:"mode"`
	Value          uint64      `json:"value"`
	AssetDenom     string      `json:"asset_denom,omitempty"`
	AssetAmount    uint64      `json:"asset_amount"`
	// ReceiveAddress optionally fixes where party one takes party two's asset leg.
	ReceiveAddress string `json:"receive_address,omitempty"`
}

type MsgCreateTradeResponse struct {
	Address string `json:"address"`
}

// MsgAcceptTrade funds party two's leg and confirms the trade.
type MsgAcceptTrade struct {
	PartyTwo    string      `json:"party_two"`
	PartyOne    string      `json:"party_one"`
	VerifiedKey string      `json:"verified_key"`
	Mode        FundingMode `json:"mode"`
	Value       uint64      `json:"value"`
	AssetDenom  string      `json:"asset_denom,omitempty"`
	AssetAmount uint64      `json:"asset_amount"`
	// ReceiveAddress is where party two takes party one's asset leg; required when that leg exists.
	ReceiveAddress string `json:"receive_address,omitempty"`
}

type MsgAcceptTradeResponse struct{}

// MsgExecuteTrade settles an accepted trade. Signed by party one, who pays the fee.
type MsgExecuteTrade struct {
	PartyOne    string `json:"party_one"`
	PartyTwo    string `json:"party_two"`
	VerifiedKey string `json:"verified_key"`
	// ReceiveAddress is where party one takes party two's asset leg, unless fixed at creation.
	ReceiveAddress string `json:"receive_address,omitempty"`
}

type MsgExecuteTradeResponse struct{}

// MsgCancelTrade unwinds a trade. Signer must be one of the two parties.
type MsgCancelTrade struct {
	Signer      string `json:"signer"`
	PartyOne    string `json:"party_one"`
	PartyTwo    string `json:"party_two"`
	VerifiedKey string `json:"verified_key"`
}

type MsgCancelTradeResponse struct{}

// MsgServer is the operation surface of the trade escrow protocol.
type MsgServer interface {
	CreateTrade(context.Context, *MsgCreateTrade) (*MsgCreateTradeResponse, error)
	AcceptTrade(context.Context, *MsgAcceptTrade) (*MsgAcceptTradeResponse, error)
	ExecuteTrade(context.Context, *MsgExecuteTrade) (*MsgExecuteTradeResponse, error)
	CancelTrade(context.Context, *MsgCancelTrade) (*MsgCancelTradeResponse, error)
}

func validateParties(partyOne, partyTwo, verifiedKey string) error {
	if _, err := sdk.AccAddressFromBech32(partyOne); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid party one address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(partyTwo); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid party two address: %s", err)
	}
	if partyOne == partyTwo {
		return ErrSameParty.Wrapf("%s", partyOne)
	}
	if err := sdk.ValidateDenom(verifiedKey); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid verified collection key: %s", err)
	}
	return nil
}

func validateOptionalAddress(addr string) error {
	if addr == "" {
		return nil
	}
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid receive address: %s", err)
	}
	return nil
}

func (msg *MsgCreateTrade) ValidateBasic() error {
	if err := validateParties(msg.PartyOne, msg.PartyTwo, msg.VerifiedKey); err != nil {
		return err
	}
	for _, member := range []string{msg.PartyOneMember, msg.PartyTwoMember} {
		if err := sdk.ValidateDenom(member); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid member asset: %s", err)
		}
	}
	if err := msg.Mode.CheckAmounts(msg.Value, msg.AssetAmount); err != nil {
		return err
	}
	return validateOptionalAddress(msg.ReceiveAddress)
}

func (msg *MsgAcceptTrade) ValidateBasic() error {
	if err := validateParties(msg.PartyOne, msg.PartyTwo, msg.VerifiedKey); err != nil {
		return err
	}
	if err := msg.Mode.CheckAmounts(msg.Value, msg.AssetAmount); err != nil {
		return err
	}
	return validateOptionalAddress(msg.ReceiveAddress)
}

func (msg *MsgExecuteTrade) ValidateBasic() error {
	if err := validateParties(msg.PartyOne, msg.PartyTwo, msg.VerifiedKey); err != nil {
		return err
	}
	return validateOptionalAddress(msg.ReceiveAddress)
}

func (msg *MsgCancelTrade) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address: %s", err)
	}
	return validateParties(msg.PartyOne, msg.PartyTwo, msg.VerifiedKey)
}
