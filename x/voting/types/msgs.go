package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgCreateProposal opens a proposal. The creator proves membership with CreatorMember.
type MsgCreateProposal struct {
	Creator       string   `json:"creator"`
	VerifiedKey   string   `json:"verified_key"`
	CreatorMember string   `json:"creator_member"`
	Title         string   `json:"title"`
	Options       []string `json:"options"`
}

type MsgCreateProposalResponse struct {
	ProposalID uint64 `json:"proposal_id"`
	Address    string `json:"address"`
}

// MsgVote casts one vote for Choice per presented member asset.
type MsgVote struct {
	Voter      string   `json:"voter"`
	ProposalID uint64   `json:"proposal_id"`
	Choice     uint32   `json:"choice"`
	Assets     []string `json:"assets"`
}

type MsgVoteResponse struct {
	Votes uint64 `json:"votes"`
}

type MsgExecuteProposal struct {
	Signer     string `json:"signer"`
	ProposalID uint64 `json:"proposal_id"`
}

type MsgExecuteProposalResponse struct {
	Passed bool `json:"passed"`
}

// MsgServer is the operation surface of the voting engine.
type MsgServer interface {
	CreateProposal(context.Context, *MsgCreateProposal) (*MsgCreateProposalResponse, error)
	Vote(context.Context, *MsgVote) (*MsgVoteResponse, error)
	ExecuteProposal(context.Context, *MsgExecuteProposal) (*MsgExecuteProposalResponse, error)
}

func (msg *MsgCreateProposal) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.VerifiedKey); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid verified collection key: %s", err)
	}
	if err := sdk.ValidateDenom(msg.CreatorMember); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid member asset: %s", err)
	}
	return ValidateProposalText(msg.Title, msg.Options)
}

func (msg *MsgVote) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Voter); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid voter address: %s", err)
	}
	if len(msg.Assets) == 0 {
		return ErrAccountNotProvided
	}
	for _, asset := range msg.Assets {
		if err := sdk.ValidateDenom(asset); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "invalid asset: %s", err)
		}
	}
	return nil
}

func (msg *MsgExecuteProposal) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address: %s", err)
	}
	return nil
}
