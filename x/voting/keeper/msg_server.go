package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/internal/atomic"
	registrytypes "github.com/0xShuk/breeez/x/registry/types"
	"github.com/0xShuk/breeez/x/voting/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (k msgServer) CreateProposal(goCtx context.Context, msg *types.MsgCreateProposal) (*types.MsgCreateProposalResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	creator := sdk.MustAccAddressFromBech32(msg.Creator)

	var proposal types.Proposal
	err := atomic.Run(ctx, func(ctx sdk.Context) error {
		collection, found := k.registryKeeper.GetCollectionByKey(ctx, msg.VerifiedKey)
		if !found {
			return registrytypes.ErrCollectionNotFound.Wrapf("collection %s", msg.VerifiedKey)
		}
		if err := collection.RequireModule(registrytypes.ModuleVoting); err != nil {
			return err
		}
		if _, err := k.registryKeeper.VerifyMember(ctx, collection, msg.CreatorMember, creator); err != nil {
			return err
		}

		id, err := k.ProposalID.Next(ctx)
		if err != nil {
			return err
		}
		proposal, err = types.NewProposal(id, collection.Address, creator, ctx.BlockTime().Unix(), msg.Title, msg.Options, collection.MemberCount)
		if err != nil {
			return err
		}
		k.SetProposal(ctx, proposal)

		ctx.EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeCreateProposal,
				sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(id, 10)),
				sdk.NewAttribute(types.AttributeKeyCollection, collection.Address.String()),
				sdk.NewAttribute(types.AttributeKeyCreator, msg.Creator),
			),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("proposal created",
		"proposal_id", proposal.ID,
		"collection", proposal.Collection.String(),
		"options", len(proposal.Options),
		"size", proposal.Size(),
	)
	return &types.MsgCreateProposalResponse{
		ProposalID: proposal.ID,
		Address:    types.ProposalAddress(proposal.ID).String(),
	}, nil
}

func (k msgServer) Vote(goCtx context.Context, msg *types.MsgVote) (*types.MsgVoteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	voter := sdk.MustAccAddressFromBech32(msg.Voter)

	var proposal types.Proposal
	err := atomic.Run(ctx, func(ctx sdk.Context) error {
		var (
			collection registrytypes.Collection
			err        error
		)
		proposal, collection, err = k.loadProposal(ctx, msg.ProposalID)
		if err != nil {
			return err
		}
		if !proposal.Active() {
			return types.ErrVotingIsClosed.Wrapf("proposal %d already executed", proposal.ID)
		}
		if !proposal.VotingOpen(ctx.BlockTime().Unix(), collection.VoteDuration) {
			return types.ErrVotingIsClosed.Wrapf("proposal %d opened at %d for %ds", proposal.ID, proposal.CreatedAt, collection.VoteDuration)
		}
		if int(msg.Choice) >= len(proposal.Options) {
			return types.ErrOptionNotExists.Wrapf("choice %d of %d options", msg.Choice, len(proposal.Options))
		}

		for _, asset := range msg.Assets {
			info, err := k.registryKeeper.VerifyMember(ctx, collection, asset, voter)
			if err != nil {
				return err
			}
			if info.Ordinal >= collection.MemberCount {
				return types.ErrOrdinalOutOfRange.Wrapf("asset %s ordinal %d, member count %d", asset, info.Ordinal, collection.MemberCount)
			}
			if err := proposal.Voters.Set(info.Ordinal); err != nil {
				return err
			}
			proposal.Votes[msg.Choice]++
		}
		k.SetProposal(ctx, proposal)

		ctx.EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeVote,
				sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(proposal.ID, 10)),
				sdk.NewAttribute(types.AttributeKeyVoter, msg.Voter),
				sdk.NewAttribute(types.AttributeKeyChoice, strconv.FormatUint(uint64(msg.Choice), 10)),
				sdk.NewAttribute(types.AttributeKeyVotes, strconv.Itoa(len(msg.Assets))),
			),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("vote cast", "proposal_id", msg.ProposalID, "voter", msg.Voter, "choice", msg.Choice, "votes", len(msg.Assets))
	return &types.MsgVoteResponse{Votes: uint64(len(msg.Assets))}, nil
}

func (k msgServer) ExecuteProposal(goCtx context.Context, msg *types.MsgExecuteProposal) (*types.MsgExecuteProposalResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	var proposal types.Proposal
	err := atomic.Run(ctx, func(ctx sdk.Context) error {
		var (
			collection registrytypes.Collection
			err        error
		)
		proposal, collection, err = k.loadProposal(ctx, msg.ProposalID)
		if err != nil {
			return err
		}
		if !proposal.Active() {
			return types.ErrProposalAlreadyExecuted.Wrapf("proposal %d is %s", proposal.ID, proposal.Status)
		}
		if proposal.VotingOpen(ctx.BlockTime().Unix(), collection.VoteDuration) {
			return types.ErrVotingIsActive.Wrapf("proposal %d opened at %d for %ds", proposal.ID, proposal.CreatedAt, collection.VoteDuration)
		}

		proposal.Decide(collection.Quorum)
		k.SetProposal(ctx, proposal)

		ctx.EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeExecuteProposal,
				sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(proposal.ID, 10)),
				sdk.NewAttribute(types.AttributeKeyStatus, proposal.Status.String()),
				sdk.NewAttribute(types.AttributeKeyTotal, strconv.FormatUint(proposal.TotalVotes(), 10)),
			),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("proposal executed", "proposal_id", proposal.ID, "status", proposal.Status.String(), "total_votes", proposal.TotalVotes())
	return &types.MsgExecuteProposalResponse{Passed: proposal.Status == types.StatusPassed}, nil
}

func (k Keeper) loadProposal(ctx sdk.Context, id uint64) (types.Proposal, registrytypes.Collection, error) {
	proposal, found := k.GetProposal(ctx, id)
	if !found {
		return types.Proposal{}, registrytypes.Collection{}, types.ErrProposalNotFound.Wrapf("proposal %d", id)
	}
	collection, found := k.registryKeeper.GetCollection(ctx, proposal.Collection)
	if !found {
		return types.Proposal{}, registrytypes.Collection{}, registrytypes.ErrCollectionNotFound.Wrapf("collection %s", proposal.Collection)
	}
	return proposal, collection, nil
}
