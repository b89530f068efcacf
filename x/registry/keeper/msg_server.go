package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/internal/atomic"
	"github.com/0xShuk/breeez/x/registry/types"
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

func (k msgServer) UpdateParams(goCtx context.Context, req *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if k.GetAuthority() != req.Authority {
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), req.Authority)
	}
	if err := req.Params.Validate(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.SetParams(ctx, req.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}

// update runs an authorized read-modify-write of one collection record as a single unit.
func (k msgServer) update(goCtx context.Context, owner, verifiedKey string, apply func(ctx sdk.Context, c *types.Collection) error) error {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return atomic.Run(ctx, func(ctx sdk.Context) error {
		collection, err := k.authorizedCollection(ctx, owner, verifiedKey)
		if err != nil {
			return err
		}
		if err := apply(ctx, &collection); err != nil {
			return err
		}
		k.SetCollection(ctx, collection)
		return nil
	})
}
