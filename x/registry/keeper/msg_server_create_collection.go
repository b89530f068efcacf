package keeper

import (
	"context"
	"fmt"
	"path"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/0xShuk/breeez/internal/atomic"
	"github.com/0xShuk/breeez/x/registry/types"
)

func (k msgServer) CreateCollection(goCtx context.Context, msg *types.MsgCreateCollection) (*types.MsgCreateCollectionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	owner := sdk.MustAccAddressFromBech32(msg.Owner)
	treasury := sdk.MustAccAddressFromBech32(msg.Treasury)

	var collection types.Collection
	err := atomic.Run(ctx, func(ctx sdk.Context) error {
		if err := k.checkUpdateAuthority(ctx, msg.VerifiedKey, owner); err != nil {
			return err
		}
		if _, found := k.GetCollectionByKey(ctx, msg.VerifiedKey); found {
			return types.ErrCollectionAlreadyExists.Wrapf("collection %s", msg.VerifiedKey)
		}

		collection = types.NewCollection(msg.VerifiedKey, treasury)
		k.SetCollection(ctx, collection)

		ctx.EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeCreateCollection,
				sdk.NewAttribute(types.AttributeKeyCollection, collection.Address.String()),
				sdk.NewAttribute(types.AttributeKeyVerifiedKey, msg.VerifiedKey),
				sdk.NewAttribute(types.AttributeKeyOwner, msg.Owner),
				sdk.NewAttribute(types.AttributeKeyTreasury, msg.Treasury),
			),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("collection created",
		"collection", collection.Address.String(),
		"verified_key", msg.VerifiedKey,
		"treasury", msg.Treasury,
	)

	return &types.MsgCreateCollectionResponse{Address: collection.Address.String()}, nil
}

func (k msgServer) AttachRewardAsset(goCtx context.Context, msg *types.MsgAttachRewardAsset) (*types.MsgAttachRewardAssetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	err := k.update(goCtx, msg.Owner, msg.VerifiedKey, func(ctx sdk.Context, c *types.Collection) error {
		if c.HasRewardAsset() {
			return types.ErrTokenAlreadyExists.Wrapf("collection %s already pays rewards in %s", c.VerifiedKey, c.RewardDenom)
		}
		taken, err := k.RewardDenoms.Has(ctx, msg.Denom)
		if err != nil {
			return err
		}
		if taken {
			return types.ErrTokenAlreadyExists.Wrapf("%s is attached to another collection", msg.Denom)
		}
		if supply := k.bankKeeper.GetSupply(ctx, msg.Denom); !supply.Amount.IsZero() {
			return types.ErrRewardSupplyNotZero.Wrapf("%s has supply %s", msg.Denom, supply.Amount)
		}

		k.bankKeeper.SetDenomMetaData(ctx, rewardMetadata(c.VerifiedKey, msg.Denom, k.GetParams(ctx).RewardDecimals))
		c.RewardDenom = msg.Denom

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeAttachReward,
				sdk.NewAttribute(types.AttributeKeyCollection, c.Address.String()),
				sdk.NewAttribute(types.AttributeKeyDenom, msg.Denom),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("reward asset attached", "verified_key", msg.VerifiedKey, "denom", msg.Denom)
	return &types.MsgAttachRewardAssetResponse{}, nil
}

func rewardMetadata(verifiedKey, denom string, decimals uint32) banktypes.Metadata {
	display := strings.ToUpper(path.Base(denom))
	units := []*banktypes.DenomUnit{{Denom: denom, Exponent: 0}}
	if decimals > 0 {
		units = append(units, &banktypes.DenomUnit{Denom: display, Exponent: decimals})
	} else {
		display = denom
	}
	return banktypes.Metadata{
		Description: fmt.Sprintf("staking reward of collection %s", verifiedKey),
		DenomUnits:  units,
		Base:        denom,
		Display:     display,
		Name:        display,
		Symbol:      display,
	}
}
