package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/internal/atomic"
	registrytypes "github.com/0xShuk/breeez/x/registry/types"
	"github.com/0xShuk/breeez/x/stake/types"
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

func (k msgServer) Stake(goCtx context.Context, msg *types.MsgStake) (*types.MsgStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	owner := sdk.MustAccAddressFromBech32(msg.Owner)

	var stake types.Stake
	err := atomic.Run(ctx, func(ctx sdk.Context) error {
		collection, found := k.registryKeeper.GetCollectionByKey(ctx, msg.VerifiedKey)
		if !found {
			return registrytypes.ErrCollectionNotFound.Wrapf("collection %s", msg.VerifiedKey)
		}
		if err := collection.RequireModule(registrytypes.ModuleStaking); err != nil {
			return err
		}
		if _, found := k.GetStake(ctx, msg.Asset); found {
			return types.ErrAlreadyStaked.Wrapf("asset %s", msg.Asset)
		}
		if _, err := k.registryKeeper.VerifyMember(ctx, collection, msg.Asset, owner); err != nil {
			return err
		}

		asset := sdk.NewCoins(sdk.NewCoin(msg.Asset, math.OneInt()))
		if err := k.custodyKeeper.Transfer(ctx, owner, types.EscrowAddress(msg.Asset), asset, "stake"); err != nil {
			return err
		}

		stake = types.Stake{
			Asset:       msg.Asset,
			Owner:       owner,
			StakedAt:    ctx.BlockTime().Unix(),
			SendAddress: owner,
			Collection:  collection.Address,
		}
		k.SetStake(ctx, stake)

		ctx.EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeStake,
				sdk.NewAttribute(types.AttributeKeyAsset, msg.Asset),
				sdk.NewAttribute(types.AttributeKeyOwner, msg.Owner),
				sdk.NewAttribute(types.AttributeKeyCollection, collection.Address.String()),
				sdk.NewAttribute(types.AttributeKeyStakedAt, strconv.FormatInt(stake.StakedAt, 10)),
			),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("asset staked", "asset", msg.Asset, "owner", msg.Owner, "staked_at", stake.StakedAt)
	return &types.MsgStakeResponse{}, nil
}

func (k msgServer) WithdrawRewards(goCtx context.Context, msg *types.MsgWithdrawRewards) (*types.MsgWithdrawRewardsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	var reward math.Int
	err := atomic.Run(ctx, func(ctx sdk.Context) error {
		stake, collection, err := k.ownedStake(ctx, msg.Owner, msg.Asset)
		if err != nil {
			return err
		}
		if reward, err = k.payReward(ctx, stake, collection); err != nil {
			return err
		}

		stake.StakedAt = ctx.BlockTime().Unix()
		k.SetStake(ctx, stake)

		ctx.EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeWithdrawRewards,
				sdk.NewAttribute(types.AttributeKeyAsset, msg.Asset),
				sdk.NewAttribute(types.AttributeKeyOwner, msg.Owner),
				sdk.NewAttribute(types.AttributeKeyReward, reward.String()),
			),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("rewards withdrawn", "asset", msg.Asset, "owner", msg.Owner, "reward", reward.String())
	return &types.MsgWithdrawRewardsResponse{Reward: reward}, nil
}

func (k msgServer) Unstake(goCtx context.Context, msg *types.MsgUnstake) (*types.MsgUnstakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	var reward math.Int
	err := atomic.Run(ctx, func(ctx sdk.Context) error {
		stake, collection, err := k.ownedStake(ctx, msg.Owner, msg.Asset)
		if err != nil {
			return err
		}
		if reward, err = k.payReward(ctx, stake, collection); err != nil {
			return err
		}

		escrow := types.EscrowAddress(stake.Asset)
		asset := sdk.NewCoins(sdk.NewCoin(stake.Asset, math.OneInt()))
		if err := k.custodyKeeper.Transfer(ctx, escrow, stake.SendAddress, asset, "unstake"); err != nil {
			return err
		}
		if _, err := k.custodyKeeper.Close(ctx, escrow, stake.Owner, "unstake: close escrow"); err != nil {
			return err
		}
		k.RemoveStake(ctx, stake.Asset)

		ctx.EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeUnstake,
				sdk.NewAttribute(types.AttributeKeyAsset, msg.Asset),
				sdk.NewAttribute(types.AttributeKeyOwner, msg.Owner),
				sdk.NewAttribute(types.AttributeKeyReward, reward.String()),
			),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("asset unstaked", "asset", msg.Asset, "owner", msg.Owner, "reward", reward.String())
	return &types.MsgUnstakeResponse{Reward: reward}, nil
}

// ownedStake loads the stake of asset and its collection, requiring owner to be the staker and
// staking to still be enabled.
func (k Keeper) ownedStake(ctx sdk.Context, owner, asset string) (types.Stake, registrytypes.Collection, error) {
	stake, found := k.GetStake(ctx, asset)
	if !found {
		return types.Stake{}, registrytypes.Collection{}, types.ErrStakeNotFound.Wrapf("asset %s", asset)
	}
	if stake.Owner.String() != owner {
		return types.Stake{}, registrytypes.Collection{}, types.ErrNotStakeOwner.Wrapf("%s staked by %s", asset, stake.Owner)
	}
	collection, found := k.registryKeeper.GetCollection(ctx, stake.Collection)
	if !found {
		return types.Stake{}, registrytypes.Collection{}, registrytypes.ErrCollectionNotFound.Wrapf("collection %s", stake.Collection)
	}
	if err := collection.RequireModule(registrytypes.ModuleStaking); err != nil {
		return types.Stake{}, registrytypes.Collection{}, err
	}
	return stake, collection, nil
}

// payReward mints the reward accrued since stake.StakedAt to the owner.
func (k Keeper) payReward(ctx sdk.Context, stake types.Stake, collection registrytypes.Collection) (math.Int, error) {
	if !collection.HasRewardAsset() {
		return math.Int{}, registrytypes.ErrTokenNotFound.Wrapf("collection %s has no reward asset", collection.VerifiedKey)
	}
	reward := types.CalculateReward(ctx.BlockTime().Unix()-stake.StakedAt, collection.EmissionRate)
	if reward.IsZero() {
		return reward, nil
	}
	amt := sdk.NewCoins(sdk.NewCoin(collection.RewardDenom, reward))
	if err := k.custodyKeeper.Mint(ctx, types.ModuleName, stake.Owner, amt, "stake reward "+stake.Asset); err != nil {
		return math.Int{}, err
	}
	return reward, nil
}
