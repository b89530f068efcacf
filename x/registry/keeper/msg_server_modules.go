package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/x/registry/types"
)

func emitModuleEvent(ctx sdk.Context, eventType string, c *types.Collection, m types.Module, field string, value uint64) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyCollection, c.Address.String()),
			sdk.NewAttribute(types.AttributeKeyModule, m.String()),
			sdk.NewAttribute(types.AttributeKeyField, field),
			sdk.NewAttribute(types.AttributeKeyValue, strconv.FormatUint(value, 10)),
		),
	})
}

func requireNotAdded(c *types.Collection, m types.Module) error {
	if c.Enabled(m) {
		return types.ErrModuleAlreadyAdded.Wrapf("%s module already added to %s", m, c.VerifiedKey)
	}
	return nil
}

func (k msgServer) AddStaking(goCtx context.Context, msg *types.MsgAddStaking) (*types.MsgAddStakingResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	err := k.update(goCtx, msg.Owner, msg.VerifiedKey, func(ctx sdk.Context, c *types.Collection) error {
		if err := requireNotAdded(c, types.ModuleStaking); err != nil {
			return err
		}
		if !c.HasRewardAsset() {
			return types.ErrTokenNotFound.Wrapf("attach a reward asset to %s before enabling staking", c.VerifiedKey)
		}
		c.IsStaking = true
		c.EmissionRate = msg.EmissionRate
		emitModuleEvent(ctx, types.EventTypeAddModule, c, types.ModuleStaking, "emission_rate", msg.EmissionRate)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("staking module added", "verified_key", msg.VerifiedKey, "emission_rate", msg.EmissionRate)
	return &types.MsgAddStakingResponse{}, nil
}

func (k msgServer) EditStaking(goCtx context.Context, msg *types.MsgEditStaking) (*types.MsgEditStakingResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	err := k.update(goCtx, msg.Owner, msg.VerifiedKey, func(ctx sdk.Context, c *types.Collection) error {
		if err := c.RequireModule(types.ModuleStaking); err != nil {
			return err
		}
		c.EmissionRate = msg.EmissionRate
		emitModuleEvent(ctx, types.EventTypeEditModule, c, types.ModuleStaking, "emission_rate", msg.EmissionRate)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("staking module edited", "verified_key", msg.VerifiedKey, "emission_rate", msg.EmissionRate)
	return &types.MsgEditStakingResponse{}, nil
}

func (k msgServer) AddTrade(goCtx context.Context, msg *types.MsgAddTrade) (*types.MsgAddTradeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	err := k.update(goCtx, msg.Owner, msg.VerifiedKey, func(ctx sdk.Context, c *types.Collection) error {
		if err := requireNotAdded(c, types.ModuleTrade); err != nil {
			return err
		}
		c.IsTrade = true
		c.TradeFee = msg.Fee
		c.TradeDuration = msg.Duration
		emitModuleEvent(ctx, types.EventTypeAddModule, c, types.ModuleTrade, types.TradeFieldFee.String(), msg.Fee)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("trade module added", "verified_key", msg.VerifiedKey, "fee", msg.Fee, "duration", msg.Duration)
	return &types.MsgAddTradeResponse{}, nil
}

func (k msgServer) EditTrade(goCtx context.Context, msg *types.MsgEditTrade) (*types.MsgEditTradeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	err := k.update(goCtx, msg.Owner, msg.VerifiedKey, func(ctx sdk.Context, c *types.Collection) error {
		if err := c.RequireModule(types.ModuleTrade); err != nil {
			return err
		}
		switch msg.Field {
		case types.TradeFieldFee:
			c.TradeFee = msg.Value
		case types.TradeFieldDuration:
			c.TradeDuration = int64(msg.Value)
		}
		emitModuleEvent(ctx, types.EventTypeEditModule, c, types.ModuleTrade, msg.Field.String(), msg.Value)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("trade module edited", "verified_key", msg.VerifiedKey, "field", msg.Field.String(), "value", msg.Value)
	return &types.MsgEditTradeResponse{}, nil
}

func (k msgServer) AddVoting(goCtx context.Context, msg *types.MsgAddVoting) (*types.MsgAddVotingResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	err := k.update(goCtx, msg.Owner, msg.VerifiedKey, func(ctx sdk.Context, c *types.Collection) error {
		if err := requireNotAdded(c, types.ModuleVoting); err != nil {
			return err
		}
		c.IsVoting = true
		c.MemberCount = msg.MemberCount
		c.VoteDuration = msg.Duration
		c.Quorum = msg.Quorum
		emitModuleEvent(ctx, types.EventTypeAddModule, c, types.ModuleVoting, types.VotingFieldQuorum.String(), msg.Quorum)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("voting module added",
		"verified_key", msg.VerifiedKey,
		"member_count", msg.MemberCount,
		"duration", msg.Duration,
		"quorum", msg.Quorum,
	)
	return &types.MsgAddVotingResponse{}, nil
}

func (k msgServer) EditVoting(goCtx context.Context, msg *types.MsgEditVoting) (*types.MsgEditVotingResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	err := k.update(goCtx, msg.Owner, msg.VerifiedKey, func(ctx sdk.Context, c *types.Collection) error {
		if err := c.RequireModule(types.ModuleVoting); err != nil {
			return err
		}
		count, duration, quorum := c.MemberCount, c.VoteDuration, c.Quorum
		switch msg.Field {
		case types.VotingFieldCount:
			count = msg.Value
		case types.VotingFieldDuration:
			duration = int64(msg.Value)
		case types.VotingFieldQuorum:
			quorum = msg.Value
		}
		if err := types.ValidateVoting(count, duration, quorum); err != nil {
			return err
		}
		c.MemberCount, c.VoteDuration, c.Quorum = count, duration, quorum
		emitModuleEvent(ctx, types.EventTypeEditModule, c, types.ModuleVoting, msg.Field.String(), msg.Value)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("voting module edited", "verified_key", msg.VerifiedKey, "field", msg.Field.String(), "value", msg.Value)
	return &types.MsgEditVotingResponse{}, nil
}
