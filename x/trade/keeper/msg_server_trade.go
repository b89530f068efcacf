package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/internal/atomic"
	registrytypes "github.com/0xShuk/breeez/x/registry/types"
	"github.com/0xShuk/breeez/x/trade/types"
)

func (k msgServer) CreateTrade(goCtx context.Context, msg *types.MsgCreateTrade) (*types.MsgCreateTradeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	partyOne := sdk.MustAccAddressFromBech32(msg.PartyOne)
	partyTwo := sdk.MustAccAddressFromBech32(msg.PartyTwo)

	var trade types.Trade
	err := atomic.Run(ctx, func(ctx sdk.Context) error {
		collection, err := k.tradeCollection(ctx, msg.VerifiedKey)
		if err != nil {
			return err
		}
		if err := collection.RequireModule(registrytypes.ModuleTrade); err != nil {
			return err
		}
		if _, found := k.GetTrade(ctx, partyOne, partyTwo, collection.Address); found {
			return types.ErrTradeAlreadyExists.Wrapf("%s and %s over %s", msg.PartyOne, msg.PartyTwo, msg.VerifiedKey)
		}
		if _, err := k.registryKeeper.VerifyMember(ctx, collection, msg.PartyOneMember, partyOne); err != nil {
			return err
		}
		if _, err := k.registryKeeper.VerifyMember(ctx, collection, msg.PartyTwoMember, partyTwo); err != nil {
			return err
		}

		leg, err := types.NewLeg(msg.Mode, msg.Value, msg.AssetDenom, msg.AssetAmount, partyOne)
		if err != nil {
			return err
		}
		trade = types.Trade{
			PartyOne:   partyOne,
			PartyTwo:   partyTwo,
			Collection: collection.Address,
			Status:     types.StatusCreated,
			CreatedAt:  ctx.BlockTime().Unix(),
			Legs:       [2]types.Leg{leg, {}},
			Receive:    [2]types.OptionalAddress{types.UnsetAddress(), types.NotApplicableAddress()},
		}
		if receive := optionalAddress(msg.ReceiveAddress); receive != nil {
			trade.Receive[types.SlotOne] = types.SetAddress(receive)
		}
		if leg.Mode.HasAsset() {
			trade.Receive[types.SlotTwo] = types.UnsetAddress()
		}

		if err := k.fund(ctx, trade, types.SlotOne, k.registryKeeper.GetParams(ctx).ValueDenom); err != nil {
			return err
		}
		k.SetTrade(ctx, trade)

		ctx.EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeCreateTrade,
				sdk.NewAttribute(types.AttributeKeyTrade, trade.Address().String()),
				sdk.NewAttribute(types.AttributeKeyPartyOne, msg.PartyOne),
				sdk.NewAttribute(types.AttributeKeyPartyTwo, msg.PartyTwo),
				sdk.NewAttribute(types.AttributeKeyCollection, collection.Address.String()),
				sdk.NewAttribute(types.AttributeKeyMode, leg.Mode.String()),
				sdk.NewAttribute(types.AttributeKeyValue, strconv.FormatUint(leg.Value, 10)),
				sdk.NewAttribute(types.AttributeKeyAsset, leg.AssetCoins().String()),
			),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("trade created",
		"trade", trade.Address().String(),
		"party_one", msg.PartyOne,
		"party_two", msg.PartyTwo,
		"mode", msg.Mode.String(),
	)
	return &types.MsgCreateTradeResponse{Address: trade.Address().String()}, nil
}

func (k msgServer) AcceptTrade(goCtx context.Context, msg *types.MsgAcceptTrade) (*types.MsgAcceptTradeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	partyTwo := sdk.MustAccAddressFromBech32(msg.PartyTwo)

	var trade types.Trade
	err := atomic.Run(ctx, func(ctx sdk.Context) error {
		var (
			collection registrytypes.Collection
			err        error
		)
		trade, collection, err = k.loadTrade(ctx, msg.PartyOne, msg.PartyTwo, msg.VerifiedKey)
		if err != nil {
			return err
		}
		if err := collection.RequireModule(registrytypes.ModuleTrade); err != nil {
			return err
		}
		if trade.Accepted() {
			return types.ErrTradeAlreadyAccepted.Wrapf("trade %s", trade.Address())
		}

		receive := optionalAddress(msg.ReceiveAddress)
		switch {
		case trade.Legs[types.SlotOne].Mode.HasAsset() && receive == nil:
			return types.ErrAccountNotProvided.Wrap("party one funded an asset leg; a receive address is required")
		case !trade.Legs[types.SlotOne].Mode.HasAsset() && receive != nil:
			return types.ErrAccountNotRequired.Wrap("party one funded no asset leg")
		case receive != nil:
			trade.Receive[types.SlotTwo] = types.SetAddress(receive)
		}

		leg, err := types.NewLeg(msg.Mode, msg.Value, msg.AssetDenom, msg.AssetAmount, partyTwo)
		if err != nil {
			return err
		}
		trade.Legs[types.SlotTwo] = leg
		if !leg.Mode.HasAsset() {
			trade.Receive[types.SlotOne] = types.NotApplicableAddress()
		}
		trade.Status = types.StatusAccepted

		if err := k.fund(ctx, trade, types.SlotTwo, k.registryKeeper.GetParams(ctx).ValueDenom); err != nil {
			return err
		}
		k.SetTrade(ctx, trade)

		ctx.EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeAcceptTrade,
				sdk.NewAttribute(types.AttributeKeyTrade, trade.Address().String()),
				sdk.NewAttribute(types.AttributeKeyPartyTwo, msg.PartyTwo),
				sdk.NewAttribute(types.AttributeKeyMode, leg.Mode.String()),
				sdk.NewAttribute(types.AttributeKeyValue, strconv.FormatUint(leg.Value, 10)),
				sdk.NewAttribute(types.AttributeKeyAsset, leg.AssetCoins().String()),
			),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("trade accepted", "trade", trade.Address().String(), "party_two", msg.PartyTwo, "mode", msg.Mode.String())
	return &types.MsgAcceptTradeResponse{}, nil
}

func (k msgServer) ExecuteTrade(goCtx context.Context, msg *types.MsgExecuteTrade) (*types.MsgExecuteTradeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	var (
		trade types.Trade
		fee   sdk.Coins
	)
	err := atomic.Run(ctx, func(ctx sdk.Context) error {
		var (
			collection registrytypes.Collection
			err        error
		)
		trade, collection, err = k.loadTrade(ctx, msg.PartyOne, msg.PartyTwo, msg.VerifiedKey)
		if err != nil {
			return err
		}
		if !trade.Accepted() {
			return types.ErrTradeNotAccepted.Wrapf("trade %s", trade.Address())
		}

		receive := optionalAddress(msg.ReceiveAddress)
		if trade.Legs[types.SlotTwo].Mode.HasAsset() {
			if receive != nil {
				trade.Receive[types.SlotOne] = types.SetAddress(receive)
			}
			if !trade.Receive[types.SlotOne].IsSet() {
				return types.ErrAccountNotProvided.Wrap("party two funded an asset leg; a receive address is required")
			}
		} else if receive != nil {
			return types.ErrAccountNotRequired.Wrap("party two funded no asset leg")
		}
		if collection.Treasury.Empty() {
			return types.ErrTreasuryNotSet.Wrapf("collection %s", collection.VerifiedKey)
		}

		valueDenom := k.registryKeeper.GetParams(ctx).ValueDenom
		fee = sdk.NewCoins(sdk.NewCoin(valueDenom, math.NewIntFromUint64(collection.TradeFee)))
		if err := k.custodyKeeper.Transfer(ctx, trade.PartyOne, collection.Treasury, fee, "trade: fee"); err != nil {
			return err
		}
		for _, slot := range []types.Slot{types.SlotOne, types.SlotTwo} {
			if err := k.release(ctx, trade, slot, valueDenom, true); err != nil {
				return err
			}
		}
		if _, err := k.custodyKeeper.Close(ctx, trade.Address(), trade.PartyOne, "trade: close"); err != nil {
			return err
		}
		k.RemoveTrade(ctx, trade)

		ctx.EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeExecuteTrade,
				sdk.NewAttribute(types.AttributeKeyTrade, trade.Address().String()),
				sdk.NewAttribute(types.AttributeKeyPartyOne, msg.PartyOne),
				sdk.NewAttribute(types.AttributeKeyPartyTwo, msg.PartyTwo),
				sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("trade executed", "trade", trade.Address().String(), "fee", fee.String())
	return &types.MsgExecuteTradeResponse{}, nil
}

func (k msgServer) CancelTrade(goCtx context.Context, msg *types.MsgCancelTrade) (*types.MsgCancelTradeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	signer := sdk.MustAccAddressFromBech32(msg.Signer)

	var trade types.Trade
	err := atomic.Run(ctx, func(ctx sdk.Context) error {
		var (
			collection registrytypes.Collection
			err        error
		)
		trade, collection, err = k.loadTrade(ctx, msg.PartyOne, msg.PartyTwo, msg.VerifiedKey)
		if err != nil {
			return err
		}
		if _, ok := trade.SlotOf(signer); !ok {
			return types.ErrNotTradeParty.Wrapf("%s is not a party of trade %s", msg.Signer, trade.Address())
		}

		funded := []types.Slot{types.SlotOne, types.SlotTwo}
		if !trade.Accepted() {
			if now := ctx.BlockTime().Unix(); !trade.Expired(now, collection.TradeDuration) {
				return types.ErrTradeTimeNotExpired.Wrapf("trade %s created at %d expires after %ds", trade.Address(), trade.CreatedAt, collection.TradeDuration)
			}
			funded = funded[:1]
		}

		valueDenom := k.registryKeeper.GetParams(ctx).ValueDenom
		for _, slot := range funded {
			if err := k.release(ctx, trade, slot, valueDenom, false); err != nil {
				return err
			}
		}
		if _, err := k.custodyKeeper.Close(ctx, trade.Address(), trade.PartyOne, "trade: close"); err != nil {
			return err
		}
		k.RemoveTrade(ctx, trade)

		ctx.EventManager().EmitEvents(sdk.Events{
			sdk.NewEvent(
				types.EventTypeCancelTrade,
				sdk.NewAttribute(types.AttributeKeyTrade, trade.Address().String()),
				sdk.NewAttribute(types.AttributeKeyCanceller, msg.Signer),
			),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.Logger().Info("trade cancelled", "trade", trade.Address().String(), "canceller", msg.Signer, "accepted", trade.Accepted())
	return &types.MsgCancelTradeResponse{}, nil
}
