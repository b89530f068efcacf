package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	registrytypes "github.com/0xShuk/breeez/x/registry/types"
	"github.com/0xShuk/breeez/x/trade/types"
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

// optionalAddress parses an address that may be left empty.
func optionalAddress(addr string) sdk.AccAddress {
	if addr == "" {
		return nil
	}
	return sdk.MustAccAddressFromBech32(addr)
}

func (k Keeper) tradeCollection(ctx sdk.Context, verifiedKey string) (registrytypes.Collection, error) {
	collection, found := k.registryKeeper.GetCollectionByKey(ctx, verifiedKey)
	if !found {
		return registrytypes.Collection{}, registrytypes.ErrCollectionNotFound.Wrapf("collection %s", verifiedKey)
	}
	return collection, nil
}

// loadTrade resolves the collection and the trade between the two parties.
func (k Keeper) loadTrade(ctx sdk.Context, partyOne, partyTwo, verifiedKey string) (types.Trade, registrytypes.Collection, error) {
	collection, err := k.tradeCollection(ctx, verifiedKey)
	if err != nil {
		return types.Trade{}, registrytypes.Collection{}, err
	}
	p1 := sdk.MustAccAddressFromBech32(partyOne)
	p2 := sdk.MustAccAddressFromBech32(partyTwo)
	trade, found := k.GetTrade(ctx, p1, p2, collection.Address)
	if !found {
		return types.Trade{}, registrytypes.Collection{}, types.ErrTradeNotFound.Wrapf("%s and %s over %s", partyOne, partyTwo, verifiedKey)
	}
	return trade, collection, nil
}

// fund moves a party's leg into custody: the value leg to the trade account and the asset leg
// to the party's escrow.
func (k Keeper) fund(ctx sdk.Context, trade types.Trade, slot types.Slot, valueDenom string) error {
	leg := trade.Legs[slot]
	from := trade.Party(slot)
	if err := k.custodyKeeper.Transfer(ctx, from, trade.Address(), leg.ValueCoins(valueDenom), "trade: fund value leg"); err != nil {
		return err
	}
	return k.custodyKeeper.Transfer(ctx, from, types.EscrowAddress(trade.Address(), slot), leg.AssetCoins(), "trade: fund asset leg")
}

// release pays out a funded leg. On settlement the value goes to the counterparty and the asset
// to the counterparty's receive address; on unwind both go back where they came from.
func (k Keeper) release(ctx sdk.Context, trade types.Trade, slot types.Slot, valueDenom string, settle bool) error {
	leg := trade.Legs[slot]
	escrow := types.EscrowAddress(trade.Address(), slot)

	valueTo, assetTo, memo := trade.Party(slot), leg.SendAddress, "trade: return"
	if settle {
		valueTo, assetTo, memo = trade.Party(slot.Other()), trade.Receive[slot.Other()].Value, "trade: settle"
	}

	if err := k.custodyKeeper.Transfer(ctx, trade.Address(), valueTo, leg.ValueCoins(valueDenom), memo+" value leg"); err != nil {
		return err
	}
	if leg.Mode.HasAsset() {
		if err := k.custodyKeeper.Transfer(ctx, escrow, assetTo, leg.AssetCoins(), memo+" asset leg"); err != nil {
			return err
		}
	}
	_, err := k.custodyKeeper.Close(ctx, escrow, trade.Party(slot), memo+" close escrow")
	return err
}
