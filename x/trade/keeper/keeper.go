package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/collections/indexes"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/internal/layout"
	"github.com/0xShuk/breeez/x/trade/types"
)

type (
	// TradeIndexes groups the secondary indexes for the trade map
	TradeIndexes struct {
		ByPartyOne *indexes.Multi[sdk.AccAddress, sdk.AccAddress, types.Trade]
		ByPartyTwo *indexes.Multi[sdk.AccAddress, sdk.AccAddress, types.Trade]
	}

	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		registryKeeper types.RegistryKeeper
		custodyKeeper  types.CustodyKeeper

		Trades *collections.IndexedMap[sdk.AccAddress, types.Trade, TradeIndexes]
		Schema collections.Schema
	}
)

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,

	registryKeeper types.RegistryKeeper,
	custodyKeeper types.CustodyKeeper,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	tradeIdx := TradeIndexes{
		ByPartyOne: indexes.NewMulti(
			sb,
			types.TradeByPartyOneIndexPrefix,
			"trades_by_party_one",
			sdk.AccAddressKey,
			sdk.AccAddressKey,
			func(_ sdk.AccAddress, t types.Trade) (sdk.AccAddress, error) {
				return t.PartyOne, nil
			},
		),
		ByPartyTwo: indexes.NewMulti(
			sb,
			types.TradeByPartyTwoIndexPrefix,
			"trades_by_party_two",
			sdk.AccAddressKey,
			sdk.AccAddressKey,
			func(_ sdk.AccAddress, t types.Trade) (sdk.AccAddress, error) {
				return t.PartyTwo, nil
			},
		),
	}

	k := Keeper{
		storeService: storeService,
		logger:       logger,

		registryKeeper: registryKeeper,
		custodyKeeper:  custodyKeeper,

		Trades: collections.NewIndexedMap(
			sb,
			types.TradeKey,
			"trades",
			sdk.AccAddressKey,
			layout.RecordValue[types.Trade]("trade"),
			tradeIdx,
		),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetTrade retrieves the trade between two parties over a collection
func (k Keeper) GetTrade(ctx context.Context, partyOne, partyTwo, collection sdk.AccAddress) (types.Trade, bool) {
	t, err := k.Trades.Get(ctx, types.TradeAddress(partyOne, partyTwo, collection))
	return t, err == nil
}

func (k Keeper) SetTrade(ctx context.Context, t types.Trade) {
	if err := k.Trades.Set(ctx, t.Address(), t); err != nil {
		panic(err)
	}
}

func (k Keeper) RemoveTrade(ctx context.Context, t types.Trade) {
	if err := k.Trades.Remove(ctx, t.Address()); err != nil {
		panic(err)
	}
}

// GetTradesByParty returns every open trade addr takes part in, on either side
func (k Keeper) GetTradesByParty(ctx context.Context, addr sdk.AccAddress) []types.Trade {
	var list []types.Trade
	for _, idx := range []*indexes.Multi[sdk.AccAddress, sdk.AccAddress, types.Trade]{
		k.Trades.Indexes.ByPartyOne,
		k.Trades.Indexes.ByPartyTwo,
	} {
		idxIter, err := idx.MatchExact(ctx, addr)
		if err != nil {
			panic(err)
		}
		pks, err := idxIter.PrimaryKeys()
		if err != nil {
			panic(err)
		}
		for _, pk := range pks {
			v, err := k.Trades.Get(ctx, pk)
			if err != nil {
				panic(err)
			}
			list = append(list, v)
		}
	}
	return list
}

// GetAllTrades returns every open trade (for genesis export)
func (k Keeper) GetAllTrades(ctx context.Context) []types.Trade {
	iter, err := k.Trades.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	defer iter.Close()
	values, err := iter.Values()
	if err != nil {
		panic(err)
	}
	return values
}
