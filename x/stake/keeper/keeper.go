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
	"github.com/0xShuk/breeez/x/stake/types"
)

type (
	// StakeIndexes groups the secondary indexes for the stake map
	StakeIndexes struct {
		// ByOwner indexes staked assets by the account that staked them
		ByOwner *indexes.Multi[sdk.AccAddress, string, types.Stake]
	}

	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		registryKeeper types.RegistryKeeper
		custodyKeeper  types.CustodyKeeper

		Stakes *collections.IndexedMap[string, types.Stake, StakeIndexes]
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
	stakeIdx := StakeIndexes{
		ByOwner: indexes.NewMulti(
			sb,
			types.StakeByOwnerIndexPrefix,
			"stakes_by_owner",
			sdk.AccAddressKey,
			collections.StringKey,
			func(_ string, s types.Stake) (sdk.AccAddress, error) {
				return s.Owner, nil
			},
		),
	}

	k := Keeper{
		storeService: storeService,
		logger:       logger,

		registryKeeper: registryKeeper,
		custodyKeeper:  custodyKeeper,

		Stakes: collections.NewIndexedMap(
			sb,
			types.StakeKey,
			"stakes",
			collections.StringKey,
			layout.RecordValue[types.Stake]("stake"),
			stakeIdx,
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

// GetStake retrieves the stake record of an asset
func (k Keeper) GetStake(ctx context.Context, asset string) (types.Stake, bool) {
	s, err := k.Stakes.Get(ctx, asset)
	return s, err == nil
}

// SetStake stores a stake record, keeping the owner index in sync
func (k Keeper) SetStake(ctx context.Context, s types.Stake) {
	if err := k.Stakes.Set(ctx, s.Asset, s); err != nil {
		panic(err)
	}
}

func (k Keeper) RemoveStake(ctx context.Context, asset string) {
	if err := k.Stakes.Remove(ctx, asset); err != nil {
		panic(err)
	}
}

// GetStakesByOwner returns every asset currently staked by owner
func (k Keeper) GetStakesByOwner(ctx context.Context, owner sdk.AccAddress) []types.Stake {
	idxIter, err := k.Stakes.Indexes.ByOwner.MatchExact(ctx, owner)
	if err != nil {
		panic(err)
	}
	defer idxIter.Close()
	var list []types.Stake
	for ; idxIter.Valid(); idxIter.Next() {
		pk, err := idxIter.PrimaryKey()
		if err != nil {
			panic(err)
		}
		v, err := k.Stakes.Get(ctx, pk)
		if err != nil {
			panic(err)
		}
		list = append(list, v)
	}
	return list
}

// GetAllStakes returns every stake record (for genesis export)
func (k Keeper) GetAllStakes(ctx context.Context) []types.Stake {
	iter, err := k.Stakes.Iterate(ctx, nil)
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
