package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/internal/layout"
	"github.com/0xShuk/breeez/x/registry/types"
)

type (
	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing a MsgUpdateParams message. Typically, this
		// should be the x/gov module account.
		authority string

		bankKeeper types.BankKeeper
		oracle     types.MembershipOracle

		params       collections.Item[types.Params]
		Collections  collections.Map[sdk.AccAddress, types.Collection]
		RewardDenoms collections.KeySet[string]
		Schema       collections.Schema
	}
)

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	bankKeeper types.BankKeeper,
	oracle types.MembershipOracle,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService: storeService,
		authority:    authority,
		logger:       logger,

		bankKeeper: bankKeeper,
		oracle:     oracle,

		params:       collections.NewItem(sb, types.ParamsKey, "params", layout.RecordValue[types.Params]("params")),
		Collections:  collections.NewMap(sb, types.CollectionKey, "collections", sdk.AccAddressKey, layout.RecordValue[types.Collection]("collection")),
		RewardDenoms: collections.NewKeySet(sb, types.RewardDenomKey, "reward_denoms", collections.StringKey),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetCollection retrieves a collection by its derived record address
func (k Keeper) GetCollection(ctx context.Context, addr sdk.AccAddress) (types.Collection, bool) {
	c, err := k.Collections.Get(ctx, addr)
	return c, err == nil
}

// GetCollectionByKey retrieves a collection by the key of its verified collection asset
func (k Keeper) GetCollectionByKey(ctx context.Context, verifiedKey string) (types.Collection, bool) {
	return k.GetCollection(ctx, types.CollectionAddress(verifiedKey))
}

// SetCollection stores a collection record and indexes its reward denom
func (k Keeper) SetCollection(ctx context.Context, c types.Collection) {
	if err := k.Collections.Set(ctx, c.Address, c); err != nil {
		panic(err)
	}
	if c.HasRewardAsset() {
		if err := k.RewardDenoms.Set(ctx, c.RewardDenom); err != nil {
			panic(err)
		}
	}
}

func (k Keeper) IterateCollections(ctx context.Context, process func(c types.Collection) (stop bool)) {
	err := k.Collections.Walk(ctx, nil, func(_ sdk.AccAddress, c types.Collection) (bool, error) {
		return process(c), nil
	})
	if err != nil {
		panic(err)
	}
}

// GetAllCollections returns every registered collection (for genesis export)
func (k Keeper) GetAllCollections(ctx context.Context) []types.Collection {
	var list []types.Collection
	k.IterateCollections(ctx, func(c types.Collection) bool {
		list = append(list, c)
		return false
	})
	return list
}

// VerifyMember checks through the membership oracle that assetID is a verified member of the
// collection. When holder is set it must hold exactly one unit of the asset.
func (k Keeper) VerifyMember(ctx context.Context, collection types.Collection, assetID string, holder sdk.AccAddress) (types.AssetInfo, error) {
	info, found := k.oracle.GetAsset(ctx, assetID)
	if !found {
		return types.AssetInfo{}, types.ErrAccountNotInitialized.Wrapf("asset %s", assetID)
	}
	if err := info.CheckMemberOf(collection.VerifiedKey); err != nil {
		return types.AssetInfo{}, err
	}
	if !holder.Empty() {
		balance := k.bankKeeper.GetBalance(ctx, holder, assetID)
		if !balance.Amount.Equal(math.OneInt()) {
			return types.AssetInfo{}, types.ErrTokenNotOne.Wrapf("%s holds %s of %s", holder, balance.Amount, assetID)
		}
	}
	return info, nil
}

// checkUpdateAuthority resolves the verified collection asset and requires owner to be its update authority.
func (k Keeper) checkUpdateAuthority(ctx context.Context, verifiedKey string, owner sdk.AccAddress) error {
	info, found := k.oracle.GetAsset(ctx, verifiedKey)
	if !found {
		return types.ErrAccountNotInitialized.Wrapf("collection asset %s", verifiedKey)
	}
	if !info.IsCollectionAsset() {
		return types.ErrNotCollectionAsset.Wrapf("asset %s belongs to collection %s", verifiedKey, info.Collection.Key)
	}
	if !info.UpdateAuthority.Equals(owner) {
		return types.ErrNotUpdateAuthority.Wrapf("%s is not the update authority of %s", owner, verifiedKey)
	}
	return nil
}

// authorizedCollection loads the collection for verifiedKey after checking the owner's update authority.
func (k Keeper) authorizedCollection(ctx context.Context, owner, verifiedKey string) (types.Collection, error) {
	ownerAddr, err := sdk.AccAddressFromBech32(owner)
	if err != nil {
		return types.Collection{}, err
	}
	if err := k.checkUpdateAuthority(ctx, verifiedKey, ownerAddr); err != nil {
		return types.Collection{}, err
	}
	collection, found := k.GetCollectionByKey(ctx, verifiedKey)
	if !found {
		return types.Collection{}, types.ErrCollectionNotFound.Wrapf("collection %s", verifiedKey)
	}
	return collection, nil
}
