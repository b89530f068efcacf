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
	"github.com/0xShuk/breeez/x/voting/types"
)

type (
	// ProposalIndexes groups the secondary indexes for the proposal map
	ProposalIndexes struct {
		ByCollection *indexes.Multi[sdk.AccAddress, uint64, types.Proposal]
	}

	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		registryKeeper types.RegistryKeeper

		Proposals  *collections.IndexedMap[uint64, types.Proposal, ProposalIndexes]
		ProposalID collections.Sequence
		Schema     collections.Schema
	}
)

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,

	registryKeeper types.RegistryKeeper,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	proposalIdx := ProposalIndexes{
		ByCollection: indexes.NewMulti(
			sb,
			types.ProposalByCollectionIndexPrefix,
			"proposals_by_collection",
			sdk.AccAddressKey,
			collections.Uint64Key,
			func(_ uint64, p types.Proposal) (sdk.AccAddress, error) {
				return p.Collection, nil
			},
		),
	}

	k := Keeper{
		storeService: storeService,
		logger:       logger,

		registryKeeper: registryKeeper,

		Proposals: collections.NewIndexedMap(
			sb,
			types.ProposalKey,
			"proposals",
			collections.Uint64Key,
			layout.RecordValue[types.Proposal]("proposal"),
			proposalIdx,
		),
		ProposalID: collections.NewSequence(sb, types.ProposalSeqKey, "proposal_id"),
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

func (k Keeper) GetProposal(ctx context.Context, id uint64) (types.Proposal, bool) {
	p, err := k.Proposals.Get(ctx, id)
	return p, err == nil
}

func (k Keeper) SetProposal(ctx context.Context, p types.Proposal) {
	if err := k.Proposals.Set(ctx, p.ID, p); err != nil {
		panic(err)
	}
}

// GetProposalsByCollection returns every proposal of a collection in id order
func (k Keeper) GetProposalsByCollection(ctx context.Context, collection sdk.AccAddress) []types.Proposal {
	idxIter, err := k.Proposals.Indexes.ByCollection.MatchExact(ctx, collection)
	if err != nil {
		panic(err)
	}
	defer idxIter.Close()
	var list []types.Proposal
	for ; idxIter.Valid(); idxIter.Next() {
		pk, err := idxIter.PrimaryKey()
		if err != nil {
			panic(err)
		}
		v, err := k.Proposals.Get(ctx, pk)
		if err != nil {
			panic(err)
		}
		list = append(list, v)
	}
	return list
}

// GetAllProposals returns every proposal (for genesis export)
func (k Keeper) GetAllProposals(ctx context.Context) []types.Proposal {
	iter, err := k.Proposals.Iterate(ctx, nil)
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
