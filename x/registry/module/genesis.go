package registry

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/x/registry/keeper"
	"github.com/0xShuk/breeez/x/registry/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	for _, c := range genState.Collections {
		k.SetCollection(ctx, c)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)

	if list := k.GetAllCollections(ctx); list != nil {
		genesis.Collections = list
	}

	return genesis
}
