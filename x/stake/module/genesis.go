package stake

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/x/stake/keeper"
	"github.com/0xShuk/breeez/x/stake/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	for _, s := range genState.Stakes {
		k.SetStake(ctx, s)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	if list := k.GetAllStakes(ctx); list != nil {
		genesis.Stakes = list
	}
	return genesis
}
