package trade

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/x/trade/keeper"
	"github.com/0xShuk/breeez/x/trade/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	for _, t := range genState.Trades {
		k.SetTrade(ctx, t)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	if list := k.GetAllTrades(ctx); list != nil {
		genesis.Trades = list
	}
	return genesis
}
