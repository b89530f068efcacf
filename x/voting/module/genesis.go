package voting

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/x/voting/keeper"
	"github.com/0xShuk/breeez/x/voting/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	for _, p := range genState.Proposals {
		k.SetProposal(ctx, p)
	}
	if err := k.ProposalID.Set(ctx, genState.NextProposalID); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	if list := k.GetAllProposals(ctx); list != nil {
		genesis.Proposals = list
	}
	next, err := k.ProposalID.Peek(ctx)
	if err != nil {
		panic(err)
	}
	genesis.NextProposalID = next
	return genesis
}
