package app

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	registrymodule "github.com/0xShuk/breeez/x/registry/module"
	registrytypes "github.com/0xShuk/breeez/x/registry/types"
	stakemodule "github.com/0xShuk/breeez/x/stake/module"
	staketypes "github.com/0xShuk/breeez/x/stake/types"
	trademodule "github.com/0xShuk/breeez/x/trade/module"
	tradetypes "github.com/0xShuk/breeez/x/trade/types"
	votingmodule "github.com/0xShuk/breeez/x/voting/module"
	votingtypes "github.com/0xShuk/breeez/x/voting/types"
)

// AppGenesis is the app_state section of a genesis file, one entry per module.
type AppGenesis map[string]json.RawMessage

// ModuleGenesis holds the decoded genesis of every module.
type ModuleGenesis struct {
	Registry registrytypes.GenesisState
	Stake    staketypes.GenesisState
	Trade    tradetypes.GenesisState
	Voting   votingtypes.GenesisState
}

// DefaultModuleGenesis is the genesis of a fresh chain with the given registry parameters.
func DefaultModuleGenesis(params registrytypes.Params) ModuleGenesis {
	registry := registrytypes.DefaultGenesis()
	registry.Params = params
	return ModuleGenesis{
		Registry: *registry,
		Stake:    *staketypes.DefaultGenesis(),
		Trade:    *tradetypes.DefaultGenesis(),
		Voting:   *votingtypes.DefaultGenesis(),
	}
}

func (g *ModuleGenesis) sections() map[string]any {
	return map[string]any{
		registrytypes.ModuleName: &g.Registry,
		staketypes.ModuleName:    &g.Stake,
		tradetypes.ModuleName:    &g.Trade,
		votingtypes.ModuleName:   &g.Voting,
	}
}

// Encode renders every module section.
func (g ModuleGenesis) Encode() (AppGenesis, error) {
	out := make(AppGenesis)
	for name, section := range g.sections() {
		bz, err := json.Marshal(section)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s genesis", name)
		}
		out[name] = bz
	}
	return out, nil
}

// DecodeModuleGenesis reads the module sections of appState. A missing section keeps its default.
func DecodeModuleGenesis(appState AppGenesis) (ModuleGenesis, error) {
	g := DefaultModuleGenesis(registrytypes.DefaultParams())
	for name, section := range g.sections() {
		bz, ok := appState[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(bz, section); err != nil {
			return ModuleGenesis{}, errors.Wrapf(err, "failed to decode %s genesis", name)
		}
	}
	return g, nil
}

// Validate runs every module's own validation, then checks that stakes, trades and proposals
// only refer to registered collections.
func (g ModuleGenesis) Validate() error {
	if err := g.Registry.Validate(); err != nil {
		return errors.Wrap(err, registrytypes.ModuleName)
	}
	if err := g.Stake.Validate(); err != nil {
		return errors.Wrap(err, staketypes.ModuleName)
	}
	if err := g.Trade.Validate(); err != nil {
		return errors.Wrap(err, tradetypes.ModuleName)
	}
	if err := g.Voting.Validate(); err != nil {
		return errors.Wrap(err, votingtypes.ModuleName)
	}

	registered := make(map[string]struct{}, len(g.Registry.Collections))
	for _, c := range g.Registry.Collections {
		registered[c.Address.String()] = struct{}{}
	}
	check := func(module, record, collection string) error {
		if _, ok := registered[collection]; !ok {
			return fmt.Errorf("%s: %s refers to unregistered collection %s", module, record, collection)
		}
		return nil
	}
	for _, s := range g.Stake.Stakes {
		if err := check(staketypes.ModuleName, "stake "+s.Asset, s.Collection.String()); err != nil {
			return err
		}
	}
	for _, t := range g.Trade.Trades {
		if err := check(tradetypes.ModuleName, "trade "+t.Address().String(), t.Collection.String()); err != nil {
			return err
		}
	}
	for _, p := range g.Voting.Proposals {
		if err := check(votingtypes.ModuleName, fmt.Sprintf("proposal %d", p.ID), p.Collection.String()); err != nil {
			return err
		}
	}
	return nil
}

// InitGenesis loads g into the keepers, registry first.
func (k Keepers) InitGenesis(ctx sdk.Context, g ModuleGenesis) {
	registrymodule.InitGenesis(ctx, k.Registry, g.Registry)
	stakemodule.InitGenesis(ctx, k.Stake, g.Stake)
	trademodule.InitGenesis(ctx, k.Trade, g.Trade)
	votingmodule.InitGenesis(ctx, k.Voting, g.Voting)
}

func (k Keepers) ExportGenesis(ctx sdk.Context) ModuleGenesis {
	return ModuleGenesis{
		Registry: *registrymodule.ExportGenesis(ctx, k.Registry),
		Stake:    *stakemodule.ExportGenesis(ctx, k.Stake),
		Trade:    *trademodule.ExportGenesis(ctx, k.Trade),
		Voting:   *votingmodule.ExportGenesis(ctx, k.Voting),
	}
}

// CheckImport loads g into fresh in-memory keepers and exports it again. InitGenesis panics
// on store failures; the panic is returned as an error.
func CheckImport(m *InMemory, g ModuleGenesis) (exported ModuleGenesis, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("genesis import failed: %v", r)
		}
	}()
	m.InitGenesis(m.Ctx, g)
	return m.ExportGenesis(m.Ctx), nil
}
