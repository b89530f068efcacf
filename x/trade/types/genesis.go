package types

import "fmt"

// GenesisState defines the trade module's genesis state.
type GenesisState struct {
	Trades []Trade `json:"trades"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Trades: []Trade{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Trades))
	for _, t := range gs.Trades {
		if err := t.Validate(); err != nil {
			return err
		}
		addr := t.Address().String()
		if _, ok := seen[addr]; ok {
			return fmt.Errorf("duplicate trade %s", addr)
		}
		seen[addr] = struct{}{}
	}
	return nil
}
