package types

import "fmt"

// GenesisState defines the stake module's genesis state.
type GenesisState struct {
	Stakes []Stake `json:"stakes"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Stakes: []Stake{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Stakes))
	for _, s := range gs.Stakes {
		if _, ok := seen[s.Asset]; ok {
			return fmt.Errorf("duplicate stake for asset %s", s.Asset)
		}
		seen[s.Asset] = struct{}{}
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
