package types

import (
	"fmt"
)

// GenesisState defines the registry module's genesis state.
type GenesisState struct {
	Params      Params       `json:"params"`
	Collections []Collection `json:"collections"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:      DefaultParams(),
		Collections: []Collection{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Collections))
	rewards := make(map[string]string)
	for _, c := range gs.Collections {
		if _, ok := seen[c.VerifiedKey]; ok {
			return fmt.Errorf("duplicate collection %s", c.VerifiedKey)
		}
		seen[c.VerifiedKey] = struct{}{}
		if err := c.Validate(); err != nil {
			return err
		}
		if c.HasRewardAsset() {
			if other, ok := rewards[c.RewardDenom]; ok {
				return fmt.Errorf("reward denom %s attached to both %s and %s", c.RewardDenom, other, c.VerifiedKey)
			}
			rewards[c.RewardDenom] = c.VerifiedKey
		}
	}
	return gs.Params.Validate()
}
