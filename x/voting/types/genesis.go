package types

import "fmt"

// GenesisState defines the voting module's genesis state.
type GenesisState struct {
	Proposals      []Proposal `json:"proposals"`
	NextProposalID uint64     `json:"next_proposal_id"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Proposals:      []Proposal{},
		NextProposalID: 0,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seen := make(map[uint64]struct{}, len(gs.Proposals))
	for _, p := range gs.Proposals {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate proposal id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.ID >= gs.NextProposalID {
			return fmt.Errorf("proposal id %d is not below next proposal id %d", p.ID, gs.NextProposalID)
		}
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}
