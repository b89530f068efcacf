package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/internal/layout"
)

// StakeSize is the encoded width of a Stake record.
const StakeSize = layout.DenomSize + 3*layout.AddressSize + 8

// Stake exists exactly while its asset sits in the stake escrow.
type Stake struct {
	Asset string         `json:"asset"`
	Owner sdk.AccAddress `json:"owner"`
	// StakedAt is the unix time rewards accrue from; reset on every reward payout.
	StakedAt    int64          `json:"staked_at"`
	SendAddress sdk.AccAddress `json:"send_address"`
	Collection  sdk.AccAddress `json:"collection"`
}

func (s Stake) Validate() error {
	if err := sdk.ValidateDenom(s.Asset); err != nil {
		return fmt.Errorf("invalid staked asset: %w", err)
	}
	if s.Owner.Empty() || s.SendAddress.Empty() || s.Collection.Empty() {
		return fmt.Errorf("stake of %s is missing an address", s.Asset)
	}
	return nil
}

func (s Stake) MarshalLayout(w *layout.Writer) {
	w.Denom(s.Asset)
	w.Address(s.Owner)
	w.Int64(s.StakedAt)
	w.Address(s.SendAddress)
	w.Address(s.Collection)
}

func (s *Stake) UnmarshalLayout(r *layout.Reader) {
	s.Asset = r.Denom()
	s.Owner = r.Address()
	s.StakedAt = r.Int64()
	s.SendAddress = r.Address()
	s.Collection = r.Address()
}
