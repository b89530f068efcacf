package types

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/internal/layout"
)

// Default parameter values
var (
	DefaultValueDenom     = "ubrz"
	DefaultRewardDecimals = uint32(9)
)

// Params hold the chain-wide settings shared by every collection.
type Params struct {
	// ValueDenom is the native unit used for trade value legs and trade fees.
	ValueDenom string `json:"value_denom"`
	// RewardDecimals is the display exponent declared for every attached reward asset.
	RewardDecimals uint32 `json:"reward_decimals"`
}

// NewParams creates a new Params instance
func NewParams(valueDenom string, rewardDecimals uint32) Params {
	return Params{
		ValueDenom:     valueDenom,
		RewardDecimals: rewardDecimals,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultValueDenom, DefaultRewardDecimals)
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.ValueDenom); err != nil {
		return fmt.Errorf("invalid value denom: %w", err)
	}
	if p.RewardDecimals > 18 {
		return fmt.Errorf("reward decimals must be at most 18, got %d", p.RewardDecimals)
	}
	return nil
}

func (p Params) String() string {
	out, _ := json.Marshal(p)
	return string(out)
}

func (p Params) MarshalLayout(w *layout.Writer) {
	w.Denom(p.ValueDenom)
	w.Uint32(p.RewardDecimals)
}

func (p *Params) UnmarshalLayout(r *layout.Reader) {
	p.ValueDenom = r.Denom()
	p.RewardDecimals = r.Uint32()
}
