package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/internal/layout"
)

// Module names one of the optional features a collection can enable.
type Module uint8

const (
	ModuleStaking Module = iota
	ModuleVoting
	ModuleTrade
	ModuleCommunity
)

func (m Module) String() string {
	switch m {
	case ModuleStaking:
		return "staking"
	case ModuleVoting:
		return "voting"
	case ModuleTrade:
		return "trade"
	case ModuleCommunity:
		return "community"
	default:
		return fmt.Sprintf("module(%d)", uint8(m))
	}
}

// MaxMemberCount bounds the voter bitmap written with every proposal (12.5 KiB).
const MaxMemberCount = uint64(100_000)

// MaxDuration bounds vote and trade windows: 100 years in seconds.
const MaxDuration = int64(100 * 365 * 24 * 60 * 60)

// CollectionSize is the encoded width of a Collection record.
const CollectionSize = 2*layout.AddressSize + 2*layout.DenomSize + 4 + 6*8

// Collection is the shared configuration record every engine reads.
// A module's parameters only carry meaning while its flag is set.
type Collection struct {
	Address     sdk.AccAddress `json:"address"`
	VerifiedKey string         `json:"verified_key"`
	Treasury    sdk.AccAddress `json:"treasury"`
	// RewardDenom stays empty until a reward asset is attached.
	RewardDenom string `json:"reward_denom,omitempty"`

	IsStaking   bool `json:"is_staking"`
	IsVoting    bool `json:"is_voting"`
	IsTrade     bool `json:"is_trade"`
	IsCommunity bool `json:"is_community"`

	// EmissionRate is in reward base units per staked asset per hour.
	EmissionRate uint64 `json:"emission_rate"`

	MemberCount  uint64 `json:"member_count"`
	VoteDuration int64  `json:"vote_duration"`
	Quorum       uint64 `json:"quorum"`

	TradeFee      uint64 `json:"trade_fee"`
	TradeDuration int64  `json:"trade_duration"`
}

func NewCollection(verifiedKey string, treasury sdk.AccAddress) Collection {
	return Collection{
		Address:     CollectionAddress(verifiedKey),
		VerifiedKey: verifiedKey,
		Treasury:    treasury,
	}
}

// Enabled reports whether module m has been added to the collection.
func (c Collection) Enabled(m Module) bool {
	switch m {
	case ModuleStaking:
		return c.IsStaking
	case ModuleVoting:
		return c.IsVoting
	case ModuleTrade:
		return c.IsTrade
	case ModuleCommunity:
		return c.IsCommunity
	}
	return false
}

// RequireModule returns ErrModuleNotActive unless module m is enabled.
func (c Collection) RequireModule(m Module) error {
	if !c.Enabled(m) {
		return ErrModuleNotActive.Wrapf("%s module is not active for collection %s", m, c.VerifiedKey)
	}
	return nil
}

func (c Collection) HasRewardAsset() bool {
	return c.RewardDenom != ""
}

func (c Collection) Validate() error {
	if c.VerifiedKey == "" {
		return fmt.Errorf("collection verified key is empty")
	}
	if !c.Address.Equals(CollectionAddress(c.VerifiedKey)) {
		return fmt.Errorf("collection %s address does not match its verified key", c.VerifiedKey)
	}
	if c.Treasury.Empty() {
		return fmt.Errorf("collection %s has no treasury", c.VerifiedKey)
	}
	if c.IsStaking {
		if !c.HasRewardAsset() {
			return ErrTokenNotFound.Wrapf("collection %s", c.VerifiedKey)
		}
		if c.EmissionRate == 0 {
			return ErrZeroValue.Wrap("emission rate")
		}
	}
	if c.IsTrade {
		if c.TradeFee == 0 {
			return ErrZeroValue.Wrap("trade fee")
		}
		if err := ValidateDuration(c.TradeDuration); err != nil {
			return err
		}
	}
	if c.IsVoting {
		if err := ValidateVoting(c.MemberCount, c.VoteDuration, c.Quorum); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVoting checks a voting configuration: every value positive, quorum reachable.
func ValidateVoting(memberCount uint64, duration int64, quorum uint64) error {
	if memberCount == 0 || duration <= 0 || quorum == 0 {
		return ErrZeroValue.Wrapf("member count %d, duration %d, quorum %d", memberCount, duration, quorum)
	}
	if memberCount > MaxMemberCount {
		return ErrInvalidMemberCount.Wrapf("%d > %d", memberCount, MaxMemberCount)
	}
	if err := ValidateDuration(duration); err != nil {
		return err
	}
	if quorum > memberCount {
		return ErrInvalidQuorum.Wrapf("quorum %d, member count %d", quorum, memberCount)
	}
	return nil
}

// ValidateDuration checks a vote or trade window length in seconds.
func ValidateDuration(duration int64) error {
	if duration <= 0 {
		return ErrZeroValue.Wrapf("duration %d", duration)
	}
	if duration > MaxDuration {
		return ErrInvalidDuration.Wrapf("%d > %d", duration, MaxDuration)
	}
	return nil
}

func (c Collection) MarshalLayout(w *layout.Writer) {
	w.Address(c.Address)
	w.Denom(c.VerifiedKey)
	w.Address(c.Treasury)
	w.Denom(c.RewardDenom)
	w.Bool(c.IsStaking)
	w.Bool(c.IsVoting)
	w.Bool(c.IsTrade)
	w.Bool(c.IsCommunity)
	w.Uint64(c.EmissionRate)
	w.Uint64(c.MemberCount)
	w.Int64(c.VoteDuration)
	w.Uint64(c.Quorum)
	w.Uint64(c.TradeFee)
	w.Int64(c.TradeDuration)
}

func (c *Collection) UnmarshalLayout(r *layout.Reader) {
	c.Address = r.Address()
	c.VerifiedKey = r.Denom()
	c.Treasury = r.Address()
	c.RewardDenom = r.Denom()
	c.IsStaking = r.Bool()
	c.IsVoting = r.Bool()
	c.IsTrade = r.Bool()
	c.IsCommunity = r.Bool()
	c.EmissionRate = r.Uint64()
	c.MemberCount = r.Uint64()
	c.VoteDuration = r.Int64()
	c.Quorum = r.Uint64()
	c.TradeFee = r.Uint64()
	c.TradeDuration = r.Int64()
}
