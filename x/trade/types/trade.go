package types

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/internal/layout"
)

// FundingMode selects which legs a party funds. It is always given explicitly.
type FundingMode uint8

const (
	ModeUnspecified FundingMode = iota
	ModeValueOnly
	ModeAssetOnly
	ModeBoth
)

var fundingModeNames = map[FundingMode]string{
	ModeUnspecified: "unspecified",
	ModeValueOnly:   "value_only",
	ModeAssetOnly:   "asset_only",
	ModeBoth:        "both",
}

func (m FundingMode) String() string {
	if name, ok := fundingModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("FundingMode(%d)", uint8(m))
}

// ParseFundingMode is the inverse of FundingMode.String.
func ParseFundingMode(s string) (FundingMode, error) {
	for m, name := range fundingModeNames {
		if name == s && m != ModeUnspecified {
			return m, nil
		}
	}
	return ModeUnspecified, ErrInvalidFundingMode.Wrapf("%q", s)
}

func (m FundingMode) Valid() bool {
	return m >= ModeValueOnly && m <= ModeBoth
}

func (m FundingMode) HasValue() bool {
	return m == ModeValueOnly || m == ModeBoth
}

func (m FundingMode) HasAsset() bool {
	return m == ModeAssetOnly || m == ModeBoth
}

// CheckAmounts enforces that used legs are positive and unused legs are exactly zero.
func (m FundingMode) CheckAmounts(value, assetAmount uint64) error {
	if !m.Valid() {
		return ErrInvalidFundingMode.Wrapf("%s", m)
	}
	if err := checkLegAmount("value", m.HasValue(), value); err != nil {
		return err
	}
	return checkLegAmount("asset", m.HasAsset(), assetAmount)
}

func checkLegAmount(leg string, used bool, amount uint64) error {
	switch {
	case used && amount == 0:
		return ErrTokenAmountZero.Wrapf("%s leg", leg)
	case !used && amount != 0:
		return ErrAmountNotZero.Wrapf("%s leg carries %d", leg, amount)
	}
	return nil
}

// Slot indexes the per-party arrays of a trade.
type Slot int

const (
	SlotOne Slot = 0
	SlotTwo Slot = 1
)

// Other returns the counterparty's slot.
func (s Slot) Other() Slot {
	return 1 - s
}

type TradeStatus uint8

const (
	StatusCreated TradeStatus = iota
	StatusAccepted
)

func (s TradeStatus) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusAccepted:
		return "accepted"
	default:
		return fmt.Sprintf("TradeStatus(%d)", uint8(s))
	}
}

// OptionalState separates "this trade has no such account" from "not provided yet".
type OptionalState uint8

const (
	NotApplicable OptionalState = iota
	Unset
	Set
)

func (s OptionalState) String() string {
	switch s {
	case NotApplicable:
		return "not_applicable"
	case Unset:
		return "unset"
	case Set:
		return "set"
	default:
		return fmt.Sprintf("OptionalState(%d)", uint8(s))
	}
}

type OptionalAddress struct {
	State OptionalState  `json:"state"`
	Value sdk.AccAddress `json:"value,omitempty"`
}

func NotApplicableAddress() OptionalAddress { return OptionalAddress{State: NotApplicable} }
func UnsetAddress() OptionalAddress         { return OptionalAddress{State: Unset} }
func SetAddress(addr sdk.AccAddress) OptionalAddress {
	return OptionalAddress{State: Set, Value: addr}
}

func (o OptionalAddress) IsSet() bool {
	return o.State == Set
}

func (o OptionalAddress) MarshalLayout(w *layout.Writer) {
	w.Uint8(uint8(o.State))
	w.Address(o.Value)
}

func (o *OptionalAddress) UnmarshalLayout(r *layout.Reader) {
	o.State = OptionalState(r.Uint8())
	o.Value = r.Address()
}

// Leg is what one party put into the trade.
type Leg struct {
	Mode FundingMode `json:"mode"`
	// Value is held by the trade account, in the registry's value denom.
	Value uint64 `json:"value"`
	// AssetDenom and AssetAmount are held by the party's escrow account.
	AssetDenom  string `json:"asset_denom,omitempty"`
	AssetAmount uint64 `json:"asset_amount"`
	// SendAddress funded the asset leg and receives it back on cancel.
	SendAddress sdk.AccAddress `json:"send_address,omitempty"`
}

// NewLeg validates the funding request of one party and returns the resulting leg.
func NewLeg(mode FundingMode, value uint64, assetDenom string, assetAmount uint64, sender sdk.AccAddress) (Leg, error) {
	if err := mode.CheckAmounts(value, assetAmount); err != nil {
		return Leg{}, err
	}
	leg := Leg{Mode: mode, Value: value, AssetAmount: assetAmount}
	switch {
	case mode.HasAsset() && assetDenom == "":
		return Leg{}, ErrAccountNotProvided.Wrap("asset leg requires an asset denom")
	case !mode.HasAsset() && assetDenom != "":
		return Leg{}, ErrAccountNotRequired.Wrapf("%s leg names asset %s", mode, assetDenom)
	case mode.HasAsset():
		if err := sdk.ValidateDenom(assetDenom); err != nil {
			return Leg{}, ErrAccountNotProvided.Wrapf("invalid asset denom: %s", err)
		}
		leg.AssetDenom = assetDenom
		leg.SendAddress = sender
	}
	return leg, nil
}

// ValueCoins returns the value leg in valueDenom, empty when unused.
func (l Leg) ValueCoins(valueDenom string) sdk.Coins {
	if !l.Mode.HasValue() {
		return sdk.NewCoins()
	}
	return sdk.NewCoins(sdk.NewCoin(valueDenom, math.NewIntFromUint64(l.Value)))
}

// AssetCoins returns the asset leg, empty when unused.
func (l Leg) AssetCoins() sdk.Coins {
	if !l.Mode.HasAsset() {
		return sdk.NewCoins()
	}
	return sdk.NewCoins(sdk.NewCoin(l.AssetDenom, math.NewIntFromUint64(l.AssetAmount)))
}

func (l Leg) MarshalLayout(w *layout.Writer) {
	w.Uint8(uint8(l.Mode))
	w.Uint64(l.Value)
	w.Denom(l.AssetDenom)
	w.Uint64(l.AssetAmount)
	w.Address(l.SendAddress)
}

func (l *Leg) UnmarshalLayout(r *layout.Reader) {
	l.Mode = FundingMode(r.Uint8())
	l.Value = r.Uint64()
	l.AssetDenom = r.Denom()
	l.AssetAmount = r.Uint64()
	l.SendAddress = r.Address()
}

const (
	legSize             = 1 + 8 + layout.DenomSize + 8 + layout.AddressSize
	optionalAddressSize = 1 + layout.AddressSize

	// TradeSize is the encoded width of a Trade record.
	TradeSize = 3*layout.AddressSize + 1 + 8 + 2*legSize + 2*optionalAddressSize
)

// Trade is a negotiation between two members of one collection. Legs[SlotTwo] stays empty
// until the trade is accepted. Receive[s] is where party s takes the counterparty's asset leg.
type Trade struct {
	PartyOne   sdk.AccAddress     `json:"party_one"`
	PartyTwo   sdk.AccAddress     `json:"party_two"`
	Collection sdk.AccAddress     `json:"collection"`
	Status     TradeStatus        `json:"status"`
	CreatedAt  int64              `json:"created_at"`
	Legs       [2]Leg             `json:"legs"`
	Receive    [2]OptionalAddress `json:"receive"`
}

// Address is the record address of the trade.
func (t Trade) Address() sdk.AccAddress {
	return TradeAddress(t.PartyOne, t.PartyTwo, t.Collection)
}

func (t Trade) Party(s Slot) sdk.AccAddress {
	if s == SlotTwo {
		return t.PartyTwo
	}
	return t.PartyOne
}

// SlotOf returns the slot addr trades from.
func (t Trade) SlotOf(addr sdk.AccAddress) (Slot, bool) {
	switch {
	case t.PartyOne.Equals(addr):
		return SlotOne, true
	case t.PartyTwo.Equals(addr):
		return SlotTwo, true
	}
	return SlotOne, false
}

func (t Trade) Accepted() bool {
	return t.Status == StatusAccepted
}

// Expired reports whether the acceptance window closed strictly before now.
func (t Trade) Expired(now, duration int64) bool {
	return now > t.CreatedAt && now-t.CreatedAt > duration
}

func (t Trade) Validate() error {
	if t.PartyOne.Empty() || t.PartyTwo.Empty() || t.Collection.Empty() {
		return fmt.Errorf("trade is missing an address")
	}
	if t.PartyOne.Equals(t.PartyTwo) {
		return ErrSameParty.Wrapf("%s", t.PartyOne)
	}
	if t.CreatedAt < 0 {
		return fmt.Errorf("trade %s has negative creation time %d", t.Address(), t.CreatedAt)
	}
	if err := t.Legs[SlotOne].Mode.CheckAmounts(t.Legs[SlotOne].Value, t.Legs[SlotOne].AssetAmount); err != nil {
		return err
	}
	switch t.Status {
	case StatusCreated:
		if second := t.Legs[SlotTwo]; second.Mode != ModeUnspecified || second.Value != 0 || second.AssetAmount != 0 {
			return fmt.Errorf("unaccepted trade %s carries a second leg", t.Address())
		}
	case StatusAccepted:
		if err := t.Legs[SlotTwo].Mode.CheckAmounts(t.Legs[SlotTwo].Value, t.Legs[SlotTwo].AssetAmount); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown trade status %s", t.Status)
	}
	return nil
}

func (t Trade) String() string {
	bz, _ := json.Marshal(t)
	return string(bz)
}

func (t Trade) MarshalLayout(w *layout.Writer) {
	w.Address(t.PartyOne)
	w.Address(t.PartyTwo)
	w.Address(t.Collection)
	w.Uint8(uint8(t.Status))
	w.Int64(t.CreatedAt)
	for _, leg := range t.Legs {
		leg.MarshalLayout(w)
	}
	for _, o := range t.Receive {
		o.MarshalLayout(w)
	}
}

func (t *Trade) UnmarshalLayout(r *layout.Reader) {
	t.PartyOne = r.Address()
	t.PartyTwo = r.Address()
	t.Collection = r.Address()
	t.Status = TradeStatus(r.Uint8())
	t.CreatedAt = r.Int64()
	for i := range t.Legs {
		t.Legs[i].UnmarshalLayout(r)
	}
	for i := range t.Receive {
		t.Receive[i].UnmarshalLayout(r)
	}
}
