package types_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xShuk/breeez/internal/layout"
	"github.com/0xShuk/breeez/testutil/sample"
	"github.com/0xShuk/breeez/x/trade/types"
)

func TestFundingModeCheckAmounts(t *testing.T) {
	tests := []struct {
		name        string
		mode        types.FundingMode
		value       uint64
		assetAmount uint64
		err         error
	}{
		{name: "value only", mode: types.ModeValueOnly, value: 10},
		{name: "value only with asset", mode: types.ModeValueOnly, value: 10, assetAmount: 1, err: types.ErrAmountNotZero},
		{name: "value only without value", mode: types.ModeValueOnly, err: types.ErrTokenAmountZero},
		{name: "asset only", mode: types.ModeAssetOnly, assetAmount: 1},
		{name: "asset only with value", mode: types.ModeAssetOnly, value: 5, assetAmount: 1, err: types.ErrAmountNotZero},
		{name: "asset only without asset", mode: types.ModeAssetOnly, err: types.ErrTokenAmountZero},
		{name: "both", mode: types.ModeBoth, value: 3, assetAmount: 4},
		{name: "both missing value", mode: types.ModeBoth, assetAmount: 4, err: types.ErrTokenAmountZero},
		{name: "unspecified", mode: types.ModeUnspecified, err: types.ErrInvalidFundingMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mode.CheckAmounts(tt.value, tt.assetAmount)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewLegAssetDenom(t *testing.T) {
	sender := sample.Address()

	_, err := types.NewLeg(types.ModeAssetOnly, 0, "", 1, sender)
	require.ErrorIs(t, err, types.ErrAccountNotProvided)

	_, err = types.NewLeg(types.ModeValueOnly, 10, "nft/art-1", 0, sender)
	require.ErrorIs(t, err, types.ErrAccountNotRequired)

	leg, err := types.NewLeg(types.ModeBoth, 10, "gold", 3, sender)
	require.NoError(t, err)
	require.True(t, leg.SendAddress.Equals(sender))
	require.Equal(t, "10ubrz", leg.ValueCoins("ubrz").String())
	require.Equal(t, "3gold", leg.AssetCoins().String())

	valueOnly, err := types.NewLeg(types.ModeValueOnly, 10, "", 0, sender)
	require.NoError(t, err)
	require.True(t, valueOnly.AssetCoins().IsZero())
	require.Nil(t, valueOnly.SendAddress)
}

func TestParseFundingMode(t *testing.T) {
	for _, m := range []types.FundingMode{types.ModeValueOnly, types.ModeAssetOnly, types.ModeBoth} {
		parsed, err := types.ParseFundingMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, parsed)
	}
	_, err := types.ParseFundingMode("unspecified")
	require.ErrorIs(t, err, types.ErrInvalidFundingMode)
}

func TestTradeExpiryBoundary(t *testing.T) {
	trade := types.Trade{CreatedAt: 1000}
	require.False(t, trade.Expired(1600, 600))
	require.True(t, trade.Expired(1601, 600))
}

func TestTradeExpiryHandlesLongDurations(t *testing.T) {
	trade := types.Trade{CreatedAt: 1_700_000_000}
	require.False(t, trade.Expired(trade.CreatedAt, math.MaxInt64))
	require.False(t, trade.Expired(math.MaxInt64, math.MaxInt64))
	require.False(t, trade.Expired(trade.CreatedAt-1, 600))
	require.True(t, trade.Expired(math.MaxInt64, math.MaxInt64-trade.CreatedAt-1))
}

func TestTradeValidateRejectsNegativeCreation(t *testing.T) {
	trade := types.Trade{
		PartyOne:   sample.Address(),
		PartyTwo:   sample.Address(),
		Collection: sample.Address(),
		CreatedAt:  -1,
	}
	require.ErrorContains(t, trade.Validate(), "negative creation time")
}

func TestTradeEncodingHasFixedSize(t *testing.T) {
	p1, p2 := sample.Address(), sample.Address()
	leg, err := types.NewLeg(types.ModeBoth, 10, "nft/art-1", 1, p1)
	require.NoError(t, err)

	trade := types.Trade{
		PartyOne:   p1,
		PartyTwo:   p2,
		Collection: sample.Address(),
		Status:     types.StatusCreated,
		CreatedAt:  1_700_000_000,
		Legs:       [2]types.Leg{leg, {}},
		Receive:    [2]types.OptionalAddress{types.UnsetAddress(), types.UnsetAddress()},
	}
	require.NoError(t, trade.Validate())

	bz, err := layout.Encode(trade)
	require.NoError(t, err)
	require.Len(t, bz, types.TradeSize)

	decoded, err := layout.RecordValue[types.Trade]("trade").Decode(bz)
	require.NoError(t, err)
	require.True(t, decoded.Address().Equals(trade.Address()))
	require.Equal(t, types.Unset, decoded.Receive[types.SlotTwo].State)
	require.Equal(t, leg.AssetDenom, decoded.Legs[types.SlotOne].AssetDenom)
	require.Equal(t, types.ModeUnspecified, decoded.Legs[types.SlotTwo].Mode)
}

func TestTradeValidateRejectsSecondLegBeforeAccept(t *testing.T) {
	p1, p2 := sample.Address(), sample.Address()
	one, err := types.NewLeg(types.ModeValueOnly, 10, "", 0, p1)
	require.NoError(t, err)
	two, err := types.NewLeg(types.ModeValueOnly, 5, "", 0, p2)
	require.NoError(t, err)

	trade := types.Trade{PartyOne: p1, PartyTwo: p2, Collection: sample.Address(), Legs: [2]types.Leg{one, two}}
	require.Error(t, trade.Validate())

	trade.Status = types.StatusAccepted
	require.NoError(t, trade.Validate())
}

func TestEscrowAddressesDiffer(t *testing.T) {
	tradeAddr := types.TradeAddress(sample.Address(), sample.Address(), sample.Address())
	one := types.EscrowAddress(tradeAddr, types.SlotOne)
	two := types.EscrowAddress(tradeAddr, types.SlotTwo)
	require.False(t, one.Equals(two))
	require.False(t, one.Equals(tradeAddr))
}
