package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xShuk/breeez/internal/layout"
	"github.com/0xShuk/breeez/testutil/sample"
	"github.com/0xShuk/breeez/x/registry/types"
)

func TestCollectionEncoding(t *testing.T) {
	c := types.NewCollection("breeezcol", sample.Address())
	c.RewardDenom = "reward/breeez"
	c.IsStaking, c.EmissionRate = true, 3600
	c.IsVoting, c.MemberCount, c.VoteDuration, c.Quorum = true, 100, 86400, 51
	require.NoError(t, c.Validate())

	bz, err := layout.Encode(c)
	require.NoError(t, err)
	require.Len(t, bz, types.CollectionSize)

	decoded, err := layout.RecordValue[types.Collection]("collection").Decode(bz)
	require.NoError(t, err)
	require.Equal(t, c.RewardDenom, decoded.RewardDenom)
	require.True(t, decoded.Treasury.Equals(c.Treasury))
	require.True(t, decoded.Enabled(types.ModuleVoting))
	require.False(t, decoded.Enabled(types.ModuleTrade))
	require.Equal(t, c.Quorum, decoded.Quorum)
}

func TestCollectionValidate(t *testing.T) {
	c := types.NewCollection("breeezcol", sample.Address())
	require.NoError(t, c.Validate())

	staking := c
	staking.IsStaking, staking.EmissionRate = true, 10
	require.ErrorIs(t, staking.Validate(), types.ErrTokenNotFound)

	trade := c
	trade.IsTrade, trade.TradeFee = true, 10
	require.ErrorIs(t, trade.Validate(), types.ErrZeroValue)

	moved := c
	moved.Address = sample.Address()
	require.Error(t, moved.Validate())
}

func TestValidateVoting(t *testing.T) {
	require.NoError(t, types.ValidateVoting(10, 600, 10))
	require.ErrorIs(t, types.ValidateVoting(10, 600, 11), types.ErrInvalidQuorum)
	require.ErrorIs(t, types.ValidateVoting(0, 600, 1), types.ErrZeroValue)
	require.ErrorIs(t, types.ValidateVoting(10, 0, 1), types.ErrZeroValue)
	require.ErrorIs(t, types.ValidateVoting(types.MaxMemberCount+1, 600, 1), types.ErrInvalidMemberCount)
	require.ErrorIs(t, types.ValidateVoting(4_294_967_295, 600, 1), types.ErrInvalidMemberCount)
	require.NoError(t, types.ValidateVoting(types.MaxMemberCount, 600, 1))
	require.NoError(t, types.ValidateVoting(10, types.MaxDuration, 1))
	require.ErrorIs(t, types.ValidateVoting(10, types.MaxDuration+1, 1), types.ErrInvalidDuration)
}

func TestMaxMemberCountBoundsBitmap(t *testing.T) {
	require.Equal(t, uint64(12_500), (types.MaxMemberCount+7)/8)
}

func TestValidateDuration(t *testing.T) {
	require.NoError(t, types.ValidateDuration(1))
	require.NoError(t, types.ValidateDuration(types.MaxDuration))
	require.ErrorIs(t, types.ValidateDuration(0), types.ErrZeroValue)
	require.ErrorIs(t, types.ValidateDuration(-5), types.ErrZeroValue)
	require.ErrorIs(t, types.ValidateDuration(types.MaxDuration+1), types.ErrInvalidDuration)
	require.ErrorIs(t, types.ValidateDuration(1<<63-1), types.ErrInvalidDuration)
}

func TestCollectionValidateBoundsTradeDuration(t *testing.T) {
	c := types.NewCollection("breeezcol", sample.Address())
	c.IsTrade, c.TradeFee, c.TradeDuration = true, 10, types.MaxDuration
	require.NoError(t, c.Validate())

	c.TradeDuration = types.MaxDuration + 1
	require.ErrorIs(t, c.Validate(), types.ErrInvalidDuration)
}

func TestOrdinalFromName(t *testing.T) {
	tests := []struct {
		name    string
		ordinal uint64
		err     bool
	}{
		{name: "Breeez #1", ordinal: 0},
		{name: "Breeez #12", ordinal: 11},
		{name: "Breeez # 7\x00\x00", ordinal: 6},
		{name: "Breeez", err: true},
		{name: "Breeez #0", err: true},
		{name: "Breeez #x", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ordinal, err := types.OrdinalFromName(tt.name)
			if tt.err {
				require.ErrorIs(t, err, types.ErrInvalidOrdinal)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.ordinal, ordinal)
		})
	}
}

func TestCheckMemberOf(t *testing.T) {
	member := types.AssetInfo{ID: "a", Collection: &types.CollectionRef{Key: "breeezcol", Verified: true}}
	require.NoError(t, member.CheckMemberOf("breeezcol"))
	require.ErrorIs(t, member.CheckMemberOf("othercol"), types.ErrCollectionNotSame)

	unverified := types.AssetInfo{ID: "b", Collection: &types.CollectionRef{Key: "breeezcol"}}
	require.ErrorIs(t, unverified.CheckMemberOf("breeezcol"), types.ErrCollectionNotVerified)

	collection := types.AssetInfo{ID: "breeezcol"}
	require.True(t, collection.IsCollectionAsset())
	require.ErrorIs(t, collection.CheckMemberOf("breeezcol"), types.ErrCollectionNotSet)
}

func TestGenesisRejectsSharedRewardDenom(t *testing.T) {
	one := types.NewCollection("breeezcol", sample.Address())
	one.RewardDenom = "reward/breeez"
	two := types.NewCollection("othercol", sample.Address())
	two.RewardDenom = "reward/breeez"

	gs := types.GenesisState{Params: types.DefaultParams(), Collections: []types.Collection{one, two}}
	require.Error(t, gs.Validate())

	two.RewardDenom = "reward/other"
	gs.Collections = []types.Collection{one, two}
	require.NoError(t, gs.Validate())

	gs.Collections = []types.Collection{one, one}
	require.Error(t, gs.Validate())
}
