package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xShuk/breeez/internal/layout"
	"github.com/0xShuk/breeez/testutil/sample"
	"github.com/0xShuk/breeez/x/stake/types"
)

func TestStakeEncodingHasFixedSize(t *testing.T) {
	owner := sample.Address()
	s := types.Stake{
		Asset:       "nft/breeez-42",
		Owner:       owner,
		StakedAt:    1_700_000_000,
		SendAddress: owner,
		Collection:  sample.Address(),
	}
	bz, err := layout.Encode(s)
	require.NoError(t, err)
	require.Len(t, bz, types.StakeSize)

	decoded, err := layout.RecordValue[types.Stake]("stake").Decode(bz)
	require.NoError(t, err)
	require.Equal(t, s.Asset, decoded.Asset)
	require.Equal(t, s.StakedAt, decoded.StakedAt)
	require.True(t, s.Owner.Equals(decoded.Owner))
	require.True(t, s.Collection.Equals(decoded.Collection))
}

func TestGenesisRejectsDuplicateAsset(t *testing.T) {
	owner := sample.Address()
	s := types.Stake{Asset: "nft/breeez-1", Owner: owner, SendAddress: owner, Collection: sample.Address()}

	require.NoError(t, types.GenesisState{Stakes: []types.Stake{s}}.Validate())
	require.Error(t, types.GenesisState{Stakes: []types.Stake{s, s}}.Validate())
	require.NoError(t, types.DefaultGenesis().Validate())
}
