package types_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xShuk/breeez/internal/layout"
	"github.com/0xShuk/breeez/testutil/sample"
	"github.com/0xShuk/breeez/x/voting/types"
)

func TestVoterBitmap(t *testing.T) {
	b := types.NewVoterBitmap(10)
	require.Len(t, b, 2)
	require.Equal(t, uint64(16), b.Len())

	require.NoError(t, b.Set(0))
	require.NoError(t, b.Set(9))
	require.Equal(t, byte(0x80), b[0])
	require.Equal(t, byte(0x40), b[1])

	voted, err := b.Test(9)
	require.NoError(t, err)
	require.True(t, voted)
	voted, err = b.Test(1)
	require.NoError(t, err)
	require.False(t, voted)

	require.ErrorIs(t, b.Set(9), types.ErrAlreadyVoted)
	require.Equal(t, uint64(2), b.Count())

	require.ErrorIs(t, b.Set(16), types.ErrOrdinalOutOfRange)
	_, err = b.Test(16)
	require.ErrorIs(t, err, types.ErrOrdinalOutOfRange)
}

func TestBitmapLen(t *testing.T) {
	require.Equal(t, uint64(0), types.BitmapLen(0))
	require.Equal(t, uint64(1), types.BitmapLen(1))
	require.Equal(t, uint64(1), types.BitmapLen(8))
	require.Equal(t, uint64(2), types.BitmapLen(9))
	require.Equal(t, uint64(1250), types.BitmapLen(10_000))
}

func TestValidateProposalText(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		options []string
		err     error
	}{
		{name: "valid", title: "Fund the garden?", options: []string{"yes", "no"}},
		{name: "five options", title: "Pick one", options: []string{"a", "b", "c", "d", "e"}},
		{name: "one option", title: "Pick one", options: []string{"a"}, err: types.ErrIncorrectOptionCount},
		{name: "six options", title: "Pick one", options: []string{"a", "b", "c", "d", "e", "f"}, err: types.ErrIncorrectOptionCount},
		{name: "blank title", title: "  ", options: []string{"a", "b"}, err: types.ErrBlankString},
		{name: "blank option", title: "Pick one", options: []string{"a", ""}, err: types.ErrBlankString},
		{name: "title at limit", title: strings.Repeat("t", types.MaxTitleLength), options: []string{"a", "b"}},
		{name: "title too long", title: strings.Repeat("t", types.MaxTitleLength+1), options: []string{"a", "b"}, err: types.ErrStringLengthExceeds},
		{name: "option at limit", title: "Pick one", options: []string{strings.Repeat("o", types.MaxOptionLength), "b"}},
		{name: "option too long", title: "Pick one", options: []string{strings.Repeat("o", types.MaxOptionLength+1), "b"}, err: types.ErrStringLengthExceeds},
		// 13 two-byte runes are 26 bytes
		{name: "option too long in bytes", title: "Pick one", options: []string{strings.Repeat("é", 13), "b"}, err: types.ErrStringLengthExceeds},
		{name: "option with NUL", title: "Pick one", options: []string{"a\x00", "b"}, err: types.ErrBlankString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := types.ValidateProposalText(tt.title, tt.options)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func newProposal(t *testing.T, members uint64) types.Proposal {
	t.Helper()
	p, err := types.NewProposal(7, sample.Address(), sample.Address(), 1_700_000_000, "Fund the garden?", []string{"yes", "no", "later"}, members)
	require.NoError(t, err)
	return p
}

func TestProposalEncoding(t *testing.T) {
	p := newProposal(t, 20)
	require.NoError(t, p.Voters.Set(3))
	require.NoError(t, p.Voters.Set(19))
	p.Votes[2] = 2

	bz, err := layout.Encode(p)
	require.NoError(t, err)
	require.Len(t, bz, int(p.Size()))
	require.Equal(t, types.ProposalSize(len(p.Title), len(p.Options), 20), p.Size())

	decoded, err := layout.RecordValue[types.Proposal]("proposal").Decode(bz)
	require.NoError(t, err)
	require.Equal(t, p.Title, decoded.Title)
	require.Equal(t, p.Options, decoded.Options)
	require.Equal(t, p.Votes, decoded.Votes)
	require.Equal(t, p.Voters, decoded.Voters)
	require.True(t, decoded.Creator.Equals(p.Creator))
	require.NoError(t, decoded.Validate())
}

func TestProposalDecodeRejectsTruncated(t *testing.T) {
	bz, err := layout.Encode(newProposal(t, 20))
	require.NoError(t, err)

	_, err = layout.RecordValue[types.Proposal]("proposal").Decode(bz[:len(bz)-1])
	require.Error(t, err)
	_, err = layout.RecordValue[types.Proposal]("proposal").Decode(bz[:types.ProposalHeaderSize-1])
	require.Error(t, err)
}

func TestProposalVoteWindow(t *testing.T) {
	p := newProposal(t, 4)
	require.True(t, p.VotingOpen(p.CreatedAt+600, 600))
	require.False(t, p.VotingOpen(p.CreatedAt+601, 600))
}

func TestProposalVoteWindowHandlesLongDurations(t *testing.T) {
	p := newProposal(t, 4)
	p.CreatedAt = 1_700_000_000
	require.True(t, p.VotingOpen(p.CreatedAt, math.MaxInt64))
	require.True(t, p.VotingOpen(math.MaxInt64, math.MaxInt64))
	require.True(t, p.VotingOpen(p.CreatedAt-1, 600))
	require.False(t, p.VotingOpen(math.MaxInt64, math.MaxInt64-p.CreatedAt-1))
}

func TestProposalValidateRejectsNegativeCreation(t *testing.T) {
	p := newProposal(t, 4)
	p.CreatedAt = -1
	require.ErrorContains(t, p.Validate(), "negative creation time")
}

func TestProposalDecide(t *testing.T) {
	p := newProposal(t, 10)
	p.Votes = []uint32{3, 2, 0}
	p.Decide(5)
	require.Equal(t, types.StatusPassed, p.Status)

	p.Votes = []uint32{2, 2, 0}
	p.Decide(5)
	require.Equal(t, types.StatusFailed, p.Status)
}

func TestProposalValidateVoteCount(t *testing.T) {
	p := newProposal(t, 10)
	p.Votes[0] = 1
	require.Error(t, p.Validate())

	require.NoError(t, p.Voters.Set(4))
	require.NoError(t, p.Validate())
}

func TestGenesisValidate(t *testing.T) {
	p := newProposal(t, 10)

	gs := types.GenesisState{Proposals: []types.Proposal{p}, NextProposalID: 8}
	require.NoError(t, gs.Validate())

	gs.NextProposalID = 7
	require.Error(t, gs.Validate())

	gs = types.GenesisState{Proposals: []types.Proposal{p, p}, NextProposalID: 8}
	require.Error(t, gs.Validate())

	require.NoError(t, types.DefaultGenesis().Validate())
}
