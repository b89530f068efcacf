package types

import (
	"encoding/binary"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	custodytypes "github.com/0xShuk/breeez/x/custody/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "voting"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_voting"
)

var (
	// ProposalKey is the prefix for proposal records, keyed by proposal id
	ProposalKey = collections.NewPrefix(0)

	// ProposalSeqKey holds the next proposal id
	ProposalSeqKey = collections.NewPrefix(1)

	ProposalByCollectionIndexPrefix = collections.NewPrefix(2)
)

// ProposalAddress derives the record address of proposal id.
func ProposalAddress(id uint64) sdk.AccAddress {
	return custodytypes.Derive(ModuleName, "proposal", binary.BigEndian.AppendUint64(nil, id))
}
