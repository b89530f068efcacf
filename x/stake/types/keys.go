package types

import (
	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	custodytypes "github.com/0xShuk/breeez/x/custody/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "stake"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_stake"

	SecondsPerHour = 3600
)

var (
	// StakeKey is the prefix for stake records, keyed by the staked asset
	StakeKey = collections.NewPrefix(0)

	// StakeByOwnerIndexPrefix indexes stake records by owner
	StakeByOwnerIndexPrefix = collections.NewPrefix(1)
)

// EscrowAddress is the protocol-held account that keeps a staked asset.
func EscrowAddress(asset string) sdk.AccAddress {
	return custodytypes.Derive(ModuleName, "nft-escrow", []byte(asset))
}
