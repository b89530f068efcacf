package types

import (
	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "registry"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_registry"
)

var (
	ParamsKey = collections.NewPrefix(0)

	// CollectionKey is the prefix for collection records, keyed by the derived collection address
	CollectionKey = collections.NewPrefix(1)

	// RewardDenomKey tracks reward denoms already attached to a collection
	RewardDenomKey = collections.NewPrefix(2)
)

// CollectionAddress derives the record address of the collection registered for verifiedKey.
func CollectionAddress(verifiedKey string) sdk.AccAddress {
	return address.Module(ModuleName, []byte("collection"), []byte(verifiedKey))
}
