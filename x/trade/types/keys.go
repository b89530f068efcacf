package types

import (
	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	custodytypes "github.com/0xShuk/breeez/x/custody/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "trade"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_trade"
)

var (
	// TradeKey is the prefix for trade records, keyed by the derived trade address
	TradeKey = collections.NewPrefix(0)

	TradeByPartyOneIndexPrefix = collections.NewPrefix(1)
	TradeByPartyTwoIndexPrefix = collections.NewPrefix(2)
)

// TradeAddress derives the record address of the trade between partyOne and partyTwo over
// collection. The account at this address also holds both value legs.
func TradeAddress(partyOne, partyTwo, collection sdk.AccAddress) sdk.AccAddress {
	return custodytypes.Derive(ModuleName, "trade", partyOne, partyTwo, collection)
}

// EscrowAddress derives the account that holds the asset leg funded from slot.
func EscrowAddress(trade sdk.AccAddress, slot Slot) sdk.AccAddress {
	namespace := "escrow-one"
	if slot == SlotTwo {
		namespace = "escrow-two"
	}
	return custodytypes.Derive(ModuleName, namespace, trade)
}
