package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "custody"
)

// Derive returns the protocol-controlled address for namespace and keys. Only the module
// that owns namespace moves funds out of such an address, through the custody keeper.
func Derive(moduleName, namespace string, keys ...[]byte) sdk.AccAddress {
	derivation := make([][]byte, 0, len(keys)+1)
	derivation = append(derivation, []byte(namespace))
	derivation = append(derivation, keys...)
	return address.Module(moduleName, derivation...)
}
