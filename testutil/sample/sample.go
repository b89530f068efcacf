package sample

import (
	"fmt"
	"math/rand"

	"github.com/cometbft/cometbft/crypto/secp256k1"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccAddress returns a sample account address
func AccAddress() string {
	pk := ed25519.GenPrivKey().PubKey()
	addr := pk.Address()
	return sdk.AccAddress(addr).String()
}

// Address returns a sample account address in byte form
func Address() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

// Denom returns a sample asset denom with the given prefix, e.g. "nft/breeez-1234567"
func Denom(prefix string) string {
	return fmt.Sprintf("%s/breeez-%d", prefix, rand.Int63())
}
