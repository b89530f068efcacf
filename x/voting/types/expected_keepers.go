package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	registrytypes "github.com/0xShuk/breeez/x/registry/types"
)

// RegistryKeeper is the read-only view of the collection registry.
type RegistryKeeper interface {
	GetCollection(ctx context.Context, addr sdk.AccAddress) (registrytypes.Collection, bool)
	GetCollectionByKey(ctx context.Context, verifiedKey string) (registrytypes.Collection, bool)
	VerifyMember(ctx context.Context, collection registrytypes.Collection, assetID string, holder sdk.AccAddress) (registrytypes.AssetInfo, error)
}
