package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// BankKeeper defines the expected interface for the Bank module.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetSupply(ctx context.Context, denom string) sdk.Coin
	SetDenomMetaData(ctx context.Context, denomMetaData banktypes.Metadata)
}

// MembershipOracle resolves asset metadata: collection membership, ordinal and update authority.
// Ordinals follow the "<name> #<number>" convention parsed by OrdinalFromName.
type MembershipOracle interface {
	GetAsset(ctx context.Context, assetID string) (AssetInfo, bool)
}
