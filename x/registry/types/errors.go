package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/registry module sentinel errors
var (
	ErrCollectionNotFound      = sdkerrors.Register(ModuleName, 1100, "collection not found")
	ErrCollectionAlreadyExists = sdkerrors.Register(ModuleName, 1101, "collection already registered")
	ErrNotCollectionAsset      = sdkerrors.Register(ModuleName, 1102, "asset is not a collection asset")
	ErrNotUpdateAuthority      = sdkerrors.Register(ModuleName, 1103, "signer is not the collection update authority")
	ErrAccountNotInitialized   = sdkerrors.Register(ModuleName, 1104, "asset metadata not found")
	ErrModuleAlreadyAdded      = sdkerrors.Register(ModuleName, 1105, "module already added")
	ErrModuleNotActive         = sdkerrors.Register(ModuleName, 1106, "module not active")
	ErrZeroValue               = sdkerrors.Register(ModuleName, 1107, "value must be greater than zero")
	ErrInvalidQuorum           = sdkerrors.Register(ModuleName, 1108, "quorum exceeds member count")
	ErrTokenNotFound           = sdkerrors.Register(ModuleName, 1109, "reward asset not attached")
	ErrTokenAlreadyExists      = sdkerrors.Register(ModuleName, 1110, "reward asset already attached")
	ErrRewardSupplyNotZero     = sdkerrors.Register(ModuleName, 1111, "reward asset supply is not zero")
	ErrCollectionNotSet        = sdkerrors.Register(ModuleName, 1112, "asset does not belong to a collection")
	ErrCollectionNotVerified   = sdkerrors.Register(ModuleName, 1113, "asset collection is not verified")
	ErrCollectionNotSame       = sdkerrors.Register(ModuleName, 1114, "asset belongs to a different collection")
	ErrTokenNotOne             = sdkerrors.Register(ModuleName, 1115, "token balance is not exactly one")
	ErrInvalidEditKind         = sdkerrors.Register(ModuleName, 1116, "invalid edit kind")
	ErrInvalidOrdinal          = sdkerrors.Register(ModuleName, 1117, "asset name carries no ordinal")
	ErrInvalidMemberCount      = sdkerrors.Register(ModuleName, 1118, "member count out of range")
	ErrInvalidSigner           = sdkerrors.Register(ModuleName, 1119, "expected gov account as only signer for proposal message")
	ErrInvalidDuration         = sdkerrors.Register(ModuleName, 1120, "duration out of range")
)
