package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/trade module sentinel errors
var (
	ErrAmountNotZero        = sdkerrors.Register(ModuleName, 1100, "amount must be zero for an unused leg")
	ErrTokenAmountZero      = sdkerrors.Register(ModuleName, 1101, "amount must be positive for a used leg")
	ErrAccountNotProvided   = sdkerrors.Register(ModuleName, 1102, "required account not provided")
	ErrAccountNotRequired   = sdkerrors.Register(ModuleName, 1103, "account provided but not required")
	ErrTradeNotAccepted     = sdkerrors.Register(ModuleName, 1104, "trade not accepted")
	ErrTradeAlreadyAccepted = sdkerrors.Register(ModuleName, 1105, "trade already accepted")
	ErrTradeTimeNotExpired  = sdkerrors.Register(ModuleName, 1106, "trade time not expired")
	ErrNotTradeParty        = sdkerrors.Register(ModuleName, 1107, "signer is not the expected trade party")
	ErrTradeAlreadyExists   = sdkerrors.Register(ModuleName, 1108, "trade already exists")
	ErrSameParty            = sdkerrors.Register(ModuleName, 1109, "parties must differ")
	ErrTradeNotFound        = sdkerrors.Register(ModuleName, 1110, "trade not found")
	ErrInvalidFundingMode   = sdkerrors.Register(ModuleName, 1111, "invalid funding mode")
	ErrTreasuryNotSet       = sdkerrors.Register(ModuleName, 1112, "collection treasury not set")
)
