package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/custody module sentinel errors
var (
	ErrInsufficientBalance = sdkerrors.Register(ModuleName, 1100, "insufficient balance")
	ErrInvalidAmount       = sdkerrors.Register(ModuleName, 1101, "invalid amount")
)
