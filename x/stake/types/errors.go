package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/stake module sentinel errors
var (
	ErrStakeNotFound = sdkerrors.Register(ModuleName, 1100, "stake not found")
	ErrAlreadyStaked = sdkerrors.Register(ModuleName, 1101, "asset already staked")
	ErrNotStakeOwner = sdkerrors.Register(ModuleName, 1102, "signer does not own the stake")
)
