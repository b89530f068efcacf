package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/voting module sentinel errors
var (
	ErrProposalNotFound        = sdkerrors.Register(ModuleName, 1100, "proposal not found")
	ErrOptionNotExists         = sdkerrors.Register(ModuleName, 1101, "option does not exist")
	ErrAlreadyVoted            = sdkerrors.Register(ModuleName, 1102, "asset already voted")
	ErrVotingIsClosed          = sdkerrors.Register(ModuleName, 1103, "voting is closed")
	ErrVotingIsActive          = sdkerrors.Register(ModuleName, 1104, "voting is still active")
	ErrProposalAlreadyExecuted = sdkerrors.Register(ModuleName, 1105, "proposal already executed")
	ErrAccountNotProvided      = sdkerrors.Register(ModuleName, 1106, "no voting asset provided")
	ErrIncorrectOptionCount    = sdkerrors.Register(ModuleName, 1107, "incorrect option count")
	ErrStringLengthExceeds     = sdkerrors.Register(ModuleName, 1108, "string length exceeds limit")
	ErrBlankString             = sdkerrors.Register(ModuleName, 1109, "blank string found")
	ErrOrdinalOutOfRange       = sdkerrors.Register(ModuleName, 1110, "member ordinal out of range")
)
