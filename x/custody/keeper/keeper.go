package keeper

import (
	"context"
	"fmt"
	"strings"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/x/custody/types"
)

type (
	// Keeper moves value and assets on behalf of the engines and records every movement in
	// an audit log. It never decides whether a movement is allowed; callers do.
	Keeper struct {
		logger log.Logger

		bankKeeper types.BankKeeper
		logConfig  LogConfig
	}
)

type LogConfig struct {
	DoubleEntry bool   `json:"double_entry" koanf:"double_entry"`
	SimpleEntry bool   `json:"simple_entry" koanf:"simple_entry"`
	LogLevel    string `json:"log_level" koanf:"log_level"`
}

func NewKeeper(
	logger log.Logger,
	bankKeeper types.BankKeeper,
	logConfig LogConfig,
) Keeper {
	return Keeper{
		logger: logger,

		bankKeeper: bankKeeper,
		logConfig:  logConfig,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// Transfer moves amt from one account to another. The balance is checked up front so a
// shortfall surfaces as ErrInsufficientBalance before anything moves.
func (k Keeper) Transfer(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins, memo string) error {
	if !amt.IsValid() {
		return types.ErrInvalidAmount.Wrapf("%s", amt)
	}
	if amt.IsZero() {
		return nil
	}
	if spendable := k.bankKeeper.SpendableCoins(ctx, fromAddr); !spendable.IsAllGTE(amt) {
		return types.ErrInsufficientBalance.Wrapf("%s has %s, needs %s", fromAddr, spendable, amt)
	}
	if err := k.bankKeeper.SendCoins(ctx, fromAddr, toAddr, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, toAddr.String(), fromAddr.String(), coin, memo)
	}
	return nil
}

// Mint creates amt under the authority of moduleName and delivers it to recipient.
func (k Keeper) Mint(ctx context.Context, moduleName string, recipient sdk.AccAddress, amt sdk.Coins, memo string) error {
	if !amt.IsValid() {
		return types.ErrInvalidAmount.Wrapf("%s", amt)
	}
	if amt.IsZero() {
		return nil
	}
	if err := k.bankKeeper.MintCoins(ctx, moduleName, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, moduleName, "supply", coin, memo)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, moduleName, recipient, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, recipient.String(), moduleName, coin, memo)
	}
	return nil
}

// Close sweeps whatever is left on a protocol-controlled account to refundTo. Returns the
// swept amount, which is empty when the account was already drained.
func (k Keeper) Close(ctx context.Context, account, refundTo sdk.AccAddress, memo string) (sdk.Coins, error) {
	remaining := k.bankKeeper.GetAllBalances(ctx, account)
	if remaining.IsZero() {
		return remaining, nil
	}
	if err := k.bankKeeper.SendCoins(ctx, account, refundTo, remaining); err != nil {
		return nil, err
	}
	for _, coin := range remaining {
		k.logTransaction(ctx, refundTo.String(), account.String(), coin, memo)
	}
	return remaining, nil
}

func (k Keeper) logTransaction(ctx context.Context, to string, from string, coin sdk.Coin, memo string) {
	if coin.Amount.IsZero() {
		return
	}
	height := sdk.UnwrapSDKContext(ctx).BlockHeight()
	logFunc := k.getLogFunction(k.logConfig.LogLevel)
	amount := coin.Amount.String()
	if k.logConfig.DoubleEntry {
		logFunc("CustodyAudit", "type", "debit", "account", to, "counteraccount", from, "amount", amount, "denom", coin.Denom, "memo", memo, "height", height)
		logFunc("CustodyAudit", "type", "credit", "account", from, "counteraccount", to, "amount", amount, "denom", coin.Denom, "memo", memo, "height", height)
	}
	if k.logConfig.SimpleEntry {
		logFunc(fmt.Sprintf("CustodyEntry to=%s from=%s amount=%20s %-10s height=%8d memo=%s", fixedSize(to, 64), fixedSize(from, 64), amount, coin.Denom, height, memo))
	}
}

func (k Keeper) getLogFunction(level string) func(msg string, keyvals ...interface{}) {
	switch strings.ToLower(level) {
	case "debug":
		return k.Logger().Debug
	case "error":
		return k.Logger().Error
	case "warn":
		return k.Logger().Warn
	default:
		return k.Logger().Info
	}
}

// no easy way to truncate AND pad a string in Sprintf
func fixedSize(s string, size int) string {
	if len(s) > size {
		return s[:size]
	}
	return s + strings.Repeat(" ", size-len(s))
}
