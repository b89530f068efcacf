package app

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// ModuleAddress is the account of a module, as the bank module derives it.
func ModuleAddress(moduleName string) sdk.AccAddress {
	return authtypes.NewModuleAddress(moduleName)
}

// Ledger is a minimal bank kept in the same multistore as the modules, so balance changes roll
// back together with module state when an operation fails. It stands in for the bank module
// when the modules run without a chain: genesis import checks and tests.
type Ledger struct {
	balances collections.Map[collections.Pair[sdk.AccAddress, string], math.Int]
	supply   collections.Map[string, math.Int]
	displays collections.Map[string, string]
}

// LedgerStoreKey is the store the Ledger keeps balances in.
const LedgerStoreKey = "ledger"

func NewLedger(storeService store.KVStoreService) *Ledger {
	sb := collections.NewSchemaBuilder(storeService)
	l := &Ledger{
		balances: collections.NewMap(sb, collections.NewPrefix(0), "balances", collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey), sdk.IntValue),
		supply:   collections.NewMap(sb, collections.NewPrefix(1), "supply", collections.StringKey, sdk.IntValue),
		displays: collections.NewMap(sb, collections.NewPrefix(2), "displays", collections.StringKey, collections.StringValue),
	}
	if _, err := sb.Build(); err != nil {
		panic(err)
	}
	return l
}

func (l *Ledger) amount(ctx context.Context, addr sdk.AccAddress, denom string) math.Int {
	v, err := l.balances.Get(ctx, collections.Join(addr, denom))
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt()
	}
	if err != nil {
		panic(err)
	}
	return v
}

func (l *Ledger) setAmount(ctx context.Context, addr sdk.AccAddress, denom string, amt math.Int) {
	key := collections.Join(addr, denom)
	var err error
	if amt.IsZero() {
		err = l.balances.Remove(ctx, key)
	} else {
		err = l.balances.Set(ctx, key, amt)
	}
	if err != nil {
		panic(err)
	}
}

// Fund creates coins out of thin air on addr, counting them in the supply.
func (l *Ledger) Fund(ctx context.Context, addr sdk.AccAddress, coins ...sdk.Coin) {
	for _, c := range coins {
		l.setAmount(ctx, addr, c.Denom, l.amount(ctx, addr, c.Denom).Add(c.Amount))
		if err := l.supply.Set(ctx, c.Denom, l.GetSupply(ctx, c.Denom).Amount.Add(c.Amount)); err != nil {
			panic(err)
		}
	}
}

// Display returns the display unit recorded for denom by SetDenomMetaData.
func (l *Ledger) Display(ctx context.Context, denom string) string {
	d, _ := l.displays.Get(ctx, denom)
	return d
}

func (l *Ledger) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, l.amount(ctx, addr, denom))
}

func (l *Ledger) GetSupply(ctx context.Context, denom string) sdk.Coin {
	v, err := l.supply.Get(ctx, denom)
	if err != nil {
		return sdk.NewCoin(denom, math.ZeroInt())
	}
	return sdk.NewCoin(denom, v)
}

func (l *Ledger) SetDenomMetaData(ctx context.Context, md banktypes.Metadata) {
	if err := l.displays.Set(ctx, md.Base, md.Display); err != nil {
		panic(err)
	}
}

func (l *Ledger) GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	iter, err := l.balances.Iterate(ctx, collections.NewPrefixedPairRange[sdk.AccAddress, string](addr))
	if err != nil {
		panic(err)
	}
	defer iter.Close()
	coins := sdk.NewCoins()
	for ; iter.Valid(); iter.Next() {
		kv, err := iter.KeyValue()
		if err != nil {
			panic(err)
		}
		coins = coins.Add(sdk.NewCoin(kv.Key.K2(), kv.Value))
	}
	return coins
}

func (l *Ledger) SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	return l.GetAllBalances(ctx, addr)
}

func (l *Ledger) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	for _, c := range amt {
		have := l.amount(ctx, fromAddr, c.Denom)
		if have.LT(c.Amount) {
			return fmt.Errorf("%s has %s%s, needs %s", fromAddr, have, c.Denom, c)
		}
		l.setAmount(ctx, fromAddr, c.Denom, have.Sub(c.Amount))
		l.setAmount(ctx, toAddr, c.Denom, l.amount(ctx, toAddr, c.Denom).Add(c.Amount))
	}
	return nil
}

func (l *Ledger) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	l.Fund(ctx, ModuleAddress(moduleName), amt...)
	return nil
}

func (l *Ledger) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return l.SendCoins(ctx, ModuleAddress(senderModule), recipientAddr, amt)
}
