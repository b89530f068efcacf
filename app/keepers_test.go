package app_test

import (
	"bytes"
	"testing"
	"time"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/0xShuk/breeez/app"
	"github.com/0xShuk/breeez/config"
	"github.com/0xShuk/breeez/testutil/sample"
	custodykeeper "github.com/0xShuk/breeez/x/custody/keeper"
)

func transferWithBookkeeping(t *testing.T, bookkeeping custodykeeper.LogConfig) string {
	t.Helper()
	cfg := config.Default()
	cfg.Log.Format = "json"
	cfg.Bookkeeping = bookkeeping

	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)

	mem, err := app.NewInMemory(cfg, logger, nil, time.Unix(1_700_000_000, 0))
	require.NoError(t, err)

	from, to := sample.Address(), sample.Address()
	mem.Ledger.Fund(mem.Ctx, from, sdk.NewInt64Coin("ubrz", 100))
	require.NoError(t, mem.Custody.Transfer(mem.Ctx, from, to, sdk.NewCoins(sdk.NewInt64Coin("ubrz", 40)), "settle"))
	require.Equal(t, int64(40), mem.Ledger.GetBalance(mem.Ctx, to, "ubrz").Amount.Int64())
	return buf.String()
}

func TestCustodyFollowsBookkeepingConfig(t *testing.T) {
	out := transferWithBookkeeping(t, custodykeeper.LogConfig{DoubleEntry: true, LogLevel: "info"})
	require.Contains(t, out, "CustodyAudit")
	require.Contains(t, out, `"type":"debit"`)
	require.NotContains(t, out, "CustodyEntry")

	out = transferWithBookkeeping(t, custodykeeper.LogConfig{SimpleEntry: true, LogLevel: "info"})
	require.Contains(t, out, "CustodyEntry")
	require.NotContains(t, out, "CustodyAudit")

	// debug entries are filtered by the info level process logger
	out = transferWithBookkeeping(t, custodykeeper.LogConfig{DoubleEntry: true, LogLevel: "debug"})
	require.NotContains(t, out, "CustodyAudit")
}

func TestNewInMemoryStartsEmpty(t *testing.T) {
	at := time.Unix(1_700_000_000, 0)
	mem, err := app.NewInMemory(config.Default(), log.NewNopLogger(), nil, at)
	require.NoError(t, err)
	require.Equal(t, at.Unix(), mem.Ctx.BlockTime().Unix())
	require.Empty(t, mem.Registry.GetAllCollections(mem.Ctx))
	require.Empty(t, mem.Stake.GetAllStakes(mem.Ctx))
	require.Empty(t, mem.Trade.GetAllTrades(mem.Ctx))
	require.Empty(t, mem.Voting.GetAllProposals(mem.Ctx))
}
