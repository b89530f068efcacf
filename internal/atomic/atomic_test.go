package atomic

import (
	"errors"
	"testing"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) (sdk.Context, storetypes.StoreKey) {
	key := storetypes.NewKVStoreKey("atomic")
	return testutil.DefaultContextWithDB(t, key, storetypes.NewTransientStoreKey("transient_atomic")).Ctx, key
}

func TestRunCommitsOnSuccess(t *testing.T) {
	ctx, key := newContext(t)

	err := Run(ctx, func(ctx sdk.Context) error {
		ctx.KVStore(key).Set([]byte("k"), []byte("v"))
		ctx.EventManager().EmitEvent(sdk.NewEvent("done"))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []byte("v"), ctx.KVStore(key).Get([]byte("k")))
	require.Len(t, ctx.EventManager().Events(), 1)
}

func TestRunDiscardsOnError(t *testing.T) {
	ctx, key := newContext(t)
	ctx.KVStore(key).Set([]byte("k"), []byte("before"))
	boom := errors.New("boom")

	err := Run(ctx, func(ctx sdk.Context) error {
		ctx.KVStore(key).Set([]byte("k"), []byte("after"))
		ctx.KVStore(key).Set([]byte("other"), []byte("x"))
		ctx.EventManager().EmitEvent(sdk.NewEvent("half"))
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, []byte("before"), ctx.KVStore(key).Get([]byte("k")))
	require.Nil(t, ctx.KVStore(key).Get([]byte("other")))
	require.Empty(t, ctx.EventManager().Events())
}
