package app

import (
	"time"

	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/0xShuk/breeez/config"
	registrytypes "github.com/0xShuk/breeez/x/registry/types"
)

// InMemory mounts every breeez module and a Ledger over one in-memory IAVL multistore.
type InMemory struct {
	Keepers

	Ctx    sdk.Context
	Ledger *Ledger
}

// NewInMemory builds the keepers from cfg over a fresh in-memory store whose block clock
// reads blockTime. Module state is empty; load it with InitGenesis.
func NewInMemory(
	cfg config.Config,
	logger log.Logger,
	oracle registrytypes.MembershipOracle,
	blockTime time.Time,
	opts ...KeeperOption,
) (*InMemory, error) {
	names := append([]string{LedgerStoreKey}, StoreKeys...)
	keys := storetypes.NewKVStoreKeys(names...)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, name := range names {
		stateStore.MountStoreWithDB(keys[name], storetypes.StoreTypeIAVL, db)
	}
	if err := stateStore.LoadLatestVersion(); err != nil {
		return nil, err
	}

	storeService := func(storeKey string) corestore.KVStoreService {
		return runtime.NewKVStoreService(keys[storeKey])
	}

	m := &InMemory{
		Ledger: NewLedger(storeService(LedgerStoreKey)),
	}
	m.Keepers = NewKeepers(cfg, logger, storeService, ModuleAddress(govtypes.ModuleName).String(), m.Ledger, oracle, opts...)
	m.Ctx = sdk.NewContext(stateStore, cmtproto.Header{Time: blockTime.UTC()}, false, logger)
	return m, nil
}
