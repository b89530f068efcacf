package app

import (
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/0xShuk/breeez/config"
	custodykeeper "github.com/0xShuk/breeez/x/custody/keeper"
	custodytypes "github.com/0xShuk/breeez/x/custody/types"
	registrykeeper "github.com/0xShuk/breeez/x/registry/keeper"
	registrytypes "github.com/0xShuk/breeez/x/registry/types"
	stakekeeper "github.com/0xShuk/breeez/x/stake/keeper"
	staketypes "github.com/0xShuk/breeez/x/stake/types"
	tradekeeper "github.com/0xShuk/breeez/x/trade/keeper"
	tradetypes "github.com/0xShuk/breeez/x/trade/types"
	votingkeeper "github.com/0xShuk/breeez/x/voting/keeper"
	votingtypes "github.com/0xShuk/breeez/x/voting/types"
)

// StoreKeys names the KV store of every breeez module.
var StoreKeys = []string{
	registrytypes.StoreKey,
	staketypes.StoreKey,
	tradetypes.StoreKey,
	votingtypes.StoreKey,
}

// BankKeeper is the bank surface shared by the custody service and the registry.
type BankKeeper interface {
	custodytypes.BankKeeper
	registrytypes.BankKeeper
}

// Keepers holds every breeez keeper, wired to one another.
type Keepers struct {
	Custody  custodykeeper.Keeper
	Registry registrykeeper.Keeper
	Stake    stakekeeper.Keeper
	Trade    tradekeeper.Keeper
	Voting   votingkeeper.Keeper
}

type keeperOptions struct {
	custody staketypes.CustodyKeeper
}

type KeeperOption func(*keeperOptions)

// WithCustody replaces the custody keeper the stake and trade engines move assets through.
func WithCustody(custody staketypes.CustodyKeeper) KeeperOption {
	return func(o *keeperOptions) {
		o.custody = custody
	}
}

// NewKeepers assembles the breeez keepers. storeService resolves a module store key;
// the custody audit log follows cfg.Bookkeeping.
func NewKeepers(
	cfg config.Config,
	logger log.Logger,
	storeService func(storeKey string) store.KVStoreService,
	authority string,
	bank BankKeeper,
	oracle registrytypes.MembershipOracle,
	opts ...KeeperOption,
) Keepers {
	k := Keepers{
		Custody: custodykeeper.NewKeeper(logger, bank, cfg.Bookkeeping),
	}

	o := keeperOptions{custody: k.Custody}
	for _, opt := range opts {
		opt(&o)
	}

	k.Registry = registrykeeper.NewKeeper(storeService(registrytypes.StoreKey), logger, authority, bank, oracle)
	k.Stake = stakekeeper.NewKeeper(storeService(staketypes.StoreKey), logger, k.Registry, o.custody)
	k.Trade = tradekeeper.NewKeeper(storeService(tradetypes.StoreKey), logger, k.Registry, o.custody)
	k.Voting = votingkeeper.NewKeeper(storeService(votingtypes.StoreKey), logger, k.Registry)
	return k
}
