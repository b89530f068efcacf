package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/0xShuk/breeez/app"
	"github.com/0xShuk/breeez/config"
	"github.com/0xShuk/breeez/testutil/sample"
	custodykeeper "github.com/0xShuk/breeez/x/custody/keeper"
	registrykeeper "github.com/0xShuk/breeez/x/registry/keeper"
	registrytypes "github.com/0xShuk/breeez/x/registry/types"
	stakekeeper "github.com/0xShuk/breeez/x/stake/keeper"
	staketypes "github.com/0xShuk/breeez/x/stake/types"
	tradekeeper "github.com/0xShuk/breeez/x/trade/keeper"
	votingkeeper "github.com/0xShuk/breeez/x/voting/keeper"
)

// GenesisTime is the block time every test environment starts at.
const GenesisTime = int64(1_700_000_000)

// Env wires every module over one in-memory multistore, with the Ledger standing in for the
// bank module and the InMemoryOracle for asset metadata.
type Env struct {
	Ctx    sdk.Context
	Ledger *app.Ledger
	Oracle *InMemoryOracle

	Custody  custodykeeper.Keeper
	Registry registrykeeper.Keeper
	Stake    stakekeeper.Keeper
	Trade    tradekeeper.Keeper
	Voting   votingkeeper.Keeper
}

type EnvOption = app.KeeperOption

// WithCustody replaces the custody keeper the engines use, typically with a MockCustodyKeeper.
func WithCustody(custody staketypes.CustodyKeeper) EnvOption {
	return app.WithCustody(custody)
}

// TestConfig is the configuration every Env is assembled from.
func TestConfig() config.Config {
	cfg := config.Default()
	cfg.Bookkeeping = custodykeeper.LogConfig{DoubleEntry: true, LogLevel: "debug"}
	return cfg
}

func NewEnv(t testing.TB, opts ...EnvOption) *Env {
	oracle := NewInMemoryOracle()
	mem, err := app.NewInMemory(TestConfig(), log.NewNopLogger(), oracle, time.Unix(GenesisTime, 0), opts...)
	require.NoError(t, err)

	env := &Env{
		Ctx:      mem.Ctx,
		Ledger:   mem.Ledger,
		Oracle:   oracle,
		Custody:  mem.Custody,
		Registry: mem.Registry,
		Stake:    mem.Stake,
		Trade:    mem.Trade,
		Voting:   mem.Voting,
	}

	// Initialize params
	require.NoError(t, env.Registry.SetParams(env.Ctx, registrytypes.DefaultParams()))

	return env
}

// Now is the unix time of the current block.
func (e *Env) Now() int64 {
	return e.Ctx.BlockTime().Unix()
}

// SetTime moves the block clock to unix.
func (e *Env) SetTime(unix int64) {
	e.Ctx = e.Ctx.WithBlockTime(time.Unix(unix, 0).UTC())
}

// Advance moves the block clock forward by seconds.
func (e *Env) Advance(seconds int64) {
	e.SetTime(e.Now() + seconds)
}

// Balance is the ledger balance of addr in denom.
func (e *Env) Balance(addr sdk.AccAddress, denom string) math.Int {
	return e.Ledger.GetBalance(e.Ctx, addr, denom).Amount
}

// Collection describes a registered collection created by SetupCollection.
type Collection struct {
	VerifiedKey string
	Owner       sdk.AccAddress
	Treasury    sdk.AccAddress
	RewardDenom string
}

// SetupCollection registers the collection asset verifiedKey and creates its registry record.
func (e *Env) SetupCollection(t testing.TB, verifiedKey string) Collection {
	c := Collection{
		VerifiedKey: verifiedKey,
		Owner:       sample.Address(),
		Treasury:    sample.Address(),
	}
	e.Oracle.AddCollectionAsset(verifiedKey, c.Owner)

	_, err := registrykeeper.NewMsgServerImpl(e.Registry).CreateCollection(e.Ctx, &registrytypes.MsgCreateCollection{
		Owner:       c.Owner.String(),
		Treasury:    c.Treasury.String(),
		VerifiedKey: verifiedKey,
	})
	require.NoError(t, err)
	return c
}

// EnableStaking attaches a fresh reward denom and turns staking on at rate per asset per hour.
func (e *Env) EnableStaking(t testing.TB, c *Collection, rate uint64) {
	srv := registrykeeper.NewMsgServerImpl(e.Registry)
	c.RewardDenom = "reward/" + c.VerifiedKey
	_, err := srv.AttachRewardAsset(e.Ctx, &registrytypes.MsgAttachRewardAsset{
		Owner:       c.Owner.String(),
		VerifiedKey: c.VerifiedKey,
		Denom:       c.RewardDenom,
	})
	require.NoError(t, err)
	_, err = srv.AddStaking(e.Ctx, &registrytypes.MsgAddStaking{
		Owner:        c.Owner.String(),
		VerifiedKey:  c.VerifiedKey,
		EmissionRate: rate,
	})
	require.NoError(t, err)
}

func (e *Env) EnableTrade(t testing.TB, c Collection, fee uint64, duration int64) {
	_, err := registrykeeper.NewMsgServerImpl(e.Registry).AddTrade(e.Ctx, &registrytypes.MsgAddTrade{
		Owner:       c.Owner.String(),
		VerifiedKey: c.VerifiedKey,
		Fee:         fee,
		Duration:    duration,
	})
	require.NoError(t, err)
}

func (e *Env) EnableVoting(t testing.TB, c Collection, members uint64, duration int64, quorum uint64) {
	_, err := registrykeeper.NewMsgServerImpl(e.Registry).AddVoting(e.Ctx, &registrytypes.MsgAddVoting{
		Owner:       c.Owner.String(),
		VerifiedKey: c.VerifiedKey,
		MemberCount: members,
		Duration:    duration,
		Quorum:      quorum,
	})
	require.NoError(t, err)
}

// GiveMember mints member number of collection c to holder and returns its asset id.
func (e *Env) GiveMember(c Collection, number uint64, holder sdk.AccAddress) string {
	id := e.Oracle.AddMember(c.VerifiedKey, number)
	e.Ledger.Fund(e.Ctx, holder, sdk.NewCoin(id, math.OneInt()))
	return id
}
