package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/suite"

	testkeeper "github.com/0xShuk/breeez/testutil/keeper"
	"github.com/0xShuk/breeez/testutil/sample"
	"github.com/0xShuk/breeez/x/registry/keeper"
	registrymodule "github.com/0xShuk/breeez/x/registry/module"
	"github.com/0xShuk/breeez/x/registry/types"
)

type KeeperTestSuite struct {
	suite.Suite

	env        *testkeeper.Env
	msgServer  types.MsgServer
	collection testkeeper.Collection
}

func (s *KeeperTestSuite) SetupTest() {
	s.env = testkeeper.NewEnv(s.T())
	s.msgServer = keeper.NewMsgServerImpl(s.env.Registry)
	s.collection = s.env.SetupCollection(s.T(), "breeezcol")
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (s *KeeperTestSuite) stored() types.Collection {
	c, found := s.env.Registry.GetCollectionByKey(s.env.Ctx, s.collection.VerifiedKey)
	s.Require().True(found)
	return c
}

func (s *KeeperTestSuite) owner() string {
	return s.collection.Owner.String()
}

func (s *KeeperTestSuite) TestCreateCollection() {
	c := s.stored()
	s.Require().True(c.Address.Equals(types.CollectionAddress("breeezcol")))
	s.Require().True(c.Treasury.Equals(s.collection.Treasury))
	for _, m := range []types.Module{types.ModuleStaking, types.ModuleVoting, types.ModuleTrade, types.ModuleCommunity} {
		s.Require().False(c.Enabled(m), m.String())
	}
	s.Require().NoError(c.Validate())

	_, found := s.env.Registry.GetCollection(s.env.Ctx, c.Address)
	s.Require().True(found)
}

func (s *KeeperTestSuite) TestCreateCollectionTwiceFails() {
	_, err := s.msgServer.CreateCollection(s.env.Ctx, &types.MsgCreateCollection{
		Owner:       s.owner(),
		Treasury:    sample.AccAddress(),
		VerifiedKey: s.collection.VerifiedKey,
	})
	s.Require().ErrorIs(err, types.ErrCollectionAlreadyExists)
	s.Require().True(s.stored().Treasury.Equals(s.collection.Treasury))
}

func (s *KeeperTestSuite) TestCreateCollectionChecksAuthority() {
	s.env.Oracle.AddCollectionAsset("othercol", sample.Address())
	member := s.env.Oracle.AddMember("othercol", 1)

	tests := []struct {
		name        string
		verifiedKey string
		err         error
	}{
		{name: "not the update authority", verifiedKey: "othercol", err: types.ErrNotUpdateAuthority},
		{name: "unknown asset", verifiedKey: "missingcol", err: types.ErrAccountNotInitialized},
		{name: "member asset", verifiedKey: member, err: types.ErrNotCollectionAsset},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.msgServer.CreateCollection(s.env.Ctx, &types.MsgCreateCollection{
				Owner:       s.owner(),
				Treasury:    sample.AccAddress(),
				VerifiedKey: tt.verifiedKey,
			})
			s.Require().ErrorIs(err, tt.err)
		})
	}
	s.Require().Len(s.env.Registry.GetAllCollections(s.env.Ctx), 1)
}

func (s *KeeperTestSuite) TestAttachRewardAsset() {
	_, err := s.msgServer.AttachRewardAsset(s.env.Ctx, &types.MsgAttachRewardAsset{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Denom:       "reward/breeez",
	})
	s.Require().NoError(err)
	s.Require().Equal("reward/breeez", s.stored().RewardDenom)
	s.Require().Equal("BREEEZ", s.env.Ledger.Display(s.env.Ctx, "reward/breeez"))

	_, err = s.msgServer.AttachRewardAsset(s.env.Ctx, &types.MsgAttachRewardAsset{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Denom:       "reward/other",
	})
	s.Require().ErrorIs(err, types.ErrTokenAlreadyExists)
	s.Require().Equal("reward/breeez", s.stored().RewardDenom)
}

func (s *KeeperTestSuite) TestAttachRewardAssetRejectsSharedOrMintedDenom() {
	_, err := s.msgServer.AttachRewardAsset(s.env.Ctx, &types.MsgAttachRewardAsset{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Denom:       "reward/breeez",
	})
	s.Require().NoError(err)

	other := s.env.SetupCollection(s.T(), "othercol")
	_, err = s.msgServer.AttachRewardAsset(s.env.Ctx, &types.MsgAttachRewardAsset{
		Owner:       other.Owner.String(),
		VerifiedKey: other.VerifiedKey,
		Denom:       "reward/breeez",
	})
	s.Require().ErrorIs(err, types.ErrTokenAlreadyExists)

	s.env.Ledger.Fund(s.env.Ctx, sample.Address(), sdk.NewInt64Coin("gold", 5))
	_, err = s.msgServer.AttachRewardAsset(s.env.Ctx, &types.MsgAttachRewardAsset{
		Owner:       other.Owner.String(),
		VerifiedKey: other.VerifiedKey,
		Denom:       "gold",
	})
	s.Require().ErrorIs(err, types.ErrRewardSupplyNotZero)
}

func (s *KeeperTestSuite) TestStakingRequiresRewardAsset() {
	_, err := s.msgServer.AddStaking(s.env.Ctx, &types.MsgAddStaking{
		Owner:        s.owner(),
		VerifiedKey:  s.collection.VerifiedKey,
		EmissionRate: 100,
	})
	s.Require().ErrorIs(err, types.ErrTokenNotFound)
	s.Require().False(s.stored().IsStaking)

	_, err = s.msgServer.EditStaking(s.env.Ctx, &types.MsgEditStaking{
		Owner:        s.owner(),
		VerifiedKey:  s.collection.VerifiedKey,
		EmissionRate: 100,
	})
	s.Require().ErrorIs(err, types.ErrModuleNotActive)
}

func (s *KeeperTestSuite) TestAddAndEditStaking() {
	s.env.EnableStaking(s.T(), &s.collection, 100)
	s.Require().True(s.stored().IsStaking)
	s.Require().Equal(uint64(100), s.stored().EmissionRate)

	_, err := s.msgServer.AddStaking(s.env.Ctx, &types.MsgAddStaking{
		Owner:        s.owner(),
		VerifiedKey:  s.collection.VerifiedKey,
		EmissionRate: 999,
	})
	s.Require().ErrorIs(err, types.ErrModuleAlreadyAdded)
	s.Require().Equal(uint64(100), s.stored().EmissionRate)

	_, err = s.msgServer.EditStaking(s.env.Ctx, &types.MsgEditStaking{
		Owner:        s.owner(),
		VerifiedKey:  s.collection.VerifiedKey,
		EmissionRate: 250,
	})
	s.Require().NoError(err)
	s.Require().Equal(uint64(250), s.stored().EmissionRate)
}

func (s *KeeperTestSuite) TestAddTradeOnce() {
	s.env.EnableTrade(s.T(), s.collection, 50, 600)

	_, err := s.msgServer.AddTrade(s.env.Ctx, &types.MsgAddTrade{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Fee:         75,
		Duration:    900,
	})
	s.Require().ErrorIs(err, types.ErrModuleAlreadyAdded)
	c := s.stored()
	s.Require().Equal(uint64(50), c.TradeFee)
	s.Require().Equal(int64(600), c.TradeDuration)

	_, err = s.msgServer.EditTrade(s.env.Ctx, &types.MsgEditTrade{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Field:       types.TradeFieldFee,
		Value:       75,
	})
	s.Require().NoError(err)
	_, err = s.msgServer.EditTrade(s.env.Ctx, &types.MsgEditTrade{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Field:       types.TradeFieldDuration,
		Value:       900,
	})
	s.Require().NoError(err)

	c = s.stored()
	s.Require().Equal(uint64(75), c.TradeFee)
	s.Require().Equal(int64(900), c.TradeDuration)
}

func (s *KeeperTestSuite) TestEditTradeValidation() {
	_, err := s.msgServer.EditTrade(s.env.Ctx, &types.MsgEditTrade{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Field:       types.TradeFieldFee,
		Value:       75,
	})
	s.Require().ErrorIs(err, types.ErrModuleNotActive)

	_, err = s.msgServer.EditTrade(s.env.Ctx, &types.MsgEditTrade{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Field:       types.TradeField(7),
		Value:       75,
	})
	s.Require().ErrorIs(err, types.ErrInvalidEditKind)

	_, err = s.msgServer.AddTrade(s.env.Ctx, &types.MsgAddTrade{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Fee:         0,
		Duration:    600,
	})
	s.Require().ErrorIs(err, types.ErrZeroValue)
}

func (s *KeeperTestSuite) TestDurationsAreBounded() {
	_, err := s.msgServer.AddTrade(s.env.Ctx, &types.MsgAddTrade{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Fee:         50,
		Duration:    types.MaxDuration + 1,
	})
	s.Require().ErrorIs(err, types.ErrInvalidDuration)
	s.Require().False(s.stored().IsTrade)

	s.env.EnableTrade(s.T(), s.collection, 50, types.MaxDuration)
	_, err = s.msgServer.EditTrade(s.env.Ctx, &types.MsgEditTrade{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Field:       types.TradeFieldDuration,
		Value:       uint64(types.MaxDuration) + 1,
	})
	s.Require().ErrorIs(err, types.ErrInvalidDuration)
	s.Require().Equal(types.MaxDuration, s.stored().TradeDuration)

	_, err = s.msgServer.AddVoting(s.env.Ctx, &types.MsgAddVoting{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		MemberCount: 10,
		Duration:    1<<63 - 1,
		Quorum:      1,
	})
	s.Require().ErrorIs(err, types.ErrInvalidDuration)

	s.env.EnableVoting(s.T(), s.collection, 10, types.MaxDuration, 1)
	_, err = s.msgServer.EditVoting(s.env.Ctx, &types.MsgEditVoting{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Field:       types.VotingFieldDuration,
		Value:       uint64(types.MaxDuration) + 1,
	})
	s.Require().ErrorIs(err, types.ErrInvalidDuration)
	s.Require().Equal(types.MaxDuration, s.stored().VoteDuration)
}

func (s *KeeperTestSuite) TestMemberCountIsBounded() {
	_, err := s.msgServer.AddVoting(s.env.Ctx, &types.MsgAddVoting{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		MemberCount: 4_294_967_295,
		Duration:    600,
		Quorum:      1,
	})
	s.Require().ErrorIs(err, types.ErrInvalidMemberCount)
	s.Require().False(s.stored().IsVoting)

	s.env.EnableVoting(s.T(), s.collection, types.MaxMemberCount, 600, 1)
	_, err = s.msgServer.EditVoting(s.env.Ctx, &types.MsgEditVoting{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Field:       types.VotingFieldCount,
		Value:       types.MaxMemberCount + 1,
	})
	s.Require().ErrorIs(err, types.ErrInvalidMemberCount)
	s.Require().Equal(types.MaxMemberCount, s.stored().MemberCount)
}

func (s *KeeperTestSuite) TestVotingConfiguration() {
	_, err := s.msgServer.AddVoting(s.env.Ctx, &types.MsgAddVoting{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		MemberCount: 10,
		Duration:    600,
		Quorum:      11,
	})
	s.Require().ErrorIs(err, types.ErrInvalidQuorum)

	s.env.EnableVoting(s.T(), s.collection, 10, 600, 5)

	// shrinking the member count below the quorum is rejected as a whole
	_, err = s.msgServer.EditVoting(s.env.Ctx, &types.MsgEditVoting{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Field:       types.VotingFieldCount,
		Value:       4,
	})
	s.Require().ErrorIs(err, types.ErrInvalidQuorum)
	s.Require().Equal(uint64(10), s.stored().MemberCount)

	_, err = s.msgServer.EditVoting(s.env.Ctx, &types.MsgEditVoting{
		Owner:       s.owner(),
		VerifiedKey: s.collection.VerifiedKey,
		Field:       types.VotingFieldQuorum,
		Value:       7,
	})
	s.Require().NoError(err)
	s.Require().Equal(uint64(7), s.stored().Quorum)
}

func (s *KeeperTestSuite) TestOnlyUpdateAuthorityEdits() {
	stranger := sample.AccAddress()

	_, err := s.msgServer.AddTrade(s.env.Ctx, &types.MsgAddTrade{
		Owner:       stranger,
		VerifiedKey: s.collection.VerifiedKey,
		Fee:         50,
		Duration:    600,
	})
	s.Require().ErrorIs(err, types.ErrNotUpdateAuthority)

	_, err = s.msgServer.AttachRewardAsset(s.env.Ctx, &types.MsgAttachRewardAsset{
		Owner:       stranger,
		VerifiedKey: s.collection.VerifiedKey,
		Denom:       "reward/breeez",
	})
	s.Require().ErrorIs(err, types.ErrNotUpdateAuthority)
	s.Require().False(s.stored().IsTrade)
}

func (s *KeeperTestSuite) TestUpdateParams() {
	params := types.NewParams("uother", 6)

	_, err := s.msgServer.UpdateParams(s.env.Ctx, &types.MsgUpdateParams{Authority: sample.AccAddress(), Params: params})
	s.Require().ErrorIs(err, types.ErrInvalidSigner)

	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()
	s.Require().Equal(authority, s.env.Registry.GetAuthority())
	_, err = s.msgServer.UpdateParams(s.env.Ctx, &types.MsgUpdateParams{Authority: authority, Params: params})
	s.Require().NoError(err)
	s.Require().Equal(params, s.env.Registry.GetParams(s.env.Ctx))
}

func (s *KeeperTestSuite) TestGenesisRoundTrip() {
	s.env.EnableTrade(s.T(), s.collection, 50, 600)
	s.env.EnableStaking(s.T(), &s.collection, 10)

	exported := registrymodule.ExportGenesis(s.env.Ctx, s.env.Registry)
	s.Require().Len(exported.Collections, 1)
	s.Require().NoError(exported.Validate())

	fresh := testkeeper.NewEnv(s.T())
	registrymodule.InitGenesis(fresh.Ctx, fresh.Registry, *exported)
	c, found := fresh.Registry.GetCollectionByKey(fresh.Ctx, s.collection.VerifiedKey)
	s.Require().True(found)
	s.Require().True(c.IsTrade)
	s.Require().Equal(s.collection.RewardDenom, c.RewardDenom)
}
