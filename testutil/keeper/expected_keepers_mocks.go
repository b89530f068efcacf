// Hand-written gomock mocks of the keepers the breeez modules expect, laid out the way mockgen
// lays out its output: one Mock type and one MockRecorder per interface.
//
// Sources:
//   - x/stake/types/expected_keepers.go: CustodyKeeper
//   - x/custody/types/expected_keepers.go: BankKeeper (MockCustodyBankKeeper)

package keeper

import (
	context "context"
	reflect "reflect"

	types "github.com/cosmos/cosmos-sdk/types"
	gomock "go.uber.org/mock/gomock"
)

// MockCustodyKeeper is a mock of CustodyKeeper interface.
type MockCustodyKeeper struct {
	ctrl     *gomock.Controller
	recorder *MockCustodyKeeperMockRecorder
	isgomock struct{}
}

// MockCustodyKeeperMockRecorder is the mock recorder for MockCustodyKeeper.
type MockCustodyKeeperMockRecorder struct {
	mock *MockCustodyKeeper
}

// NewMockCustodyKeeper creates a new mock instance.
func NewMockCustodyKeeper(ctrl *gomock.Controller) *MockCustodyKeeper {
	mock := &MockCustodyKeeper{ctrl: ctrl}
	mock.recorder = &MockCustodyKeeperMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCustodyKeeper) EXPECT() *MockCustodyKeeperMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockCustodyKeeper) Close(ctx context.Context, account, refundTo types.AccAddress, memo string) (types.Coins, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close", ctx, account, refundTo, memo)
	ret0, _ := ret[0].(types.Coins)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Close indicates an expected call of Close.
func (mr *MockCustodyKeeperMockRecorder) Close(ctx, account, refundTo, memo any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockCustodyKeeper)(nil).Close), ctx, account, refundTo, memo)
}

// Mint mocks base method.
func (m *MockCustodyKeeper) Mint(ctx context.Context, moduleName string, recipient types.AccAddress, amt types.Coins, memo string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Mint", ctx, moduleName, recipient, amt, memo)
	ret0, _ := ret[0].(error)
	return ret0
}

// Mint indicates an expected call of Mint.
func (mr *MockCustodyKeeperMockRecorder) Mint(ctx, moduleName, recipient, amt, memo any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Mint", reflect.TypeOf((*MockCustodyKeeper)(nil).Mint), ctx, moduleName, recipient, amt, memo)
}

// Transfer mocks base method.
func (m *MockCustodyKeeper) Transfer(ctx context.Context, fromAddr, toAddr types.AccAddress, amt types.Coins, memo string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transfer", ctx, fromAddr, toAddr, amt, memo)
	ret0, _ := ret[0].(error)
	return ret0
}

// Transfer indicates an expected call of Transfer.
func (mr *MockCustodyKeeperMockRecorder) Transfer(ctx, fromAddr, toAddr, amt, memo any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transfer", reflect.TypeOf((*MockCustodyKeeper)(nil).Transfer), ctx, fromAddr, toAddr, amt, memo)
}

// MockCustodyBankKeeper is a mock of BankKeeper interface.
type MockCustodyBankKeeper struct {
	ctrl     *gomock.Controller
	recorder *MockCustodyBankKeeperMockRecorder
	isgomock struct{}
}

// MockCustodyBankKeeperMockRecorder is the mock recorder for MockCustodyBankKeeper.
type MockCustodyBankKeeperMockRecorder struct {
	mock *MockCustodyBankKeeper
}

// NewMockCustodyBankKeeper creates a new mock instance.
func NewMockCustodyBankKeeper(ctrl *gomock.Controller) *MockCustodyBankKeeper {
	mock := &MockCustodyBankKeeper{ctrl: ctrl}
	mock.recorder = &MockCustodyBankKeeperMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCustodyBankKeeper) EXPECT() *MockCustodyBankKeeperMockRecorder {
	return m.recorder
}

// GetAllBalances mocks base method.
func (m *MockCustodyBankKeeper) GetAllBalances(ctx context.Context, addr types.AccAddress) types.Coins {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllBalances", ctx, addr)
	ret0, _ := ret[0].(types.Coins)
	return ret0
}

// GetAllBalances indicates an expected call of GetAllBalances.
func (mr *MockCustodyBankKeeperMockRecorder) GetAllBalances(ctx, addr any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllBalances", reflect.TypeOf((*MockCustodyBankKeeper)(nil).GetAllBalances), ctx, addr)
}

// MintCoins mocks base method.
func (m *MockCustodyBankKeeper) MintCoins(ctx context.Context, moduleName string, amt types.Coins) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MintCoins", ctx, moduleName, amt)
	ret0, _ := ret[0].(error)
	return ret0
}

// MintCoins indicates an expected call of MintCoins.
func (mr *MockCustodyBankKeeperMockRecorder) MintCoins(ctx, moduleName, amt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MintCoins", reflect.TypeOf((*MockCustodyBankKeeper)(nil).MintCoins), ctx, moduleName, amt)
}

// SendCoins mocks base method.
func (m *MockCustodyBankKeeper) SendCoins(ctx context.Context, fromAddr, toAddr types.AccAddress, amt types.Coins) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendCoins", ctx, fromAddr, toAddr, amt)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendCoins indicates an expected call of SendCoins.
func (mr *MockCustodyBankKeeperMockRecorder) SendCoins(ctx, fromAddr, toAddr, amt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendCoins", reflect.TypeOf((*MockCustodyBankKeeper)(nil).SendCoins), ctx, fromAddr, toAddr, amt)
}

// SendCoinsFromModuleToAccount mocks base method.
func (m *MockCustodyBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr types.AccAddress, amt types.Coins) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendCoinsFromModuleToAccount", ctx, senderModule, recipientAddr, amt)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendCoinsFromModuleToAccount indicates an expected call of SendCoinsFromModuleToAccount.
func (mr *MockCustodyBankKeeperMockRecorder) SendCoinsFromModuleToAccount(ctx, senderModule, recipientAddr, amt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendCoinsFromModuleToAccount", reflect.TypeOf((*MockCustodyBankKeeper)(nil).SendCoinsFromModuleToAccount), ctx, senderModule, recipientAddr, amt)
}

// SpendableCoins mocks base method.
func (m *MockCustodyBankKeeper) SpendableCoins(ctx context.Context, addr types.AccAddress) types.Coins {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SpendableCoins", ctx, addr)
	ret0, _ := ret[0].(types.Coins)
	return ret0
}

// SpendableCoins indicates an expected call of SpendableCoins.
func (mr *MockCustodyBankKeeperMockRecorder) SpendableCoins(ctx, addr any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SpendableCoins", reflect.TypeOf((*MockCustodyBankKeeper)(nil).SpendableCoins), ctx, addr)
}
