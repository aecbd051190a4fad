package wallet_test

import (
	"context"
	"creditscore/internal/wallet"
	"creditscore/pkg/serrors"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
)

type providerError struct {
	code int
	msg  string
}

func (e providerError) Error() string  { return e.msg }
func (e providerError) ErrorCode() int { return e.code }

// ethAPI serves the eth_ namespace of a fake EIP-1193 provider.
type ethAPI struct {
	accounts   []common.Address
	chainID    uint64
	connectErr error
}

func (e *ethAPI) RequestAccounts() ([]common.Address, error) {
	if e.connectErr != nil {
		return nil, e.connectErr
	}

	return e.accounts, nil
}

func (e *ethAPI) ChainId() hexutil.Uint64 { //nolint: revive
	return hexutil.Uint64(e.chainID)
}

type switchParams struct {
	ChainID hexutil.Uint64 `json:"chainId"`
}

// walletAPI serves the wallet_ namespace.
type walletAPI struct {
	eth       *ethAPI
	switchErr error
	revoked   bool
}

func (w *walletAPI) SwitchEthereumChain(p switchParams) error {
	if w.switchErr != nil {
		return w.switchErr
	}
	w.eth.chainID = uint64(p.ChainID)

	return nil
}

func (w *walletAPI) RevokePermissions(map[string]any) error {
	w.revoked = true

	return nil
}

func newProvider(t *testing.T, eth *ethAPI, w *walletAPI) *wallet.InjectedConnector {
	t.Helper()
	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("eth", eth))
	require.NoError(t, srv.RegisterName("wallet", w))
	client := rpc.DialInProc(srv)
	t.Cleanup(func() {
		client.Close()
		srv.Stop()
	})

	return wallet.NewInjectedConnector(client)
}

func TestInjectedConnector_Connect(t *testing.T) {
	eth := &ethAPI{accounts: []common.Address{testAddress}, chainID: 137}
	c := newProvider(t, eth, &walletAPI{eth: eth})

	acc, err := c.Connect(context.Background(), wallet.ConnectRequest{})
	require.NoError(t, err)
	require.Equal(t, testAddress, acc.Address)
	require.EqualValues(t, 137, acc.ChainID)
}

func TestInjectedConnector_ConnectErrors(t *testing.T) {
	tests := []struct {
		name string
		eth  *ethAPI
		kind serrors.Kind
	}{
		{
			name: "user rejected",
			eth:  &ethAPI{connectErr: providerError{code: 4001, msg: "User rejected the request."}},
			kind: serrors.ErrForbidden,
		},
		{
			name: "unauthorized",
			eth:  &ethAPI{connectErr: providerError{code: 4100, msg: "Unauthorized"}},
			kind: serrors.ErrUnauthorized,
		},
		{
			name: "pending request",
			eth:  &ethAPI{connectErr: providerError{code: -32002, msg: "Request already pending"}},
			kind: serrors.ErrConflict,
		},
		{
			name: "no accounts",
			eth:  &ethAPI{},
			kind: serrors.ErrUnauthorized,
		},
		{
			name: "plain error",
			eth:  &ethAPI{connectErr: errors.New("boom")},
			kind: serrors.ErrUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newProvider(t, tt.eth, &walletAPI{eth: tt.eth})

			_, err := c.Connect(context.Background(), wallet.ConnectRequest{})
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestInjectedConnector_SwitchChain(t *testing.T) {
	eth := &ethAPI{accounts: []common.Address{testAddress}, chainID: 137}
	c := newProvider(t, eth, &walletAPI{eth: eth})

	chainID, err := c.SwitchChain(context.Background(), 80001)
	require.NoError(t, err)
	require.EqualValues(t, 80001, chainID)
}

func TestInjectedConnector_SwitchChainUnknownNetwork(t *testing.T) {
	eth := &ethAPI{accounts: []common.Address{testAddress}, chainID: 137}
	w := &walletAPI{eth: eth, switchErr: providerError{code: 4902, msg: "Unrecognized chain ID"}}
	c := newProvider(t, eth, w)

	_, err := c.SwitchChain(context.Background(), 80001)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.EqualValues(t, 137, eth.chainID)
}

func TestInjectedConnector_DisconnectDoesNotCallProvider(t *testing.T) {
	c := wallet.NewInjectedConnector(callerFunc(func(_ context.Context, _ any, method string, _ ...any) error {
		t.Fatalf("unexpected provider call %s", method)

		return nil
	}))

	require.NoError(t, c.Disconnect(context.Background()))
}

func TestInjectedConnector_ChainID(t *testing.T) {
	eth := &ethAPI{chainID: 80001}
	c := newProvider(t, eth, &walletAPI{eth: eth})

	chainID, err := c.ChainID(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 80001, chainID)
}

func TestInjectedConnector_SharedProviderSessions(t *testing.T) {
	eth := &ethAPI{accounts: []common.Address{testAddress}, chainID: 80001}
	w := &walletAPI{eth: eth}
	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("eth", eth))
	require.NoError(t, srv.RegisterName("wallet", w))
	client := rpc.DialInProc(srv)
	t.Cleanup(func() {
		client.Close()
		srv.Stop()
	})

	m, err := wallet.NewManager(func() []wallet.Connector {
		return []wallet.Connector{wallet.NewInjectedConnector(client)}
	}, wallet.ManagerOptions{TargetChainID: mumbai})
	require.NoError(t, err)

	ctx := context.Background()
	a, b := m.Session("a"), m.Session("b")
	_, err = a.Connect(ctx, "", wallet.ConnectRequest{})
	require.NoError(t, err)
	_, err = b.Connect(ctx, "", wallet.ConnectRequest{})
	require.NoError(t, err)

	require.Equal(t, wallet.StatusDisconnected, a.Disconnect(ctx).Status)
	m.Remove(ctx, "a")
	require.False(t, w.revoked)

	st, err := b.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, wallet.StatusReady, st.Status)
	require.Equal(t, testAddress, *st.Address)

	// another session moves the shared provider away from the default network
	eth.chainID = 137
	st, err = b.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, wallet.StatusWrongNetwork, st.Status)
	require.EqualValues(t, 137, st.ChainID)
	require.False(t, st.IsCorrectNetwork())
}

func TestInjectedConnector_Unreachable(t *testing.T) {
	c := wallet.NewInjectedConnector(callerFunc(func(context.Context, any, string, ...any) error {
		return context.DeadlineExceeded
	}))

	_, err := c.Connect(context.Background(), wallet.ConnectRequest{})
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

type callerFunc func(ctx context.Context, result any, method string, args ...any) error

func (f callerFunc) CallContext(ctx context.Context, result any, method string, args ...any) error {
	return f(ctx, result, method, args...)
}
