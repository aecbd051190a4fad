package wallet

import (
	"context"
	"creditscore/pkg/serrors"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// EIP-1193 provider error codes.
const (
	codeUserRejected   = 4001
	codeUnauthorized   = 4100
	codeUnsupported    = 4200
	codeDisconnected   = 4900
	codeUnknownChain   = 4902
	codeRequestPending = -32002
)

// RPCCaller is the subset of *rpc.Client used by InjectedConnector.
type RPCCaller interface {
	CallContext(ctx context.Context, result any, method string, args ...any) error
}

// InjectedConnector talks to an EIP-1193 provider exposed over JSON-RPC.
type InjectedConnector struct {
	caller RPCCaller
}

var _ Connector = (*InjectedConnector)(nil)

func NewInjectedConnector(caller RPCCaller) *InjectedConnector {
	return &InjectedConnector{caller: caller}
}

// DialProvider connects to the provider bridge at url. The client is shared
// by the injected connectors of all sessions.
func DialProvider(ctx context.Context, url string) (*rpc.Client, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("could not dial wallet provider: %w", err)
	}

	return client, nil
}

func (c *InjectedConnector) UID() string { return "injected" }

func (c *InjectedConnector) Name() string { return "Browser Wallet" }

func (c *InjectedConnector) Connect(ctx context.Context, _ ConnectRequest) (Account, error) {
	var accounts []common.Address
	if err := c.caller.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return Account{}, providerError(err, "eth_requestAccounts")
	}
	if len(accounts) == 0 {
		return Account{}, serrors.With(serrors.ErrUnauthorized, "wallet did not authorize any account")
	}

	chainID, err := c.ChainID(ctx)
	if err != nil {
		return Account{}, err
	}

	return Account{Address: accounts[0], ChainID: chainID}, nil
}

func (c *InjectedConnector) SwitchChain(ctx context.Context, chainID int64) (int64, error) {
	param := map[string]string{"chainId": hexutil.EncodeUint64(uint64(chainID))} //nolint: gosec
	if err := c.caller.CallContext(ctx, nil, "wallet_switchEthereumChain", param); err != nil {
		return 0, providerError(err, "wallet_switchEthereumChain")
	}

	return c.ChainID(ctx)
}

// Disconnect does not call the provider: revoking its permissions would
// disconnect every session sharing it.
func (c *InjectedConnector) Disconnect(context.Context) error { return nil }

func (c *InjectedConnector) ChainID(ctx context.Context) (int64, error) {
	var id hexutil.Uint64
	if err := c.caller.CallContext(ctx, &id, "eth_chainId"); err != nil {
		return 0, providerError(err, "eth_chainId")
	}

	return int64(id), nil //nolint: gosec
}

// providerError maps provider failures to semantic errors.
func providerError(err error, method string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return serrors.Wrap(serrors.ErrTimeout, err, "%s timed out", method)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", method, err)
	}

	var rpcErr rpc.Error
	if !errors.As(err, &rpcErr) {
		return serrors.Wrap(serrors.ErrUnavailable, err, "wallet provider unreachable")
	}

	switch rpcErr.ErrorCode() {
	case codeUserRejected:
		return serrors.Wrap(serrors.ErrForbidden, err, "request rejected by user")
	case codeUnauthorized:
		return serrors.Wrap(serrors.ErrUnauthorized, err, "wallet has not authorized this site")
	case codeUnknownChain:
		return serrors.Wrap(serrors.ErrBadRequest, err, "network has not been added to the wallet")
	case codeUnsupported:
		return serrors.Wrap(serrors.ErrBadRequest, err, "wallet does not support %s", method)
	case codeRequestPending:
		return serrors.Wrap(serrors.ErrConflict, err, "a wallet request is already pending")
	case codeDisconnected:
		return serrors.Wrap(serrors.ErrUnavailable, err, "wallet is disconnected")
	default:
		return serrors.Wrap(serrors.ErrUnavailable, err, "%s failed", method)
	}
}
