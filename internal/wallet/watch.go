package wallet

import (
	"context"
	"creditscore/pkg/chains"
	"creditscore/pkg/domain"
	"creditscore/pkg/serrors"
	"sync"
)

// WatchConnector follows an address typed in by the user. It cannot sign, so
// network switches only change which network the address is viewed on.
type WatchConnector struct {
	mu      sync.Mutex
	chainID int64
}

var _ Connector = (*WatchConnector)(nil)

// NewWatchConnector returns a connector that reports chainID after connect.
func NewWatchConnector(chainID int64) *WatchConnector {
	return &WatchConnector{chainID: chainID}
}

func (c *WatchConnector) UID() string { return "watch" }

func (c *WatchConnector) Name() string { return "Watch Address" }

func (c *WatchConnector) Connect(_ context.Context, req ConnectRequest) (Account, error) {
	addr, err := domain.ParseAddress(req.Address)
	if err != nil {
		return Account{}, err //nolint: wrapcheck
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return Account{Address: addr, ChainID: c.chainID}, nil
}

func (c *WatchConnector) SwitchChain(_ context.Context, chainID int64) (int64, error) {
	if !chains.IsSupported(chainID) {
		return 0, serrors.With(serrors.ErrBadRequest, "network %d is not supported", chainID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.chainID = chainID

	return chainID, nil
}

func (c *WatchConnector) ChainID(context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.chainID, nil
}

func (c *WatchConnector) Disconnect(context.Context) error { return nil }
