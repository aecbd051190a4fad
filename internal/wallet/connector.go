package wallet

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -package mockwallet -source=connector.go -destination=mock/mockwallet.go *

// ConnectRequest carries user input for connectors that need it.
type ConnectRequest struct {
	// Address is the account to watch; used by the watch-only connector.
	Address string
}

// Account is the result of a successful connect.
type Account struct {
	Address common.Address
	ChainID int64
}

// Connector is a wallet provider.
type Connector interface {
	// UID identifies the connector within a session.
	UID() string
	// Name is shown on the connect button.
	Name() string
	// Connect asks the provider for an account and its current network.
	Connect(ctx context.Context, req ConnectRequest) (Account, error)
	// SwitchChain asks the provider to change network and returns the network it is on afterwards.
	SwitchChain(ctx context.Context, chainID int64) (int64, error)
	// ChainID reports the network the provider is on now.
	ChainID(ctx context.Context) (int64, error)
	// Disconnect releases the connector's local state. The provider keeps the
	// permissions it granted, since other sessions may share it.
	Disconnect(ctx context.Context) error
}
