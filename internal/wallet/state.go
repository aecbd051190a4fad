// Package wallet keeps the wallet connection of every dashboard session.
//
// A Session drives one wallet through connect, network switch and disconnect
// using a Connector. Its State is a tagged Status from which the derived flags
// are computed, so they cannot contradict each other.
package wallet

import (
	"github.com/ethereum/go-ethereum/common"
)

// Status is the connection status of a wallet session.
type Status string

const (
	StatusDisconnected Status = "DISCONNECTED"
	StatusConnecting   Status = "CONNECTING"
	StatusWrongNetwork Status = "WRONG_NETWORK"
	StatusSwitching    Status = "SWITCHING"
	StatusReady        Status = "READY"
	// StatusError is a disconnected status carrying the failure of the last connect.
	StatusError Status = "ERROR"
)

// State is a snapshot of a wallet session.
type State struct {
	Status Status
	// Address is set while connected.
	Address *common.Address
	// ChainID is the network the wallet is on; zero while disconnected.
	ChainID int64
	// TargetChainID is the network the dashboard expects.
	TargetChainID int64
	// Connector is the UID of the connector in use.
	Connector string
	// Err is the failure of the last action, if it failed.
	Err error
}

// IsConnected reports whether an account is available.
func (s State) IsConnected() bool {
	switch s.Status {
	case StatusWrongNetwork, StatusSwitching, StatusReady:
		return true
	default:
		return false
	}
}

func (s State) IsConnecting() bool { return s.Status == StatusConnecting }

func (s State) IsSwitching() bool { return s.Status == StatusSwitching }

// IsCorrectNetwork reports whether the wallet is on the expected network.
func (s State) IsCorrectNetwork() bool {
	return s.IsConnected() && s.ChainID == s.TargetChainID
}

func (s State) clone() State {
	if s.Address != nil {
		addr := *s.Address
		s.Address = &addr
	}

	return s
}

func connectedStatus(chainID, target int64) Status {
	if chainID == target {
		return StatusReady
	}

	return StatusWrongNetwork
}
