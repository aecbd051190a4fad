package wallet

import (
	"context"
	"creditscore/pkg/logger"
	"creditscore/pkg/serrors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrSuperseded is returned when a disconnect or a newer action overtook a
// pending provider call. The late result is discarded.
var ErrSuperseded = serrors.With(serrors.ErrConflict, "wallet action was superseded")

// Session is the wallet connection of one dashboard session. It is safe for
// concurrent use; provider calls run without holding the lock.
type Session struct {
	id         string
	connectors []Connector
	target     int64

	mu       sync.Mutex
	state    State
	active   Connector
	gen      uint64
	cancel   context.CancelFunc
	lastSeen time.Time

	onTransition func(ctx context.Context, from, to Status)
}

// NewSession returns a disconnected session expecting the target network.
func NewSession(id string, target int64, connectors []Connector) *Session {
	return &Session{
		id:         id,
		connectors: connectors,
		target:     target,
		state:      State{Status: StatusDisconnected, TargetChainID: target},
		lastSeen:   time.Now(),
	}
}

func (s *Session) ID() string { return s.id }

// Connectors lists the connectors in the order they are offered.
func (s *Session) Connectors() []Connector {
	return s.connectors
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.clone()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastSeen
}

// setState must be called with the lock held.
func (s *Session) setState(ctx context.Context, next State) {
	from := s.state.Status
	s.state = next
	if s.onTransition != nil && from != next.Status {
		s.onTransition(ctx, from, next.Status)
	}
}

// begin starts a provider call. It must be called with the lock held.
func (s *Session) begin(ctx context.Context) (context.Context, uint64) {
	s.gen++
	opCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	return opCtx, s.gen
}

// finish reports whether the call started at gen is still current. It must
// be called with the lock held.
func (s *Session) finish(gen uint64) bool {
	if gen != s.gen {
		return false
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	return true
}

func (s *Session) connector(uid string) (Connector, error) {
	if len(s.connectors) == 0 {
		return nil, serrors.With(serrors.ErrUnavailable, "no wallet connectors available")
	}
	if uid == "" {
		return s.connectors[0], nil
	}
	for _, c := range s.connectors {
		if c.UID() == uid {
			return c, nil
		}
	}

	return nil, serrors.With(serrors.ErrBadRequest, "unknown wallet connector %q", uid)
}

// Connect connects the wallet using the connector with the given UID, or the
// first connector when uid is empty. A failed attempt leaves the session in
// StatusError and is not retried.
func (s *Session) Connect(ctx context.Context, uid string, req ConnectRequest) (State, error) {
	s.mu.Lock()
	if s.state.IsConnecting() {
		s.mu.Unlock()

		return s.State(), serrors.With(serrors.ErrConflict, "a connection is already pending")
	}
	if s.state.IsConnected() {
		s.mu.Unlock()

		return s.State(), serrors.With(serrors.ErrConflict, "wallet is already connected")
	}
	c, err := s.connector(uid)
	if err != nil {
		s.mu.Unlock()

		return s.State(), err
	}

	opCtx, gen := s.begin(ctx)
	s.setState(ctx, State{Status: StatusConnecting, TargetChainID: s.target, Connector: c.UID()})
	s.mu.Unlock()

	acc, err := c.Connect(opCtx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.finish(gen) {
		return s.state.clone(), ErrSuperseded
	}

	if err != nil {
		logger.Error(ctx, "could not connect wallet", zap.String("connector", c.UID()), zap.Error(err))
		s.setState(ctx, State{Status: StatusError, TargetChainID: s.target, Err: err})

		return s.state.clone(), err
	}

	s.active = c
	s.setState(ctx, State{
		Status:        connectedStatus(acc.ChainID, s.target),
		Address:       &acc.Address,
		ChainID:       acc.ChainID,
		TargetChainID: s.target,
		Connector:     c.UID(),
	})

	return s.state.clone(), nil
}

// SwitchNetwork asks the wallet to move to the target network. When the
// provider refuses, the previous state is kept with Err set.
func (s *Session) SwitchNetwork(ctx context.Context) (State, error) {
	s.mu.Lock()
	if s.state.IsSwitching() {
		s.mu.Unlock()

		return s.State(), serrors.With(serrors.ErrConflict, "a network switch is already pending")
	}
	if !s.state.IsConnected() || s.active == nil {
		s.mu.Unlock()

		return s.State(), serrors.With(serrors.ErrConflict, "wallet is not connected")
	}
	if s.state.ChainID == s.target {
		defer s.mu.Unlock()

		return s.state.clone(), nil
	}

	prev := s.state
	prev.Err = nil
	c := s.active
	opCtx, gen := s.begin(ctx)
	switching := prev
	switching.Status = StatusSwitching
	s.setState(ctx, switching)
	s.mu.Unlock()

	chainID, err := c.SwitchChain(opCtx, s.target)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.finish(gen) {
		return s.state.clone(), ErrSuperseded
	}

	if err != nil {
		logger.Error(ctx, "could not switch network",
			zap.Int64("target_chain_id", s.target), zap.Error(err))
		prev.Err = err
		s.setState(ctx, prev)

		return s.state.clone(), err
	}

	next := prev
	next.ChainID = chainID
	next.Status = connectedStatus(chainID, s.target)
	s.setState(ctx, next)

	return s.state.clone(), nil
}

// Refresh re-reads the network of a connected wallet and re-derives READY or
// WRONG_NETWORK from it. The provider may be shared with other sessions that
// moved it to another network. Pending actions are left alone. When the
// provider cannot be reached the previous state is kept and the error returned.
func (s *Session) Refresh(ctx context.Context) (State, error) {
	s.mu.Lock()
	status := s.state.Status
	if (status != StatusReady && status != StatusWrongNetwork) || s.active == nil {
		defer s.mu.Unlock()

		return s.state.clone(), nil
	}
	c := s.active
	gen := s.gen
	s.mu.Unlock()

	chainID, err := c.ChainID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.state.Status != status {
		return s.state.clone(), nil
	}
	if err != nil {
		logger.Warn(ctx, "could not refresh wallet network", zap.String("connector", c.UID()), zap.Error(err))

		return s.state.clone(), err
	}

	next := s.state
	next.ChainID = chainID
	next.Status = connectedStatus(chainID, s.target)
	s.setState(ctx, next)

	return s.state.clone(), nil
}

// Disconnect ends the session. Pending actions are cancelled and their
// results discarded. Provider errors are logged only; the session always ends
// disconnected.
func (s *Session) Disconnect(ctx context.Context) State {
	s.mu.Lock()
	c := s.active
	s.gen++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.active = nil
	s.setState(ctx, State{Status: StatusDisconnected, TargetChainID: s.target})
	state := s.state.clone()
	s.mu.Unlock()

	if c != nil {
		if err := c.Disconnect(ctx); err != nil {
			logger.Warn(ctx, "wallet provider disconnect failed", zap.String("connector", c.UID()), zap.Error(err))
		}
	}

	return state
}
