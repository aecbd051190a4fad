package wallet

import (
	"context"
	"creditscore/pkg/logger"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// ConnectorFactory returns the connectors offered to a new session.
type ConnectorFactory func() []Connector

// ManagerOptions configures a Manager.
type ManagerOptions struct {
	// TargetChainID is the network sessions are expected to be on.
	TargetChainID int64
	// IdleTTL evicts sessions not used for this long.
	IdleTTL time.Duration
	// SweepSchedule is the cron spec on which idle sessions are evicted.
	SweepSchedule string
	// Meter records state transitions; a no-op meter is used when nil.
	Meter metric.Meter
	// Now overrides the clock.
	Now func() time.Time
}

// Manager owns the wallet session of every dashboard session.
type Manager struct {
	factory ConnectorFactory
	opts    ManagerOptions

	transitions metric.Int64Counter

	mu       sync.Mutex
	sessions map[string]*Session
	onExpire []func(ctx context.Context, id string)
	cron     *cron.Cron
}

func NewManager(factory ConnectorFactory, opts ManagerOptions) (*Manager, error) {
	if opts.Meter == nil {
		opts.Meter = noop.NewMeterProvider().Meter("wallet")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	transitions, err := opts.Meter.Int64Counter("wallet.state.transitions",
		metric.WithDescription("Number of wallet session status transitions."))
	if err != nil {
		return nil, fmt.Errorf("could not create transitions counter: %w", err)
	}

	return &Manager{
		factory:     factory,
		opts:        opts,
		transitions: transitions,
		sessions:    make(map[string]*Session),
	}, nil
}

// Session returns the session with the given id, creating it when missing,
// and marks it as used.
func (m *Manager) Session(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		s = NewSession(id, m.opts.TargetChainID, m.factory())
		s.onTransition = m.recordTransition
		m.sessions[id] = s
	}
	s.touch(m.opts.Now())

	return s
}

// Lookup returns an existing session without marking it as used.
func (m *Manager) Lookup(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]

	return s, ok
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

// OnExpire registers fn to be called after a session is removed.
func (m *Manager) OnExpire(fn func(ctx context.Context, id string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onExpire = append(m.onExpire, fn)
}

// Remove disconnects and forgets the session.
func (m *Manager) Remove(ctx context.Context, id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	hooks := append([]func(context.Context, string){}, m.onExpire...)
	m.mu.Unlock()

	if !ok {
		return
	}
	s.Disconnect(ctx)
	for _, fn := range hooks {
		fn(ctx, id)
	}
}

// Sweep removes sessions idle for longer than IdleTTL and returns how many were removed.
func (m *Manager) Sweep(ctx context.Context) int {
	deadline := m.opts.Now().Add(-m.opts.IdleTTL)

	m.mu.Lock()
	var expired []string
	for id, s := range m.sessions {
		if s.idleSince().Before(deadline) {
			expired = append(expired, id)
		}
	}
	m.mu.Unlock()

	for _, id := range expired {
		m.Remove(ctx, id)
	}
	if len(expired) > 0 {
		logger.Debug(ctx, "evicted idle wallet sessions", zap.Int("count", len(expired)))
	}

	return len(expired)
}

// Start runs Sweep on the configured schedule until Stop is called.
func (m *Manager) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(m.opts.SweepSchedule, func() { m.Sweep(ctx) }); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", m.opts.SweepSchedule, err)
	}

	m.mu.Lock()
	m.cron = c
	m.mu.Unlock()
	c.Start()

	return nil
}

// Stop stops the sweeper and waits for a running sweep to finish.
func (m *Manager) Stop() {
	m.mu.Lock()
	c := m.cron
	m.cron = nil
	m.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}

func (m *Manager) recordTransition(ctx context.Context, from, to Status) {
	m.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", string(from)),
		attribute.String("to", string(to)),
	))
}
