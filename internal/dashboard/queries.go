package dashboard

import (
	"context"
	"creditscore/internal/creditscore"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

type queryEntry struct {
	query *creditscore.Query
	shown bool
}

// queryStore keeps the score read of each session. A read is restarted when
// the address changes or once its result has been rendered.
type queryStore struct {
	reader creditscore.Reader

	mu      sync.Mutex
	entries map[string]*queryEntry
}

func newQueryStore(reader creditscore.Reader) *queryStore {
	return &queryStore{
		reader:  reader,
		entries: make(map[string]*queryEntry),
	}
}

// get returns the read for the session, starting one when needed. The read
// outlives the request that started it.
func (s *queryStore) get(ctx context.Context, sessionID string, account *common.Address) *creditscore.Query {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[sessionID]; ok {
		if e.query.For(account) && !e.shown {
			return e.query
		}
		e.query.Cancel()
	}

	q := s.reader.Start(context.WithoutCancel(ctx), account)
	s.entries[sessionID] = &queryEntry{query: q}

	return q
}

// markShown records that the finished result of q was rendered.
func (s *queryStore) markShown(sessionID string, q *creditscore.Query) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[sessionID]; ok && e.query == q {
		e.shown = true
	}
}

// drop cancels and forgets the read of the session.
func (s *queryStore) drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[sessionID]; ok {
		e.query.Cancel()
		delete(s.entries, sessionID)
	}
}

func (s *queryStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
