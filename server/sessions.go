package server

import (
	"sync"
	"time"

	"github.com/existflow/ironplan/internal/logger"
	"github.com/existflow/ironplan/internal/session"
	"github.com/existflow/ironplan/internal/store"
	"github.com/google/uuid"
)

// sessionIdleTTL is how long an untouched session is kept
const sessionIdleTTL = 12 * time.Hour

// SessionResponse is a session snapshot plus the notifications raised by
// the request that produced it
type SessionResponse struct {
	ID uuid.UUID `json:"id"`
	session.Snapshot
	Notifications []session.Notification `json:"notifications"`
}

type entry struct {
	state    *session.State
	pending  []session.Notification
	lastSeen time.Time
}

// registry owns every session. A session's state is only read or changed
// while mu is held.
type registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
	catalog  *store.Catalog
	clock    func() time.Time
	now      func() time.Time
}

func newRegistry(catalog *store.Catalog, clock func() time.Time) *registry {
	return &registry{
		sessions: make(map[uuid.UUID]*entry),
		catalog:  catalog,
		clock:    clock,
		now:      time.Now,
	}
}

// create starts a session and returns its first snapshot
func (r *registry) create() SessionResponse {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictIdle()

	id := uuid.New()
	e := &entry{lastSeen: r.now()}
	e.state = session.New(r.catalog,
		session.WithClock(r.clock),
		session.WithNotifier(session.NotifierFunc(func(n session.Notification) {
			e.pending = append(e.pending, n)
		})))
	r.sessions[id] = e

	logger.Info("Session created", logger.F("session_id", id), logger.F("sessions", len(r.sessions)))
	return response(id, e)
}

func (r *registry) exists(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[id]
	return ok
}

// do runs fn on the session's state and returns the resulting snapshot
// with the notifications fn raised
func (r *registry) do(id uuid.UUID, fn func(*session.State)) (SessionResponse, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return SessionResponse{}, false
	}
	e.pending = nil
	e.lastSeen = r.now()
	if fn != nil {
		fn(e.state)
	}
	return response(id, e), true
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// evictIdle drops sessions unused for sessionIdleTTL. Caller holds r.mu.
func (r *registry) evictIdle() {
	cutoff := r.now().Add(-sessionIdleTTL)
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			logger.Debug("Session expired", logger.F("session_id", id))
		}
	}
}

func response(id uuid.UUID, e *entry) SessionResponse {
	notifications := e.pending
	if notifications == nil {
		notifications = []session.Notification{}
	}
	return SessionResponse{
		ID:            id,
		Snapshot:      e.state.Snapshot(),
		Notifications: notifications,
	}
}
