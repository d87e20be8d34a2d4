// Package session tracks active SSE connections by their server-generated
// identifiers so that posted protocol messages can be routed back to the
// stream that should carry the response.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// EventQueueSize bounds how many undelivered protocol responses a session
// buffers before further responses are dropped.
const EventQueueSize = 16

// Session associates one open SSE connection with a client conversation.
type Session struct {
	ID string

	events chan []byte

	mu     sync.Mutex
	closed bool
}

func newSession() *Session {
	return &Session{
		ID:     uuid.NewString(),
		events: make(chan []byte, EventQueueSize),
	}
}

// Events exposes the outbound event stream consumed by the SSE handler.
func (s *Session) Events() <-chan []byte {
	return s.events
}

// Send queues a protocol response for delivery over the SSE stream. It
// reports false when the session is closed or its queue is full; in either
// case the response is discarded, since the connection it belonged to is
// gone or not draining.
func (s *Session) Send(data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.events <- data:
		return true
	default:
		return false
	}
}

// Close marks the session dead and releases its event channel. Safe to call
// more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.events)
}

// Registry maps session identifiers to live sessions. All methods are safe
// for concurrent use; net/http serves each connection on its own goroutine,
// so the map is mutex-guarded.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Register allocates a session with a fresh unique identifier and inserts
// it into the registry.
func (r *Registry) Register() *Session {
	s := newSession()
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Lookup returns the session for the given identifier, if one is active.
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	return s, ok
}

// Remove deletes the session and closes it. Removing an unknown or
// already-removed identifier is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if ok {
		s.Close()
	}
}

// Count reports the number of active sessions, which equals the number of
// open SSE connections.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
