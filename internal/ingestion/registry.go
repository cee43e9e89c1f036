package ingestion

import (
	"context"
	"sort"
	"sync"
	"time"
)

// stream tracks one event's active polling state
type stream struct {
	eventID   string
	startedAt time.Time
	cancel    context.CancelFunc
}

// Registry tracks which events currently have active social polling. It is an
// explicitly owned value injected into the poller service; nothing in this
// package keeps process-wide state.
type Registry struct {
	mu      sync.Mutex
	streams map[string]*stream
}

// NewRegistry creates an empty stream registry
func NewRegistry() *Registry {
	return &Registry{streams: make(map[string]*stream)}
}

// Register records an active stream for the event, replacing (and cancelling)
// any previous one.
func (r *Registry) Register(eventID string, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.streams[eventID]; ok {
		existing.cancel()
	}
	r.streams[eventID] = &stream{
		eventID:   eventID,
		startedAt: time.Now(),
		cancel:    cancel,
	}
}

// Deregister cancels and removes the event's stream, if any
func (r *Registry) Deregister(eventID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.streams[eventID]; ok {
		existing.cancel()
		delete(r.streams, eventID)
	}
}

// IsActive reports whether the event has a registered stream
func (r *Registry) IsActive(eventID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.streams[eventID]
	return ok
}

// ActiveEvents lists event ids with registered streams, sorted for stable output
func (r *Registry) ActiveEvents() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.streams))
	for id := range r.streams {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// StopAll cancels every registered stream
func (r *Registry) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.streams {
		s.cancel()
		delete(r.streams, id)
	}
}
