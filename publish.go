package sweep

import "sync"

// Candidate is a pair of bodies whose boxes overlap on every tracked axis.
type Candidate struct {
	A, B Body
}

// Publisher receives the candidate list of every step that produced one.
// The slice is reused by the next step; copy it to keep it.
type Publisher interface {
	Publish(channel string, pairs []Candidate)
}

type PublisherFunc func(channel string, pairs []Candidate)

func (f PublisherFunc) Publish(channel string, pairs []Candidate) {
	f(channel, pairs)
}

// Hub fans candidate lists out to the handlers subscribed to a channel.
type Hub struct {
	mu       sync.RWMutex // only protects handler registration
	handlers map[string][]func([]Candidate)
}

func NewHub() *Hub {
	return &Hub{
		handlers: make(map[string][]func([]Candidate)),
	}
}

func (h *Hub) Subscribe(channel string, fn func([]Candidate)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[channel] = append(h.handlers[channel], fn)
}

func (h *Hub) Publish(channel string, pairs []Candidate) {
	h.mu.RLock()
	handlers := h.handlers[channel]
	h.mu.RUnlock()
	for _, fn := range handlers {
		fn(pairs)
	}
}
