package sse

import (
	"sync"
)

// TopicAll receives every published event regardless of employee.
const TopicAll = "*"

// Event represents an SSE event to be sent to subscribers
type Event struct {
	EmployeeIDs []string
	Event       string
	Data        interface{}
}

// Hub manages SSE subscribers and event broadcasting.
// Subscribers listen on a topic: an employee ID or TopicAll.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
	bufferSize  int
	closed      bool
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
		bufferSize:  10,
	}
}

// Subscribe registers a new subscriber for a topic and returns the event channel and cleanup function.
// On a closed hub the returned channel is already closed.
func (h *Hub) Subscribe(topic string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.bufferSize)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	if h.subscribers[topic] == nil {
		h.subscribers[topic] = make(map[chan Event]struct{})
	}
	h.subscribers[topic][ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subscribers[topic][ch]; !ok {
				return // already closed by Close
			}
			delete(h.subscribers[topic], ch)
			close(ch)
			if len(h.subscribers[topic]) == 0 {
				delete(h.subscribers, topic)
			}
		})
	}

	return ch, cleanup
}

// Publish delivers the event to TopicAll subscribers and once to each
// employee topic named in EmployeeIDs.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	h.send(TopicAll, event)
	seen := make(map[string]struct{}, len(event.EmployeeIDs))
	for _, id := range event.EmployeeIDs {
		if _, dup := seen[id]; dup || id == "" || id == TopicAll {
			continue
		}
		seen[id] = struct{}{}
		h.send(id, event)
	}
}

// Close closes every subscriber channel so streaming handlers return.
// Later subscriptions get a closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for topic, subs := range h.subscribers {
		for ch := range subs {
			close(ch)
		}
		delete(h.subscribers, topic)
	}
	h.closed = true
}

// send must be called with h.mu held.
func (h *Hub) send(topic string, event Event) {
	for ch := range h.subscribers[topic] {
		select {
		case ch <- event:
		default:
			// Skip if channel is full (non-blocking to prevent deadlock)
		}
	}
}

// SubscriberCount returns the number of active subscribers for a topic
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[topic])
}

// TotalSubscribers returns the total number of active subscribers across all topics
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
