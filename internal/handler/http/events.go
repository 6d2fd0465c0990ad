package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/handler/http/middleware"
	"github.com/cmlabs-hris/zenith-hr/internal/pkg/sse"
	"github.com/cmlabs-hris/zenith-hr/internal/store"
)

type changeEvent struct {
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ID         string `json:"id,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
}

// NewChangePublisher forwards store changes to the SSE hub. Events carry
// identifiers only; clients refetch what they display.
func NewChangePublisher(hub *sse.Hub) store.Observer {
	return store.ObserverFunc(func(ctx context.Context, change store.Change) {
		employeeIDs := change.EmployeeIDs
		if change.EmployeeID != "" {
			employeeIDs = append([]string{change.EmployeeID}, employeeIDs...)
		}
		hub.Publish(sse.Event{
			EmployeeIDs: employeeIDs,
			Event:       change.Collection + "." + change.Action,
			Data: changeEvent{
				Collection: change.Collection,
				Action:     change.Action,
				ID:         change.ID,
				EmployeeID: change.EmployeeID,
			},
		})
	})
}

type EventHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	hub       *sse.Hub
	keepalive time.Duration
}

func NewEventHandler(hub *sse.Hub) EventHandler {
	return &eventHandlerImpl{
		hub:       hub,
		keepalive: 30 * time.Second,
	}
}

// Stream sends every store change, or with ?scope=me only changes that
// concern the current employee, payroll runs included. EventSource clients
// pass their session token as ?jwt=. The stream ends when the hub closes.
func (h *eventHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	topic := sse.TopicAll
	if r.URL.Query().Get("scope") == "me" {
		topic = middleware.EmployeeIDFromContext(r.Context())
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(topic)
	defer cleanup()

	connected, _ := json.Marshal(map[string]string{"status": "connected", "topic": topic})
	fmt.Fprintf(w, "event: connected\ndata: %s\n\n", connected)
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
