package websocket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is what subscribers receive when a ticket changes.
type Event struct {
	Type      string      `json:"type"` // created | status | assignee | feedback | deleted
	ProjectID uint        `json:"project_id"`
	TicketID  uint        `json:"ticket_id"`
	Payload   interface{} `json:"payload,omitempty"`
}

// Hub fans ticket events out to websocket subscribers keyed by project.
type Hub struct {
	mu   sync.RWMutex
	subs map[uint]map[*websocket.Conn]chan Event
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint]map[*websocket.Conn]chan Event)}
}

// Subscribe registers conn for a project and starts its writer goroutine.
func (h *Hub) Subscribe(projectID uint, conn *websocket.Conn) {
	ch := make(chan Event, 16)

	h.mu.Lock()
	if h.subs[projectID] == nil {
		h.subs[projectID] = make(map[*websocket.Conn]chan Event)
	}
	h.subs[projectID][conn] = ch
	h.mu.Unlock()

	go func() {
		for ev := range ch {
			if err := conn.WriteJSON(ev); err != nil {
				log.Printf("ws write failed, dropping subscriber: %v", err)
				h.Unsubscribe(projectID, conn)
				return
			}
		}
	}()
}

func (h *Hub) Unsubscribe(projectID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.subs[projectID]; ok {
		if ch, ok := conns[conn]; ok {
			close(ch)
			delete(conns, conn)
		}
		if len(conns) == 0 {
			delete(h.subs, projectID)
		}
	}
}

// Broadcast delivers ev to every subscriber of its project. Slow consumers
// whose buffers are full miss the event rather than blocking the caller.
func (h *Hub) Broadcast(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs[ev.ProjectID] {
		select {
		case ch <- ev:
		default:
		}
	}
}
