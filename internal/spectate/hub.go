// Package spectate broadcasts the simulation's read-only snapshot to
// websocket subscribers so a browser or headless observer can watch a run.
// Inputs never come from the network; this is a spectator feed.
package spectate

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Hub owns the live subscriber set. Publish fans the latest snapshot out to
// every subscriber and drops any connection that fails to keep up.
type Hub struct {
	mu       sync.Mutex
	subs     map[*subscriber]struct{}
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[*subscriber]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and registers it. The read loop exists
// only to detect the peer closing; inbound messages are discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectate: upgrade failed: %v", err)
		return
	}
	sub := &subscriber{conn: conn}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(sub)
}

// Publish marshals the snapshot once and writes it to every subscriber.
func (h *Hub) Publish(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("spectate: marshal snapshot: %v", err)
		return
	}
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subs))
	for s := range h.subs {
		subs = append(subs, s)
	}
	h.mu.Unlock()

	for _, s := range subs {
		s.mu.Lock()
		err := s.conn.WriteMessage(websocket.TextMessage, data)
		s.mu.Unlock()
		if err != nil {
			h.remove(s)
		}
	}
}

// Count returns the number of live subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) remove(s *subscriber) {
	h.mu.Lock()
	_, ok := h.subs[s]
	delete(h.subs, s)
	h.mu.Unlock()
	if ok {
		_ = s.conn.Close()
	}
}
