// Package ropesync broadcasts immutable rope snapshots to read-only
// subscribers over WebSocket connections, the way a collaborative
// viewer (not editor) would watch a document change without being
// able to mutate it directly: every subscriber receives full snapshot
// bytes, never a diff or an operational-transform payload, since the
// rope itself already gives every snapshot cheap structural sharing
// with the one before it.
package ropesync

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/strandrope/rope/pkg/rope"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub holds the current document snapshot and the set of subscribers
// watching it. Publishing a new snapshot never blocks on a slow
// subscriber: each subscriber has its own bounded outbox, and a
// subscriber that falls behind is dropped rather than stalling
// everyone else.
type Hub struct {
	mu          sync.RWMutex
	current     *rope.Rope
	subscribers map[*subscriber]struct{}
}

type subscriber struct {
	outbox   chan []byte
	conn     *websocket.Conn
	dropOnce sync.Once
}

// NewHub returns a Hub publishing an initially empty document.
func NewHub() *Hub {
	return &Hub{
		current:     rope.New(nil),
		subscribers: make(map[*subscriber]struct{}),
	}
}

// Publish replaces the hub's current snapshot and broadcasts it to
// every live subscriber.
func (h *Hub) Publish(r *rope.Rope) {
	h.mu.Lock()
	h.current = r
	subs := make([]*subscriber, 0, len(h.subscribers))
	for s := range h.subscribers {
		subs = append(subs, s)
	}
	h.mu.Unlock()

	payload := r.Bytes()
	for _, s := range subs {
		select {
		case s.outbox <- payload:
		default:
			h.drop(s)
		}
	}
}

func (h *Hub) drop(s *subscriber) {
	s.dropOnce.Do(func() {
		h.mu.Lock()
		delete(h.subscribers, s)
		h.mu.Unlock()
		close(s.outbox)
	})
}

// ServeHTTP upgrades the request to a WebSocket connection, sends the
// current snapshot immediately, then streams every subsequent
// snapshot published via Publish until the connection closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ropesync: upgrade failed: %v", err)
		return
	}

	sub := &subscriber{outbox: make(chan []byte, 8), conn: conn}

	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	initial := h.current.Bytes()
	h.mu.Unlock()

	defer func() {
		h.drop(sub)
		conn.Close()
	}()

	if err := conn.WriteMessage(websocket.BinaryMessage, initial); err != nil {
		return
	}

	for payload := range sub.outbox {
		if err := conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
			return
		}
	}
}
