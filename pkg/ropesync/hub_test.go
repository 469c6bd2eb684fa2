package ropesync

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandrope/rope/pkg/rope"
)

func dialHub(t *testing.T, hub *Hub) (*websocket.Conn, func()) {
	t.Helper()
	srv := httptest.NewServer(hub)
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func TestNewSubscriberReceivesInitialSnapshot(t *testing.T) {
	hub := NewHub()
	hub.Publish(rope.FromString(nil, "hello"))

	conn, cleanup := dialHub(t, hub)
	defer cleanup()

	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(payload))
}

func TestSubscriberReceivesSubsequentPublishes(t *testing.T) {
	hub := NewHub()
	conn, cleanup := dialHub(t, hub)
	defer cleanup()

	_, _, err := conn.ReadMessage()
	require.NoError(t, err)

	hub.Publish(rope.FromString(nil, "second"))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "second", string(payload))
}

func TestDropIsIdempotentUnderConcurrentTriggers(t *testing.T) {
	hub := NewHub()
	sub := &subscriber{outbox: make(chan []byte)}
	hub.subscribers[sub] = struct{}{}

	assert.NotPanics(t, func() {
		hub.drop(sub)
		hub.drop(sub)
	})
}
