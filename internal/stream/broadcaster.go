// Package stream fans growth events out to websocket subscribers.
package stream

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	eventBuffer   = 256
	writeDeadline = 10 * time.Second
	enqueueWait   = time.Second
)

// Broadcaster delivers stick events to all connected websocket clients. A
// single goroutine owns the client set; registration and delivery go
// through channels.
type Broadcaster struct {
	mu         sync.RWMutex
	clients    map[*websocket.Conn]bool
	upgrader   websocket.Upgrader
	events     chan StickEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	wg         sync.WaitGroup
}

// NewBroadcaster creates a broadcaster and starts its delivery goroutine.
func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		clients:    make(map[*websocket.Conn]bool),
		events:     make(chan StickEvent, eventBuffer),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	b.wg.Add(1)
	go b.run()
	return b
}

// Upgrader returns the websocket upgrader for HTTP handlers.
func (b *Broadcaster) Upgrader() websocket.Upgrader {
	return b.upgrader
}

// RegisterClient adds a websocket connection to the subscriber set.
func (b *Broadcaster) RegisterClient(conn *websocket.Conn) {
	select {
	case b.register <- conn:
	case <-b.done:
	}
}

// UnregisterClient removes a websocket connection from the subscriber set.
func (b *Broadcaster) UnregisterClient(conn *websocket.Conn) {
	select {
	case b.unregister <- conn:
	case <-b.done:
	}
}

// ClientCount reports the number of connected subscribers.
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Publish enqueues an event for delivery to all subscribers.
func (b *Broadcaster) Publish(ctx context.Context, event StickEvent) error {
	select {
	case b.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(enqueueWait):
		return fmt.Errorf("stream: event queue full")
	}
}

func (b *Broadcaster) run() {
	defer b.wg.Done()
	for {
		select {
		case <-b.done:
			return

		case conn := <-b.register:
			if conn == nil {
				continue
			}
			b.mu.Lock()
			b.clients[conn] = true
			b.mu.Unlock()

		case conn := <-b.unregister:
			if conn == nil {
				continue
			}
			b.mu.Lock()
			if _, ok := b.clients[conn]; ok {
				delete(b.clients, conn)
				conn.Close()
			}
			b.mu.Unlock()

		case event, ok := <-b.events:
			if !ok {
				return
			}
			payload, err := event.JSON()
			if err != nil {
				continue
			}
			b.deliver(payload)
		}
	}
}

// deliver writes one payload to every subscriber, dropping connections
// whose writes fail.
func (b *Broadcaster) deliver(payload []byte) {
	b.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(b.clients))
	for conn := range b.clients {
		conns = append(conns, conn)
	}
	b.mu.RUnlock()

	var toRemove []*websocket.Conn
	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			toRemove = append(toRemove, conn)
			conn.Close()
		}
	}

	if len(toRemove) > 0 {
		b.mu.Lock()
		for _, conn := range toRemove {
			delete(b.clients, conn)
		}
		b.mu.Unlock()
	}
}

// Close disconnects all subscribers and stops the delivery goroutine.
func (b *Broadcaster) Close() error {
	close(b.done)

	b.mu.Lock()
	for conn := range b.clients {
		conn.Close()
		delete(b.clients, conn)
	}
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}
