package stream

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Broadcaster fans simulation frames out to connected websocket clients.
// A single goroutine owns registration and writes; dead connections are
// dropped on the first failed write.
type Broadcaster struct {
	mu         sync.RWMutex
	clients    map[*websocket.Conn]bool
	upgrader   websocket.Upgrader
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	wg         sync.WaitGroup
}

const (
	broadcastQueue = 64
	writeDeadline  = 10 * time.Second
	enqueueTimeout = time.Second
)

// NewBroadcaster creates a broadcaster and starts its fan-out goroutine.
func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte, broadcastQueue),
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

// ClientCount reports the number of connected clients.
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// ServeHTTP upgrades the request to a websocket and registers the client.
// Inbound messages are read and discarded; a read error unregisters the
// connection.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	b.registerClient(conn)
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				b.unregisterClient(conn)
				return
			}
		}
	}()
}

// Broadcast queues data for delivery to all connected clients. It fails
// if the queue stays full for more than a second or the broadcaster is
// closed.
func (b *Broadcaster) Broadcast(data []byte) error {
	select {
	case b.broadcast <- data:
		return nil
	case <-b.done:
		return fmt.Errorf("broadcaster closed")
	case <-time.After(enqueueTimeout):
		return fmt.Errorf("broadcast queue full")
	}
}

func (b *Broadcaster) registerClient(conn *websocket.Conn) {
	select {
	case b.register <- conn:
	case <-b.done:
	}
}

func (b *Broadcaster) unregisterClient(conn *websocket.Conn) {
	select {
	case b.unregister <- conn:
	case <-b.done:
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

		case data := <-b.broadcast:
			b.mu.RLock()
			conns := make([]*websocket.Conn, 0, len(b.clients))
			for conn := range b.clients {
				conns = append(conns, conn)
			}
			b.mu.RUnlock()

			var dead []*websocket.Conn
			for _, conn := range conns {
				conn.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					dead = append(dead, conn)
					conn.Close()
				}
			}
			if len(dead) > 0 {
				b.mu.Lock()
				for _, conn := range dead {
					delete(b.clients, conn)
				}
				b.mu.Unlock()
			}
		}
	}
}

// Close disconnects all clients and stops the fan-out goroutine.
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
