// Package hub fans dashboard messages out to websocket clients.
package hub

import (
	"encoding/json"
	"sync"

	"github.com/LeonardoGuevara/trilobot-examples/internal/log"
)

// MessageType indicates the websocket message format
type MessageType int

const (
	// JSONMessage is a JSON-encoded report
	JSONMessage MessageType = iota
	// BinaryMessage is a JPEG camera preview
	BinaryMessage
)

// Message is one broadcast payload
type Message struct {
	Type MessageType
	Data []byte
}

// Hub owns the client set. Only the Run goroutine touches it; everything
// else goes through channels.
type Hub struct {
	name string

	clients    map[*Client]bool
	broadcast  chan Message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once

	// Latest message, replayed to new clients
	last *Message

	mu    sync.RWMutex // Guards count for readers outside Run
	count int
}

// New creates a hub. Call Run in a goroutine before clients connect.
func New(name string) *Hub {
	return &Hub{
		name:       name,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run is the hub's main loop. It returns after Stop.
func (h *Hub) Run() {
	logger := log.With("hub", h.name)

	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			if h.last != nil {
				client.send <- *h.last
			}
			h.setCount(len(h.clients))
			logger.Debug("client connected", "clients", len(h.clients))

		case client := <-h.unregister:
			if h.clients[client] {
				delete(h.clients, client)
				close(client.send)
			}
			h.setCount(len(h.clients))
			logger.Debug("client disconnected", "clients", len(h.clients))

		case msg := <-h.broadcast:
			h.last = &msg
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Too slow to keep up with the loop
					delete(h.clients, client)
					close(client.send)
					logger.Warn("dropped slow client")
				}
			}
			h.setCount(len(h.clients))

		case <-h.done:
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.setCount(0)
			return
		}
	}
}

// Stop ends Run and closes every client.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// Broadcast queues a message for every client. It never blocks; when the
// queue is full the message is dropped.
func (h *Hub) Broadcast(msg Message) bool {
	select {
	case h.broadcast <- msg:
		return true
	default:
		return false
	}
}

// BroadcastJSON encodes v and broadcasts it.
func (h *Hub) BroadcastJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.Broadcast(Message{Type: JSONMessage, Data: data})
	return nil
}

// BroadcastBinary broadcasts a binary payload such as a JPEG frame.
func (h *Hub) BroadcastBinary(data []byte) {
	h.Broadcast(Message{Type: BinaryMessage, Data: data})
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

func (h *Hub) setCount(n int) {
	h.mu.Lock()
	h.count = n
	h.mu.Unlock()
}
