package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgRecoveryGenerated MessageType = "recovery_generated"
	MsgRecoveryFailed    MessageType = "recovery_failed"
	MsgProviderSwitched  MessageType = "provider_switched"
	MsgError             MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for the ops feed
type Hub struct {
	// Disruption -> watcher connections
	watchers map[string]map[*Connection]bool

	// Connections subscribed to every event
	global map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	DisruptionID string // Empty for global subscribers
	Send         chan []byte
	Hub          *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	DisruptionID string // Empty means global subscribers only
	Message      *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		watchers:   make(map[string]map[*Connection]bool),
		global:     make(map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if conn.DisruptionID == "" {
				h.global[conn] = true
				log.Printf("Ops subscriber connected")
			} else {
				if h.watchers[conn.DisruptionID] == nil {
					h.watchers[conn.DisruptionID] = make(map[*Connection]bool)
				}
				h.watchers[conn.DisruptionID][conn] = true
				log.Printf("Watcher connected for disruption %s", conn.DisruptionID)
			}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conn.DisruptionID == "" {
				if h.global[conn] {
					delete(h.global, conn)
					close(conn.Send)
					log.Printf("Ops subscriber disconnected")
				}
			} else {
				if conns, ok := h.watchers[conn.DisruptionID]; ok && conns[conn] {
					delete(conns, conn)
					close(conn.Send)
					if len(conns) == 0 {
						delete(h.watchers, conn.DisruptionID)
					}
					log.Printf("Watcher disconnected for disruption %s", conn.DisruptionID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if msg.DisruptionID != "" {
				for conn := range h.watchers[msg.DisruptionID] {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			} else {
				for conn := range h.global {
					select {
					case conn.Send <- data:
					default:
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToWatchers sends a message to connections watching a disruption (implements service.Broadcaster)
func (h *Hub) BroadcastToWatchers(disruptionID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		DisruptionID: disruptionID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// BroadcastToAll sends a message to every global subscriber (implements service.Broadcaster)
func (h *Hub) BroadcastToAll(msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
