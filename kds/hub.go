// Package kds fans realtime change events out to attached displays: kitchen
// screens, the order history view, other terminals. Clients attach over
// websocket and receive every event the reconciliation layer processes.
package kds

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/cosmodumplings/cosmo-pos/state"
	"github.com/cosmodumplings/cosmo-pos/utils"
)

// Event names on the wire.
const (
	EventOrderChange    = "order_change"
	EventProductChange  = "product_change"
	EventStatusChange   = "status_change"
	EventCategoryChange = "category_change"
	EventScreenChange   = "screen_change"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type client struct {
	conn *websocket.Conn
	role string
}

type Hub struct {
	clients map[string]*client
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*client)}
}

// RegisterClient adds a connection and returns its id for unregistering.
func (h *Hub) RegisterClient(conn *websocket.Conn, role string) string {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	id := uuid.NewString()
	h.clients[id] = &client{conn: conn, role: role}
	return id
}

func (h *Hub) UnregisterClient(id string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if c, ok := h.clients[id]; ok {
		c.conn.Close()
		delete(h.clients, id)
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// BroadcastEvent forwards a reconciled change event to every client.
func (h *Hub) BroadcastEvent(event state.Event) {
	name := EventOrderChange
	switch event.Collection {
	case state.CollectionProducts:
		name = EventProductChange
	case state.CollectionOrderStatuses:
		name = EventStatusChange
	case state.CollectionCategories:
		name = EventCategoryChange
	case state.CollectionKitchenScreens:
		name = EventScreenChange
	}
	h.broadcast(Message{Event: name, Data: event})
}

func (h *Hub) broadcast(msg Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("error marshaling hub message: %v", err)
		return
	}

	for id, c := range h.clients {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			// A dead connection never recovers; drop it now instead of
			// re-logging the same failure on every broadcast until the read
			// loop notices.
			utils.ErrorLogger.Printf("error sending to client %s (%s), dropping: %v", id, c.role, err)
			c.conn.Close()
			delete(h.clients, id)
		}
	}
}
