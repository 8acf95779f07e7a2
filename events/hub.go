package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"menu-digital/models"
)

// Event types
const (
	EventTableCreate       = "table_create"
	EventTableUpdate       = "table_update"
	EventTableDelete       = "table_delete"
	EventSessionOpen       = "session_open"
	EventSessionClose      = "session_close"
	EventReservationCreate = "reservation_create"
	EventOrderAttached     = "order_attached"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung client websocket (dashboard staff) yang ingin update
// meja tanpa menunggu interval polling. Snapshot polling tetap menjadi
// kontrak konsistensi; hub ini hanya jalur latensi rendah.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastTableCreate -> meja baru dibuat
func BroadcastTableCreate(table *models.Table) {
	broadcast(Message{Event: EventTableCreate, Data: table})
}

// BroadcastTableUpdate -> status/atribut meja berubah
func BroadcastTableUpdate(table *models.Table) {
	broadcast(Message{Event: EventTableUpdate, Data: table})
}

// BroadcastTableDelete -> meja dihapus
func BroadcastTableDelete(tableID uint) {
	broadcast(Message{
		Event: EventTableDelete,
		Data:  map[string]interface{}{"table_id": tableID},
	})
}

// BroadcastSessionOpen -> meja mulai occupied
func BroadcastSessionOpen(table *models.Table) {
	broadcast(Message{Event: EventSessionOpen, Data: table})
}

// BroadcastSessionClose -> meja kembali free
func BroadcastSessionClose(table *models.Table) {
	broadcast(Message{Event: EventSessionClose, Data: table})
}

// BroadcastReservationCreate -> meja di-reserve
func BroadcastReservationCreate(table *models.Table) {
	broadcast(Message{Event: EventReservationCreate, Data: table})
}

// BroadcastOrderAttached -> order baru ter-link ke meja
func BroadcastOrderAttached(tableID uint, order *models.Order) {
	broadcast(Message{
		Event: EventOrderAttached,
		Data: map[string]interface{}{
			"table_id": tableID,
			"order":    order,
		},
	})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			continue
		}
	}
}
