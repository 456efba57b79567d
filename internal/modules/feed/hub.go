package feed

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"carsharex/internal/domain"
)

// VehicleStatusEvent is the wire shape pushed to subscribed admin consoles.
type VehicleStatusEvent struct {
	VehicleID int64                `json:"vehicle_id"`
	Status    domain.VehicleStatus `json:"status"`
	At        time.Time            `json:"at"`
}

// Hub fans vehicle status transitions out to every connected employee.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(employeeID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[employeeID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[employeeID] = conn
}

func (h *Hub) Unregister(employeeID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[employeeID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, employeeID)
	}
}

// PublishVehicleStatus satisfies the booking module's StatusPublisher.
func (h *Hub) PublishVehicleStatus(vehicleID int64, status domain.VehicleStatus) {
	event := VehicleStatusEvent{
		VehicleID: vehicleID,
		Status:    status,
		At:        time.Now().UTC(),
	}

	h.mutex.RLock()
	subscribers := make(map[int64]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		subscribers[id] = conn
	}
	h.mutex.RUnlock()

	for id, conn := range subscribers {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}
