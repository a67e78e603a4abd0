package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// ChangeEvent tells a connected dashboard that the server-side ledger
// moved underneath it and which meal to refetch.
type ChangeEvent struct {
	Kind   string `json:"kind"`
	MealID uint   `json:"meal_id,omitempty"`
	FoodID uint   `json:"food_id,omitempty"`
	Date   string `json:"date,omitempty"`
}

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(userID uint, ev ChangeEvent) {
	msg, _ := json.Marshal(ev)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

var _hub *RealtimeHub

// InitRealtime wires the hub once at startup. EmitChange is a no-op until
// then, so services can publish without caring whether anyone listens.
func InitRealtime(h *RealtimeHub) {
	_hub = h
}

func EmitChange(userID uint, ev ChangeEvent) {
	if _hub == nil {
		return
	}
	_hub.Broadcast(userID, ev)
}
