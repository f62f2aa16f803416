package notification

import (
	"sync"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"

	"github.com/gorilla/websocket"
)

// Hub fans newly created notifications out to the owning user's listeners:
// at most one websocket connection per user, plus any number of in-process
// subscriptions (feeds).
type Hub struct {
	mu    sync.RWMutex
	conns map[int64]*websocket.Conn
	subs  map[int64]map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[int64]*websocket.Conn),
		subs:  make(map[int64]map[*Subscription]struct{}),
	}
}

// Subscription is a handle onto the hub. Close is idempotent and always
// releases the slot, so repeated attach/detach cycles cannot leak listeners.
type Subscription struct {
	hub     *Hub
	userID  int64
	handler func(domain.Notification)
	once    sync.Once
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		if set, ok := s.hub.subs[s.userID]; ok {
			delete(set, s)
			if len(set) == 0 {
				delete(s.hub.subs, s.userID)
			}
		}
	})
}

func (h *Hub) Subscribe(userID int64, handler func(domain.Notification)) *Subscription {
	sub := &Subscription{hub: h, userID: userID, handler: handler}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[*Subscription]struct{})
	}
	h.subs[userID][sub] = struct{}{}
	return sub
}

// Register attaches a websocket connection for the user, replacing any
// previous one.
func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, exists := h.conns[userID]; exists && old != nil {
		_ = old.Close()
	}
	h.conns[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, exists := h.conns[userID]; exists {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.conns, userID)
	}
}

// Publish delivers one inserted notification to the owner's listeners.
// Returns true if at least one listener received it.
func (h *Hub) Publish(n domain.Notification) bool {
	h.mu.RLock()
	conn := h.conns[n.UserID]
	var handlers []func(domain.Notification)
	for sub := range h.subs[n.UserID] {
		handlers = append(handlers, sub.handler)
	}
	h.mu.RUnlock()

	delivered := false
	for _, fn := range handlers {
		fn(n)
		delivered = true
	}

	if conn != nil {
		if err := conn.WriteJSON(pushEvent{Event: "insert", Record: n}); err != nil {
			h.Unregister(n.UserID)
		} else {
			delivered = true
		}
	}
	return delivered
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.conns[userID]
	return exists
}

func (h *Hub) OnlineCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, conn := range h.conns {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.conns, userID)
	}
	for userID := range h.subs {
		delete(h.subs, userID)
	}
}

type pushEvent struct {
	Event  string              `json:"event"`
	Record domain.Notification `json:"record"`
}
