package ws

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type envelope struct {
	sessionID string
	message   []byte
}

// Hub fans messages out to the open sockets of one session at a time.
type Hub struct {
	clients map[string]map[*Client]struct{}
	mutex   sync.RWMutex

	publish chan envelope
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
		publish: make(chan envelope, 1024),
		logger:  logger.Named("ws"),
	}
}

// Run delivers published messages until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case env := <-h.publish:
			h.deliver(env)
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.mutex.Lock()
	set, ok := h.clients[client.sessionID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[client.sessionID] = set
	}
	set[client] = struct{}{}
	total := len(set)
	h.mutex.Unlock()

	h.logger.Debug("ws connected", zap.String("session_id", client.sessionID), zap.Int("session_clients", total))
}

func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.mutex.Lock()
	removed := h.removeLocked(client)
	h.mutex.Unlock()

	if removed {
		h.logger.Debug("ws disconnected", zap.String("session_id", client.sessionID))
	}
}

// Publish queues message for every socket of sessionID. It never blocks; when
// the queue is full the message is dropped.
func (h *Hub) Publish(sessionID string, message []byte) {
	if h == nil || sessionID == "" {
		return
	}
	select {
	case h.publish <- envelope{sessionID: sessionID, message: message}:
	default:
		h.logger.Warn("ws publish dropped", zap.String("reason", "buffer_full"))
	}
}

func (h *Hub) ClientCount(sessionID string) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients[sessionID])
}

// deliver holds the read lock while sending so no client can be closed mid-send.
func (h *Hub) deliver(env envelope) {
	var slow []*Client

	h.mutex.RLock()
	for c := range h.clients[env.sessionID] {
		select {
		case c.send <- env.message:
		default:
			slow = append(slow, c)
		}
	}
	h.mutex.RUnlock()

	for _, c := range slow {
		h.logger.Warn("ws client too slow, dropping", zap.String("session_id", c.sessionID))
		h.Unregister(c)
	}
}

func (h *Hub) removeLocked(client *Client) bool {
	set, ok := h.clients[client.sessionID]
	if !ok {
		return false
	}
	if _, ok := set[client]; !ok {
		return false
	}
	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.sessionID)
	}
	return true
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, set := range h.clients {
		for c := range set {
			h.removeLocked(c)
		}
	}
}
