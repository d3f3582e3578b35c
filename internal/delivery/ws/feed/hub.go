package ws_feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ZeNuW/filmorate/internal/model"
)

type Message struct {
	Type      model.EventType `json:"type"`
	UserID    int64           `json:"user_id"`
	EntityID  int64           `json:"entity_id"`
	Timestamp time.Time       `json:"timestamp"`
}

func messageOf(e model.Event) Message {
	return Message{
		Type:      e.Type,
		UserID:    e.UserID,
		EntityID:  e.EntityID,
		Timestamp: e.Timestamp,
	}
}

// Hub fans events out to the websocket clients of the users they concern.
type Hub struct {
	mu sync.RWMutex

	// Sets of clients per subscribed user
	users map[int64]map[*Client]struct{}

	logger *slog.Logger
}

func New(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		users:  make(map[int64]map[*Client]struct{}),
		logger: logger,
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.users[client.UserID]; !ok {
		h.users[client.UserID] = make(map[*Client]struct{})
	}
	h.users[client.UserID][client] = struct{}{}

	h.logger.Info("feed client registered", slog.Int64("user_id", client.UserID), slog.String("client_id", client.ID))
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(client)
	h.logger.Info("feed client unregistered", slog.Int64("user_id", client.UserID), slog.String("client_id", client.ID))
}

func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.users[client.UserID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.users, client.UserID)
	}
}

// Subscribers returns the number of open feeds of a user.
func (h *Hub) Subscribers(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.users[userID])
}

// Handle delivers e to the acting user and, for friendship events, to the
// other side of the edge. Slow clients are dropped.
func (h *Hub) Handle(ctx context.Context, e model.Event) error {
	payload, err := json.Marshal(messageOf(e))
	if err != nil {
		return fmt.Errorf("failed to encode feed message: %w", err)
	}

	recipients := []int64{e.UserID}
	if (e.Type == model.EventFriendAdded || e.Type == model.EventFriendRemoved) && e.EntityID != e.UserID {
		recipients = append(recipients, e.EntityID)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, userID := range recipients {
		for client := range h.users[userID] {
			select {
			case client.Send <- payload:
			default:
				h.logger.Warn("dropping slow feed client", slog.Int64("user_id", userID), slog.String("client_id", client.ID))
				h.removeLocked(client)
			}
		}
	}
	return nil
}
