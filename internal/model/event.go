package model

import "time"

type EventType string

const (
	EventFriendAdded   EventType = "FRIEND_ADDED"
	EventFriendRemoved EventType = "FRIEND_REMOVED"
	EventLikeAdded     EventType = "LIKE_ADDED"
	EventLikeRemoved   EventType = "LIKE_REMOVED"
	EventFilmCreated   EventType = "FILM_CREATED"
	EventFilmUpdated   EventType = "FILM_UPDATED"
)

// Event describes a state change. UserID is the acting user (zero for film
// lifecycle events), EntityID is the friend or film the action targets.
type Event struct {
	Type      EventType
	UserID    int64
	EntityID  int64
	Timestamp time.Time
}

func NewEvent(t EventType, userID, entityID int64) Event {
	return Event{
		Type:      t,
		UserID:    userID,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}
