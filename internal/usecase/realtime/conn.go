package realtime

import "time"

// Conn is an opaque handle to one participant's bidirectional channel.
// WriteJSON must be safe for concurrent use; a non-nil error from it is the
// primary signal that the connection is dead.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// UserInfo is optional metadata recorded when a connection joins a room.
type UserInfo struct {
	UserID string `json:"user_id,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Participant is a read-only descriptor of one room member.
type Participant struct {
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	ConnectedAt time.Time `json:"connected_at"`
}
