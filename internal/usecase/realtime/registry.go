package realtime

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/meetingmind-team/meetingmind/internal/infrastructure/metrics"
)

// connMeta records the single source of truth for a connection's room
// membership and user metadata. Rooms are a derived index over this table.
type connMeta struct {
	meetingID   string
	user        UserInfo
	connectedAt time.Time
}

// Registry tracks live connections grouped by meeting room and provides the
// delivery primitives. Explicit disconnects and transport-level send failures
// converge on the same removal path, so a room never accumulates unreachable
// members.
type Registry struct {
	mu     sync.RWMutex
	rooms  map[string]map[Conn]struct{}
	conns  map[Conn]*connMeta
	logger *zap.Logger
}

// NewRegistry creates an empty connection registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		rooms:  make(map[string]map[Conn]struct{}),
		conns:  make(map[Conn]*connMeta),
		logger: logger,
	}
}

// Join registers the connection under the room for meetingID, creating the
// room if absent, then sends a private connection_established acknowledgement
// and notifies the other room members. A failed acknowledgement is a
// best-effort delivery failure, not fatal to the join.
func (r *Registry) Join(conn Conn, meetingID string, user UserInfo) {
	r.mu.Lock()
	room, ok := r.rooms[meetingID]
	if !ok {
		room = make(map[Conn]struct{})
		r.rooms[meetingID] = room
	}
	room[conn] = struct{}{}
	r.conns[conn] = &connMeta{
		meetingID:   meetingID,
		user:        user,
		connectedAt: time.Now().UTC(),
	}
	count := len(room)
	r.mu.Unlock()

	metrics.ConnectionOpened()
	r.logger.Info("connection joined meeting",
		zap.String("meeting_id", meetingID),
		zap.Int("connections", count),
	)

	r.Send(conn, Message{
		Type: TypeConnectionEstablished,
		Data: map[string]interface{}{
			"meeting_id": meetingID,
			"message":    "Connected. You can start the meeting.",
		},
	})

	r.Broadcast(meetingID, Message{
		Type: TypeParticipantJoined,
		Data: map[string]interface{}{
			"meeting_id":        meetingID,
			"participant_count": count,
		},
	}, conn)
}

// Leave removes the connection from its room. The room entry is deleted when
// its last member leaves. Calling Leave on an unknown connection is a no-op.
func (r *Registry) Leave(conn Conn) {
	r.mu.Lock()
	meta, ok := r.conns[conn]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.conns, conn)
	meetingID := meta.meetingID
	if room, ok := r.rooms[meetingID]; ok {
		delete(room, conn)
		if len(room) == 0 {
			delete(r.rooms, meetingID)
			r.logger.Info("meeting room cleaned up", zap.String("meeting_id", meetingID))
		}
	}
	r.mu.Unlock()

	metrics.ConnectionClosed()
	r.logger.Info("connection left meeting", zap.String("meeting_id", meetingID))
}

// Send serializes the message onto a single connection. A failed send means
// the connection is dead: it is removed from its room immediately.
func (r *Registry) Send(conn Conn, msg Message) error {
	if err := conn.WriteJSON(msg); err != nil {
		r.logger.Warn("send failed, dropping connection",
			zap.String("message_type", msg.Type),
			zap.Error(err),
		)
		metrics.RecordDeadConnection()
		r.Leave(conn)
		return err
	}
	return nil
}

// Broadcast delivers the message to every room member except exclude. The
// member set is snapshotted first so cleanup of dead connections during
// delivery cannot invalidate the iteration. An empty or missing room is not
// an error.
func (r *Registry) Broadcast(meetingID string, msg Message, exclude Conn) {
	r.mu.RLock()
	room, ok := r.rooms[meetingID]
	if !ok {
		r.mu.RUnlock()
		r.logger.Debug("broadcast to empty meeting", zap.String("meeting_id", meetingID))
		metrics.RecordBroadcast("empty_room")
		return
	}
	snapshot := make([]Conn, 0, len(room))
	for conn := range room {
		snapshot = append(snapshot, conn)
	}
	r.mu.RUnlock()

	delivered := 0
	var dead []Conn
	for _, conn := range snapshot {
		if conn == exclude {
			continue
		}
		if err := conn.WriteJSON(msg); err != nil {
			r.logger.Warn("broadcast delivery failed",
				zap.String("meeting_id", meetingID),
				zap.String("message_type", msg.Type),
				zap.Error(err),
			)
			dead = append(dead, conn)
			continue
		}
		delivered++
	}

	for _, conn := range dead {
		metrics.RecordDeadConnection()
		r.Leave(conn)
	}

	metrics.RecordBroadcast("delivered")
	r.logger.Debug("broadcast complete",
		zap.String("meeting_id", meetingID),
		zap.String("message_type", msg.Type),
		zap.Int("delivered", delivered),
		zap.Int("dropped", len(dead)),
	)
}

// SendToUser delivers a message to the first room member whose user id
// matches. Reports whether a matching connection was found.
func (r *Registry) SendToUser(meetingID, userID string, msg Message) bool {
	r.mu.RLock()
	var target Conn
	for conn := range r.rooms[meetingID] {
		if meta, ok := r.conns[conn]; ok && meta.user.UserID == userID {
			target = conn
			break
		}
	}
	r.mu.RUnlock()

	if target == nil {
		return false
	}
	return r.Send(target, msg) == nil
}

// MeetingOf returns the meeting the connection is joined to.
func (r *Registry) MeetingOf(conn Conn) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.conns[conn]
	if !ok {
		return "", false
	}
	return meta.meetingID, true
}

// Participants returns a point-in-time snapshot of the room's membership.
func (r *Registry) Participants(meetingID string) []Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	participants := make([]Participant, 0, len(r.rooms[meetingID]))
	for conn := range r.rooms[meetingID] {
		meta, ok := r.conns[conn]
		if !ok {
			continue
		}
		p := Participant{
			UserID:      meta.user.UserID,
			Name:        meta.user.Name,
			ConnectedAt: meta.connectedAt,
		}
		if p.UserID == "" {
			p.UserID = "anonymous"
		}
		if p.Name == "" {
			p.Name = "Unknown User"
		}
		participants = append(participants, p)
	}
	return participants
}

// ConnectionCount returns the number of live connections in the room.
func (r *Registry) ConnectionCount(meetingID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[meetingID])
}

// ActiveMeetings lists meeting ids that currently have at least one
// connection.
func (r *Registry) ActiveMeetings() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.rooms))
	for id := range r.rooms {
		ids = append(ids, id)
	}
	return ids
}
