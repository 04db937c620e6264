package realtime

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu         sync.Mutex
	messages   []Message
	failWrites bool
	closed     bool
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errors.New("write failed")
	}
	if msg, ok := v.(Message); ok {
		f.messages = append(f.messages, msg)
	}
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) messageTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, 0, len(f.messages))
	for _, m := range f.messages {
		types = append(types, m.Type)
	}
	return types
}

func TestJoinSendsAckAndNotifiesRoom(t *testing.T) {
	r := NewRegistry(nil)

	first := &fakeConn{}
	r.Join(first, "meeting_1", UserInfo{})

	require.Equal(t, []string{TypeConnectionEstablished}, first.messageTypes())

	second := &fakeConn{}
	r.Join(second, "meeting_1", UserInfo{UserID: "u2", Name: "Bob"})

	// The joiner gets the private ack, the existing member gets the
	// participant_joined notification.
	require.Equal(t, []string{TypeConnectionEstablished}, second.messageTypes())
	require.Equal(t, []string{TypeConnectionEstablished, TypeParticipantJoined}, first.messageTypes())

	data := first.messages[1].Data.(map[string]interface{})
	require.Equal(t, "meeting_1", data["meeting_id"])
	require.Equal(t, 2, data["participant_count"])
}

func TestBroadcastExcludesSender(t *testing.T) {
	r := NewRegistry(nil)

	a := &fakeConn{}
	b := &fakeConn{}
	r.Join(a, "meeting_1", UserInfo{})
	r.Join(b, "meeting_1", UserInfo{})

	r.Broadcast("meeting_1", Message{Type: TypeUserTyping}, a)

	require.NotContains(t, a.messageTypes(), TypeUserTyping)
	require.Contains(t, b.messageTypes(), TypeUserTyping)
}

func TestBroadcastDoesNotCrossRooms(t *testing.T) {
	r := NewRegistry(nil)

	a := &fakeConn{}
	b := &fakeConn{}
	r.Join(a, "meeting_1", UserInfo{})
	r.Join(b, "meeting_2", UserInfo{})

	r.Broadcast("meeting_1", Message{Type: TypeTextReceived}, nil)

	require.Contains(t, a.messageTypes(), TypeTextReceived)
	require.NotContains(t, b.messageTypes(), TypeTextReceived)
}

func TestBroadcastRemovesDeadConnections(t *testing.T) {
	r := NewRegistry(nil)

	healthy := &fakeConn{}
	dead := &fakeConn{}
	r.Join(healthy, "meeting_1", UserInfo{})
	r.Join(dead, "meeting_1", UserInfo{})
	dead.failWrites = true

	r.Broadcast("meeting_1", Message{Type: TypeTextReceived}, nil)

	require.Equal(t, 1, r.ConnectionCount("meeting_1"))
	require.Contains(t, healthy.messageTypes(), TypeTextReceived)

	// The dead connection no longer receives anything.
	r.Broadcast("meeting_1", Message{Type: TypeAnalysisResult}, nil)
	require.Equal(t, 1, r.ConnectionCount("meeting_1"))
}

func TestSendFailureRemovesConnection(t *testing.T) {
	r := NewRegistry(nil)

	conn := &fakeConn{}
	r.Join(conn, "meeting_1", UserInfo{})
	conn.failWrites = true

	err := r.Send(conn, Message{Type: TypePong})
	require.Error(t, err)
	require.Equal(t, 0, r.ConnectionCount("meeting_1"))
}

func TestLeaveIsIdempotentAndCleansUpRoom(t *testing.T) {
	r := NewRegistry(nil)

	conn := &fakeConn{}
	r.Join(conn, "meeting_1", UserInfo{})
	require.Equal(t, []string{"meeting_1"}, r.ActiveMeetings())

	r.Leave(conn)
	r.Leave(conn)

	require.Empty(t, r.ActiveMeetings())
	require.Equal(t, 0, r.ConnectionCount("meeting_1"))

	_, ok := r.MeetingOf(conn)
	require.False(t, ok)
}

func TestSendToUser(t *testing.T) {
	r := NewRegistry(nil)

	a := &fakeConn{}
	b := &fakeConn{}
	r.Join(a, "meeting_1", UserInfo{UserID: "u1"})
	r.Join(b, "meeting_1", UserInfo{UserID: "u2"})

	require.True(t, r.SendToUser("meeting_1", "u2", Message{Type: TypePong}))
	require.Contains(t, b.messageTypes(), TypePong)
	require.NotContains(t, a.messageTypes(), TypePong)

	require.False(t, r.SendToUser("meeting_1", "nobody", Message{Type: TypePong}))
}

func TestParticipantsDefaults(t *testing.T) {
	r := NewRegistry(nil)

	r.Join(&fakeConn{}, "meeting_1", UserInfo{})
	participants := r.Participants("meeting_1")

	require.Len(t, participants, 1)
	require.Equal(t, "anonymous", participants[0].UserID)
	require.Equal(t, "Unknown User", participants[0].Name)
}

func TestConcurrentJoinLeaveBroadcast(t *testing.T) {
	r := NewRegistry(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn := &fakeConn{}
			r.Join(conn, "meeting_1", UserInfo{})
			r.Broadcast("meeting_1", Message{Type: TypeTextReceived}, nil)
			r.Leave(conn)
		}()
	}
	wg.Wait()

	require.Equal(t, 0, r.ConnectionCount("meeting_1"))
	require.Empty(t, r.ActiveMeetings())
}
