package realtime

import "encoding/json"

// Client-to-server message types
const (
	TypeTextInput         = "text_input"
	TypeStartRecording    = "start_recording"
	TypeStopRecording     = "stop_recording"
	TypeUserTyping        = "user_typing"
	TypePing              = "ping"
	TypeConfirmActionItem = "confirm_action_item"
)

// Server-to-client message types
const (
	TypeConnectionEstablished = "connection_established"
	TypeParticipantJoined     = "participant_joined"
	TypeTextReceived          = "text_received"
	TypeAnalysisResult        = "analysis_result"
	TypeRecordingStarted      = "recording_started"
	TypeRecordingStopped      = "recording_stopped"
	TypeActionItemConfirmed   = "action_item_confirmed"
	TypePong                  = "pong"
	TypeError                 = "error"
)

// Message is an outbound envelope: {"type": ..., "data": {...}}.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Inbound is a received envelope with the payload left raw until the type
// is known.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// TextInputData is the payload of a text_input message.
type TextInputData struct {
	Text      string `json:"text"`
	Speaker   string `json:"speaker,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// TypingData is the payload of a user_typing message.
type TypingData struct {
	User     string `json:"user,omitempty"`
	IsTyping bool   `json:"is_typing,omitempty"`
}

// PingData is the payload of a ping message.
type PingData struct {
	Timestamp string `json:"timestamp,omitempty"`
}

// ConfirmActionItemData is the payload of a confirm_action_item message.
type ConfirmActionItemData struct {
	Description string `json:"description"`
	Assignee    string `json:"assignee,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// errorData builds the private error payload sent back to a misbehaving
// connection.
func errorData(message string) Message {
	return Message{
		Type: TypeError,
		Data: map[string]string{"message": message},
	}
}
