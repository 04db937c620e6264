package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
)

// DefaultAnalysisTimeout bounds the upstream analysis call for one utterance.
const DefaultAnalysisTimeout = 30 * time.Second

// Analyzer converts raw meeting text into structured insights.
type Analyzer interface {
	Analyze(ctx context.Context, text string, actx entities.AnalysisContext) (*entities.AnalysisResult, error)
}

// Store is the slice of the meeting store the router mutates.
type Store interface {
	Activate(meetingID string) error
	AppendAnalysis(meetingID string, entry entities.TranscriptEntry, result *entities.AnalysisResult) error
	AppendActionItem(meetingID string, item entities.ActionItem) error
}

// Router classifies inbound realtime payloads and drives the side effects:
// broadcasting through the registry, invoking the analyzer, and mutating the
// meeting store. It holds no mutable state of its own.
type Router struct {
	registry        *Registry
	store           Store
	analyzer        Analyzer
	analysisTimeout time.Duration
	logger          *zap.Logger
}

// NewRouter constructs a message router.
func NewRouter(registry *Registry, store Store, analyzer Analyzer, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		registry:        registry,
		store:           store,
		analyzer:        analyzer,
		analysisTimeout: DefaultAnalysisTimeout,
		logger:          logger,
	}
}

// HandleRaw decodes one inbound frame and dispatches it. A frame that is not
// a valid envelope earns the sender a private error; nothing is broadcast.
func (rt *Router) HandleRaw(ctx context.Context, conn Conn, data []byte) {
	var env Inbound
	if err := json.Unmarshal(data, &env); err != nil {
		rt.logger.Warn("unparseable message", zap.Error(err))
		rt.registry.Send(conn, errorData("Invalid message format"))
		return
	}
	rt.Handle(ctx, conn, env)
}

// Handle dispatches one decoded envelope for the given connection.
func (rt *Router) Handle(ctx context.Context, conn Conn, env Inbound) {
	meetingID, ok := rt.registry.MeetingOf(conn)
	if !ok {
		rt.registry.Send(conn, errorData("Meeting ID not found"))
		return
	}

	rt.logger.Debug("handling message",
		zap.String("type", env.Type),
		zap.String("meeting_id", meetingID),
	)

	switch env.Type {
	case TypeTextInput:
		rt.handleTextInput(ctx, conn, meetingID, env.Data)

	case TypeStartRecording:
		if err := rt.store.Activate(meetingID); err != nil {
			rt.logger.Warn("failed to activate meeting",
				zap.String("meeting_id", meetingID), zap.Error(err))
		}
		rt.registry.Broadcast(meetingID, Message{
			Type: TypeRecordingStarted,
			Data: map[string]interface{}{"message": "Recording started."},
		}, nil)

	case TypeStopRecording:
		rt.registry.Broadcast(meetingID, Message{
			Type: TypeRecordingStopped,
			Data: map[string]interface{}{"message": "Recording stopped."},
		}, nil)

	case TypeUserTyping:
		var data TypingData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			rt.registry.Send(conn, errorData("Invalid user_typing payload"))
			return
		}
		if data.User == "" {
			data.User = "Someone"
		}
		rt.registry.Broadcast(meetingID, Message{Type: TypeUserTyping, Data: data}, conn)

	case TypePing:
		var data PingData
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, &data); err != nil {
				rt.registry.Send(conn, errorData("Invalid ping payload"))
				return
			}
		}
		rt.registry.Send(conn, Message{
			Type: TypePong,
			Data: map[string]interface{}{"timestamp": data.Timestamp},
		})

	case TypeConfirmActionItem:
		rt.handleConfirmActionItem(conn, meetingID, env.Data)

	default:
		rt.logger.Warn("unknown message type", zap.String("type", env.Type))
		rt.registry.Send(conn, errorData(fmt.Sprintf("Unknown message type: %s", env.Type)))
	}
}

// handleTextInput broadcasts the raw utterance first, then awaits analysis.
// The two-step order is the per-connection guarantee: text_received always
// precedes the analysis_result for the same input. An analysis failure is
// logged and the second broadcast is simply never sent.
func (rt *Router) handleTextInput(ctx context.Context, conn Conn, meetingID string, raw json.RawMessage) {
	var data TextInputData
	if err := json.Unmarshal(raw, &data); err != nil {
		rt.registry.Send(conn, errorData("Invalid text_input payload"))
		return
	}

	text := strings.TrimSpace(data.Text)
	if text == "" {
		return
	}
	speaker := data.Speaker
	if speaker == "" {
		speaker = "Unknown"
	}
	timestamp := data.Timestamp
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	rt.registry.Broadcast(meetingID, Message{
		Type: TypeTextReceived,
		Data: map[string]interface{}{
			"text":      text,
			"speaker":   speaker,
			"timestamp": timestamp,
		},
	}, nil)

	if rt.analyzer == nil {
		return
	}

	actx := entities.AnalysisContext{Speaker: speaker, MeetingID: meetingID}
	analysisCtx, cancel := context.WithTimeout(ctx, rt.analysisTimeout)
	defer cancel()

	result, err := rt.analyzer.Analyze(analysisCtx, text, actx)
	if err != nil {
		// Participants already saw the utterance; the analysis for this one
		// input is silently dropped, not retried.
		rt.logger.Error("analysis failed",
			zap.String("meeting_id", meetingID),
			zap.String("speaker", speaker),
			zap.Error(err),
		)
		return
	}

	entry := entities.TranscriptEntry{
		Speaker:   speaker,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	if err := rt.store.AppendAnalysis(meetingID, entry, result); err != nil {
		rt.logger.Warn("failed to record analysis",
			zap.String("meeting_id", meetingID), zap.Error(err))
	}

	rt.registry.Broadcast(meetingID, Message{
		Type: TypeAnalysisResult,
		Data: map[string]interface{}{
			"original_text": text,
			"speaker":       speaker,
			"analysis":      result,
			"timestamp":     timestamp,
		},
	}, nil)
}

// handleConfirmActionItem materializes a user-confirmed action item, appends
// it to the meeting and broadcasts the confirmation to the room.
func (rt *Router) handleConfirmActionItem(conn Conn, meetingID string, raw json.RawMessage) {
	var data ConfirmActionItemData
	if err := json.Unmarshal(raw, &data); err != nil {
		rt.registry.Send(conn, errorData("Invalid confirm_action_item payload"))
		return
	}
	if strings.TrimSpace(data.Description) == "" {
		rt.registry.Send(conn, errorData("Action item description is required"))
		return
	}

	item := entities.NewActionItem(meetingID, strings.TrimSpace(data.Description))
	item.Assignee = data.Assignee
	item.DueDate = data.DueDate
	if entities.ValidPriority(data.Priority) {
		item.Priority = data.Priority
	}
	item.Status = entities.ActionItemStatusConfirmed
	item.ConfidenceScore = 1.0

	if err := rt.store.AppendActionItem(meetingID, item); err != nil {
		rt.logger.Warn("failed to append action item",
			zap.String("meeting_id", meetingID), zap.Error(err))
		rt.registry.Send(conn, errorData("Meeting not found"))
		return
	}

	rt.registry.Broadcast(meetingID, Message{Type: TypeActionItemConfirmed, Data: item}, nil)
}
