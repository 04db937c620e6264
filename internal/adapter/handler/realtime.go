package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetingmind-team/meetingmind/internal/usecase/realtime"
)

// Realtime exposes read-only views over the live connection registry
type Realtime struct {
	registry *realtime.Registry
	logger   *zap.Logger
}

// NewRealtimeHandler creates a new realtime handler
func NewRealtimeHandler(registry *realtime.Registry, logger *zap.Logger) *Realtime {
	return &Realtime{
		registry: registry,
		logger:   logger,
	}
}

// GetParticipants handles GET /api/meetings/:id/participants
func (h *Realtime) GetParticipants(c echo.Context) error {
	id := c.Param("id")
	participants := h.registry.Participants(id)

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"meeting_id":        id,
		"participant_count": len(participants),
		"participants":      participants,
	})
}

// Stats handles GET /api/realtime/stats
func (h *Realtime) Stats(c echo.Context) error {
	ids := h.registry.ActiveMeetings()

	total := 0
	meetings := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		count := h.registry.ConnectionCount(id)
		total += count
		meetings = append(meetings, map[string]interface{}{
			"meeting_id":  id,
			"connections": count,
		})
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"active_meetings":   meetings,
		"total_connections": total,
	})
}
