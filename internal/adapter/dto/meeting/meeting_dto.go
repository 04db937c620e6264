package meeting

import (
	"time"

	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
)

// CreateMeetingRequest represents the request to create a meeting session
type CreateMeetingRequest struct {
	Title        string   `json:"title" validate:"omitempty,max=200"`
	Participants []string `json:"participants" validate:"omitempty,dive,max=100"`
}

// CreateMeetingResponse is returned after creating a meeting
type CreateMeetingResponse struct {
	MeetingID    string `json:"meeting_id"`
	Status       string `json:"status"`
	WebsocketURL string `json:"websocket_url"`
}

// UpdateStatusRequest represents a meeting status transition
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=created active paused completed cancelled"`
}

// AnalyzeTextRequest represents the request to analyze meeting text
type AnalyzeTextRequest struct {
	MeetingID string `json:"meeting_id" validate:"omitempty,max=100"`
	Text      string `json:"text" validate:"required"`
	Speaker   string `json:"speaker" validate:"omitempty,max=100"`
}

// MeetingResponse represents a meeting with its accumulated artifacts
type MeetingResponse struct {
	MeetingID    string                     `json:"meeting_id"`
	Title        string                     `json:"title"`
	Status       string                     `json:"status"`
	Participants []string                   `json:"participants"`
	StartTime    *time.Time                 `json:"start_time,omitempty"`
	EndTime      *time.Time                 `json:"end_time,omitempty"`
	Transcript   []entities.TranscriptEntry `json:"transcript"`
	Insights     []entities.Insight         `json:"insights"`
	ActionItems  []entities.ActionItem      `json:"action_items"`
	Summary      *entities.MeetingSummary   `json:"summary,omitempty"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

// ListMeetingsResponse represents the response for listing meetings
type ListMeetingsResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
	Total    int               `json:"total"`
}

// ExportResponse describes an archived summary export
type ExportResponse struct {
	Filename    string `json:"filename"`
	Format      string `json:"format"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
	URL         string `json:"url,omitempty"`
}

// ToMeetingResponse maps a meeting entity to its API shape
func ToMeetingResponse(m *entities.Meeting) MeetingResponse {
	return MeetingResponse{
		MeetingID:    m.ID,
		Title:        m.Title,
		Status:       string(m.Status),
		Participants: m.Participants,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Transcript:   m.Transcript,
		Insights:     m.Insights,
		ActionItems:  m.ActionItems,
		Summary:      m.Summary,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
