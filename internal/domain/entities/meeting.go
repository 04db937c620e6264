package entities

import (
	"fmt"
	"strings"
	"time"
)

// MeetingStatus represents the lifecycle state of a meeting
type MeetingStatus string

const (
	MeetingStatusCreated   MeetingStatus = "created"
	MeetingStatusActive    MeetingStatus = "active"
	MeetingStatusPaused    MeetingStatus = "paused"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// TranscriptEntry is one processed utterance, prefixed by its speaker.
// Entries are append-only and ordered per meeting.
type TranscriptEntry struct {
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Line renders the entry in the "[Speaker] text" transcript form.
func (e TranscriptEntry) Line() string {
	return fmt.Sprintf("[%s] %s", e.Speaker, e.Text)
}

// Meeting is the aggregate held by the in-memory store. Transcript, insights
// and action items only grow during a live session.
type Meeting struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Participants []string          `json:"participants"`
	Status       MeetingStatus     `json:"status"`
	StartTime    *time.Time        `json:"start_time,omitempty"`
	EndTime      *time.Time        `json:"end_time,omitempty"`
	Transcript   []TranscriptEntry `json:"transcript"`
	Insights     []Insight         `json:"insights"`
	ActionItems  []ActionItem      `json:"action_items"`
	Summary      *MeetingSummary   `json:"summary,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// NewMeeting creates a meeting in the created state.
func NewMeeting(id, title string, participants []string) *Meeting {
	now := time.Now().UTC()
	if participants == nil {
		participants = []string{}
	}
	return &Meeting{
		ID:           id,
		Title:        title,
		Participants: participants,
		Status:       MeetingStatusCreated,
		Transcript:   []TranscriptEntry{},
		Insights:     []Insight{},
		ActionItems:  []ActionItem{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// TranscriptText joins the transcript into newline-separated "[Speaker] text"
// lines, the form fed to summary generation.
func (m *Meeting) TranscriptText() string {
	lines := make([]string, 0, len(m.Transcript))
	for _, e := range m.Transcript {
		lines = append(lines, e.Line())
	}
	return strings.Join(lines, "\n")
}

// Activate marks the meeting active and records the start time once.
func (m *Meeting) Activate() {
	if m.Status != MeetingStatusCreated && m.Status != MeetingStatusPaused {
		return
	}
	m.Status = MeetingStatusActive
	if m.StartTime == nil {
		now := time.Now().UTC()
		m.StartTime = &now
	}
}

// Complete marks the meeting completed and records the end time.
func (m *Meeting) Complete() {
	now := time.Now().UTC()
	m.Status = MeetingStatusCompleted
	m.EndTime = &now
}

// DurationMinutes returns the elapsed meeting time in minutes, or zero when
// the meeting never started.
func (m *Meeting) DurationMinutes() float64 {
	if m.StartTime == nil {
		return 0
	}
	end := time.Now().UTC()
	if m.EndTime != nil {
		end = *m.EndTime
	}
	return end.Sub(*m.StartTime).Minutes()
}

// ValidStatus reports whether s is a known meeting status.
func ValidStatus(s MeetingStatus) bool {
	switch s {
	case MeetingStatusCreated, MeetingStatusActive, MeetingStatusPaused,
		MeetingStatusCompleted, MeetingStatusCancelled:
		return true
	}
	return false
}
