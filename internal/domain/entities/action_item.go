package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActionItemPriority constants
const (
	ActionItemPriorityHigh   = "high"
	ActionItemPriorityMedium = "medium"
	ActionItemPriorityLow    = "low"
)

// ActionItemStatus constants. "confirmed" is set when a participant explicitly
// confirms an item over the live channel.
const (
	ActionItemStatusPending    = "pending"
	ActionItemStatusInProgress = "in_progress"
	ActionItemStatusCompleted  = "completed"
	ActionItemStatusCancelled  = "cancelled"
	ActionItemStatusConfirmed  = "confirmed"
)

// ActionItem is a discrete task extracted from or confirmed within a meeting.
// Items are immutable once appended to a meeting.
type ActionItem struct {
	ID              string    `json:"id"`
	MeetingID       string    `json:"meeting_id"`
	Description     string    `json:"description"`
	Assignee        string    `json:"assignee,omitempty"`
	DueDate         string    `json:"due_date,omitempty"` // ISO date string
	Priority        string    `json:"priority"`
	Status          string    `json:"status"`
	ConfidenceScore float64   `json:"confidence_score"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewActionItem creates a pending action item with a short unique id.
func NewActionItem(meetingID, description string) ActionItem {
	return ActionItem{
		ID:          "ai_" + shortID(),
		MeetingID:   meetingID,
		Description: description,
		Priority:    ActionItemPriorityMedium,
		Status:      ActionItemStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
}

// ValidPriority reports whether p is a known priority.
func ValidPriority(p string) bool {
	switch p {
	case ActionItemPriorityHigh, ActionItemPriorityMedium, ActionItemPriorityLow:
		return true
	}
	return false
}

// shortID returns the first 8 hex characters of a fresh UUID.
func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
