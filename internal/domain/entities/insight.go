package entities

import "time"

// InsightType constants
const (
	InsightTypeKeyPoint   = "key_point"
	InsightTypeDecision   = "decision"
	InsightTypeActionItem = "action_item"
	InsightTypeQuestion   = "question"
	InsightTypeConcern    = "concern"
	InsightTypeOffTopic   = "off_topic"
)

// Insight is a structured observation extracted from one utterance.
// Immutable once appended to a meeting.
type Insight struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Content    string     `json:"content"`
	Importance string     `json:"importance"` // high, medium, low
	Confidence float64    `json:"confidence"`
	Speaker    string     `json:"speaker,omitempty"`
	Timestamp  *time.Time `json:"timestamp,omitempty"`
}

// NewInsight creates an insight with a short unique id.
func NewInsight(insightType, content string) Insight {
	return Insight{
		ID:         "insight_" + shortID(),
		Type:       insightType,
		Content:    content,
		Importance: ActionItemPriorityMedium,
	}
}
