package entities

// ContentType values returned by utterance analysis
const (
	ContentTypeDiscussion = "discussion"
	ContentTypeActionItem = "action_item"
	ContentTypeDecision   = "decision"
	ContentTypeQuestion   = "question"
	ContentTypeOffTopic   = "off_topic"
)

// AnalysisResult is the structured output of analyzing a single utterance
// with the language model.
type AnalysisResult struct {
	ContentType    string                `json:"content_type"`
	KeyPoints      []string              `json:"key_points"`
	Insights       []Insight             `json:"insights"`
	ActionItems    []ActionItemExtracted `json:"action_items"`
	Sentiment      string                `json:"sentiment"`     // positive, neutral, negative
	UrgencyLevel   string                `json:"urgency_level"` // high, medium, low
	FollowUpNeeded bool                  `json:"follow_up_needed"`
	RelatedTopics  []string              `json:"related_topics"`
	Summary        string                `json:"summary"`
}

// ActionItemExtracted is an action item as proposed by the model, before it
// is materialized into a stored ActionItem.
type ActionItemExtracted struct {
	Description string  `json:"description"`
	Assignee    string  `json:"assignee,omitempty"`
	DueDate     string  `json:"due_date,omitempty"`
	Priority    string  `json:"priority"`
	Confidence  float64 `json:"confidence"`
}

// AnalysisContext carries the speaker and meeting an utterance belongs to.
type AnalysisContext struct {
	Speaker   string `json:"speaker"`
	MeetingID string `json:"meeting_id"`
}

// Normalize fills zero values so callers never see nil slices or blank enums.
func (r *AnalysisResult) Normalize() {
	if r.ContentType == "" {
		r.ContentType = ContentTypeDiscussion
	}
	if r.Sentiment == "" {
		r.Sentiment = "neutral"
	}
	if r.UrgencyLevel == "" {
		r.UrgencyLevel = ActionItemPriorityMedium
	}
	if r.KeyPoints == nil {
		r.KeyPoints = []string{}
	}
	if r.Insights == nil {
		r.Insights = []Insight{}
	}
	if r.ActionItems == nil {
		r.ActionItems = []ActionItemExtracted{}
	}
	if r.RelatedTopics == nil {
		r.RelatedTopics = []string{}
	}
}
