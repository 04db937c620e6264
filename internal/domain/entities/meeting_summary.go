package entities

import "time"

// MeetingSummary is the batch summary generated over a meeting's accumulated
// transcript, insights and action items.
type MeetingSummary struct {
	MeetingID            string               `json:"meeting_id"`
	GeneratedAt          time.Time            `json:"generated_at"`
	Participants         []string             `json:"participants"`
	DurationMinutes      float64              `json:"duration_minutes"`
	ExecutiveSummary     string               `json:"executive_summary"`
	MainTopics           []string             `json:"main_topics"`
	KeyDecisions         []SummaryDecision    `json:"key_decisions"`
	ActionItemsSummary   []SummaryActionItem  `json:"action_items_summary"`
	NextSteps            []string             `json:"next_steps"`
	RisksAndConcerns     []SummaryRisk        `json:"risks_and_concerns"`
	FollowUpMeeting      SummaryFollowUp      `json:"follow_up_meeting"`
	MeetingEffectiveness SummaryEffectiveness `json:"meeting_effectiveness"`
	RawStats             SummaryStats         `json:"raw_data"`
}

// SummaryDecision is one decision recorded in the summary report.
type SummaryDecision struct {
	Decision  string `json:"decision"`
	Rationale string `json:"rationale,omitempty"`
	Impact    string `json:"impact,omitempty"`
}

// SummaryActionItem is an action item as it appears in the summary report.
type SummaryActionItem struct {
	Description string `json:"description"`
	Assignee    string `json:"assignee,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// SummaryRisk is a risk or concern surfaced by the summary.
type SummaryRisk struct {
	Risk       string `json:"risk"`
	Severity   string `json:"severity"` // high, medium, low
	Mitigation string `json:"mitigation,omitempty"`
}

// SummaryFollowUp describes whether a follow-up meeting is recommended.
type SummaryFollowUp struct {
	Needed        bool     `json:"needed"`
	SuggestedDate string   `json:"suggested_date,omitempty"`
	AgendaItems   []string `json:"agenda_items,omitempty"`
}

// SummaryEffectiveness scores how well the meeting went.
type SummaryEffectiveness struct {
	Score        float64  `json:"score"` // 0-10
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
}

// SummaryStats captures source-material counts for the report footer.
type SummaryStats struct {
	TotalInsights    int `json:"total_insights"`
	TotalActionItems int `json:"total_action_items"`
	TranscriptLength int `json:"transcript_length"`
}
