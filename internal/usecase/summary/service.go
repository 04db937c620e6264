// Package summary generates end-of-meeting summary reports and exports them.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
	"github.com/meetingmind-team/meetingmind/internal/domain/repositories"
	"github.com/meetingmind-team/meetingmind/internal/infrastructure/metrics"
	"github.com/meetingmind-team/meetingmind/pkg/export"
)

// Generator produces text from a prompt.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Uploader archives rendered export documents in object storage.
type Uploader interface {
	UploadContent(ctx context.Context, objectName, content, contentType string) error
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// Service generates meeting summaries over the accumulated transcript and
// exports them to downloadable formats.
type Service struct {
	meetings  repositories.MeetingRepository
	generator Generator
	uploader  Uploader
	logger    *zap.Logger
}

// NewService creates a summary service. The uploader may be nil when object
// storage is disabled; exports are then returned inline only.
func NewService(meetings repositories.MeetingRepository, generator Generator, uploader Uploader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		meetings:  meetings,
		generator: generator,
		uploader:  uploader,
		logger:    logger,
	}
}

// summaryPayload is the JSON shape requested from the model.
type summaryPayload struct {
	ExecutiveSummary     string                        `json:"executive_summary"`
	MainTopics           []string                      `json:"main_topics"`
	KeyDecisions         []entities.SummaryDecision    `json:"key_decisions"`
	ActionItemsSummary   []entities.SummaryActionItem  `json:"action_items_summary"`
	NextSteps            []string                      `json:"next_steps"`
	RisksAndConcerns     []entities.SummaryRisk        `json:"risks_and_concerns"`
	FollowUpMeeting      entities.SummaryFollowUp      `json:"follow_up_meeting"`
	MeetingEffectiveness entities.SummaryEffectiveness `json:"meeting_effectiveness"`
}

// Generate builds a summary report for the meeting and stores it on the
// aggregate. A meeting with an empty transcript cannot be summarized.
func (s *Service) Generate(ctx context.Context, meetingID string) (*entities.MeetingSummary, error) {
	meeting, err := s.meetings.FindByID(meetingID)
	if err != nil {
		return nil, err
	}
	if len(meeting.Transcript) == 0 {
		return nil, entities.ErrEmptyTranscript
	}

	raw, err := s.generator.GenerateContent(ctx, buildSummaryPrompt(meeting))
	if err != nil {
		return nil, fmt.Errorf("summary generation failed: %w", err)
	}

	payload, err := parseSummaryResponse(raw)
	if err != nil {
		return nil, err
	}

	summary := &entities.MeetingSummary{
		MeetingID:            meeting.ID,
		GeneratedAt:          time.Now().UTC(),
		Participants:         meeting.Participants,
		DurationMinutes:      meeting.DurationMinutes(),
		ExecutiveSummary:     payload.ExecutiveSummary,
		MainTopics:           payload.MainTopics,
		KeyDecisions:         payload.KeyDecisions,
		ActionItemsSummary:   payload.ActionItemsSummary,
		NextSteps:            payload.NextSteps,
		RisksAndConcerns:     payload.RisksAndConcerns,
		FollowUpMeeting:      payload.FollowUpMeeting,
		MeetingEffectiveness: payload.MeetingEffectiveness,
		RawStats: entities.SummaryStats{
			TotalInsights:    len(meeting.Insights),
			TotalActionItems: len(meeting.ActionItems),
			TranscriptLength: len(meeting.TranscriptText()),
		},
	}

	if err := s.meetings.SetSummary(meetingID, summary); err != nil {
		return nil, err
	}

	metrics.RecordSummaryGenerated()
	s.logger.Info("meeting summary generated",
		zap.String("meeting_id", meetingID),
		zap.Int("transcript_entries", len(meeting.Transcript)),
	)
	return summary, nil
}

// ExportResult is a rendered export plus its storage URL when archived.
type ExportResult struct {
	Document *export.Document
	URL      string
}

// Export renders the meeting's stored summary in the requested format and,
// when object storage is configured, archives it there.
func (s *Service) Export(ctx context.Context, meetingID, format string) (*ExportResult, error) {
	if !export.ValidFormat(format) {
		return nil, entities.ErrUnsupportedFormat
	}

	meeting, err := s.meetings.FindByID(meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.Summary == nil {
		return nil, entities.ErrSummaryNotFound
	}

	doc, err := export.Render(meeting.Summary, format)
	if err != nil {
		return nil, err
	}
	metrics.RecordSummaryExport(format)

	result := &ExportResult{Document: doc}
	if s.uploader == nil {
		return result, nil
	}

	objectName := fmt.Sprintf("exports/%s/%s", meetingID, doc.Filename)
	uploadFn := func() error {
		return s.uploader.UploadContent(ctx, objectName, doc.Content, doc.ContentType)
	}

	// Retry logic with exponential backoff
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 15 * time.Second

	if err := backoff.Retry(uploadFn, backoff.WithContext(bo, ctx)); err != nil {
		// The rendered document is still usable; archiving is best effort.
		s.logger.Error("failed to archive export",
			zap.String("meeting_id", meetingID),
			zap.String("object", objectName),
			zap.Error(err),
		)
		return result, nil
	}

	url, err := s.uploader.GetFileURL(ctx, objectName, 24*time.Hour)
	if err != nil {
		s.logger.Warn("failed to presign export URL",
			zap.String("object", objectName), zap.Error(err))
		return result, nil
	}
	result.URL = url
	return result, nil
}

func parseSummaryResponse(raw string) (*summaryPayload, error) {
	raw = extractJSON(raw)

	var payload summaryPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse summary response: %w", err)
	}
	if payload.ExecutiveSummary == "" {
		return nil, fmt.Errorf("missing executive_summary in response")
	}
	return &payload, nil
}

// buildSummaryPrompt assembles the full-meeting summary prompt from the
// transcript plus the insights and action items collected during the session.
func buildSummaryPrompt(meeting *entities.Meeting) string {
	insightsText := "No specific insights captured."
	if len(meeting.Insights) > 0 {
		lines := make([]string, 0, len(meeting.Insights))
		for _, insight := range meeting.Insights {
			lines = append(lines, fmt.Sprintf("- %s", insight.Content))
		}
		insightsText = strings.Join(lines, "\n")
	}

	actionItemsText := "No action items identified."
	if len(meeting.ActionItems) > 0 {
		lines := make([]string, 0, len(meeting.ActionItems))
		for _, item := range meeting.ActionItems {
			lines = append(lines, fmt.Sprintf("- %s (assignee: %s, due: %s)",
				item.Description, orUnassigned(item.Assignee), orUnassigned(item.DueDate)))
		}
		actionItemsText = strings.Join(lines, "\n")
	}

	participants := "No participant information."
	if len(meeting.Participants) > 0 {
		participants = strings.Join(meeting.Participants, ", ")
	}

	return fmt.Sprintf(`Write a comprehensive meeting summary report based on the meeting below.

**Meeting info:**
- Meeting ID: %s
- Participants: %s
- Duration: %.0f minutes
- Total insights: %d
- Total action items: %d

**Full transcript:**
%s

**Collected insights:**
%s

**Action items:**
%s

Combine the information above into a summary report in the following JSON structure:

{
    "executive_summary": "two or three sentence summary of the meeting",
    "main_topics": ["main discussion topic 1", "main discussion topic 2"],
    "key_decisions": [
        {
            "decision": "what was decided",
            "rationale": "why it was decided",
            "impact": "expected impact"
        }
    ],
    "action_items_summary": [
        {
            "description": "task",
            "assignee": "owner",
            "due_date": "deadline",
            "priority": "priority"
        }
    ],
    "next_steps": [
        "concrete next actions to take"
    ],
    "risks_and_concerns": [
        {
            "risk": "risk factor",
            "severity": "high|medium|low",
            "mitigation": "mitigation approach"
        }
    ],
    "follow_up_meeting": {
        "needed": true,
        "suggested_date": "suggested date or null",
        "agenda_items": ["items for the next meeting"]
    },
    "meeting_effectiveness": {
        "score": 8.5,
        "strengths": ["what went well"],
        "improvements": ["what to improve"]
    }
}

**Important:** The response must be valid JSON. Return pure JSON without markdown code blocks.`,
		meeting.ID,
		participants,
		meeting.DurationMinutes(),
		len(meeting.Insights),
		len(meeting.ActionItems),
		meeting.TranscriptText(),
		insightsText,
		actionItemsText,
	)
}

func orUnassigned(v string) string {
	if v == "" {
		return "unassigned"
	}
	return v
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
