// Package export renders meeting summaries into downloadable documents.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
)

// Supported export formats
const (
	FormatMarkdown = "markdown"
	FormatText     = "txt"
	FormatJSON     = "json"
)

// Document is a rendered summary ready to download or upload.
type Document struct {
	Filename    string
	ContentType string
	Content     string
}

// ValidFormat reports whether f is a supported export format.
func ValidFormat(f string) bool {
	switch f {
	case FormatMarkdown, FormatText, FormatJSON:
		return true
	}
	return false
}

// Render converts the summary into the requested format.
func Render(summary *entities.MeetingSummary, format string) (*Document, error) {
	switch format {
	case FormatMarkdown:
		return &Document{
			Filename:    fmt.Sprintf("meeting_summary_%s.md", summary.MeetingID),
			ContentType: "text/markdown",
			Content:     renderMarkdown(summary),
		}, nil
	case FormatText:
		return &Document{
			Filename:    fmt.Sprintf("meeting_summary_%s.txt", summary.MeetingID),
			ContentType: "text/plain",
			Content:     renderText(summary),
		}, nil
	case FormatJSON:
		b, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return nil, err
		}
		return &Document{
			Filename:    fmt.Sprintf("meeting_summary_%s.json", summary.MeetingID),
			ContentType: "application/json",
			Content:     string(b),
		}, nil
	}
	return nil, entities.ErrUnsupportedFormat
}

func renderMarkdown(s *entities.MeetingSummary) string {
	var b strings.Builder

	b.WriteString("# Meeting Summary Report\n\n")
	b.WriteString("## Meeting Info\n")
	fmt.Fprintf(&b, "- **Meeting ID**: %s\n", s.MeetingID)
	fmt.Fprintf(&b, "- **Generated**: %s\n", s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- **Participants**: %s\n", strings.Join(s.Participants, ", "))
	fmt.Fprintf(&b, "- **Duration**: %.0f minutes\n", s.DurationMinutes)

	b.WriteString("\n## Summary\n")
	b.WriteString(s.ExecutiveSummary)
	b.WriteString("\n")

	if len(s.MainTopics) > 0 {
		b.WriteString("\n## Main Topics\n")
		for _, topic := range s.MainTopics {
			fmt.Fprintf(&b, "- %s\n", topic)
		}
	}

	if len(s.KeyDecisions) > 0 {
		b.WriteString("\n## Key Decisions\n")
		for _, d := range s.KeyDecisions {
			fmt.Fprintf(&b, "\n### %s\n", d.Decision)
			if d.Rationale != "" {
				fmt.Fprintf(&b, "- **Rationale**: %s\n", d.Rationale)
			}
			if d.Impact != "" {
				fmt.Fprintf(&b, "- **Impact**: %s\n", d.Impact)
			}
		}
	}

	if len(s.ActionItemsSummary) > 0 {
		b.WriteString("\n## Action Items\n")
		for _, item := range s.ActionItemsSummary {
			fmt.Fprintf(&b, "- **%s**\n", item.Description)
			fmt.Fprintf(&b, "  - Assignee: %s\n", orTBD(item.Assignee))
			fmt.Fprintf(&b, "  - Due: %s\n", orTBD(item.DueDate))
			fmt.Fprintf(&b, "  - Priority: %s\n", orTBD(item.Priority))
		}
	}

	if len(s.NextSteps) > 0 {
		b.WriteString("\n## Next Steps\n")
		for _, step := range s.NextSteps {
			fmt.Fprintf(&b, "- %s\n", step)
		}
	}

	if len(s.RisksAndConcerns) > 0 {
		b.WriteString("\n## Risks and Concerns\n")
		for _, risk := range s.RisksAndConcerns {
			fmt.Fprintf(&b, "- **%s** (severity: %s)\n", risk.Risk, risk.Severity)
			if risk.Mitigation != "" {
				fmt.Fprintf(&b, "  - Mitigation: %s\n", risk.Mitigation)
			}
		}
	}

	if s.FollowUpMeeting.Needed {
		b.WriteString("\n## Follow-up Meeting\n")
		fmt.Fprintf(&b, "- **Suggested date**: %s\n", orTBD(s.FollowUpMeeting.SuggestedDate))
		if len(s.FollowUpMeeting.AgendaItems) > 0 {
			b.WriteString("- **Agenda**:\n")
			for _, item := range s.FollowUpMeeting.AgendaItems {
				fmt.Fprintf(&b, "  - %s\n", item)
			}
		}
	}

	b.WriteString("\n## Meeting Effectiveness\n")
	fmt.Fprintf(&b, "- **Score**: %.1f/10\n", s.MeetingEffectiveness.Score)
	if len(s.MeetingEffectiveness.Strengths) > 0 {
		b.WriteString("- **Strengths**:\n")
		for _, str := range s.MeetingEffectiveness.Strengths {
			fmt.Fprintf(&b, "  - %s\n", str)
		}
	}
	if len(s.MeetingEffectiveness.Improvements) > 0 {
		b.WriteString("- **Improvements**:\n")
		for _, imp := range s.MeetingEffectiveness.Improvements {
			fmt.Fprintf(&b, "  - %s\n", imp)
		}
	}

	return b.String()
}

func renderText(s *entities.MeetingSummary) string {
	var b strings.Builder

	b.WriteString("Meeting Summary Report\n")
	b.WriteString("====================\n\n")
	b.WriteString("Meeting Info:\n")
	fmt.Fprintf(&b, "- Meeting ID: %s\n", s.MeetingID)
	fmt.Fprintf(&b, "- Generated: %s\n", s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- Participants: %s\n", strings.Join(s.Participants, ", "))
	fmt.Fprintf(&b, "- Duration: %.0f minutes\n", s.DurationMinutes)

	b.WriteString("\nSummary:\n")
	b.WriteString(s.ExecutiveSummary)
	b.WriteString("\n")

	if len(s.KeyDecisions) > 0 {
		b.WriteString("\nKey Decisions:\n")
		for i, d := range s.KeyDecisions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, d.Decision)
			if d.Rationale != "" {
				fmt.Fprintf(&b, "   Rationale: %s\n", d.Rationale)
			}
			if d.Impact != "" {
				fmt.Fprintf(&b, "   Impact: %s\n", d.Impact)
			}
		}
	}

	if len(s.ActionItemsSummary) > 0 {
		b.WriteString("\nAction Items:\n")
		for _, item := range s.ActionItemsSummary {
			fmt.Fprintf(&b, "- %s (assignee: %s, due: %s)\n",
				item.Description, orTBD(item.Assignee), orTBD(item.DueDate))
		}
	}

	if len(s.NextSteps) > 0 {
		b.WriteString("\nNext Steps:\n")
		for _, step := range s.NextSteps {
			fmt.Fprintf(&b, "- %s\n", step)
		}
	}

	return b.String()
}

func orTBD(v string) string {
	if v == "" {
		return "TBD"
	}
	return v
}
