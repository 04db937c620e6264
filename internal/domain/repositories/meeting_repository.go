package repositories

import (
	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
)

// MeetingRepository is the storage contract for meeting aggregates. Append
// operations are atomic with respect to each processed input: either all
// artifacts of one utterance land or none do.
type MeetingRepository interface {
	Create(meeting *entities.Meeting) error
	FindByID(id string) (*entities.Meeting, error)
	List() []*entities.Meeting
	Activate(id string) error
	UpdateStatus(id string, status entities.MeetingStatus) error
	Complete(id string) (*entities.Meeting, error)
	AppendAnalysis(id string, entry entities.TranscriptEntry, result *entities.AnalysisResult) error
	AppendActionItem(id string, item entities.ActionItem) error
	SetSummary(id string, summary *entities.MeetingSummary) error
	Delete(id string) error
}
