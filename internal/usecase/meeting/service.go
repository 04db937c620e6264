// Package meeting implements the REST-facing meeting lifecycle operations.
package meeting

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
	"github.com/meetingmind-team/meetingmind/internal/domain/repositories"
	"github.com/meetingmind-team/meetingmind/internal/infrastructure/metrics"
)

// Analyzer converts raw meeting text into structured insights.
type Analyzer interface {
	Analyze(ctx context.Context, text string, actx entities.AnalysisContext) (*entities.AnalysisResult, error)
}

// Service manages meeting lifecycle and the synchronous analysis endpoint.
type Service struct {
	meetings repositories.MeetingRepository
	analyzer Analyzer
	logger   *zap.Logger
}

// NewService creates a meeting service.
func NewService(meetings repositories.MeetingRepository, analyzer Analyzer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		meetings: meetings,
		analyzer: analyzer,
		logger:   logger,
	}
}

// Create registers a new meeting session.
func (s *Service) Create(title string, participants []string) (*entities.Meeting, error) {
	if title == "" {
		title = "Untitled Meeting"
	}

	meeting := entities.NewMeeting(newMeetingID(), title, participants)
	if err := s.meetings.Create(meeting); err != nil {
		return nil, err
	}

	metrics.RecordMeetingCreated()
	s.logger.Info("meeting created",
		zap.String("meeting_id", meeting.ID),
		zap.String("title", meeting.Title),
	)
	return meeting, nil
}

// Get returns a snapshot of the meeting.
func (s *Service) Get(id string) (*entities.Meeting, error) {
	return s.meetings.FindByID(id)
}

// List returns snapshots of all meetings.
func (s *Service) List() []*entities.Meeting {
	return s.meetings.List()
}

// UpdateStatus sets the meeting lifecycle status. Completing a meeting also
// records its end time.
func (s *Service) UpdateStatus(id string, status entities.MeetingStatus) (*entities.Meeting, error) {
	if status == entities.MeetingStatusCompleted {
		return s.meetings.Complete(id)
	}
	if err := s.meetings.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.meetings.FindByID(id)
}

// Delete removes the meeting.
func (s *Service) Delete(id string) error {
	return s.meetings.Delete(id)
}

// AnalyzeText analyzes a piece of meeting text synchronously. When the text
// belongs to a known meeting the transcript and extracted artifacts are
// appended to it; analysis of free-standing text is also allowed.
func (s *Service) AnalyzeText(ctx context.Context, meetingID, text, speaker string) (*entities.AnalysisResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, entities.ErrEmptyText
	}
	if speaker == "" {
		speaker = "Unknown"
	}

	result, err := s.analyzer.Analyze(ctx, text, entities.AnalysisContext{
		Speaker:   speaker,
		MeetingID: meetingID,
	})
	if err != nil {
		return nil, err
	}

	if meetingID != "" {
		entry := entities.TranscriptEntry{
			Speaker:   speaker,
			Text:      text,
			Timestamp: time.Now().UTC(),
		}
		if err := s.meetings.AppendAnalysis(meetingID, entry, result); err != nil {
			s.logger.Warn("analysis not recorded",
				zap.String("meeting_id", meetingID), zap.Error(err))
		}
	}
	return result, nil
}

// newMeetingID builds a readable id like meeting_20250825_174233_1a2b3c4d.
// The random suffix keeps ids unique when meetings are created within the
// same second.
func newMeetingID() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return "meeting_" + time.Now().UTC().Format("20060102_150405") + "_" + suffix
}
