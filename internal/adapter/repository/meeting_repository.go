package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
	"github.com/meetingmind-team/meetingmind/internal/domain/repositories"
)

// meetingRepository is the in-memory meeting store. All reads return deep
// copies so callers never observe a slice mid-append.
type meetingRepository struct {
	mu       sync.RWMutex
	meetings map[string]*entities.Meeting
}

// NewMeetingRepository creates an empty in-memory meeting repository.
func NewMeetingRepository() repositories.MeetingRepository {
	return &meetingRepository{
		meetings: make(map[string]*entities.Meeting),
	}
}

// Create stores a new meeting. The id must be unused.
func (r *meetingRepository) Create(meeting *entities.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.meetings[meeting.ID]; exists {
		return entities.ErrMeetingAlreadyExists
	}
	r.meetings[meeting.ID] = meeting
	return nil
}

// FindByID returns a snapshot of the meeting.
func (r *meetingRepository) FindByID(id string) (*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meeting, ok := r.meetings[id]
	if !ok {
		return nil, entities.ErrMeetingNotFound
	}
	return copyMeeting(meeting), nil
}

// List returns snapshots of all meetings, newest first.
func (r *meetingRepository) List() []*entities.Meeting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Meeting, 0, len(r.meetings))
	for _, meeting := range r.meetings {
		out = append(out, copyMeeting(meeting))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Activate transitions the meeting to active and records the start time.
func (r *meetingRepository) Activate(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	meeting, ok := r.meetings[id]
	if !ok {
		return entities.ErrMeetingNotFound
	}
	meeting.Activate()
	meeting.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateStatus sets an explicit lifecycle status.
func (r *meetingRepository) UpdateStatus(id string, status entities.MeetingStatus) error {
	if !entities.ValidStatus(status) {
		return entities.ErrInvalidStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	meeting, ok := r.meetings[id]
	if !ok {
		return entities.ErrMeetingNotFound
	}
	meeting.Status = status
	meeting.UpdatedAt = time.Now().UTC()
	return nil
}

// Complete ends the meeting and returns its final snapshot.
func (r *meetingRepository) Complete(id string) (*entities.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	meeting, ok := r.meetings[id]
	if !ok {
		return nil, entities.ErrMeetingNotFound
	}
	meeting.Complete()
	meeting.UpdatedAt = time.Now().UTC()
	return copyMeeting(meeting), nil
}

// AppendAnalysis appends one utterance and everything its analysis produced
// under a single critical section. Insights are stamped with the speaker and
// entry timestamp; extracted action items are materialized as pending items.
func (r *meetingRepository) AppendAnalysis(id string, entry entities.TranscriptEntry, result *entities.AnalysisResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	meeting, ok := r.meetings[id]
	if !ok {
		return entities.ErrMeetingNotFound
	}

	meeting.Transcript = append(meeting.Transcript, entry)

	if result != nil {
		for _, insight := range result.Insights {
			if insight.ID == "" {
				insight.ID = entities.NewInsight(insight.Type, insight.Content).ID
			}
			if insight.Speaker == "" {
				insight.Speaker = entry.Speaker
			}
			if insight.Timestamp == nil {
				ts := entry.Timestamp
				insight.Timestamp = &ts
			}
			meeting.Insights = append(meeting.Insights, insight)
		}

		for _, extracted := range result.ActionItems {
			if extracted.Description == "" {
				continue
			}
			item := entities.NewActionItem(id, extracted.Description)
			item.Assignee = extracted.Assignee
			item.DueDate = extracted.DueDate
			if entities.ValidPriority(extracted.Priority) {
				item.Priority = extracted.Priority
			}
			item.ConfidenceScore = extracted.Confidence
			meeting.ActionItems = append(meeting.ActionItems, item)
		}
	}

	meeting.UpdatedAt = time.Now().UTC()
	return nil
}

// AppendActionItem appends one already-materialized action item.
func (r *meetingRepository) AppendActionItem(id string, item entities.ActionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	meeting, ok := r.meetings[id]
	if !ok {
		return entities.ErrMeetingNotFound
	}
	meeting.ActionItems = append(meeting.ActionItems, item)
	meeting.UpdatedAt = time.Now().UTC()
	return nil
}

// SetSummary attaches a generated summary to the meeting.
func (r *meetingRepository) SetSummary(id string, summary *entities.MeetingSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	meeting, ok := r.meetings[id]
	if !ok {
		return entities.ErrMeetingNotFound
	}
	meeting.Summary = summary
	meeting.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete removes the meeting.
func (r *meetingRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.meetings[id]; !ok {
		return entities.ErrMeetingNotFound
	}
	delete(r.meetings, id)
	return nil
}

// copyMeeting deep-copies the aggregate's growing slices.
func copyMeeting(m *entities.Meeting) *entities.Meeting {
	out := *m
	out.Participants = make([]string, len(m.Participants))
	copy(out.Participants, m.Participants)
	out.Transcript = make([]entities.TranscriptEntry, len(m.Transcript))
	copy(out.Transcript, m.Transcript)
	out.Insights = make([]entities.Insight, len(m.Insights))
	copy(out.Insights, m.Insights)
	out.ActionItems = make([]entities.ActionItem, len(m.ActionItems))
	copy(out.ActionItems, m.ActionItems)
	if m.Summary != nil {
		summary := *m.Summary
		out.Summary = &summary
	}
	return &out
}
