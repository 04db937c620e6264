package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
)

func TestCreateAndFind(t *testing.T) {
	repo := NewMeetingRepository()

	meeting := entities.NewMeeting("meeting_1", "Planning", []string{"Alice", "Bob"})
	require.NoError(t, repo.Create(meeting))

	got, err := repo.FindByID("meeting_1")
	require.NoError(t, err)
	require.Equal(t, "Planning", got.Title)
	require.Equal(t, entities.MeetingStatusCreated, got.Status)

	require.ErrorIs(t, repo.Create(meeting), entities.ErrMeetingAlreadyExists)

	_, err = repo.FindByID("missing")
	require.ErrorIs(t, err, entities.ErrMeetingNotFound)
}

func TestFindReturnsSnapshot(t *testing.T) {
	repo := NewMeetingRepository()
	require.NoError(t, repo.Create(entities.NewMeeting("meeting_1", "t", nil)))

	entry := entities.TranscriptEntry{Speaker: "Alice", Text: "hello", Timestamp: time.Now()}
	require.NoError(t, repo.AppendAnalysis("meeting_1", entry, nil))

	first, err := repo.FindByID("meeting_1")
	require.NoError(t, err)

	// Mutating the snapshot must not leak back into the store.
	first.Transcript[0].Text = "tampered"
	first.Transcript = append(first.Transcript, entities.TranscriptEntry{Speaker: "X"})

	second, err := repo.FindByID("meeting_1")
	require.NoError(t, err)
	require.Len(t, second.Transcript, 1)
	require.Equal(t, "hello", second.Transcript[0].Text)
}

func TestAppendAnalysisMaterializesArtifacts(t *testing.T) {
	repo := NewMeetingRepository()
	require.NoError(t, repo.Create(entities.NewMeeting("meeting_1", "t", nil)))

	entry := entities.TranscriptEntry{Speaker: "Alice", Text: "ship it", Timestamp: time.Now().UTC()}
	result := &entities.AnalysisResult{
		Insights: []entities.Insight{
			{Type: entities.InsightTypeKeyPoint, Content: "ship this week", Importance: "high"},
		},
		ActionItems: []entities.ActionItemExtracted{
			{Description: "Cut the release", Assignee: "Bob", Priority: "high", Confidence: 0.9},
			{Description: ""},
		},
	}
	require.NoError(t, repo.AppendAnalysis("meeting_1", entry, result))

	got, err := repo.FindByID("meeting_1")
	require.NoError(t, err)

	require.Len(t, got.Transcript, 1)
	require.Equal(t, "[Alice] ship it", got.Transcript[0].Line())

	require.Len(t, got.Insights, 1)
	require.NotEmpty(t, got.Insights[0].ID)
	require.Equal(t, "Alice", got.Insights[0].Speaker)
	require.NotNil(t, got.Insights[0].Timestamp)

	// The blank extracted item is dropped.
	require.Len(t, got.ActionItems, 1)
	item := got.ActionItems[0]
	require.Equal(t, "Cut the release", item.Description)
	require.Equal(t, entities.ActionItemStatusPending, item.Status)
	require.Equal(t, "high", item.Priority)
	require.InDelta(t, 0.9, item.ConfidenceScore, 1e-9)
	require.Equal(t, "meeting_1", item.MeetingID)

	require.ErrorIs(t, repo.AppendAnalysis("missing", entry, result), entities.ErrMeetingNotFound)
}

func TestAppendAnalysisDefaultsInvalidPriority(t *testing.T) {
	repo := NewMeetingRepository()
	require.NoError(t, repo.Create(entities.NewMeeting("meeting_1", "t", nil)))

	result := &entities.AnalysisResult{
		ActionItems: []entities.ActionItemExtracted{{Description: "do it", Priority: "urgent"}},
	}
	require.NoError(t, repo.AppendAnalysis("meeting_1", entities.TranscriptEntry{Speaker: "A"}, result))

	got, err := repo.FindByID("meeting_1")
	require.NoError(t, err)
	require.Equal(t, entities.ActionItemPriorityMedium, got.ActionItems[0].Priority)
}

func TestLifecycleTransitions(t *testing.T) {
	repo := NewMeetingRepository()
	require.NoError(t, repo.Create(entities.NewMeeting("meeting_1", "t", nil)))

	require.NoError(t, repo.Activate("meeting_1"))
	got, err := repo.FindByID("meeting_1")
	require.NoError(t, err)
	require.Equal(t, entities.MeetingStatusActive, got.Status)
	require.NotNil(t, got.StartTime)

	completed, err := repo.Complete("meeting_1")
	require.NoError(t, err)
	require.Equal(t, entities.MeetingStatusCompleted, completed.Status)
	require.NotNil(t, completed.EndTime)

	require.ErrorIs(t, repo.UpdateStatus("meeting_1", "nonsense"), entities.ErrInvalidStatus)
	require.NoError(t, repo.UpdateStatus("meeting_1", entities.MeetingStatusPaused))
}

func TestListNewestFirst(t *testing.T) {
	repo := NewMeetingRepository()

	older := entities.NewMeeting("meeting_1", "first", nil)
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	require.NoError(t, repo.Create(older))
	require.NoError(t, repo.Create(entities.NewMeeting("meeting_2", "second", nil)))

	list := repo.List()
	require.Len(t, list, 2)
	require.Equal(t, "meeting_2", list[0].ID)
	require.Equal(t, "meeting_1", list[1].ID)
}

func TestDelete(t *testing.T) {
	repo := NewMeetingRepository()
	require.NoError(t, repo.Create(entities.NewMeeting("meeting_1", "t", nil)))

	require.NoError(t, repo.Delete("meeting_1"))
	require.ErrorIs(t, repo.Delete("meeting_1"), entities.ErrMeetingNotFound)
}

func TestConcurrentAppends(t *testing.T) {
	repo := NewMeetingRepository()
	require.NoError(t, repo.Create(entities.NewMeeting("meeting_1", "t", nil)))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entry := entities.TranscriptEntry{Speaker: "A", Text: "x", Timestamp: time.Now()}
			result := &entities.AnalysisResult{
				Insights: []entities.Insight{{Type: entities.InsightTypeKeyPoint, Content: "c"}},
			}
			_ = repo.AppendAnalysis("meeting_1", entry, result)
		}()
	}
	wg.Wait()

	got, err := repo.FindByID("meeting_1")
	require.NoError(t, err)
	require.Len(t, got.Transcript, 50)
	require.Len(t, got.Insights, 50)
}
