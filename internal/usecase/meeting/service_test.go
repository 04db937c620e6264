package meeting

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meetingmind-team/meetingmind/internal/adapter/repository"
	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
)

type fakeAnalyzer struct {
	result *entities.AnalysisResult
	err    error
	calls  int
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ string, _ entities.AnalysisContext) (*entities.AnalysisResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	svc := NewService(repository.NewMeetingRepository(), &fakeAnalyzer{}, nil)

	meeting, err := svc.Create("", nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(meeting.ID, "meeting_"))
	require.Equal(t, "Untitled Meeting", meeting.Title)
	require.Equal(t, entities.MeetingStatusCreated, meeting.Status)
	require.NotNil(t, meeting.Participants)

	// Consecutive meetings never collide.
	other, err := svc.Create("Standup", []string{"Alice"})
	require.NoError(t, err)
	require.NotEqual(t, meeting.ID, other.ID)
	require.Len(t, svc.List(), 2)
}

func TestUpdateStatusCompletedRecordsEndTime(t *testing.T) {
	repo := repository.NewMeetingRepository()
	svc := NewService(repo, &fakeAnalyzer{}, nil)

	meeting, err := svc.Create("Standup", nil)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(meeting.ID, entities.MeetingStatusCompleted)
	require.NoError(t, err)
	require.Equal(t, entities.MeetingStatusCompleted, updated.Status)
	require.NotNil(t, updated.EndTime)
}

func TestAnalyzeTextAppendsToMeeting(t *testing.T) {
	repo := repository.NewMeetingRepository()
	analyzer := &fakeAnalyzer{result: &entities.AnalysisResult{
		Insights: []entities.Insight{{Type: entities.InsightTypeKeyPoint, Content: "c"}},
	}}
	svc := NewService(repo, analyzer, nil)

	meeting, err := svc.Create("Standup", nil)
	require.NoError(t, err)

	result, err := svc.AnalyzeText(context.Background(), meeting.ID, "we ship friday", "Alice")
	require.NoError(t, err)
	require.Len(t, result.Insights, 1)

	stored, err := svc.Get(meeting.ID)
	require.NoError(t, err)
	require.Len(t, stored.Transcript, 1)
	require.Equal(t, "[Alice] we ship friday", stored.Transcript[0].Line())
	require.Len(t, stored.Insights, 1)
}

func TestAnalyzeTextWithoutMeeting(t *testing.T) {
	analyzer := &fakeAnalyzer{result: &entities.AnalysisResult{}}
	svc := NewService(repository.NewMeetingRepository(), analyzer, nil)

	// Free-standing analysis is allowed; nothing is stored anywhere.
	_, err := svc.AnalyzeText(context.Background(), "", "hello", "")
	require.NoError(t, err)
	require.Equal(t, 1, analyzer.calls)
}

func TestAnalyzeTextEmpty(t *testing.T) {
	svc := NewService(repository.NewMeetingRepository(), &fakeAnalyzer{}, nil)

	_, err := svc.AnalyzeText(context.Background(), "", "   ", "")
	require.ErrorIs(t, err, entities.ErrEmptyText)
}

func TestAnalyzeTextPropagatesFailure(t *testing.T) {
	svc := NewService(repository.NewMeetingRepository(), &fakeAnalyzer{err: errors.New("down")}, nil)

	_, err := svc.AnalyzeText(context.Background(), "", "hello", "")
	require.Error(t, err)
}
