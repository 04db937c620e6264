package summary

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meetingmind-team/meetingmind/internal/adapter/repository"
	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
	"github.com/meetingmind-team/meetingmind/internal/domain/repositories"
	"github.com/meetingmind-team/meetingmind/pkg/export"
)

type fakeGenerator struct {
	response string
	err      error
	prompt   string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeUploader struct {
	objects map[string]string
	fail    bool
}

func (f *fakeUploader) UploadContent(_ context.Context, objectName, content, _ string) error {
	if f.fail {
		return errors.New("storage unavailable")
	}
	if f.objects == nil {
		f.objects = make(map[string]string)
	}
	f.objects[objectName] = content
	return nil
}

func (f *fakeUploader) GetFileURL(_ context.Context, objectName string, _ time.Duration) (string, error) {
	return "https://storage.example.com/" + objectName, nil
}

const validSummaryResponse = `{
	"executive_summary": "The team agreed to ship the release on Friday.",
	"main_topics": ["release planning"],
	"key_decisions": [{"decision": "Ship Friday", "rationale": "Deadline", "impact": "High"}],
	"action_items_summary": [{"description": "Cut the release", "assignee": "Bob", "due_date": "2026-08-29", "priority": "high"}],
	"next_steps": ["Prepare release notes"],
	"risks_and_concerns": [{"risk": "QA time is short", "severity": "medium", "mitigation": "Focus on smoke tests"}],
	"follow_up_meeting": {"needed": true, "suggested_date": "2026-09-01", "agenda_items": ["Retro"]},
	"meeting_effectiveness": {"score": 8, "strengths": ["Focused"], "improvements": ["Start on time"]}
}`

func seedMeeting(t *testing.T) repositories.MeetingRepository {
	t.Helper()
	repo := repository.NewMeetingRepository()
	meeting := entities.NewMeeting("meeting_1", "Release Planning", []string{"Alice", "Bob"})
	require.NoError(t, repo.Create(meeting))

	entry := entities.TranscriptEntry{Speaker: "Alice", Text: "we ship friday", Timestamp: time.Now().UTC()}
	result := &entities.AnalysisResult{
		Insights: []entities.Insight{{Type: entities.InsightTypeDecision, Content: "ship friday"}},
	}
	require.NoError(t, repo.AppendAnalysis("meeting_1", entry, result))
	return repo
}

func TestGenerateStoresSummary(t *testing.T) {
	repo := seedMeeting(t)
	gen := &fakeGenerator{response: validSummaryResponse}
	svc := NewService(repo, gen, nil, nil)

	summary, err := svc.Generate(context.Background(), "meeting_1")
	require.NoError(t, err)
	require.Equal(t, "meeting_1", summary.MeetingID)
	require.Equal(t, "The team agreed to ship the release on Friday.", summary.ExecutiveSummary)
	require.Equal(t, []string{"Alice", "Bob"}, summary.Participants)
	require.Equal(t, 1, summary.RawStats.TotalInsights)

	// The prompt carries the transcript and the collected artifacts.
	require.Contains(t, gen.prompt, "[Alice] we ship friday")
	require.Contains(t, gen.prompt, "ship friday")

	stored, err := repo.FindByID("meeting_1")
	require.NoError(t, err)
	require.NotNil(t, stored.Summary)
	require.Equal(t, summary.ExecutiveSummary, stored.Summary.ExecutiveSummary)
}

func TestGenerateEmptyTranscript(t *testing.T) {
	repo := repository.NewMeetingRepository()
	require.NoError(t, repo.Create(entities.NewMeeting("meeting_1", "t", nil)))

	svc := NewService(repo, &fakeGenerator{response: validSummaryResponse}, nil, nil)
	_, err := svc.Generate(context.Background(), "meeting_1")
	require.ErrorIs(t, err, entities.ErrEmptyTranscript)
}

func TestGenerateUnknownMeeting(t *testing.T) {
	svc := NewService(repository.NewMeetingRepository(), &fakeGenerator{}, nil, nil)
	_, err := svc.Generate(context.Background(), "missing")
	require.ErrorIs(t, err, entities.ErrMeetingNotFound)
}

func TestGenerateModelFailure(t *testing.T) {
	repo := seedMeeting(t)
	svc := NewService(repo, &fakeGenerator{err: errors.New("model down")}, nil, nil)

	_, err := svc.Generate(context.Background(), "meeting_1")
	require.Error(t, err)

	stored, err := repo.FindByID("meeting_1")
	require.NoError(t, err)
	require.Nil(t, stored.Summary)
}

func TestGenerateMissingExecutiveSummary(t *testing.T) {
	repo := seedMeeting(t)
	svc := NewService(repo, &fakeGenerator{response: `{"main_topics": ["x"]}`}, nil, nil)

	_, err := svc.Generate(context.Background(), "meeting_1")
	require.Error(t, err)
}

func TestExportWithoutSummary(t *testing.T) {
	repo := seedMeeting(t)
	svc := NewService(repo, &fakeGenerator{response: validSummaryResponse}, nil, nil)

	_, err := svc.Export(context.Background(), "meeting_1", export.FormatMarkdown)
	require.ErrorIs(t, err, entities.ErrSummaryNotFound)
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := NewService(repository.NewMeetingRepository(), &fakeGenerator{}, nil, nil)
	_, err := svc.Export(context.Background(), "meeting_1", "pdf")
	require.ErrorIs(t, err, entities.ErrUnsupportedFormat)
}

func TestExportArchivesDocument(t *testing.T) {
	repo := seedMeeting(t)
	gen := &fakeGenerator{response: validSummaryResponse}
	uploader := &fakeUploader{}
	svc := NewService(repo, gen, uploader, nil)

	_, err := svc.Generate(context.Background(), "meeting_1")
	require.NoError(t, err)

	result, err := svc.Export(context.Background(), "meeting_1", export.FormatMarkdown)
	require.NoError(t, err)
	require.Contains(t, result.Document.Content, "Ship Friday")
	require.True(t, strings.HasSuffix(result.Document.Filename, ".md"))
	require.Contains(t, result.URL, "exports/meeting_1/")
	require.Len(t, uploader.objects, 1)
}

func TestExportSurvivesStorageFailure(t *testing.T) {
	repo := seedMeeting(t)
	gen := &fakeGenerator{response: validSummaryResponse}
	svc := NewService(repo, gen, &fakeUploader{fail: true}, nil)

	_, err := svc.Generate(context.Background(), "meeting_1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	result, err := svc.Export(ctx, "meeting_1", export.FormatJSON)
	require.NoError(t, err)
	require.NotEmpty(t, result.Document.Content)
	require.Empty(t, result.URL)
}
