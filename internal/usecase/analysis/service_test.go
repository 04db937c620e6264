package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
	"github.com/meetingmind-team/meetingmind/internal/infrastructure/cache"
)

type fakeGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeGenerator) GenerateContent(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const validResponse = `{
	"content_type": "action_item",
	"key_points": ["ship on Friday"],
	"insights": [{"type": "action_item", "content": "release planned", "importance": "high", "confidence": 0.9}],
	"action_items": [{"description": "Cut the release", "assignee": "Bob", "priority": "high", "confidence": 0.95}],
	"sentiment": "positive",
	"urgency_level": "high",
	"follow_up_needed": true,
	"related_topics": ["release"],
	"summary": "The team will ship on Friday."
}`

func TestAnalyzeParsesModelOutput(t *testing.T) {
	gen := &fakeGenerator{response: validResponse}
	svc := NewService(gen, nil, 0, nil)

	result, err := svc.Analyze(context.Background(), "we ship friday", entities.AnalysisContext{Speaker: "Alice"})
	require.NoError(t, err)
	require.Equal(t, "action_item", result.ContentType)
	require.Len(t, result.Insights, 1)
	require.Len(t, result.ActionItems, 1)
	require.Equal(t, "Cut the release", result.ActionItems[0].Description)
}

func TestAnalyzeEmptyText(t *testing.T) {
	svc := NewService(&fakeGenerator{}, nil, 0, nil)

	_, err := svc.Analyze(context.Background(), "   ", entities.AnalysisContext{})
	require.ErrorIs(t, err, entities.ErrEmptyText)
}

func TestAnalyzeGeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream down")}
	svc := NewService(gen, nil, 0, nil)

	_, err := svc.Analyze(context.Background(), "hello", entities.AnalysisContext{})
	require.Error(t, err)
}

func TestAnalyzeUnparseableOutput(t *testing.T) {
	gen := &fakeGenerator{response: "I cannot help with that"}
	svc := NewService(gen, nil, 0, nil)

	_, err := svc.Analyze(context.Background(), "hello", entities.AnalysisContext{})
	require.Error(t, err)
}

func TestAnalyzeServesRepeatedInputFromCache(t *testing.T) {
	gen := &fakeGenerator{response: validResponse}
	svc := NewService(gen, cache.NewMemoryStore(), time.Minute, nil)

	actx := entities.AnalysisContext{Speaker: "Alice", MeetingID: "meeting_1"}
	first, err := svc.Analyze(context.Background(), "we ship friday", actx)
	require.NoError(t, err)

	second, err := svc.Analyze(context.Background(), "we ship friday", actx)
	require.NoError(t, err)

	require.Equal(t, 1, gen.calls)
	require.Equal(t, first.Summary, second.Summary)

	// A different speaker saying the same thing is a different cache entry.
	_, err = svc.Analyze(context.Background(), "we ship friday", entities.AnalysisContext{Speaker: "Bob"})
	require.NoError(t, err)
	require.Equal(t, 2, gen.calls)
}
