package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
)

func TestParseAnalysisResponsePlainJSON(t *testing.T) {
	result, err := ParseAnalysisResponse(`{"content_type": "decision", "summary": "done"}`)
	require.NoError(t, err)
	require.Equal(t, "decision", result.ContentType)
	require.Equal(t, "done", result.Summary)
}

func TestParseAnalysisResponseMarkdownFenced(t *testing.T) {
	raw := "```json\n{\"content_type\": \"question\"}\n```"
	result, err := ParseAnalysisResponse(raw)
	require.NoError(t, err)
	require.Equal(t, "question", result.ContentType)

	raw = "```\n{\"content_type\": \"discussion\"}\n```"
	result, err = ParseAnalysisResponse(raw)
	require.NoError(t, err)
	require.Equal(t, "discussion", result.ContentType)
}

func TestParseAnalysisResponseNormalizesDefaults(t *testing.T) {
	result, err := ParseAnalysisResponse(`{}`)
	require.NoError(t, err)

	require.Equal(t, entities.ContentTypeDiscussion, result.ContentType)
	require.Equal(t, "neutral", result.Sentiment)
	require.Equal(t, entities.ActionItemPriorityMedium, result.UrgencyLevel)
	require.NotNil(t, result.KeyPoints)
	require.NotNil(t, result.Insights)
	require.NotNil(t, result.ActionItems)
	require.NotNil(t, result.RelatedTopics)
}

func TestParseAnalysisResponseInvalid(t *testing.T) {
	_, err := ParseAnalysisResponse("not json at all")
	require.Error(t, err)
}
