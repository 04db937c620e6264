// Package analysis turns single meeting utterances into structured insights
// using a language model, with a cache in front of the model call.
package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
	"github.com/meetingmind-team/meetingmind/internal/infrastructure/cache"
	"github.com/meetingmind-team/meetingmind/internal/infrastructure/metrics"
)

// Generator produces text from a prompt.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service analyzes utterances. Identical speaker and text pairs within the
// cache TTL are served from cache without hitting the model.
type Service struct {
	generator Generator
	cache     cache.Store
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewService creates an analysis service. The cache may be nil to disable
// caching.
func NewService(generator Generator, store cache.Store, cacheTTL time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		generator: generator,
		cache:     store,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Analyze runs one utterance through the model and returns the structured
// result. The call is never retried; the caller decides what a failure means.
func (s *Service) Analyze(ctx context.Context, text string, actx entities.AnalysisContext) (*entities.AnalysisResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, entities.ErrEmptyText
	}

	key := cacheKey(actx.Speaker, text)
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var result entities.AnalysisResult
			if err := json.Unmarshal([]byte(raw), &result); err == nil {
				metrics.RecordAnalysisCall("cached")
				s.logger.Debug("analysis served from cache",
					zap.String("meeting_id", actx.MeetingID))
				return &result, nil
			}
			s.cache.Delete(ctx, key)
		}
	}

	raw, err := s.generator.GenerateContent(ctx, buildAnalysisPrompt(text, actx))
	if err != nil {
		metrics.RecordAnalysisCall("error")
		return nil, fmt.Errorf("analysis call failed: %w", err)
	}

	result, err := ParseAnalysisResponse(raw)
	if err != nil {
		metrics.RecordAnalysisCall("error")
		return nil, err
	}
	metrics.RecordAnalysisCall("success")

	if s.cache != nil {
		if b, err := json.Marshal(result); err == nil {
			s.cache.Set(ctx, key, string(b), s.cacheTTL)
		}
	}
	return result, nil
}

// cacheKey hashes the speaker and text so arbitrarily long utterances map to
// fixed-size keys.
func cacheKey(speaker, text string) string {
	sum := sha256.Sum256([]byte(speaker + "\x00" + text))
	return "analysis:" + hex.EncodeToString(sum[:])
}

// buildAnalysisPrompt creates the structured prompt for one utterance.
func buildAnalysisPrompt(text string, actx entities.AnalysisContext) string {
	speaker := actx.Speaker
	if speaker == "" {
		speaker = "Unknown"
	}

	return fmt.Sprintf(`You are a meeting analysis expert. Analyze the following meeting statement and provide structured insights.

Speaker: %s
Statement: %q

Respond in the following JSON format:
{
    "content_type": "type of this statement (discussion, action_item, decision, question, off_topic)",
    "key_points": ["key point 1", "key point 2"],
    "insights": [
        {
            "type": "key_point|decision|action_item|question",
            "content": "specific insight content",
            "importance": "high|medium|low",
            "confidence": 0.85
        }
    ],
    "action_items": [
        {
            "description": "concrete action item",
            "assignee": "owner (null when not stated)",
            "due_date": "deadline in YYYY-MM-DD format (null when not stated)",
            "priority": "high|medium|low",
            "confidence": 0.90
        }
    ],
    "sentiment": "positive|neutral|negative",
    "urgency_level": "high|medium|low",
    "follow_up_needed": true,
    "related_topics": ["related topic 1", "related topic 2"],
    "summary": "one or two sentence summary of this statement"
}

Analysis criteria:
1. Action items: commitments, assignments, deadlines
2. Decisions: explicit choices or agreements
3. Key points: important information or discussion topics
4. Questions: statements that require an answer
5. Urgency: time pressure or priority mentions

Respond with valid JSON only. Do not add any explanation.`, speaker, text)
}
