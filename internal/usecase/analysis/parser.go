package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meetingmind-team/meetingmind/internal/domain/entities"
)

// ParseAnalysisResponse parses the model's JSON output into an AnalysisResult
func ParseAnalysisResponse(raw string) (*entities.AnalysisResult, error) {
	// Extract JSON from response (the model might wrap it in markdown code blocks)
	raw = extractJSON(raw)

	var result entities.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	result.Normalize()
	return &result, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
