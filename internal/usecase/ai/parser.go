package ai

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
)

// Parser handles parsing and validation of model responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseSummary parses the JSON summary returned by the model.
// Action items without a title are dropped; over-long fields are truncated.
func (p *Parser) ParseSummary(content string) (*SummaryResult, error) {
	content = extractJSON(content)

	var result SummaryResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	result.Summary = strings.TrimSpace(result.Summary)
	if result.Summary == "" {
		return nil, fmt.Errorf("missing summary in response")
	}

	items := make([]ActionItem, 0, len(result.Tasks))
	for _, item := range result.Tasks {
		item.Title = truncate(strings.TrimSpace(item.Title), maxTitleLen)
		if item.Title == "" {
			continue
		}
		item.Description = truncate(strings.TrimSpace(item.Description), maxDescriptionLen)
		items = append(items, item)
	}
	result.Tasks = items

	return &result, nil
}

// extractJSON strips a markdown code fence around the payload, if any
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
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

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
