package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"zenith-planner/pkg/gemini"
	"zenith-planner/pkg/log"
)

type geminiExtractor struct {
	l   log.Logger
	llm *gemini.Client
}

// NewGemini creates a Gemini-backed Extractor.
func NewGemini(l log.Logger, llm *gemini.Client) Extractor {
	return &geminiExtractor{l: l, llm: llm}
}

// Extract sends one task description to Gemini and parses the JSON
// candidate out of its reply.
func (e *geminiExtractor) Extract(ctx context.Context, text string, ref time.Time) (Candidate, error) {
	prompt := gemini.BuildTaskParsingPrompt(text, ref)

	resp, err := e.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2, // low temperature for deterministic JSON output
			MaxOutputTokens: 1024,
		},
	})
	if err != nil {
		return Candidate{}, fmt.Errorf("extraction request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return Candidate{}, fmt.Errorf("empty response from extraction service")
	}

	responseText := resp.Candidates[0].Content.Parts[0].Text
	cleaned := sanitizeJSONResponse(responseText)

	var cand Candidate
	if err := json.Unmarshal([]byte(cleaned), &cand); err != nil {
		e.l.Errorf(ctx, "extraction: failed to parse response. Raw=%q Cleaned=%q", responseText, cleaned)
		return Candidate{}, fmt.Errorf("failed to parse extraction JSON response: %w", err)
	}

	return cand, nil
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := fenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first { and last }
	start := strings.IndexAny(text, "{[")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "}]")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
