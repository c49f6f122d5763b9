// Package coverletter drafts a tailored cover letter from a resume summary
// and a job description.
package coverletter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/jobprep/internal/interview"
	"github.com/abhisek/jobprep/internal/llm"
	"github.com/abhisek/jobprep/internal/resilient"
)

// Tones the drafter understands. Unknown values normalize to ToneFormal.
const (
	ToneFormal         = "formal"
	ToneConversational = "conversational"
	ToneEnthusiastic   = "enthusiastic"
)

// NormalizeTone coerces unknown tones to ToneFormal.
func NormalizeTone(tone string) string {
	switch strings.ToLower(strings.TrimSpace(tone)) {
	case ToneConversational:
		return ToneConversational
	case ToneEnthusiastic:
		return ToneEnthusiastic
	default:
		return ToneFormal
	}
}

// Letter is one drafted cover letter.
type Letter struct {
	Body          string
	TalkingPoints []string
	Tone          string
}

// Service drafts cover letters through the LLM provider.
type Service struct {
	provider llm.Provider
	exec     *resilient.Executor
	config   interview.GenConfig
}

// New creates a cover letter Service.
func New(provider llm.Provider, exec *resilient.Executor, cfg interview.GenConfig) *Service {
	return &Service{provider: provider, exec: exec, config: cfg}
}

const systemPrompt = `You are a career coach drafting a cover letter for a specific job application.

Rules:
- The letter is three to four paragraphs: hook, evidence, fit, close. Under 350 words.
- Ground every claim in the candidate's background; never invent experience.
- Mirror key language from the job description where the background genuinely supports it.
- Match the requested tone: formal, conversational, or enthusiastic.
- Talking points are the three to five strongest candidate-to-role matches, usable in an interview.
- No placeholders like [Company] or [Your Name]; write around missing details instead.`

var letterSchema = &llm.Schema{
	Name:        "cover-letter",
	Description: "A drafted cover letter with its key talking points",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"body": map[string]any{
				"type":        "string",
				"description": "The full cover letter text",
			},
			"talking_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Three to five strongest candidate-to-role matches",
			},
		},
		"required":             []any{"body", "talking_points"},
		"additionalProperties": false,
	},
}

type letterOutput struct {
	Body          string   `json:"body"`
	TalkingPoints []string `json:"talking_points"`
}

// Draft writes a cover letter in one resilient call.
func (s *Service) Draft(ctx context.Context, resumeSummary, jobDescription, tone string) (*Letter, error) {
	if strings.TrimSpace(resumeSummary) == "" {
		return nil, &interview.ValidationError{Field: "resume_summary", Reason: "must not be empty"}
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &interview.ValidationError{Field: "job_description", Reason: "must not be empty"}
	}
	tone = NormalizeTone(tone)

	ctx = llm.WithPurpose(ctx, "cover-letter")

	var b strings.Builder
	fmt.Fprintf(&b, "Tone: %s\n\n", tone)
	b.WriteString("Candidate background:\n")
	b.WriteString(resumeSummary)
	b.WriteString("\n\nJob description:\n")
	b.WriteString(jobDescription)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      letterSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	out, err := resilient.Do(ctx, s.exec, "cover-letter", func(ctx context.Context) (*letterOutput, error) {
		resp, err := s.provider.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		var out letterOutput
		if err := json.Unmarshal(resp.Content, &out); err != nil {
			return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
		}
		if strings.TrimSpace(out.Body) == "" {
			return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("empty letter body")}
		}
		return &out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("cover letter draft failed: %w", err)
	}

	return &Letter{
		Body:          out.Body,
		TalkingPoints: out.TalkingPoints,
		Tone:          tone,
	}, nil
}
