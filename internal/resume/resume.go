// Package resume critiques a resume against a target role: structured
// strengths, improvements, ATS keyword suggestions, and an overall score.
package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/jobprep/internal/interview"
	"github.com/abhisek/jobprep/internal/llm"
	"github.com/abhisek/jobprep/internal/resilient"
)

// MaxResumeChars caps the resume text sent to the model.
const MaxResumeChars = 20000

// Critique is the structured review of one resume.
type Critique struct {
	Summary      string
	Score        int // 0-100
	Strengths    []string
	Improvements []string
	ATSKeywords  []string
}

// Service produces resume critiques through the LLM provider.
type Service struct {
	provider llm.Provider
	exec     *resilient.Executor
	config   interview.GenConfig
}

// New creates a resume critique Service.
func New(provider llm.Provider, exec *resilient.Executor, cfg interview.GenConfig) *Service {
	return &Service{provider: provider, exec: exec, config: cfg}
}

const systemPrompt = `You are a professional resume reviewer and former technical recruiter.

Rules:
- Review the resume for the target role when one is given, otherwise for the roles the resume itself implies.
- Score from 0 to 100 on relevance, impact, and clarity. A resume with no quantified achievements cannot score above 70.
- The summary is two to three sentences describing the overall impression.
- Strengths and improvements are short, concrete bullet points; at most five of each.
- ATS keywords are terms from the target role that the resume is missing or underusing, most important first.
- Base everything only on what the resume actually says.`

// critiqueSchema defines the structured critique output.
var critiqueSchema = &llm.Schema{
	Name:        "resume-critique",
	Description: "A structured review of a resume",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two to three sentence overall impression",
			},
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall resume quality from 0 to 100",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to 5 things the resume does well",
			},
			"improvements": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to 5 concrete improvements",
			},
			"ats_keywords": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Missing or underused keywords for the target role",
			},
		},
		"required":             []any{"summary", "score", "strengths", "improvements", "ats_keywords"},
		"additionalProperties": false,
	},
}

type critiqueOutput struct {
	Summary      string   `json:"summary"`
	Score        *int     `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	ATSKeywords  []string `json:"ats_keywords"`
}

// Critique reviews resumeText for targetRole in one resilient call.
func (s *Service) Critique(ctx context.Context, resumeText, targetRole string) (*Critique, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return nil, &interview.ValidationError{Field: "resume_text", Reason: "must not be empty"}
	}
	if len(resumeText) > MaxResumeChars {
		resumeText = resumeText[:MaxResumeChars]
	}

	ctx = llm.WithPurpose(ctx, "resume-critique")

	var b strings.Builder
	if targetRole != "" {
		fmt.Fprintf(&b, "Target role: %s\n\n", targetRole)
	}
	b.WriteString("Resume:\n")
	b.WriteString(resumeText)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      critiqueSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	out, err := resilient.Do(ctx, s.exec, "resume-critique", func(ctx context.Context) (*critiqueOutput, error) {
		resp, err := s.provider.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		var out critiqueOutput
		if err := json.Unmarshal(resp.Content, &out); err != nil {
			return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
		}
		if out.Score == nil {
			return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("missing score")}
		}
		return &out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("resume critique failed: %w", err)
	}

	score := *out.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &Critique{
		Summary:      out.Summary,
		Score:        score,
		Strengths:    out.Strengths,
		Improvements: out.Improvements,
		ATSKeywords:  out.ATSKeywords,
	}, nil
}
