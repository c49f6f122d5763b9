// Package jobs scores how well a candidate fits a set of job postings.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/jobprep/internal/interview"
	"github.com/abhisek/jobprep/internal/llm"
	"github.com/abhisek/jobprep/internal/resilient"
)

// MaxJobsPerMatch caps one matching call.
const MaxJobsPerMatch = 10

// Verdicts for a single job fit.
const (
	VerdictStrong = "strong"
	VerdictFair   = "fair"
	VerdictWeak   = "weak"
)

// Posting is one job to score.
type Posting struct {
	ID          string
	Title       string
	Company     string
	Description string
}

// Match is the fit assessment for one posting.
type Match struct {
	PostingID     string
	FitScore      int // 0-100
	Verdict       string
	MatchedSkills []string
	MissingSkills []string
	Rationale     string
}

// Service scores postings against a candidate through the LLM provider.
type Service struct {
	provider llm.Provider
	exec     *resilient.Executor
	config   interview.GenConfig
}

// New creates a job matching Service.
func New(provider llm.Provider, exec *resilient.Executor, cfg interview.GenConfig) *Service {
	return &Service{provider: provider, exec: exec, config: cfg}
}

const systemPrompt = `You are a recruiter assessing how well one candidate fits a list of job postings.

Rules:
- Score each posting from 0 to 100 for this candidate. 85+ means apply now, below 50 means skip.
- The verdict is "strong" (85+), "fair" (50-84), or "weak" (below 50), consistent with the score.
- Matched skills are requirements from the posting the candidate demonstrably has; missing skills are requirements they lack.
- The rationale is one or two sentences naming the decisive factors.
- Return one assessment per posting, keyed by the posting id, in the order given.
- Judge only from the candidate summary; never assume unstated experience.`

var matchSchema = &llm.Schema{
	Name:        "job-matches",
	Description: "Fit assessments for a candidate against job postings",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"matches": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"posting_id": map[string]any{
							"type":        "string",
							"description": "The id of the posting being assessed",
						},
						"fit_score": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     100,
							"description": "Fit from 0 to 100",
						},
						"verdict": map[string]any{
							"type": "string",
							"enum": []any{"strong", "fair", "weak"},
						},
						"matched_skills": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"missing_skills": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"rationale": map[string]any{
							"type":        "string",
							"description": "One or two sentences on the decisive factors",
						},
					},
					"required":             []any{"posting_id", "fit_score", "verdict", "matched_skills", "missing_skills", "rationale"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"matches"},
		"additionalProperties": false,
	},
}

type matchOutput struct {
	PostingID     string   `json:"posting_id"`
	FitScore      *int     `json:"fit_score"`
	Verdict       string   `json:"verdict"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Rationale     string   `json:"rationale"`
}

type matchListOutput struct {
	Matches []matchOutput `json:"matches"`
}

// MatchJobs scores every posting for the candidate in one resilient call.
func (s *Service) MatchJobs(ctx context.Context, resumeSummary string, postings []Posting) ([]Match, error) {
	if strings.TrimSpace(resumeSummary) == "" {
		return nil, &interview.ValidationError{Field: "resume_summary", Reason: "must not be empty"}
	}
	if len(postings) == 0 {
		return nil, &interview.ValidationError{Field: "postings", Reason: "must not be empty"}
	}
	if len(postings) > MaxJobsPerMatch {
		return nil, &interview.ValidationError{
			Field:  "postings",
			Reason: fmt.Sprintf("at most %d postings per call", MaxJobsPerMatch),
		}
	}

	ctx = llm.WithPurpose(ctx, "job-match")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildMatchMessage(resumeSummary, postings)},
		},
		Schema:      matchSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	out, err := resilient.Do(ctx, s.exec, "job-match", func(ctx context.Context) (*matchListOutput, error) {
		resp, err := s.provider.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		return parseMatches(resp.Content, postings)
	})
	if err != nil {
		return nil, fmt.Errorf("job matching failed: %w", err)
	}

	matches := make([]Match, len(out.Matches))
	for i, m := range out.Matches {
		score := *m.FitScore
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		matches[i] = Match{
			PostingID:     m.PostingID,
			FitScore:      score,
			Verdict:       m.Verdict,
			MatchedSkills: m.MatchedSkills,
			MissingSkills: m.MissingSkills,
			Rationale:     m.Rationale,
		}
	}
	return matches, nil
}

func buildMatchMessage(resumeSummary string, postings []Posting) string {
	var b strings.Builder

	b.WriteString("Candidate summary:\n")
	b.WriteString(resumeSummary)
	b.WriteString("\n\nPostings:\n")
	for _, p := range postings {
		fmt.Fprintf(&b, "\n[id: %s] %s", p.ID, p.Title)
		if p.Company != "" {
			fmt.Fprintf(&b, " at %s", p.Company)
		}
		b.WriteString("\n")
		b.WriteString(p.Description)
		b.WriteString("\n")
	}
	return b.String()
}

// parseMatches checks that every posting got exactly one assessment. A
// mismatched response is reported as ErrInvalidResponse for the retry.
func parseMatches(content json.RawMessage, postings []Posting) (*matchListOutput, error) {
	var out matchListOutput
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: content, Err: err}
	}
	if len(out.Matches) != len(postings) {
		return nil, &llm.ErrInvalidResponse{
			Content: content,
			Err:     fmt.Errorf("got %d matches for %d postings", len(out.Matches), len(postings)),
		}
	}

	known := make(map[string]bool, len(postings))
	for _, p := range postings {
		known[p.ID] = true
	}
	for _, m := range out.Matches {
		if m.FitScore == nil {
			return nil, &llm.ErrInvalidResponse{Content: content, Err: fmt.Errorf("missing fit score for %q", m.PostingID)}
		}
		if !known[m.PostingID] {
			return nil, &llm.ErrInvalidResponse{Content: content, Err: fmt.Errorf("unknown posting id %q", m.PostingID)}
		}
	}
	return &out, nil
}
