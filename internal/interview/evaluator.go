package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/jobprep/internal/llm"
	"github.com/abhisek/jobprep/internal/resilient"
)

// Evaluator implements AnswerEvaluator using the LLM provider behind the
// resilient executor.
type Evaluator struct {
	provider llm.Provider
	exec     *resilient.Executor
	config   GenConfig
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(provider llm.Provider, exec *resilient.Executor, cfg GenConfig) *Evaluator {
	return &Evaluator{provider: provider, exec: exec, config: cfg}
}

// evaluationOutput is the raw LLM response before clamping.
type evaluationOutput struct {
	Score        *int     `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	ModelAnswer  string   `json:"model_answer"`
}

// EvaluateAnswer scores one answer in a single resilient call. A response
// with no score or no feedback is a provider failure; the engine never
// substitutes a default score.
func (e *Evaluator) EvaluateAnswer(ctx context.Context, c Criteria, q Question, answerText string, elapsed time.Duration) (*Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "answer-eval")

	req := llm.Request{
		System: evaluationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluationMessage(c, q, answerText, elapsed)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	out, err := resilient.Do(ctx, e.exec, "evaluate-answer", func(ctx context.Context) (*evaluationOutput, error) {
		resp, err := e.provider.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		return parseEvaluation(resp.Content)
	})
	if err != nil {
		return nil, &EvaluationFailedError{QuestionID: q.ID, Err: err}
	}

	ev := &Evaluation{
		Score:        clampInt(*out.Score, 0, 100),
		Feedback:     out.Feedback,
		Strengths:    trimList(out.Strengths, MaxListedPoints),
		Improvements: trimList(out.Improvements, MaxListedPoints),
		ModelAnswer:  out.ModelAnswer,
	}
	return ev, nil
}

// parseEvaluation decodes the raw response. A missing score or blank
// feedback is reported as ErrInvalidResponse for the single retry.
func parseEvaluation(content json.RawMessage) (*evaluationOutput, error) {
	var out evaluationOutput
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: content, Err: err}
	}
	if out.Score == nil {
		return nil, &llm.ErrInvalidResponse{Content: content, Err: fmt.Errorf("missing score")}
	}
	if strings.TrimSpace(out.Feedback) == "" {
		return nil, &llm.ErrInvalidResponse{Content: content, Err: fmt.Errorf("missing feedback")}
	}
	return &out, nil
}

func trimList(items []string, max int) []string {
	out := items[:0:0]
	for _, s := range items {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
		if len(out) == max {
			break
		}
	}
	return out
}
