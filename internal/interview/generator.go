package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/jobprep/internal/llm"
	"github.com/abhisek/jobprep/internal/resilient"
)

// QuestionGenerator produces a tailored question set for given criteria.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, c Criteria) ([]Question, error)
}

// AnswerEvaluator scores one answer against its question. elapsed is how
// long the candidate took; zero means unknown.
type AnswerEvaluator interface {
	EvaluateAnswer(ctx context.Context, c Criteria, q Question, answerText string, elapsed time.Duration) (*Evaluation, error)
}

// GenConfig controls the LLM-backed generator and evaluator.
type GenConfig struct {
	// MaxTokens is the token budget for one LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultGenConfig returns the recommended generation settings. Question
// sets are larger than single evaluations, so the budget covers the
// worst case of ten questions.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// Generator implements QuestionGenerator using the LLM provider behind the
// resilient executor.
type Generator struct {
	provider llm.Provider
	exec     *resilient.Executor
	config   GenConfig
}

// NewGenerator creates a Generator.
func NewGenerator(provider llm.Provider, exec *resilient.Executor, cfg GenConfig) *Generator {
	return &Generator{provider: provider, exec: exec, config: cfg}
}

// questionOutput is one raw question from the LLM before normalization.
type questionOutput struct {
	Prompt         string   `json:"prompt"`
	Category       string   `json:"category"`
	Difficulty     int      `json:"difficulty"`
	Hint           string   `json:"hint"`
	ExpectedTopics []string `json:"expected_topics"`
}

type questionListOutput struct {
	Questions []questionOutput `json:"questions"`
}

// GenerateQuestions produces c.QuestionCount questions in one resilient
// call. A malformed or short response is a provider failure, never silently
// padded or defaulted.
func (g *Generator) GenerateQuestions(ctx context.Context, c Criteria) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: generationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGenerationMessage(c)},
		},
		Schema:      QuestionListSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	out, err := resilient.Do(ctx, g.exec, "generate-questions", func(ctx context.Context) (*questionListOutput, error) {
		resp, err := g.provider.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		return parseQuestionList(resp.Content, c.QuestionCount)
	})
	if err != nil {
		return nil, &GenerationFailedError{Err: err}
	}

	questions := make([]Question, len(out.Questions))
	for i, raw := range out.Questions {
		questions[i] = Question{
			ID:             uuid.NewString(),
			Prompt:         raw.Prompt,
			Category:       raw.Category,
			Difficulty:     clampInt(raw.Difficulty, 1, 5),
			Hint:           raw.Hint,
			TimeLimit:      DefaultTimeLimit,
			ExpectedTopics: raw.ExpectedTopics,
		}
	}
	return questions, nil
}

// parseQuestionList decodes and sanity-checks the raw response. Defects are
// reported as ErrInvalidResponse so the executor grants its single retry.
func parseQuestionList(content json.RawMessage, want int) (*questionListOutput, error) {
	var out questionListOutput
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: content, Err: err}
	}
	if len(out.Questions) == 0 {
		return nil, &llm.ErrInvalidResponse{Content: content, Err: fmt.Errorf("empty question list")}
	}
	if len(out.Questions) < want {
		return nil, &llm.ErrInvalidResponse{
			Content: content,
			Err:     fmt.Errorf("got %d questions, want %d", len(out.Questions), want),
		}
	}
	for i, q := range out.Questions {
		if q.Prompt == "" {
			return nil, &llm.ErrInvalidResponse{Content: content, Err: fmt.Errorf("question %d has empty prompt", i)}
		}
	}
	// Trim any surplus beyond the requested count.
	if len(out.Questions) > want {
		out.Questions = out.Questions[:want]
	}
	return &out, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
