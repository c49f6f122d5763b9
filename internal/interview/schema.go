package interview

import "github.com/abhisek/jobprep/internal/llm"

// QuestionListSchema defines the structured output for question generation.
var QuestionListSchema = &llm.Schema{
	Name:        "interview-questions",
	Description: "A set of interview questions tailored to a job application",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question exactly as the interviewer would ask it",
						},
						"category": map[string]any{
							"type":        "string",
							"enum":        []any{"behavioral", "technical", "situational"},
							"description": "The kind of question",
						},
						"difficulty": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     5,
							"description": "Difficulty from 1 (warm-up) to 5 (hard)",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "A short nudge toward a strong answer, e.g. a framework like STAR",
						},
						"expected_topics": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Topics a strong answer is expected to touch",
						},
					},
					"required":             []any{"prompt", "category", "difficulty", "hint", "expected_topics"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// EvaluationSchema defines the structured output for answer evaluation.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "A structured assessment of a candidate's interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall answer quality from 0 to 100",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Two to four sentences of direct, constructive feedback",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to 5 things the answer did well",
			},
			"improvements": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to 5 concrete ways to improve the answer",
			},
			"model_answer": map[string]any{
				"type":        "string",
				"description": "A brief example of a strong answer to the same question",
			},
		},
		"required":             []any{"score", "feedback", "strengths", "improvements"},
		"additionalProperties": false,
	},
}
