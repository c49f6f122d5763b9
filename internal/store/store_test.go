package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Monotonically increasing starting from 1.
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"question-gen", "answer-eval", "answer-eval"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.0-flash",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    800,
			Success:      true,
			RequestBody:  "[user]\nhello",
			ResponseBody: `{"ok":true}`,
		})
		require.NoError(t, err, "append %d", i)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Greater(t, events[0].Sequence, events[1].Sequence)
	assert.Equal(t, "answer-eval", events[0].Purpose)

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "[user]\nhello", got.RequestBody)

	missing, err := repo.GetLLMEvent(ctx, 99999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 200, LatencyMs: 1000, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 200, LatencyMs: 3000, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "answer-eval", InputTokens: 50, OutputTokens: 10, LatencyMs: 500, Success: false},
	}
	for i, d := range data {
		require.NoError(t, repo.AppendLLMRequest(ctx, d), "append %d", i)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)

	// Ordered by call count descending.
	assert.Equal(t, "question-gen", byPurpose[0].Purpose)
	assert.Equal(t, 2, byPurpose[0].Calls)
	assert.Equal(t, 200, byPurpose[0].InputTokens)
	assert.Equal(t, 400, byPurpose[0].OutputTokens)
	assert.Equal(t, int64(2000), byPurpose[0].AvgLatencyMs)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gemini-2.0-flash", byModel[0].Model)
}

func TestAppendInterviewAndAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendInterviewEvent(ctx, InterviewEventData{
		SessionID:      "sess-1",
		Action:         "started",
		JobTitle:       "Backend Engineer",
		InterviewType:  "mixed",
		Difficulty:     "mid",
		QuestionsTotal: 3,
	})
	require.NoError(t, err)

	err = repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID:     "sess-1",
		QuestionID:    "q-1",
		QuestionIndex: 0,
		Category:      "behavioral",
		Difficulty:    3,
		QuestionText:  "Tell me about a conflict.",
		AnswerText:    "We talked it through.",
		Score:         80,
		TimeMs:        45000,
	})
	require.NoError(t, err)

	err = repo.AppendInterviewEvent(ctx, InterviewEventData{
		SessionID:         "sess-1",
		Action:            "finalized",
		JobTitle:          "Backend Engineer",
		QuestionsTotal:    3,
		QuestionsAnswered: 2,
		QuestionsSkipped:  1,
		AverageScore:      70,
		BestScore:         80,
		Classification:    "good",
	})
	require.NoError(t, err)

	records, err := repo.QueryInterviewEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "finalized", records[0].Action)
	assert.Equal(t, 70, records[0].AverageScore)
	assert.Equal(t, "started", records[1].Action)
}
