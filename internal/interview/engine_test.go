package interview

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// stubGenerator returns a fixed question set.
type stubGenerator struct {
	questions []Question
	err       error
}

func (g *stubGenerator) GenerateQuestions(ctx context.Context, c Criteria) ([]Question, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.questions, nil
}

// stubEvaluator returns canned evaluations and errors in FIFO order.
type stubEvaluator struct {
	results []evalResult
	calls   int
}

type evalResult struct {
	eval *Evaluation
	err  error
}

func (e *stubEvaluator) EvaluateAnswer(ctx context.Context, c Criteria, q Question, answerText string, elapsed time.Duration) (*Evaluation, error) {
	if e.calls >= len(e.results) {
		return nil, fmt.Errorf("unexpected evaluation call %d", e.calls)
	}
	r := e.results[e.calls]
	e.calls++
	return r.eval, r.err
}

func testQuestions(n int, timeLimit time.Duration) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:         fmt.Sprintf("q%d", i+1),
			Prompt:     fmt.Sprintf("Question %d", i+1),
			Category:   CategoryBehavioral,
			Difficulty: 3,
			TimeLimit:  timeLimit,
		}
	}
	return qs
}

func newTestEngine(questions []Question, results ...evalResult) *Engine {
	return NewEngine(
		&stubGenerator{questions: questions},
		&stubEvaluator{results: results},
		nil,
	)
}

func TestEngine_StartPresentsFirstQuestion(t *testing.T) {
	e := newTestEngine(testQuestions(3, DefaultTimeLimit))

	sess, err := e.Start(context.Background(), Criteria{JobTitle: "Backend Engineer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, err := e.Snapshot(sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Status != StatusQuestionActive {
		t.Fatalf("status = %s, want %s", snap.Status, StatusQuestionActive)
	}
	if snap.TotalQuestions != 3 {
		t.Fatalf("total questions = %d, want 3", snap.TotalQuestions)
	}
	if snap.CurrentQuestion == nil || snap.CurrentQuestion.ID != "q1" {
		t.Fatalf("expected q1 active, got %+v", snap.CurrentQuestion)
	}
	if snap.Remaining <= 0 || snap.Remaining > DefaultTimeLimit {
		t.Fatalf("remaining = %s, want within (0, %s]", snap.Remaining, DefaultTimeLimit)
	}
}

func TestEngine_StartRejectsInvalidCriteria(t *testing.T) {
	e := newTestEngine(testQuestions(1, DefaultTimeLimit))

	_, err := e.Start(context.Background(), Criteria{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestEngine_StartPropagatesGenerationFailure(t *testing.T) {
	e := NewEngine(&stubGenerator{err: &GenerationFailedError{Err: errors.New("circuit open")}}, &stubEvaluator{}, nil)

	_, err := e.Start(context.Background(), Criteria{JobTitle: "SRE"})
	var gerr *GenerationFailedError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationFailedError, got %v", err)
	}
}

func TestEngine_FullSessionAverageExcludesSkips(t *testing.T) {
	e := newTestEngine(testQuestions(3, DefaultTimeLimit),
		evalResult{eval: &Evaluation{Score: 80, Feedback: "good"}},
		evalResult{eval: &Evaluation{Score: 60, Feedback: "ok"}},
	)
	ctx := context.Background()

	sess, err := e.Start(ctx, Criteria{JobTitle: "Backend Engineer"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	eval, err := e.SubmitAnswer(ctx, sess.ID, "q1", "answer one")
	if err != nil {
		t.Fatalf("submit 1: %v", err)
	}
	if eval.Score != 80 {
		t.Fatalf("score = %d, want 80", eval.Score)
	}

	next, err := e.Skip(ctx, sess.ID, "q2")
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if next == nil || next.ID != "q3" {
		t.Fatalf("expected q3 after skip, got %+v", next)
	}

	if _, err := e.SubmitAnswer(ctx, sess.ID, "q3", "answer three"); err != nil {
		t.Fatalf("submit 3: %v", err)
	}

	summary, err := e.Finalize(ctx, sess.ID)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if summary.QuestionsAnswered != 2 {
		t.Errorf("answered = %d, want 2", summary.QuestionsAnswered)
	}
	if summary.QuestionsSkipped != 1 {
		t.Errorf("skipped = %d, want 1", summary.QuestionsSkipped)
	}
	if summary.AverageScore != 70 {
		t.Errorf("average = %d, want 70", summary.AverageScore)
	}
	if summary.BestScore != 80 {
		t.Errorf("best = %d, want 80", summary.BestScore)
	}
	if summary.Classification != ClassGood {
		t.Errorf("classification = %q, want %q", summary.Classification, ClassGood)
	}
}

func TestEngine_EvaluationFailureKeepsSessionRecoverable(t *testing.T) {
	e := newTestEngine(testQuestions(2, DefaultTimeLimit),
		evalResult{err: &EvaluationFailedError{QuestionID: "q1", Err: errors.New("provider timeout")}},
	)
	ctx := context.Background()

	sess, err := e.Start(ctx, Criteria{JobTitle: "SRE"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	_, err = e.SubmitAnswer(ctx, sess.ID, "q1", "my answer")
	var eerr *EvaluationFailedError
	if !errors.As(err, &eerr) {
		t.Fatalf("expected EvaluationFailedError, got %v", err)
	}

	// The answer was not recorded and the session stays in evaluating.
	snap, _ := e.Snapshot(sess.ID)
	if snap.Status != StatusEvaluating {
		t.Fatalf("status = %s, want %s", snap.Status, StatusEvaluating)
	}
	if snap.Answered != 0 {
		t.Fatalf("answered = %d, want 0", snap.Answered)
	}

	// Skip still advances past the failed question.
	next, err := e.Skip(ctx, sess.ID, "q1")
	if err != nil {
		t.Fatalf("skip after failed evaluation: %v", err)
	}
	if next == nil || next.ID != "q2" {
		t.Fatalf("expected q2 after skip, got %+v", next)
	}
}

func TestEngine_ResubmitAfterEvaluationFailure(t *testing.T) {
	e := newTestEngine(testQuestions(1, DefaultTimeLimit),
		evalResult{err: &EvaluationFailedError{QuestionID: "q1", Err: errors.New("transient")}},
		evalResult{eval: &Evaluation{Score: 75, Feedback: "better luck"}},
	)
	ctx := context.Background()

	sess, _ := e.Start(ctx, Criteria{JobTitle: "SRE"})

	if _, err := e.SubmitAnswer(ctx, sess.ID, "q1", "answer"); err == nil {
		t.Fatal("expected first submit to fail")
	}

	eval, err := e.SubmitAnswer(ctx, sess.ID, "q1", "answer")
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if eval.Score != 75 {
		t.Fatalf("score = %d, want 75", eval.Score)
	}

	snap, _ := e.Snapshot(sess.ID)
	if snap.Status != StatusCompleted {
		t.Fatalf("status = %s, want %s", snap.Status, StatusCompleted)
	}
}

func TestEngine_SubmitAfterCompletionRejected(t *testing.T) {
	e := newTestEngine(testQuestions(1, DefaultTimeLimit),
		evalResult{eval: &Evaluation{Score: 90, Feedback: "great"}},
	)
	ctx := context.Background()

	sess, _ := e.Start(ctx, Criteria{JobTitle: "SRE"})
	if _, err := e.SubmitAnswer(ctx, sess.ID, "q1", "answer"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	_, err := e.SubmitAnswer(ctx, sess.ID, "q1", "again")
	var serr *SessionStateError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SessionStateError, got %v", err)
	}

	if _, err := e.Skip(ctx, sess.ID, "q1"); !errors.As(err, &serr) {
		t.Fatalf("expected SessionStateError on skip, got %v", err)
	}
}

func TestEngine_DuplicateSubmitDoesNotTouchNextQuestion(t *testing.T) {
	e := newTestEngine(testQuestions(2, DefaultTimeLimit),
		evalResult{eval: &Evaluation{Score: 80, Feedback: "good"}},
	)
	ctx := context.Background()

	sess, _ := e.Start(ctx, Criteria{JobTitle: "SRE"})
	if _, err := e.SubmitAnswer(ctx, sess.ID, "q1", "answer for q1"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// A stale retry of the already-resolved submit must be rejected, not
	// evaluated against q2.
	_, err := e.SubmitAnswer(ctx, sess.ID, "q1", "answer for q1")
	var serr *SessionStateError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SessionStateError, got %v", err)
	}

	snap, _ := e.Snapshot(sess.ID)
	if snap.Answered != 1 {
		t.Fatalf("answered = %d, want 1", snap.Answered)
	}
	if snap.CurrentQuestion == nil || snap.CurrentQuestion.ID != "q2" {
		t.Fatalf("expected q2 still pending, got %+v", snap.CurrentQuestion)
	}
}

func TestEngine_SkipOfResolvedQuestionRejected(t *testing.T) {
	e := newTestEngine(testQuestions(2, DefaultTimeLimit))
	ctx := context.Background()

	sess, _ := e.Start(ctx, Criteria{JobTitle: "SRE"})
	if _, err := e.Skip(ctx, sess.ID, "q1"); err != nil {
		t.Fatalf("skip: %v", err)
	}

	// Repeating the skip for q1 must not consume q2's slot.
	_, err := e.Skip(ctx, sess.ID, "q1")
	var serr *SessionStateError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SessionStateError, got %v", err)
	}
	if _, err := e.Skip(ctx, sess.ID, "unknown"); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}

	snap, _ := e.Snapshot(sess.ID)
	if snap.Skipped != 1 {
		t.Fatalf("skipped = %d, want 1", snap.Skipped)
	}
	if snap.CurrentQuestion == nil || snap.CurrentQuestion.ID != "q2" {
		t.Fatalf("expected q2 still pending, got %+v", snap.CurrentQuestion)
	}
}

func TestEngine_EmptyAnswerRejectedWithoutEvaluation(t *testing.T) {
	evaluator := &stubEvaluator{}
	e := NewEngine(&stubGenerator{questions: testQuestions(1, DefaultTimeLimit)}, evaluator, nil)
	ctx := context.Background()

	sess, _ := e.Start(ctx, Criteria{JobTitle: "SRE"})

	for _, answer := range []string{"", "   \n"} {
		_, err := e.SubmitAnswer(ctx, sess.ID, "q1", answer)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("answer %q: expected ValidationError, got %v", answer, err)
		}
	}
	if evaluator.calls != 0 {
		t.Fatalf("evaluator calls = %d, want 0", evaluator.calls)
	}

	snap, _ := e.Snapshot(sess.ID)
	if snap.Status != StatusQuestionActive {
		t.Fatalf("status = %s, want %s", snap.Status, StatusQuestionActive)
	}
}

func TestEngine_StartFailsOnEmptyQuestionList(t *testing.T) {
	e := NewEngine(&stubGenerator{questions: nil}, &stubEvaluator{}, nil)

	_, err := e.Start(context.Background(), Criteria{JobTitle: "SRE"})
	var gerr *GenerationFailedError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationFailedError, got %v", err)
	}
}

func TestEngine_FinalizeBeforeCompletionRejected(t *testing.T) {
	e := newTestEngine(testQuestions(2, DefaultTimeLimit))
	ctx := context.Background()

	sess, _ := e.Start(ctx, Criteria{JobTitle: "SRE"})

	_, err := e.Finalize(ctx, sess.ID)
	var serr *SessionStateError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SessionStateError, got %v", err)
	}
}

func TestEngine_UnknownSession(t *testing.T) {
	e := newTestEngine(testQuestions(1, DefaultTimeLimit))

	if _, err := e.SubmitAnswer(context.Background(), "nope", "q1", "x"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := e.Snapshot("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestEngine_TimerExpiryDoesNotAdvance(t *testing.T) {
	e := newTestEngine(testQuestions(2, 10*time.Millisecond),
		evalResult{eval: &Evaluation{Score: 65, Feedback: "late but fine"}},
	)
	ctx := context.Background()

	expired := make(chan string, 1)
	e.OnTimerExpired = func(sessionID, questionID string) {
		expired <- questionID
	}

	sess, _ := e.Start(ctx, Criteria{JobTitle: "SRE"})

	select {
	case qid := <-expired:
		if qid != "q1" {
			t.Fatalf("expired question = %q, want q1", qid)
		}
	case <-time.After(time.Second):
		t.Fatal("timer never expired")
	}

	snap, _ := e.Snapshot(sess.ID)
	if snap.Status != StatusQuestionActive {
		t.Fatalf("status = %s, want %s (expiry must not advance)", snap.Status, StatusQuestionActive)
	}
	if !snap.TimerExpired {
		t.Fatal("snapshot should report the expired timer")
	}
	if snap.CurrentQuestion == nil || snap.CurrentQuestion.ID != "q1" {
		t.Fatal("q1 should still be current")
	}

	// A late answer is still accepted.
	if _, err := e.SubmitAnswer(ctx, sess.ID, "q1", "late answer"); err != nil {
		t.Fatalf("late submit: %v", err)
	}
	snap, _ = e.Snapshot(sess.ID)
	if snap.TimerExpired {
		t.Fatal("advancing must clear the expired flag")
	}
}

func TestEngine_StaleTimerFireIsNoOp(t *testing.T) {
	e := newTestEngine(testQuestions(2, DefaultTimeLimit))
	ctx := context.Background()

	sess, _ := e.Start(ctx, Criteria{JobTitle: "SRE"})
	if _, err := e.Skip(ctx, sess.ID, "q1"); err != nil {
		t.Fatalf("skip: %v", err)
	}

	// q1 is superseded; a stale fire must not mark q2's window expired.
	if err := e.ExpireTimer(ctx, sess.ID, "q1"); err != nil {
		t.Fatalf("stale expire: %v", err)
	}
	snap, _ := e.Snapshot(sess.ID)
	if snap.TimerExpired {
		t.Fatal("stale fire must not set the expired flag")
	}

	if err := e.ExpireTimer(ctx, sess.ID, "unknown"); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestEngine_AllSkippedScoresZero(t *testing.T) {
	e := newTestEngine(testQuestions(2, DefaultTimeLimit))
	ctx := context.Background()

	sess, _ := e.Start(ctx, Criteria{JobTitle: "SRE"})
	if _, err := e.Skip(ctx, sess.ID, "q1"); err != nil {
		t.Fatalf("skip 1: %v", err)
	}
	next, err := e.Skip(ctx, sess.ID, "q2")
	if err != nil {
		t.Fatalf("skip 2: %v", err)
	}
	if next != nil {
		t.Fatalf("expected nil next question after last skip, got %+v", next)
	}

	summary, err := e.Finalize(ctx, sess.ID)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if summary.AverageScore != 0 || summary.BestScore != 0 {
		t.Fatalf("average/best = %d/%d, want 0/0", summary.AverageScore, summary.BestScore)
	}
	if summary.QuestionsAnswered != 0 || summary.QuestionsSkipped != 2 {
		t.Fatalf("answered/skipped = %d/%d, want 0/2",
			summary.QuestionsAnswered, summary.QuestionsSkipped)
	}
}

func TestSessionStore_RoundTrip(t *testing.T) {
	s := NewSessionStore()

	if _, err := s.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	sess := &Session{ID: "abc", Status: StatusQuestionActive}
	s.Put(sess)
	got, err := s.Get("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != sess {
		t.Fatal("expected the same session pointer")
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}

	s.Delete("abc")
	if _, err := s.Get("abc"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}
