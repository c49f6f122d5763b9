package interview

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/jobprep/internal/store"
)

// Engine event actions recorded to the persistence collaborator.
const (
	ActionStarted      = "started"
	ActionTimerExpired = "timer_expired"
	ActionCompleted    = "completed"
	ActionFinalized    = "finalized"
)

// Engine drives interview sessions through their lifecycle. All operations
// on one session are serialized by the session mutex; operations on
// different sessions run concurrently.
type Engine struct {
	generator QuestionGenerator
	evaluator AnswerEvaluator
	sessions  *SessionStore
	timers    *TimerSet
	repo      store.EventRepo

	// OnTimerExpired, when set, is notified after a question timer fires.
	// It runs on the timer goroutine and must not call back into the
	// engine for the same session synchronously.
	OnTimerExpired func(sessionID, questionID string)
}

// NewEngine creates an Engine. repo may be nil; event recording is then
// skipped.
func NewEngine(generator QuestionGenerator, evaluator AnswerEvaluator, repo store.EventRepo) *Engine {
	return &Engine{
		generator: generator,
		evaluator: evaluator,
		sessions:  NewSessionStore(),
		timers:    NewTimerSet(),
		repo:      repo,
	}
}

// Sessions exposes the session store for read access.
func (e *Engine) Sessions() *SessionStore {
	return e.sessions
}

// Start validates and normalizes the criteria, generates the question set,
// and opens the session on its first question with the timer running.
func (e *Engine) Start(ctx context.Context, criteria Criteria) (*Session, error) {
	criteria = criteria.Normalize()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	questions, err := e.generator.GenerateQuestions(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, &GenerationFailedError{Err: errors.New("provider returned no questions")}
	}

	now := time.Now()
	sess := &Session{
		ID:                uuid.NewString(),
		Criteria:          criteria,
		Questions:         questions,
		Status:            StatusQuestionActive,
		CreatedAt:         now,
		QuestionStartedAt: now,
	}
	e.sessions.Put(sess)
	e.scheduleTimer(sess.ID, questions[0])

	e.recordInterviewEvent(ctx, store.InterviewEventData{
		SessionID:      sess.ID,
		Action:         ActionStarted,
		JobTitle:       criteria.JobTitle,
		InterviewType:  criteria.InterviewType,
		Difficulty:     criteria.Difficulty,
		QuestionsTotal: len(questions),
	})

	return sess, nil
}

// SubmitAnswer evaluates the candidate's answer to questionID and advances
// the session on success. The question must be the current one: a late retry
// of an already-resolved submit is rejected rather than applied to the next
// question. On evaluation failure the session stays in the evaluating state;
// the candidate may resubmit the answer or skip.
func (e *Engine) SubmitAnswer(ctx context.Context, sessionID, questionID, answerText string) (*Evaluation, error) {
	if strings.TrimSpace(answerText) == "" {
		return nil, &ValidationError{Field: "answer_text", Reason: "must not be empty"}
	}

	sess, err := e.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	q, err := sess.targetQuestion(questionID, "submit answer to")
	if err != nil {
		return nil, err
	}

	e.timers.Cancel(sess.ID, q.ID)
	elapsed := time.Since(sess.QuestionStartedAt)
	sess.Status = StatusEvaluating

	eval, err := e.evaluator.EvaluateAnswer(ctx, sess.Criteria, *q, answerText, elapsed)
	if err != nil {
		// Stay in evaluating; resubmit and skip both remain possible.
		return nil, err
	}

	sess.Answers = append(sess.Answers, AnswerRecord{
		QuestionID:    q.ID,
		QuestionIndex: sess.Index,
		AnswerText:    answerText,
		Evaluation:    eval,
		SubmittedAt:   time.Now(),
	})
	e.recordAnswerEvent(ctx, sess, q, answerText, eval, elapsed, false)
	e.advanceLocked(ctx, sess)

	return eval, nil
}

// Skip resolves questionID without evaluation and advances. The question
// must be the current one, so a repeated skip for an already-resolved
// question fails instead of consuming the next slot. Returns the next
// question, or nil when the session completed.
func (e *Engine) Skip(ctx context.Context, sessionID, questionID string) (*Question, error) {
	sess, err := e.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	q, err := sess.targetQuestion(questionID, "skip question in")
	if err != nil {
		return nil, err
	}

	e.timers.Cancel(sess.ID, q.ID)
	sess.Answers = append(sess.Answers, AnswerRecord{
		QuestionID:    q.ID,
		QuestionIndex: sess.Index,
		Skipped:       true,
		SubmittedAt:   time.Now(),
	})
	e.recordAnswerEvent(ctx, sess, q, "", nil, time.Since(sess.QuestionStartedAt), true)
	e.advanceLocked(ctx, sess)

	return sess.current(), nil
}

// ExpireTimer marks the question's answer window as elapsed. It never
// advances the session; the candidate still decides to answer late or skip.
// A fire against a question that is no longer current is a no-op.
func (e *Engine) ExpireTimer(ctx context.Context, sessionID, questionID string) error {
	sess, err := e.sessions.Get(sessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.hasQuestion(questionID) {
		return ErrQuestionNotFound
	}
	q := sess.current()
	if sess.Status != StatusQuestionActive || q == nil || q.ID != questionID {
		// Superseded: the question was answered or skipped before the
		// fire reached us.
		return nil
	}

	sess.TimerExpired = true
	e.recordInterviewEvent(ctx, store.InterviewEventData{
		SessionID:      sess.ID,
		Action:         ActionTimerExpired,
		JobTitle:       sess.Criteria.JobTitle,
		QuestionsTotal: len(sess.Questions),
	})
	return nil
}

// Finalize closes a completed session and returns the summary. The summary
// is handed to the persistence collaborator; the session stays readable in
// the store until deleted.
func (e *Engine) Finalize(ctx context.Context, sessionID string) (*Summary, error) {
	sess, err := e.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Status != StatusCompleted {
		return nil, &SessionStateError{SessionID: sessionID, State: sess.Status, Op: "finalize"}
	}

	answered, skipped, average, best := summarize(sess.Answers)
	summary := &Summary{
		SessionID:         sess.ID,
		JobTitle:          sess.Criteria.JobTitle,
		QuestionsTotal:    len(sess.Questions),
		QuestionsAnswered: answered,
		QuestionsSkipped:  skipped,
		AverageScore:      average,
		BestScore:         best,
		Classification:    Classify(average),
		CompletedAt:       time.Now(),
	}

	e.recordInterviewEvent(ctx, store.InterviewEventData{
		SessionID:         sess.ID,
		Action:            ActionFinalized,
		JobTitle:          sess.Criteria.JobTitle,
		InterviewType:     sess.Criteria.InterviewType,
		Difficulty:        sess.Criteria.Difficulty,
		QuestionsTotal:    len(sess.Questions),
		QuestionsAnswered: answered,
		QuestionsSkipped:  skipped,
		AverageScore:      average,
		BestScore:         best,
		Classification:    summary.Classification,
	})

	return summary, nil
}

// Snapshot returns a read-only view of the session for display.
func (e *Engine) Snapshot(sessionID string) (*Snapshot, error) {
	sess, err := e.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	snap := &Snapshot{
		SessionID:      sess.ID,
		Status:         sess.Status,
		QuestionIndex:  sess.Index,
		TotalQuestions: len(sess.Questions),
		TimerExpired:   sess.TimerExpired,
	}
	for _, r := range sess.Answers {
		if r.Skipped {
			snap.Skipped++
		} else {
			snap.Answered++
		}
	}

	if q := sess.current(); q != nil && sess.Status != StatusCompleted {
		cq := *q
		snap.CurrentQuestion = &cq
		snap.Elapsed = time.Since(sess.QuestionStartedAt)
		if remaining := q.TimeLimit - snap.Elapsed; remaining > 0 {
			snap.Remaining = remaining
		}
	}

	return snap, nil
}

// advanceLocked moves to the next question or completes the session.
// Callers must hold sess.mu.
func (e *Engine) advanceLocked(ctx context.Context, sess *Session) {
	sess.Index++
	sess.TimerExpired = false

	if q := sess.current(); q != nil {
		sess.Status = StatusQuestionActive
		sess.QuestionStartedAt = time.Now()
		e.scheduleTimer(sess.ID, *q)
		return
	}

	sess.Status = StatusCompleted
	e.timers.CancelSession(sess.ID)
	e.recordInterviewEvent(ctx, store.InterviewEventData{
		SessionID:      sess.ID,
		Action:         ActionCompleted,
		JobTitle:       sess.Criteria.JobTitle,
		QuestionsTotal: len(sess.Questions),
	})
}

func (e *Engine) scheduleTimer(sessionID string, q Question) {
	e.timers.Schedule(sessionID, q.ID, q.TimeLimit, func() {
		// Errors here mean the session vanished or the fire was stale.
		_ = e.ExpireTimer(context.Background(), sessionID, q.ID)
		if e.OnTimerExpired != nil {
			e.OnTimerExpired(sessionID, q.ID)
		}
	})
}

// targetQuestion resolves questionID for a state-advancing operation.
// Callers must hold s.mu. An unknown ID is ErrQuestionNotFound; a known but
// non-current ID (already answered or skipped) and any terminal state are
// SessionStateError, so stale client retries never touch the next question.
func (s *Session) targetQuestion(questionID, op string) (*Question, error) {
	if !s.hasQuestion(questionID) {
		return nil, ErrQuestionNotFound
	}
	if s.Status != StatusQuestionActive && s.Status != StatusEvaluating {
		return nil, &SessionStateError{SessionID: s.ID, State: s.Status, Op: op}
	}
	q := s.current()
	if q == nil || q.ID != questionID {
		return nil, &SessionStateError{SessionID: s.ID, State: s.Status, Op: op}
	}
	return q, nil
}

func (s *Session) hasQuestion(questionID string) bool {
	for i := range s.Questions {
		if s.Questions[i].ID == questionID {
			return true
		}
	}
	return false
}

// Event recording is best-effort; a storage failure never fails the
// interview operation.

func (e *Engine) recordInterviewEvent(ctx context.Context, data store.InterviewEventData) {
	if e.repo == nil {
		return
	}
	if err := e.repo.AppendInterviewEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record interview event: %v\n", err)
	}
}

func (e *Engine) recordAnswerEvent(ctx context.Context, sess *Session, q *Question, answerText string, eval *Evaluation, elapsed time.Duration, skipped bool) {
	if e.repo == nil {
		return
	}
	data := store.AnswerEventData{
		SessionID:     sess.ID,
		QuestionID:    q.ID,
		QuestionIndex: sess.Index,
		Category:      q.Category,
		Difficulty:    q.Difficulty,
		QuestionText:  q.Prompt,
		AnswerText:    answerText,
		Skipped:       skipped,
		TimeMs:        elapsed.Milliseconds(),
	}
	if eval != nil {
		data.Score = eval.Score
	}
	if err := e.repo.AppendAnswerEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record answer event: %v\n", err)
	}
}
