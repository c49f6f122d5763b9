package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetQuestionIndex(data.QuestionIndex).
		SetCategory(data.Category).
		SetDifficulty(data.Difficulty).
		SetQuestionText(data.QuestionText).
		SetAnswerText(data.AnswerText).
		SetScore(data.Score).
		SetSkipped(data.Skipped).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
