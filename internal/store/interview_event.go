package store

import (
	"context"
	"fmt"

	"github.com/abhisek/jobprep/ent"
	"github.com/abhisek/jobprep/ent/interviewevent"
)

func (r *eventRepo) AppendInterviewEvent(ctx context.Context, data InterviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.InterviewEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetJobTitle(data.JobTitle).
		SetInterviewType(data.InterviewType).
		SetDifficulty(data.Difficulty).
		SetQuestionsTotal(data.QuestionsTotal).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetQuestionsSkipped(data.QuestionsSkipped).
		SetAverageScore(data.AverageScore).
		SetBestScore(data.BestScore).
		SetClassification(data.Classification).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save interview event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryInterviewEvents(ctx context.Context, opts QueryOpts) ([]InterviewRecord, error) {
	q := r.client.InterviewEvent.Query()

	if opts.After > 0 {
		q = q.Where(interviewevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(interviewevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(interviewevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(interviewevent.TimestampLTE(opts.To))
	}

	q = q.Order(ent.Desc(interviewevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query interview events: %w", err)
	}

	records := make([]InterviewRecord, len(rows))
	for i, row := range rows {
		records[i] = InterviewRecord{
			ID:                row.ID,
			Sequence:          row.Sequence,
			Timestamp:         row.Timestamp,
			SessionID:         row.SessionID,
			Action:            row.Action,
			JobTitle:          row.JobTitle,
			InterviewType:     row.InterviewType,
			Difficulty:        row.Difficulty,
			QuestionsTotal:    row.QuestionsTotal,
			QuestionsAnswered: row.QuestionsAnswered,
			QuestionsSkipped:  row.QuestionsSkipped,
			AverageScore:      row.AverageScore,
			BestScore:         row.BestScore,
			Classification:    row.Classification,
		}
	}
	return records, nil
}
