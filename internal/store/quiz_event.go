package store

import (
	"context"
	"fmt"

	"github.com/docentlabs/docent/ent"
	"github.com/docentlabs/docent/ent/quizevent"
)

func (r *eventRepo) AppendQuiz(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetQuizID(data.QuizID).
		SetRequested(data.Requested).
		SetKept(data.Kept).
		SetDropped(data.Dropped).
		SetMcqCount(data.MCQCount).
		SetShortCount(data.ShortCount).
		SetSourceChars(data.SourceChars).
		SetItemsJSON(data.ItemsJSON).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error) {
	query := r.client.QuizEvent.Query().
		Order(ent.Desc(quizevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(quizevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(quizevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(quizevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(quizevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	records := make([]QuizEventRecord, len(events))
	for i, e := range events {
		records[i] = quizEventRecord(e)
	}
	return records, nil
}

func (r *eventRepo) GetQuiz(ctx context.Context, quizID string) (*QuizEventRecord, error) {
	e, err := r.client.QuizEvent.Query().
		Where(quizevent.QuizID(quizID)).
		Order(ent.Desc(quizevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quiz %q: %w", quizID, err)
	}
	rec := quizEventRecord(e)
	return &rec, nil
}

func quizEventRecord(e *ent.QuizEvent) QuizEventRecord {
	return QuizEventRecord{
		ID:          e.ID,
		Sequence:    e.Sequence,
		Timestamp:   e.Timestamp,
		QuizID:      e.QuizID,
		Requested:   e.Requested,
		Kept:        e.Kept,
		Dropped:     e.Dropped,
		MCQCount:    e.McqCount,
		ShortCount:  e.ShortCount,
		SourceChars: e.SourceChars,
		ItemsJSON:   e.ItemsJSON,
	}
}
