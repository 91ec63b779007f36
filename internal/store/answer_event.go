package store

import (
	"context"
	"fmt"

	"github.com/docentlabs/docent/ent"
	"github.com/docentlabs/docent/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetQuizID(data.QuizID).
		SetQuestionIndex(data.QuestionIndex).
		SetQuestionType(data.QuestionType).
		SetQuestionText(data.QuestionText).
		SetGivenAnswer(data.GivenAnswer).
		SetCorrect(data.Correct).
		SetScore(data.Score).
		SetRubricHit(data.RubricHit).
		SetRubricTotal(data.RubricTotal).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

// QuizAccuracy returns correct/total for one quiz attempt, or 0 with no answers.
func (r *eventRepo) QuizAccuracy(ctx context.Context, quizID string) (float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.QuizID(quizID)).
		Order(ent.Asc(answerevent.FieldQuestionIndex)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query quiz accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}

func (r *eventRepo) AnswerStatsAll(ctx context.Context) (AnswerStats, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return AnswerStats{}, fmt.Errorf("query answer events: %w", err)
	}

	stats := AnswerStats{ByType: make(map[string]TypeStats)}

	type agg struct {
		total   int
		correct int
		score   float64
	}
	byType := make(map[string]*agg)

	for _, e := range events {
		stats.Total++
		if e.Correct {
			stats.Correct++
		}
		a := byType[e.QuestionType]
		if a == nil {
			a = &agg{}
			byType[e.QuestionType] = a
		}
		a.total++
		if e.Correct {
			a.correct++
		}
		a.score += e.Score
	}

	if stats.Total > 0 {
		stats.Accuracy = float64(stats.Correct) / float64(stats.Total)
	}

	for qt, a := range byType {
		stats.ByType[qt] = TypeStats{
			Total:    a.total,
			Correct:  a.correct,
			AvgScore: a.score / float64(a.total),
		}
	}

	return stats, nil
}

// RecentMisses returns the most recent incorrect answers, newest first.
func (r *eventRepo) RecentMisses(ctx context.Context, limit int) ([]AnswerEventRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.Correct(false)).
		Order(ent.Desc(answerevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent misses: %w", err)
	}

	out := make([]AnswerEventRecord, 0, len(events))
	for _, e := range events {
		out = append(out, AnswerEventRecord{
			ID:            e.ID,
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
			QuizID:        e.QuizID,
			QuestionIndex: e.QuestionIndex,
			QuestionType:  e.QuestionType,
			QuestionText:  e.QuestionText,
			GivenAnswer:   e.GivenAnswer,
			Correct:       e.Correct,
			Score:         e.Score,
			RubricHit:     e.RubricHit,
			RubricTotal:   e.RubricTotal,
			TimeMs:        e.TimeMs,
		})
	}
	return out, nil
}
