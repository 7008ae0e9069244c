package store

import (
	"context"
	"fmt"

	"github.com/adasgupta/simtutor/ent"
	"github.com/adasgupta/simtutor/ent/turnevent"
)

func (r *eventRepo) AppendTurnEvent(ctx context.Context, data TurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TurnEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetConceptID(data.ConceptID).
		SetConceptTitle(data.ConceptTitle).
		SetExchange(data.Exchange).
		SetLearnerUtterance(data.LearnerUtterance).
		SetUnderstanding(data.Understanding).
		SetTrend(data.Trend).
		SetStrategy(data.Strategy).
		SetTone(data.Tone).
		SetTeacherMessage(data.TeacherMessage).
		SetConceptAdvanced(data.ConceptAdvanced).
		SetSessionCompleted(data.SessionCompleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryTurns(ctx context.Context, sessionID string, opts QueryOpts) ([]TurnRecord, error) {
	q := r.client.TurnEvent.Query().
		Where(turnevent.SessionID(sessionID)).
		Order(ent.Asc(turnevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(turnevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		q = q.Where(turnevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(turnevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query turn events: %w", err)
	}

	out := make([]TurnRecord, len(events))
	for i, e := range events {
		out[i] = TurnRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			TurnEventData: TurnEventData{
				SessionID:        e.SessionID,
				ConceptID:        e.ConceptID,
				ConceptTitle:     e.ConceptTitle,
				Exchange:         e.Exchange,
				LearnerUtterance: e.LearnerUtterance,
				Understanding:    e.Understanding,
				Trend:            e.Trend,
				Strategy:         e.Strategy,
				Tone:             e.Tone,
				TeacherMessage:   e.TeacherMessage,
				ConceptAdvanced:  e.ConceptAdvanced,
				SessionCompleted: e.SessionCompleted,
			},
		}
	}
	return out, nil
}
