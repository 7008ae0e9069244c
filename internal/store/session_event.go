package store

import (
	"context"
	"fmt"

	"github.com/adasgupta/simtutor/ent"
	"github.com/adasgupta/simtutor/ent/sessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetSimulationID(data.SimulationID).
		SetConceptsTotal(data.ConceptsTotal).
		SetConceptsCompleted(data.ConceptsCompleted).
		SetExchangesTotal(data.ExchangesTotal).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionSummaries(ctx context.Context, limit int) ([]SessionSummary, error) {
	starts, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("start")).
		Order(ent.Desc(sessionevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session starts: %w", err)
	}

	out := make([]SessionSummary, 0, len(starts))
	for _, start := range starts {
		summary := SessionSummary{
			SessionID:     start.SessionID,
			SimulationID:  start.SimulationID,
			StartedAt:     start.Timestamp,
			ConceptsTotal: start.ConceptsTotal,
		}

		end, err := r.client.SessionEvent.Query().
			Where(
				sessionevent.SessionID(start.SessionID),
				sessionevent.Action("end"),
			).
			Only(ctx)
		switch {
		case err == nil:
			summary.Ended = true
			summary.ConceptsCompleted = end.ConceptsCompleted
			summary.ExchangesTotal = end.ExchangesTotal
		case ent.IsNotFound(err):
			// Session still open or abandoned.
		default:
			return nil, fmt.Errorf("query session end: %w", err)
		}

		out = append(out, summary)
	}
	return out, nil
}
