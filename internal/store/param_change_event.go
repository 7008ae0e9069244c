package store

import (
	"context"
	"fmt"

	"github.com/adasgupta/simtutor/ent"
	"github.com/adasgupta/simtutor/ent/paramchangeevent"
)

func (r *eventRepo) AppendParamChange(ctx context.Context, data ParamChangeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ParamChangeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetParameter(data.Parameter).
		SetOldValue(data.OldValue).
		SetNewValue(data.NewValue).
		SetReason(data.Reason).
		SetUnderstandingBefore(data.UnderstandingBefore).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save param change event: %w", err)
	}
	return nil
}

func (r *eventRepo) MarkParamChangeEffective(ctx context.Context, sessionID string) error {
	last, err := r.client.ParamChangeEvent.Query().
		Where(paramchangeevent.SessionID(sessionID)).
		Order(ent.Desc(paramchangeevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("query latest param change: %w", err)
	}

	if last.WasEffective {
		return nil
	}

	_, err = last.Update().SetWasEffective(true).Save(ctx)
	if err != nil {
		return fmt.Errorf("mark param change effective: %w", err)
	}
	return nil
}
