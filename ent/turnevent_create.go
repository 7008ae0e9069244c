// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adasgupta/simtutor/ent/turnevent"
)

// TurnEventCreate is the builder for creating a TurnEvent entity.
type TurnEventCreate struct {
	config
	mutation *TurnEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TurnEventCreate) SetSequence(v int64) *TurnEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TurnEventCreate) SetTimestamp(v time.Time) *TurnEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableTimestamp(v *time.Time) *TurnEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TurnEventCreate) SetSessionID(v string) *TurnEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *TurnEventCreate) SetConceptID(v int) *TurnEventCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetConceptTitle sets the "concept_title" field.
func (_c *TurnEventCreate) SetConceptTitle(v string) *TurnEventCreate {
	_c.mutation.SetConceptTitle(v)
	return _c
}

// SetExchange sets the "exchange" field.
func (_c *TurnEventCreate) SetExchange(v int) *TurnEventCreate {
	_c.mutation.SetExchange(v)
	return _c
}

// SetLearnerUtterance sets the "learner_utterance" field.
func (_c *TurnEventCreate) SetLearnerUtterance(v string) *TurnEventCreate {
	_c.mutation.SetLearnerUtterance(v)
	return _c
}

// SetUnderstanding sets the "understanding" field.
func (_c *TurnEventCreate) SetUnderstanding(v string) *TurnEventCreate {
	_c.mutation.SetUnderstanding(v)
	return _c
}

// SetTrend sets the "trend" field.
func (_c *TurnEventCreate) SetTrend(v string) *TurnEventCreate {
	_c.mutation.SetTrend(v)
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *TurnEventCreate) SetStrategy(v string) *TurnEventCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetTone sets the "tone" field.
func (_c *TurnEventCreate) SetTone(v string) *TurnEventCreate {
	_c.mutation.SetTone(v)
	return _c
}

// SetTeacherMessage sets the "teacher_message" field.
func (_c *TurnEventCreate) SetTeacherMessage(v string) *TurnEventCreate {
	_c.mutation.SetTeacherMessage(v)
	return _c
}

// SetConceptAdvanced sets the "concept_advanced" field.
func (_c *TurnEventCreate) SetConceptAdvanced(v bool) *TurnEventCreate {
	_c.mutation.SetConceptAdvanced(v)
	return _c
}

// SetNillableConceptAdvanced sets the "concept_advanced" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableConceptAdvanced(v *bool) *TurnEventCreate {
	if v != nil {
		_c.SetConceptAdvanced(*v)
	}
	return _c
}

// SetSessionCompleted sets the "session_completed" field.
func (_c *TurnEventCreate) SetSessionCompleted(v bool) *TurnEventCreate {
	_c.mutation.SetSessionCompleted(v)
	return _c
}

// SetNillableSessionCompleted sets the "session_completed" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableSessionCompleted(v *bool) *TurnEventCreate {
	if v != nil {
		_c.SetSessionCompleted(*v)
	}
	return _c
}

// Mutation returns the TurnEventMutation object of the builder.
func (_c *TurnEventCreate) Mutation() *TurnEventMutation {
	return _c.mutation
}

// Save creates the TurnEvent in the database.
func (_c *TurnEventCreate) Save(ctx context.Context) (*TurnEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TurnEventCreate) SaveX(ctx context.Context) *TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TurnEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := turnevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ConceptAdvanced(); !ok {
		v := turnevent.DefaultConceptAdvanced
		_c.mutation.SetConceptAdvanced(v)
	}
	if _, ok := _c.mutation.SessionCompleted(); !ok {
		v := turnevent.DefaultSessionCompleted
		_c.mutation.SetSessionCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TurnEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TurnEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TurnEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TurnEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "TurnEvent.concept_id"`)}
	}
	if _, ok := _c.mutation.ConceptTitle(); !ok {
		return &ValidationError{Name: "concept_title", err: errors.New(`ent: missing required field "TurnEvent.concept_title"`)}
	}
	if v, ok := _c.mutation.ConceptTitle(); ok {
		if err := turnevent.ConceptTitleValidator(v); err != nil {
			return &ValidationError{Name: "concept_title", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.concept_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Exchange(); !ok {
		return &ValidationError{Name: "exchange", err: errors.New(`ent: missing required field "TurnEvent.exchange"`)}
	}
	if _, ok := _c.mutation.LearnerUtterance(); !ok {
		return &ValidationError{Name: "learner_utterance", err: errors.New(`ent: missing required field "TurnEvent.learner_utterance"`)}
	}
	if v, ok := _c.mutation.LearnerUtterance(); ok {
		if err := turnevent.LearnerUtteranceValidator(v); err != nil {
			return &ValidationError{Name: "learner_utterance", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.learner_utterance": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Understanding(); !ok {
		return &ValidationError{Name: "understanding", err: errors.New(`ent: missing required field "TurnEvent.understanding"`)}
	}
	if v, ok := _c.mutation.Understanding(); ok {
		if err := turnevent.UnderstandingValidator(v); err != nil {
			return &ValidationError{Name: "understanding", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.understanding": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Trend(); !ok {
		return &ValidationError{Name: "trend", err: errors.New(`ent: missing required field "TurnEvent.trend"`)}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "TurnEvent.strategy"`)}
	}
	if _, ok := _c.mutation.Tone(); !ok {
		return &ValidationError{Name: "tone", err: errors.New(`ent: missing required field "TurnEvent.tone"`)}
	}
	if _, ok := _c.mutation.TeacherMessage(); !ok {
		return &ValidationError{Name: "teacher_message", err: errors.New(`ent: missing required field "TurnEvent.teacher_message"`)}
	}
	if _, ok := _c.mutation.ConceptAdvanced(); !ok {
		return &ValidationError{Name: "concept_advanced", err: errors.New(`ent: missing required field "TurnEvent.concept_advanced"`)}
	}
	if _, ok := _c.mutation.SessionCompleted(); !ok {
		return &ValidationError{Name: "session_completed", err: errors.New(`ent: missing required field "TurnEvent.session_completed"`)}
	}
	return nil
}

func (_c *TurnEventCreate) sqlSave(ctx context.Context) (*TurnEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TurnEventCreate) createSpec() (*TurnEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TurnEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(turnevent.Table, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(turnevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(turnevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(turnevent.FieldConceptID, field.TypeInt, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.ConceptTitle(); ok {
		_spec.SetField(turnevent.FieldConceptTitle, field.TypeString, value)
		_node.ConceptTitle = value
	}
	if value, ok := _c.mutation.Exchange(); ok {
		_spec.SetField(turnevent.FieldExchange, field.TypeInt, value)
		_node.Exchange = value
	}
	if value, ok := _c.mutation.LearnerUtterance(); ok {
		_spec.SetField(turnevent.FieldLearnerUtterance, field.TypeString, value)
		_node.LearnerUtterance = value
	}
	if value, ok := _c.mutation.Understanding(); ok {
		_spec.SetField(turnevent.FieldUnderstanding, field.TypeString, value)
		_node.Understanding = value
	}
	if value, ok := _c.mutation.Trend(); ok {
		_spec.SetField(turnevent.FieldTrend, field.TypeString, value)
		_node.Trend = value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(turnevent.FieldStrategy, field.TypeString, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.Tone(); ok {
		_spec.SetField(turnevent.FieldTone, field.TypeString, value)
		_node.Tone = value
	}
	if value, ok := _c.mutation.TeacherMessage(); ok {
		_spec.SetField(turnevent.FieldTeacherMessage, field.TypeString, value)
		_node.TeacherMessage = value
	}
	if value, ok := _c.mutation.ConceptAdvanced(); ok {
		_spec.SetField(turnevent.FieldConceptAdvanced, field.TypeBool, value)
		_node.ConceptAdvanced = value
	}
	if value, ok := _c.mutation.SessionCompleted(); ok {
		_spec.SetField(turnevent.FieldSessionCompleted, field.TypeBool, value)
		_node.SessionCompleted = value
	}
	return _node, _spec
}

// TurnEventCreateBulk is the builder for creating many TurnEvent entities in bulk.
type TurnEventCreateBulk struct {
	config
	err      error
	builders []*TurnEventCreate
}

// Save creates the TurnEvent entities in the database.
func (_c *TurnEventCreateBulk) Save(ctx context.Context) ([]*TurnEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TurnEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TurnEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TurnEventCreateBulk) SaveX(ctx context.Context) []*TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
