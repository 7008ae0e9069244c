// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adasgupta/simtutor/ent/predicate"
	"github.com/adasgupta/simtutor/ent/turnevent"
)

// TurnEventUpdate is the builder for updating TurnEvent entities.
type TurnEventUpdate struct {
	config
	hooks    []Hook
	mutation *TurnEventMutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdate) Where(ps ...predicate.TurnEvent) *TurnEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdate) SetSessionID(v string) *TurnEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableSessionID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *TurnEventUpdate) SetConceptID(v int) *TurnEventUpdate {
	_u.mutation.ResetConceptID()
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableConceptID(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// AddConceptID adds value to the "concept_id" field.
func (_u *TurnEventUpdate) AddConceptID(v int) *TurnEventUpdate {
	_u.mutation.AddConceptID(v)
	return _u
}

// SetConceptTitle sets the "concept_title" field.
func (_u *TurnEventUpdate) SetConceptTitle(v string) *TurnEventUpdate {
	_u.mutation.SetConceptTitle(v)
	return _u
}

// SetNillableConceptTitle sets the "concept_title" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableConceptTitle(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetConceptTitle(*v)
	}
	return _u
}

// SetExchange sets the "exchange" field.
func (_u *TurnEventUpdate) SetExchange(v int) *TurnEventUpdate {
	_u.mutation.ResetExchange()
	_u.mutation.SetExchange(v)
	return _u
}

// SetNillableExchange sets the "exchange" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableExchange(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetExchange(*v)
	}
	return _u
}

// AddExchange adds value to the "exchange" field.
func (_u *TurnEventUpdate) AddExchange(v int) *TurnEventUpdate {
	_u.mutation.AddExchange(v)
	return _u
}

// SetLearnerUtterance sets the "learner_utterance" field.
func (_u *TurnEventUpdate) SetLearnerUtterance(v string) *TurnEventUpdate {
	_u.mutation.SetLearnerUtterance(v)
	return _u
}

// SetNillableLearnerUtterance sets the "learner_utterance" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableLearnerUtterance(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetLearnerUtterance(*v)
	}
	return _u
}

// SetUnderstanding sets the "understanding" field.
func (_u *TurnEventUpdate) SetUnderstanding(v string) *TurnEventUpdate {
	_u.mutation.SetUnderstanding(v)
	return _u
}

// SetNillableUnderstanding sets the "understanding" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableUnderstanding(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetUnderstanding(*v)
	}
	return _u
}

// SetTrend sets the "trend" field.
func (_u *TurnEventUpdate) SetTrend(v string) *TurnEventUpdate {
	_u.mutation.SetTrend(v)
	return _u
}

// SetNillableTrend sets the "trend" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableTrend(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetTrend(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *TurnEventUpdate) SetStrategy(v string) *TurnEventUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableStrategy(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetTone sets the "tone" field.
func (_u *TurnEventUpdate) SetTone(v string) *TurnEventUpdate {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableTone(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// SetTeacherMessage sets the "teacher_message" field.
func (_u *TurnEventUpdate) SetTeacherMessage(v string) *TurnEventUpdate {
	_u.mutation.SetTeacherMessage(v)
	return _u
}

// SetNillableTeacherMessage sets the "teacher_message" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableTeacherMessage(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetTeacherMessage(*v)
	}
	return _u
}

// SetConceptAdvanced sets the "concept_advanced" field.
func (_u *TurnEventUpdate) SetConceptAdvanced(v bool) *TurnEventUpdate {
	_u.mutation.SetConceptAdvanced(v)
	return _u
}

// SetNillableConceptAdvanced sets the "concept_advanced" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableConceptAdvanced(v *bool) *TurnEventUpdate {
	if v != nil {
		_u.SetConceptAdvanced(*v)
	}
	return _u
}

// SetSessionCompleted sets the "session_completed" field.
func (_u *TurnEventUpdate) SetSessionCompleted(v bool) *TurnEventUpdate {
	_u.mutation.SetSessionCompleted(v)
	return _u
}

// SetNillableSessionCompleted sets the "session_completed" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableSessionCompleted(v *bool) *TurnEventUpdate {
	if v != nil {
		_u.SetSessionCompleted(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdate) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptTitle(); ok {
		if err := turnevent.ConceptTitleValidator(v); err != nil {
			return &ValidationError{Name: "concept_title", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.concept_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerUtterance(); ok {
		if err := turnevent.LearnerUtteranceValidator(v); err != nil {
			return &ValidationError{Name: "learner_utterance", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.learner_utterance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Understanding(); ok {
		if err := turnevent.UnderstandingValidator(v); err != nil {
			return &ValidationError{Name: "understanding", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.understanding": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(turnevent.FieldConceptID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptID(); ok {
		_spec.AddField(turnevent.FieldConceptID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptTitle(); ok {
		_spec.SetField(turnevent.FieldConceptTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exchange(); ok {
		_spec.SetField(turnevent.FieldExchange, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExchange(); ok {
		_spec.AddField(turnevent.FieldExchange, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearnerUtterance(); ok {
		_spec.SetField(turnevent.FieldLearnerUtterance, field.TypeString, value)
	}
	if value, ok := _u.mutation.Understanding(); ok {
		_spec.SetField(turnevent.FieldUnderstanding, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trend(); ok {
		_spec.SetField(turnevent.FieldTrend, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(turnevent.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(turnevent.FieldTone, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeacherMessage(); ok {
		_spec.SetField(turnevent.FieldTeacherMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptAdvanced(); ok {
		_spec.SetField(turnevent.FieldConceptAdvanced, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionCompleted(); ok {
		_spec.SetField(turnevent.FieldSessionCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnEventUpdateOne is the builder for updating a single TurnEvent entity.
type TurnEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdateOne) SetSessionID(v string) *TurnEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableSessionID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *TurnEventUpdateOne) SetConceptID(v int) *TurnEventUpdateOne {
	_u.mutation.ResetConceptID()
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableConceptID(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// AddConceptID adds value to the "concept_id" field.
func (_u *TurnEventUpdateOne) AddConceptID(v int) *TurnEventUpdateOne {
	_u.mutation.AddConceptID(v)
	return _u
}

// SetConceptTitle sets the "concept_title" field.
func (_u *TurnEventUpdateOne) SetConceptTitle(v string) *TurnEventUpdateOne {
	_u.mutation.SetConceptTitle(v)
	return _u
}

// SetNillableConceptTitle sets the "concept_title" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableConceptTitle(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetConceptTitle(*v)
	}
	return _u
}

// SetExchange sets the "exchange" field.
func (_u *TurnEventUpdateOne) SetExchange(v int) *TurnEventUpdateOne {
	_u.mutation.ResetExchange()
	_u.mutation.SetExchange(v)
	return _u
}

// SetNillableExchange sets the "exchange" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableExchange(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetExchange(*v)
	}
	return _u
}

// AddExchange adds value to the "exchange" field.
func (_u *TurnEventUpdateOne) AddExchange(v int) *TurnEventUpdateOne {
	_u.mutation.AddExchange(v)
	return _u
}

// SetLearnerUtterance sets the "learner_utterance" field.
func (_u *TurnEventUpdateOne) SetLearnerUtterance(v string) *TurnEventUpdateOne {
	_u.mutation.SetLearnerUtterance(v)
	return _u
}

// SetNillableLearnerUtterance sets the "learner_utterance" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableLearnerUtterance(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetLearnerUtterance(*v)
	}
	return _u
}

// SetUnderstanding sets the "understanding" field.
func (_u *TurnEventUpdateOne) SetUnderstanding(v string) *TurnEventUpdateOne {
	_u.mutation.SetUnderstanding(v)
	return _u
}

// SetNillableUnderstanding sets the "understanding" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableUnderstanding(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetUnderstanding(*v)
	}
	return _u
}

// SetTrend sets the "trend" field.
func (_u *TurnEventUpdateOne) SetTrend(v string) *TurnEventUpdateOne {
	_u.mutation.SetTrend(v)
	return _u
}

// SetNillableTrend sets the "trend" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableTrend(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetTrend(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *TurnEventUpdateOne) SetStrategy(v string) *TurnEventUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableStrategy(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetTone sets the "tone" field.
func (_u *TurnEventUpdateOne) SetTone(v string) *TurnEventUpdateOne {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableTone(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// SetTeacherMessage sets the "teacher_message" field.
func (_u *TurnEventUpdateOne) SetTeacherMessage(v string) *TurnEventUpdateOne {
	_u.mutation.SetTeacherMessage(v)
	return _u
}

// SetNillableTeacherMessage sets the "teacher_message" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableTeacherMessage(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetTeacherMessage(*v)
	}
	return _u
}

// SetConceptAdvanced sets the "concept_advanced" field.
func (_u *TurnEventUpdateOne) SetConceptAdvanced(v bool) *TurnEventUpdateOne {
	_u.mutation.SetConceptAdvanced(v)
	return _u
}

// SetNillableConceptAdvanced sets the "concept_advanced" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableConceptAdvanced(v *bool) *TurnEventUpdateOne {
	if v != nil {
		_u.SetConceptAdvanced(*v)
	}
	return _u
}

// SetSessionCompleted sets the "session_completed" field.
func (_u *TurnEventUpdateOne) SetSessionCompleted(v bool) *TurnEventUpdateOne {
	_u.mutation.SetSessionCompleted(v)
	return _u
}

// SetNillableSessionCompleted sets the "session_completed" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableSessionCompleted(v *bool) *TurnEventUpdateOne {
	if v != nil {
		_u.SetSessionCompleted(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdateOne) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdateOne) Where(ps ...predicate.TurnEvent) *TurnEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnEventUpdateOne) Select(field string, fields ...string) *TurnEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnEvent entity.
func (_u *TurnEventUpdateOne) Save(ctx context.Context) (*TurnEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdateOne) SaveX(ctx context.Context) *TurnEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptTitle(); ok {
		if err := turnevent.ConceptTitleValidator(v); err != nil {
			return &ValidationError{Name: "concept_title", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.concept_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerUtterance(); ok {
		if err := turnevent.LearnerUtteranceValidator(v); err != nil {
			return &ValidationError{Name: "learner_utterance", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.learner_utterance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Understanding(); ok {
		if err := turnevent.UnderstandingValidator(v); err != nil {
			return &ValidationError{Name: "understanding", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.understanding": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdateOne) sqlSave(ctx context.Context) (_node *TurnEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turnevent.FieldID)
		for _, f := range fields {
			if !turnevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turnevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(turnevent.FieldConceptID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptID(); ok {
		_spec.AddField(turnevent.FieldConceptID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConceptTitle(); ok {
		_spec.SetField(turnevent.FieldConceptTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exchange(); ok {
		_spec.SetField(turnevent.FieldExchange, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExchange(); ok {
		_spec.AddField(turnevent.FieldExchange, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearnerUtterance(); ok {
		_spec.SetField(turnevent.FieldLearnerUtterance, field.TypeString, value)
	}
	if value, ok := _u.mutation.Understanding(); ok {
		_spec.SetField(turnevent.FieldUnderstanding, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trend(); ok {
		_spec.SetField(turnevent.FieldTrend, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(turnevent.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(turnevent.FieldTone, field.TypeString, value)
	}
	if value, ok := _u.mutation.TeacherMessage(); ok {
		_spec.SetField(turnevent.FieldTeacherMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptAdvanced(); ok {
		_spec.SetField(turnevent.FieldConceptAdvanced, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionCompleted(); ok {
		_spec.SetField(turnevent.FieldSessionCompleted, field.TypeBool, value)
	}
	_node = &TurnEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
