// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adasgupta/simtutor/ent/paramchangeevent"
	"github.com/adasgupta/simtutor/ent/predicate"
)

// ParamChangeEventUpdate is the builder for updating ParamChangeEvent entities.
type ParamChangeEventUpdate struct {
	config
	hooks    []Hook
	mutation *ParamChangeEventMutation
}

// Where appends a list predicates to the ParamChangeEventUpdate builder.
func (_u *ParamChangeEventUpdate) Where(ps ...predicate.ParamChangeEvent) *ParamChangeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ParamChangeEventUpdate) SetSessionID(v string) *ParamChangeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ParamChangeEventUpdate) SetNillableSessionID(v *string) *ParamChangeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetParameter sets the "parameter" field.
func (_u *ParamChangeEventUpdate) SetParameter(v string) *ParamChangeEventUpdate {
	_u.mutation.SetParameter(v)
	return _u
}

// SetNillableParameter sets the "parameter" field if the given value is not nil.
func (_u *ParamChangeEventUpdate) SetNillableParameter(v *string) *ParamChangeEventUpdate {
	if v != nil {
		_u.SetParameter(*v)
	}
	return _u
}

// SetOldValue sets the "old_value" field.
func (_u *ParamChangeEventUpdate) SetOldValue(v string) *ParamChangeEventUpdate {
	_u.mutation.SetOldValue(v)
	return _u
}

// SetNillableOldValue sets the "old_value" field if the given value is not nil.
func (_u *ParamChangeEventUpdate) SetNillableOldValue(v *string) *ParamChangeEventUpdate {
	if v != nil {
		_u.SetOldValue(*v)
	}
	return _u
}

// SetNewValue sets the "new_value" field.
func (_u *ParamChangeEventUpdate) SetNewValue(v string) *ParamChangeEventUpdate {
	_u.mutation.SetNewValue(v)
	return _u
}

// SetNillableNewValue sets the "new_value" field if the given value is not nil.
func (_u *ParamChangeEventUpdate) SetNillableNewValue(v *string) *ParamChangeEventUpdate {
	if v != nil {
		_u.SetNewValue(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ParamChangeEventUpdate) SetReason(v string) *ParamChangeEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ParamChangeEventUpdate) SetNillableReason(v *string) *ParamChangeEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetUnderstandingBefore sets the "understanding_before" field.
func (_u *ParamChangeEventUpdate) SetUnderstandingBefore(v string) *ParamChangeEventUpdate {
	_u.mutation.SetUnderstandingBefore(v)
	return _u
}

// SetNillableUnderstandingBefore sets the "understanding_before" field if the given value is not nil.
func (_u *ParamChangeEventUpdate) SetNillableUnderstandingBefore(v *string) *ParamChangeEventUpdate {
	if v != nil {
		_u.SetUnderstandingBefore(*v)
	}
	return _u
}

// SetWasEffective sets the "was_effective" field.
func (_u *ParamChangeEventUpdate) SetWasEffective(v bool) *ParamChangeEventUpdate {
	_u.mutation.SetWasEffective(v)
	return _u
}

// SetNillableWasEffective sets the "was_effective" field if the given value is not nil.
func (_u *ParamChangeEventUpdate) SetNillableWasEffective(v *bool) *ParamChangeEventUpdate {
	if v != nil {
		_u.SetWasEffective(*v)
	}
	return _u
}

// Mutation returns the ParamChangeEventMutation object of the builder.
func (_u *ParamChangeEventUpdate) Mutation() *ParamChangeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParamChangeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParamChangeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParamChangeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParamChangeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParamChangeEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := paramchangeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ParamChangeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Parameter(); ok {
		if err := paramchangeevent.ParameterValidator(v); err != nil {
			return &ValidationError{Name: "parameter", err: fmt.Errorf(`ent: validator failed for field "ParamChangeEvent.parameter": %w`, err)}
		}
	}
	return nil
}

func (_u *ParamChangeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paramchangeevent.Table, paramchangeevent.Columns, sqlgraph.NewFieldSpec(paramchangeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(paramchangeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parameter(); ok {
		_spec.SetField(paramchangeevent.FieldParameter, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldValue(); ok {
		_spec.SetField(paramchangeevent.FieldOldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewValue(); ok {
		_spec.SetField(paramchangeevent.FieldNewValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(paramchangeevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnderstandingBefore(); ok {
		_spec.SetField(paramchangeevent.FieldUnderstandingBefore, field.TypeString, value)
	}
	if value, ok := _u.mutation.WasEffective(); ok {
		_spec.SetField(paramchangeevent.FieldWasEffective, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paramchangeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParamChangeEventUpdateOne is the builder for updating a single ParamChangeEvent entity.
type ParamChangeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParamChangeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ParamChangeEventUpdateOne) SetSessionID(v string) *ParamChangeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ParamChangeEventUpdateOne) SetNillableSessionID(v *string) *ParamChangeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetParameter sets the "parameter" field.
func (_u *ParamChangeEventUpdateOne) SetParameter(v string) *ParamChangeEventUpdateOne {
	_u.mutation.SetParameter(v)
	return _u
}

// SetNillableParameter sets the "parameter" field if the given value is not nil.
func (_u *ParamChangeEventUpdateOne) SetNillableParameter(v *string) *ParamChangeEventUpdateOne {
	if v != nil {
		_u.SetParameter(*v)
	}
	return _u
}

// SetOldValue sets the "old_value" field.
func (_u *ParamChangeEventUpdateOne) SetOldValue(v string) *ParamChangeEventUpdateOne {
	_u.mutation.SetOldValue(v)
	return _u
}

// SetNillableOldValue sets the "old_value" field if the given value is not nil.
func (_u *ParamChangeEventUpdateOne) SetNillableOldValue(v *string) *ParamChangeEventUpdateOne {
	if v != nil {
		_u.SetOldValue(*v)
	}
	return _u
}

// SetNewValue sets the "new_value" field.
func (_u *ParamChangeEventUpdateOne) SetNewValue(v string) *ParamChangeEventUpdateOne {
	_u.mutation.SetNewValue(v)
	return _u
}

// SetNillableNewValue sets the "new_value" field if the given value is not nil.
func (_u *ParamChangeEventUpdateOne) SetNillableNewValue(v *string) *ParamChangeEventUpdateOne {
	if v != nil {
		_u.SetNewValue(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ParamChangeEventUpdateOne) SetReason(v string) *ParamChangeEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ParamChangeEventUpdateOne) SetNillableReason(v *string) *ParamChangeEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetUnderstandingBefore sets the "understanding_before" field.
func (_u *ParamChangeEventUpdateOne) SetUnderstandingBefore(v string) *ParamChangeEventUpdateOne {
	_u.mutation.SetUnderstandingBefore(v)
	return _u
}

// SetNillableUnderstandingBefore sets the "understanding_before" field if the given value is not nil.
func (_u *ParamChangeEventUpdateOne) SetNillableUnderstandingBefore(v *string) *ParamChangeEventUpdateOne {
	if v != nil {
		_u.SetUnderstandingBefore(*v)
	}
	return _u
}

// SetWasEffective sets the "was_effective" field.
func (_u *ParamChangeEventUpdateOne) SetWasEffective(v bool) *ParamChangeEventUpdateOne {
	_u.mutation.SetWasEffective(v)
	return _u
}

// SetNillableWasEffective sets the "was_effective" field if the given value is not nil.
func (_u *ParamChangeEventUpdateOne) SetNillableWasEffective(v *bool) *ParamChangeEventUpdateOne {
	if v != nil {
		_u.SetWasEffective(*v)
	}
	return _u
}

// Mutation returns the ParamChangeEventMutation object of the builder.
func (_u *ParamChangeEventUpdateOne) Mutation() *ParamChangeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ParamChangeEventUpdate builder.
func (_u *ParamChangeEventUpdateOne) Where(ps ...predicate.ParamChangeEvent) *ParamChangeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParamChangeEventUpdateOne) Select(field string, fields ...string) *ParamChangeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParamChangeEvent entity.
func (_u *ParamChangeEventUpdateOne) Save(ctx context.Context) (*ParamChangeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParamChangeEventUpdateOne) SaveX(ctx context.Context) *ParamChangeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParamChangeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParamChangeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParamChangeEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := paramchangeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ParamChangeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Parameter(); ok {
		if err := paramchangeevent.ParameterValidator(v); err != nil {
			return &ValidationError{Name: "parameter", err: fmt.Errorf(`ent: validator failed for field "ParamChangeEvent.parameter": %w`, err)}
		}
	}
	return nil
}

func (_u *ParamChangeEventUpdateOne) sqlSave(ctx context.Context) (_node *ParamChangeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paramchangeevent.Table, paramchangeevent.Columns, sqlgraph.NewFieldSpec(paramchangeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParamChangeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paramchangeevent.FieldID)
		for _, f := range fields {
			if !paramchangeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paramchangeevent.FieldID {
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
		_spec.SetField(paramchangeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parameter(); ok {
		_spec.SetField(paramchangeevent.FieldParameter, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldValue(); ok {
		_spec.SetField(paramchangeevent.FieldOldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewValue(); ok {
		_spec.SetField(paramchangeevent.FieldNewValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(paramchangeevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnderstandingBefore(); ok {
		_spec.SetField(paramchangeevent.FieldUnderstandingBefore, field.TypeString, value)
	}
	if value, ok := _u.mutation.WasEffective(); ok {
		_spec.SetField(paramchangeevent.FieldWasEffective, field.TypeBool, value)
	}
	_node = &ParamChangeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paramchangeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
