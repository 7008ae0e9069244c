// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adasgupta/simtutor/ent/paramchangeevent"
)

// ParamChangeEventCreate is the builder for creating a ParamChangeEvent entity.
type ParamChangeEventCreate struct {
	config
	mutation *ParamChangeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ParamChangeEventCreate) SetSequence(v int64) *ParamChangeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ParamChangeEventCreate) SetTimestamp(v time.Time) *ParamChangeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ParamChangeEventCreate) SetNillableTimestamp(v *time.Time) *ParamChangeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ParamChangeEventCreate) SetSessionID(v string) *ParamChangeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetParameter sets the "parameter" field.
func (_c *ParamChangeEventCreate) SetParameter(v string) *ParamChangeEventCreate {
	_c.mutation.SetParameter(v)
	return _c
}

// SetOldValue sets the "old_value" field.
func (_c *ParamChangeEventCreate) SetOldValue(v string) *ParamChangeEventCreate {
	_c.mutation.SetOldValue(v)
	return _c
}

// SetNewValue sets the "new_value" field.
func (_c *ParamChangeEventCreate) SetNewValue(v string) *ParamChangeEventCreate {
	_c.mutation.SetNewValue(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ParamChangeEventCreate) SetReason(v string) *ParamChangeEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetUnderstandingBefore sets the "understanding_before" field.
func (_c *ParamChangeEventCreate) SetUnderstandingBefore(v string) *ParamChangeEventCreate {
	_c.mutation.SetUnderstandingBefore(v)
	return _c
}

// SetWasEffective sets the "was_effective" field.
func (_c *ParamChangeEventCreate) SetWasEffective(v bool) *ParamChangeEventCreate {
	_c.mutation.SetWasEffective(v)
	return _c
}

// SetNillableWasEffective sets the "was_effective" field if the given value is not nil.
func (_c *ParamChangeEventCreate) SetNillableWasEffective(v *bool) *ParamChangeEventCreate {
	if v != nil {
		_c.SetWasEffective(*v)
	}
	return _c
}

// Mutation returns the ParamChangeEventMutation object of the builder.
func (_c *ParamChangeEventCreate) Mutation() *ParamChangeEventMutation {
	return _c.mutation
}

// Save creates the ParamChangeEvent in the database.
func (_c *ParamChangeEventCreate) Save(ctx context.Context) (*ParamChangeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParamChangeEventCreate) SaveX(ctx context.Context) *ParamChangeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParamChangeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParamChangeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParamChangeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := paramchangeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.WasEffective(); !ok {
		v := paramchangeevent.DefaultWasEffective
		_c.mutation.SetWasEffective(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParamChangeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ParamChangeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ParamChangeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ParamChangeEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := paramchangeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ParamChangeEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Parameter(); !ok {
		return &ValidationError{Name: "parameter", err: errors.New(`ent: missing required field "ParamChangeEvent.parameter"`)}
	}
	if v, ok := _c.mutation.Parameter(); ok {
		if err := paramchangeevent.ParameterValidator(v); err != nil {
			return &ValidationError{Name: "parameter", err: fmt.Errorf(`ent: validator failed for field "ParamChangeEvent.parameter": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OldValue(); !ok {
		return &ValidationError{Name: "old_value", err: errors.New(`ent: missing required field "ParamChangeEvent.old_value"`)}
	}
	if _, ok := _c.mutation.NewValue(); !ok {
		return &ValidationError{Name: "new_value", err: errors.New(`ent: missing required field "ParamChangeEvent.new_value"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "ParamChangeEvent.reason"`)}
	}
	if _, ok := _c.mutation.UnderstandingBefore(); !ok {
		return &ValidationError{Name: "understanding_before", err: errors.New(`ent: missing required field "ParamChangeEvent.understanding_before"`)}
	}
	if _, ok := _c.mutation.WasEffective(); !ok {
		return &ValidationError{Name: "was_effective", err: errors.New(`ent: missing required field "ParamChangeEvent.was_effective"`)}
	}
	return nil
}

func (_c *ParamChangeEventCreate) sqlSave(ctx context.Context) (*ParamChangeEvent, error) {
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

func (_c *ParamChangeEventCreate) createSpec() (*ParamChangeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ParamChangeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paramchangeevent.Table, sqlgraph.NewFieldSpec(paramchangeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(paramchangeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(paramchangeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(paramchangeevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Parameter(); ok {
		_spec.SetField(paramchangeevent.FieldParameter, field.TypeString, value)
		_node.Parameter = value
	}
	if value, ok := _c.mutation.OldValue(); ok {
		_spec.SetField(paramchangeevent.FieldOldValue, field.TypeString, value)
		_node.OldValue = value
	}
	if value, ok := _c.mutation.NewValue(); ok {
		_spec.SetField(paramchangeevent.FieldNewValue, field.TypeString, value)
		_node.NewValue = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(paramchangeevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.UnderstandingBefore(); ok {
		_spec.SetField(paramchangeevent.FieldUnderstandingBefore, field.TypeString, value)
		_node.UnderstandingBefore = value
	}
	if value, ok := _c.mutation.WasEffective(); ok {
		_spec.SetField(paramchangeevent.FieldWasEffective, field.TypeBool, value)
		_node.WasEffective = value
	}
	return _node, _spec
}

// ParamChangeEventCreateBulk is the builder for creating many ParamChangeEvent entities in bulk.
type ParamChangeEventCreateBulk struct {
	config
	err      error
	builders []*ParamChangeEventCreate
}

// Save creates the ParamChangeEvent entities in the database.
func (_c *ParamChangeEventCreateBulk) Save(ctx context.Context) ([]*ParamChangeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParamChangeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParamChangeEventMutation)
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
func (_c *ParamChangeEventCreateBulk) SaveX(ctx context.Context) []*ParamChangeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParamChangeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParamChangeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
