// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adasgupta/simtutor/ent/paramchangeevent"
	"github.com/adasgupta/simtutor/ent/predicate"
)

// ParamChangeEventDelete is the builder for deleting a ParamChangeEvent entity.
type ParamChangeEventDelete struct {
	config
	hooks    []Hook
	mutation *ParamChangeEventMutation
}

// Where appends a list predicates to the ParamChangeEventDelete builder.
func (_d *ParamChangeEventDelete) Where(ps ...predicate.ParamChangeEvent) *ParamChangeEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ParamChangeEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ParamChangeEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ParamChangeEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(paramchangeevent.Table, sqlgraph.NewFieldSpec(paramchangeevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ParamChangeEventDeleteOne is the builder for deleting a single ParamChangeEvent entity.
type ParamChangeEventDeleteOne struct {
	_d *ParamChangeEventDelete
}

// Where appends a list predicates to the ParamChangeEventDelete builder.
func (_d *ParamChangeEventDeleteOne) Where(ps ...predicate.ParamChangeEvent) *ParamChangeEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ParamChangeEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{paramchangeevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ParamChangeEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
