// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentops/agentops/ent/guardrailevent"
	"github.com/agentops/agentops/ent/predicate"
)

// GuardrailEventDelete is the builder for deleting a GuardrailEvent entity.
type GuardrailEventDelete struct {
	config
	hooks    []Hook
	mutation *GuardrailEventMutation
}

// Where appends a list predicates to the GuardrailEventDelete builder.
func (_d *GuardrailEventDelete) Where(ps ...predicate.GuardrailEvent) *GuardrailEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GuardrailEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GuardrailEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GuardrailEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(guardrailevent.Table, sqlgraph.NewFieldSpec(guardrailevent.FieldID, field.TypeString))
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

// GuardrailEventDeleteOne is the builder for deleting a single GuardrailEvent entity.
type GuardrailEventDeleteOne struct {
	_d *GuardrailEventDelete
}

// Where appends a list predicates to the GuardrailEventDelete builder.
func (_d *GuardrailEventDeleteOne) Where(ps ...predicate.GuardrailEvent) *GuardrailEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GuardrailEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{guardrailevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GuardrailEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
