// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentops/agentops/ent/guardrailevent"
	"github.com/agentops/agentops/ent/predicate"
)

// GuardrailEventUpdate is the builder for updating GuardrailEvent entities.
type GuardrailEventUpdate struct {
	config
	hooks    []Hook
	mutation *GuardrailEventMutation
}

// Where appends a list predicates to the GuardrailEventUpdate builder.
func (_u *GuardrailEventUpdate) Where(ps ...predicate.GuardrailEvent) *GuardrailEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *GuardrailEventUpdate) SetStepID(v string) *GuardrailEventUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *GuardrailEventUpdate) SetNillableStepID(v *string) *GuardrailEventUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *GuardrailEventUpdate) ClearStepID() *GuardrailEventUpdate {
	_u.mutation.ClearStepID()
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *GuardrailEventUpdate) SetCallID(v string) *GuardrailEventUpdate {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *GuardrailEventUpdate) SetNillableCallID(v *string) *GuardrailEventUpdate {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// ClearCallID clears the value of the "call_id" field.
func (_u *GuardrailEventUpdate) ClearCallID() *GuardrailEventUpdate {
	_u.mutation.ClearCallID()
	return _u
}

// SetType sets the "type" field.
func (_u *GuardrailEventUpdate) SetType(v guardrailevent.Type) *GuardrailEventUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *GuardrailEventUpdate) SetNillableType(v *guardrailevent.Type) *GuardrailEventUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *GuardrailEventUpdate) SetMessage(v string) *GuardrailEventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *GuardrailEventUpdate) SetNillableMessage(v *string) *GuardrailEventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GuardrailEventUpdate) SetCreatedAt(v time.Time) *GuardrailEventUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GuardrailEventUpdate) SetNillableCreatedAt(v *time.Time) *GuardrailEventUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the GuardrailEventMutation object of the builder.
func (_u *GuardrailEventUpdate) Mutation() *GuardrailEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GuardrailEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GuardrailEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GuardrailEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GuardrailEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GuardrailEventUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := guardrailevent.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "GuardrailEvent.type": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GuardrailEvent.run"`)
	}
	return nil
}

func (_u *GuardrailEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(guardrailevent.Table, guardrailevent.Columns, sqlgraph.NewFieldSpec(guardrailevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(guardrailevent.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(guardrailevent.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(guardrailevent.FieldCallID, field.TypeString, value)
	}
	if _u.mutation.CallIDCleared() {
		_spec.ClearField(guardrailevent.FieldCallID, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(guardrailevent.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(guardrailevent.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(guardrailevent.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{guardrailevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GuardrailEventUpdateOne is the builder for updating a single GuardrailEvent entity.
type GuardrailEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GuardrailEventMutation
}

// SetStepID sets the "step_id" field.
func (_u *GuardrailEventUpdateOne) SetStepID(v string) *GuardrailEventUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *GuardrailEventUpdateOne) SetNillableStepID(v *string) *GuardrailEventUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *GuardrailEventUpdateOne) ClearStepID() *GuardrailEventUpdateOne {
	_u.mutation.ClearStepID()
	return _u
}

// SetCallID sets the "call_id" field.
func (_u *GuardrailEventUpdateOne) SetCallID(v string) *GuardrailEventUpdateOne {
	_u.mutation.SetCallID(v)
	return _u
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_u *GuardrailEventUpdateOne) SetNillableCallID(v *string) *GuardrailEventUpdateOne {
	if v != nil {
		_u.SetCallID(*v)
	}
	return _u
}

// ClearCallID clears the value of the "call_id" field.
func (_u *GuardrailEventUpdateOne) ClearCallID() *GuardrailEventUpdateOne {
	_u.mutation.ClearCallID()
	return _u
}

// SetType sets the "type" field.
func (_u *GuardrailEventUpdateOne) SetType(v guardrailevent.Type) *GuardrailEventUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *GuardrailEventUpdateOne) SetNillableType(v *guardrailevent.Type) *GuardrailEventUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *GuardrailEventUpdateOne) SetMessage(v string) *GuardrailEventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *GuardrailEventUpdateOne) SetNillableMessage(v *string) *GuardrailEventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GuardrailEventUpdateOne) SetCreatedAt(v time.Time) *GuardrailEventUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GuardrailEventUpdateOne) SetNillableCreatedAt(v *time.Time) *GuardrailEventUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the GuardrailEventMutation object of the builder.
func (_u *GuardrailEventUpdateOne) Mutation() *GuardrailEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GuardrailEventUpdate builder.
func (_u *GuardrailEventUpdateOne) Where(ps ...predicate.GuardrailEvent) *GuardrailEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GuardrailEventUpdateOne) Select(field string, fields ...string) *GuardrailEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GuardrailEvent entity.
func (_u *GuardrailEventUpdateOne) Save(ctx context.Context) (*GuardrailEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GuardrailEventUpdateOne) SaveX(ctx context.Context) *GuardrailEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GuardrailEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GuardrailEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GuardrailEventUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := guardrailevent.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "GuardrailEvent.type": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GuardrailEvent.run"`)
	}
	return nil
}

func (_u *GuardrailEventUpdateOne) sqlSave(ctx context.Context) (_node *GuardrailEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(guardrailevent.Table, guardrailevent.Columns, sqlgraph.NewFieldSpec(guardrailevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GuardrailEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, guardrailevent.FieldID)
		for _, f := range fields {
			if !guardrailevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != guardrailevent.FieldID {
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
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(guardrailevent.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(guardrailevent.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.CallID(); ok {
		_spec.SetField(guardrailevent.FieldCallID, field.TypeString, value)
	}
	if _u.mutation.CallIDCleared() {
		_spec.ClearField(guardrailevent.FieldCallID, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(guardrailevent.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(guardrailevent.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(guardrailevent.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &GuardrailEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{guardrailevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
