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
	"github.com/agentops/agentops/ent/agentstep"
	"github.com/agentops/agentops/ent/predicate"
)

// AgentStepUpdate is the builder for updating AgentStep entities.
type AgentStepUpdate struct {
	config
	hooks    []Hook
	mutation *AgentStepMutation
}

// Where appends a list predicates to the AgentStepUpdate builder.
func (_u *AgentStepUpdate) Where(ps ...predicate.AgentStep) *AgentStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentStepUpdate) SetName(v string) *AgentStepUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableName(v *string) *AgentStepUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentStepUpdate) SetStatus(v agentstep.Status) *AgentStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableStatus(v *agentstep.Status) *AgentStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentStepUpdate) SetStartedAt(v time.Time) *AgentStepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableStartedAt(v *time.Time) *AgentStepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentStepUpdate) SetEndedAt(v time.Time) *AgentStepUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableEndedAt(v *time.Time) *AgentStepUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AgentStepUpdate) SetLatencyMs(v int) *AgentStepUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableLatencyMs(v *int) *AgentStepUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AgentStepUpdate) AddLatencyMs(v int) *AgentStepUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetRetries sets the "retries" field.
func (_u *AgentStepUpdate) SetRetries(v int) *AgentStepUpdate {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableRetries(v *int) *AgentStepUpdate {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *AgentStepUpdate) AddRetries(v int) *AgentStepUpdate {
	_u.mutation.AddRetries(v)
	return _u
}

// SetInputSummary sets the "input_summary" field.
func (_u *AgentStepUpdate) SetInputSummary(v string) *AgentStepUpdate {
	_u.mutation.SetInputSummary(v)
	return _u
}

// SetNillableInputSummary sets the "input_summary" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableInputSummary(v *string) *AgentStepUpdate {
	if v != nil {
		_u.SetInputSummary(*v)
	}
	return _u
}

// SetOutputSummary sets the "output_summary" field.
func (_u *AgentStepUpdate) SetOutputSummary(v string) *AgentStepUpdate {
	_u.mutation.SetOutputSummary(v)
	return _u
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableOutputSummary(v *string) *AgentStepUpdate {
	if v != nil {
		_u.SetOutputSummary(*v)
	}
	return _u
}

// Mutation returns the AgentStepMutation object of the builder.
func (_u *AgentStepUpdate) Mutation() *AgentStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStepUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentStep.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LatencyMs(); ok {
		if err := agentstep.LatencyMsValidator(v); err != nil {
			return &ValidationError{Name: "latency_ms", err: fmt.Errorf(`ent: validator failed for field "AgentStep.latency_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Retries(); ok {
		if err := agentstep.RetriesValidator(v); err != nil {
			return &ValidationError{Name: "retries", err: fmt.Errorf(`ent: validator failed for field "AgentStep.retries": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentStep.run"`)
	}
	return nil
}

func (_u *AgentStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstep.Table, agentstep.Columns, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentstep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentstep.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agentstep.FieldEndedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(agentstep.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(agentstep.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(agentstep.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(agentstep.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputSummary(); ok {
		_spec.SetField(agentstep.FieldInputSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputSummary(); ok {
		_spec.SetField(agentstep.FieldOutputSummary, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentStepUpdateOne is the builder for updating a single AgentStep entity.
type AgentStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentStepMutation
}

// SetName sets the "name" field.
func (_u *AgentStepUpdateOne) SetName(v string) *AgentStepUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableName(v *string) *AgentStepUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentStepUpdateOne) SetStatus(v agentstep.Status) *AgentStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableStatus(v *agentstep.Status) *AgentStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentStepUpdateOne) SetStartedAt(v time.Time) *AgentStepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableStartedAt(v *time.Time) *AgentStepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentStepUpdateOne) SetEndedAt(v time.Time) *AgentStepUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableEndedAt(v *time.Time) *AgentStepUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AgentStepUpdateOne) SetLatencyMs(v int) *AgentStepUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableLatencyMs(v *int) *AgentStepUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AgentStepUpdateOne) AddLatencyMs(v int) *AgentStepUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetRetries sets the "retries" field.
func (_u *AgentStepUpdateOne) SetRetries(v int) *AgentStepUpdateOne {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableRetries(v *int) *AgentStepUpdateOne {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *AgentStepUpdateOne) AddRetries(v int) *AgentStepUpdateOne {
	_u.mutation.AddRetries(v)
	return _u
}

// SetInputSummary sets the "input_summary" field.
func (_u *AgentStepUpdateOne) SetInputSummary(v string) *AgentStepUpdateOne {
	_u.mutation.SetInputSummary(v)
	return _u
}

// SetNillableInputSummary sets the "input_summary" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableInputSummary(v *string) *AgentStepUpdateOne {
	if v != nil {
		_u.SetInputSummary(*v)
	}
	return _u
}

// SetOutputSummary sets the "output_summary" field.
func (_u *AgentStepUpdateOne) SetOutputSummary(v string) *AgentStepUpdateOne {
	_u.mutation.SetOutputSummary(v)
	return _u
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableOutputSummary(v *string) *AgentStepUpdateOne {
	if v != nil {
		_u.SetOutputSummary(*v)
	}
	return _u
}

// Mutation returns the AgentStepMutation object of the builder.
func (_u *AgentStepUpdateOne) Mutation() *AgentStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentStepUpdate builder.
func (_u *AgentStepUpdateOne) Where(ps ...predicate.AgentStep) *AgentStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentStepUpdateOne) Select(field string, fields ...string) *AgentStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentStep entity.
func (_u *AgentStepUpdateOne) Save(ctx context.Context) (*AgentStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStepUpdateOne) SaveX(ctx context.Context) *AgentStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStepUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentStep.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LatencyMs(); ok {
		if err := agentstep.LatencyMsValidator(v); err != nil {
			return &ValidationError{Name: "latency_ms", err: fmt.Errorf(`ent: validator failed for field "AgentStep.latency_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Retries(); ok {
		if err := agentstep.RetriesValidator(v); err != nil {
			return &ValidationError{Name: "retries", err: fmt.Errorf(`ent: validator failed for field "AgentStep.retries": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentStep.run"`)
	}
	return nil
}

func (_u *AgentStepUpdateOne) sqlSave(ctx context.Context) (_node *AgentStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstep.Table, agentstep.Columns, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentstep.FieldID)
		for _, f := range fields {
			if !agentstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentstep.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentstep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentstep.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agentstep.FieldEndedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(agentstep.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(agentstep.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(agentstep.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(agentstep.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputSummary(); ok {
		_spec.SetField(agentstep.FieldInputSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputSummary(); ok {
		_spec.SetField(agentstep.FieldOutputSummary, field.TypeString, value)
	}
	_node = &AgentStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
