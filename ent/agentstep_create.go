// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentops/agentops/ent/agentrun"
	"github.com/agentops/agentops/ent/agentstep"
)

// AgentStepCreate is the builder for creating a AgentStep entity.
type AgentStepCreate struct {
	config
	mutation *AgentStepMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *AgentStepCreate) SetRunID(v string) *AgentStepCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AgentStepCreate) SetName(v string) *AgentStepCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentStepCreate) SetStatus(v agentstep.Status) *AgentStepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentStepCreate) SetStartedAt(v time.Time) *AgentStepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *AgentStepCreate) SetEndedAt(v time.Time) *AgentStepCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *AgentStepCreate) SetLatencyMs(v int) *AgentStepCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetRetries sets the "retries" field.
func (_c *AgentStepCreate) SetRetries(v int) *AgentStepCreate {
	_c.mutation.SetRetries(v)
	return _c
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableRetries(v *int) *AgentStepCreate {
	if v != nil {
		_c.SetRetries(*v)
	}
	return _c
}

// SetInputSummary sets the "input_summary" field.
func (_c *AgentStepCreate) SetInputSummary(v string) *AgentStepCreate {
	_c.mutation.SetInputSummary(v)
	return _c
}

// SetOutputSummary sets the "output_summary" field.
func (_c *AgentStepCreate) SetOutputSummary(v string) *AgentStepCreate {
	_c.mutation.SetOutputSummary(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AgentStepCreate) SetID(v string) *AgentStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the AgentRun entity.
func (_c *AgentStepCreate) SetRun(v *AgentRun) *AgentStepCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the AgentStepMutation object of the builder.
func (_c *AgentStepCreate) Mutation() *AgentStepMutation {
	return _c.mutation
}

// Save creates the AgentStep in the database.
func (_c *AgentStepCreate) Save(ctx context.Context) (*AgentStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentStepCreate) SaveX(ctx context.Context) *AgentStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentStepCreate) defaults() {
	if _, ok := _c.mutation.Retries(); !ok {
		v := agentstep.DefaultRetries
		_c.mutation.SetRetries(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentStepCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AgentStep.run_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AgentStep.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentStep.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentStep.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AgentStep.started_at"`)}
	}
	if _, ok := _c.mutation.EndedAt(); !ok {
		return &ValidationError{Name: "ended_at", err: errors.New(`ent: missing required field "AgentStep.ended_at"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "AgentStep.latency_ms"`)}
	}
	if v, ok := _c.mutation.LatencyMs(); ok {
		if err := agentstep.LatencyMsValidator(v); err != nil {
			return &ValidationError{Name: "latency_ms", err: fmt.Errorf(`ent: validator failed for field "AgentStep.latency_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Retries(); !ok {
		return &ValidationError{Name: "retries", err: errors.New(`ent: missing required field "AgentStep.retries"`)}
	}
	if v, ok := _c.mutation.Retries(); ok {
		if err := agentstep.RetriesValidator(v); err != nil {
			return &ValidationError{Name: "retries", err: fmt.Errorf(`ent: validator failed for field "AgentStep.retries": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputSummary(); !ok {
		return &ValidationError{Name: "input_summary", err: errors.New(`ent: missing required field "AgentStep.input_summary"`)}
	}
	if _, ok := _c.mutation.OutputSummary(); !ok {
		return &ValidationError{Name: "output_summary", err: errors.New(`ent: missing required field "AgentStep.output_summary"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "AgentStep.run"`)}
	}
	return nil
}

func (_c *AgentStepCreate) sqlSave(ctx context.Context) (*AgentStep, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentStepCreate) createSpec() (*AgentStep, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentstep.Table, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agentstep.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentstep.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agentstep.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(agentstep.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(agentstep.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Retries(); ok {
		_spec.SetField(agentstep.FieldRetries, field.TypeInt, value)
		_node.Retries = value
	}
	if value, ok := _c.mutation.InputSummary(); ok {
		_spec.SetField(agentstep.FieldInputSummary, field.TypeString, value)
		_node.InputSummary = value
	}
	if value, ok := _c.mutation.OutputSummary(); ok {
		_spec.SetField(agentstep.FieldOutputSummary, field.TypeString, value)
		_node.OutputSummary = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentstep.RunTable,
			Columns: []string{agentstep.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentStepCreateBulk is the builder for creating many AgentStep entities in bulk.
type AgentStepCreateBulk struct {
	config
	err      error
	builders []*AgentStepCreate
}

// Save creates the AgentStep entities in the database.
func (_c *AgentStepCreateBulk) Save(ctx context.Context) ([]*AgentStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentStepMutation)
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
func (_c *AgentStepCreateBulk) SaveX(ctx context.Context) []*AgentStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
