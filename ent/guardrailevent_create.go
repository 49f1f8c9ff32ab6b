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
	"github.com/agentops/agentops/ent/guardrailevent"
)

// GuardrailEventCreate is the builder for creating a GuardrailEvent entity.
type GuardrailEventCreate struct {
	config
	mutation *GuardrailEventMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *GuardrailEventCreate) SetRunID(v string) *GuardrailEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *GuardrailEventCreate) SetStepID(v string) *GuardrailEventCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *GuardrailEventCreate) SetNillableStepID(v *string) *GuardrailEventCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetCallID sets the "call_id" field.
func (_c *GuardrailEventCreate) SetCallID(v string) *GuardrailEventCreate {
	_c.mutation.SetCallID(v)
	return _c
}

// SetNillableCallID sets the "call_id" field if the given value is not nil.
func (_c *GuardrailEventCreate) SetNillableCallID(v *string) *GuardrailEventCreate {
	if v != nil {
		_c.SetCallID(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *GuardrailEventCreate) SetType(v guardrailevent.Type) *GuardrailEventCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *GuardrailEventCreate) SetMessage(v string) *GuardrailEventCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GuardrailEventCreate) SetCreatedAt(v time.Time) *GuardrailEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GuardrailEventCreate) SetNillableCreatedAt(v *time.Time) *GuardrailEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GuardrailEventCreate) SetID(v string) *GuardrailEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the AgentRun entity.
func (_c *GuardrailEventCreate) SetRun(v *AgentRun) *GuardrailEventCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the GuardrailEventMutation object of the builder.
func (_c *GuardrailEventCreate) Mutation() *GuardrailEventMutation {
	return _c.mutation
}

// Save creates the GuardrailEvent in the database.
func (_c *GuardrailEventCreate) Save(ctx context.Context) (*GuardrailEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GuardrailEventCreate) SaveX(ctx context.Context) *GuardrailEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GuardrailEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GuardrailEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GuardrailEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := guardrailevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GuardrailEventCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "GuardrailEvent.run_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "GuardrailEvent.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := guardrailevent.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "GuardrailEvent.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "GuardrailEvent.message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GuardrailEvent.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "GuardrailEvent.run"`)}
	}
	return nil
}

func (_c *GuardrailEventCreate) sqlSave(ctx context.Context) (*GuardrailEvent, error) {
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
			return nil, fmt.Errorf("unexpected GuardrailEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GuardrailEventCreate) createSpec() (*GuardrailEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GuardrailEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(guardrailevent.Table, sqlgraph.NewFieldSpec(guardrailevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(guardrailevent.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.CallID(); ok {
		_spec.SetField(guardrailevent.FieldCallID, field.TypeString, value)
		_node.CallID = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(guardrailevent.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(guardrailevent.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(guardrailevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   guardrailevent.RunTable,
			Columns: []string{guardrailevent.RunColumn},
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

// GuardrailEventCreateBulk is the builder for creating many GuardrailEvent entities in bulk.
type GuardrailEventCreateBulk struct {
	config
	err      error
	builders []*GuardrailEventCreate
}

// Save creates the GuardrailEvent entities in the database.
func (_c *GuardrailEventCreateBulk) Save(ctx context.Context) ([]*GuardrailEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GuardrailEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GuardrailEventMutation)
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
func (_c *GuardrailEventCreateBulk) SaveX(ctx context.Context) []*GuardrailEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GuardrailEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GuardrailEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
