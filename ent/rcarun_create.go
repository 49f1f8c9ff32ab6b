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
	"github.com/agentops/agentops/ent/rcareport"
	"github.com/agentops/agentops/ent/rcarun"
)

// RCARunCreate is the builder for creating a RCARun entity.
type RCARunCreate struct {
	config
	mutation *RCARunMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *RCARunCreate) SetRunID(v string) *RCARunCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RCARunCreate) SetStatus(v rcarun.Status) *RCARunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RCARunCreate) SetNillableStatus(v *rcarun.Status) *RCARunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStep sets the "step" field.
func (_c *RCARunCreate) SetStep(v string) *RCARunCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_c *RCARunCreate) SetNillableStep(v *string) *RCARunCreate {
	if v != nil {
		_c.SetStep(*v)
	}
	return _c
}

// SetPct sets the "pct" field.
func (_c *RCARunCreate) SetPct(v int) *RCARunCreate {
	_c.mutation.SetPct(v)
	return _c
}

// SetNillablePct sets the "pct" field if the given value is not nil.
func (_c *RCARunCreate) SetNillablePct(v *int) *RCARunCreate {
	if v != nil {
		_c.SetPct(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *RCARunCreate) SetMessage(v string) *RCARunCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *RCARunCreate) SetNillableMessage(v *string) *RCARunCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RCARunCreate) SetCreatedAt(v time.Time) *RCARunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RCARunCreate) SetNillableCreatedAt(v *time.Time) *RCARunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RCARunCreate) SetStartedAt(v time.Time) *RCARunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RCARunCreate) SetNillableStartedAt(v *time.Time) *RCARunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *RCARunCreate) SetEndedAt(v time.Time) *RCARunCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *RCARunCreate) SetNillableEndedAt(v *time.Time) *RCARunCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RCARunCreate) SetErrorMessage(v string) *RCARunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RCARunCreate) SetNillableErrorMessage(v *string) *RCARunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *RCARunCreate) SetPodID(v string) *RCARunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *RCARunCreate) SetNillablePodID(v *string) *RCARunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RCARunCreate) SetID(v string) *RCARunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the AgentRun entity.
func (_c *RCARunCreate) SetRun(v *AgentRun) *RCARunCreate {
	return _c.SetRunID(v.ID)
}

// SetReportID sets the "report" edge to the RCAReport entity by ID.
func (_c *RCARunCreate) SetReportID(id string) *RCARunCreate {
	_c.mutation.SetReportID(id)
	return _c
}

// SetNillableReportID sets the "report" edge to the RCAReport entity by ID if the given value is not nil.
func (_c *RCARunCreate) SetNillableReportID(id *string) *RCARunCreate {
	if id != nil {
		_c = _c.SetReportID(*id)
	}
	return _c
}

// SetReport sets the "report" edge to the RCAReport entity.
func (_c *RCARunCreate) SetReport(v *RCAReport) *RCARunCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the RCARunMutation object of the builder.
func (_c *RCARunCreate) Mutation() *RCARunMutation {
	return _c.mutation
}

// Save creates the RCARun in the database.
func (_c *RCARunCreate) Save(ctx context.Context) (*RCARun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RCARunCreate) SaveX(ctx context.Context) *RCARun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RCARunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RCARunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RCARunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := rcarun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Step(); !ok {
		v := rcarun.DefaultStep
		_c.mutation.SetStep(v)
	}
	if _, ok := _c.mutation.Pct(); !ok {
		v := rcarun.DefaultPct
		_c.mutation.SetPct(v)
	}
	if _, ok := _c.mutation.Message(); !ok {
		v := rcarun.DefaultMessage
		_c.mutation.SetMessage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rcarun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RCARunCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RCARun.run_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RCARun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := rcarun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RCARun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Step(); !ok {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required field "RCARun.step"`)}
	}
	if _, ok := _c.mutation.Pct(); !ok {
		return &ValidationError{Name: "pct", err: errors.New(`ent: missing required field "RCARun.pct"`)}
	}
	if v, ok := _c.mutation.Pct(); ok {
		if err := rcarun.PctValidator(v); err != nil {
			return &ValidationError{Name: "pct", err: fmt.Errorf(`ent: validator failed for field "RCARun.pct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "RCARun.message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RCARun.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RCARun.run"`)}
	}
	return nil
}

func (_c *RCARunCreate) sqlSave(ctx context.Context) (*RCARun, error) {
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
			return nil, fmt.Errorf("unexpected RCARun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RCARunCreate) createSpec() (*RCARun, *sqlgraph.CreateSpec) {
	var (
		_node = &RCARun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rcarun.Table, sqlgraph.NewFieldSpec(rcarun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(rcarun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(rcarun.FieldStep, field.TypeString, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.Pct(); ok {
		_spec.SetField(rcarun.FieldPct, field.TypeInt, value)
		_node.Pct = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(rcarun.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rcarun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(rcarun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(rcarun.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(rcarun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(rcarun.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   rcarun.RunTable,
			Columns: []string{rcarun.RunColumn},
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
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   rcarun.ReportTable,
			Columns: []string{rcarun.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rcareport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RCARunCreateBulk is the builder for creating many RCARun entities in bulk.
type RCARunCreateBulk struct {
	config
	err      error
	builders []*RCARunCreate
}

// Save creates the RCARun entities in the database.
func (_c *RCARunCreateBulk) Save(ctx context.Context) ([]*RCARun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RCARun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RCARunMutation)
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
func (_c *RCARunCreateBulk) SaveX(ctx context.Context) []*RCARun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RCARunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RCARunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
