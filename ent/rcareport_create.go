// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentops/agentops/ent/rcareport"
	"github.com/agentops/agentops/ent/rcarun"
)

// RCAReportCreate is the builder for creating a RCAReport entity.
type RCAReportCreate struct {
	config
	mutation *RCAReportMutation
	hooks    []Hook
}

// SetRcaRunID sets the "rca_run_id" field.
func (_c *RCAReportCreate) SetRcaRunID(v string) *RCAReportCreate {
	_c.mutation.SetRcaRunID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *RCAReportCreate) SetRunID(v string) *RCAReportCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetReportJSON sets the "report_json" field.
func (_c *RCAReportCreate) SetReportJSON(v map[string]interface{}) *RCAReportCreate {
	_c.mutation.SetReportJSON(v)
	return _c
}

// SetInsufficientEvidence sets the "insufficient_evidence" field.
func (_c *RCAReportCreate) SetInsufficientEvidence(v bool) *RCAReportCreate {
	_c.mutation.SetInsufficientEvidence(v)
	return _c
}

// SetNillableInsufficientEvidence sets the "insufficient_evidence" field if the given value is not nil.
func (_c *RCAReportCreate) SetNillableInsufficientEvidence(v *bool) *RCAReportCreate {
	if v != nil {
		_c.SetInsufficientEvidence(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *RCAReportCreate) SetCategory(v string) *RCAReportCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *RCAReportCreate) SetGeneratedAt(v time.Time) *RCAReportCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *RCAReportCreate) SetNillableGeneratedAt(v *time.Time) *RCAReportCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RCAReportCreate) SetID(v string) *RCAReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRcaRun sets the "rca_run" edge to the RCARun entity.
func (_c *RCAReportCreate) SetRcaRun(v *RCARun) *RCAReportCreate {
	return _c.SetRcaRunID(v.ID)
}

// Mutation returns the RCAReportMutation object of the builder.
func (_c *RCAReportCreate) Mutation() *RCAReportMutation {
	return _c.mutation
}

// Save creates the RCAReport in the database.
func (_c *RCAReportCreate) Save(ctx context.Context) (*RCAReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RCAReportCreate) SaveX(ctx context.Context) *RCAReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RCAReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RCAReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RCAReportCreate) defaults() {
	if _, ok := _c.mutation.InsufficientEvidence(); !ok {
		v := rcareport.DefaultInsufficientEvidence
		_c.mutation.SetInsufficientEvidence(v)
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := rcareport.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RCAReportCreate) check() error {
	if _, ok := _c.mutation.RcaRunID(); !ok {
		return &ValidationError{Name: "rca_run_id", err: errors.New(`ent: missing required field "RCAReport.rca_run_id"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RCAReport.run_id"`)}
	}
	if _, ok := _c.mutation.ReportJSON(); !ok {
		return &ValidationError{Name: "report_json", err: errors.New(`ent: missing required field "RCAReport.report_json"`)}
	}
	if _, ok := _c.mutation.InsufficientEvidence(); !ok {
		return &ValidationError{Name: "insufficient_evidence", err: errors.New(`ent: missing required field "RCAReport.insufficient_evidence"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "RCAReport.category"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "RCAReport.generated_at"`)}
	}
	if len(_c.mutation.RcaRunIDs()) == 0 {
		return &ValidationError{Name: "rca_run", err: errors.New(`ent: missing required edge "RCAReport.rca_run"`)}
	}
	return nil
}

func (_c *RCAReportCreate) sqlSave(ctx context.Context) (*RCAReport, error) {
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
			return nil, fmt.Errorf("unexpected RCAReport.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RCAReportCreate) createSpec() (*RCAReport, *sqlgraph.CreateSpec) {
	var (
		_node = &RCAReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rcareport.Table, sqlgraph.NewFieldSpec(rcareport.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(rcareport.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.ReportJSON(); ok {
		_spec.SetField(rcareport.FieldReportJSON, field.TypeJSON, value)
		_node.ReportJSON = value
	}
	if value, ok := _c.mutation.InsufficientEvidence(); ok {
		_spec.SetField(rcareport.FieldInsufficientEvidence, field.TypeBool, value)
		_node.InsufficientEvidence = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(rcareport.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(rcareport.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if nodes := _c.mutation.RcaRunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   rcareport.RcaRunTable,
			Columns: []string{rcareport.RcaRunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rcarun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RcaRunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RCAReportCreateBulk is the builder for creating many RCAReport entities in bulk.
type RCAReportCreateBulk struct {
	config
	err      error
	builders []*RCAReportCreate
}

// Save creates the RCAReport entities in the database.
func (_c *RCAReportCreateBulk) Save(ctx context.Context) ([]*RCAReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RCAReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RCAReportMutation)
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
func (_c *RCAReportCreateBulk) SaveX(ctx context.Context) []*RCAReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RCAReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RCAReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
