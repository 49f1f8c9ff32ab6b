// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentops/agentops/ent/predicate"
	"github.com/agentops/agentops/ent/rcareport"
)

// RCAReportUpdate is the builder for updating RCAReport entities.
type RCAReportUpdate struct {
	config
	hooks    []Hook
	mutation *RCAReportMutation
}

// Where appends a list predicates to the RCAReportUpdate builder.
func (_u *RCAReportUpdate) Where(ps ...predicate.RCAReport) *RCAReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportJSON sets the "report_json" field.
func (_u *RCAReportUpdate) SetReportJSON(v map[string]interface{}) *RCAReportUpdate {
	_u.mutation.SetReportJSON(v)
	return _u
}

// SetInsufficientEvidence sets the "insufficient_evidence" field.
func (_u *RCAReportUpdate) SetInsufficientEvidence(v bool) *RCAReportUpdate {
	_u.mutation.SetInsufficientEvidence(v)
	return _u
}

// SetNillableInsufficientEvidence sets the "insufficient_evidence" field if the given value is not nil.
func (_u *RCAReportUpdate) SetNillableInsufficientEvidence(v *bool) *RCAReportUpdate {
	if v != nil {
		_u.SetInsufficientEvidence(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *RCAReportUpdate) SetCategory(v string) *RCAReportUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RCAReportUpdate) SetNillableCategory(v *string) *RCAReportUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// Mutation returns the RCAReportMutation object of the builder.
func (_u *RCAReportUpdate) Mutation() *RCAReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RCAReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RCAReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RCAReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RCAReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RCAReportUpdate) check() error {
	if _u.mutation.RcaRunCleared() && len(_u.mutation.RcaRunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RCAReport.rca_run"`)
	}
	return nil
}

func (_u *RCAReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rcareport.Table, rcareport.Columns, sqlgraph.NewFieldSpec(rcareport.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReportJSON(); ok {
		_spec.SetField(rcareport.FieldReportJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.InsufficientEvidence(); ok {
		_spec.SetField(rcareport.FieldInsufficientEvidence, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(rcareport.FieldCategory, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rcareport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RCAReportUpdateOne is the builder for updating a single RCAReport entity.
type RCAReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RCAReportMutation
}

// SetReportJSON sets the "report_json" field.
func (_u *RCAReportUpdateOne) SetReportJSON(v map[string]interface{}) *RCAReportUpdateOne {
	_u.mutation.SetReportJSON(v)
	return _u
}

// SetInsufficientEvidence sets the "insufficient_evidence" field.
func (_u *RCAReportUpdateOne) SetInsufficientEvidence(v bool) *RCAReportUpdateOne {
	_u.mutation.SetInsufficientEvidence(v)
	return _u
}

// SetNillableInsufficientEvidence sets the "insufficient_evidence" field if the given value is not nil.
func (_u *RCAReportUpdateOne) SetNillableInsufficientEvidence(v *bool) *RCAReportUpdateOne {
	if v != nil {
		_u.SetInsufficientEvidence(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *RCAReportUpdateOne) SetCategory(v string) *RCAReportUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RCAReportUpdateOne) SetNillableCategory(v *string) *RCAReportUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// Mutation returns the RCAReportMutation object of the builder.
func (_u *RCAReportUpdateOne) Mutation() *RCAReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the RCAReportUpdate builder.
func (_u *RCAReportUpdateOne) Where(ps ...predicate.RCAReport) *RCAReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RCAReportUpdateOne) Select(field string, fields ...string) *RCAReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RCAReport entity.
func (_u *RCAReportUpdateOne) Save(ctx context.Context) (*RCAReport, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RCAReportUpdateOne) SaveX(ctx context.Context) *RCAReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RCAReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RCAReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RCAReportUpdateOne) check() error {
	if _u.mutation.RcaRunCleared() && len(_u.mutation.RcaRunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RCAReport.rca_run"`)
	}
	return nil
}

func (_u *RCAReportUpdateOne) sqlSave(ctx context.Context) (_node *RCAReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rcareport.Table, rcareport.Columns, sqlgraph.NewFieldSpec(rcareport.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RCAReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rcareport.FieldID)
		for _, f := range fields {
			if !rcareport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rcareport.FieldID {
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
	if value, ok := _u.mutation.ReportJSON(); ok {
		_spec.SetField(rcareport.FieldReportJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.InsufficientEvidence(); ok {
		_spec.SetField(rcareport.FieldInsufficientEvidence, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(rcareport.FieldCategory, field.TypeString, value)
	}
	_node = &RCAReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rcareport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
