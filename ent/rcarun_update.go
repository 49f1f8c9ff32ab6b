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
	"github.com/agentops/agentops/ent/predicate"
	"github.com/agentops/agentops/ent/rcareport"
	"github.com/agentops/agentops/ent/rcarun"
)

// RCARunUpdate is the builder for updating RCARun entities.
type RCARunUpdate struct {
	config
	hooks    []Hook
	mutation *RCARunMutation
}

// Where appends a list predicates to the RCARunUpdate builder.
func (_u *RCARunUpdate) Where(ps ...predicate.RCARun) *RCARunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RCARunUpdate) SetStatus(v rcarun.Status) *RCARunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RCARunUpdate) SetNillableStatus(v *rcarun.Status) *RCARunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *RCARunUpdate) SetStep(v string) *RCARunUpdate {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *RCARunUpdate) SetNillableStep(v *string) *RCARunUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// SetPct sets the "pct" field.
func (_u *RCARunUpdate) SetPct(v int) *RCARunUpdate {
	_u.mutation.ResetPct()
	_u.mutation.SetPct(v)
	return _u
}

// SetNillablePct sets the "pct" field if the given value is not nil.
func (_u *RCARunUpdate) SetNillablePct(v *int) *RCARunUpdate {
	if v != nil {
		_u.SetPct(*v)
	}
	return _u
}

// AddPct adds value to the "pct" field.
func (_u *RCARunUpdate) AddPct(v int) *RCARunUpdate {
	_u.mutation.AddPct(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *RCARunUpdate) SetMessage(v string) *RCARunUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *RCARunUpdate) SetNillableMessage(v *string) *RCARunUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RCARunUpdate) SetStartedAt(v time.Time) *RCARunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RCARunUpdate) SetNillableStartedAt(v *time.Time) *RCARunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RCARunUpdate) ClearStartedAt() *RCARunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *RCARunUpdate) SetEndedAt(v time.Time) *RCARunUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *RCARunUpdate) SetNillableEndedAt(v *time.Time) *RCARunUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *RCARunUpdate) ClearEndedAt() *RCARunUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RCARunUpdate) SetErrorMessage(v string) *RCARunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RCARunUpdate) SetNillableErrorMessage(v *string) *RCARunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RCARunUpdate) ClearErrorMessage() *RCARunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RCARunUpdate) SetPodID(v string) *RCARunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RCARunUpdate) SetNillablePodID(v *string) *RCARunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RCARunUpdate) ClearPodID() *RCARunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetReportID sets the "report" edge to the RCAReport entity by ID.
func (_u *RCARunUpdate) SetReportID(id string) *RCARunUpdate {
	_u.mutation.SetReportID(id)
	return _u
}

// SetNillableReportID sets the "report" edge to the RCAReport entity by ID if the given value is not nil.
func (_u *RCARunUpdate) SetNillableReportID(id *string) *RCARunUpdate {
	if id != nil {
		_u = _u.SetReportID(*id)
	}
	return _u
}

// SetReport sets the "report" edge to the RCAReport entity.
func (_u *RCARunUpdate) SetReport(v *RCAReport) *RCARunUpdate {
	return _u.SetReportID(v.ID)
}

// Mutation returns the RCARunMutation object of the builder.
func (_u *RCARunUpdate) Mutation() *RCARunMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the RCAReport entity.
func (_u *RCARunUpdate) ClearReport() *RCARunUpdate {
	_u.mutation.ClearReport()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RCARunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RCARunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RCARunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RCARunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RCARunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := rcarun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RCARun.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pct(); ok {
		if err := rcarun.PctValidator(v); err != nil {
			return &ValidationError{Name: "pct", err: fmt.Errorf(`ent: validator failed for field "RCARun.pct": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RCARun.run"`)
	}
	return nil
}

func (_u *RCARunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rcarun.Table, rcarun.Columns, sqlgraph.NewFieldSpec(rcarun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(rcarun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(rcarun.FieldStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pct(); ok {
		_spec.SetField(rcarun.FieldPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPct(); ok {
		_spec.AddField(rcarun.FieldPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(rcarun.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(rcarun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(rcarun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(rcarun.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(rcarun.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(rcarun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(rcarun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(rcarun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(rcarun.FieldPodID, field.TypeString)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rcarun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RCARunUpdateOne is the builder for updating a single RCARun entity.
type RCARunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RCARunMutation
}

// SetStatus sets the "status" field.
func (_u *RCARunUpdateOne) SetStatus(v rcarun.Status) *RCARunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RCARunUpdateOne) SetNillableStatus(v *rcarun.Status) *RCARunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *RCARunUpdateOne) SetStep(v string) *RCARunUpdateOne {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *RCARunUpdateOne) SetNillableStep(v *string) *RCARunUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// SetPct sets the "pct" field.
func (_u *RCARunUpdateOne) SetPct(v int) *RCARunUpdateOne {
	_u.mutation.ResetPct()
	_u.mutation.SetPct(v)
	return _u
}

// SetNillablePct sets the "pct" field if the given value is not nil.
func (_u *RCARunUpdateOne) SetNillablePct(v *int) *RCARunUpdateOne {
	if v != nil {
		_u.SetPct(*v)
	}
	return _u
}

// AddPct adds value to the "pct" field.
func (_u *RCARunUpdateOne) AddPct(v int) *RCARunUpdateOne {
	_u.mutation.AddPct(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *RCARunUpdateOne) SetMessage(v string) *RCARunUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *RCARunUpdateOne) SetNillableMessage(v *string) *RCARunUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RCARunUpdateOne) SetStartedAt(v time.Time) *RCARunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RCARunUpdateOne) SetNillableStartedAt(v *time.Time) *RCARunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RCARunUpdateOne) ClearStartedAt() *RCARunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *RCARunUpdateOne) SetEndedAt(v time.Time) *RCARunUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *RCARunUpdateOne) SetNillableEndedAt(v *time.Time) *RCARunUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *RCARunUpdateOne) ClearEndedAt() *RCARunUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RCARunUpdateOne) SetErrorMessage(v string) *RCARunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RCARunUpdateOne) SetNillableErrorMessage(v *string) *RCARunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RCARunUpdateOne) ClearErrorMessage() *RCARunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RCARunUpdateOne) SetPodID(v string) *RCARunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RCARunUpdateOne) SetNillablePodID(v *string) *RCARunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RCARunUpdateOne) ClearPodID() *RCARunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetReportID sets the "report" edge to the RCAReport entity by ID.
func (_u *RCARunUpdateOne) SetReportID(id string) *RCARunUpdateOne {
	_u.mutation.SetReportID(id)
	return _u
}

// SetNillableReportID sets the "report" edge to the RCAReport entity by ID if the given value is not nil.
func (_u *RCARunUpdateOne) SetNillableReportID(id *string) *RCARunUpdateOne {
	if id != nil {
		_u = _u.SetReportID(*id)
	}
	return _u
}

// SetReport sets the "report" edge to the RCAReport entity.
func (_u *RCARunUpdateOne) SetReport(v *RCAReport) *RCARunUpdateOne {
	return _u.SetReportID(v.ID)
}

// Mutation returns the RCARunMutation object of the builder.
func (_u *RCARunUpdateOne) Mutation() *RCARunMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the RCAReport entity.
func (_u *RCARunUpdateOne) ClearReport() *RCARunUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// Where appends a list predicates to the RCARunUpdate builder.
func (_u *RCARunUpdateOne) Where(ps ...predicate.RCARun) *RCARunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RCARunUpdateOne) Select(field string, fields ...string) *RCARunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RCARun entity.
func (_u *RCARunUpdateOne) Save(ctx context.Context) (*RCARun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RCARunUpdateOne) SaveX(ctx context.Context) *RCARun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RCARunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RCARunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RCARunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := rcarun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RCARun.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pct(); ok {
		if err := rcarun.PctValidator(v); err != nil {
			return &ValidationError{Name: "pct", err: fmt.Errorf(`ent: validator failed for field "RCARun.pct": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RCARun.run"`)
	}
	return nil
}

func (_u *RCARunUpdateOne) sqlSave(ctx context.Context) (_node *RCARun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rcarun.Table, rcarun.Columns, sqlgraph.NewFieldSpec(rcarun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RCARun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rcarun.FieldID)
		for _, f := range fields {
			if !rcarun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rcarun.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(rcarun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(rcarun.FieldStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pct(); ok {
		_spec.SetField(rcarun.FieldPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPct(); ok {
		_spec.AddField(rcarun.FieldPct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(rcarun.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(rcarun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(rcarun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(rcarun.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(rcarun.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(rcarun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(rcarun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(rcarun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(rcarun.FieldPodID, field.TypeString)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RCARun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rcarun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
