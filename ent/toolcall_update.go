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
	"github.com/agentops/agentops/ent/toolcall"
)

// ToolCallUpdate is the builder for updating ToolCall entities.
type ToolCallUpdate struct {
	config
	hooks    []Hook
	mutation *ToolCallMutation
}

// Where appends a list predicates to the ToolCallUpdate builder.
func (_u *ToolCallUpdate) Where(ps ...predicate.ToolCall) *ToolCallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *ToolCallUpdate) SetStepID(v string) *ToolCallUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableStepID(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *ToolCallUpdate) ClearStepID() *ToolCallUpdate {
	_u.mutation.ClearStepID()
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ToolCallUpdate) SetToolName(v string) *ToolCallUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableToolName(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolCallUpdate) SetStatus(v toolcall.Status) *ToolCallUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableStatus(v *toolcall.Status) *ToolCallUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetArgsJSON sets the "args_json" field.
func (_u *ToolCallUpdate) SetArgsJSON(v map[string]interface{}) *ToolCallUpdate {
	_u.mutation.SetArgsJSON(v)
	return _u
}

// ClearArgsJSON clears the value of the "args_json" field.
func (_u *ToolCallUpdate) ClearArgsJSON() *ToolCallUpdate {
	_u.mutation.ClearArgsJSON()
	return _u
}

// SetArgsHash sets the "args_hash" field.
func (_u *ToolCallUpdate) SetArgsHash(v string) *ToolCallUpdate {
	_u.mutation.SetArgsHash(v)
	return _u
}

// SetNillableArgsHash sets the "args_hash" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableArgsHash(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetArgsHash(*v)
	}
	return _u
}

// ClearArgsHash clears the value of the "args_hash" field.
func (_u *ToolCallUpdate) ClearArgsHash() *ToolCallUpdate {
	_u.mutation.ClearArgsHash()
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *ToolCallUpdate) SetResultSummary(v string) *ToolCallUpdate {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableResultSummary(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *ToolCallUpdate) ClearResultSummary() *ToolCallUpdate {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetErrorClass sets the "error_class" field.
func (_u *ToolCallUpdate) SetErrorClass(v string) *ToolCallUpdate {
	_u.mutation.SetErrorClass(v)
	return _u
}

// SetNillableErrorClass sets the "error_class" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableErrorClass(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetErrorClass(*v)
	}
	return _u
}

// ClearErrorClass clears the value of the "error_class" field.
func (_u *ToolCallUpdate) ClearErrorClass() *ToolCallUpdate {
	_u.mutation.ClearErrorClass()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ToolCallUpdate) SetErrorMessage(v string) *ToolCallUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableErrorMessage(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ToolCallUpdate) ClearErrorMessage() *ToolCallUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *ToolCallUpdate) SetStatusCode(v int) *ToolCallUpdate {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableStatusCode(v *int) *ToolCallUpdate {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *ToolCallUpdate) AddStatusCode(v int) *ToolCallUpdate {
	_u.mutation.AddStatusCode(v)
	return _u
}

// ClearStatusCode clears the value of the "status_code" field.
func (_u *ToolCallUpdate) ClearStatusCode() *ToolCallUpdate {
	_u.mutation.ClearStatusCode()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ToolCallUpdate) SetLatencyMs(v int) *ToolCallUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableLatencyMs(v *int) *ToolCallUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ToolCallUpdate) AddLatencyMs(v int) *ToolCallUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetRetries sets the "retries" field.
func (_u *ToolCallUpdate) SetRetries(v int) *ToolCallUpdate {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableRetries(v *int) *ToolCallUpdate {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *ToolCallUpdate) AddRetries(v int) *ToolCallUpdate {
	_u.mutation.AddRetries(v)
	return _u
}

// Mutation returns the ToolCallMutation object of the builder.
func (_u *ToolCallUpdate) Mutation() *ToolCallMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolCallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolCallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolCallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolCallUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LatencyMs(); ok {
		if err := toolcall.LatencyMsValidator(v); err != nil {
			return &ValidationError{Name: "latency_ms", err: fmt.Errorf(`ent: validator failed for field "ToolCall.latency_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Retries(); ok {
		if err := toolcall.RetriesValidator(v); err != nil {
			return &ValidationError{Name: "retries", err: fmt.Errorf(`ent: validator failed for field "ToolCall.retries": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolCall.run"`)
	}
	return nil
}

func (_u *ToolCallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolcall.Table, toolcall.Columns, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(toolcall.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(toolcall.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(toolcall.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ArgsJSON(); ok {
		_spec.SetField(toolcall.FieldArgsJSON, field.TypeJSON, value)
	}
	if _u.mutation.ArgsJSONCleared() {
		_spec.ClearField(toolcall.FieldArgsJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ArgsHash(); ok {
		_spec.SetField(toolcall.FieldArgsHash, field.TypeString, value)
	}
	if _u.mutation.ArgsHashCleared() {
		_spec.ClearField(toolcall.FieldArgsHash, field.TypeString)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(toolcall.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(toolcall.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorClass(); ok {
		_spec.SetField(toolcall.FieldErrorClass, field.TypeString, value)
	}
	if _u.mutation.ErrorClassCleared() {
		_spec.ClearField(toolcall.FieldErrorClass, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(toolcall.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(toolcall.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(toolcall.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(toolcall.FieldStatusCode, field.TypeInt, value)
	}
	if _u.mutation.StatusCodeCleared() {
		_spec.ClearField(toolcall.FieldStatusCode, field.TypeInt)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(toolcall.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(toolcall.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(toolcall.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(toolcall.FieldRetries, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolCallUpdateOne is the builder for updating a single ToolCall entity.
type ToolCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolCallMutation
}

// SetStepID sets the "step_id" field.
func (_u *ToolCallUpdateOne) SetStepID(v string) *ToolCallUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableStepID(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *ToolCallUpdateOne) ClearStepID() *ToolCallUpdateOne {
	_u.mutation.ClearStepID()
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ToolCallUpdateOne) SetToolName(v string) *ToolCallUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableToolName(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolCallUpdateOne) SetStatus(v toolcall.Status) *ToolCallUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableStatus(v *toolcall.Status) *ToolCallUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetArgsJSON sets the "args_json" field.
func (_u *ToolCallUpdateOne) SetArgsJSON(v map[string]interface{}) *ToolCallUpdateOne {
	_u.mutation.SetArgsJSON(v)
	return _u
}

// ClearArgsJSON clears the value of the "args_json" field.
func (_u *ToolCallUpdateOne) ClearArgsJSON() *ToolCallUpdateOne {
	_u.mutation.ClearArgsJSON()
	return _u
}

// SetArgsHash sets the "args_hash" field.
func (_u *ToolCallUpdateOne) SetArgsHash(v string) *ToolCallUpdateOne {
	_u.mutation.SetArgsHash(v)
	return _u
}

// SetNillableArgsHash sets the "args_hash" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableArgsHash(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetArgsHash(*v)
	}
	return _u
}

// ClearArgsHash clears the value of the "args_hash" field.
func (_u *ToolCallUpdateOne) ClearArgsHash() *ToolCallUpdateOne {
	_u.mutation.ClearArgsHash()
	return _u
}

// SetResultSummary sets the "result_summary" field.
func (_u *ToolCallUpdateOne) SetResultSummary(v string) *ToolCallUpdateOne {
	_u.mutation.SetResultSummary(v)
	return _u
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableResultSummary(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetResultSummary(*v)
	}
	return _u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (_u *ToolCallUpdateOne) ClearResultSummary() *ToolCallUpdateOne {
	_u.mutation.ClearResultSummary()
	return _u
}

// SetErrorClass sets the "error_class" field.
func (_u *ToolCallUpdateOne) SetErrorClass(v string) *ToolCallUpdateOne {
	_u.mutation.SetErrorClass(v)
	return _u
}

// SetNillableErrorClass sets the "error_class" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableErrorClass(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetErrorClass(*v)
	}
	return _u
}

// ClearErrorClass clears the value of the "error_class" field.
func (_u *ToolCallUpdateOne) ClearErrorClass() *ToolCallUpdateOne {
	_u.mutation.ClearErrorClass()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ToolCallUpdateOne) SetErrorMessage(v string) *ToolCallUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableErrorMessage(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ToolCallUpdateOne) ClearErrorMessage() *ToolCallUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *ToolCallUpdateOne) SetStatusCode(v int) *ToolCallUpdateOne {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableStatusCode(v *int) *ToolCallUpdateOne {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *ToolCallUpdateOne) AddStatusCode(v int) *ToolCallUpdateOne {
	_u.mutation.AddStatusCode(v)
	return _u
}

// ClearStatusCode clears the value of the "status_code" field.
func (_u *ToolCallUpdateOne) ClearStatusCode() *ToolCallUpdateOne {
	_u.mutation.ClearStatusCode()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ToolCallUpdateOne) SetLatencyMs(v int) *ToolCallUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableLatencyMs(v *int) *ToolCallUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ToolCallUpdateOne) AddLatencyMs(v int) *ToolCallUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetRetries sets the "retries" field.
func (_u *ToolCallUpdateOne) SetRetries(v int) *ToolCallUpdateOne {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableRetries(v *int) *ToolCallUpdateOne {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *ToolCallUpdateOne) AddRetries(v int) *ToolCallUpdateOne {
	_u.mutation.AddRetries(v)
	return _u
}

// Mutation returns the ToolCallMutation object of the builder.
func (_u *ToolCallUpdateOne) Mutation() *ToolCallMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolCallUpdate builder.
func (_u *ToolCallUpdateOne) Where(ps ...predicate.ToolCall) *ToolCallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolCallUpdateOne) Select(field string, fields ...string) *ToolCallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolCall entity.
func (_u *ToolCallUpdateOne) Save(ctx context.Context) (*ToolCall, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolCallUpdateOne) SaveX(ctx context.Context) *ToolCall {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolCallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolCallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolCallUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LatencyMs(); ok {
		if err := toolcall.LatencyMsValidator(v); err != nil {
			return &ValidationError{Name: "latency_ms", err: fmt.Errorf(`ent: validator failed for field "ToolCall.latency_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Retries(); ok {
		if err := toolcall.RetriesValidator(v); err != nil {
			return &ValidationError{Name: "retries", err: fmt.Errorf(`ent: validator failed for field "ToolCall.retries": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolCall.run"`)
	}
	return nil
}

func (_u *ToolCallUpdateOne) sqlSave(ctx context.Context) (_node *ToolCall, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolcall.Table, toolcall.Columns, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolcall.FieldID)
		for _, f := range fields {
			if !toolcall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolcall.FieldID {
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
		_spec.SetField(toolcall.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(toolcall.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(toolcall.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ArgsJSON(); ok {
		_spec.SetField(toolcall.FieldArgsJSON, field.TypeJSON, value)
	}
	if _u.mutation.ArgsJSONCleared() {
		_spec.ClearField(toolcall.FieldArgsJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ArgsHash(); ok {
		_spec.SetField(toolcall.FieldArgsHash, field.TypeString, value)
	}
	if _u.mutation.ArgsHashCleared() {
		_spec.ClearField(toolcall.FieldArgsHash, field.TypeString)
	}
	if value, ok := _u.mutation.ResultSummary(); ok {
		_spec.SetField(toolcall.FieldResultSummary, field.TypeString, value)
	}
	if _u.mutation.ResultSummaryCleared() {
		_spec.ClearField(toolcall.FieldResultSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorClass(); ok {
		_spec.SetField(toolcall.FieldErrorClass, field.TypeString, value)
	}
	if _u.mutation.ErrorClassCleared() {
		_spec.ClearField(toolcall.FieldErrorClass, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(toolcall.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(toolcall.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(toolcall.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(toolcall.FieldStatusCode, field.TypeInt, value)
	}
	if _u.mutation.StatusCodeCleared() {
		_spec.ClearField(toolcall.FieldStatusCode, field.TypeInt)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(toolcall.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(toolcall.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(toolcall.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(toolcall.FieldRetries, field.TypeInt, value)
	}
	_node = &ToolCall{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
