// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agentops/agentops/ent/agentrun"
	"github.com/agentops/agentops/ent/agentstep"
	"github.com/agentops/agentops/ent/guardrailevent"
	"github.com/agentops/agentops/ent/predicate"
	"github.com/agentops/agentops/ent/rcarun"
	"github.com/agentops/agentops/ent/toolcall"
)

// AgentRunUpdate is the builder for updating AgentRun entities.
type AgentRunUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRunMutation
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdate) Where(ps ...predicate.AgentRun) *AgentRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentRunUpdate) SetAgentName(v string) *AgentRunUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableAgentName(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetAgentVersion sets the "agent_version" field.
func (_u *AgentRunUpdate) SetAgentVersion(v string) *AgentRunUpdate {
	_u.mutation.SetAgentVersion(v)
	return _u
}

// SetNillableAgentVersion sets the "agent_version" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableAgentVersion(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetAgentVersion(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentRunUpdate) SetModel(v string) *AgentRunUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableModel(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetEnvironment sets the "environment" field.
func (_u *AgentRunUpdate) SetEnvironment(v string) *AgentRunUpdate {
	_u.mutation.SetEnvironment(v)
	return _u
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableEnvironment(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetEnvironment(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdate) SetStatus(v agentrun.Status) *AgentRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStatus(v *agentrun.Status) *AgentRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentRunUpdate) SetStartedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStartedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentRunUpdate) SetEndedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableEndedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *AgentRunUpdate) SetErrorType(v string) *AgentRunUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableErrorType(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *AgentRunUpdate) ClearErrorType() *AgentRunUpdate {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentRunUpdate) SetErrorMessage(v string) *AgentRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableErrorMessage(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentRunUpdate) ClearErrorMessage() *AgentRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *AgentRunUpdate) SetTraceID(v string) *AgentRunUpdate {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableTraceID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *AgentRunUpdate) ClearTraceID() *AgentRunUpdate {
	_u.mutation.ClearTraceID()
	return _u
}

// SetCorrelationIds sets the "correlation_ids" field.
func (_u *AgentRunUpdate) SetCorrelationIds(v []string) *AgentRunUpdate {
	_u.mutation.SetCorrelationIds(v)
	return _u
}

// AppendCorrelationIds appends value to the "correlation_ids" field.
func (_u *AgentRunUpdate) AppendCorrelationIds(v []string) *AgentRunUpdate {
	_u.mutation.AppendCorrelationIds(v)
	return _u
}

// ClearCorrelationIds clears the value of the "correlation_ids" field.
func (_u *AgentRunUpdate) ClearCorrelationIds() *AgentRunUpdate {
	_u.mutation.ClearCorrelationIds()
	return _u
}

// SetCost sets the "cost" field.
func (_u *AgentRunUpdate) SetCost(v map[string]interface{}) *AgentRunUpdate {
	_u.mutation.SetCost(v)
	return _u
}

// ClearCost clears the value of the "cost" field.
func (_u *AgentRunUpdate) ClearCost() *AgentRunUpdate {
	_u.mutation.ClearCost()
	return _u
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by IDs.
func (_u *AgentRunUpdate) AddStepIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the AgentStep entity.
func (_u *AgentRunUpdate) AddSteps(v ...*AgentStep) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddToolCallIDs adds the "tool_calls" edge to the ToolCall entity by IDs.
func (_u *AgentRunUpdate) AddToolCallIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddToolCallIDs(ids...)
	return _u
}

// AddToolCalls adds the "tool_calls" edges to the ToolCall entity.
func (_u *AgentRunUpdate) AddToolCalls(v ...*ToolCall) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolCallIDs(ids...)
}

// AddGuardrailEventIDs adds the "guardrail_events" edge to the GuardrailEvent entity by IDs.
func (_u *AgentRunUpdate) AddGuardrailEventIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddGuardrailEventIDs(ids...)
	return _u
}

// AddGuardrailEvents adds the "guardrail_events" edges to the GuardrailEvent entity.
func (_u *AgentRunUpdate) AddGuardrailEvents(v ...*GuardrailEvent) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGuardrailEventIDs(ids...)
}

// AddRcaRunIDs adds the "rca_runs" edge to the RCARun entity by IDs.
func (_u *AgentRunUpdate) AddRcaRunIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddRcaRunIDs(ids...)
	return _u
}

// AddRcaRuns adds the "rca_runs" edges to the RCARun entity.
func (_u *AgentRunUpdate) AddRcaRuns(v ...*RCARun) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRcaRunIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdate) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the AgentStep entity.
func (_u *AgentRunUpdate) ClearSteps() *AgentRunUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to AgentStep entities by IDs.
func (_u *AgentRunUpdate) RemoveStepIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to AgentStep entities.
func (_u *AgentRunUpdate) RemoveSteps(v ...*AgentStep) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearToolCalls clears all "tool_calls" edges to the ToolCall entity.
func (_u *AgentRunUpdate) ClearToolCalls() *AgentRunUpdate {
	_u.mutation.ClearToolCalls()
	return _u
}

// RemoveToolCallIDs removes the "tool_calls" edge to ToolCall entities by IDs.
func (_u *AgentRunUpdate) RemoveToolCallIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveToolCallIDs(ids...)
	return _u
}

// RemoveToolCalls removes "tool_calls" edges to ToolCall entities.
func (_u *AgentRunUpdate) RemoveToolCalls(v ...*ToolCall) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolCallIDs(ids...)
}

// ClearGuardrailEvents clears all "guardrail_events" edges to the GuardrailEvent entity.
func (_u *AgentRunUpdate) ClearGuardrailEvents() *AgentRunUpdate {
	_u.mutation.ClearGuardrailEvents()
	return _u
}

// RemoveGuardrailEventIDs removes the "guardrail_events" edge to GuardrailEvent entities by IDs.
func (_u *AgentRunUpdate) RemoveGuardrailEventIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveGuardrailEventIDs(ids...)
	return _u
}

// RemoveGuardrailEvents removes "guardrail_events" edges to GuardrailEvent entities.
func (_u *AgentRunUpdate) RemoveGuardrailEvents(v ...*GuardrailEvent) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGuardrailEventIDs(ids...)
}

// ClearRcaRuns clears all "rca_runs" edges to the RCARun entity.
func (_u *AgentRunUpdate) ClearRcaRuns() *AgentRunUpdate {
	_u.mutation.ClearRcaRuns()
	return _u
}

// RemoveRcaRunIDs removes the "rca_runs" edge to RCARun entities by IDs.
func (_u *AgentRunUpdate) RemoveRcaRunIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveRcaRunIDs(ids...)
	return _u
}

// RemoveRcaRuns removes "rca_runs" edges to RCARun entities.
func (_u *AgentRunUpdate) RemoveRcaRuns(v ...*RCARun) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRcaRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agentrun.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentVersion(); ok {
		_spec.SetField(agentrun.FieldAgentVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentrun.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Environment(); ok {
		_spec.SetField(agentrun.FieldEnvironment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agentrun.FieldEndedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(agentrun.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(agentrun.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(agentrun.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(agentrun.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationIds(); ok {
		_spec.SetField(agentrun.FieldCorrelationIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrelationIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrun.FieldCorrelationIds, value)
		})
	}
	if _u.mutation.CorrelationIdsCleared() {
		_spec.ClearField(agentrun.FieldCorrelationIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(agentrun.FieldCost, field.TypeJSON, value)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(agentrun.FieldCost, field.TypeJSON)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolCallsIDs(); len(nodes) > 0 && !_u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GuardrailEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.GuardrailEventsTable,
			Columns: []string{agentrun.GuardrailEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(guardrailevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGuardrailEventsIDs(); len(nodes) > 0 && !_u.mutation.GuardrailEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.GuardrailEventsTable,
			Columns: []string{agentrun.GuardrailEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(guardrailevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GuardrailEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.GuardrailEventsTable,
			Columns: []string{agentrun.GuardrailEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(guardrailevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RcaRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.RcaRunsTable,
			Columns: []string{agentrun.RcaRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rcarun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRcaRunsIDs(); len(nodes) > 0 && !_u.mutation.RcaRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.RcaRunsTable,
			Columns: []string{agentrun.RcaRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rcarun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RcaRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.RcaRunsTable,
			Columns: []string{agentrun.RcaRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rcarun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRunUpdateOne is the builder for updating a single AgentRun entity.
type AgentRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRunMutation
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentRunUpdateOne) SetAgentName(v string) *AgentRunUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableAgentName(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetAgentVersion sets the "agent_version" field.
func (_u *AgentRunUpdateOne) SetAgentVersion(v string) *AgentRunUpdateOne {
	_u.mutation.SetAgentVersion(v)
	return _u
}

// SetNillableAgentVersion sets the "agent_version" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableAgentVersion(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetAgentVersion(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentRunUpdateOne) SetModel(v string) *AgentRunUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableModel(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetEnvironment sets the "environment" field.
func (_u *AgentRunUpdateOne) SetEnvironment(v string) *AgentRunUpdateOne {
	_u.mutation.SetEnvironment(v)
	return _u
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableEnvironment(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetEnvironment(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdateOne) SetStatus(v agentrun.Status) *AgentRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStatus(v *agentrun.Status) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentRunUpdateOne) SetStartedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStartedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *AgentRunUpdateOne) SetEndedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableEndedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *AgentRunUpdateOne) SetErrorType(v string) *AgentRunUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableErrorType(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *AgentRunUpdateOne) ClearErrorType() *AgentRunUpdateOne {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentRunUpdateOne) SetErrorMessage(v string) *AgentRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableErrorMessage(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentRunUpdateOne) ClearErrorMessage() *AgentRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *AgentRunUpdateOne) SetTraceID(v string) *AgentRunUpdateOne {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableTraceID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *AgentRunUpdateOne) ClearTraceID() *AgentRunUpdateOne {
	_u.mutation.ClearTraceID()
	return _u
}

// SetCorrelationIds sets the "correlation_ids" field.
func (_u *AgentRunUpdateOne) SetCorrelationIds(v []string) *AgentRunUpdateOne {
	_u.mutation.SetCorrelationIds(v)
	return _u
}

// AppendCorrelationIds appends value to the "correlation_ids" field.
func (_u *AgentRunUpdateOne) AppendCorrelationIds(v []string) *AgentRunUpdateOne {
	_u.mutation.AppendCorrelationIds(v)
	return _u
}

// ClearCorrelationIds clears the value of the "correlation_ids" field.
func (_u *AgentRunUpdateOne) ClearCorrelationIds() *AgentRunUpdateOne {
	_u.mutation.ClearCorrelationIds()
	return _u
}

// SetCost sets the "cost" field.
func (_u *AgentRunUpdateOne) SetCost(v map[string]interface{}) *AgentRunUpdateOne {
	_u.mutation.SetCost(v)
	return _u
}

// ClearCost clears the value of the "cost" field.
func (_u *AgentRunUpdateOne) ClearCost() *AgentRunUpdateOne {
	_u.mutation.ClearCost()
	return _u
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by IDs.
func (_u *AgentRunUpdateOne) AddStepIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the AgentStep entity.
func (_u *AgentRunUpdateOne) AddSteps(v ...*AgentStep) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddToolCallIDs adds the "tool_calls" edge to the ToolCall entity by IDs.
func (_u *AgentRunUpdateOne) AddToolCallIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddToolCallIDs(ids...)
	return _u
}

// AddToolCalls adds the "tool_calls" edges to the ToolCall entity.
func (_u *AgentRunUpdateOne) AddToolCalls(v ...*ToolCall) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolCallIDs(ids...)
}

// AddGuardrailEventIDs adds the "guardrail_events" edge to the GuardrailEvent entity by IDs.
func (_u *AgentRunUpdateOne) AddGuardrailEventIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddGuardrailEventIDs(ids...)
	return _u
}

// AddGuardrailEvents adds the "guardrail_events" edges to the GuardrailEvent entity.
func (_u *AgentRunUpdateOne) AddGuardrailEvents(v ...*GuardrailEvent) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGuardrailEventIDs(ids...)
}

// AddRcaRunIDs adds the "rca_runs" edge to the RCARun entity by IDs.
func (_u *AgentRunUpdateOne) AddRcaRunIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddRcaRunIDs(ids...)
	return _u
}

// AddRcaRuns adds the "rca_runs" edges to the RCARun entity.
func (_u *AgentRunUpdateOne) AddRcaRuns(v ...*RCARun) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRcaRunIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdateOne) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the AgentStep entity.
func (_u *AgentRunUpdateOne) ClearSteps() *AgentRunUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to AgentStep entities by IDs.
func (_u *AgentRunUpdateOne) RemoveStepIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to AgentStep entities.
func (_u *AgentRunUpdateOne) RemoveSteps(v ...*AgentStep) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearToolCalls clears all "tool_calls" edges to the ToolCall entity.
func (_u *AgentRunUpdateOne) ClearToolCalls() *AgentRunUpdateOne {
	_u.mutation.ClearToolCalls()
	return _u
}

// RemoveToolCallIDs removes the "tool_calls" edge to ToolCall entities by IDs.
func (_u *AgentRunUpdateOne) RemoveToolCallIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveToolCallIDs(ids...)
	return _u
}

// RemoveToolCalls removes "tool_calls" edges to ToolCall entities.
func (_u *AgentRunUpdateOne) RemoveToolCalls(v ...*ToolCall) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolCallIDs(ids...)
}

// ClearGuardrailEvents clears all "guardrail_events" edges to the GuardrailEvent entity.
func (_u *AgentRunUpdateOne) ClearGuardrailEvents() *AgentRunUpdateOne {
	_u.mutation.ClearGuardrailEvents()
	return _u
}

// RemoveGuardrailEventIDs removes the "guardrail_events" edge to GuardrailEvent entities by IDs.
func (_u *AgentRunUpdateOne) RemoveGuardrailEventIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveGuardrailEventIDs(ids...)
	return _u
}

// RemoveGuardrailEvents removes "guardrail_events" edges to GuardrailEvent entities.
func (_u *AgentRunUpdateOne) RemoveGuardrailEvents(v ...*GuardrailEvent) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGuardrailEventIDs(ids...)
}

// ClearRcaRuns clears all "rca_runs" edges to the RCARun entity.
func (_u *AgentRunUpdateOne) ClearRcaRuns() *AgentRunUpdateOne {
	_u.mutation.ClearRcaRuns()
	return _u
}

// RemoveRcaRunIDs removes the "rca_runs" edge to RCARun entities by IDs.
func (_u *AgentRunUpdateOne) RemoveRcaRunIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveRcaRunIDs(ids...)
	return _u
}

// RemoveRcaRuns removes "rca_runs" edges to RCARun entities.
func (_u *AgentRunUpdateOne) RemoveRcaRuns(v ...*RCARun) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRcaRunIDs(ids...)
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdateOne) Where(ps ...predicate.AgentRun) *AgentRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRunUpdateOne) Select(field string, fields ...string) *AgentRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRun entity.
func (_u *AgentRunUpdateOne) Save(ctx context.Context) (*AgentRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdateOne) SaveX(ctx context.Context) *AgentRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRunUpdateOne) sqlSave(ctx context.Context) (_node *AgentRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrun.FieldID)
		for _, f := range fields {
			if !agentrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrun.FieldID {
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
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agentrun.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentVersion(); ok {
		_spec.SetField(agentrun.FieldAgentVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentrun.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Environment(); ok {
		_spec.SetField(agentrun.FieldEnvironment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(agentrun.FieldEndedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(agentrun.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(agentrun.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(agentrun.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(agentrun.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationIds(); ok {
		_spec.SetField(agentrun.FieldCorrelationIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrelationIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrun.FieldCorrelationIds, value)
		})
	}
	if _u.mutation.CorrelationIdsCleared() {
		_spec.ClearField(agentrun.FieldCorrelationIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(agentrun.FieldCost, field.TypeJSON, value)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(agentrun.FieldCost, field.TypeJSON)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolCallsIDs(); len(nodes) > 0 && !_u.mutation.ToolCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ToolCallsTable,
			Columns: []string{agentrun.ToolCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GuardrailEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.GuardrailEventsTable,
			Columns: []string{agentrun.GuardrailEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(guardrailevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGuardrailEventsIDs(); len(nodes) > 0 && !_u.mutation.GuardrailEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.GuardrailEventsTable,
			Columns: []string{agentrun.GuardrailEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(guardrailevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GuardrailEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.GuardrailEventsTable,
			Columns: []string{agentrun.GuardrailEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(guardrailevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RcaRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.RcaRunsTable,
			Columns: []string{agentrun.RcaRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rcarun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRcaRunsIDs(); len(nodes) > 0 && !_u.mutation.RcaRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.RcaRunsTable,
			Columns: []string{agentrun.RcaRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rcarun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RcaRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.RcaRunsTable,
			Columns: []string{agentrun.RcaRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rcarun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
