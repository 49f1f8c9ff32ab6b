// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentops/agentops/ent/agentrun"
	"github.com/agentops/agentops/ent/agentstep"
	"github.com/agentops/agentops/ent/guardrailevent"
	"github.com/agentops/agentops/ent/predicate"
	"github.com/agentops/agentops/ent/rcareport"
	"github.com/agentops/agentops/ent/rcarun"
	"github.com/agentops/agentops/ent/toolcall"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentRun       = "AgentRun"
	TypeAgentStep      = "AgentStep"
	TypeGuardrailEvent = "GuardrailEvent"
	TypeRCAReport      = "RCAReport"
	TypeRCARun         = "RCARun"
	TypeToolCall       = "ToolCall"
)

// AgentRunMutation represents an operation that mutates the AgentRun nodes in the graph.
type AgentRunMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	agent_name              *string
	agent_version           *string
	model                   *string
	environment             *string
	status                  *agentrun.Status
	started_at              *time.Time
	ended_at                *time.Time
	error_type              *string
	error_message           *string
	trace_id                *string
	correlation_ids         *[]string
	appendcorrelation_ids   []string
	cost                    *map[string]interface{}
	created_at              *time.Time
	clearedFields           map[string]struct{}
	steps                   map[string]struct{}
	removedsteps            map[string]struct{}
	clearedsteps            bool
	tool_calls              map[string]struct{}
	removedtool_calls       map[string]struct{}
	clearedtool_calls       bool
	guardrail_events        map[string]struct{}
	removedguardrail_events map[string]struct{}
	clearedguardrail_events bool
	rca_runs                map[string]struct{}
	removedrca_runs         map[string]struct{}
	clearedrca_runs         bool
	done                    bool
	oldValue                func(context.Context) (*AgentRun, error)
	predicates              []predicate.AgentRun
}

var _ ent.Mutation = (*AgentRunMutation)(nil)

// agentrunOption allows management of the mutation configuration using functional options.
type agentrunOption func(*AgentRunMutation)

// newAgentRunMutation creates new mutation for the AgentRun entity.
func newAgentRunMutation(c config, op Op, opts ...agentrunOption) *AgentRunMutation {
	m := &AgentRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRunID sets the ID field of the mutation.
func withAgentRunID(id string) agentrunOption {
	return func(m *AgentRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRun
		)
		m.oldValue = func(ctx context.Context) (*AgentRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRun sets the old AgentRun of the mutation.
func withAgentRun(node *AgentRun) agentrunOption {
	return func(m *AgentRunMutation) {
		m.oldValue = func(context.Context) (*AgentRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRun entities.
func (m *AgentRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentName sets the "agent_name" field.
func (m *AgentRunMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentRunMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentRunMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetAgentVersion sets the "agent_version" field.
func (m *AgentRunMutation) SetAgentVersion(s string) {
	m.agent_version = &s
}

// AgentVersion returns the value of the "agent_version" field in the mutation.
func (m *AgentRunMutation) AgentVersion() (r string, exists bool) {
	v := m.agent_version
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentVersion returns the old "agent_version" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldAgentVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentVersion: %w", err)
	}
	return oldValue.AgentVersion, nil
}

// ResetAgentVersion resets all changes to the "agent_version" field.
func (m *AgentRunMutation) ResetAgentVersion() {
	m.agent_version = nil
}

// SetModel sets the "model" field.
func (m *AgentRunMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentRunMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *AgentRunMutation) ResetModel() {
	m.model = nil
}

// SetEnvironment sets the "environment" field.
func (m *AgentRunMutation) SetEnvironment(s string) {
	m.environment = &s
}

// Environment returns the value of the "environment" field in the mutation.
func (m *AgentRunMutation) Environment() (r string, exists bool) {
	v := m.environment
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvironment returns the old "environment" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldEnvironment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvironment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvironment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvironment: %w", err)
	}
	return oldValue.Environment, nil
}

// ResetEnvironment resets all changes to the "environment" field.
func (m *AgentRunMutation) ResetEnvironment() {
	m.environment = nil
}

// SetStatus sets the "status" field.
func (m *AgentRunMutation) SetStatus(a agentrun.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentRunMutation) Status() (r agentrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStatus(ctx context.Context) (v agentrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentRunMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *AgentRunMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *AgentRunMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldEndedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *AgentRunMutation) ResetEndedAt() {
	m.ended_at = nil
}

// SetErrorType sets the "error_type" field.
func (m *AgentRunMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *AgentRunMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldErrorType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ClearErrorType clears the value of the "error_type" field.
func (m *AgentRunMutation) ClearErrorType() {
	m.error_type = nil
	m.clearedFields[agentrun.FieldErrorType] = struct{}{}
}

// ErrorTypeCleared returns if the "error_type" field was cleared in this mutation.
func (m *AgentRunMutation) ErrorTypeCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldErrorType]
	return ok
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *AgentRunMutation) ResetErrorType() {
	m.error_type = nil
	delete(m.clearedFields, agentrun.FieldErrorType)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentrun.FieldErrorMessage)
}

// SetTraceID sets the "trace_id" field.
func (m *AgentRunMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *AgentRunMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldTraceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ClearTraceID clears the value of the "trace_id" field.
func (m *AgentRunMutation) ClearTraceID() {
	m.trace_id = nil
	m.clearedFields[agentrun.FieldTraceID] = struct{}{}
}

// TraceIDCleared returns if the "trace_id" field was cleared in this mutation.
func (m *AgentRunMutation) TraceIDCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldTraceID]
	return ok
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *AgentRunMutation) ResetTraceID() {
	m.trace_id = nil
	delete(m.clearedFields, agentrun.FieldTraceID)
}

// SetCorrelationIds sets the "correlation_ids" field.
func (m *AgentRunMutation) SetCorrelationIds(s []string) {
	m.correlation_ids = &s
	m.appendcorrelation_ids = nil
}

// CorrelationIds returns the value of the "correlation_ids" field in the mutation.
func (m *AgentRunMutation) CorrelationIds() (r []string, exists bool) {
	v := m.correlation_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationIds returns the old "correlation_ids" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCorrelationIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationIds: %w", err)
	}
	return oldValue.CorrelationIds, nil
}

// AppendCorrelationIds adds s to the "correlation_ids" field.
func (m *AgentRunMutation) AppendCorrelationIds(s []string) {
	m.appendcorrelation_ids = append(m.appendcorrelation_ids, s...)
}

// AppendedCorrelationIds returns the list of values that were appended to the "correlation_ids" field in this mutation.
func (m *AgentRunMutation) AppendedCorrelationIds() ([]string, bool) {
	if len(m.appendcorrelation_ids) == 0 {
		return nil, false
	}
	return m.appendcorrelation_ids, true
}

// ClearCorrelationIds clears the value of the "correlation_ids" field.
func (m *AgentRunMutation) ClearCorrelationIds() {
	m.correlation_ids = nil
	m.appendcorrelation_ids = nil
	m.clearedFields[agentrun.FieldCorrelationIds] = struct{}{}
}

// CorrelationIdsCleared returns if the "correlation_ids" field was cleared in this mutation.
func (m *AgentRunMutation) CorrelationIdsCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldCorrelationIds]
	return ok
}

// ResetCorrelationIds resets all changes to the "correlation_ids" field.
func (m *AgentRunMutation) ResetCorrelationIds() {
	m.correlation_ids = nil
	m.appendcorrelation_ids = nil
	delete(m.clearedFields, agentrun.FieldCorrelationIds)
}

// SetCost sets the "cost" field.
func (m *AgentRunMutation) SetCost(value map[string]interface{}) {
	m.cost = &value
}

// Cost returns the value of the "cost" field in the mutation.
func (m *AgentRunMutation) Cost() (r map[string]interface{}, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCost(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// ClearCost clears the value of the "cost" field.
func (m *AgentRunMutation) ClearCost() {
	m.cost = nil
	m.clearedFields[agentrun.FieldCost] = struct{}{}
}

// CostCleared returns if the "cost" field was cleared in this mutation.
func (m *AgentRunMutation) CostCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldCost]
	return ok
}

// ResetCost resets all changes to the "cost" field.
func (m *AgentRunMutation) ResetCost() {
	m.cost = nil
	delete(m.clearedFields, agentrun.FieldCost)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by ids.
func (m *AgentRunMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the AgentStep entity.
func (m *AgentRunMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the AgentStep entity was cleared.
func (m *AgentRunMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the AgentStep entity by IDs.
func (m *AgentRunMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the AgentStep entity.
func (m *AgentRunMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *AgentRunMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *AgentRunMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddToolCallIDs adds the "tool_calls" edge to the ToolCall entity by ids.
func (m *AgentRunMutation) AddToolCallIDs(ids ...string) {
	if m.tool_calls == nil {
		m.tool_calls = make(map[string]struct{})
	}
	for i := range ids {
		m.tool_calls[ids[i]] = struct{}{}
	}
}

// ClearToolCalls clears the "tool_calls" edge to the ToolCall entity.
func (m *AgentRunMutation) ClearToolCalls() {
	m.clearedtool_calls = true
}

// ToolCallsCleared reports if the "tool_calls" edge to the ToolCall entity was cleared.
func (m *AgentRunMutation) ToolCallsCleared() bool {
	return m.clearedtool_calls
}

// RemoveToolCallIDs removes the "tool_calls" edge to the ToolCall entity by IDs.
func (m *AgentRunMutation) RemoveToolCallIDs(ids ...string) {
	if m.removedtool_calls == nil {
		m.removedtool_calls = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tool_calls, ids[i])
		m.removedtool_calls[ids[i]] = struct{}{}
	}
}

// RemovedToolCalls returns the removed IDs of the "tool_calls" edge to the ToolCall entity.
func (m *AgentRunMutation) RemovedToolCallsIDs() (ids []string) {
	for id := range m.removedtool_calls {
		ids = append(ids, id)
	}
	return
}

// ToolCallsIDs returns the "tool_calls" edge IDs in the mutation.
func (m *AgentRunMutation) ToolCallsIDs() (ids []string) {
	for id := range m.tool_calls {
		ids = append(ids, id)
	}
	return
}

// ResetToolCalls resets all changes to the "tool_calls" edge.
func (m *AgentRunMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.clearedtool_calls = false
	m.removedtool_calls = nil
}

// AddGuardrailEventIDs adds the "guardrail_events" edge to the GuardrailEvent entity by ids.
func (m *AgentRunMutation) AddGuardrailEventIDs(ids ...string) {
	if m.guardrail_events == nil {
		m.guardrail_events = make(map[string]struct{})
	}
	for i := range ids {
		m.guardrail_events[ids[i]] = struct{}{}
	}
}

// ClearGuardrailEvents clears the "guardrail_events" edge to the GuardrailEvent entity.
func (m *AgentRunMutation) ClearGuardrailEvents() {
	m.clearedguardrail_events = true
}

// GuardrailEventsCleared reports if the "guardrail_events" edge to the GuardrailEvent entity was cleared.
func (m *AgentRunMutation) GuardrailEventsCleared() bool {
	return m.clearedguardrail_events
}

// RemoveGuardrailEventIDs removes the "guardrail_events" edge to the GuardrailEvent entity by IDs.
func (m *AgentRunMutation) RemoveGuardrailEventIDs(ids ...string) {
	if m.removedguardrail_events == nil {
		m.removedguardrail_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.guardrail_events, ids[i])
		m.removedguardrail_events[ids[i]] = struct{}{}
	}
}

// RemovedGuardrailEvents returns the removed IDs of the "guardrail_events" edge to the GuardrailEvent entity.
func (m *AgentRunMutation) RemovedGuardrailEventsIDs() (ids []string) {
	for id := range m.removedguardrail_events {
		ids = append(ids, id)
	}
	return
}

// GuardrailEventsIDs returns the "guardrail_events" edge IDs in the mutation.
func (m *AgentRunMutation) GuardrailEventsIDs() (ids []string) {
	for id := range m.guardrail_events {
		ids = append(ids, id)
	}
	return
}

// ResetGuardrailEvents resets all changes to the "guardrail_events" edge.
func (m *AgentRunMutation) ResetGuardrailEvents() {
	m.guardrail_events = nil
	m.clearedguardrail_events = false
	m.removedguardrail_events = nil
}

// AddRcaRunIDs adds the "rca_runs" edge to the RCARun entity by ids.
func (m *AgentRunMutation) AddRcaRunIDs(ids ...string) {
	if m.rca_runs == nil {
		m.rca_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.rca_runs[ids[i]] = struct{}{}
	}
}

// ClearRcaRuns clears the "rca_runs" edge to the RCARun entity.
func (m *AgentRunMutation) ClearRcaRuns() {
	m.clearedrca_runs = true
}

// RcaRunsCleared reports if the "rca_runs" edge to the RCARun entity was cleared.
func (m *AgentRunMutation) RcaRunsCleared() bool {
	return m.clearedrca_runs
}

// RemoveRcaRunIDs removes the "rca_runs" edge to the RCARun entity by IDs.
func (m *AgentRunMutation) RemoveRcaRunIDs(ids ...string) {
	if m.removedrca_runs == nil {
		m.removedrca_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.rca_runs, ids[i])
		m.removedrca_runs[ids[i]] = struct{}{}
	}
}

// RemovedRcaRuns returns the removed IDs of the "rca_runs" edge to the RCARun entity.
func (m *AgentRunMutation) RemovedRcaRunsIDs() (ids []string) {
	for id := range m.removedrca_runs {
		ids = append(ids, id)
	}
	return
}

// RcaRunsIDs returns the "rca_runs" edge IDs in the mutation.
func (m *AgentRunMutation) RcaRunsIDs() (ids []string) {
	for id := range m.rca_runs {
		ids = append(ids, id)
	}
	return
}

// ResetRcaRuns resets all changes to the "rca_runs" edge.
func (m *AgentRunMutation) ResetRcaRuns() {
	m.rca_runs = nil
	m.clearedrca_runs = false
	m.removedrca_runs = nil
}

// Where appends a list predicates to the AgentRunMutation builder.
func (m *AgentRunMutation) Where(ps ...predicate.AgentRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRun).
func (m *AgentRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRunMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.agent_name != nil {
		fields = append(fields, agentrun.FieldAgentName)
	}
	if m.agent_version != nil {
		fields = append(fields, agentrun.FieldAgentVersion)
	}
	if m.model != nil {
		fields = append(fields, agentrun.FieldModel)
	}
	if m.environment != nil {
		fields = append(fields, agentrun.FieldEnvironment)
	}
	if m.status != nil {
		fields = append(fields, agentrun.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, agentrun.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, agentrun.FieldEndedAt)
	}
	if m.error_type != nil {
		fields = append(fields, agentrun.FieldErrorType)
	}
	if m.error_message != nil {
		fields = append(fields, agentrun.FieldErrorMessage)
	}
	if m.trace_id != nil {
		fields = append(fields, agentrun.FieldTraceID)
	}
	if m.correlation_ids != nil {
		fields = append(fields, agentrun.FieldCorrelationIds)
	}
	if m.cost != nil {
		fields = append(fields, agentrun.FieldCost)
	}
	if m.created_at != nil {
		fields = append(fields, agentrun.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldAgentName:
		return m.AgentName()
	case agentrun.FieldAgentVersion:
		return m.AgentVersion()
	case agentrun.FieldModel:
		return m.Model()
	case agentrun.FieldEnvironment:
		return m.Environment()
	case agentrun.FieldStatus:
		return m.Status()
	case agentrun.FieldStartedAt:
		return m.StartedAt()
	case agentrun.FieldEndedAt:
		return m.EndedAt()
	case agentrun.FieldErrorType:
		return m.ErrorType()
	case agentrun.FieldErrorMessage:
		return m.ErrorMessage()
	case agentrun.FieldTraceID:
		return m.TraceID()
	case agentrun.FieldCorrelationIds:
		return m.CorrelationIds()
	case agentrun.FieldCost:
		return m.Cost()
	case agentrun.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrun.FieldAgentName:
		return m.OldAgentName(ctx)
	case agentrun.FieldAgentVersion:
		return m.OldAgentVersion(ctx)
	case agentrun.FieldModel:
		return m.OldModel(ctx)
	case agentrun.FieldEnvironment:
		return m.OldEnvironment(ctx)
	case agentrun.FieldStatus:
		return m.OldStatus(ctx)
	case agentrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentrun.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case agentrun.FieldErrorType:
		return m.OldErrorType(ctx)
	case agentrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentrun.FieldTraceID:
		return m.OldTraceID(ctx)
	case agentrun.FieldCorrelationIds:
		return m.OldCorrelationIds(ctx)
	case agentrun.FieldCost:
		return m.OldCost(ctx)
	case agentrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agentrun.FieldAgentVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentVersion(v)
		return nil
	case agentrun.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agentrun.FieldEnvironment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvironment(v)
		return nil
	case agentrun.FieldStatus:
		v, ok := value.(agentrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentrun.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case agentrun.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case agentrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentrun.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case agentrun.FieldCorrelationIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationIds(v)
		return nil
	case agentrun.FieldCost:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case agentrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrun.FieldErrorType) {
		fields = append(fields, agentrun.FieldErrorType)
	}
	if m.FieldCleared(agentrun.FieldErrorMessage) {
		fields = append(fields, agentrun.FieldErrorMessage)
	}
	if m.FieldCleared(agentrun.FieldTraceID) {
		fields = append(fields, agentrun.FieldTraceID)
	}
	if m.FieldCleared(agentrun.FieldCorrelationIds) {
		fields = append(fields, agentrun.FieldCorrelationIds)
	}
	if m.FieldCleared(agentrun.FieldCost) {
		fields = append(fields, agentrun.FieldCost)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRunMutation) ClearField(name string) error {
	switch name {
	case agentrun.FieldErrorType:
		m.ClearErrorType()
		return nil
	case agentrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agentrun.FieldTraceID:
		m.ClearTraceID()
		return nil
	case agentrun.FieldCorrelationIds:
		m.ClearCorrelationIds()
		return nil
	case agentrun.FieldCost:
		m.ClearCost()
		return nil
	}
	return fmt.Errorf("unknown AgentRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRunMutation) ResetField(name string) error {
	switch name {
	case agentrun.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agentrun.FieldAgentVersion:
		m.ResetAgentVersion()
		return nil
	case agentrun.FieldModel:
		m.ResetModel()
		return nil
	case agentrun.FieldEnvironment:
		m.ResetEnvironment()
		return nil
	case agentrun.FieldStatus:
		m.ResetStatus()
		return nil
	case agentrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentrun.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case agentrun.FieldErrorType:
		m.ResetErrorType()
		return nil
	case agentrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentrun.FieldTraceID:
		m.ResetTraceID()
		return nil
	case agentrun.FieldCorrelationIds:
		m.ResetCorrelationIds()
		return nil
	case agentrun.FieldCost:
		m.ResetCost()
		return nil
	case agentrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.steps != nil {
		edges = append(edges, agentrun.EdgeSteps)
	}
	if m.tool_calls != nil {
		edges = append(edges, agentrun.EdgeToolCalls)
	}
	if m.guardrail_events != nil {
		edges = append(edges, agentrun.EdgeGuardrailEvents)
	}
	if m.rca_runs != nil {
		edges = append(edges, agentrun.EdgeRcaRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeToolCalls:
		ids := make([]ent.Value, 0, len(m.tool_calls))
		for id := range m.tool_calls {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeGuardrailEvents:
		ids := make([]ent.Value, 0, len(m.guardrail_events))
		for id := range m.guardrail_events {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeRcaRuns:
		ids := make([]ent.Value, 0, len(m.rca_runs))
		for id := range m.rca_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedsteps != nil {
		edges = append(edges, agentrun.EdgeSteps)
	}
	if m.removedtool_calls != nil {
		edges = append(edges, agentrun.EdgeToolCalls)
	}
	if m.removedguardrail_events != nil {
		edges = append(edges, agentrun.EdgeGuardrailEvents)
	}
	if m.removedrca_runs != nil {
		edges = append(edges, agentrun.EdgeRcaRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeToolCalls:
		ids := make([]ent.Value, 0, len(m.removedtool_calls))
		for id := range m.removedtool_calls {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeGuardrailEvents:
		ids := make([]ent.Value, 0, len(m.removedguardrail_events))
		for id := range m.removedguardrail_events {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeRcaRuns:
		ids := make([]ent.Value, 0, len(m.removedrca_runs))
		for id := range m.removedrca_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedsteps {
		edges = append(edges, agentrun.EdgeSteps)
	}
	if m.clearedtool_calls {
		edges = append(edges, agentrun.EdgeToolCalls)
	}
	if m.clearedguardrail_events {
		edges = append(edges, agentrun.EdgeGuardrailEvents)
	}
	if m.clearedrca_runs {
		edges = append(edges, agentrun.EdgeRcaRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRunMutation) EdgeCleared(name string) bool {
	switch name {
	case agentrun.EdgeSteps:
		return m.clearedsteps
	case agentrun.EdgeToolCalls:
		return m.clearedtool_calls
	case agentrun.EdgeGuardrailEvents:
		return m.clearedguardrail_events
	case agentrun.EdgeRcaRuns:
		return m.clearedrca_runs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRunMutation) ResetEdge(name string) error {
	switch name {
	case agentrun.EdgeSteps:
		m.ResetSteps()
		return nil
	case agentrun.EdgeToolCalls:
		m.ResetToolCalls()
		return nil
	case agentrun.EdgeGuardrailEvents:
		m.ResetGuardrailEvents()
		return nil
	case agentrun.EdgeRcaRuns:
		m.ResetRcaRuns()
		return nil
	}
	return fmt.Errorf("unknown AgentRun edge %s", name)
}

// AgentStepMutation represents an operation that mutates the AgentStep nodes in the graph.
type AgentStepMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	status         *agentstep.Status
	started_at     *time.Time
	ended_at       *time.Time
	latency_ms     *int
	addlatency_ms  *int
	retries        *int
	addretries     *int
	input_summary  *string
	output_summary *string
	clearedFields  map[string]struct{}
	run            *string
	clearedrun     bool
	done           bool
	oldValue       func(context.Context) (*AgentStep, error)
	predicates     []predicate.AgentStep
}

var _ ent.Mutation = (*AgentStepMutation)(nil)

// agentstepOption allows management of the mutation configuration using functional options.
type agentstepOption func(*AgentStepMutation)

// newAgentStepMutation creates new mutation for the AgentStep entity.
func newAgentStepMutation(c config, op Op, opts ...agentstepOption) *AgentStepMutation {
	m := &AgentStepMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentStepID sets the ID field of the mutation.
func withAgentStepID(id string) agentstepOption {
	return func(m *AgentStepMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentStep
		)
		m.oldValue = func(ctx context.Context) (*AgentStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentStep sets the old AgentStep of the mutation.
func withAgentStep(node *AgentStep) agentstepOption {
	return func(m *AgentStepMutation) {
		m.oldValue = func(context.Context) (*AgentStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentStep entities.
func (m *AgentStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *AgentStepMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AgentStepMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AgentStepMutation) ResetRunID() {
	m.run = nil
}

// SetName sets the "name" field.
func (m *AgentStepMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentStepMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentStepMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *AgentStepMutation) SetStatus(a agentstep.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentStepMutation) Status() (r agentstep.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldStatus(ctx context.Context) (v agentstep.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentStepMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentStepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentStepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentStepMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *AgentStepMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *AgentStepMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldEndedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *AgentStepMutation) ResetEndedAt() {
	m.ended_at = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *AgentStepMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *AgentStepMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *AgentStepMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *AgentStepMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *AgentStepMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetRetries sets the "retries" field.
func (m *AgentStepMutation) SetRetries(i int) {
	m.retries = &i
	m.addretries = nil
}

// Retries returns the value of the "retries" field in the mutation.
func (m *AgentStepMutation) Retries() (r int, exists bool) {
	v := m.retries
	if v == nil {
		return
	}
	return *v, true
}

// OldRetries returns the old "retries" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetries: %w", err)
	}
	return oldValue.Retries, nil
}

// AddRetries adds i to the "retries" field.
func (m *AgentStepMutation) AddRetries(i int) {
	if m.addretries != nil {
		*m.addretries += i
	} else {
		m.addretries = &i
	}
}

// AddedRetries returns the value that was added to the "retries" field in this mutation.
func (m *AgentStepMutation) AddedRetries() (r int, exists bool) {
	v := m.addretries
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetries resets all changes to the "retries" field.
func (m *AgentStepMutation) ResetRetries() {
	m.retries = nil
	m.addretries = nil
}

// SetInputSummary sets the "input_summary" field.
func (m *AgentStepMutation) SetInputSummary(s string) {
	m.input_summary = &s
}

// InputSummary returns the value of the "input_summary" field in the mutation.
func (m *AgentStepMutation) InputSummary() (r string, exists bool) {
	v := m.input_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldInputSummary returns the old "input_summary" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldInputSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputSummary: %w", err)
	}
	return oldValue.InputSummary, nil
}

// ResetInputSummary resets all changes to the "input_summary" field.
func (m *AgentStepMutation) ResetInputSummary() {
	m.input_summary = nil
}

// SetOutputSummary sets the "output_summary" field.
func (m *AgentStepMutation) SetOutputSummary(s string) {
	m.output_summary = &s
}

// OutputSummary returns the value of the "output_summary" field in the mutation.
func (m *AgentStepMutation) OutputSummary() (r string, exists bool) {
	v := m.output_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSummary returns the old "output_summary" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldOutputSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSummary: %w", err)
	}
	return oldValue.OutputSummary, nil
}

// ResetOutputSummary resets all changes to the "output_summary" field.
func (m *AgentStepMutation) ResetOutputSummary() {
	m.output_summary = nil
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (m *AgentStepMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[agentstep.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AgentRun entity was cleared.
func (m *AgentStepMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *AgentStepMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *AgentStepMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the AgentStepMutation builder.
func (m *AgentStepMutation) Where(ps ...predicate.AgentStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentStep).
func (m *AgentStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentStepMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.run != nil {
		fields = append(fields, agentstep.FieldRunID)
	}
	if m.name != nil {
		fields = append(fields, agentstep.FieldName)
	}
	if m.status != nil {
		fields = append(fields, agentstep.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, agentstep.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, agentstep.FieldEndedAt)
	}
	if m.latency_ms != nil {
		fields = append(fields, agentstep.FieldLatencyMs)
	}
	if m.retries != nil {
		fields = append(fields, agentstep.FieldRetries)
	}
	if m.input_summary != nil {
		fields = append(fields, agentstep.FieldInputSummary)
	}
	if m.output_summary != nil {
		fields = append(fields, agentstep.FieldOutputSummary)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentstep.FieldRunID:
		return m.RunID()
	case agentstep.FieldName:
		return m.Name()
	case agentstep.FieldStatus:
		return m.Status()
	case agentstep.FieldStartedAt:
		return m.StartedAt()
	case agentstep.FieldEndedAt:
		return m.EndedAt()
	case agentstep.FieldLatencyMs:
		return m.LatencyMs()
	case agentstep.FieldRetries:
		return m.Retries()
	case agentstep.FieldInputSummary:
		return m.InputSummary()
	case agentstep.FieldOutputSummary:
		return m.OutputSummary()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentstep.FieldRunID:
		return m.OldRunID(ctx)
	case agentstep.FieldName:
		return m.OldName(ctx)
	case agentstep.FieldStatus:
		return m.OldStatus(ctx)
	case agentstep.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentstep.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case agentstep.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case agentstep.FieldRetries:
		return m.OldRetries(ctx)
	case agentstep.FieldInputSummary:
		return m.OldInputSummary(ctx)
	case agentstep.FieldOutputSummary:
		return m.OldOutputSummary(ctx)
	}
	return nil, fmt.Errorf("unknown AgentStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentstep.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case agentstep.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agentstep.FieldStatus:
		v, ok := value.(agentstep.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentstep.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentstep.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case agentstep.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case agentstep.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetries(v)
		return nil
	case agentstep.FieldInputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputSummary(v)
		return nil
	case agentstep.FieldOutputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSummary(v)
		return nil
	}
	return fmt.Errorf("unknown AgentStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentStepMutation) AddedFields() []string {
	var fields []string
	if m.addlatency_ms != nil {
		fields = append(fields, agentstep.FieldLatencyMs)
	}
	if m.addretries != nil {
		fields = append(fields, agentstep.FieldRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentstep.FieldLatencyMs:
		return m.AddedLatencyMs()
	case agentstep.FieldRetries:
		return m.AddedRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentstep.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case agentstep.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetries(v)
		return nil
	}
	return fmt.Errorf("unknown AgentStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentStepMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentStepMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AgentStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentStepMutation) ResetField(name string) error {
	switch name {
	case agentstep.FieldRunID:
		m.ResetRunID()
		return nil
	case agentstep.FieldName:
		m.ResetName()
		return nil
	case agentstep.FieldStatus:
		m.ResetStatus()
		return nil
	case agentstep.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentstep.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case agentstep.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case agentstep.FieldRetries:
		m.ResetRetries()
		return nil
	case agentstep.FieldInputSummary:
		m.ResetInputSummary()
		return nil
	case agentstep.FieldOutputSummary:
		m.ResetOutputSummary()
		return nil
	}
	return fmt.Errorf("unknown AgentStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, agentstep.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentstep.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, agentstep.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentStepMutation) EdgeCleared(name string) bool {
	switch name {
	case agentstep.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentStepMutation) ClearEdge(name string) error {
	switch name {
	case agentstep.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown AgentStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentStepMutation) ResetEdge(name string) error {
	switch name {
	case agentstep.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown AgentStep edge %s", name)
}

// GuardrailEventMutation represents an operation that mutates the GuardrailEvent nodes in the graph.
type GuardrailEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	step_id       *string
	call_id       *string
	_type         *guardrailevent.Type
	message       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*GuardrailEvent, error)
	predicates    []predicate.GuardrailEvent
}

var _ ent.Mutation = (*GuardrailEventMutation)(nil)

// guardraileventOption allows management of the mutation configuration using functional options.
type guardraileventOption func(*GuardrailEventMutation)

// newGuardrailEventMutation creates new mutation for the GuardrailEvent entity.
func newGuardrailEventMutation(c config, op Op, opts ...guardraileventOption) *GuardrailEventMutation {
	m := &GuardrailEventMutation{
		config:        c,
		op:            op,
		typ:           TypeGuardrailEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGuardrailEventID sets the ID field of the mutation.
func withGuardrailEventID(id string) guardraileventOption {
	return func(m *GuardrailEventMutation) {
		var (
			err   error
			once  sync.Once
			value *GuardrailEvent
		)
		m.oldValue = func(ctx context.Context) (*GuardrailEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GuardrailEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGuardrailEvent sets the old GuardrailEvent of the mutation.
func withGuardrailEvent(node *GuardrailEvent) guardraileventOption {
	return func(m *GuardrailEventMutation) {
		m.oldValue = func(context.Context) (*GuardrailEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GuardrailEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GuardrailEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GuardrailEvent entities.
func (m *GuardrailEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GuardrailEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GuardrailEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GuardrailEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *GuardrailEventMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *GuardrailEventMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the GuardrailEvent entity.
// If the GuardrailEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardrailEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *GuardrailEventMutation) ResetRunID() {
	m.run = nil
}

// SetStepID sets the "step_id" field.
func (m *GuardrailEventMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *GuardrailEventMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the GuardrailEvent entity.
// If the GuardrailEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardrailEventMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *GuardrailEventMutation) ClearStepID() {
	m.step_id = nil
	m.clearedFields[guardrailevent.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *GuardrailEventMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[guardrailevent.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *GuardrailEventMutation) ResetStepID() {
	m.step_id = nil
	delete(m.clearedFields, guardrailevent.FieldStepID)
}

// SetCallID sets the "call_id" field.
func (m *GuardrailEventMutation) SetCallID(s string) {
	m.call_id = &s
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *GuardrailEventMutation) CallID() (r string, exists bool) {
	v := m.call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the GuardrailEvent entity.
// If the GuardrailEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardrailEventMutation) OldCallID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ClearCallID clears the value of the "call_id" field.
func (m *GuardrailEventMutation) ClearCallID() {
	m.call_id = nil
	m.clearedFields[guardrailevent.FieldCallID] = struct{}{}
}

// CallIDCleared returns if the "call_id" field was cleared in this mutation.
func (m *GuardrailEventMutation) CallIDCleared() bool {
	_, ok := m.clearedFields[guardrailevent.FieldCallID]
	return ok
}

// ResetCallID resets all changes to the "call_id" field.
func (m *GuardrailEventMutation) ResetCallID() {
	m.call_id = nil
	delete(m.clearedFields, guardrailevent.FieldCallID)
}

// SetType sets the "type" field.
func (m *GuardrailEventMutation) SetType(gu guardrailevent.Type) {
	m._type = &gu
}

// GetType returns the value of the "type" field in the mutation.
func (m *GuardrailEventMutation) GetType() (r guardrailevent.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the GuardrailEvent entity.
// If the GuardrailEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardrailEventMutation) OldType(ctx context.Context) (v guardrailevent.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *GuardrailEventMutation) ResetType() {
	m._type = nil
}

// SetMessage sets the "message" field.
func (m *GuardrailEventMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *GuardrailEventMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the GuardrailEvent entity.
// If the GuardrailEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardrailEventMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *GuardrailEventMutation) ResetMessage() {
	m.message = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GuardrailEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GuardrailEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GuardrailEvent entity.
// If the GuardrailEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuardrailEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GuardrailEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (m *GuardrailEventMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[guardrailevent.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AgentRun entity was cleared.
func (m *GuardrailEventMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *GuardrailEventMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *GuardrailEventMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the GuardrailEventMutation builder.
func (m *GuardrailEventMutation) Where(ps ...predicate.GuardrailEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GuardrailEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GuardrailEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GuardrailEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GuardrailEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GuardrailEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GuardrailEvent).
func (m *GuardrailEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GuardrailEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, guardrailevent.FieldRunID)
	}
	if m.step_id != nil {
		fields = append(fields, guardrailevent.FieldStepID)
	}
	if m.call_id != nil {
		fields = append(fields, guardrailevent.FieldCallID)
	}
	if m._type != nil {
		fields = append(fields, guardrailevent.FieldType)
	}
	if m.message != nil {
		fields = append(fields, guardrailevent.FieldMessage)
	}
	if m.created_at != nil {
		fields = append(fields, guardrailevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GuardrailEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case guardrailevent.FieldRunID:
		return m.RunID()
	case guardrailevent.FieldStepID:
		return m.StepID()
	case guardrailevent.FieldCallID:
		return m.CallID()
	case guardrailevent.FieldType:
		return m.GetType()
	case guardrailevent.FieldMessage:
		return m.Message()
	case guardrailevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GuardrailEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case guardrailevent.FieldRunID:
		return m.OldRunID(ctx)
	case guardrailevent.FieldStepID:
		return m.OldStepID(ctx)
	case guardrailevent.FieldCallID:
		return m.OldCallID(ctx)
	case guardrailevent.FieldType:
		return m.OldType(ctx)
	case guardrailevent.FieldMessage:
		return m.OldMessage(ctx)
	case guardrailevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GuardrailEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GuardrailEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case guardrailevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case guardrailevent.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case guardrailevent.FieldCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case guardrailevent.FieldType:
		v, ok := value.(guardrailevent.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case guardrailevent.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case guardrailevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GuardrailEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GuardrailEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GuardrailEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GuardrailEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GuardrailEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GuardrailEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(guardrailevent.FieldStepID) {
		fields = append(fields, guardrailevent.FieldStepID)
	}
	if m.FieldCleared(guardrailevent.FieldCallID) {
		fields = append(fields, guardrailevent.FieldCallID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GuardrailEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GuardrailEventMutation) ClearField(name string) error {
	switch name {
	case guardrailevent.FieldStepID:
		m.ClearStepID()
		return nil
	case guardrailevent.FieldCallID:
		m.ClearCallID()
		return nil
	}
	return fmt.Errorf("unknown GuardrailEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GuardrailEventMutation) ResetField(name string) error {
	switch name {
	case guardrailevent.FieldRunID:
		m.ResetRunID()
		return nil
	case guardrailevent.FieldStepID:
		m.ResetStepID()
		return nil
	case guardrailevent.FieldCallID:
		m.ResetCallID()
		return nil
	case guardrailevent.FieldType:
		m.ResetType()
		return nil
	case guardrailevent.FieldMessage:
		m.ResetMessage()
		return nil
	case guardrailevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GuardrailEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GuardrailEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, guardrailevent.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GuardrailEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case guardrailevent.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GuardrailEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GuardrailEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GuardrailEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, guardrailevent.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GuardrailEventMutation) EdgeCleared(name string) bool {
	switch name {
	case guardrailevent.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GuardrailEventMutation) ClearEdge(name string) error {
	switch name {
	case guardrailevent.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown GuardrailEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GuardrailEventMutation) ResetEdge(name string) error {
	switch name {
	case guardrailevent.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown GuardrailEvent edge %s", name)
}

// RCAReportMutation represents an operation that mutates the RCAReport nodes in the graph.
type RCAReportMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	run_id                *string
	report_json           *map[string]interface{}
	insufficient_evidence *bool
	category              *string
	generated_at          *time.Time
	clearedFields         map[string]struct{}
	rca_run               *string
	clearedrca_run        bool
	done                  bool
	oldValue              func(context.Context) (*RCAReport, error)
	predicates            []predicate.RCAReport
}

var _ ent.Mutation = (*RCAReportMutation)(nil)

// rcareportOption allows management of the mutation configuration using functional options.
type rcareportOption func(*RCAReportMutation)

// newRCAReportMutation creates new mutation for the RCAReport entity.
func newRCAReportMutation(c config, op Op, opts ...rcareportOption) *RCAReportMutation {
	m := &RCAReportMutation{
		config:        c,
		op:            op,
		typ:           TypeRCAReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRCAReportID sets the ID field of the mutation.
func withRCAReportID(id string) rcareportOption {
	return func(m *RCAReportMutation) {
		var (
			err   error
			once  sync.Once
			value *RCAReport
		)
		m.oldValue = func(ctx context.Context) (*RCAReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RCAReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRCAReport sets the old RCAReport of the mutation.
func withRCAReport(node *RCAReport) rcareportOption {
	return func(m *RCAReportMutation) {
		m.oldValue = func(context.Context) (*RCAReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RCAReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RCAReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RCAReport entities.
func (m *RCAReportMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RCAReportMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RCAReportMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RCAReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRcaRunID sets the "rca_run_id" field.
func (m *RCAReportMutation) SetRcaRunID(s string) {
	m.rca_run = &s
}

// RcaRunID returns the value of the "rca_run_id" field in the mutation.
func (m *RCAReportMutation) RcaRunID() (r string, exists bool) {
	v := m.rca_run
	if v == nil {
		return
	}
	return *v, true
}

// OldRcaRunID returns the old "rca_run_id" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldRcaRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRcaRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRcaRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRcaRunID: %w", err)
	}
	return oldValue.RcaRunID, nil
}

// ResetRcaRunID resets all changes to the "rca_run_id" field.
func (m *RCAReportMutation) ResetRcaRunID() {
	m.rca_run = nil
}

// SetRunID sets the "run_id" field.
func (m *RCAReportMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RCAReportMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RCAReportMutation) ResetRunID() {
	m.run_id = nil
}

// SetReportJSON sets the "report_json" field.
func (m *RCAReportMutation) SetReportJSON(value map[string]interface{}) {
	m.report_json = &value
}

// ReportJSON returns the value of the "report_json" field in the mutation.
func (m *RCAReportMutation) ReportJSON() (r map[string]interface{}, exists bool) {
	v := m.report_json
	if v == nil {
		return
	}
	return *v, true
}

// OldReportJSON returns the old "report_json" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldReportJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportJSON: %w", err)
	}
	return oldValue.ReportJSON, nil
}

// ResetReportJSON resets all changes to the "report_json" field.
func (m *RCAReportMutation) ResetReportJSON() {
	m.report_json = nil
}

// SetInsufficientEvidence sets the "insufficient_evidence" field.
func (m *RCAReportMutation) SetInsufficientEvidence(b bool) {
	m.insufficient_evidence = &b
}

// InsufficientEvidence returns the value of the "insufficient_evidence" field in the mutation.
func (m *RCAReportMutation) InsufficientEvidence() (r bool, exists bool) {
	v := m.insufficient_evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldInsufficientEvidence returns the old "insufficient_evidence" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldInsufficientEvidence(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsufficientEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsufficientEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsufficientEvidence: %w", err)
	}
	return oldValue.InsufficientEvidence, nil
}

// ResetInsufficientEvidence resets all changes to the "insufficient_evidence" field.
func (m *RCAReportMutation) ResetInsufficientEvidence() {
	m.insufficient_evidence = nil
}

// SetCategory sets the "category" field.
func (m *RCAReportMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *RCAReportMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *RCAReportMutation) ResetCategory() {
	m.category = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *RCAReportMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *RCAReportMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the RCAReport entity.
// If the RCAReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCAReportMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *RCAReportMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// ClearRcaRun clears the "rca_run" edge to the RCARun entity.
func (m *RCAReportMutation) ClearRcaRun() {
	m.clearedrca_run = true
	m.clearedFields[rcareport.FieldRcaRunID] = struct{}{}
}

// RcaRunCleared reports if the "rca_run" edge to the RCARun entity was cleared.
func (m *RCAReportMutation) RcaRunCleared() bool {
	return m.clearedrca_run
}

// RcaRunIDs returns the "rca_run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RcaRunID instead. It exists only for internal usage by the builders.
func (m *RCAReportMutation) RcaRunIDs() (ids []string) {
	if id := m.rca_run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRcaRun resets all changes to the "rca_run" edge.
func (m *RCAReportMutation) ResetRcaRun() {
	m.rca_run = nil
	m.clearedrca_run = false
}

// Where appends a list predicates to the RCAReportMutation builder.
func (m *RCAReportMutation) Where(ps ...predicate.RCAReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RCAReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RCAReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RCAReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RCAReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RCAReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RCAReport).
func (m *RCAReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RCAReportMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.rca_run != nil {
		fields = append(fields, rcareport.FieldRcaRunID)
	}
	if m.run_id != nil {
		fields = append(fields, rcareport.FieldRunID)
	}
	if m.report_json != nil {
		fields = append(fields, rcareport.FieldReportJSON)
	}
	if m.insufficient_evidence != nil {
		fields = append(fields, rcareport.FieldInsufficientEvidence)
	}
	if m.category != nil {
		fields = append(fields, rcareport.FieldCategory)
	}
	if m.generated_at != nil {
		fields = append(fields, rcareport.FieldGeneratedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RCAReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rcareport.FieldRcaRunID:
		return m.RcaRunID()
	case rcareport.FieldRunID:
		return m.RunID()
	case rcareport.FieldReportJSON:
		return m.ReportJSON()
	case rcareport.FieldInsufficientEvidence:
		return m.InsufficientEvidence()
	case rcareport.FieldCategory:
		return m.Category()
	case rcareport.FieldGeneratedAt:
		return m.GeneratedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RCAReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rcareport.FieldRcaRunID:
		return m.OldRcaRunID(ctx)
	case rcareport.FieldRunID:
		return m.OldRunID(ctx)
	case rcareport.FieldReportJSON:
		return m.OldReportJSON(ctx)
	case rcareport.FieldInsufficientEvidence:
		return m.OldInsufficientEvidence(ctx)
	case rcareport.FieldCategory:
		return m.OldCategory(ctx)
	case rcareport.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RCAReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RCAReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rcareport.FieldRcaRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRcaRunID(v)
		return nil
	case rcareport.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case rcareport.FieldReportJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportJSON(v)
		return nil
	case rcareport.FieldInsufficientEvidence:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsufficientEvidence(v)
		return nil
	case rcareport.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case rcareport.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RCAReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RCAReportMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RCAReportMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RCAReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RCAReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RCAReportMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RCAReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RCAReportMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RCAReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RCAReportMutation) ResetField(name string) error {
	switch name {
	case rcareport.FieldRcaRunID:
		m.ResetRcaRunID()
		return nil
	case rcareport.FieldRunID:
		m.ResetRunID()
		return nil
	case rcareport.FieldReportJSON:
		m.ResetReportJSON()
		return nil
	case rcareport.FieldInsufficientEvidence:
		m.ResetInsufficientEvidence()
		return nil
	case rcareport.FieldCategory:
		m.ResetCategory()
		return nil
	case rcareport.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown RCAReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RCAReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.rca_run != nil {
		edges = append(edges, rcareport.EdgeRcaRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RCAReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rcareport.EdgeRcaRun:
		if id := m.rca_run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RCAReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RCAReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RCAReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrca_run {
		edges = append(edges, rcareport.EdgeRcaRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RCAReportMutation) EdgeCleared(name string) bool {
	switch name {
	case rcareport.EdgeRcaRun:
		return m.clearedrca_run
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RCAReportMutation) ClearEdge(name string) error {
	switch name {
	case rcareport.EdgeRcaRun:
		m.ClearRcaRun()
		return nil
	}
	return fmt.Errorf("unknown RCAReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RCAReportMutation) ResetEdge(name string) error {
	switch name {
	case rcareport.EdgeRcaRun:
		m.ResetRcaRun()
		return nil
	}
	return fmt.Errorf("unknown RCAReport edge %s", name)
}

// RCARunMutation represents an operation that mutates the RCARun nodes in the graph.
type RCARunMutation struct {
	config
	op            Op
	typ           string
	id            *string
	status        *rcarun.Status
	step          *string
	pct           *int
	addpct        *int
	message       *string
	created_at    *time.Time
	started_at    *time.Time
	ended_at      *time.Time
	error_message *string
	pod_id        *string
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	report        *string
	clearedreport bool
	done          bool
	oldValue      func(context.Context) (*RCARun, error)
	predicates    []predicate.RCARun
}

var _ ent.Mutation = (*RCARunMutation)(nil)

// rcarunOption allows management of the mutation configuration using functional options.
type rcarunOption func(*RCARunMutation)

// newRCARunMutation creates new mutation for the RCARun entity.
func newRCARunMutation(c config, op Op, opts ...rcarunOption) *RCARunMutation {
	m := &RCARunMutation{
		config:        c,
		op:            op,
		typ:           TypeRCARun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRCARunID sets the ID field of the mutation.
func withRCARunID(id string) rcarunOption {
	return func(m *RCARunMutation) {
		var (
			err   error
			once  sync.Once
			value *RCARun
		)
		m.oldValue = func(ctx context.Context) (*RCARun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RCARun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRCARun sets the old RCARun of the mutation.
func withRCARun(node *RCARun) rcarunOption {
	return func(m *RCARunMutation) {
		m.oldValue = func(context.Context) (*RCARun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RCARunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RCARunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RCARun entities.
func (m *RCARunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RCARunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RCARunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RCARun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RCARunMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RCARunMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RCARun entity.
// If the RCARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARunMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RCARunMutation) ResetRunID() {
	m.run = nil
}

// SetStatus sets the "status" field.
func (m *RCARunMutation) SetStatus(r rcarun.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RCARunMutation) Status() (r rcarun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RCARun entity.
// If the RCARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARunMutation) OldStatus(ctx context.Context) (v rcarun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RCARunMutation) ResetStatus() {
	m.status = nil
}

// SetStep sets the "step" field.
func (m *RCARunMutation) SetStep(s string) {
	m.step = &s
}

// Step returns the value of the "step" field in the mutation.
func (m *RCARunMutation) Step() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the RCARun entity.
// If the RCARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARunMutation) OldStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// ResetStep resets all changes to the "step" field.
func (m *RCARunMutation) ResetStep() {
	m.step = nil
}

// SetPct sets the "pct" field.
func (m *RCARunMutation) SetPct(i int) {
	m.pct = &i
	m.addpct = nil
}

// Pct returns the value of the "pct" field in the mutation.
func (m *RCARunMutation) Pct() (r int, exists bool) {
	v := m.pct
	if v == nil {
		return
	}
	return *v, true
}

// OldPct returns the old "pct" field's value of the RCARun entity.
// If the RCARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARunMutation) OldPct(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPct: %w", err)
	}
	return oldValue.Pct, nil
}

// AddPct adds i to the "pct" field.
func (m *RCARunMutation) AddPct(i int) {
	if m.addpct != nil {
		*m.addpct += i
	} else {
		m.addpct = &i
	}
}

// AddedPct returns the value that was added to the "pct" field in this mutation.
func (m *RCARunMutation) AddedPct() (r int, exists bool) {
	v := m.addpct
	if v == nil {
		return
	}
	return *v, true
}

// ResetPct resets all changes to the "pct" field.
func (m *RCARunMutation) ResetPct() {
	m.pct = nil
	m.addpct = nil
}

// SetMessage sets the "message" field.
func (m *RCARunMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *RCARunMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the RCARun entity.
// If the RCARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARunMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *RCARunMutation) ResetMessage() {
	m.message = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RCARunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RCARunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RCARun entity.
// If the RCARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RCARunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RCARunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RCARunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the RCARun entity.
// If the RCARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RCARunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[rcarun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RCARunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[rcarun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RCARunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, rcarun.FieldStartedAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *RCARunMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *RCARunMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the RCARun entity.
// If the RCARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARunMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *RCARunMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[rcarun.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *RCARunMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[rcarun.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *RCARunMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, rcarun.FieldEndedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *RCARunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RCARunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the RCARun entity.
// If the RCARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RCARunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[rcarun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RCARunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[rcarun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RCARunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, rcarun.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *RCARunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *RCARunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the RCARun entity.
// If the RCARun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RCARunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *RCARunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[rcarun.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *RCARunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[rcarun.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *RCARunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, rcarun.FieldPodID)
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (m *RCARunMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[rcarun.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AgentRun entity was cleared.
func (m *RCARunMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RCARunMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RCARunMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// SetReportID sets the "report" edge to the RCAReport entity by id.
func (m *RCARunMutation) SetReportID(id string) {
	m.report = &id
}

// ClearReport clears the "report" edge to the RCAReport entity.
func (m *RCARunMutation) ClearReport() {
	m.clearedreport = true
}

// ReportCleared reports if the "report" edge to the RCAReport entity was cleared.
func (m *RCARunMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportID returns the "report" edge ID in the mutation.
func (m *RCARunMutation) ReportID() (id string, exists bool) {
	if m.report != nil {
		return *m.report, true
	}
	return
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *RCARunMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *RCARunMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the RCARunMutation builder.
func (m *RCARunMutation) Where(ps ...predicate.RCARun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RCARunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RCARunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RCARun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RCARunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RCARunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RCARun).
func (m *RCARunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RCARunMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.run != nil {
		fields = append(fields, rcarun.FieldRunID)
	}
	if m.status != nil {
		fields = append(fields, rcarun.FieldStatus)
	}
	if m.step != nil {
		fields = append(fields, rcarun.FieldStep)
	}
	if m.pct != nil {
		fields = append(fields, rcarun.FieldPct)
	}
	if m.message != nil {
		fields = append(fields, rcarun.FieldMessage)
	}
	if m.created_at != nil {
		fields = append(fields, rcarun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, rcarun.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, rcarun.FieldEndedAt)
	}
	if m.error_message != nil {
		fields = append(fields, rcarun.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, rcarun.FieldPodID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RCARunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rcarun.FieldRunID:
		return m.RunID()
	case rcarun.FieldStatus:
		return m.Status()
	case rcarun.FieldStep:
		return m.Step()
	case rcarun.FieldPct:
		return m.Pct()
	case rcarun.FieldMessage:
		return m.Message()
	case rcarun.FieldCreatedAt:
		return m.CreatedAt()
	case rcarun.FieldStartedAt:
		return m.StartedAt()
	case rcarun.FieldEndedAt:
		return m.EndedAt()
	case rcarun.FieldErrorMessage:
		return m.ErrorMessage()
	case rcarun.FieldPodID:
		return m.PodID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RCARunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rcarun.FieldRunID:
		return m.OldRunID(ctx)
	case rcarun.FieldStatus:
		return m.OldStatus(ctx)
	case rcarun.FieldStep:
		return m.OldStep(ctx)
	case rcarun.FieldPct:
		return m.OldPct(ctx)
	case rcarun.FieldMessage:
		return m.OldMessage(ctx)
	case rcarun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case rcarun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case rcarun.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case rcarun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case rcarun.FieldPodID:
		return m.OldPodID(ctx)
	}
	return nil, fmt.Errorf("unknown RCARun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RCARunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rcarun.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case rcarun.FieldStatus:
		v, ok := value.(rcarun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case rcarun.FieldStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case rcarun.FieldPct:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPct(v)
		return nil
	case rcarun.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case rcarun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case rcarun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case rcarun.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case rcarun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case rcarun.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	}
	return fmt.Errorf("unknown RCARun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RCARunMutation) AddedFields() []string {
	var fields []string
	if m.addpct != nil {
		fields = append(fields, rcarun.FieldPct)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RCARunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rcarun.FieldPct:
		return m.AddedPct()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RCARunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rcarun.FieldPct:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPct(v)
		return nil
	}
	return fmt.Errorf("unknown RCARun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RCARunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rcarun.FieldStartedAt) {
		fields = append(fields, rcarun.FieldStartedAt)
	}
	if m.FieldCleared(rcarun.FieldEndedAt) {
		fields = append(fields, rcarun.FieldEndedAt)
	}
	if m.FieldCleared(rcarun.FieldErrorMessage) {
		fields = append(fields, rcarun.FieldErrorMessage)
	}
	if m.FieldCleared(rcarun.FieldPodID) {
		fields = append(fields, rcarun.FieldPodID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RCARunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RCARunMutation) ClearField(name string) error {
	switch name {
	case rcarun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case rcarun.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case rcarun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case rcarun.FieldPodID:
		m.ClearPodID()
		return nil
	}
	return fmt.Errorf("unknown RCARun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RCARunMutation) ResetField(name string) error {
	switch name {
	case rcarun.FieldRunID:
		m.ResetRunID()
		return nil
	case rcarun.FieldStatus:
		m.ResetStatus()
		return nil
	case rcarun.FieldStep:
		m.ResetStep()
		return nil
	case rcarun.FieldPct:
		m.ResetPct()
		return nil
	case rcarun.FieldMessage:
		m.ResetMessage()
		return nil
	case rcarun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case rcarun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case rcarun.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case rcarun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case rcarun.FieldPodID:
		m.ResetPodID()
		return nil
	}
	return fmt.Errorf("unknown RCARun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RCARunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, rcarun.EdgeRun)
	}
	if m.report != nil {
		edges = append(edges, rcarun.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RCARunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rcarun.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case rcarun.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RCARunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RCARunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RCARunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, rcarun.EdgeRun)
	}
	if m.clearedreport {
		edges = append(edges, rcarun.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RCARunMutation) EdgeCleared(name string) bool {
	switch name {
	case rcarun.EdgeRun:
		return m.clearedrun
	case rcarun.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RCARunMutation) ClearEdge(name string) error {
	switch name {
	case rcarun.EdgeRun:
		m.ClearRun()
		return nil
	case rcarun.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown RCARun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RCARunMutation) ResetEdge(name string) error {
	switch name {
	case rcarun.EdgeRun:
		m.ResetRun()
		return nil
	case rcarun.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown RCARun edge %s", name)
}

// ToolCallMutation represents an operation that mutates the ToolCall nodes in the graph.
type ToolCallMutation struct {
	config
	op             Op
	typ            string
	id             *string
	step_id        *string
	tool_name      *string
	status         *toolcall.Status
	args_json      *map[string]interface{}
	args_hash      *string
	result_summary *string
	error_class    *string
	error_message  *string
	status_code    *int
	addstatus_code *int
	latency_ms     *int
	addlatency_ms  *int
	retries        *int
	addretries     *int
	clearedFields  map[string]struct{}
	run            *string
	clearedrun     bool
	done           bool
	oldValue       func(context.Context) (*ToolCall, error)
	predicates     []predicate.ToolCall
}

var _ ent.Mutation = (*ToolCallMutation)(nil)

// toolcallOption allows management of the mutation configuration using functional options.
type toolcallOption func(*ToolCallMutation)

// newToolCallMutation creates new mutation for the ToolCall entity.
func newToolCallMutation(c config, op Op, opts ...toolcallOption) *ToolCallMutation {
	m := &ToolCallMutation{
		config:        c,
		op:            op,
		typ:           TypeToolCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolCallID sets the ID field of the mutation.
func withToolCallID(id string) toolcallOption {
	return func(m *ToolCallMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolCall
		)
		m.oldValue = func(ctx context.Context) (*ToolCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolCall sets the old ToolCall of the mutation.
func withToolCall(node *ToolCall) toolcallOption {
	return func(m *ToolCallMutation) {
		m.oldValue = func(context.Context) (*ToolCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolCall entities.
func (m *ToolCallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolCallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolCallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ToolCallMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ToolCallMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ToolCallMutation) ResetRunID() {
	m.run = nil
}

// SetStepID sets the "step_id" field.
func (m *ToolCallMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *ToolCallMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *ToolCallMutation) ClearStepID() {
	m.step_id = nil
	m.clearedFields[toolcall.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *ToolCallMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *ToolCallMutation) ResetStepID() {
	m.step_id = nil
	delete(m.clearedFields, toolcall.FieldStepID)
}

// SetToolName sets the "tool_name" field.
func (m *ToolCallMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ToolCallMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ToolCallMutation) ResetToolName() {
	m.tool_name = nil
}

// SetStatus sets the "status" field.
func (m *ToolCallMutation) SetStatus(t toolcall.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ToolCallMutation) Status() (r toolcall.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStatus(ctx context.Context) (v toolcall.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ToolCallMutation) ResetStatus() {
	m.status = nil
}

// SetArgsJSON sets the "args_json" field.
func (m *ToolCallMutation) SetArgsJSON(value map[string]interface{}) {
	m.args_json = &value
}

// ArgsJSON returns the value of the "args_json" field in the mutation.
func (m *ToolCallMutation) ArgsJSON() (r map[string]interface{}, exists bool) {
	v := m.args_json
	if v == nil {
		return
	}
	return *v, true
}

// OldArgsJSON returns the old "args_json" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldArgsJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgsJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgsJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgsJSON: %w", err)
	}
	return oldValue.ArgsJSON, nil
}

// ClearArgsJSON clears the value of the "args_json" field.
func (m *ToolCallMutation) ClearArgsJSON() {
	m.args_json = nil
	m.clearedFields[toolcall.FieldArgsJSON] = struct{}{}
}

// ArgsJSONCleared returns if the "args_json" field was cleared in this mutation.
func (m *ToolCallMutation) ArgsJSONCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldArgsJSON]
	return ok
}

// ResetArgsJSON resets all changes to the "args_json" field.
func (m *ToolCallMutation) ResetArgsJSON() {
	m.args_json = nil
	delete(m.clearedFields, toolcall.FieldArgsJSON)
}

// SetArgsHash sets the "args_hash" field.
func (m *ToolCallMutation) SetArgsHash(s string) {
	m.args_hash = &s
}

// ArgsHash returns the value of the "args_hash" field in the mutation.
func (m *ToolCallMutation) ArgsHash() (r string, exists bool) {
	v := m.args_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldArgsHash returns the old "args_hash" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldArgsHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgsHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgsHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgsHash: %w", err)
	}
	return oldValue.ArgsHash, nil
}

// ClearArgsHash clears the value of the "args_hash" field.
func (m *ToolCallMutation) ClearArgsHash() {
	m.args_hash = nil
	m.clearedFields[toolcall.FieldArgsHash] = struct{}{}
}

// ArgsHashCleared returns if the "args_hash" field was cleared in this mutation.
func (m *ToolCallMutation) ArgsHashCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldArgsHash]
	return ok
}

// ResetArgsHash resets all changes to the "args_hash" field.
func (m *ToolCallMutation) ResetArgsHash() {
	m.args_hash = nil
	delete(m.clearedFields, toolcall.FieldArgsHash)
}

// SetResultSummary sets the "result_summary" field.
func (m *ToolCallMutation) SetResultSummary(s string) {
	m.result_summary = &s
}

// ResultSummary returns the value of the "result_summary" field in the mutation.
func (m *ToolCallMutation) ResultSummary() (r string, exists bool) {
	v := m.result_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldResultSummary returns the old "result_summary" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldResultSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultSummary: %w", err)
	}
	return oldValue.ResultSummary, nil
}

// ClearResultSummary clears the value of the "result_summary" field.
func (m *ToolCallMutation) ClearResultSummary() {
	m.result_summary = nil
	m.clearedFields[toolcall.FieldResultSummary] = struct{}{}
}

// ResultSummaryCleared returns if the "result_summary" field was cleared in this mutation.
func (m *ToolCallMutation) ResultSummaryCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldResultSummary]
	return ok
}

// ResetResultSummary resets all changes to the "result_summary" field.
func (m *ToolCallMutation) ResetResultSummary() {
	m.result_summary = nil
	delete(m.clearedFields, toolcall.FieldResultSummary)
}

// SetErrorClass sets the "error_class" field.
func (m *ToolCallMutation) SetErrorClass(s string) {
	m.error_class = &s
}

// ErrorClass returns the value of the "error_class" field in the mutation.
func (m *ToolCallMutation) ErrorClass() (r string, exists bool) {
	v := m.error_class
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorClass returns the old "error_class" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldErrorClass(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorClass: %w", err)
	}
	return oldValue.ErrorClass, nil
}

// ClearErrorClass clears the value of the "error_class" field.
func (m *ToolCallMutation) ClearErrorClass() {
	m.error_class = nil
	m.clearedFields[toolcall.FieldErrorClass] = struct{}{}
}

// ErrorClassCleared returns if the "error_class" field was cleared in this mutation.
func (m *ToolCallMutation) ErrorClassCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldErrorClass]
	return ok
}

// ResetErrorClass resets all changes to the "error_class" field.
func (m *ToolCallMutation) ResetErrorClass() {
	m.error_class = nil
	delete(m.clearedFields, toolcall.FieldErrorClass)
}

// SetErrorMessage sets the "error_message" field.
func (m *ToolCallMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ToolCallMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ToolCallMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[toolcall.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ToolCallMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ToolCallMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, toolcall.FieldErrorMessage)
}

// SetStatusCode sets the "status_code" field.
func (m *ToolCallMutation) SetStatusCode(i int) {
	m.status_code = &i
	m.addstatus_code = nil
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *ToolCallMutation) StatusCode() (r int, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStatusCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// AddStatusCode adds i to the "status_code" field.
func (m *ToolCallMutation) AddStatusCode(i int) {
	if m.addstatus_code != nil {
		*m.addstatus_code += i
	} else {
		m.addstatus_code = &i
	}
}

// AddedStatusCode returns the value that was added to the "status_code" field in this mutation.
func (m *ToolCallMutation) AddedStatusCode() (r int, exists bool) {
	v := m.addstatus_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearStatusCode clears the value of the "status_code" field.
func (m *ToolCallMutation) ClearStatusCode() {
	m.status_code = nil
	m.addstatus_code = nil
	m.clearedFields[toolcall.FieldStatusCode] = struct{}{}
}

// StatusCodeCleared returns if the "status_code" field was cleared in this mutation.
func (m *ToolCallMutation) StatusCodeCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldStatusCode]
	return ok
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *ToolCallMutation) ResetStatusCode() {
	m.status_code = nil
	m.addstatus_code = nil
	delete(m.clearedFields, toolcall.FieldStatusCode)
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ToolCallMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ToolCallMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ToolCallMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ToolCallMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ToolCallMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetRetries sets the "retries" field.
func (m *ToolCallMutation) SetRetries(i int) {
	m.retries = &i
	m.addretries = nil
}

// Retries returns the value of the "retries" field in the mutation.
func (m *ToolCallMutation) Retries() (r int, exists bool) {
	v := m.retries
	if v == nil {
		return
	}
	return *v, true
}

// OldRetries returns the old "retries" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetries: %w", err)
	}
	return oldValue.Retries, nil
}

// AddRetries adds i to the "retries" field.
func (m *ToolCallMutation) AddRetries(i int) {
	if m.addretries != nil {
		*m.addretries += i
	} else {
		m.addretries = &i
	}
}

// AddedRetries returns the value that was added to the "retries" field in this mutation.
func (m *ToolCallMutation) AddedRetries() (r int, exists bool) {
	v := m.addretries
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetries resets all changes to the "retries" field.
func (m *ToolCallMutation) ResetRetries() {
	m.retries = nil
	m.addretries = nil
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (m *ToolCallMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[toolcall.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AgentRun entity was cleared.
func (m *ToolCallMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ToolCallMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ToolCallMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the ToolCallMutation builder.
func (m *ToolCallMutation) Where(ps ...predicate.ToolCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolCall).
func (m *ToolCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolCallMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.run != nil {
		fields = append(fields, toolcall.FieldRunID)
	}
	if m.step_id != nil {
		fields = append(fields, toolcall.FieldStepID)
	}
	if m.tool_name != nil {
		fields = append(fields, toolcall.FieldToolName)
	}
	if m.status != nil {
		fields = append(fields, toolcall.FieldStatus)
	}
	if m.args_json != nil {
		fields = append(fields, toolcall.FieldArgsJSON)
	}
	if m.args_hash != nil {
		fields = append(fields, toolcall.FieldArgsHash)
	}
	if m.result_summary != nil {
		fields = append(fields, toolcall.FieldResultSummary)
	}
	if m.error_class != nil {
		fields = append(fields, toolcall.FieldErrorClass)
	}
	if m.error_message != nil {
		fields = append(fields, toolcall.FieldErrorMessage)
	}
	if m.status_code != nil {
		fields = append(fields, toolcall.FieldStatusCode)
	}
	if m.latency_ms != nil {
		fields = append(fields, toolcall.FieldLatencyMs)
	}
	if m.retries != nil {
		fields = append(fields, toolcall.FieldRetries)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolcall.FieldRunID:
		return m.RunID()
	case toolcall.FieldStepID:
		return m.StepID()
	case toolcall.FieldToolName:
		return m.ToolName()
	case toolcall.FieldStatus:
		return m.Status()
	case toolcall.FieldArgsJSON:
		return m.ArgsJSON()
	case toolcall.FieldArgsHash:
		return m.ArgsHash()
	case toolcall.FieldResultSummary:
		return m.ResultSummary()
	case toolcall.FieldErrorClass:
		return m.ErrorClass()
	case toolcall.FieldErrorMessage:
		return m.ErrorMessage()
	case toolcall.FieldStatusCode:
		return m.StatusCode()
	case toolcall.FieldLatencyMs:
		return m.LatencyMs()
	case toolcall.FieldRetries:
		return m.Retries()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolcall.FieldRunID:
		return m.OldRunID(ctx)
	case toolcall.FieldStepID:
		return m.OldStepID(ctx)
	case toolcall.FieldToolName:
		return m.OldToolName(ctx)
	case toolcall.FieldStatus:
		return m.OldStatus(ctx)
	case toolcall.FieldArgsJSON:
		return m.OldArgsJSON(ctx)
	case toolcall.FieldArgsHash:
		return m.OldArgsHash(ctx)
	case toolcall.FieldResultSummary:
		return m.OldResultSummary(ctx)
	case toolcall.FieldErrorClass:
		return m.OldErrorClass(ctx)
	case toolcall.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case toolcall.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case toolcall.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case toolcall.FieldRetries:
		return m.OldRetries(ctx)
	}
	return nil, fmt.Errorf("unknown ToolCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolcall.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case toolcall.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case toolcall.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case toolcall.FieldStatus:
		v, ok := value.(toolcall.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case toolcall.FieldArgsJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgsJSON(v)
		return nil
	case toolcall.FieldArgsHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgsHash(v)
		return nil
	case toolcall.FieldResultSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultSummary(v)
		return nil
	case toolcall.FieldErrorClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorClass(v)
		return nil
	case toolcall.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case toolcall.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case toolcall.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case toolcall.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetries(v)
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolCallMutation) AddedFields() []string {
	var fields []string
	if m.addstatus_code != nil {
		fields = append(fields, toolcall.FieldStatusCode)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, toolcall.FieldLatencyMs)
	}
	if m.addretries != nil {
		fields = append(fields, toolcall.FieldRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolcall.FieldStatusCode:
		return m.AddedStatusCode()
	case toolcall.FieldLatencyMs:
		return m.AddedLatencyMs()
	case toolcall.FieldRetries:
		return m.AddedRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolcall.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatusCode(v)
		return nil
	case toolcall.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case toolcall.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetries(v)
		return nil
	}
	return fmt.Errorf("unknown ToolCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolcall.FieldStepID) {
		fields = append(fields, toolcall.FieldStepID)
	}
	if m.FieldCleared(toolcall.FieldArgsJSON) {
		fields = append(fields, toolcall.FieldArgsJSON)
	}
	if m.FieldCleared(toolcall.FieldArgsHash) {
		fields = append(fields, toolcall.FieldArgsHash)
	}
	if m.FieldCleared(toolcall.FieldResultSummary) {
		fields = append(fields, toolcall.FieldResultSummary)
	}
	if m.FieldCleared(toolcall.FieldErrorClass) {
		fields = append(fields, toolcall.FieldErrorClass)
	}
	if m.FieldCleared(toolcall.FieldErrorMessage) {
		fields = append(fields, toolcall.FieldErrorMessage)
	}
	if m.FieldCleared(toolcall.FieldStatusCode) {
		fields = append(fields, toolcall.FieldStatusCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolCallMutation) ClearField(name string) error {
	switch name {
	case toolcall.FieldStepID:
		m.ClearStepID()
		return nil
	case toolcall.FieldArgsJSON:
		m.ClearArgsJSON()
		return nil
	case toolcall.FieldArgsHash:
		m.ClearArgsHash()
		return nil
	case toolcall.FieldResultSummary:
		m.ClearResultSummary()
		return nil
	case toolcall.FieldErrorClass:
		m.ClearErrorClass()
		return nil
	case toolcall.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case toolcall.FieldStatusCode:
		m.ClearStatusCode()
		return nil
	}
	return fmt.Errorf("unknown ToolCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolCallMutation) ResetField(name string) error {
	switch name {
	case toolcall.FieldRunID:
		m.ResetRunID()
		return nil
	case toolcall.FieldStepID:
		m.ResetStepID()
		return nil
	case toolcall.FieldToolName:
		m.ResetToolName()
		return nil
	case toolcall.FieldStatus:
		m.ResetStatus()
		return nil
	case toolcall.FieldArgsJSON:
		m.ResetArgsJSON()
		return nil
	case toolcall.FieldArgsHash:
		m.ResetArgsHash()
		return nil
	case toolcall.FieldResultSummary:
		m.ResetResultSummary()
		return nil
	case toolcall.FieldErrorClass:
		m.ResetErrorClass()
		return nil
	case toolcall.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case toolcall.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case toolcall.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case toolcall.FieldRetries:
		m.ResetRetries()
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, toolcall.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolCallMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case toolcall.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, toolcall.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolCallMutation) EdgeCleared(name string) bool {
	switch name {
	case toolcall.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolCallMutation) ClearEdge(name string) error {
	switch name {
	case toolcall.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown ToolCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolCallMutation) ResetEdge(name string) error {
	switch name {
	case toolcall.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown ToolCall edge %s", name)
}
