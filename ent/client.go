// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/agentops/agentops/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentops/agentops/ent/agentrun"
	"github.com/agentops/agentops/ent/agentstep"
	"github.com/agentops/agentops/ent/guardrailevent"
	"github.com/agentops/agentops/ent/rcareport"
	"github.com/agentops/agentops/ent/rcarun"
	"github.com/agentops/agentops/ent/toolcall"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentRun is the client for interacting with the AgentRun builders.
	AgentRun *AgentRunClient
	// AgentStep is the client for interacting with the AgentStep builders.
	AgentStep *AgentStepClient
	// GuardrailEvent is the client for interacting with the GuardrailEvent builders.
	GuardrailEvent *GuardrailEventClient
	// RCAReport is the client for interacting with the RCAReport builders.
	RCAReport *RCAReportClient
	// RCARun is the client for interacting with the RCARun builders.
	RCARun *RCARunClient
	// ToolCall is the client for interacting with the ToolCall builders.
	ToolCall *ToolCallClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentRun = NewAgentRunClient(c.config)
	c.AgentStep = NewAgentStepClient(c.config)
	c.GuardrailEvent = NewGuardrailEventClient(c.config)
	c.RCAReport = NewRCAReportClient(c.config)
	c.RCARun = NewRCARunClient(c.config)
	c.ToolCall = NewToolCallClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AgentRun:       NewAgentRunClient(cfg),
		AgentStep:      NewAgentStepClient(cfg),
		GuardrailEvent: NewGuardrailEventClient(cfg),
		RCAReport:      NewRCAReportClient(cfg),
		RCARun:         NewRCARunClient(cfg),
		ToolCall:       NewToolCallClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AgentRun:       NewAgentRunClient(cfg),
		AgentStep:      NewAgentStepClient(cfg),
		GuardrailEvent: NewGuardrailEventClient(cfg),
		RCAReport:      NewRCAReportClient(cfg),
		RCARun:         NewRCARunClient(cfg),
		ToolCall:       NewToolCallClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentRun.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentRun, c.AgentStep, c.GuardrailEvent, c.RCAReport, c.RCARun, c.ToolCall,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentRun, c.AgentStep, c.GuardrailEvent, c.RCAReport, c.RCARun, c.ToolCall,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentRunMutation:
		return c.AgentRun.mutate(ctx, m)
	case *AgentStepMutation:
		return c.AgentStep.mutate(ctx, m)
	case *GuardrailEventMutation:
		return c.GuardrailEvent.mutate(ctx, m)
	case *RCAReportMutation:
		return c.RCAReport.mutate(ctx, m)
	case *RCARunMutation:
		return c.RCARun.mutate(ctx, m)
	case *ToolCallMutation:
		return c.ToolCall.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentRunClient is a client for the AgentRun schema.
type AgentRunClient struct {
	config
}

// NewAgentRunClient returns a client for the AgentRun from the given config.
func NewAgentRunClient(c config) *AgentRunClient {
	return &AgentRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentrun.Hooks(f(g(h())))`.
func (c *AgentRunClient) Use(hooks ...Hook) {
	c.hooks.AgentRun = append(c.hooks.AgentRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentrun.Intercept(f(g(h())))`.
func (c *AgentRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentRun = append(c.inters.AgentRun, interceptors...)
}

// Create returns a builder for creating a AgentRun entity.
func (c *AgentRunClient) Create() *AgentRunCreate {
	mutation := newAgentRunMutation(c.config, OpCreate)
	return &AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentRun entities.
func (c *AgentRunClient) CreateBulk(builders ...*AgentRunCreate) *AgentRunCreateBulk {
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentRunClient) MapCreateBulk(slice any, setFunc func(*AgentRunCreate, int)) *AgentRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentRunCreateBulk{err: fmt.Errorf("calling to AgentRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentRun.
func (c *AgentRunClient) Update() *AgentRunUpdate {
	mutation := newAgentRunMutation(c.config, OpUpdate)
	return &AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentRunClient) UpdateOne(_m *AgentRun) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRun(_m))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentRunClient) UpdateOneID(id string) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRunID(id))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentRun.
func (c *AgentRunClient) Delete() *AgentRunDelete {
	mutation := newAgentRunMutation(c.config, OpDelete)
	return &AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentRunClient) DeleteOne(_m *AgentRun) *AgentRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentRunClient) DeleteOneID(id string) *AgentRunDeleteOne {
	builder := c.Delete().Where(agentrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentRunDeleteOne{builder}
}

// Query returns a query builder for AgentRun.
func (c *AgentRunClient) Query() *AgentRunQuery {
	return &AgentRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentRun},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentRun entity by its id.
func (c *AgentRunClient) Get(ctx context.Context, id string) (*AgentRun, error) {
	return c.Query().Where(agentrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentRunClient) GetX(ctx context.Context, id string) *AgentRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a AgentRun.
func (c *AgentRunClient) QuerySteps(_m *AgentRun) *AgentStepQuery {
	query := (&AgentStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(agentstep.Table, agentstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.StepsTable, agentrun.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToolCalls queries the tool_calls edge of a AgentRun.
func (c *AgentRunClient) QueryToolCalls(_m *AgentRun) *ToolCallQuery {
	query := (&ToolCallClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(toolcall.Table, toolcall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.ToolCallsTable, agentrun.ToolCallsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGuardrailEvents queries the guardrail_events edge of a AgentRun.
func (c *AgentRunClient) QueryGuardrailEvents(_m *AgentRun) *GuardrailEventQuery {
	query := (&GuardrailEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(guardrailevent.Table, guardrailevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.GuardrailEventsTable, agentrun.GuardrailEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRcaRuns queries the rca_runs edge of a AgentRun.
func (c *AgentRunClient) QueryRcaRuns(_m *AgentRun) *RCARunQuery {
	query := (&RCARunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(rcarun.Table, rcarun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.RcaRunsTable, agentrun.RcaRunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentRunClient) Hooks() []Hook {
	return c.hooks.AgentRun
}

// Interceptors returns the client interceptors.
func (c *AgentRunClient) Interceptors() []Interceptor {
	return c.inters.AgentRun
}

func (c *AgentRunClient) mutate(ctx context.Context, m *AgentRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentRun mutation op: %q", m.Op())
	}
}

// AgentStepClient is a client for the AgentStep schema.
type AgentStepClient struct {
	config
}

// NewAgentStepClient returns a client for the AgentStep from the given config.
func NewAgentStepClient(c config) *AgentStepClient {
	return &AgentStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentstep.Hooks(f(g(h())))`.
func (c *AgentStepClient) Use(hooks ...Hook) {
	c.hooks.AgentStep = append(c.hooks.AgentStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentstep.Intercept(f(g(h())))`.
func (c *AgentStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentStep = append(c.inters.AgentStep, interceptors...)
}

// Create returns a builder for creating a AgentStep entity.
func (c *AgentStepClient) Create() *AgentStepCreate {
	mutation := newAgentStepMutation(c.config, OpCreate)
	return &AgentStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentStep entities.
func (c *AgentStepClient) CreateBulk(builders ...*AgentStepCreate) *AgentStepCreateBulk {
	return &AgentStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentStepClient) MapCreateBulk(slice any, setFunc func(*AgentStepCreate, int)) *AgentStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentStepCreateBulk{err: fmt.Errorf("calling to AgentStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentStep.
func (c *AgentStepClient) Update() *AgentStepUpdate {
	mutation := newAgentStepMutation(c.config, OpUpdate)
	return &AgentStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentStepClient) UpdateOne(_m *AgentStep) *AgentStepUpdateOne {
	mutation := newAgentStepMutation(c.config, OpUpdateOne, withAgentStep(_m))
	return &AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentStepClient) UpdateOneID(id string) *AgentStepUpdateOne {
	mutation := newAgentStepMutation(c.config, OpUpdateOne, withAgentStepID(id))
	return &AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentStep.
func (c *AgentStepClient) Delete() *AgentStepDelete {
	mutation := newAgentStepMutation(c.config, OpDelete)
	return &AgentStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentStepClient) DeleteOne(_m *AgentStep) *AgentStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentStepClient) DeleteOneID(id string) *AgentStepDeleteOne {
	builder := c.Delete().Where(agentstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentStepDeleteOne{builder}
}

// Query returns a query builder for AgentStep.
func (c *AgentStepClient) Query() *AgentStepQuery {
	return &AgentStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentStep},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentStep entity by its id.
func (c *AgentStepClient) Get(ctx context.Context, id string) (*AgentStep, error) {
	return c.Query().Where(agentstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentStepClient) GetX(ctx context.Context, id string) *AgentStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a AgentStep.
func (c *AgentStepClient) QueryRun(_m *AgentStep) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentstep.Table, agentstep.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentstep.RunTable, agentstep.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentStepClient) Hooks() []Hook {
	return c.hooks.AgentStep
}

// Interceptors returns the client interceptors.
func (c *AgentStepClient) Interceptors() []Interceptor {
	return c.inters.AgentStep
}

func (c *AgentStepClient) mutate(ctx context.Context, m *AgentStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentStep mutation op: %q", m.Op())
	}
}

// GuardrailEventClient is a client for the GuardrailEvent schema.
type GuardrailEventClient struct {
	config
}

// NewGuardrailEventClient returns a client for the GuardrailEvent from the given config.
func NewGuardrailEventClient(c config) *GuardrailEventClient {
	return &GuardrailEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `guardrailevent.Hooks(f(g(h())))`.
func (c *GuardrailEventClient) Use(hooks ...Hook) {
	c.hooks.GuardrailEvent = append(c.hooks.GuardrailEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `guardrailevent.Intercept(f(g(h())))`.
func (c *GuardrailEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.GuardrailEvent = append(c.inters.GuardrailEvent, interceptors...)
}

// Create returns a builder for creating a GuardrailEvent entity.
func (c *GuardrailEventClient) Create() *GuardrailEventCreate {
	mutation := newGuardrailEventMutation(c.config, OpCreate)
	return &GuardrailEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GuardrailEvent entities.
func (c *GuardrailEventClient) CreateBulk(builders ...*GuardrailEventCreate) *GuardrailEventCreateBulk {
	return &GuardrailEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GuardrailEventClient) MapCreateBulk(slice any, setFunc func(*GuardrailEventCreate, int)) *GuardrailEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GuardrailEventCreateBulk{err: fmt.Errorf("calling to GuardrailEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GuardrailEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GuardrailEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GuardrailEvent.
func (c *GuardrailEventClient) Update() *GuardrailEventUpdate {
	mutation := newGuardrailEventMutation(c.config, OpUpdate)
	return &GuardrailEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GuardrailEventClient) UpdateOne(_m *GuardrailEvent) *GuardrailEventUpdateOne {
	mutation := newGuardrailEventMutation(c.config, OpUpdateOne, withGuardrailEvent(_m))
	return &GuardrailEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GuardrailEventClient) UpdateOneID(id string) *GuardrailEventUpdateOne {
	mutation := newGuardrailEventMutation(c.config, OpUpdateOne, withGuardrailEventID(id))
	return &GuardrailEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GuardrailEvent.
func (c *GuardrailEventClient) Delete() *GuardrailEventDelete {
	mutation := newGuardrailEventMutation(c.config, OpDelete)
	return &GuardrailEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GuardrailEventClient) DeleteOne(_m *GuardrailEvent) *GuardrailEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GuardrailEventClient) DeleteOneID(id string) *GuardrailEventDeleteOne {
	builder := c.Delete().Where(guardrailevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GuardrailEventDeleteOne{builder}
}

// Query returns a query builder for GuardrailEvent.
func (c *GuardrailEventClient) Query() *GuardrailEventQuery {
	return &GuardrailEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGuardrailEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a GuardrailEvent entity by its id.
func (c *GuardrailEventClient) Get(ctx context.Context, id string) (*GuardrailEvent, error) {
	return c.Query().Where(guardrailevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GuardrailEventClient) GetX(ctx context.Context, id string) *GuardrailEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a GuardrailEvent.
func (c *GuardrailEventClient) QueryRun(_m *GuardrailEvent) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(guardrailevent.Table, guardrailevent.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, guardrailevent.RunTable, guardrailevent.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GuardrailEventClient) Hooks() []Hook {
	return c.hooks.GuardrailEvent
}

// Interceptors returns the client interceptors.
func (c *GuardrailEventClient) Interceptors() []Interceptor {
	return c.inters.GuardrailEvent
}

func (c *GuardrailEventClient) mutate(ctx context.Context, m *GuardrailEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GuardrailEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GuardrailEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GuardrailEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GuardrailEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GuardrailEvent mutation op: %q", m.Op())
	}
}

// RCAReportClient is a client for the RCAReport schema.
type RCAReportClient struct {
	config
}

// NewRCAReportClient returns a client for the RCAReport from the given config.
func NewRCAReportClient(c config) *RCAReportClient {
	return &RCAReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rcareport.Hooks(f(g(h())))`.
func (c *RCAReportClient) Use(hooks ...Hook) {
	c.hooks.RCAReport = append(c.hooks.RCAReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rcareport.Intercept(f(g(h())))`.
func (c *RCAReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.RCAReport = append(c.inters.RCAReport, interceptors...)
}

// Create returns a builder for creating a RCAReport entity.
func (c *RCAReportClient) Create() *RCAReportCreate {
	mutation := newRCAReportMutation(c.config, OpCreate)
	return &RCAReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RCAReport entities.
func (c *RCAReportClient) CreateBulk(builders ...*RCAReportCreate) *RCAReportCreateBulk {
	return &RCAReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RCAReportClient) MapCreateBulk(slice any, setFunc func(*RCAReportCreate, int)) *RCAReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RCAReportCreateBulk{err: fmt.Errorf("calling to RCAReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RCAReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RCAReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RCAReport.
func (c *RCAReportClient) Update() *RCAReportUpdate {
	mutation := newRCAReportMutation(c.config, OpUpdate)
	return &RCAReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RCAReportClient) UpdateOne(_m *RCAReport) *RCAReportUpdateOne {
	mutation := newRCAReportMutation(c.config, OpUpdateOne, withRCAReport(_m))
	return &RCAReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RCAReportClient) UpdateOneID(id string) *RCAReportUpdateOne {
	mutation := newRCAReportMutation(c.config, OpUpdateOne, withRCAReportID(id))
	return &RCAReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RCAReport.
func (c *RCAReportClient) Delete() *RCAReportDelete {
	mutation := newRCAReportMutation(c.config, OpDelete)
	return &RCAReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RCAReportClient) DeleteOne(_m *RCAReport) *RCAReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RCAReportClient) DeleteOneID(id string) *RCAReportDeleteOne {
	builder := c.Delete().Where(rcareport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RCAReportDeleteOne{builder}
}

// Query returns a query builder for RCAReport.
func (c *RCAReportClient) Query() *RCAReportQuery {
	return &RCAReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRCAReport},
		inters: c.Interceptors(),
	}
}

// Get returns a RCAReport entity by its id.
func (c *RCAReportClient) Get(ctx context.Context, id string) (*RCAReport, error) {
	return c.Query().Where(rcareport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RCAReportClient) GetX(ctx context.Context, id string) *RCAReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRcaRun queries the rca_run edge of a RCAReport.
func (c *RCAReportClient) QueryRcaRun(_m *RCAReport) *RCARunQuery {
	query := (&RCARunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rcareport.Table, rcareport.FieldID, id),
			sqlgraph.To(rcarun.Table, rcarun.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, rcareport.RcaRunTable, rcareport.RcaRunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RCAReportClient) Hooks() []Hook {
	return c.hooks.RCAReport
}

// Interceptors returns the client interceptors.
func (c *RCAReportClient) Interceptors() []Interceptor {
	return c.inters.RCAReport
}

func (c *RCAReportClient) mutate(ctx context.Context, m *RCAReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RCAReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RCAReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RCAReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RCAReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RCAReport mutation op: %q", m.Op())
	}
}

// RCARunClient is a client for the RCARun schema.
type RCARunClient struct {
	config
}

// NewRCARunClient returns a client for the RCARun from the given config.
func NewRCARunClient(c config) *RCARunClient {
	return &RCARunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rcarun.Hooks(f(g(h())))`.
func (c *RCARunClient) Use(hooks ...Hook) {
	c.hooks.RCARun = append(c.hooks.RCARun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rcarun.Intercept(f(g(h())))`.
func (c *RCARunClient) Intercept(interceptors ...Interceptor) {
	c.inters.RCARun = append(c.inters.RCARun, interceptors...)
}

// Create returns a builder for creating a RCARun entity.
func (c *RCARunClient) Create() *RCARunCreate {
	mutation := newRCARunMutation(c.config, OpCreate)
	return &RCARunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RCARun entities.
func (c *RCARunClient) CreateBulk(builders ...*RCARunCreate) *RCARunCreateBulk {
	return &RCARunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RCARunClient) MapCreateBulk(slice any, setFunc func(*RCARunCreate, int)) *RCARunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RCARunCreateBulk{err: fmt.Errorf("calling to RCARunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RCARunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RCARunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RCARun.
func (c *RCARunClient) Update() *RCARunUpdate {
	mutation := newRCARunMutation(c.config, OpUpdate)
	return &RCARunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RCARunClient) UpdateOne(_m *RCARun) *RCARunUpdateOne {
	mutation := newRCARunMutation(c.config, OpUpdateOne, withRCARun(_m))
	return &RCARunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RCARunClient) UpdateOneID(id string) *RCARunUpdateOne {
	mutation := newRCARunMutation(c.config, OpUpdateOne, withRCARunID(id))
	return &RCARunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RCARun.
func (c *RCARunClient) Delete() *RCARunDelete {
	mutation := newRCARunMutation(c.config, OpDelete)
	return &RCARunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RCARunClient) DeleteOne(_m *RCARun) *RCARunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RCARunClient) DeleteOneID(id string) *RCARunDeleteOne {
	builder := c.Delete().Where(rcarun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RCARunDeleteOne{builder}
}

// Query returns a query builder for RCARun.
func (c *RCARunClient) Query() *RCARunQuery {
	return &RCARunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRCARun},
		inters: c.Interceptors(),
	}
}

// Get returns a RCARun entity by its id.
func (c *RCARunClient) Get(ctx context.Context, id string) (*RCARun, error) {
	return c.Query().Where(rcarun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RCARunClient) GetX(ctx context.Context, id string) *RCARun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RCARun.
func (c *RCARunClient) QueryRun(_m *RCARun) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rcarun.Table, rcarun.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, rcarun.RunTable, rcarun.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReport queries the report edge of a RCARun.
func (c *RCARunClient) QueryReport(_m *RCARun) *RCAReportQuery {
	query := (&RCAReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rcarun.Table, rcarun.FieldID, id),
			sqlgraph.To(rcareport.Table, rcareport.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, rcarun.ReportTable, rcarun.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RCARunClient) Hooks() []Hook {
	return c.hooks.RCARun
}

// Interceptors returns the client interceptors.
func (c *RCARunClient) Interceptors() []Interceptor {
	return c.inters.RCARun
}

func (c *RCARunClient) mutate(ctx context.Context, m *RCARunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RCARunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RCARunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RCARunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RCARunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RCARun mutation op: %q", m.Op())
	}
}

// ToolCallClient is a client for the ToolCall schema.
type ToolCallClient struct {
	config
}

// NewToolCallClient returns a client for the ToolCall from the given config.
func NewToolCallClient(c config) *ToolCallClient {
	return &ToolCallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolcall.Hooks(f(g(h())))`.
func (c *ToolCallClient) Use(hooks ...Hook) {
	c.hooks.ToolCall = append(c.hooks.ToolCall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolcall.Intercept(f(g(h())))`.
func (c *ToolCallClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolCall = append(c.inters.ToolCall, interceptors...)
}

// Create returns a builder for creating a ToolCall entity.
func (c *ToolCallClient) Create() *ToolCallCreate {
	mutation := newToolCallMutation(c.config, OpCreate)
	return &ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolCall entities.
func (c *ToolCallClient) CreateBulk(builders ...*ToolCallCreate) *ToolCallCreateBulk {
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolCallClient) MapCreateBulk(slice any, setFunc func(*ToolCallCreate, int)) *ToolCallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolCallCreateBulk{err: fmt.Errorf("calling to ToolCallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolCallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolCall.
func (c *ToolCallClient) Update() *ToolCallUpdate {
	mutation := newToolCallMutation(c.config, OpUpdate)
	return &ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolCallClient) UpdateOne(_m *ToolCall) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCall(_m))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolCallClient) UpdateOneID(id string) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCallID(id))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolCall.
func (c *ToolCallClient) Delete() *ToolCallDelete {
	mutation := newToolCallMutation(c.config, OpDelete)
	return &ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolCallClient) DeleteOne(_m *ToolCall) *ToolCallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolCallClient) DeleteOneID(id string) *ToolCallDeleteOne {
	builder := c.Delete().Where(toolcall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolCallDeleteOne{builder}
}

// Query returns a query builder for ToolCall.
func (c *ToolCallClient) Query() *ToolCallQuery {
	return &ToolCallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolCall},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolCall entity by its id.
func (c *ToolCallClient) Get(ctx context.Context, id string) (*ToolCall, error) {
	return c.Query().Where(toolcall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolCallClient) GetX(ctx context.Context, id string) *ToolCall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a ToolCall.
func (c *ToolCallClient) QueryRun(_m *ToolCall) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolcall.Table, toolcall.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, toolcall.RunTable, toolcall.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ToolCallClient) Hooks() []Hook {
	return c.hooks.ToolCall
}

// Interceptors returns the client interceptors.
func (c *ToolCallClient) Interceptors() []Interceptor {
	return c.inters.ToolCall
}

func (c *ToolCallClient) mutate(ctx context.Context, m *ToolCallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolCall mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentRun, AgentStep, GuardrailEvent, RCAReport, RCARun, ToolCall []ent.Hook
	}
	inters struct {
		AgentRun, AgentStep, GuardrailEvent, RCAReport, RCARun,
		ToolCall []ent.Interceptor
	}
)
