package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolCall holds the schema definition for the ToolCall entity — an external
// action invoked during a step. step_id is a plain string (not a foreign
// key): the timeline resolves it best-effort, dangling references are
// tolerated.
type ToolCall struct {
	ent.Schema
}

// Fields of the ToolCall.
func (ToolCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("call_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("step_id").
			Optional(),
		field.String("tool_name"),
		field.Enum("status").
			Values("success", "failure"),
		field.JSON("args_json", map[string]interface{}{}).
			Optional(),
		field.String("args_hash").
			Optional(),
		field.Text("result_summary").
			Optional(),
		field.String("error_class").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Int("status_code").
			Optional().
			Nillable(),
		field.Int("latency_ms").
			Default(0).
			NonNegative(),
		field.Int("retries").
			Default(0).
			NonNegative(),
	}
}

// Edges of the ToolCall.
func (ToolCall) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", AgentRun.Type).
			Ref("tool_calls").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ToolCall.
func (ToolCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("tool_name"),
		index.Fields("status"),
	}
}
