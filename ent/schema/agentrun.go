package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRun holds the schema definition for the AgentRun entity — the root
// telemetry record for a single agent execution.
type AgentRun struct {
	ent.Schema
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("agent_name"),
		field.String("agent_version"),
		field.String("model"),
		field.String("environment").
			Comment("prod, staging, or dev"),
		field.Enum("status").
			Values("success", "failure"),
		field.Time("started_at"),
		field.Time("ended_at"),
		field.String("error_type").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.String("trace_id").
			Optional().
			Nillable(),
		field.JSON("correlation_ids", []string{}).
			Optional(),
		field.JSON("cost", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentRun.
func (AgentRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", AgentStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tool_calls", ToolCall.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("guardrail_events", GuardrailEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("rca_runs", RCARun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_name"),
		index.Fields("environment"),
		index.Fields("status"),
		index.Fields("created_at"),
		index.Fields("status", "created_at"),
	}
}
