package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentStep holds the schema definition for the AgentStep entity — a phase of
// an agent run (planning, execution, retrieval, ...).
type AgentStep struct {
	ent.Schema
}

// Fields of the AgentStep.
func (AgentStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("name"),
		field.Enum("status").
			Values("success", "failure"),
		field.Time("started_at"),
		field.Time("ended_at"),
		field.Int("latency_ms").
			NonNegative(),
		field.Int("retries").
			Default(0).
			NonNegative(),
		field.Text("input_summary").
			Comment("Bounded at 2000 chars by payload validation"),
		field.Text("output_summary"),
	}
}

// Edges of the AgentStep.
func (AgentStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", AgentRun.Type).
			Ref("steps").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentStep.
func (AgentStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("status"),
		index.Fields("run_id", "started_at"),
	}
}
