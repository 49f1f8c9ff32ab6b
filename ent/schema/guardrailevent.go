package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GuardrailEvent holds the schema definition for the GuardrailEvent entity —
// a policy/validation signal raised during a run, optionally linked to a
// step or a tool call.
type GuardrailEvent struct {
	ent.Schema
}

// Fields of the GuardrailEvent.
func (GuardrailEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("step_id").
			Optional(),
		field.String("call_id").
			Optional(),
		field.Enum("type").
			Values("pii_redaction", "policy_block", "schema_validation", "other"),
		field.Text("message"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the GuardrailEvent.
func (GuardrailEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", AgentRun.Type).
			Ref("guardrail_events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the GuardrailEvent.
func (GuardrailEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("type"),
		index.Fields("run_id", "created_at"),
	}
}
