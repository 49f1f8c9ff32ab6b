package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RCARun holds the schema definition for the RCARun entity — one analysis
// job over an agent run. The rows double as the job queue: workers claim
// "queued" rows with FOR UPDATE SKIP LOCKED.
type RCARun struct {
	ent.Schema
}

// Fields of the RCARun.
func (RCARun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rca_run_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Enum("status").
			Values("queued", "running", "done", "error").
			Default("queued"),
		field.String("step").
			Default("").
			Comment("Progress step label"),
		field.Int("pct").
			Default(0).
			Range(0, 100),
		field.String("message").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Worker replica that claimed the job"),
	}
}

// Edges of the RCARun.
func (RCARun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", AgentRun.Type).
			Ref("rca_runs").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("report", RCAReport.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the RCARun.
func (RCARun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("run_id", "status", "created_at"),
	}
}
