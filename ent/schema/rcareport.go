package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RCAReport holds the schema definition for the RCAReport entity — the
// persisted report document, exactly one per successful RCARun.
type RCAReport struct {
	ent.Schema
}

// Fields of the RCAReport.
func (RCAReport) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_id").
			Unique().
			Immutable(),
		field.String("rca_run_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.JSON("report_json", map[string]interface{}{}),
		field.Bool("insufficient_evidence").
			Default(false),
		field.String("category").
			Comment("Denormalized from report_json for filtering"),
		field.Time("generated_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RCAReport.
func (RCAReport) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("rca_run", RCARun.Type).
			Ref("report").
			Field("rca_run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RCAReport.
func (RCAReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("category"),
		index.Fields("insufficient_evidence"),
	}
}
