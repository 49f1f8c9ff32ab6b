// Code generated by ent, DO NOT EDIT.

package rcareport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentops/agentops/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldContainsFold(FieldID, id))
}

// RcaRunID applies equality check predicate on the "rca_run_id" field. It's identical to RcaRunIDEQ.
func RcaRunID(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEQ(FieldRcaRunID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEQ(FieldRunID, v))
}

// InsufficientEvidence applies equality check predicate on the "insufficient_evidence" field. It's identical to InsufficientEvidenceEQ.
func InsufficientEvidence(v bool) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEQ(FieldInsufficientEvidence, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEQ(FieldCategory, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEQ(FieldGeneratedAt, v))
}

// RcaRunIDEQ applies the EQ predicate on the "rca_run_id" field.
func RcaRunIDEQ(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEQ(FieldRcaRunID, v))
}

// RcaRunIDNEQ applies the NEQ predicate on the "rca_run_id" field.
func RcaRunIDNEQ(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldNEQ(FieldRcaRunID, v))
}

// RcaRunIDIn applies the In predicate on the "rca_run_id" field.
func RcaRunIDIn(vs ...string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldIn(FieldRcaRunID, vs...))
}

// RcaRunIDNotIn applies the NotIn predicate on the "rca_run_id" field.
func RcaRunIDNotIn(vs ...string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldNotIn(FieldRcaRunID, vs...))
}

// RcaRunIDGT applies the GT predicate on the "rca_run_id" field.
func RcaRunIDGT(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldGT(FieldRcaRunID, v))
}

// RcaRunIDGTE applies the GTE predicate on the "rca_run_id" field.
func RcaRunIDGTE(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldGTE(FieldRcaRunID, v))
}

// RcaRunIDLT applies the LT predicate on the "rca_run_id" field.
func RcaRunIDLT(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldLT(FieldRcaRunID, v))
}

// RcaRunIDLTE applies the LTE predicate on the "rca_run_id" field.
func RcaRunIDLTE(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldLTE(FieldRcaRunID, v))
}

// RcaRunIDContains applies the Contains predicate on the "rca_run_id" field.
func RcaRunIDContains(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldContains(FieldRcaRunID, v))
}

// RcaRunIDHasPrefix applies the HasPrefix predicate on the "rca_run_id" field.
func RcaRunIDHasPrefix(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldHasPrefix(FieldRcaRunID, v))
}

// RcaRunIDHasSuffix applies the HasSuffix predicate on the "rca_run_id" field.
func RcaRunIDHasSuffix(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldHasSuffix(FieldRcaRunID, v))
}

// RcaRunIDEqualFold applies the EqualFold predicate on the "rca_run_id" field.
func RcaRunIDEqualFold(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEqualFold(FieldRcaRunID, v))
}

// RcaRunIDContainsFold applies the ContainsFold predicate on the "rca_run_id" field.
func RcaRunIDContainsFold(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldContainsFold(FieldRcaRunID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldContainsFold(FieldRunID, v))
}

// InsufficientEvidenceEQ applies the EQ predicate on the "insufficient_evidence" field.
func InsufficientEvidenceEQ(v bool) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEQ(FieldInsufficientEvidence, v))
}

// InsufficientEvidenceNEQ applies the NEQ predicate on the "insufficient_evidence" field.
func InsufficientEvidenceNEQ(v bool) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldNEQ(FieldInsufficientEvidence, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldContainsFold(FieldCategory, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.RCAReport {
	return predicate.RCAReport(sql.FieldLTE(FieldGeneratedAt, v))
}

// HasRcaRun applies the HasEdge predicate on the "rca_run" edge.
func HasRcaRun() predicate.RCAReport {
	return predicate.RCAReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RcaRunTable, RcaRunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRcaRunWith applies the HasEdge predicate on the "rca_run" edge with a given conditions (other predicates).
func HasRcaRunWith(preds ...predicate.RCARun) predicate.RCAReport {
	return predicate.RCAReport(func(s *sql.Selector) {
		step := newRcaRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RCAReport) predicate.RCAReport {
	return predicate.RCAReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RCAReport) predicate.RCAReport {
	return predicate.RCAReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RCAReport) predicate.RCAReport {
	return predicate.RCAReport(sql.NotPredicates(p))
}
