// Code generated by ent, DO NOT EDIT.

package rcareport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the rcareport type in the database.
	Label = "rca_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "report_id"
	// FieldRcaRunID holds the string denoting the rca_run_id field in the database.
	FieldRcaRunID = "rca_run_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldReportJSON holds the string denoting the report_json field in the database.
	FieldReportJSON = "report_json"
	// FieldInsufficientEvidence holds the string denoting the insufficient_evidence field in the database.
	FieldInsufficientEvidence = "insufficient_evidence"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// EdgeRcaRun holds the string denoting the rca_run edge name in mutations.
	EdgeRcaRun = "rca_run"
	// RCARunFieldID holds the string denoting the ID field of the RCARun.
	RCARunFieldID = "rca_run_id"
	// Table holds the table name of the rcareport in the database.
	Table = "rca_reports"
	// RcaRunTable is the table that holds the rca_run relation/edge.
	RcaRunTable = "rca_reports"
	// RcaRunInverseTable is the table name for the RCARun entity.
	// It exists in this package in order to avoid circular dependency with the "rcarun" package.
	RcaRunInverseTable = "rca_runs"
	// RcaRunColumn is the table column denoting the rca_run relation/edge.
	RcaRunColumn = "rca_run_id"
)

// Columns holds all SQL columns for rcareport fields.
var Columns = []string{
	FieldID,
	FieldRcaRunID,
	FieldRunID,
	FieldReportJSON,
	FieldInsufficientEvidence,
	FieldCategory,
	FieldGeneratedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultInsufficientEvidence holds the default value on creation for the "insufficient_evidence" field.
	DefaultInsufficientEvidence bool
	// DefaultGeneratedAt holds the default value on creation for the "generated_at" field.
	DefaultGeneratedAt func() time.Time
)

// OrderOption defines the ordering options for the RCAReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRcaRunID orders the results by the rca_run_id field.
func ByRcaRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRcaRunID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByInsufficientEvidence orders the results by the insufficient_evidence field.
func ByInsufficientEvidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsufficientEvidence, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}

// ByRcaRunField orders the results by rca_run field.
func ByRcaRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRcaRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRcaRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RcaRunInverseTable, RCARunFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, RcaRunTable, RcaRunColumn),
	)
}
