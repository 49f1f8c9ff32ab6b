// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentops/agentops/ent/rcareport"
	"github.com/agentops/agentops/ent/rcarun"
)

// RCAReport is the model entity for the RCAReport schema.
type RCAReport struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RcaRunID holds the value of the "rca_run_id" field.
	RcaRunID string `json:"rca_run_id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// ReportJSON holds the value of the "report_json" field.
	ReportJSON map[string]interface{} `json:"report_json,omitempty"`
	// InsufficientEvidence holds the value of the "insufficient_evidence" field.
	InsufficientEvidence bool `json:"insufficient_evidence,omitempty"`
	// Denormalized from report_json for filtering
	Category string `json:"category,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt time.Time `json:"generated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RCAReportQuery when eager-loading is set.
	Edges        RCAReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RCAReportEdges holds the relations/edges for other nodes in the graph.
type RCAReportEdges struct {
	// RcaRun holds the value of the rca_run edge.
	RcaRun *RCARun `json:"rca_run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RcaRunOrErr returns the RcaRun value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RCAReportEdges) RcaRunOrErr() (*RCARun, error) {
	if e.RcaRun != nil {
		return e.RcaRun, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: rcarun.Label}
	}
	return nil, &NotLoadedError{edge: "rca_run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RCAReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rcareport.FieldReportJSON:
			values[i] = new([]byte)
		case rcareport.FieldInsufficientEvidence:
			values[i] = new(sql.NullBool)
		case rcareport.FieldID, rcareport.FieldRcaRunID, rcareport.FieldRunID, rcareport.FieldCategory:
			values[i] = new(sql.NullString)
		case rcareport.FieldGeneratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RCAReport fields.
func (_m *RCAReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rcareport.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rcareport.FieldRcaRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rca_run_id", values[i])
			} else if value.Valid {
				_m.RcaRunID = value.String
			}
		case rcareport.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case rcareport.FieldReportJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field report_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ReportJSON); err != nil {
					return fmt.Errorf("unmarshal field report_json: %w", err)
				}
			}
		case rcareport.FieldInsufficientEvidence:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field insufficient_evidence", values[i])
			} else if value.Valid {
				_m.InsufficientEvidence = value.Bool
			}
		case rcareport.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case rcareport.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RCAReport.
// This includes values selected through modifiers, order, etc.
func (_m *RCAReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRcaRun queries the "rca_run" edge of the RCAReport entity.
func (_m *RCAReport) QueryRcaRun() *RCARunQuery {
	return NewRCAReportClient(_m.config).QueryRcaRun(_m)
}

// Update returns a builder for updating this RCAReport.
// Note that you need to call RCAReport.Unwrap() before calling this method if this RCAReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RCAReport) Update() *RCAReportUpdateOne {
	return NewRCAReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RCAReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RCAReport) Unwrap() *RCAReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RCAReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RCAReport) String() string {
	var builder strings.Builder
	builder.WriteString("RCAReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("rca_run_id=")
	builder.WriteString(_m.RcaRunID)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("report_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReportJSON))
	builder.WriteString(", ")
	builder.WriteString("insufficient_evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.InsufficientEvidence))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(_m.GeneratedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RCAReports is a parsable slice of RCAReport.
type RCAReports []*RCAReport
