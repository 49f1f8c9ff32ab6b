// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentRunsColumns holds the columns for the "agent_runs" table.
	AgentRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "agent_version", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "environment", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "failure"}},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime},
		{Name: "error_type", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "correlation_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "cost", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentRunsTable holds the schema information for the "agent_runs" table.
	AgentRunsTable = &schema.Table{
		Name:       "agent_runs",
		Columns:    AgentRunsColumns,
		PrimaryKey: []*schema.Column{AgentRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentrun_agent_name",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[1]},
			},
			{
				Name:    "agentrun_environment",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[4]},
			},
			{
				Name:    "agentrun_status",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[5]},
			},
			{
				Name:    "agentrun_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[13]},
			},
			{
				Name:    "agentrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[5], AgentRunsColumns[13]},
			},
		},
	}
	// AgentStepsColumns holds the columns for the "agent_steps" table.
	AgentStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "failure"}},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime},
		{Name: "latency_ms", Type: field.TypeInt},
		{Name: "retries", Type: field.TypeInt, Default: 0},
		{Name: "input_summary", Type: field.TypeString, Size: 2147483647},
		{Name: "output_summary", Type: field.TypeString, Size: 2147483647},
		{Name: "run_id", Type: field.TypeString},
	}
	// AgentStepsTable holds the schema information for the "agent_steps" table.
	AgentStepsTable = &schema.Table{
		Name:       "agent_steps",
		Columns:    AgentStepsColumns,
		PrimaryKey: []*schema.Column{AgentStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_steps_agent_runs_steps",
				Columns:    []*schema.Column{AgentStepsColumns[9]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentstep_run_id",
				Unique:  false,
				Columns: []*schema.Column{AgentStepsColumns[9]},
			},
			{
				Name:    "agentstep_status",
				Unique:  false,
				Columns: []*schema.Column{AgentStepsColumns[2]},
			},
			{
				Name:    "agentstep_run_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentStepsColumns[9], AgentStepsColumns[3]},
			},
		},
	}
	// GuardrailEventsColumns holds the columns for the "guardrail_events" table.
	GuardrailEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "call_id", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"pii_redaction", "policy_block", "schema_validation", "other"}},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// GuardrailEventsTable holds the schema information for the "guardrail_events" table.
	GuardrailEventsTable = &schema.Table{
		Name:       "guardrail_events",
		Columns:    GuardrailEventsColumns,
		PrimaryKey: []*schema.Column{GuardrailEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "guardrail_events_agent_runs_guardrail_events",
				Columns:    []*schema.Column{GuardrailEventsColumns[6]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "guardrailevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{GuardrailEventsColumns[6]},
			},
			{
				Name:    "guardrailevent_type",
				Unique:  false,
				Columns: []*schema.Column{GuardrailEventsColumns[3]},
			},
			{
				Name:    "guardrailevent_run_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{GuardrailEventsColumns[6], GuardrailEventsColumns[5]},
			},
		},
	}
	// RcaReportsColumns holds the columns for the "rca_reports" table.
	RcaReportsColumns = []*schema.Column{
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "report_json", Type: field.TypeJSON},
		{Name: "insufficient_evidence", Type: field.TypeBool, Default: false},
		{Name: "category", Type: field.TypeString},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "rca_run_id", Type: field.TypeString, Unique: true},
	}
	// RcaReportsTable holds the schema information for the "rca_reports" table.
	RcaReportsTable = &schema.Table{
		Name:       "rca_reports",
		Columns:    RcaReportsColumns,
		PrimaryKey: []*schema.Column{RcaReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rca_reports_rca_runs_report",
				Columns:    []*schema.Column{RcaReportsColumns[6]},
				RefColumns: []*schema.Column{RcaRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "rcareport_run_id",
				Unique:  false,
				Columns: []*schema.Column{RcaReportsColumns[1]},
			},
			{
				Name:    "rcareport_category",
				Unique:  false,
				Columns: []*schema.Column{RcaReportsColumns[4]},
			},
			{
				Name:    "rcareport_insufficient_evidence",
				Unique:  false,
				Columns: []*schema.Column{RcaReportsColumns[3]},
			},
		},
	}
	// RcaRunsColumns holds the columns for the "rca_runs" table.
	RcaRunsColumns = []*schema.Column{
		{Name: "rca_run_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "done", "error"}, Default: "queued"},
		{Name: "step", Type: field.TypeString, Default: ""},
		{Name: "pct", Type: field.TypeInt, Default: 0},
		{Name: "message", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// RcaRunsTable holds the schema information for the "rca_runs" table.
	RcaRunsTable = &schema.Table{
		Name:       "rca_runs",
		Columns:    RcaRunsColumns,
		PrimaryKey: []*schema.Column{RcaRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rca_runs_agent_runs_rca_runs",
				Columns:    []*schema.Column{RcaRunsColumns[10]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "rcarun_run_id",
				Unique:  false,
				Columns: []*schema.Column{RcaRunsColumns[10]},
			},
			{
				Name:    "rcarun_status",
				Unique:  false,
				Columns: []*schema.Column{RcaRunsColumns[1]},
			},
			{
				Name:    "rcarun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RcaRunsColumns[1], RcaRunsColumns[5]},
			},
			{
				Name:    "rcarun_run_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RcaRunsColumns[10], RcaRunsColumns[1], RcaRunsColumns[5]},
			},
		},
	}
	// ToolCallsColumns holds the columns for the "tool_calls" table.
	ToolCallsColumns = []*schema.Column{
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "failure"}},
		{Name: "args_json", Type: field.TypeJSON, Nullable: true},
		{Name: "args_hash", Type: field.TypeString, Nullable: true},
		{Name: "result_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_class", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status_code", Type: field.TypeInt, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt, Default: 0},
		{Name: "retries", Type: field.TypeInt, Default: 0},
		{Name: "run_id", Type: field.TypeString},
	}
	// ToolCallsTable holds the schema information for the "tool_calls" table.
	ToolCallsTable = &schema.Table{
		Name:       "tool_calls",
		Columns:    ToolCallsColumns,
		PrimaryKey: []*schema.Column{ToolCallsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tool_calls_agent_runs_tool_calls",
				Columns:    []*schema.Column{ToolCallsColumns[12]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "toolcall_run_id",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[12]},
			},
			{
				Name:    "toolcall_tool_name",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[2]},
			},
			{
				Name:    "toolcall_status",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentRunsTable,
		AgentStepsTable,
		GuardrailEventsTable,
		RcaReportsTable,
		RcaRunsTable,
		ToolCallsTable,
	}
)

func init() {
	AgentStepsTable.ForeignKeys[0].RefTable = AgentRunsTable
	GuardrailEventsTable.ForeignKeys[0].RefTable = AgentRunsTable
	RcaReportsTable.ForeignKeys[0].RefTable = RcaRunsTable
	RcaRunsTable.ForeignKeys[0].RefTable = AgentRunsTable
	ToolCallsTable.ForeignKeys[0].RefTable = AgentRunsTable
}
