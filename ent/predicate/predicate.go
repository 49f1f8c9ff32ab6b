// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentRun is the predicate function for agentrun builders.
type AgentRun func(*sql.Selector)

// AgentStep is the predicate function for agentstep builders.
type AgentStep func(*sql.Selector)

// GuardrailEvent is the predicate function for guardrailevent builders.
type GuardrailEvent func(*sql.Selector)

// RCAReport is the predicate function for rcareport builders.
type RCAReport func(*sql.Selector)

// RCARun is the predicate function for rcarun builders.
type RCARun func(*sql.Selector)

// ToolCall is the predicate function for toolcall builders.
type ToolCall func(*sql.Selector)
