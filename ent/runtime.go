// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agentops/agentops/ent/agentrun"
	"github.com/agentops/agentops/ent/agentstep"
	"github.com/agentops/agentops/ent/guardrailevent"
	"github.com/agentops/agentops/ent/rcareport"
	"github.com/agentops/agentops/ent/rcarun"
	"github.com/agentops/agentops/ent/schema"
	"github.com/agentops/agentops/ent/toolcall"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentrunFields := schema.AgentRun{}.Fields()
	_ = agentrunFields
	// agentrunDescCreatedAt is the schema descriptor for created_at field.
	agentrunDescCreatedAt := agentrunFields[13].Descriptor()
	// agentrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentrun.DefaultCreatedAt = agentrunDescCreatedAt.Default.(func() time.Time)
	agentstepFields := schema.AgentStep{}.Fields()
	_ = agentstepFields
	// agentstepDescLatencyMs is the schema descriptor for latency_ms field.
	agentstepDescLatencyMs := agentstepFields[6].Descriptor()
	// agentstep.LatencyMsValidator is a validator for the "latency_ms" field. It is called by the builders before save.
	agentstep.LatencyMsValidator = agentstepDescLatencyMs.Validators[0].(func(int) error)
	// agentstepDescRetries is the schema descriptor for retries field.
	agentstepDescRetries := agentstepFields[7].Descriptor()
	// agentstep.DefaultRetries holds the default value on creation for the retries field.
	agentstep.DefaultRetries = agentstepDescRetries.Default.(int)
	// agentstep.RetriesValidator is a validator for the "retries" field. It is called by the builders before save.
	agentstep.RetriesValidator = agentstepDescRetries.Validators[0].(func(int) error)
	guardraileventFields := schema.GuardrailEvent{}.Fields()
	_ = guardraileventFields
	// guardraileventDescCreatedAt is the schema descriptor for created_at field.
	guardraileventDescCreatedAt := guardraileventFields[6].Descriptor()
	// guardrailevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	guardrailevent.DefaultCreatedAt = guardraileventDescCreatedAt.Default.(func() time.Time)
	rcareportFields := schema.RCAReport{}.Fields()
	_ = rcareportFields
	// rcareportDescInsufficientEvidence is the schema descriptor for insufficient_evidence field.
	rcareportDescInsufficientEvidence := rcareportFields[4].Descriptor()
	// rcareport.DefaultInsufficientEvidence holds the default value on creation for the insufficient_evidence field.
	rcareport.DefaultInsufficientEvidence = rcareportDescInsufficientEvidence.Default.(bool)
	// rcareportDescGeneratedAt is the schema descriptor for generated_at field.
	rcareportDescGeneratedAt := rcareportFields[6].Descriptor()
	// rcareport.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	rcareport.DefaultGeneratedAt = rcareportDescGeneratedAt.Default.(func() time.Time)
	rcarunFields := schema.RCARun{}.Fields()
	_ = rcarunFields
	// rcarunDescStep is the schema descriptor for step field.
	rcarunDescStep := rcarunFields[3].Descriptor()
	// rcarun.DefaultStep holds the default value on creation for the step field.
	rcarun.DefaultStep = rcarunDescStep.Default.(string)
	// rcarunDescPct is the schema descriptor for pct field.
	rcarunDescPct := rcarunFields[4].Descriptor()
	// rcarun.DefaultPct holds the default value on creation for the pct field.
	rcarun.DefaultPct = rcarunDescPct.Default.(int)
	// rcarun.PctValidator is a validator for the "pct" field. It is called by the builders before save.
	rcarun.PctValidator = rcarunDescPct.Validators[0].(func(int) error)
	// rcarunDescMessage is the schema descriptor for message field.
	rcarunDescMessage := rcarunFields[5].Descriptor()
	// rcarun.DefaultMessage holds the default value on creation for the message field.
	rcarun.DefaultMessage = rcarunDescMessage.Default.(string)
	// rcarunDescCreatedAt is the schema descriptor for created_at field.
	rcarunDescCreatedAt := rcarunFields[6].Descriptor()
	// rcarun.DefaultCreatedAt holds the default value on creation for the created_at field.
	rcarun.DefaultCreatedAt = rcarunDescCreatedAt.Default.(func() time.Time)
	toolcallFields := schema.ToolCall{}.Fields()
	_ = toolcallFields
	// toolcallDescLatencyMs is the schema descriptor for latency_ms field.
	toolcallDescLatencyMs := toolcallFields[11].Descriptor()
	// toolcall.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	toolcall.DefaultLatencyMs = toolcallDescLatencyMs.Default.(int)
	// toolcall.LatencyMsValidator is a validator for the "latency_ms" field. It is called by the builders before save.
	toolcall.LatencyMsValidator = toolcallDescLatencyMs.Validators[0].(func(int) error)
	// toolcallDescRetries is the schema descriptor for retries field.
	toolcallDescRetries := toolcallFields[12].Descriptor()
	// toolcall.DefaultRetries holds the default value on creation for the retries field.
	toolcall.DefaultRetries = toolcallDescRetries.Default.(int)
	// toolcall.RetriesValidator is a validator for the "retries" field. It is called by the builders before save.
	toolcall.RetriesValidator = toolcallDescRetries.Validators[0].(func(int) error)
}
