// Package rca implements the root-cause analysis pipeline: deterministic
// failure classification, report assembly, and the orchestrator that drives
// an RCA run from queued to done.
package rca

import (
	"strings"

	"github.com/agentops/agentops/ent/guardrailevent"
	"github.com/agentops/agentops/ent/toolcall"
	"github.com/agentops/agentops/pkg/models"
	"github.com/agentops/agentops/pkg/services"
)

var schemaKeywords = []string{"validation", "schema", "unexpected", "missing required"}

var permissionKeywords = []string{"permission", "unauthorized", "forbidden", "access denied"}

// Classify assigns a failure category from telemetry patterns. The rules
// form an ordered cascade: the first match wins, evaluated per failed tool
// call in order, then guardrails, then step and run-level signals.
func Classify(bundle *services.EvidenceBundle) models.Category {
	for _, tc := range bundle.ToolCalls {
		if tc.Status != toolcall.StatusFailure {
			continue
		}
		errClass := deref(tc.ErrorClass)
		errMsg := deref(tc.ErrorMessage)
		code := 0
		if tc.StatusCode != nil {
			code = *tc.StatusCode
		}

		if code == 429 || containsFold(errMsg, "rate limit") {
			return models.CategoryRateLimited
		}

		if containsFold(errClass, "schema") {
			return models.CategoryToolSchemaMismatch
		}
		if containsAnyFold(errMsg, schemaKeywords) {
			return models.CategoryToolSchemaMismatch
		}

		if code == 401 || code == 403 || containsAnyFold(errMsg, permissionKeywords) {
			return models.CategoryToolPermission
		}

		if containsFold(errClass, "timeout") || containsFold(errMsg, "timeout") {
			return models.CategoryTimeout
		}
	}

	for _, ev := range bundle.Guardrails {
		if ev.Type == guardrailevent.TypeSchemaValidation {
			return models.CategoryToolSchemaMismatch
		}
	}

	maxRetries := 0
	for _, step := range bundle.Steps {
		if step.Retries > maxRetries {
			maxRetries = step.Retries
		}
	}
	if maxRetries >= 3 {
		return models.CategoryPlannerLoop
	}

	if len(bundle.ToolCalls) == 0 && bundle.Run.ErrorType == nil {
		for _, step := range bundle.Steps {
			name := strings.ToLower(step.Name)
			if strings.Contains(name, "retriev") || strings.Contains(name, "search") {
				if len(step.OutputSummary) < 50 {
					return models.CategoryRetrievalEmpty
				}
			}
		}
	}

	if bundle.Run.ErrorType != nil && containsFold(*bundle.Run.ErrorType, "timeout") {
		return models.CategoryTimeout
	}

	return models.CategoryUnknown
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func containsFold(haystack, needle string) bool {
	if haystack == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}

func containsAnyFold(haystack string, needles []string) bool {
	for _, needle := range needles {
		if containsFold(haystack, needle) {
			return true
		}
	}
	return false
}
