package schemagen

import (
	"context"
	"encoding/json"
	"strings"
)

// providerClient is the internal interface each backend implements.
type providerClient interface {
	// Generate executes a single call according to the given call plan.
	Generate(ctx context.Context, plan callPlan) (callResult, error)
}

// callPlan is a normalized, provider-agnostic instruction set produced by
// SendRequest from the prompt and Definition.
type callPlan struct {
	Provider Provider
	Model    string
	System   string
	Prompt   string

	Definition *Definition

	// Proofread asks the provider to rewrite Prompt instead of generating.
	Proofread bool
}

// callResult is the provider-agnostic result of one call execution.
type callResult struct {
	Text    string
	Data    any
	USDCost *float64
}

// buildPlans converts a prompt + Definition into one or more call plans.
// The generation service runs the improvement process itself; local
// providers emulate it with a proofreading pass before generation.
func buildPlans(provider Provider, model, prompt string, def *Definition) []callPlan {
	base := callPlan{
		Provider:   provider,
		Model:      model,
		System:     def.SystemPrompt,
		Prompt:     prompt,
		Definition: def,
	}
	if provider == ProviderRemote || !def.ImprovementProcess {
		return []callPlan{base}
	}

	p1 := base
	p1.Proofread = true
	p1.System = ""
	return []callPlan{p1, base}
}

// resultPreferredInput picks the best string to feed into the next step.
func resultPreferredInput(res callResult) string {
	if res.Text != "" {
		return res.Text
	}
	if res.Data != nil {
		b, _ := json.Marshal(res.Data)
		return string(b)
	}
	return ""
}

// localPrompt folds the Definition's instruction and focus into the user
// prompt for providers that only see a response schema.
func localPrompt(plan callPlan) string {
	var sb strings.Builder
	sb.WriteString(plan.Prompt)
	def := plan.Definition
	if def == nil {
		return sb.String()
	}
	if def.Instruction != "" {
		sb.WriteString("\n\n")
		sb.WriteString(def.Instruction)
	}
	if f := def.NarrowFocus; f != nil {
		sb.WriteString("\n\n")
		sb.WriteString(f.Prompt)
		if len(f.Fields) > 0 {
			sb.WriteString("\nOnly generate these fields: ")
			sb.WriteString(strings.Join(f.Fields, ", "))
		}
	}
	return sb.String()
}

const proofreadInstruction = "You are a writing assistant. Rewrite the user's input to correct grammar, spelling, and clarity without changing its meaning. Return only the rewritten text."

// decodeGenerated parses model text as JSON, falling back to the raw text.
func decodeGenerated(text string) any {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err == nil {
		return v
	}
	return text
}
