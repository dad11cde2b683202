// Package llm is the boundary to the external model-orchestration layer.
// The scoring core never talks to a model directly: callers inject a
// ModelClient, and raw model output passes through ParseScoreEntries before
// it can reach the rubric scorer.
package llm

import "context"

// CallOptions tune a single model call.
type CallOptions struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// ModelClient turns a prompt into structured JSON. Implementations own
// retries, cost tracking, and timeouts; none of that leaks into the core.
type ModelClient interface {
	CallModel(ctx context.Context, prompt string, opts CallOptions) ([]byte, error)
}
