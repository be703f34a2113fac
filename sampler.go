package vertexlm

import "context"

// Sampler is the uniform model-invocation interface. Sample returns one
// SamplingResult per prompt, in prompt order, regardless of the order in
// which concurrent dispatches complete.
type Sampler interface {
	Sample(ctx context.Context, prompts []Prompt, opts ...SamplingOption) ([]SamplingResult, error)
}
