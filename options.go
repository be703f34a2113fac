package vertexlm

// Default sampling parameters.
const (
	DefaultMaxTokens   = 1024
	DefaultSampleCount = 1
)

// SamplingOptions contains generation parameters for a sampling request.
// Pointer fields are omitted from the provider request when nil.
type SamplingOptions struct {
	Temperature *float64
	TopP        *float64
	TopK        *int
	MaxTokens   int
	Stop        []string
	// SampleCount is the number of samples requested per prompt. The
	// Vertex AI APIs used here support single-candidate sampling only,
	// so values greater than 1 are rejected.
	SampleCount int
}

// SamplingOption is a functional option for configuring sampling requests.
type SamplingOption func(*SamplingOptions)

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) SamplingOption {
	return func(o *SamplingOptions) {
		o.Temperature = &t
	}
}

// WithTopP sets the nucleus sampling probability mass.
func WithTopP(p float64) SamplingOption {
	return func(o *SamplingOptions) {
		o.TopP = &p
	}
}

// WithTopK sets the top-k sampling cutoff.
func WithTopK(k int) SamplingOption {
	return func(o *SamplingOptions) {
		o.TopK = &k
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) SamplingOption {
	return func(o *SamplingOptions) {
		o.MaxTokens = n
	}
}

// WithStop sets the stop sequences that end generation.
func WithStop(sequences ...string) SamplingOption {
	return func(o *SamplingOptions) {
		o.Stop = sequences
	}
}

// WithSampleCount sets the number of samples requested per prompt.
func WithSampleCount(n int) SamplingOption {
	return func(o *SamplingOptions) {
		o.SampleCount = n
	}
}

// ApplySamplingOptions applies functional options over the defaults.
func ApplySamplingOptions(opts ...SamplingOption) *SamplingOptions {
	o := &SamplingOptions{
		MaxTokens:   DefaultMaxTokens,
		SampleCount: DefaultSampleCount,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
