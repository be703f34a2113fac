package vertex

import (
	"context"
	"fmt"
	"os"
	"sync"

	"cloud.google.com/go/auth"

	ai "github.com/spetersoncode/vertexlm"
	"github.com/spetersoncode/vertexlm/model"
	"github.com/spetersoncode/vertexlm/parallel"
)

// Environment fallbacks for connection resolution.
const (
	EnvProject  = "VERTEXAI_PROJECT"
	EnvLocation = "VERTEXAI_LOCATION"
)

// Connection holds the resolved client settings shared by the handles an
// adapter creates.
type Connection struct {
	// Project is the Google Cloud project id.
	Project string
	// Location is the Vertex AI service location, e.g. "us-central1".
	Location string
	// Credentials overrides Application Default Credentials when set.
	Credentials *auth.Credentials
}

// defaultLimiter groups concurrency budgets across all adapters in the
// process that use the default configuration.
var defaultLimiter = parallel.NewKeyedLimiter()

// Adapter samples prompts against one Vertex AI model. An Adapter is
// immutable after construction; to rebind the model or connection
// settings, construct a new one.
type Adapter struct {
	modelID    string
	settings   model.Settings
	project    string
	location   string
	creds      *auth.Credentials
	multimodal bool
	hub        *Hub
	limiter    *parallel.KeyedLimiter

	initOnce sync.Once
	initErr  error
	conn     Connection
}

// Option configures an Adapter at construction.
type Option func(*Adapter)

// WithProject sets the Google Cloud project id. Falls back to the
// VERTEXAI_PROJECT environment variable when unset.
func WithProject(project string) Option {
	return func(a *Adapter) {
		a.project = project
	}
}

// WithLocation sets the Vertex AI service location. Falls back to the
// VERTEXAI_LOCATION environment variable when unset.
func WithLocation(location string) Option {
	return func(a *Adapter) {
		a.location = location
	}
}

// WithCredentials overrides Application Default Credentials.
func WithCredentials(creds *auth.Credentials) Option {
	return func(a *Adapter) {
		a.creds = creds
	}
}

// WithMultimodal marks the model as accepting image segments.
func WithMultimodal(enabled bool) Option {
	return func(a *Adapter) {
		a.multimodal = enabled
	}
}

// WithHub replaces the process-scoped handle cache. Adapters sharing a
// Hub share model handles.
func WithHub(h *Hub) Option {
	return func(a *Adapter) {
		a.hub = h
	}
}

// New creates an adapter for the given model identifier. The identifier
// must be one of the supported models; see
// [github.com/spetersoncode/vertexlm/model.Supported].
func New(modelID string, opts ...Option) (*Adapter, error) {
	settings, err := model.Lookup(modelID)
	if err != nil {
		return nil, err
	}
	a := &Adapter{
		modelID:  modelID,
		settings: settings,
		hub:      DefaultHub,
		limiter:  defaultLimiter,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// ModelID returns the model identifier this adapter is bound to.
func (a *Adapter) ModelID() string { return a.modelID }

// Multimodal returns true if the adapter accepts image segments.
func (a *Adapter) Multimodal() bool { return a.multimodal }

// ResourceID returns the key under which this adapter's requests are
// rate-grouped. All adapters bound to the same model share one
// concurrency budget.
func (a *Adapter) ResourceID() string { return "vertexai://" + a.modelID }

// MaxConcurrency returns the maximum number of concurrent in-flight
// requests for this adapter's model, derived from its registered
// requests-per-minute quota.
func (a *Adapter) MaxConcurrency() int { return a.settings.MaxConcurrency() }

// init resolves project and location once per adapter, from explicit
// options or the environment. The outcome, success or failure, is cached
// for the adapter's lifetime.
func (a *Adapter) init() error {
	a.initOnce.Do(func() {
		project := a.project
		if project == "" {
			project = os.Getenv(EnvProject)
		}
		if project == "" {
			a.initErr = &ai.ConfigError{Field: "project", EnvVar: EnvProject}
			return
		}
		location := a.location
		if location == "" {
			location = os.Getenv(EnvLocation)
		}
		if location == "" {
			a.initErr = &ai.ConfigError{Field: "location", EnvVar: EnvLocation}
			return
		}
		a.conn = Connection{Project: project, Location: location, Credentials: a.creds}
	})
	return a.initErr
}

// Sample dispatches the prompts concurrently and returns one result per
// prompt, in prompt order. Vertex AI applies its own rate-limit policy,
// so failed prompts are not retried and do not cancel their siblings; if
// any prompt fails, the returned error is a *vertexlm.BatchError holding
// each failure at the position of its prompt.
func (a *Adapter) Sample(ctx context.Context, prompts []ai.Prompt, opts ...ai.SamplingOption) ([]ai.SamplingResult, error) {
	options := ai.ApplySamplingOptions(opts...)
	if err := a.init(); err != nil {
		return nil, err
	}
	return parallel.Map(ctx, a.limiter, a.ResourceID(), a.MaxConcurrency(), prompts,
		func(ctx context.Context, p ai.Prompt) (ai.SamplingResult, error) {
			return a.sampleOne(ctx, p, options)
		})
}

func (a *Adapter) sampleOne(ctx context.Context, p ai.Prompt, options *ai.SamplingOptions) (ai.SamplingResult, error) {
	if options.SampleCount > 1 {
		return ai.SamplingResult{}, &ai.UnsupportedError{
			Reason: fmt.Sprintf("sample count greater than 1 is not supported: %d", options.SampleCount),
		}
	}
	switch a.settings.Family {
	case model.FamilyGenerative:
		return a.sampleGenerative(ctx, p, options)
	case model.FamilyTextCompletion:
		return a.sampleTextCompletion(ctx, p, options)
	default:
		// Unreachable: New validates the model against the registry.
		return ai.SamplingResult{}, &ai.ConfigError{
			Field: "model",
			Msg:   fmt.Sprintf("unsupported API family %q for model %q", a.settings.Family, a.modelID),
		}
	}
}

func (a *Adapter) sampleGenerative(ctx context.Context, p ai.Prompt, options *ai.SamplingOptions) (ai.SamplingResult, error) {
	contents, err := a.contents(p)
	if err != nil {
		return ai.SamplingResult{}, err
	}
	handle, err := a.hub.Generative(ctx, a.conn, a.modelID)
	if err != nil {
		return ai.SamplingResult{}, err
	}
	resp, err := handle.GenerateContent(ctx, contents, generationConfig(options))
	if err != nil {
		return ai.SamplingResult{}, err
	}
	return parseGenerativeResponse(resp), nil
}

func (a *Adapter) sampleTextCompletion(ctx context.Context, p ai.Prompt, options *ai.SamplingOptions) (ai.SamplingResult, error) {
	text, err := a.completionText(p)
	if err != nil {
		return ai.SamplingResult{}, err
	}
	params, err := predictParameters(options)
	if err != nil {
		return ai.SamplingResult{}, err
	}
	handle, err := a.hub.TextCompletion(ctx, a.conn, a.modelID)
	if err != nil {
		return ai.SamplingResult{}, err
	}
	out, err := handle.Predict(ctx, text, params)
	if err != nil {
		return ai.SamplingResult{}, err
	}
	// Scoring is not supported; no usage metadata on this API.
	return ai.SamplingResult{Samples: []ai.Sample{{Text: out}}}, nil
}

var _ ai.Sampler = (*Adapter)(nil)
