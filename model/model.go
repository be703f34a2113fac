package model

import (
	"fmt"
	"sort"
	"strings"

	ai "github.com/spetersoncode/vertexlm"
)

// Family identifies which of the two supported Vertex AI API shapes a
// model uses.
type Family string

const (
	// FamilyGenerative covers Gemini models served through the
	// generative (GenerateContent) API.
	FamilyGenerative Family = "generative"
	// FamilyTextCompletion covers PaLM models served through the
	// text-completion (Predict) API.
	FamilyTextCompletion Family = "text-completion"
)

// Settings describes one supported model: its API family and the
// requests-per-minute quota its concurrency limit is derived from.
type Settings struct {
	Family            Family
	RequestsPerMinute int
}

// Supported models and their rate quotas.
// See https://cloud.google.com/vertex-ai/generative-ai/docs/learn/models
var settings = map[string]Settings{
	"gemini-1.5-pro-preview-0409": {Family: FamilyGenerative, RequestsPerMinute: 5},
	"gemini-1.0-pro":              {Family: FamilyGenerative, RequestsPerMinute: 300},
	"gemini-1.0-pro-vision":       {Family: FamilyGenerative, RequestsPerMinute: 100},
	// PaLM models.
	"text-bison":     {Family: FamilyTextCompletion, RequestsPerMinute: 1600},
	"text-bison-32k": {Family: FamilyTextCompletion, RequestsPerMinute: 300},
	"text-unicorn":   {Family: FamilyTextCompletion, RequestsPerMinute: 100},
}

// Lookup returns the settings for a model identifier. Unknown identifiers
// produce a ConfigError listing the supported set.
func Lookup(id string) (Settings, error) {
	s, ok := settings[id]
	if !ok {
		return Settings{}, &ai.ConfigError{
			Field: "model",
			Msg:   fmt.Sprintf("unsupported model %q (supported: %s)", id, strings.Join(Supported(), ", ")),
		}
	}
	return s, nil
}

// Supported returns the supported model identifiers in sorted order.
func Supported() []string {
	ids := make([]string, 0, len(settings))
	for id := range settings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MaxConcurrency returns the maximum number of concurrent requests for a
// model, derived from its requests-per-minute rate. Token rate carries
// zero weight for Vertex AI models.
func (s Settings) MaxConcurrency() int {
	return MaxConcurrencyForRate(s.RequestsPerMinute, 0)
}

const (
	// tokensPerRequest is the assumed average request size when deriving
	// concurrency from a token-per-minute quota.
	tokensPerRequest      = 250
	defaultMaxConcurrency = 1
)

// MaxConcurrencyForRate converts rate quotas into a concurrency bound.
// A token rate, when present, takes precedence over the request rate.
// The result is always at least 1.
func MaxConcurrencyForRate(requestsPerMinute, tokensPerMinute int) int {
	switch {
	case tokensPerMinute > 0:
		return max(1, tokensPerMinute/tokensPerRequest)
	case requestsPerMinute > 0:
		return max(1, requestsPerMinute/60)
	default:
		return defaultMaxConcurrency
	}
}
