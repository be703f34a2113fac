// Package vertexlm provides a uniform sampling interface over language
// models hosted on Google's Vertex AI platform.
//
// The root package defines the generic, provider-neutral vocabulary:
// prompts built from text and image segments, sampling options, sampling
// results with token usage, and the error taxonomy. The
// [github.com/spetersoncode/vertexlm/provider/vertex] package implements
// [Sampler] on top of the Vertex AI SDKs, and the
// [github.com/spetersoncode/vertexlm/model] package carries the static
// model registry (API family and rate limit per model identifier).
//
// # Basic Usage
//
// Sample a prompt against a Gemini model:
//
//	adapter, err := vertex.NewGeminiPro1(
//	    vertex.WithProject("my-project"),
//	    vertex.WithLocation("us-central1"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := adapter.Sample(ctx,
//	    []vertexlm.Prompt{vertexlm.NewTextPrompt("What is the capital of France?")},
//	    vertexlm.WithTemperature(0.2),
//	    vertexlm.WithMaxTokens(64),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(results[0].Text())
//
// Project and location may also come from the VERTEXAI_PROJECT and
// VERTEXAI_LOCATION environment variables.
//
// # Concurrency
//
// Prompts in a single Sample call are dispatched concurrently. The number
// of in-flight requests per model is derived from the model's configured
// requests-per-minute rate, and every adapter sharing a model identifier
// shares one concurrency budget. Results always come back in prompt order.
//
// # Error Handling
//
// Configuration problems ([ConfigError]) and unsupported requests
// ([UnsupportedError]) fail fast before any network call. Provider errors
// are returned as-is: Vertex AI applies its own rate-limit and transient
// failure policy, so this library never retries. When some prompts in a
// batch fail, Sample returns a [BatchError] exposing each failure at the
// position of its prompt.
package vertexlm
