// Package vertex implements [vertexlm.Sampler] on top of Vertex AI,
// Google Cloud's hosted model platform. Gemini models are served through
// the generative API (google.golang.org/genai with the Vertex AI backend)
// and PaLM models through the text-completion Predict API
// (cloud.google.com/go/aiplatform).
//
// # Authentication
//
// Adapters use Application Default Credentials (ADC) which automatically
// discovers credentials in the following order:
//
//  1. GOOGLE_APPLICATION_CREDENTIALS environment variable (path to service account key)
//  2. gcloud CLI credentials (gcloud auth application-default login)
//  3. Attached service account (GKE Workload Identity, Compute Engine, Cloud Run)
//
// Pass [WithCredentials] to override ADC explicitly.
//
// # Usage
//
//	adapter, err := vertex.NewGeminiPro1(vertex.WithProject("my-project"), vertex.WithLocation("us-central1"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := adapter.Sample(ctx, []vertexlm.Prompt{vertexlm.NewTextPrompt("Hello")})
//
// Project and location fall back to the VERTEXAI_PROJECT and
// VERTEXAI_LOCATION environment variables when not set explicitly.
//
// # Rate Limits and Retries
//
// Each model's concurrency limit is derived from its registered
// requests-per-minute quota, and all adapters for the same model share
// one in-flight budget. Vertex AI applies its own policy for rate limits
// and transient failures, so provider errors are surfaced verbatim and
// never retried here.
package vertex
