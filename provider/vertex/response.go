package vertex

import (
	"google.golang.org/genai"

	ai "github.com/spetersoncode/vertexlm"
)

// parseGenerativeResponse wraps a generative API response into a single
// zero-score sample, with token usage when the response reports it.
func parseGenerativeResponse(resp *genai.GenerateContentResponse) ai.SamplingResult {
	text := ""
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			text += part.Text
		}
	}
	// Scoring is not supported.
	result := ai.SamplingResult{Samples: []ai.Sample{{Text: text}}}
	if resp.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return result
}
