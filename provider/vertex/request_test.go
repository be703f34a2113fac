package vertex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	ai "github.com/spetersoncode/vertexlm"
)

func TestGenerationConfig(t *testing.T) {
	t.Run("maps all fields", func(t *testing.T) {
		opts := ai.ApplySamplingOptions(
			ai.WithTemperature(0.3),
			ai.WithTopP(0.9),
			ai.WithTopK(40),
			ai.WithMaxTokens(512),
			ai.WithStop("###", "DONE"),
		)

		config := generationConfig(opts)
		require.NotNil(t, config.Temperature)
		assert.InDelta(t, 0.3, float64(*config.Temperature), 1e-6)
		require.NotNil(t, config.TopP)
		assert.InDelta(t, 0.9, float64(*config.TopP), 1e-6)
		require.NotNil(t, config.TopK)
		assert.InDelta(t, 40, float64(*config.TopK), 1e-6)
		assert.Equal(t, int32(512), config.MaxOutputTokens)
		assert.Equal(t, []string{"###", "DONE"}, config.StopSequences)
	})

	t.Run("omits unset fields", func(t *testing.T) {
		config := generationConfig(&ai.SamplingOptions{})
		assert.Nil(t, config.Temperature)
		assert.Nil(t, config.TopP)
		assert.Nil(t, config.TopK)
		assert.Zero(t, config.MaxOutputTokens)
		assert.Nil(t, config.StopSequences)
	})
}

func TestPredictParameters(t *testing.T) {
	t.Run("maps all fields", func(t *testing.T) {
		opts := ai.ApplySamplingOptions(
			ai.WithTemperature(0.3),
			ai.WithTopP(0.9),
			ai.WithTopK(40),
			ai.WithMaxTokens(512),
			ai.WithStop("###"),
		)

		params, err := predictParameters(opts)
		require.NoError(t, err)

		fields := params.GetStructValue().GetFields()
		assert.InDelta(t, 0.3, fields["temperature"].GetNumberValue(), 1e-6)
		assert.InDelta(t, 0.9, fields["topP"].GetNumberValue(), 1e-6)
		assert.InDelta(t, 40, fields["topK"].GetNumberValue(), 1e-6)
		assert.InDelta(t, 512, fields["maxOutputTokens"].GetNumberValue(), 1e-6)

		stop := fields["stopSequences"].GetListValue().GetValues()
		require.Len(t, stop, 1)
		assert.Equal(t, "###", stop[0].GetStringValue())
	})

	t.Run("omits unset fields", func(t *testing.T) {
		params, err := predictParameters(&ai.SamplingOptions{})
		require.NoError(t, err)
		assert.Empty(t, params.GetStructValue().GetFields())
	})
}

func TestParseGenerativeResponse(t *testing.T) {
	t.Run("concatenates candidate text parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "Hello "}, {Text: "world"}}}},
			},
		}
		result := parseGenerativeResponse(resp)
		require.Len(t, result.Samples, 1)
		assert.Equal(t, "Hello world", result.Samples[0].Text)
		assert.Equal(t, 0.0, result.Samples[0].Score)
		assert.Nil(t, result.Usage)
	})

	t.Run("extracts usage metadata", func(t *testing.T) {
		resp := generativeResponse("hi", &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     10,
			CandidatesTokenCount: 4,
			TotalTokenCount:      14,
		})
		result := parseGenerativeResponse(resp)
		require.NotNil(t, result.Usage)
		assert.Equal(t, 10, result.Usage.PromptTokens)
		assert.Equal(t, 4, result.Usage.CompletionTokens)
		assert.Equal(t, 14, result.Usage.TotalTokens)
	})

	t.Run("empty candidates yield empty sample", func(t *testing.T) {
		result := parseGenerativeResponse(&genai.GenerateContentResponse{})
		require.Len(t, result.Samples, 1)
		assert.Equal(t, "", result.Samples[0].Text)
	})
}
