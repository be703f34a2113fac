package vertex

import (
	"google.golang.org/genai"
	"google.golang.org/protobuf/types/known/structpb"

	ai "github.com/spetersoncode/vertexlm"
)

// generationConfig maps sampling options onto the generative API's
// configuration, field for field.
func generationConfig(o *ai.SamplingOptions) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if o.Temperature != nil {
		temp := float32(*o.Temperature)
		config.Temperature = &temp
	}
	if o.TopP != nil {
		topP := float32(*o.TopP)
		config.TopP = &topP
	}
	if o.TopK != nil {
		topK := float32(*o.TopK)
		config.TopK = &topK
	}
	if o.MaxTokens > 0 {
		config.MaxOutputTokens = int32(o.MaxTokens)
	}
	if len(o.Stop) > 0 {
		config.StopSequences = o.Stop
	}
	return config
}

// predictParameters maps sampling options onto the text-completion API's
// parameter struct, field for field.
func predictParameters(o *ai.SamplingOptions) (*structpb.Value, error) {
	params := map[string]any{}
	if o.Temperature != nil {
		params["temperature"] = *o.Temperature
	}
	if o.TopK != nil {
		params["topK"] = *o.TopK
	}
	if o.TopP != nil {
		params["topP"] = *o.TopP
	}
	if o.MaxTokens > 0 {
		params["maxOutputTokens"] = o.MaxTokens
	}
	if len(o.Stop) > 0 {
		stop := make([]any, len(o.Stop))
		for i, s := range o.Stop {
			stop[i] = s
		}
		params["stopSequences"] = stop
	}
	s, err := structpb.NewStruct(params)
	if err != nil {
		return nil, err
	}
	return structpb.NewStructValue(s), nil
}
