package vertex

import (
	"strings"

	"google.golang.org/genai"

	ai "github.com/spetersoncode/vertexlm"
)

// contents converts a prompt into generative API content. Text segments
// pass through; image segments become inline-data parts only when the
// adapter is multimodal.
func (a *Adapter) contents(p ai.Prompt) ([]*genai.Content, error) {
	parts := make([]*genai.Part, 0, len(p.Segments))
	for _, seg := range p.Segments {
		switch {
		case seg.Kind == ai.SegmentText:
			parts = append(parts, &genai.Part{Text: seg.Text})
		case seg.Kind == ai.SegmentImage && a.multimodal:
			parts = append(parts, &genai.Part{
				InlineData: &genai.Blob{
					MIMEType: seg.MIMEType,
					Data:     seg.Data,
				},
			})
		default:
			return nil, &ai.UnsupportedError{Reason: "unsupported modality: " + seg.String()}
		}
	}
	return []*genai.Content{{Role: "user", Parts: parts}}, nil
}

// completionText flattens a prompt for the text-completion API, which
// accepts text only.
func (a *Adapter) completionText(p ai.Prompt) (string, error) {
	var b strings.Builder
	for _, seg := range p.Segments {
		if seg.Kind != ai.SegmentText {
			return "", &ai.UnsupportedError{Reason: "unsupported modality: " + seg.String()}
		}
		b.WriteString(seg.Text)
	}
	return b.String(), nil
}
