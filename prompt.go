package vertexlm

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SegmentKind identifies the modality of a prompt segment.
type SegmentKind string

const (
	SegmentText  SegmentKind = "text"
	SegmentImage SegmentKind = "image"
)

// Segment is a single part of a prompt. Use either Text (for text
// segments) or Data/MIMEType (for image segments).
type Segment struct {
	Kind SegmentKind `json:"kind"`
	// Text contains the text content. Only used when Kind is "text".
	Text string `json:"text,omitempty"`
	// Data contains raw image bytes. Only used when Kind is "image".
	Data []byte `json:"data,omitempty"`
	// MIMEType specifies the image format (e.g., "image/jpeg", "image/png").
	MIMEType string `json:"mimeType,omitempty"`
}

// NewTextSegment creates a text segment.
func NewTextSegment(text string) Segment {
	return Segment{
		Kind: SegmentText,
		Text: text,
	}
}

// NewImageSegment creates an image segment from raw bytes.
func NewImageSegment(data []byte, mimeType string) Segment {
	return Segment{
		Kind:     SegmentImage,
		Data:     data,
		MIMEType: mimeType,
	}
}

// String describes the segment for use in error messages.
func (s Segment) String() string {
	switch s.Kind {
	case SegmentText:
		return fmt.Sprintf("text segment (%d chars)", len(s.Text))
	case SegmentImage:
		return fmt.Sprintf("image segment (%s, %d bytes)", s.MIMEType, len(s.Data))
	default:
		return fmt.Sprintf("%s segment", s.Kind)
	}
}

// Prompt is an ordered sequence of content segments sent to a model.
type Prompt struct {
	// ID is an optional unique identifier for the prompt.
	ID       string    `json:"id,omitempty"`
	Segments []Segment `json:"segments"`
}

// NewTextPrompt creates a prompt containing a single text segment.
func NewTextPrompt(text string) Prompt {
	return Prompt{Segments: []Segment{NewTextSegment(text)}}
}

// NewPrompt creates a prompt from the given segments.
func NewPrompt(segments ...Segment) Prompt {
	return Prompt{Segments: segments}
}

// GeneratePromptID creates a unique prompt identifier.
func GeneratePromptID() string {
	return "prompt-" + uuid.New().String()
}

// Text returns the concatenation of all text segments.
func (p Prompt) Text() string {
	var b strings.Builder
	for _, seg := range p.Segments {
		if seg.Kind == SegmentText {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// HasImages returns true if the prompt contains at least one image segment.
func (p Prompt) HasImages() bool {
	for _, seg := range p.Segments {
		if seg.Kind == SegmentImage {
			return true
		}
	}
	return false
}

// Sample is one generated completion. Score is always 0.0 for Vertex AI
// models (neither API is used in scoring mode).
type Sample struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Usage contains token usage information for a request. Only the
// generative API reports usage; the text-completion API does not.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// SamplingResult is the outcome of sampling one prompt.
type SamplingResult struct {
	Samples []Sample `json:"samples"`
	// Usage is nil when the backing API does not report token counts.
	Usage *Usage `json:"usage,omitempty"`
}

// Text returns the text of the first sample, or empty if there is none.
func (r SamplingResult) Text() string {
	if len(r.Samples) == 0 {
		return ""
	}
	return r.Samples[0].Text
}
