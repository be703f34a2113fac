package vertexlm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTextPrompt(t *testing.T) {
	p := NewTextPrompt("hello")
	assert.Len(t, p.Segments, 1)
	assert.Equal(t, SegmentText, p.Segments[0].Kind)
	assert.Equal(t, "hello", p.Segments[0].Text)
	assert.False(t, p.HasImages())
}

func TestNewPrompt(t *testing.T) {
	p := NewPrompt(
		NewTextSegment("describe this: "),
		NewImageSegment([]byte{0xff, 0xd8}, "image/jpeg"),
	)
	assert.Len(t, p.Segments, 2)
	assert.True(t, p.HasImages())
	assert.Equal(t, "image/jpeg", p.Segments[1].MIMEType)
}

func TestPromptText(t *testing.T) {
	tests := []struct {
		name     string
		prompt   Prompt
		expected string
	}{
		{"single text segment", NewTextPrompt("hello"), "hello"},
		{"multiple text segments", NewPrompt(NewTextSegment("a"), NewTextSegment("b")), "ab"},
		{"image segments excluded", NewPrompt(NewTextSegment("x"), NewImageSegment([]byte{1}, "image/png")), "x"},
		{"empty prompt", Prompt{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.prompt.Text())
		})
	}
}

func TestSegmentString(t *testing.T) {
	t.Run("text segment", func(t *testing.T) {
		s := NewTextSegment("hello")
		assert.Equal(t, "text segment (5 chars)", s.String())
	})

	t.Run("image segment", func(t *testing.T) {
		s := NewImageSegment([]byte{1, 2, 3}, "image/png")
		assert.Equal(t, "image segment (image/png, 3 bytes)", s.String())
	})
}

func TestGeneratePromptID(t *testing.T) {
	id1 := GeneratePromptID()
	id2 := GeneratePromptID()
	assert.True(t, strings.HasPrefix(id1, "prompt-"))
	assert.NotEqual(t, id1, id2)
}

func TestSamplingResultText(t *testing.T) {
	t.Run("returns first sample text", func(t *testing.T) {
		r := SamplingResult{Samples: []Sample{{Text: "out"}}}
		assert.Equal(t, "out", r.Text())
	})

	t.Run("empty result", func(t *testing.T) {
		assert.Equal(t, "", SamplingResult{}.Text())
	})
}
