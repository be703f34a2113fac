package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/spetersoncode/vertexlm"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		id     string
		family Family
		rpm    int
	}{
		{"gemini-1.5-pro-preview-0409", FamilyGenerative, 5},
		{"gemini-1.0-pro", FamilyGenerative, 300},
		{"gemini-1.0-pro-vision", FamilyGenerative, 100},
		{"text-bison", FamilyTextCompletion, 1600},
		{"text-bison-32k", FamilyTextCompletion, 300},
		{"text-unicorn", FamilyTextCompletion, 100},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s, err := Lookup(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.family, s.Family)
			assert.Equal(t, tt.rpm, s.RequestsPerMinute)
		})
	}

	t.Run("unknown model", func(t *testing.T) {
		_, err := Lookup("gpt-4")
		require.Error(t, err)
		assert.True(t, ai.IsConfig(err))
		assert.Contains(t, err.Error(), `unsupported model "gpt-4"`)
		assert.Contains(t, err.Error(), "text-bison")
	})
}

func TestSupported(t *testing.T) {
	ids := Supported()
	assert.Len(t, ids, 6)
	assert.IsIncreasing(t, ids)
	assert.Contains(t, ids, "gemini-1.0-pro")
	assert.Contains(t, ids, "text-unicorn")
}

func TestMaxConcurrencyForRate(t *testing.T) {
	tests := []struct {
		name     string
		rpm      int
		tpm      int
		expected int
	}{
		{"high request rate", 1600, 0, 26},
		{"moderate request rate", 300, 0, 5},
		{"low request rate floors to one", 100, 0, 1},
		{"tiny request rate floors to one", 5, 0, 1},
		{"token rate takes precedence", 300, 25000, 100},
		{"tiny token rate floors to one", 0, 100, 1},
		{"no rates fall back to default", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaxConcurrencyForRate(tt.rpm, tt.tpm))
		})
	}
}

func TestMaxConcurrencyStableForAllModels(t *testing.T) {
	for _, id := range Supported() {
		t.Run(id, func(t *testing.T) {
			s, err := Lookup(id)
			require.NoError(t, err)
			first := s.MaxConcurrency()
			assert.Positive(t, first)
			assert.Equal(t, first, s.MaxConcurrency())
		})
	}
}
