package openai

import (
	"testing"

	"github.com/poiesic/yojana/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider(ai.NewConfig(ai.WithHost("http://localhost:11434")))
	require.NoError(t, err)
	defer provider.Close()

	assert.NotNil(t, provider.Embedder())
	assert.NotNil(t, provider.ProfileExtractor())
	assert.NotNil(t, provider.SchemeTranslator())
	assert.Equal(t, "embeddinggemma", provider.Embedder().Model())
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	_, err := NewProvider(ai.NewConfig(ai.WithGenerationModel("")))
	assert.Error(t, err)
}
