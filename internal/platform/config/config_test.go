package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "gemini", cfg.Embedding.Provider)
	assert.Equal(t, DefaultGeminiEmbeddingModel, cfg.Embedding.Model)
	assert.Equal(t, 768, cfg.Embedding.Dimension)
	assert.Equal(t, 50, cfg.Embedding.BatchSize)
	assert.Equal(t, 3, cfg.Embedding.MaxRetries)
	assert.Equal(t, 1000, cfg.Chunking.TargetSize)
	assert.Equal(t, 200, cfg.Chunking.Overlap)
	assert.Equal(t, "sentence", cfg.Chunking.Strategy)
	assert.Equal(t, 5, cfg.Search.TopK)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DB_PORT", "15432")
	t.Setenv("EMBEDDING_PROVIDER", "openai")
	t.Setenv("CHUNK_TARGET_SIZE", "500")
	t.Setenv("CHUNK_OVERLAP", "100")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 15432, cfg.Database.Port)
	assert.Equal(t, "openai", cfg.Embedding.Provider)
	assert.Equal(t, DefaultOpenAIEmbeddingModel, cfg.Embedding.Model)
	assert.Equal(t, 500, cfg.Chunking.TargetSize)
	assert.Equal(t, 100, cfg.Chunking.Overlap)
}

func TestLoadInvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("EMBEDDING_PROVIDER", "cohere")

	_, err := Load("")
	require.Error(t, err)
}

func TestLoadRejectsInvalidOverlap(t *testing.T) {
	t.Setenv("CHUNK_TARGET_SIZE", "100")
	t.Setenv("CHUNK_OVERLAP", "100")

	_, err := Load("")
	require.Error(t, err)
}
