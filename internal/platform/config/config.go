package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します
type Config struct {
	// Database設定
	Database DatabaseConfig

	// Embedding設定
	Embedding EmbeddingConfig

	// チャンク分割設定
	Chunking ChunkingConfig

	// 検索設定
	Search SearchConfig

	// ログ設定
	LogLevel  string
	LogFormat string
}

// DatabaseConfig はデータベース接続設定
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// EmbeddingConfig はEmbeddingプロバイダの設定
type EmbeddingConfig struct {
	Provider       string // "gemini" or "openai"
	GeminiAPIKey   string
	OpenAIAPIKey   string
	Model          string
	Dimension      int
	TimeoutSeconds int
	BatchSize      int
	MaxRetries     int
}

// ChunkingConfig はテキスト分割の設定
type ChunkingConfig struct {
	TargetSize int
	Overlap    int
	Strategy   string // "sentence" or "recursive"
}

// SearchConfig は検索の設定
type SearchConfig struct {
	TopK int
}

const (
	// DefaultGeminiEmbeddingModel はGemini利用時のデフォルトモデル
	DefaultGeminiEmbeddingModel = "gemini-embedding-001"
	// DefaultOpenAIEmbeddingModel はOpenAI利用時のデフォルトモデル
	DefaultOpenAIEmbeddingModel = "text-embedding-3-small"
)

// Load は環境変数または.envファイルから設定を読み込みます
func Load(envFilePath string) (*Config, error) {
	// .envファイルが存在する場合は読み込む
	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil {
			// ファイルが存在しない場合はエラーとしない（環境変数のみで動作可能）
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load .env file: %w", err)
			}
		}
	}

	provider := getEnv("EMBEDDING_PROVIDER", "gemini")

	defaultModel := DefaultGeminiEmbeddingModel
	if provider == "openai" {
		defaultModel = DefaultOpenAIEmbeddingModel
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "tutorai"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "tutorai"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Embedding: EmbeddingConfig{
			Provider:       provider,
			GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
			OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
			Model:          getEnv("EMBEDDING_MODEL", defaultModel),
			Dimension:      getEnvAsInt("EMBEDDING_DIMENSION", 768),
			TimeoutSeconds: getEnvAsInt("EMBEDDING_TIMEOUT_SECONDS", 30),
			BatchSize:      getEnvAsInt("EMBED_BATCH_SIZE", 50),
			MaxRetries:     getEnvAsInt("EMBED_MAX_RETRIES", 3),
		},
		Chunking: ChunkingConfig{
			TargetSize: getEnvAsInt("CHUNK_TARGET_SIZE", 1000),
			Overlap:    getEnvAsInt("CHUNK_OVERLAP", 200),
			Strategy:   getEnv("CHUNK_STRATEGY", "sentence"),
		},
		Search: SearchConfig{
			TopK: getEnvAsInt("SEARCH_TOP_K", 5),
		},
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate は設定値の整合性を検証します
func (c *Config) validate() error {
	switch c.Embedding.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("unsupported embedding provider: %s", c.Embedding.Provider)
	}

	if c.Embedding.Dimension <= 0 {
		return fmt.Errorf("embedding dimension must be positive: %d", c.Embedding.Dimension)
	}

	if c.Chunking.TargetSize <= 0 {
		return fmt.Errorf("chunk target size must be positive: %d", c.Chunking.TargetSize)
	}
	if c.Chunking.Overlap < 0 || c.Chunking.Overlap >= c.Chunking.TargetSize {
		return fmt.Errorf("chunk overlap must be in [0, target size): %d", c.Chunking.Overlap)
	}

	return nil
}

// getEnv は環境変数を取得し、存在しない場合はデフォルト値を返します
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt は環境変数を整数として取得します
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
