package container

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	coreindexing "github.com/luthfiarsd/TutorAI-Final/internal/core/indexing"
	"github.com/luthfiarsd/TutorAI-Final/internal/core/indexing/chunker"
	coresearch "github.com/luthfiarsd/TutorAI-Final/internal/core/search"
	"github.com/luthfiarsd/TutorAI-Final/internal/infra/extract"
	"github.com/luthfiarsd/TutorAI-Final/internal/infra/gemini"
	"github.com/luthfiarsd/TutorAI-Final/internal/infra/openai"
	"github.com/luthfiarsd/TutorAI-Final/internal/infra/postgres"
	"github.com/luthfiarsd/TutorAI-Final/internal/infra/postgres/sqlc"
	"github.com/luthfiarsd/TutorAI-Final/internal/platform/config"
	"github.com/luthfiarsd/TutorAI-Final/internal/platform/database"
)

// ServiceContainer はアプリケーションの依存関係を保持する。
type ServiceContainer struct {
	IndexService  *coreindexing.IndexService
	SearchService *coresearch.SearchService
	Config        *config.Config

	logger   *slog.Logger
	database *database.Database
}

type containerOptions struct {
	logger    *slog.Logger
	embedder  coreindexing.Embedder
	extractor coreindexing.Extractor
}

// ContainerOption は ServiceContainer 構築時のオプション
type ContainerOption func(*containerOptions)

// WithContainerLogger はロガーを差し替える
func WithContainerLogger(logger *slog.Logger) ContainerOption {
	return func(opts *containerOptions) {
		opts.logger = logger
	}
}

// WithContainerEmbedder はカスタム Embedder を注入する
func WithContainerEmbedder(embedder coreindexing.Embedder) ContainerOption {
	return func(opts *containerOptions) {
		opts.embedder = embedder
	}
}

// WithContainerExtractor は Extractor を差し替える
func WithContainerExtractor(extractor coreindexing.Extractor) ContainerOption {
	return func(opts *containerOptions) {
		opts.extractor = extractor
	}
}

// NewContainer は設定からコンテナを生成する。
func NewContainer(ctx context.Context, cfg *config.Config, opts ...ContainerOption) (*ServiceContainer, error) {
	db, err := database.New(ctx, database.ConnectionParams{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return NewContainerWithDB(ctx, cfg, db, opts...)
}

// NewContainerWithDB は既存の Database を受け取りコンテナを生成する。
func NewContainerWithDB(ctx context.Context, cfg *config.Config, db *database.Database, opts ...ContainerOption) (*ServiceContainer, error) {
	options := containerOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	// Embedder（プロバイダ選択）
	embedder := options.embedder
	if embedder == nil {
		var err error
		embedder, err = newEmbedder(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	// Extractor
	extractor := options.extractor
	if extractor == nil {
		extractor = extract.NewExtractor()
	}

	// Chunker
	textChunker, err := chunker.New(chunker.Strategy(cfg.Chunking.Strategy), chunker.Config{
		TargetSize: cfg.Chunking.TargetSize,
		Overlap:    cfg.Chunking.Overlap,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chunker: %w", err)
	}

	// Repository (PostgreSQL)
	queries := sqlc.New(db.Pool)
	txProvider := database.NewTransactionProvider(db.Pool)
	indexRepo := postgres.NewRepository(queries, txProvider)
	searchRepo := postgres.NewSearchRepository(queries)

	// IndexService
	indexService := coreindexing.NewIndexService(
		indexRepo,
		extractor,
		embedder,
		textChunker,
		coreindexing.WithIndexLogger(options.logger),
	)

	// SearchService
	searchService := coresearch.NewSearchService(searchRepo, embedder, coresearch.WithSearchLogger(options.logger))

	return &ServiceContainer{
		IndexService:  indexService,
		SearchService: searchService,
		Config:        cfg,
		logger:        options.logger,
		database:      db,
	}, nil
}

// newEmbedder は設定に応じたEmbeddingプロバイダを生成する。
func newEmbedder(ctx context.Context, cfg *config.Config) (coreindexing.Embedder, error) {
	timeout := embeddingTimeout(cfg)

	switch cfg.Embedding.Provider {
	case "openai":
		return openai.NewEmbedder(
			cfg.Embedding.OpenAIAPIKey,
			openai.WithEmbeddingModel(cfg.Embedding.Model),
			openai.WithEmbeddingDimension(cfg.Embedding.Dimension),
			openai.WithTimeout(timeout),
		), nil
	case "gemini":
		embedder, err := gemini.NewEmbedder(
			ctx,
			cfg.Embedding.GeminiAPIKey,
			gemini.WithEmbeddingModel(cfg.Embedding.Model),
			gemini.WithEmbeddingDimension(cfg.Embedding.Dimension),
			gemini.WithTimeout(timeout),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini embedder: %w", err)
		}
		return embedder, nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Embedding.Provider)
	}
}

func embeddingTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Embedding.TimeoutSeconds) * time.Second
}

// Close は内部リソースを解放する。
func (c *ServiceContainer) Close() {
	if c != nil && c.database != nil {
		c.database.Close()
	}
}

// Logger はロガーを返す。
func (c *ServiceContainer) Logger() *slog.Logger {
	if c == nil || c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// Database はデータベースを返す。
func (c *ServiceContainer) Database() *database.Database {
	if c == nil {
		return nil
	}
	return c.database
}
