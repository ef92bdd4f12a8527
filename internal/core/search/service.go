package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/luthfiarsd/TutorAI-Final/internal/core/indexing"
)

// DefaultLimit は件数未指定時のデフォルト値
const DefaultLimit = 5

// Embedder は検索クエリのEmbedding生成インターフェース
type Embedder interface {
	Embed(ctx context.Context, text string, task indexing.TaskType) ([]float32, error)
}

// SearchService は検索のビジネスロジックを提供する
type SearchService struct {
	repo     Repository
	embedder Embedder
	logger   *slog.Logger
}

type searchServiceOptions struct {
	logger *slog.Logger
}

// SearchServiceOption は SearchService のオプション設定
type SearchServiceOption func(*searchServiceOptions)

// WithSearchLogger は SearchService にロガーを設定する
func WithSearchLogger(logger *slog.Logger) SearchServiceOption {
	return func(o *searchServiceOptions) {
		o.logger = logger
	}
}

// NewSearchService は新しいSearchServiceを作成する
func NewSearchService(repo Repository, embedder Embedder, opts ...SearchServiceOption) *SearchService {
	options := searchServiceOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	return &SearchService{
		repo:     repo,
		embedder: embedder,
		logger:   options.logger,
	}
}

// SearchParams は検索パラメータを表す
type SearchParams struct {
	Query      string
	Limit      int
	DocumentID *uuid.UUID
}

// Search はクエリに基づいてベクトル検索を実行する
func (s *SearchService) Search(ctx context.Context, params SearchParams) ([]*Result, error) {
	// バリデーション
	if params.Query == "" {
		return nil, fmt.Errorf("query is required")
	}

	// クエリをEmbeddingに変換
	queryVector, err := s.embedder.Embed(ctx, params.Query, indexing.TaskQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	// デフォルトのLimit設定
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	results, err := s.repo.Search(ctx, queryVector, limit, params.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	s.logger.Info("検索が完了しました",
		"query", params.Query,
		"limit", limit,
		"resultCount", len(results),
	)

	return results, nil
}
