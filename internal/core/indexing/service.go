package indexing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luthfiarsd/TutorAI-Final/internal/core/indexing/chunker"
)

const (
	// DefaultEmbedBatchSize はバッチサイズ未指定時のデフォルト値
	DefaultEmbedBatchSize = 50
	// DefaultEmbedMaxRetries は最大リトライ回数未指定時のデフォルト値
	DefaultEmbedMaxRetries = 3
)

// IndexService はドキュメント登録からEmbedding生成までのユースケースを提供する
type IndexService struct {
	repository Repository
	extractor  Extractor
	embedder   Embedder
	chunker    *chunker.Chunker
	logger     *slog.Logger
}

type indexServiceOptions struct {
	logger *slog.Logger
}

// IndexServiceOption は IndexService のオプション設定
type IndexServiceOption func(*indexServiceOptions)

// WithIndexLogger は IndexService にロガーを設定する
func WithIndexLogger(logger *slog.Logger) IndexServiceOption {
	return func(o *indexServiceOptions) {
		o.logger = logger
	}
}

// NewIndexService は新しいIndexServiceを作成する
func NewIndexService(
	repo Repository,
	extractor Extractor,
	embedder Embedder,
	chunker *chunker.Chunker,
	opts ...IndexServiceOption,
) *IndexService {
	options := indexServiceOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	return &IndexService{
		repository: repo,
		extractor:  extractor,
		embedder:   embedder,
		chunker:    chunker,
		logger:     options.logger,
	}
}

// Register は新しいドキュメントをpending状態で登録する
func (s *IndexService) Register(ctx context.Context, title, sourcePath string) (*Document, error) {
	if title == "" {
		return nil, fmt.Errorf("title は必須です")
	}
	if sourcePath == "" {
		return nil, fmt.Errorf("source path は必須です")
	}

	doc, err := s.repository.CreateDocument(ctx, title, sourcePath)
	if err != nil {
		return nil, fmt.Errorf("ドキュメントの作成に失敗: %w", err)
	}

	s.logger.Info("ドキュメントを登録しました",
		"documentID", doc.ID,
		"title", doc.Title,
	)

	return doc, nil
}

// Index はドキュメントのテキスト抽出とチャンク分割を実行する。
// 既存チャンクは全削除のうえ作り直されるため、再実行しても重複しない。
// 処理に失敗した場合、ドキュメントはfailed状態になりエラー内容が記録される。
func (s *IndexService) Index(ctx context.Context, documentID uuid.UUID) (*IndexResult, error) {
	startTime := time.Now()

	doc, err := s.repository.GetDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("ドキュメントの取得に失敗: %w", err)
	}

	if err := s.repository.UpdateDocumentStatus(ctx, documentID, DocumentStatusProcessing, nil); err != nil {
		return nil, fmt.Errorf("ドキュメント状態の更新に失敗: %w", err)
	}

	s.logger.Info("インデックス処理を開始します",
		"documentID", documentID,
		"sourcePath", doc.SourcePath,
	)

	text, err := s.extractor.Extract(ctx, doc.SourcePath)
	if err != nil {
		return nil, s.failDocument(ctx, documentID, fmt.Errorf("テキスト抽出に失敗: %w", err))
	}

	normalized := Normalize(text)
	if normalized == "" {
		return nil, s.failDocument(ctx, documentID, ErrEmptyText)
	}

	pieces, err := s.chunker.Chunk(normalized)
	if err != nil {
		return nil, s.failDocument(ctx, documentID, fmt.Errorf("チャンク分割に失敗: %w", err))
	}
	if len(pieces) == 0 {
		return nil, s.failDocument(ctx, documentID, ErrNoChunks)
	}

	records := make([]ChunkRecord, 0, len(pieces))
	for _, p := range pieces {
		records = append(records, ChunkRecord{
			Content:    p.Content,
			ChunkIndex: p.Index,
			StartChar:  p.StartChar,
			EndChar:    p.EndChar,
			TokenCount: p.Tokens,
		})
	}

	count, err := s.repository.ReplaceChunks(ctx, documentID, records)
	if err != nil {
		return nil, s.failDocument(ctx, documentID, fmt.Errorf("チャンクの保存に失敗: %w", err))
	}

	if err := s.repository.UpdateDocumentStatus(ctx, documentID, DocumentStatusCompleted, nil); err != nil {
		return nil, fmt.Errorf("ドキュメント状態の更新に失敗: %w", err)
	}

	result := &IndexResult{
		DocumentID: documentID,
		ChunkCount: count,
		Duration:   time.Since(startTime),
	}

	s.logger.Info("インデックス処理が完了しました",
		"documentID", documentID,
		"chunkCount", result.ChunkCount,
		"duration", result.Duration,
	)

	return result, nil
}

// failDocument はドキュメントをfailed状態にしてエラー内容を記録する
func (s *IndexService) failDocument(ctx context.Context, documentID uuid.UUID, cause error) error {
	msg := cause.Error()
	if err := s.repository.UpdateDocumentStatus(ctx, documentID, DocumentStatusFailed, &msg); err != nil {
		s.logger.Error("失敗状態の記録に失敗しました",
			"documentID", documentID,
			"error", err,
		)
	}
	return cause
}

// EmbedPending はEmbedding未生成のチャンクをバッチで処理する。
// Embedding生成の失敗はチャンク単位で記録され、バッチ全体は中断しない。
// 永続化の失敗のみ処理を中断させる。
func (s *IndexService) EmbedPending(ctx context.Context, params EmbedBatchParams) (*EmbedBatchResult, error) {
	batchSize := params.BatchSize
	if batchSize == 0 {
		batchSize = DefaultEmbedBatchSize
	}
	if batchSize < 0 {
		return nil, ErrInvalidBatchSize
	}

	maxRetries := params.MaxRetries
	if maxRetries == 0 {
		maxRetries = DefaultEmbedMaxRetries
	}
	if maxRetries < 0 {
		return nil, ErrInvalidMaxRetries
	}

	chunks, err := s.repository.SelectEmbeddable(ctx, params.DocumentID, maxRetries, batchSize)
	if err != nil {
		return nil, fmt.Errorf("チャンクの取得に失敗: %w", err)
	}

	result := &EmbedBatchResult{}
	for _, chunk := range chunks {
		result.Processed++

		embedding, embedErr := s.embedder.Embed(ctx, chunk.Content, TaskDocument)
		if embedErr != nil {
			result.Failed++
			result.FailedIDs = append(result.FailedIDs, chunk.ID)

			s.logger.Warn("Embedding生成に失敗しました",
				"chunkID", chunk.ID,
				"retryCount", chunk.RetryCount,
				"error", embedErr,
			)

			if err := s.repository.MarkFailed(ctx, chunk.ID, embedErr.Error()); err != nil {
				return result, fmt.Errorf("チャンクの失敗記録に失敗: %w", err)
			}
			continue
		}

		if err := s.repository.MarkEmbedded(ctx, chunk.ID, embedding); err != nil {
			return result, fmt.Errorf("Embeddingの保存に失敗: %w", err)
		}
		result.Succeeded++
	}

	s.logger.Info("Embeddingバッチ処理が完了しました",
		"processed", result.Processed,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
	)

	return result, nil
}

// RetryFailed はfailedチャンクをpendingに戻し、リトライ回数をリセットする。
// リトライ上限に達したチャンクを再投入するための運用操作。
func (s *IndexService) RetryFailed(ctx context.Context, documentID *uuid.UUID) (int64, error) {
	count, err := s.repository.ResetFailed(ctx, documentID)
	if err != nil {
		return 0, fmt.Errorf("失敗チャンクのリセットに失敗: %w", err)
	}

	s.logger.Info("失敗チャンクをリセットしました", "count", count)

	return count, nil
}

// Stats はドキュメントとチャンクの集計値を取得する
func (s *IndexService) Stats(ctx context.Context) (*Stats, error) {
	stats, err := s.repository.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("統計情報の取得に失敗: %w", err)
	}
	return stats, nil
}

// DeleteDocument はドキュメントと配下のチャンクを削除する
func (s *IndexService) DeleteDocument(ctx context.Context, documentID uuid.UUID) error {
	if err := s.repository.DeleteDocument(ctx, documentID); err != nil {
		return fmt.Errorf("ドキュメントの削除に失敗: %w", err)
	}

	s.logger.Info("ドキュメントを削除しました", "documentID", documentID)

	return nil
}
