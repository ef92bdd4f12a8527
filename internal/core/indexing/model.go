package indexing

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatus はドキュメントの処理状態を表す
type DocumentStatus string

const (
	DocumentStatusPending    DocumentStatus = "pending"
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusCompleted  DocumentStatus = "completed"
	DocumentStatusFailed     DocumentStatus = "failed"
)

// ChunkStatus はチャンクのEmbedding状態を表す
type ChunkStatus string

const (
	ChunkStatusPending  ChunkStatus = "pending"
	ChunkStatusEmbedded ChunkStatus = "embedded"
	ChunkStatusFailed   ChunkStatus = "failed"
)

// Document は登録されたドキュメントを表す
type Document struct {
	ID           uuid.UUID
	Title        string
	SourcePath   string
	Status       DocumentStatus
	ErrorMessage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ChunkRecord は保存対象のチャンクを表す
type ChunkRecord struct {
	Content    string
	ChunkIndex int
	StartChar  int
	EndChar    int
	TokenCount int
}

// EmbeddableChunk はEmbedding生成の対象として選択されたチャンク
type EmbeddableChunk struct {
	ID         uuid.UUID
	Content    string
	RetryCount int
}

// IndexResult はインデックス処理の結果を表す
type IndexResult struct {
	DocumentID uuid.UUID
	ChunkCount int
	Duration   time.Duration
}

// EmbedBatchParams はEmbeddingバッチ処理のパラメータ
type EmbedBatchParams struct {
	DocumentID *uuid.UUID
	BatchSize  int
	MaxRetries int
}

// EmbedBatchResult はEmbeddingバッチ処理の結果を表す
type EmbedBatchResult struct {
	Processed int
	Succeeded int
	Failed    int
	FailedIDs []uuid.UUID
}

// Stats はドキュメントとチャンクの集計値を表す
type Stats struct {
	DocumentsByStatus   map[DocumentStatus]int64
	ChunksByStatus      map[ChunkStatus]int64
	ChunksTotal         int64
	ChunksWithEmbedding int64
}
