package indexing

import (
	"context"

	"github.com/google/uuid"
)

// Repository はドキュメントとチャンクの永続化インターフェース
type Repository interface {
	// CreateDocument は新しいドキュメントをpending状態で登録する
	CreateDocument(ctx context.Context, title, sourcePath string) (*Document, error)

	// GetDocument はIDでドキュメントを取得する
	GetDocument(ctx context.Context, id uuid.UUID) (*Document, error)

	// UpdateDocumentStatus はドキュメントの状態を更新する。
	// errorMessageはfailed時のみ設定され、それ以外ではクリアされる。
	UpdateDocumentStatus(ctx context.Context, id uuid.UUID, status DocumentStatus, errorMessage *string) error

	// DeleteDocument はドキュメントと配下のチャンクを削除する
	DeleteDocument(ctx context.Context, id uuid.UUID) error

	// ReplaceChunks は既存チャンクを削除し、新しいチャンクを同一トランザクションで保存する
	ReplaceChunks(ctx context.Context, documentID uuid.UUID, chunks []ChunkRecord) (int, error)

	// SelectEmbeddable はEmbedding生成対象のチャンクをID昇順で選択する。
	// 状態がpendingまたはfailedで、retry_countがmaxRetries未満のものが対象。
	SelectEmbeddable(ctx context.Context, documentID *uuid.UUID, maxRetries, limit int) ([]EmbeddableChunk, error)

	// MarkEmbedded はチャンクにベクトルを保存しembedded状態にする
	MarkEmbedded(ctx context.Context, chunkID uuid.UUID, embedding []float32) error

	// MarkFailed はチャンクをfailed状態にし、retry_countを加算する
	MarkFailed(ctx context.Context, chunkID uuid.UUID, errorMessage string) error

	// ResetFailed はfailedチャンクをpendingに戻し、リセットした件数を返す
	ResetFailed(ctx context.Context, documentID *uuid.UUID) (int64, error)

	// Stats はドキュメントとチャンクの集計値を取得する
	Stats(ctx context.Context) (*Stats, error)
}
