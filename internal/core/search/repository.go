package search

import (
	"context"

	"github.com/google/uuid"
)

// Repository はベクトル検索の永続化インターフェース
type Repository interface {
	// Search はクエリベクトルとのコサイン類似度が高い順にチャンクを返す。
	// Embedding生成済みのチャンクのみが対象。documentIDがnilの場合は全ドキュメントを検索する。
	Search(ctx context.Context, queryVector []float32, limit int, documentID *uuid.UUID) ([]*Result, error)
}
