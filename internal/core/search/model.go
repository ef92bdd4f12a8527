package search

import "github.com/google/uuid"

// Result はベクトル検索の結果1件を表す
type Result struct {
	ChunkID    uuid.UUID
	DocumentID uuid.UUID
	Content    string
	ChunkIndex int
	// Similarity はコサイン類似度（1に近いほど類似）
	Similarity float64
}
