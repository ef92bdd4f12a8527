package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/luthfiarsd/TutorAI-Final/internal/core/search"
	"github.com/luthfiarsd/TutorAI-Final/internal/infra/postgres/sqlc"
)

// SearchRepository は core/search.Repository を実装する PostgreSQL リポジトリ。
type SearchRepository struct {
	q sqlc.Querier
}

// NewSearchRepository は新しい SearchRepository を返す。
func NewSearchRepository(q sqlc.Querier) *SearchRepository {
	return &SearchRepository{q: q}
}

var _ search.Repository = (*SearchRepository)(nil)

func (r *SearchRepository) Search(ctx context.Context, queryVector []float32, limit int, documentID *uuid.UUID) ([]*search.Result, error) {
	rows, err := r.q.SearchChunks(ctx, sqlc.SearchChunksParams{
		QueryVector: pgvector.NewVector(queryVector),
		DocumentID:  UUIDPtrToPgtype(documentID),
		RowLimit:    int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search chunks: %w", err)
	}

	results := make([]*search.Result, 0, len(rows))
	for _, row := range rows {
		results = append(results, &search.Result{
			ChunkID:    PgtypeToUUID(row.ChunkID),
			DocumentID: PgtypeToUUID(row.DocumentID),
			Content:    row.Content,
			ChunkIndex: int(row.ChunkIndex),
			Similarity: row.Similarity,
		})
	}
	return results, nil
}
