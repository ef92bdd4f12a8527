package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/luthfiarsd/TutorAI-Final/internal/core/indexing"
	"github.com/luthfiarsd/TutorAI-Final/internal/infra/postgres/sqlc"
	"github.com/luthfiarsd/TutorAI-Final/internal/platform/database"
)

// Repository は core/indexing.Repository を実装する PostgreSQL リポジトリ。
type Repository struct {
	q  sqlc.Querier
	tx *database.TransactionProvider
}

// NewRepository は新しい Repository を返す。
func NewRepository(q sqlc.Querier, tx *database.TransactionProvider) *Repository {
	return &Repository{q: q, tx: tx}
}

var _ indexing.Repository = (*Repository)(nil)

func (r *Repository) CreateDocument(ctx context.Context, title, sourcePath string) (*indexing.Document, error) {
	row, err := r.q.CreateDocument(ctx, sqlc.CreateDocumentParams{
		Title:      title,
		SourcePath: sourcePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return convertDocument(row), nil
}

func (r *Repository) GetDocument(ctx context.Context, id uuid.UUID) (*indexing.Document, error) {
	row, err := r.q.GetDocument(ctx, UUIDToPgtype(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return convertDocument(row), nil
}

func (r *Repository) UpdateDocumentStatus(ctx context.Context, id uuid.UUID, status indexing.DocumentStatus, errorMessage *string) error {
	err := r.q.UpdateDocumentStatus(ctx, sqlc.UpdateDocumentStatusParams{
		ID:           UUIDToPgtype(id),
		Status:       string(status),
		ErrorMessage: StringPtrToPgtext(errorMessage),
	})
	if err != nil {
		return fmt.Errorf("failed to update document status: %w", err)
	}
	return nil
}

func (r *Repository) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	if err := r.q.DeleteDocument(ctx, UUIDToPgtype(id)); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// ReplaceChunks は既存チャンクの削除と新チャンクの一括投入を単一トランザクションで行う。
// 途中で失敗した場合は既存チャンクも残る。
func (r *Repository) ReplaceChunks(ctx context.Context, documentID uuid.UUID, chunks []indexing.ChunkRecord) (int, error) {
	params := make([]sqlc.CreateChunksParams, 0, len(chunks))
	for _, c := range chunks {
		params = append(params, sqlc.CreateChunksParams{
			DocumentID: UUIDToPgtype(documentID),
			Content:    c.Content,
			ChunkIndex: int32(c.ChunkIndex),
			StartChar:  int32(c.StartChar),
			EndChar:    int32(c.EndChar),
			TokenCount: IntToPgtype(c.TokenCount),
			Status:     string(indexing.ChunkStatusPending),
		})
	}

	count, err := database.Transact(ctx, r.tx, func(q *sqlc.Queries) (int64, error) {
		if err := q.DeleteChunksByDocument(ctx, UUIDToPgtype(documentID)); err != nil {
			return 0, fmt.Errorf("failed to delete existing chunks: %w", err)
		}
		inserted, err := q.CreateChunks(ctx, params)
		if err != nil {
			return 0, fmt.Errorf("failed to insert chunks: %w", err)
		}
		return inserted, nil
	})
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

func (r *Repository) SelectEmbeddable(ctx context.Context, documentID *uuid.UUID, maxRetries, limit int) ([]indexing.EmbeddableChunk, error) {
	rows, err := r.q.SelectEmbeddableChunks(ctx, sqlc.SelectEmbeddableChunksParams{
		DocumentID: UUIDPtrToPgtype(documentID),
		MaxRetries: int32(maxRetries),
		RowLimit:   int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to select embeddable chunks: %w", err)
	}

	chunks := make([]indexing.EmbeddableChunk, 0, len(rows))
	for _, row := range rows {
		chunks = append(chunks, indexing.EmbeddableChunk{
			ID:         PgtypeToUUID(row.ID),
			Content:    row.Content,
			RetryCount: int(row.RetryCount),
		})
	}
	return chunks, nil
}

func (r *Repository) MarkEmbedded(ctx context.Context, chunkID uuid.UUID, embedding []float32) error {
	vec := pgvector.NewVector(embedding)
	err := r.q.MarkChunkEmbedded(ctx, sqlc.MarkChunkEmbeddedParams{
		ID:        UUIDToPgtype(chunkID),
		Embedding: &vec,
	})
	if err != nil {
		return fmt.Errorf("failed to mark chunk as embedded: %w", err)
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, chunkID uuid.UUID, errorMessage string) error {
	err := r.q.MarkChunkFailed(ctx, sqlc.MarkChunkFailedParams{
		ID:           UUIDToPgtype(chunkID),
		ErrorMessage: StringToNullableText(errorMessage),
	})
	if err != nil {
		return fmt.Errorf("failed to mark chunk as failed: %w", err)
	}
	return nil
}

func (r *Repository) ResetFailed(ctx context.Context, documentID *uuid.UUID) (int64, error) {
	count, err := r.q.ResetFailedChunks(ctx, UUIDPtrToPgtype(documentID))
	if err != nil {
		return 0, fmt.Errorf("failed to reset failed chunks: %w", err)
	}
	return count, nil
}

func (r *Repository) Stats(ctx context.Context) (*indexing.Stats, error) {
	docRows, err := r.q.CountDocumentsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	chunkRows, err := r.q.CountChunksByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count chunks: %w", err)
	}

	total, err := r.q.CountChunks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count total chunks: %w", err)
	}

	withEmbedding, err := r.q.CountChunksWithEmbedding(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count embedded chunks: %w", err)
	}

	stats := &indexing.Stats{
		DocumentsByStatus:   make(map[indexing.DocumentStatus]int64),
		ChunksByStatus:      make(map[indexing.ChunkStatus]int64),
		ChunksTotal:         total,
		ChunksWithEmbedding: withEmbedding,
	}
	for _, row := range docRows {
		stats.DocumentsByStatus[indexing.DocumentStatus(row.Status)] = row.Count
	}
	for _, row := range chunkRows {
		stats.ChunksByStatus[indexing.ChunkStatus(row.Status)] = row.Count
	}

	return stats, nil
}

// convertDocument は sqlc.Document を indexing.Document に変換する。
func convertDocument(row sqlc.Document) *indexing.Document {
	return &indexing.Document{
		ID:           PgtypeToUUID(row.ID),
		Title:        row.Title,
		SourcePath:   row.SourcePath,
		Status:       indexing.DocumentStatus(row.Status),
		ErrorMessage: PgtextToStringPtr(row.ErrorMessage),
		CreatedAt:    PgtypeToTime(row.CreatedAt),
		UpdatedAt:    PgtypeToTime(row.UpdatedAt),
	}
}
