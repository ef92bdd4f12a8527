package indexing

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luthfiarsd/TutorAI-Final/internal/core/indexing/chunker"
)

type mockRepository struct {
	CreateDocumentFunc       func(ctx context.Context, title, sourcePath string) (*Document, error)
	GetDocumentFunc          func(ctx context.Context, id uuid.UUID) (*Document, error)
	UpdateDocumentStatusFunc func(ctx context.Context, id uuid.UUID, status DocumentStatus, errorMessage *string) error
	DeleteDocumentFunc       func(ctx context.Context, id uuid.UUID) error
	ReplaceChunksFunc        func(ctx context.Context, documentID uuid.UUID, chunks []ChunkRecord) (int, error)
	SelectEmbeddableFunc     func(ctx context.Context, documentID *uuid.UUID, maxRetries, limit int) ([]EmbeddableChunk, error)
	MarkEmbeddedFunc         func(ctx context.Context, chunkID uuid.UUID, embedding []float32) error
	MarkFailedFunc           func(ctx context.Context, chunkID uuid.UUID, errorMessage string) error
	ResetFailedFunc          func(ctx context.Context, documentID *uuid.UUID) (int64, error)
	StatsFunc                func(ctx context.Context) (*Stats, error)
}

func (m *mockRepository) CreateDocument(ctx context.Context, title, sourcePath string) (*Document, error) {
	return m.CreateDocumentFunc(ctx, title, sourcePath)
}

func (m *mockRepository) GetDocument(ctx context.Context, id uuid.UUID) (*Document, error) {
	return m.GetDocumentFunc(ctx, id)
}

func (m *mockRepository) UpdateDocumentStatus(ctx context.Context, id uuid.UUID, status DocumentStatus, errorMessage *string) error {
	return m.UpdateDocumentStatusFunc(ctx, id, status, errorMessage)
}

func (m *mockRepository) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	return m.DeleteDocumentFunc(ctx, id)
}

func (m *mockRepository) ReplaceChunks(ctx context.Context, documentID uuid.UUID, chunks []ChunkRecord) (int, error) {
	return m.ReplaceChunksFunc(ctx, documentID, chunks)
}

func (m *mockRepository) SelectEmbeddable(ctx context.Context, documentID *uuid.UUID, maxRetries, limit int) ([]EmbeddableChunk, error) {
	return m.SelectEmbeddableFunc(ctx, documentID, maxRetries, limit)
}

func (m *mockRepository) MarkEmbedded(ctx context.Context, chunkID uuid.UUID, embedding []float32) error {
	return m.MarkEmbeddedFunc(ctx, chunkID, embedding)
}

func (m *mockRepository) MarkFailed(ctx context.Context, chunkID uuid.UUID, errorMessage string) error {
	return m.MarkFailedFunc(ctx, chunkID, errorMessage)
}

func (m *mockRepository) ResetFailed(ctx context.Context, documentID *uuid.UUID) (int64, error) {
	return m.ResetFailedFunc(ctx, documentID)
}

func (m *mockRepository) Stats(ctx context.Context) (*Stats, error) {
	return m.StatsFunc(ctx)
}

var _ Repository = (*mockRepository)(nil)

type mockEmbedder struct {
	EmbedFunc      func(ctx context.Context, text string, task TaskType) ([]float32, error)
	BatchEmbedFunc func(ctx context.Context, texts []string, task TaskType) ([][]float32, error)
}

func (m *mockEmbedder) Embed(ctx context.Context, text string, task TaskType) ([]float32, error) {
	return m.EmbedFunc(ctx, text, task)
}

func (m *mockEmbedder) BatchEmbed(ctx context.Context, texts []string, task TaskType) ([][]float32, error) {
	if m.BatchEmbedFunc != nil {
		return m.BatchEmbedFunc(ctx, texts, task)
	}

	embeddings := make([][]float32, 0, len(texts))
	for _, text := range texts {
		embedding, err := m.EmbedFunc(ctx, text, task)
		if err != nil {
			return nil, err
		}
		embeddings = append(embeddings, embedding)
	}
	return embeddings, nil
}

func (m *mockEmbedder) Dimension() int {
	return 768
}

type mockExtractor struct {
	ExtractFunc func(ctx context.Context, path string) (string, error)
}

func (m *mockExtractor) Extract(ctx context.Context, path string) (string, error) {
	return m.ExtractFunc(ctx, path)
}

func newTestService(t *testing.T, repo *mockRepository, extractor *mockExtractor, embedder *mockEmbedder) *IndexService {
	t.Helper()

	c, err := chunker.New(chunker.StrategySentence, chunker.DefaultConfig())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewIndexService(repo, extractor, embedder, c, WithIndexLogger(logger))
}

func TestRegisterValidatesInput(t *testing.T) {
	svc := newTestService(t, &mockRepository{}, &mockExtractor{}, &mockEmbedder{})

	_, err := svc.Register(context.Background(), "", "/tmp/doc.pdf")
	require.Error(t, err)

	_, err = svc.Register(context.Background(), "title", "")
	require.Error(t, err)
}

func TestRegisterCreatesDocument(t *testing.T) {
	docID := uuid.New()
	repo := &mockRepository{
		CreateDocumentFunc: func(ctx context.Context, title, sourcePath string) (*Document, error) {
			return &Document{ID: docID, Title: title, SourcePath: sourcePath, Status: DocumentStatusPending}, nil
		},
	}
	svc := newTestService(t, repo, &mockExtractor{}, &mockEmbedder{})

	doc, err := svc.Register(context.Background(), "lecture notes", "/tmp/notes.pdf")
	require.NoError(t, err)
	assert.Equal(t, docID, doc.ID)
	assert.Equal(t, DocumentStatusPending, doc.Status)
}

func TestIndexStoresChunksAndCompletes(t *testing.T) {
	docID := uuid.New()
	var statuses []DocumentStatus
	var stored []ChunkRecord

	repo := &mockRepository{
		GetDocumentFunc: func(ctx context.Context, id uuid.UUID) (*Document, error) {
			return &Document{ID: id, Title: "doc", SourcePath: "/tmp/doc.txt", Status: DocumentStatusPending}, nil
		},
		UpdateDocumentStatusFunc: func(ctx context.Context, id uuid.UUID, status DocumentStatus, errorMessage *string) error {
			statuses = append(statuses, status)
			return nil
		},
		ReplaceChunksFunc: func(ctx context.Context, documentID uuid.UUID, chunks []ChunkRecord) (int, error) {
			stored = chunks
			return len(chunks), nil
		},
	}
	extractor := &mockExtractor{
		ExtractFunc: func(ctx context.Context, path string) (string, error) {
			return "First sentence here. Second sentence here.", nil
		},
	}

	svc := newTestService(t, repo, extractor, &mockEmbedder{})

	result, err := svc.Index(context.Background(), docID)
	require.NoError(t, err)

	assert.Equal(t, docID, result.DocumentID)
	assert.Equal(t, len(stored), result.ChunkCount)
	assert.Equal(t, []DocumentStatus{DocumentStatusProcessing, DocumentStatusCompleted}, statuses)

	// チャンクは0始まりの連番で保存される
	require.NotEmpty(t, stored)
	for i, c := range stored {
		assert.Equal(t, i, c.ChunkIndex)
		assert.NotEmpty(t, c.Content)
	}
}

func TestIndexExtractFailureMarksDocumentFailed(t *testing.T) {
	docID := uuid.New()
	var failedMessage *string

	repo := &mockRepository{
		GetDocumentFunc: func(ctx context.Context, id uuid.UUID) (*Document, error) {
			return &Document{ID: id, SourcePath: "/tmp/doc.pdf"}, nil
		},
		UpdateDocumentStatusFunc: func(ctx context.Context, id uuid.UUID, status DocumentStatus, errorMessage *string) error {
			if status == DocumentStatusFailed {
				failedMessage = errorMessage
			}
			return nil
		},
	}
	extractor := &mockExtractor{
		ExtractFunc: func(ctx context.Context, path string) (string, error) {
			return "", errors.New("broken pdf")
		},
	}

	svc := newTestService(t, repo, extractor, &mockEmbedder{})

	_, err := svc.Index(context.Background(), docID)
	require.Error(t, err)
	require.NotNil(t, failedMessage)
	assert.Contains(t, *failedMessage, "broken pdf")
}

func TestIndexEmptyTextFails(t *testing.T) {
	docID := uuid.New()
	var lastStatus DocumentStatus

	repo := &mockRepository{
		GetDocumentFunc: func(ctx context.Context, id uuid.UUID) (*Document, error) {
			return &Document{ID: id, SourcePath: "/tmp/doc.txt"}, nil
		},
		UpdateDocumentStatusFunc: func(ctx context.Context, id uuid.UUID, status DocumentStatus, errorMessage *string) error {
			lastStatus = status
			return nil
		},
	}
	extractor := &mockExtractor{
		ExtractFunc: func(ctx context.Context, path string) (string, error) {
			// 正規化で全て除去される記号のみのテキスト
			return "$$$ @@@ ###", nil
		},
	}

	svc := newTestService(t, repo, extractor, &mockEmbedder{})

	_, err := svc.Index(context.Background(), docID)
	require.ErrorIs(t, err, ErrEmptyText)
	assert.Equal(t, DocumentStatusFailed, lastStatus)
}

func TestEmbedPendingIsolatesPerChunkFailures(t *testing.T) {
	id1, id2, id3 := uuid.New(), uuid.New(), uuid.New()
	var embedded []uuid.UUID
	var failed []uuid.UUID

	repo := &mockRepository{
		SelectEmbeddableFunc: func(ctx context.Context, documentID *uuid.UUID, maxRetries, limit int) ([]EmbeddableChunk, error) {
			return []EmbeddableChunk{
				{ID: id1, Content: "first"},
				{ID: id2, Content: "second"},
				{ID: id3, Content: "third"},
			}, nil
		},
		MarkEmbeddedFunc: func(ctx context.Context, chunkID uuid.UUID, embedding []float32) error {
			embedded = append(embedded, chunkID)
			return nil
		},
		MarkFailedFunc: func(ctx context.Context, chunkID uuid.UUID, errorMessage string) error {
			failed = append(failed, chunkID)
			assert.Contains(t, errorMessage, "rate limited")
			return nil
		},
	}
	embedder := &mockEmbedder{
		EmbedFunc: func(ctx context.Context, text string, task TaskType) ([]float32, error) {
			if text == "second" {
				return nil, errors.New("rate limited")
			}
			assert.Equal(t, TaskDocument, task)
			return make([]float32, 768), nil
		},
	}

	svc := newTestService(t, repo, &mockExtractor{}, embedder)

	result, err := svc.EmbedPending(context.Background(), EmbedBatchParams{})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []uuid.UUID{id2}, result.FailedIDs)
	assert.Equal(t, []uuid.UUID{id1, id3}, embedded)
	assert.Equal(t, []uuid.UUID{id2}, failed)
}

func TestEmbedPendingPersistenceErrorAborts(t *testing.T) {
	repo := &mockRepository{
		SelectEmbeddableFunc: func(ctx context.Context, documentID *uuid.UUID, maxRetries, limit int) ([]EmbeddableChunk, error) {
			return []EmbeddableChunk{{ID: uuid.New(), Content: "first"}}, nil
		},
		MarkEmbeddedFunc: func(ctx context.Context, chunkID uuid.UUID, embedding []float32) error {
			return errors.New("connection lost")
		},
	}
	embedder := &mockEmbedder{
		EmbedFunc: func(ctx context.Context, text string, task TaskType) ([]float32, error) {
			return make([]float32, 768), nil
		},
	}

	svc := newTestService(t, repo, &mockExtractor{}, embedder)

	_, err := svc.EmbedPending(context.Background(), EmbedBatchParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
}

func TestEmbedPendingValidatesParams(t *testing.T) {
	svc := newTestService(t, &mockRepository{}, &mockExtractor{}, &mockEmbedder{})

	_, err := svc.EmbedPending(context.Background(), EmbedBatchParams{BatchSize: -1})
	require.ErrorIs(t, err, ErrInvalidBatchSize)

	_, err = svc.EmbedPending(context.Background(), EmbedBatchParams{MaxRetries: -1})
	require.ErrorIs(t, err, ErrInvalidMaxRetries)
}

func TestEmbedPendingAppliesDefaults(t *testing.T) {
	var gotMaxRetries, gotLimit int

	repo := &mockRepository{
		SelectEmbeddableFunc: func(ctx context.Context, documentID *uuid.UUID, maxRetries, limit int) ([]EmbeddableChunk, error) {
			gotMaxRetries = maxRetries
			gotLimit = limit
			return nil, nil
		},
	}

	svc := newTestService(t, repo, &mockExtractor{}, &mockEmbedder{})

	result, err := svc.EmbedPending(context.Background(), EmbedBatchParams{})
	require.NoError(t, err)

	assert.Equal(t, DefaultEmbedMaxRetries, gotMaxRetries)
	assert.Equal(t, DefaultEmbedBatchSize, gotLimit)
	assert.Equal(t, 0, result.Processed)
}

func TestRetryFailedReturnsResetCount(t *testing.T) {
	var gotDocumentID *uuid.UUID
	docID := uuid.New()

	repo := &mockRepository{
		ResetFailedFunc: func(ctx context.Context, documentID *uuid.UUID) (int64, error) {
			gotDocumentID = documentID
			return 4, nil
		},
	}

	svc := newTestService(t, repo, &mockExtractor{}, &mockEmbedder{})

	count, err := svc.RetryFailed(context.Background(), &docID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	require.NotNil(t, gotDocumentID)
	assert.Equal(t, docID, *gotDocumentID)
}
