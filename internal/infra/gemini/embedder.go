package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/luthfiarsd/TutorAI-Final/internal/core/indexing"
)

const (
	// DefaultEmbeddingModel はモデル未指定時のデフォルトモデル
	DefaultEmbeddingModel = "gemini-embedding-001"
	// DefaultEmbeddingDimension はベクトル次元のデフォルト値
	DefaultEmbeddingDimension = 768
	// DefaultTimeout はAPI呼び出し1回あたりのタイムアウト
	DefaultTimeout = 30 * time.Second
)

// Embedder は Gemini API を使用してテキストをベクトルに変換する
type Embedder struct {
	client    *genai.Client
	model     string
	dimension int
	timeout   time.Duration
}

type embedderOptions struct {
	model     string
	dimension int
	timeout   time.Duration
}

// EmbedderOption は Embedder のオプション設定
type EmbedderOption func(*embedderOptions)

// WithEmbeddingModel はモデル名を上書きする
func WithEmbeddingModel(model string) EmbedderOption {
	return func(o *embedderOptions) {
		o.model = model
	}
}

// WithEmbeddingDimension はベクトル次元を上書きする
func WithEmbeddingDimension(dimension int) EmbedderOption {
	return func(o *embedderOptions) {
		o.dimension = dimension
	}
}

// WithTimeout はAPI呼び出しのタイムアウトを上書きする
func WithTimeout(timeout time.Duration) EmbedderOption {
	return func(o *embedderOptions) {
		o.timeout = timeout
	}
}

// NewEmbedder は新しい Embedder を作成する
func NewEmbedder(ctx context.Context, apiKey string, opts ...EmbedderOption) (*Embedder, error) {
	options := embedderOptions{
		model:     DefaultEmbeddingModel,
		dimension: DefaultEmbeddingDimension,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&options)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Embedder{
		client:    client,
		model:     options.model,
		dimension: options.dimension,
		timeout:   options.timeout,
	}, nil
}

// Embed は単一テキストの Embedding を生成する。
// 用途に応じたタスクタイプを指定することで検索精度を高められる。
func (e *Embedder) Embed(ctx context.Context, text string, task indexing.TaskType) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("no text provided")
	}

	embeddings, err := e.BatchEmbed(ctx, []string{text}, task)
	if err != nil {
		return nil, err
	}

	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings generated")
	}

	return embeddings[0], nil
}

// maxBatchSize はGemini APIの1リクエストあたりの入力上限
const maxBatchSize = 100

// BatchEmbed はバッチで Embedding を生成する。
// 入力は最大100件ごとのリクエストに分割され、結果の順序は入力の順序と一致する。
// いずれかのリクエストが失敗した時点で処理を中断する。
func (e *Embedder) BatchEmbed(ctx context.Context, texts []string, task indexing.TaskType) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}

	embeddings := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(texts) {
			end = len(texts)
		}

		batch, err := e.embedBatch(ctx, texts[start:end], task)
		if err != nil {
			return nil, err
		}
		embeddings = append(embeddings, batch...)
	}

	return embeddings, nil
}

// embedBatch は1リクエスト分のEmbeddingを生成する
func (e *Embedder) embedBatch(ctx context.Context, texts []string, task indexing.TaskType) ([][]float32, error) {
	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.Models.EmbedContent(ctx, e.model, contents, &genai.EmbedContentConfig{
		TaskType:             TaskTypeString(task),
		OutputDimensionality: genai.Ptr(int32(e.dimension)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}

	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("unexpected embedding count: got %d, want %d", len(resp.Embeddings), len(texts))
	}

	embeddings := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		if len(emb.Values) != e.dimension {
			return nil, fmt.Errorf("unexpected embedding dimension: got %d, want %d", len(emb.Values), e.dimension)
		}
		embeddings[i] = emb.Values
	}

	return embeddings, nil
}

// TaskTypeString はタスクタイプをGemini APIの表記に変換する
func TaskTypeString(task indexing.TaskType) string {
	switch task {
	case indexing.TaskQuery:
		return "RETRIEVAL_QUERY"
	default:
		return "RETRIEVAL_DOCUMENT"
	}
}

// ModelName はモデル名を返す
func (e *Embedder) ModelName() string {
	return e.model
}

// Dimension はベクトル次元数を返す
func (e *Embedder) Dimension() int {
	return e.dimension
}

// インターフェース実装の確認
var _ indexing.Embedder = (*Embedder)(nil)
