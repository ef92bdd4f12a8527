package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/luthfiarsd/TutorAI-Final/internal/core/indexing"
)

// Embedder は OpenAI API を使用してテキストをベクトルに変換する
type Embedder struct {
	client    openai.Client
	model     string
	dimension int
	timeout   time.Duration
}

const (
	// DefaultEmbeddingModel はモデル未指定時のデフォルトモデル
	DefaultEmbeddingModel = "text-embedding-3-small"
	// DefaultEmbeddingDimension はベクトル次元のデフォルト値
	DefaultEmbeddingDimension = 768
	// DefaultTimeout はAPI呼び出し1回あたりのタイムアウト
	DefaultTimeout = 30 * time.Second
)

type embedderOptions struct {
	model     string
	dimension int
	timeout   time.Duration
	baseURL   string
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

// WithBaseURL はAPIのベースURLを上書きする
func WithBaseURL(baseURL string) EmbedderOption {
	return func(o *embedderOptions) {
		o.baseURL = baseURL
	}
}

// NewEmbedder は新しい Embedder を作成する
func NewEmbedder(apiKey string, opts ...EmbedderOption) *Embedder {
	options := embedderOptions{
		model:     DefaultEmbeddingModel,
		dimension: DefaultEmbeddingDimension,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&options)
	}

	requestOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if options.baseURL != "" {
		requestOpts = append(requestOpts, option.WithBaseURL(options.baseURL))
	}

	return &Embedder{
		client:    openai.NewClient(requestOpts...),
		model:     options.model,
		dimension: options.dimension,
		timeout:   options.timeout,
	}
}

// Embed は単一テキストの Embedding を生成する。
// OpenAI APIはタスクタイプによる区別を持たないため、taskは無視される。
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

// maxBatchSize はOpenAI APIの1リクエストあたりの入力上限
const maxBatchSize = 100

// BatchEmbed はバッチで Embedding を生成する。
// 入力は最大100件ごとのリクエストに分割され、結果の順序は入力の順序と一致する。
// いずれかのリクエストが失敗した時点で処理を中断する。
func (e *Embedder) BatchEmbed(ctx context.Context, texts []string, _ indexing.TaskType) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}

	embeddings := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(texts) {
			end = len(texts)
		}

		batch, err := e.embedBatch(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		embeddings = append(embeddings, batch...)
	}

	return embeddings, nil
}

// embedBatch は1リクエスト分のEmbeddingを生成する
func (e *Embedder) embedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	params := openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(e.model),
	}

	if len(texts) == 1 {
		params.Input = openai.EmbeddingNewParamsInputUnion{
			OfString: openai.String(texts[0]),
		}
	} else {
		params.Input = openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		}
	}

	if e.dimension > 0 {
		params.Dimensions = openai.Int(int64(e.dimension))
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("unexpected embedding count: got %d, want %d", len(resp.Data), len(texts))
	}

	embeddings := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		vector := make([]float32, len(data.Embedding))
		for j, v := range data.Embedding {
			vector[j] = float32(v)
		}
		embeddings[i] = vector
	}

	return embeddings, nil
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
