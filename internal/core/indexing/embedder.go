package indexing

import "context"

// TaskType はEmbedding生成の用途を表す。
// プロバイダによっては用途に応じて異なるベクトルを返す。
type TaskType string

const (
	// TaskDocument は保存対象ドキュメントのEmbedding生成
	TaskDocument TaskType = "retrieval_document"
	// TaskQuery は検索クエリのEmbedding生成
	TaskQuery TaskType = "retrieval_query"
)

// Embedder はテキストのEmbedding生成インターフェース
type Embedder interface {
	// Embed は単一テキストのEmbeddingを生成する
	Embed(ctx context.Context, text string, task TaskType) ([]float32, error)

	// BatchEmbed は複数テキストのEmbeddingを入力順で生成する
	BatchEmbed(ctx context.Context, texts []string, task TaskType) ([][]float32, error)

	// Dimension はベクトル次元数を返す
	Dimension() int
}
