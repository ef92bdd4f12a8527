package indexing

import "errors"

var (
	// ErrEmptyText は正規化後のテキストが空の場合に返される
	ErrEmptyText = errors.New("document text is empty after normalization")
	// ErrNoChunks は分割結果が0件の場合に返される
	ErrNoChunks = errors.New("no chunks produced from document")
	// ErrInvalidBatchSize はバッチサイズが不正な場合に返される
	ErrInvalidBatchSize = errors.New("batch size must be positive")
	// ErrInvalidMaxRetries は最大リトライ回数が不正な場合に返される
	ErrInvalidMaxRetries = errors.New("max retries must be positive")
)
