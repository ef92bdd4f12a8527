package indexing

import "context"

// Extractor はファイルからプレーンテキストを抽出するインターフェース
type Extractor interface {
	// Extract は指定パスのファイルからテキストを抽出する
	Extract(ctx context.Context, path string) (string, error)
}
