package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/luthfiarsd/TutorAI-Final/internal/core/indexing"
)

// Extractor はファイル拡張子に応じたテキスト抽出を行う
type Extractor struct{}

// NewExtractor は新しい Extractor を作成する
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract は指定パスのファイルからプレーンテキストを抽出する
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".txt", ".md", ".text":
		return readPlainText(path)
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

// インターフェース実装の確認
var _ indexing.Extractor = (*Extractor)(nil)
