package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// extractPDF はPDFファイルから全ページのテキストを抽出する
func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}

	return buf.String(), nil
}
