package extract

import (
	"fmt"
	"os"
)

// readPlainText はテキストファイルの内容をそのまま返す
func readPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}
