package indexing

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// \w はASCII限定のため、Unicodeの文字・数字を残すにはクラス指定が必要
	specialRe    = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?;:()\-'"]+`)
	pageNumberRe = regexp.MustCompile(`\b[Pp]age\s+\d+\b`)
	pageAbbrevRe = regexp.MustCompile(`\bp\.\s*\d+\b`)
)

// Normalize はチャンク分割前にドキュメントテキストを整形する。
// 空白の圧縮、記号の除去、ページ番号表記の削除を順に適用する。
func Normalize(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = specialRe.ReplaceAllString(text, "")
	text = pageNumberRe.ReplaceAllString(text, "")
	text = pageAbbrevRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
