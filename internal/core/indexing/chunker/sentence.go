package chunker

import "strings"

// splitBySentence は文単位でチャンクを詰める分割戦略。
// 目標サイズを超えたらチャンクを確定し、重複分として末尾の文を次チャンクへ引き継ぐ。
func (c *Chunker) splitBySentence(text string) ([]string, error) {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil, ErrNoSentences
	}

	var chunks []string
	var current []string
	currentLen := 0

	for _, sentence := range sentences {
		addLen := len(sentence)
		if currentLen > 0 {
			addLen++ // 連結スペース分
		}

		if currentLen > 0 && currentLen+addLen > c.cfg.TargetSize {
			chunks = append(chunks, strings.Join(current, " "))

			current, currentLen = c.retainOverlap(current)

			addLen = len(sentence)
			if currentLen > 0 {
				addLen++
			}
		}

		current = append(current, sentence)
		currentLen += addLen
	}

	if currentLen > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks, nil
}

// retainOverlap は確定済みチャンクの末尾から、合計がOverlap以内に収まる文を残す
func (c *Chunker) retainOverlap(current []string) ([]string, int) {
	var retained []string
	retainedLen := 0

	for i := len(current) - 1; i >= 0; i-- {
		addLen := len(current[i])
		if retainedLen > 0 {
			addLen++
		}
		if retainedLen+addLen > c.cfg.Overlap {
			break
		}
		retained = append([]string{current[i]}, retained...)
		retainedLen += addLen
	}

	return retained, retainedLen
}

// splitSentences はテキストを文単位に分割する。
// 文末記号の連続の直後に空白または末尾が続く位置を文境界とみなす。
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	i := 0

	for i < len(text) {
		if !isSentenceEnd(text[i]) {
			i++
			continue
		}

		j := i
		for j < len(text) && isSentenceEnd(text[j]) {
			j++
		}

		if j < len(text) && text[j] != ' ' {
			// 小数点や略語の途中なので境界としない
			i = j
			continue
		}

		if s := strings.TrimSpace(text[start:j]); s != "" {
			sentences = append(sentences, s)
		}
		for j < len(text) && text[j] == ' ' {
			j++
		}
		start = j
		i = j
	}

	if start < len(text) {
		if s := strings.TrimSpace(text[start:]); s != "" {
			sentences = append(sentences, s)
		}
	}

	return sentences
}

func isSentenceEnd(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}
