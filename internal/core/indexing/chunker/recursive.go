package chunker

import "strings"

// recursiveSeparators は粗い順に試すセパレータの階層。
// 空文字列は文字単位の固定長分割へのフォールバックを意味する。
var recursiveSeparators = []string{"\n\n", "\n", ". ", "! ", "? ", "; ", ", ", " ", ""}

// splitRecursive はセパレータ階層による再帰分割戦略
func (c *Chunker) splitRecursive(text string) ([]string, error) {
	return c.recursiveSplit(text, recursiveSeparators), nil
}

// recursiveSplit はテキスト中に存在する最も粗いセパレータで分割し、
// 目標サイズを超える断片を残りのセパレータで再帰的に分割する。
func (c *Chunker) recursiveSplit(text string, separators []string) []string {
	if len(text) <= c.cfg.TargetSize {
		return []string{text}
	}

	separator := ""
	var remaining []string
	found := false
	for i, sep := range separators {
		if sep == "" {
			found = true
			break
		}
		if strings.Contains(text, sep) {
			separator = sep
			remaining = separators[i+1:]
			found = true
			break
		}
	}
	if !found || separator == "" {
		return c.hardSplit(text)
	}

	parts := splitKeepSeparator(text, separator)

	var final []string
	var goodSplits []string
	for _, part := range parts {
		if len(part) <= c.cfg.TargetSize {
			goodSplits = append(goodSplits, part)
			continue
		}
		if len(goodSplits) > 0 {
			final = append(final, c.mergeSplits(goodSplits)...)
			goodSplits = nil
		}
		final = append(final, c.recursiveSplit(part, remaining)...)
	}
	if len(goodSplits) > 0 {
		final = append(final, c.mergeSplits(goodSplits)...)
	}

	return final
}

// mergeSplits は小さな断片を目標サイズ以内で結合し、
// 確定時には先頭から断片を落として重複分を残す
func (c *Chunker) mergeSplits(splits []string) []string {
	var chunks []string
	var current []string
	total := 0

	for _, split := range splits {
		if total > 0 && total+len(split) > c.cfg.TargetSize {
			if merged := strings.TrimSpace(strings.Join(current, "")); merged != "" {
				chunks = append(chunks, merged)
			}
			for total > c.cfg.Overlap && len(current) > 0 {
				total -= len(current[0])
				current = current[1:]
			}
		}
		current = append(current, split)
		total += len(split)
	}

	if merged := strings.TrimSpace(strings.Join(current, "")); merged != "" {
		chunks = append(chunks, merged)
	}

	return chunks
}

// splitKeepSeparator はセパレータを直前の断片の末尾に残したまま分割する
func splitKeepSeparator(text, separator string) []string {
	parts := strings.SplitAfter(text, separator)
	result := parts[:0]
	for _, part := range parts {
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
