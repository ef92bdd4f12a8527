package chunker

import "errors"

var (
	// ErrInvalidConfig は設定が不正な場合に返されます
	ErrInvalidConfig = errors.New("invalid chunker config")

	// ErrUnknownStrategy は未知の分割戦略が指定された場合に返されます
	ErrUnknownStrategy = errors.New("unknown chunking strategy")

	// ErrNoSentences は文境界が検出できなかった場合に返されます
	ErrNoSentences = errors.New("no sentence boundaries found")
)
