package chunker

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Strategy はテキスト分割戦略を表す
type Strategy string

const (
	// StrategySentence は文境界ベースの分割
	StrategySentence Strategy = "sentence"
	// StrategyRecursive はセパレータ階層による再帰分割
	StrategyRecursive Strategy = "recursive"
)

// Config はチャンク分割の設定
type Config struct {
	// TargetSize はチャンクの目標文字数
	TargetSize int
	// Overlap は隣接チャンク間で重複させる文字数
	Overlap int
}

// DefaultConfig はデフォルトのチャンク設定を返す
func DefaultConfig() Config {
	return Config{
		TargetSize: 1000,
		Overlap:    200,
	}
}

// Piece は分割されたチャンク1件を表す。
// StartChar/EndCharは元テキスト中の位置で、重複領域を持つチャンクでは前方探索による近似値になる。
type Piece struct {
	Content   string
	Index     int
	StartChar int
	EndChar   int
	Tokens    int
}

// strategyFunc はテキストをチャンク文字列の列に分割する。
// 失敗した場合は次の戦略にフォールバックされる。
type strategyFunc func(text string) ([]string, error)

// Chunker はドキュメントテキストをチャンクに分割する
type Chunker struct {
	cfg        Config
	encoding   *tiktoken.Tiktoken
	strategies []strategyFunc
}

// New は指定された戦略のChunkerを作成する
func New(strategy Strategy, cfg Config) (*Chunker, error) {
	if cfg.TargetSize <= 0 {
		return nil, fmt.Errorf("%w: target size must be positive", ErrInvalidConfig)
	}
	if cfg.Overlap < 0 || cfg.Overlap >= cfg.TargetSize {
		return nil, fmt.Errorf("%w: overlap must be in [0, target size)", ErrInvalidConfig)
	}

	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding: %w", err)
	}

	c := &Chunker{
		cfg:      cfg,
		encoding: enc,
	}

	fallback := func(text string) ([]string, error) {
		return c.hardSplit(text), nil
	}

	switch strategy {
	case StrategySentence:
		c.strategies = []strategyFunc{c.splitBySentence, c.splitRecursive, fallback}
	case StrategyRecursive:
		c.strategies = []strategyFunc{c.splitRecursive, fallback}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}

	return c, nil
}

// Chunk はテキストを分割し、位置情報とトークン数を付与したチャンク列を返す。
// チャンクのIndexは0から始まる連番になる。空テキストは空の結果を返し、エラーにはしない。
func (c *Chunker) Chunk(text string) ([]Piece, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var contents []string
	var lastErr error
	for _, split := range c.strategies {
		result, err := split(text)
		if err != nil {
			lastErr = err
			continue
		}
		contents = result
		lastErr = nil
		break
	}
	if lastErr != nil {
		return nil, fmt.Errorf("all chunking strategies failed: %w", lastErr)
	}

	return c.locate(text, contents), nil
}

// locate は各チャンクの元テキスト中の位置を前方探索で解決する。
// 前チャンクの終端より前から始まる重複チャンクは見つからないため、
// その場合はカーソル位置を開始位置とみなす。
func (c *Chunker) locate(text string, contents []string) []Piece {
	pieces := make([]Piece, 0, len(contents))
	cursor := 0
	index := 0

	for _, content := range contents {
		content = strings.TrimSpace(content)
		if content == "" {
			continue
		}

		start := cursor
		if cursor <= len(text) {
			if pos := strings.Index(text[cursor:], content); pos >= 0 {
				start = cursor + pos
			}
		}
		end := start + len(content)

		pieces = append(pieces, Piece{
			Content:   content,
			Index:     index,
			StartChar: start,
			EndChar:   end,
			Tokens:    len(c.encoding.Encode(content, nil, nil)),
		})
		index++

		cursor = end
		if cursor > len(text) {
			cursor = len(text)
		}
	}

	return pieces
}

// boundaryScanWindow は固定長分割で境界を探すときに許容する超過文字数
const boundaryScanWindow = 100

// hardSplit は固定長ウィンドウによる分割。常に成功する最終フォールバック。
// ウィンドウ終端から少し先まで文末記号を探し、見つかればそこで切る。
func (c *Chunker) hardSplit(text string) []string {
	var chunks []string
	start := 0

	for start < len(text) {
		end := start + c.cfg.TargetSize
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}

		limit := end + boundaryScanWindow
		if limit > len(text) {
			limit = len(text)
		}
		cut := end
		for i := end; i < limit; i++ {
			switch text[i] {
			case '.', '!', '?', '\n':
				cut = i + 1
			}
			if cut != end {
				break
			}
		}

		chunks = append(chunks, text[start:cut])

		// 境界探索が終端まで到達したら、重複だけのチャンクを作らない
		if cut == len(text) {
			break
		}

		// overlap < TargetSize なので必ず前進する
		start = cut - c.cfg.Overlap
	}

	return chunks
}
