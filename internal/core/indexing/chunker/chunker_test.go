package chunker

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeSentences は1文ちょうど50文字の文をn個生成する
func makeSentences(n int) []string {
	sentences := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		s := fmt.Sprintf("Sentence %02d %s.", i, strings.Repeat("a", 37))
		sentences = append(sentences, s)
	}
	return sentences
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(StrategySentence, Config{TargetSize: 0, Overlap: 0})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(StrategySentence, Config{TargetSize: 100, Overlap: 100})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(Strategy("unknown"), DefaultConfig())
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestChunkEmptyInputProducesNoChunks(t *testing.T) {
	c, err := New(StrategySentence, DefaultConfig())
	require.NoError(t, err)

	pieces, err := c.Chunk("   \n\t ")
	require.NoError(t, err)
	assert.Empty(t, pieces)
}

func TestChunkShortTextProducesSingleChunk(t *testing.T) {
	c, err := New(StrategySentence, DefaultConfig())
	require.NoError(t, err)

	pieces, err := c.Chunk("Hello world.")
	require.NoError(t, err)
	require.Len(t, pieces, 1)

	assert.Equal(t, "Hello world.", pieces[0].Content)
	assert.Equal(t, 0, pieces[0].Index)
	assert.Equal(t, 0, pieces[0].StartChar)
	assert.Equal(t, 12, pieces[0].EndChar)
	assert.Greater(t, pieces[0].Tokens, 0)
}

func TestChunkSentenceStrategyPacksWithOverlap(t *testing.T) {
	sentences := makeSentences(49)
	text := strings.Join(sentences, " ")
	require.Len(t, text, 49*50+48)

	c, err := New(StrategySentence, DefaultConfig())
	require.NoError(t, err)

	pieces, err := c.Chunk(text)
	require.NoError(t, err)
	require.Len(t, pieces, 3)

	// 各チャンクは目標サイズ以内に文を詰めたもの
	assert.Equal(t, strings.Join(sentences[0:19], " "), pieces[0].Content)
	assert.Equal(t, strings.Join(sentences[16:35], " "), pieces[1].Content)
	assert.Equal(t, strings.Join(sentences[32:49], " "), pieces[2].Content)

	// 隣接チャンクは末尾3文（152文字）を共有する
	assert.True(t, strings.HasSuffix(pieces[0].Content, strings.Join(sentences[16:19], " ")))
	assert.True(t, strings.HasSuffix(pieces[1].Content, strings.Join(sentences[32:35], " ")))

	// Indexは0始まりの連番
	for i, p := range pieces {
		assert.Equal(t, i, p.Index)
		assert.LessOrEqual(t, len(p.Content), DefaultConfig().TargetSize)
		assert.Greater(t, p.Tokens, 0)
	}

	// 先頭チャンクの位置は正確に解決される
	assert.Equal(t, 0, pieces[0].StartChar)
	assert.Equal(t, len(pieces[0].Content), pieces[0].EndChar)

	// 重複チャンクは前方探索で見つからないため、前チャンク終端が開始位置になる
	assert.Equal(t, pieces[0].EndChar, pieces[1].StartChar)
}

func TestChunkOversizedSentenceBecomesOwnChunk(t *testing.T) {
	text := strings.Repeat("a", 1499) + "."

	c, err := New(StrategySentence, DefaultConfig())
	require.NoError(t, err)

	pieces, err := c.Chunk(text)
	require.NoError(t, err)
	require.Len(t, pieces, 1)
	assert.Equal(t, text, pieces[0].Content)
}

func TestChunkRecursiveStrategySplitsOnParagraphs(t *testing.T) {
	paragraphs := []string{
		strings.Repeat("a", 600),
		strings.Repeat("b", 600),
		strings.Repeat("c", 600),
	}
	text := strings.Join(paragraphs, "\n\n")

	c, err := New(StrategyRecursive, DefaultConfig())
	require.NoError(t, err)

	pieces, err := c.Chunk(text)
	require.NoError(t, err)
	require.Len(t, pieces, 3)

	for i, p := range pieces {
		assert.Equal(t, paragraphs[i], p.Content)
		assert.Equal(t, i, p.Index)
	}
}

func TestChunkFallsBackToNextStrategy(t *testing.T) {
	c, err := New(StrategySentence, DefaultConfig())
	require.NoError(t, err)

	failing := func(text string) ([]string, error) {
		return nil, errors.New("boom")
	}
	c.strategies = []strategyFunc{
		failing,
		func(text string) ([]string, error) { return c.hardSplit(text), nil },
	}

	text := strings.Repeat("a", 2500)
	pieces, err := c.Chunk(text)
	require.NoError(t, err)

	// 固定長ウィンドウ: [0:1000] [800:1800] [1600:2500]
	require.Len(t, pieces, 3)
	assert.Len(t, pieces[0].Content, 1000)
	assert.Len(t, pieces[1].Content, 1000)
	assert.Len(t, pieces[2].Content, 900)
}

func TestChunkAllStrategiesFail(t *testing.T) {
	c, err := New(StrategySentence, DefaultConfig())
	require.NoError(t, err)

	c.strategies = []strategyFunc{
		func(text string) ([]string, error) { return nil, errors.New("first") },
		func(text string) ([]string, error) { return nil, errors.New("second") },
	}

	_, err = c.Chunk("some text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "second")
}

func TestHardSplitCutsAtSentenceBoundaryNearWindow(t *testing.T) {
	c, err := New(StrategySentence, Config{TargetSize: 100, Overlap: 20})
	require.NoError(t, err)

	// 120文字目に文末記号があるテキスト: 境界走査で切断位置が伸びる
	text := strings.Repeat("a", 119) + "." + strings.Repeat("b", 100)
	chunks := c.hardSplit(text)

	require.NotEmpty(t, chunks)
	assert.Equal(t, strings.Repeat("a", 119)+".", chunks[0])
}

func TestHardSplitStopsWhenBoundaryReachesEnd(t *testing.T) {
	c, err := New(StrategySentence, DefaultConfig())
	require.NoError(t, err)

	// 境界走査がテキスト終端まで到達するケース:
	// 前チャンクに完全に含まれる余分なチャンクを出してはならない
	text := strings.Repeat("a", 1049) + "."
	chunks := c.hardSplit(text)

	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0])
}

func TestSplitSentences(t *testing.T) {
	assert.Equal(t,
		[]string{"One.", "Two!", "Three?", "Four"},
		splitSentences("One. Two! Three? Four"),
	)

	// 連続した文末記号は1つの境界として扱う
	assert.Equal(t,
		[]string{"Wait...", "done."},
		splitSentences("Wait... done."),
	)

	// 小数点は境界にならない
	assert.Equal(t,
		[]string{"The value of pi is 3.14 exactly."},
		splitSentences("The value of pi is 3.14 exactly."),
	)
}
