package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luthfiarsd/TutorAI-Final/internal/core/indexing"
)

func TestTaskTypeString(t *testing.T) {
	assert.Equal(t, "RETRIEVAL_DOCUMENT", TaskTypeString(indexing.TaskDocument))
	assert.Equal(t, "RETRIEVAL_QUERY", TaskTypeString(indexing.TaskQuery))

	// 未知のタスクタイプはドキュメント扱いにする
	assert.Equal(t, "RETRIEVAL_DOCUMENT", TaskTypeString(indexing.TaskType("unknown")))
}
