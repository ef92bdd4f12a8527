package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	coreindexing "github.com/luthfiarsd/TutorAI-Final/internal/core/indexing"
)

// StatsAction はドキュメントとチャンクの集計値を表示するコマンドのアクション
func StatsAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")

	// 共通コンテキストの初期化
	appCtx, err := NewAppContext(ctx, envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	stats, err := appCtx.Container.IndexService.Stats(ctx)
	if err != nil {
		slog.Error("統計情報の取得に失敗しました", "error", err)
		return err
	}

	docTable := tablewriter.NewWriter(os.Stdout)
	docTable.Header("Document Status", "Count")
	for _, status := range []coreindexing.DocumentStatus{
		coreindexing.DocumentStatusPending,
		coreindexing.DocumentStatusProcessing,
		coreindexing.DocumentStatusCompleted,
		coreindexing.DocumentStatusFailed,
	} {
		docTable.Append(string(status), fmt.Sprintf("%d", stats.DocumentsByStatus[status]))
	}
	docTable.Render()

	chunkTable := tablewriter.NewWriter(os.Stdout)
	chunkTable.Header("Chunk Status", "Count")
	for _, status := range []coreindexing.ChunkStatus{
		coreindexing.ChunkStatusPending,
		coreindexing.ChunkStatusEmbedded,
		coreindexing.ChunkStatusFailed,
	} {
		chunkTable.Append(string(status), fmt.Sprintf("%d", stats.ChunksByStatus[status]))
	}
	chunkTable.Append("total", fmt.Sprintf("%d", stats.ChunksTotal))
	chunkTable.Append("with embedding", fmt.Sprintf("%d", stats.ChunksWithEmbedding))
	chunkTable.Render()

	return nil
}
