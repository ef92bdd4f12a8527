package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	coreindexing "github.com/luthfiarsd/TutorAI-Final/internal/core/indexing"
)

// EmbedRunAction はEmbedding未生成のチャンクをバッチ処理するコマンドのアクション
func EmbedRunAction(ctx context.Context, cmd *cli.Command) error {
	documentStr := cmd.String("document")
	batchSize := int(cmd.Int("batch-size"))
	maxRetries := int(cmd.Int("max-retries"))
	envFile := cmd.String("env")

	documentID, err := parseOptionalUUID(documentStr)
	if err != nil {
		return err
	}

	// 共通コンテキストの初期化
	appCtx, err := NewAppContext(ctx, envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	cfg := appCtx.Container.Config
	if batchSize == 0 {
		batchSize = cfg.Embedding.BatchSize
	}
	if maxRetries == 0 {
		maxRetries = cfg.Embedding.MaxRetries
	}

	slog.Info("Embeddingバッチ処理を開始",
		"batchSize", batchSize,
		"maxRetries", maxRetries,
	)

	result, err := appCtx.Container.IndexService.EmbedPending(ctx, coreindexing.EmbedBatchParams{
		DocumentID: documentID,
		BatchSize:  batchSize,
		MaxRetries: maxRetries,
	})
	if err != nil {
		slog.Error("Embeddingバッチ処理に失敗しました", "error", err)
		return err
	}

	fmt.Printf("processed=%d succeeded=%d failed=%d\n", result.Processed, result.Succeeded, result.Failed)
	for _, id := range result.FailedIDs {
		fmt.Printf("failed chunk: %s\n", id)
	}
	return nil
}

// EmbedRetryAction は失敗チャンクをリセットするコマンドのアクション
func EmbedRetryAction(ctx context.Context, cmd *cli.Command) error {
	documentStr := cmd.String("document")
	envFile := cmd.String("env")

	documentID, err := parseOptionalUUID(documentStr)
	if err != nil {
		return err
	}

	// 共通コンテキストの初期化
	appCtx, err := NewAppContext(ctx, envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	count, err := appCtx.Container.IndexService.RetryFailed(ctx, documentID)
	if err != nil {
		slog.Error("失敗チャンクのリセットに失敗しました", "error", err)
		return err
	}

	fmt.Printf("reset %d failed chunks\n", count)
	return nil
}
