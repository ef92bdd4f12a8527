package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

// DocumentRegisterAction はドキュメントを登録するコマンドのアクション
func DocumentRegisterAction(ctx context.Context, cmd *cli.Command) error {
	title := cmd.String("title")
	path := cmd.String("file")
	envFile := cmd.String("env")

	// 共通コンテキストの初期化
	appCtx, err := NewAppContext(ctx, envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	doc, err := appCtx.Container.IndexService.Register(ctx, title, path)
	if err != nil {
		slog.Error("ドキュメント登録に失敗しました", "error", err)
		return err
	}

	fmt.Printf("registered document: %s\n", doc.ID)
	return nil
}

// DocumentIndexAction はドキュメントをチャンク分割するコマンドのアクション
func DocumentIndexAction(ctx context.Context, cmd *cli.Command) error {
	idStr := cmd.String("id")
	envFile := cmd.String("env")

	id, err := uuid.Parse(idStr)
	if err != nil {
		return fmt.Errorf("invalid document id: %w", err)
	}

	// 共通コンテキストの初期化
	appCtx, err := NewAppContext(ctx, envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	slog.Info("インデックス処理を開始", "documentID", id)

	result, err := appCtx.Container.IndexService.Index(ctx, id)
	if err != nil {
		slog.Error("インデックス処理に失敗しました", "error", err)
		return err
	}

	fmt.Printf("indexed document %s: %d chunks in %s\n", result.DocumentID, result.ChunkCount, result.Duration)
	return nil
}

// DocumentDeleteAction はドキュメントを削除するコマンドのアクション
func DocumentDeleteAction(ctx context.Context, cmd *cli.Command) error {
	idStr := cmd.String("id")
	envFile := cmd.String("env")

	id, err := uuid.Parse(idStr)
	if err != nil {
		return fmt.Errorf("invalid document id: %w", err)
	}

	// 共通コンテキストの初期化
	appCtx, err := NewAppContext(ctx, envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := appCtx.Container.IndexService.DeleteDocument(ctx, id); err != nil {
		slog.Error("ドキュメント削除に失敗しました", "error", err)
		return err
	}

	fmt.Printf("deleted document: %s\n", id)
	return nil
}
