package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	coresearch "github.com/luthfiarsd/TutorAI-Final/internal/core/search"
)

// SearchAction はベクトル検索を実行するコマンドのアクション
func SearchAction(ctx context.Context, cmd *cli.Command) error {
	query := cmd.String("query")
	limit := int(cmd.Int("limit"))
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

	if limit == 0 {
		limit = appCtx.Container.Config.Search.TopK
	}

	results, err := appCtx.Container.SearchService.Search(ctx, coresearch.SearchParams{
		Query:      query,
		Limit:      limit,
		DocumentID: documentID,
	})
	if err != nil {
		slog.Error("検索に失敗しました", "error", err)
		return err
	}

	if len(results) == 0 {
		fmt.Println("no results found")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Chunk", "Document", "Index", "Similarity", "Content")
	for _, r := range results {
		table.Append(
			r.ChunkID.String(),
			r.DocumentID.String(),
			fmt.Sprintf("%d", r.ChunkIndex),
			fmt.Sprintf("%.4f", r.Similarity),
			truncate(r.Content, 80),
		)
	}
	table.Render()

	return nil
}

// truncate は表示用にテキストを切り詰める
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
