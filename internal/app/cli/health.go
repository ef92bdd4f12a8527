package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/luthfiarsd/TutorAI-Final/internal/platform/config"
)

// HealthAction はDB接続とEmbeddingプロバイダ設定を確認するコマンドのアクション
func HealthAction(ctx context.Context, cmd *cli.Command) error {
	envFile := cmd.String("env")

	// 共通コンテキストの初期化
	appCtx, err := NewAppContext(ctx, envFile)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := appCtx.Container.Database().Pool.Ping(ctx); err != nil {
		slog.Error("データベース接続に失敗しました", "error", err)
		return fmt.Errorf("database ping failed: %w", err)
	}

	cfg := appCtx.Container.Config
	if err := checkProviderKey(cfg); err != nil {
		return err
	}

	fmt.Printf("database: ok\n")
	fmt.Printf("embedding provider: %s (model: %s, dimension: %d)\n",
		cfg.Embedding.Provider, cfg.Embedding.Model, cfg.Embedding.Dimension)

	return nil
}

// checkProviderKey は選択中のプロバイダのAPIキーが設定されているか確認する
func checkProviderKey(cfg *config.Config) error {
	switch cfg.Embedding.Provider {
	case "gemini":
		if cfg.Embedding.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is not set")
		}
	case "openai":
		if cfg.Embedding.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is not set")
		}
	}
	return nil
}
