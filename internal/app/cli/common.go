package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/luthfiarsd/TutorAI-Final/internal/platform/config"
	"github.com/luthfiarsd/TutorAI-Final/internal/platform/container"
	"github.com/luthfiarsd/TutorAI-Final/internal/platform/logger"
)

// AppContext はコマンド実行に必要な共通コンテキストを保持する
type AppContext struct {
	Container *container.ServiceContainer
}

// NewAppContext は設定ファイルを読み込み、DBに接続して AppContext を作成する
func NewAppContext(ctx context.Context, envFile string) (*AppContext, error) {
	// 設定の読み込み（platform層を使用）
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// ロガーの初期化（platform層を使用）
	appLogger := logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
	})

	// コンテナの初期化（platform層を使用）
	cont, err := container.NewContainer(ctx, cfg, container.WithContainerLogger(appLogger))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}

	return &AppContext{
		Container: cont,
	}, nil
}

// Close はAppContextが保持するリソースをクリーンアップする
func (ac *AppContext) Close() {
	if ac.Container != nil {
		ac.Container.Close()
	}
}

// Logger はAppContextのロガーを返す
func (ac *AppContext) Logger() *slog.Logger {
	if ac.Container != nil {
		return ac.Container.Logger()
	}
	return slog.Default()
}

// parseOptionalUUID は空文字列をnilとして扱うUUIDパーサ
func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid: %w", err)
	}
	return &id, nil
}
