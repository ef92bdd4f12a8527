package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	appcli "github.com/luthfiarsd/TutorAI-Final/internal/app/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 構造化ログの設定
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	envFlag := &cli.StringFlag{
		Name:  "env",
		Usage: "環境変数ファイルパス",
		Value: ".env",
	}

	app := &cli.Command{
		Name:  "tutorai-indexer",
		Usage: "学習資料のインデックス化とセマンティック検索基盤",
		Commands: []*cli.Command{
			{
				Name:  "document",
				Usage: "ドキュメント管理コマンド",
				Commands: []*cli.Command{
					{
						Name:  "register",
						Usage: "ドキュメントを登録",
						Flags: []cli.Flag{
							envFlag,
							&cli.StringFlag{
								Name:     "title",
								Usage:    "ドキュメントのタイトル",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "file",
								Usage:    "ソースファイルのパス（.pdf / .txt / .md）",
								Required: true,
							},
						},
						Action: appcli.DocumentRegisterAction,
					},
					{
						Name:  "index",
						Usage: "ドキュメントをチャンク分割してインデックス化",
						Flags: []cli.Flag{
							envFlag,
							&cli.StringFlag{
								Name:     "id",
								Usage:    "ドキュメントID",
								Required: true,
							},
						},
						Action: appcli.DocumentIndexAction,
					},
					{
						Name:  "delete",
						Usage: "ドキュメントと配下のチャンクを削除",
						Flags: []cli.Flag{
							envFlag,
							&cli.StringFlag{
								Name:     "id",
								Usage:    "ドキュメントID",
								Required: true,
							},
						},
						Action: appcli.DocumentDeleteAction,
					},
				},
			},
			{
				Name:  "embed",
				Usage: "Embedding管理コマンド",
				Commands: []*cli.Command{
					{
						Name:  "run",
						Usage: "未処理チャンクのEmbeddingをバッチ生成",
						Flags: []cli.Flag{
							envFlag,
							&cli.StringFlag{
								Name:  "document",
								Usage: "対象ドキュメントID（省略時は全ドキュメント）",
							},
							&cli.IntFlag{
								Name:  "batch-size",
								Usage: "1回の実行で処理するチャンク数",
							},
							&cli.IntFlag{
								Name:  "max-retries",
								Usage: "リトライ回数の上限",
							},
						},
						Action: appcli.EmbedRunAction,
					},
					{
						Name:  "retry",
						Usage: "失敗チャンクをpendingに戻してリトライ回数をリセット",
						Flags: []cli.Flag{
							envFlag,
							&cli.StringFlag{
								Name:  "document",
								Usage: "対象ドキュメントID（省略時は全ドキュメント）",
							},
						},
						Action: appcli.EmbedRetryAction,
					},
				},
			},
			{
				Name:  "search",
				Usage: "ベクトル検索を実行",
				Flags: []cli.Flag{
					envFlag,
					&cli.StringFlag{
						Name:     "query",
						Usage:    "検索クエリ",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "取得件数",
					},
					&cli.StringFlag{
						Name:  "document",
						Usage: "対象ドキュメントID（省略時は全ドキュメント）",
					},
				},
				Action: appcli.SearchAction,
			},
			{
				Name:  "stats",
				Usage: "ドキュメントとチャンクの統計を表示",
				Flags: []cli.Flag{
					envFlag,
				},
				Action: appcli.StatsAction,
			},
			{
				Name:  "health",
				Usage: "DB接続とEmbeddingプロバイダ設定を確認",
				Flags: []cli.Flag{
					envFlag,
				},
				Action: appcli.HealthAction,
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
