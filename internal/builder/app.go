package builder

import (
	"context"
	"io"

	"github.com/shouni/openrouter-image-kit/internal/config"
	"github.com/shouni/openrouter-image-kit/internal/runner"
	"github.com/shouni/openrouter-image-kit/pkg/history"
	"github.com/shouni/openrouter-image-kit/pkg/publisher"
)

// ScriptReader はプロンプト記述子の読み込み元なのだ。
// go-remote-io の InputReader が満たすので、ローカルでも gs:// でも読めるのだ。
type ScriptReader interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config  *config.Config          // Configは、環境変数から読み込まれたグローバルな設定です（APIキー、保存先など）。
	Options config.GenerateOptions  // Optionsは、コマンドラインから渡された実行時の設定です。
	Reader  ScriptReader            // Readerは、プロンプト記述子の読み込みに使用する入力元です。
	Writer  publisher.OutputWriter  // Writerは、生成された内容を保存するための出力先です。
	History *history.Manager        // Historyは、履歴とお気に入りの台帳です。
	Client  runner.Requester        // Clientは、OpenRouterとの通信に使う共通クライアントです。
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(
	cfg *config.Config,
	reader ScriptReader,
	writer publisher.OutputWriter,
	hist *history.Manager,
	client runner.Requester,
) AppContext {
	return AppContext{
		Config:  cfg,
		Options: cfg.Options,
		Reader:  reader,
		Writer:  writer,
		History: hist,
		Client:  client,
	}
}
