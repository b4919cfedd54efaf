package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shouni/openrouter-image-kit/internal/builder"
	"github.com/shouni/openrouter-image-kit/internal/config"
	"github.com/shouni/openrouter-image-kit/internal/runner"
	"github.com/shouni/openrouter-image-kit/pkg/domain"
	"github.com/shouni/openrouter-image-kit/pkg/openrouter"

	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

// Execute は、プロンプト記述子を読み込み、画像生成リクエスト1回分を
// 最初から最後まで（検証 → リクエスト → 保存 → 履歴記録）実行するのだ。
func Execute(ctx context.Context, cfg *config.Config) (*runner.Result, error) {
	// 設定の必須チェックはネットワークに触る前に済ませるのだ
	if cfg.OpenRouterAPIKey == "" {
		return nil, fmt.Errorf("環境変数 OPENROUTER_API_KEY が設定されていないのだ。OpenRouter の利用には必須なのだ")
	}

	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return nil, err
	}

	info, err := LoadPromptInfo(ctx, appCtx.Reader, cfg.Options.PromptInfoFile)
	if err != nil {
		return nil, err
	}

	// 入力画像はすべて一度スロットへ載せ替え、コアに入る前にパスへ解決するのだ
	slots := make([]domain.ImageSlot, 0, len(info.ImagePaths)+1)
	for _, p := range info.ImagePaths {
		slots = append(slots, domain.LocalPath(p))
	}
	if cfg.Options.StdinImage {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("標準入力からの画像読み取りに失敗したのだ: %w", err)
		}
		slots = append(slots, domain.InMemoryImage(data))
	}
	info.ImagePaths, err = ResolveImageSlots(slots, cfg.TempImageDir)
	if err != nil {
		return nil, err
	}

	generateRunner, err := builder.BuildGenerateRunner(appCtx)
	if err != nil {
		return nil, err
	}

	slog.Info("画像生成パイプラインを起動するのだ！",
		"prompt_info", cfg.Options.PromptInfoFile,
		"images", len(info.ImagePaths))

	result, err := generateRunner.Run(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}
	return result, nil
}

// ResolveImageSlots は画像スロットの列をローカルパスの列へ解決するのだ。
// 空のスロットは読み飛ばし、メモリ画像は tempDir 配下へ書き出すのだ。
func ResolveImageSlots(slots []domain.ImageSlot, tempDir string) ([]string, error) {
	paths := make([]string, 0, len(slots))
	for _, slot := range slots {
		if slot.IsEmpty() {
			continue
		}
		p, err := slot.Resolve(tempDir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// LoadPromptInfo はプロンプト記述子を読み込んでパースするのだ。
// 読み込み元は go-remote-io 経由なので、ローカルパスでも gs:// でも同じに扱えるのだ。
func LoadPromptInfo(ctx context.Context, reader builder.ScriptReader, path string) (domain.PromptInfo, error) {
	rc, err := reader.Open(ctx, path)
	if err != nil {
		return domain.PromptInfo{}, fmt.Errorf("プロンプト記述子 '%s' の読み込みに失敗したのだ: %w", path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return domain.PromptInfo{}, fmt.Errorf("プロンプト記述子 '%s' の読み取りに失敗したのだ: %w", path, err)
	}
	return domain.ParsePromptInfo(data)
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、
// アプリケーションコンテキストを初期化して返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	hist := builder.BuildHistoryManager(cfg.SettingsDir)
	client := openrouter.New(cfg.OpenRouterAPIKey)

	appCtx := builder.NewAppContext(cfg, reader, writer, hist, client)
	return &appCtx, nil
}
