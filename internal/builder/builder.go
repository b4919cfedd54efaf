package builder

import (
	"fmt"

	"github.com/shouni/openrouter-image-kit/internal/runner"
	"github.com/shouni/openrouter-image-kit/pkg/history"
	"github.com/shouni/openrouter-image-kit/pkg/publisher"
	"github.com/shouni/openrouter-image-kit/pkg/settings"
)

// BuildHistoryManager は settings.json を台帳とする履歴マネージャを構築します。
func BuildHistoryManager(settingsDir string) *history.Manager {
	return history.NewManager(settings.New(settingsDir))
}

// BuildGenerateRunner は画像生成1回分を担当する Runner を構築します。
func BuildGenerateRunner(appCtx *AppContext) (runner.GenerateRunner, error) {
	outputBase := appCtx.Config.OutputBaseDir
	if appCtx.Options.OutputBaseDir != "" {
		outputBase = appCtx.Options.OutputBaseDir
	}
	if outputBase == "" {
		return nil, fmt.Errorf("結果出力フォルダ（OUTPUT_BASE_FOLDER か --output-base）を指定してほしいのだ")
	}

	model := appCtx.Config.ImageModel
	if appCtx.Options.ImageModel != "" {
		model = appCtx.Options.ImageModel
	}

	persister := publisher.NewResponsePublisher(appCtx.Writer, outputBase)
	return runner.NewImageGenerateRunner(appCtx.Client, persister, appCtx.History, model), nil
}
