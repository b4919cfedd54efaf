package cmd

import (
	"fmt"

	"github.com/shouni/openrouter-image-kit/internal/config"
	"github.com/shouni/openrouter-image-kit/internal/pipeline"
	"github.com/shouni/openrouter-image-kit/internal/prompt"

	"github.com/spf13/cobra"
)

// generateCmd は、プロンプト記述子を基に画像生成リクエストを実行するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "プロンプト記述子を基にAIへ画像を生成させますなのだ。",
	Long: `prompt_info.yaml（テキスト + 参照画像パス）を読み込み、OpenRouter の
画像生成モデルへリクエストを送るのだ。返ってきた画像と応答全文、
再現用の記述子は日付別フォルダへ保存されるのだよ。`,
	Example: "  ap-imagegen-go generate -f prompt_info.yaml -o output",
	RunE:    generateCommand,
}

func init() {
}

// generateCommand は、generate サブコマンドの実行ロジック本体なのだ。
func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// --init はリクエストを送らず、サンプル記述子を置いて終わるのだ
	if opts.InitSample {
		if err := prompt.WriteSample(opts.PromptInfoFile); err != nil {
			return err
		}
		fmt.Printf("サンプルを書き出したのだ: %s\n", opts.PromptInfoFile)
		return nil
	}

	// 環境変数から基本設定をロードして、フラグの値を反映するのだ
	cfg := config.LoadConfig()
	cfg.Options = opts

	result, err := pipeline.Execute(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Println(result.Summary())
	return nil
}
