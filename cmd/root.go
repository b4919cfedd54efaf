package cmd

import (
	"log/slog"

	"github.com/shouni/openrouter-image-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// opts は各サブコマンドで共有される実行時オプションなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.PromptInfoFile, "prompt-info", "f", config.DefaultPromptInfoFile, "プロンプト記述子（prompt_info.yaml）のパスなのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputBaseDir, "output-base", "o", "", "結果出力フォルダ（OUTPUT_BASE_FOLDER の上書き）なのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", "", "使用するモデル識別子なのだ。")

	// --- 表示系 ---
	rootCmd.PersistentFlags().BoolVar(&opts.FavoritesOnly, "favorites", false, "history / gallery をお気に入りビューに切り替えるのだ。")

	// --- generate 固有設定 ---
	generateCmd.Flags().BoolVar(&opts.InitSample, "init", false, "サンプルの prompt_info.yaml を書き出して終了するのだ。")
	generateCmd.Flags().BoolVar(&opts.StdinImage, "stdin-image", false, "標準入力から受け取った画像を入力リストの末尾に追加するのだ。")
}

// preRunAppE は、コマンド実行前に .env の取り込みを行うのだ。
// APIキーの必須チェックは generate だけに必要なので、パイプライン側で行うのだよ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		// .env は任意なので、無くても先へ進むのだ
		slog.Debug(".env は読み込まなかったのだ", "reason", err)
	}
	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"ap-imagegen-go",
		addAppFlags,
		preRunAppE,
		generateCmd,
		historyCmd,
		favoriteCmd,
		galleryCmd,
	)
}
