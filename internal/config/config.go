package config

import (
	"os"

	"github.com/shouni/go-utils/envutil"

	"github.com/shouni/openrouter-image-kit/pkg/openrouter"
)

// デフォルト値の定義なのだ
const (
	DefaultImageModel     = openrouter.ModelGeminiProImage
	DefaultPromptInfoFile = "prompt_info.yaml" // generate コマンドが読むプロンプト記述子のデフォルトパス
	DefaultSettingsDir    = "."                // settings.json を置くデフォルトディレクトリ
)

// Config はアプリケーション全体の環境設定（APIキーや保存先）を保持する構造体なのだ。
type Config struct {
	OpenRouterAPIKey string // OPENROUTER_API_KEY
	OutputBaseDir    string // OUTPUT_BASE_FOLDER: 生成結果の保存先ベース
	SettingsDir      string // SETTING_FOLDER_PATH: settings.json の置き場所
	TempImageDir     string // TEMP_IMAGE_DIR: メモリ画像の一時書き出し先
	ImageModel       string // IMAGE_MODEL

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
// どの項目も欠けていれば妥当なフォールバックに落ちる（必須チェックは実行側で行う）。
func LoadConfig() *Config {
	return &Config{
		OpenRouterAPIKey: envutil.GetEnv("OPENROUTER_API_KEY", ""),
		OutputBaseDir:    envutil.GetEnv("OUTPUT_BASE_FOLDER", ""),
		SettingsDir:      envutil.GetEnv("SETTING_FOLDER_PATH", DefaultSettingsDir),
		TempImageDir:     envutil.GetEnv("TEMP_IMAGE_DIR", os.TempDir()),
		ImageModel:       envutil.GetEnv("IMAGE_MODEL", DefaultImageModel),
	}
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	PromptInfoFile string // --prompt-info
	InitSample     bool   // --init: サンプルの prompt_info.yaml を書き出して終了する
	StdinImage     bool   // --stdin-image: 標準入力の画像を入力リストへ追加する

	// 生成結果の出力設定
	OutputBaseDir string // --output-base: OUTPUT_BASE_FOLDER の上書き

	// AI挙動設定
	ImageModel string // --image-model

	// 表示系
	FavoritesOnly bool // --favorites: history / gallery をお気に入りビューに切り替える
}
