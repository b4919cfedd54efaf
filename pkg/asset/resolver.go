package asset

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shouni/go-utils/urlpath"
)

const (
	// ResponseFileSuffix は API 応答全文のサイドカーに付くサフィックスです。
	ResponseFileSuffix = "_response.json"
	// PromptInfoSuffix は再現用プロンプト記述子のサイドカーに付くサフィックスです。
	PromptInfoSuffix = "_prompt_info.yaml"
	// UnknownResponseID は応答に識別子が無かったときのプレースホルダーです。
	UnknownResponseID = "unknown_id"

	dateDirLayout = "2006-01-02"
	stemLayout    = "20060102150405"
)

// GeneratedImageRegex は保存された生成画像 (20240102030405_<id>_0.png 等) に一致します。
var GeneratedImageRegex = regexp.MustCompile(`^\d{14}_.+_\d+\.[a-z0-9]+$`)

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から、
// GCS/ローカルを考慮した最終的な出力パスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolvePath(baseDir, fileName)
}

// DateDir は出力ベース配下の日付別ディレクトリ (<base>/<YYYY-MM-DD>) を解決します。
func DateDir(baseDir string, now time.Time) (string, error) {
	return urlpath.ResolvePath(baseDir, now.Format(dateDirLayout))
}

// Stem は1リクエスト分の成果物が共有するファイル名の幹を作ります。
// タイムスタンプと応答の識別子の組で、識別子が空なら UnknownResponseID を使います。
func Stem(now time.Time, responseID string) string {
	if responseID == "" {
		responseID = UnknownResponseID
	}
	return fmt.Sprintf("%s_%s", now.Format(stemLayout), responseID)
}

// ImageFileName は幹と連番、判別済み拡張子から画像ファイル名を組み立てます。
func ImageFileName(stem string, index int, ext string) string {
	return fmt.Sprintf("%s_%d.%s", stem, index, ext)
}
