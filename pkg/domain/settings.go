package domain

import "strings"

// デフォルト値の定義
const (
	DefaultMaxHistoryCount   = 300
	DefaultMaxGalleryDisplay = 50
)

// Settings は settings.json として永続化される単一のドキュメントです。
// 履歴・お気に入り・表示上限のすべてがこの1つの構造体に収まります。
type Settings struct {
	// ImagePathHistory は参照された画像パスの履歴です。先頭が最新で、重複はありません。
	ImagePathHistory []string `json:"image_path_history"`
	// FavoriteImagePaths はピン留めされたパスの集合です。順序に意味はありませんが、列として保存します。
	FavoriteImagePaths []string `json:"favorite_image_paths"`
	// MaxHistoryCount は履歴の最大件数の上書きです。0 の場合はデフォルト（300件）を使います。
	MaxHistoryCount int `json:"max_history_count,omitempty"`
	// MaxGalleryDisplay は一度に表示するギャラリー件数の上限です。0 の場合はデフォルト（50件）を使います。
	MaxGalleryDisplay int `json:"max_gallery_display,omitempty"`
}

// DefaultSettings は空のデフォルトドキュメントを返します。
func DefaultSettings() Settings {
	return Settings{
		ImagePathHistory:   []string{},
		FavoriteImagePaths: []string{},
	}
}

// HistoryCap は設定された履歴上限を返します。未設定ならデフォルト値です。
func (s Settings) HistoryCap() int {
	if s.MaxHistoryCount > 0 {
		return s.MaxHistoryCount
	}
	return DefaultMaxHistoryCount
}

// GalleryCap は設定されたギャラリー表示上限を返します。未設定ならデフォルト値です。
func (s Settings) GalleryCap() int {
	if s.MaxGalleryDisplay > 0 {
		return s.MaxGalleryDisplay
	}
	return DefaultMaxGalleryDisplay
}

// StripQuotes はパスを囲むダブルクォートを一層だけ取り除きます。
// UI からの貼り付けで付いてしまうクォート対策で、それ以外の正規化
// （大文字小文字、シンボリックリンク、相対/絶対の解決）は一切行いません。
func StripQuotes(path string) string {
	if len(path) >= 2 && strings.HasPrefix(path, `"`) && strings.HasSuffix(path, `"`) {
		return path[1 : len(path)-1]
	}
	return path
}
