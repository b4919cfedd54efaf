package history

import (
	"iter"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// GalleryFilter はギャラリーの表示対象を選ぶモードです。
type GalleryFilter string

const (
	// FilterAll は履歴全体を対象にします。
	FilterAll GalleryFilter = "all"
	// FilterFavorites はお気に入りだけを対象にします。
	FilterFavorites GalleryFilter = "favorites"
)

// favoriteMarker はお気に入りのキャプション先頭に付ける印です。
const favoriteMarker = "★ "

// GalleryItem はギャラリーの1エントリです。
type GalleryItem struct {
	Path     string
	Caption  string
	Data     []byte
	MimeType string
}

// Gallery は履歴またはお気に入りを走査する有限で再開可能なシーケンスを返します。
// 表示上限（デフォルト50件）で打ち切り、開けない・画像でないエントリは
// 黙ってスキップするベストエフォートのビューです。全件一括ではありません。
func (m *Manager) Gallery(filter GalleryFilter) iter.Seq[GalleryItem] {
	return func(yield func(GalleryItem) bool) {
		doc := m.store.Load()

		var paths []string
		if filter == FilterFavorites {
			paths = m.FavoritesChoices()
		} else {
			paths = m.HistoryChoices()
		}
		if limit := doc.GalleryCap(); len(paths) > limit {
			paths = paths[:limit]
		}

		favorites := make(map[string]struct{}, len(doc.FavoriteImagePaths))
		for _, p := range doc.FavoriteImagePaths {
			favorites[p] = struct{}{}
		}

		for _, p := range paths {
			data, err := m.readImage(p)
			if err != nil {
				continue
			}
			mimeType := http.DetectContentType(data)
			if !strings.HasPrefix(mimeType, "image/") {
				continue
			}

			caption := filepath.Base(p)
			if _, ok := favorites[p]; ok {
				caption = favoriteMarker + caption
			}

			if !yield(GalleryItem{Path: p, Caption: caption, Data: data, MimeType: mimeType}) {
				return
			}
		}
	}
}

// readImage はファイルの内容を TTL キャッシュ経由で読み込むのだ。
// ギャラリーは再描画のたびに同じファイルを読むので、ここだけキャッシュを挟むのだ。
func (m *Manager) readImage(path string) ([]byte, error) {
	if val, ok := m.imageCache.Get(path); ok {
		if data, ok := val.([]byte); ok {
			return data, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m.imageCache.Set(path, data, defaultCacheExpiration)
	return data, nil
}
