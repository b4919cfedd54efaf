package history

import (
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/openrouter-image-kit/pkg/domain"
	"github.com/shouni/openrouter-image-kit/pkg/settings"
)

const (
	defaultCacheExpiration = 5 * time.Minute
	cacheCleanupInterval   = 15 * time.Minute
)

// Manager は履歴とお気に入りの台帳を Settings Store の上に実装します。
// すべての変更操作は「全読み込み → メモリ上で変更 → 全上書き保存」で、
// ロックは持ちません。単一の対話ユーザーを前提とした設計です。
type Manager struct {
	store      *settings.Store
	imageCache *cache.Cache
}

// NewManager は Store を注入して Manager を作ります。
func NewManager(store *settings.Store) *Manager {
	return &Manager{
		store:      store,
		imageCache: cache.New(defaultCacheExpiration, cacheCleanupInterval),
	}
}

// AddToHistory は画像パスを履歴の先頭に追加します。
// 空白のみのパスとディスク上に存在しないパスは黙って無視します。
// 既存のエントリは先頭へ移動し、上限を超えた古いエントリは切り捨てます。
func (m *Manager) AddToHistory(path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	path = domain.StripQuotes(path)
	if !fileExists(path) {
		return
	}

	doc := m.store.Load()
	hist := slices.DeleteFunc(doc.ImagePathHistory, func(p string) bool { return p == path })
	hist = append([]string{path}, hist...)
	if limit := doc.HistoryCap(); len(hist) > limit {
		hist = hist[:limit]
	}
	doc.ImagePathHistory = hist
	m.save(doc)
}

// HistoryChoices は履歴のうち現在ディスク上に存在するパスだけを順序を保って返します。
// 存在しないエントリは保存リストから削除せず、読み出し時にのみ除外します。
func (m *Manager) HistoryChoices() []string {
	return filterExisting(m.store.Load().ImagePathHistory)
}

// AddToFavorites は画像パスをお気に入りに追加します。冪等です。
func (m *Manager) AddToFavorites(path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	path = domain.StripQuotes(path)
	if !fileExists(path) {
		return
	}

	doc := m.store.Load()
	if slices.Contains(doc.FavoriteImagePaths, path) {
		return
	}
	doc.FavoriteImagePaths = append(doc.FavoriteImagePaths, path)
	m.save(doc)
}

// RemoveFromFavorites はお気に入りからパスを外します。
// 存在チェックは行いません（すでに消えたファイルも外せる必要があります）。
func (m *Manager) RemoveFromFavorites(path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	path = domain.StripQuotes(path)

	doc := m.store.Load()
	if !slices.Contains(doc.FavoriteImagePaths, path) {
		return
	}
	doc.FavoriteImagePaths = slices.DeleteFunc(doc.FavoriteImagePaths,
		func(p string) bool { return p == path })
	m.save(doc)
}

// IsFavorite はパスがお気に入りに含まれるかを返します。空白のみの入力は false です。
func (m *Manager) IsFavorite(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	path = domain.StripQuotes(path)
	return slices.Contains(m.store.Load().FavoriteImagePaths, path)
}

// FavoritesChoices はお気に入りのうち現在ディスク上に存在するパスだけを返します。
func (m *Manager) FavoritesChoices() []string {
	return filterExisting(m.store.Load().FavoriteImagePaths)
}

// save は変更済みドキュメントを保存するのだ。失敗はログに残して続行するのだ。
// （呼び出し側は I/O 失敗時に変更が失われる前提で動くこと）
func (m *Manager) save(doc domain.Settings) {
	if err := m.store.Save(doc); err != nil {
		slog.Warn("設定の保存に失敗しました。今回の変更は失われます", "path", m.store.Path(), "error", err)
	}
}

func filterExisting(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if fileExists(p) {
			out = append(out, p)
		}
	}
	return out
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
