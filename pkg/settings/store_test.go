package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shouni/openrouter-image-kit/pkg/domain"
)

func TestStore_Load(t *testing.T) {
	t.Run("ファイルがなければデフォルトを返すのだ", func(t *testing.T) {
		store := New(t.TempDir())
		doc := store.Load()
		if len(doc.ImagePathHistory) != 0 || len(doc.FavoriteImagePaths) != 0 {
			t.Errorf("空のデフォルトであるべきなのだ: %+v", doc)
		}
	})

	t.Run("壊れたJSONでもデフォルトへフォールバックするのだ", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{broken"), 0644); err != nil {
			t.Fatal(err)
		}
		store := New(dir)
		doc := store.Load()
		if doc.ImagePathHistory == nil || len(doc.ImagePathHistory) != 0 {
			t.Errorf("デフォルトへフォールバックすべきなのだ: %+v", doc)
		}
	})

	t.Run("nullのリストは空スライスへ正規化されるのだ", func(t *testing.T) {
		dir := t.TempDir()
		raw := `{"image_path_history": null, "favorite_image_paths": null}`
		if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(raw), 0644); err != nil {
			t.Fatal(err)
		}
		doc := New(dir).Load()
		if doc.ImagePathHistory == nil || doc.FavoriteImagePaths == nil {
			t.Error("nil スライスが残っているのだ")
		}
	})
}

func TestStore_SaveAndLoad(t *testing.T) {
	t.Run("保存と再読込でドキュメントが往復するのだ", func(t *testing.T) {
		store := New(filepath.Join(t.TempDir(), "nested", "dir"))

		doc := domain.DefaultSettings()
		doc.ImagePathHistory = []string{"/a.png", "/b.png"}
		doc.FavoriteImagePaths = []string{"/b.png"}
		doc.MaxHistoryCount = 10

		if err := store.Save(doc); err != nil {
			t.Fatalf("保存に失敗したのだ: %v", err)
		}

		loaded := store.Load()
		if len(loaded.ImagePathHistory) != 2 || loaded.ImagePathHistory[0] != "/a.png" {
			t.Errorf("履歴の往復に失敗したのだ: %+v", loaded.ImagePathHistory)
		}
		if len(loaded.FavoriteImagePaths) != 1 || loaded.FavoriteImagePaths[0] != "/b.png" {
			t.Errorf("お気に入りの往復に失敗したのだ: %+v", loaded.FavoriteImagePaths)
		}
		if loaded.MaxHistoryCount != 10 {
			t.Errorf("上限値の往復に失敗したのだ: %d", loaded.MaxHistoryCount)
		}
	})

	t.Run("上書き保存後に一時ファイルは残らないのだ", func(t *testing.T) {
		dir := t.TempDir()
		store := New(dir)
		if err := store.Save(domain.DefaultSettings()); err != nil {
			t.Fatalf("保存に失敗したのだ: %v", err)
		}
		if err := store.Save(domain.DefaultSettings()); err != nil {
			t.Fatalf("再保存に失敗したのだ: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 || entries[0].Name() != "settings.json" {
			t.Errorf("settings.json だけが残るべきなのだ: %v", entries)
		}
	})
}
