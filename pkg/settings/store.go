package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shouni/openrouter-image-kit/pkg/domain"
)

const fileName = "settings.json"

// Store は settings.json の読み書きだけを担う永続化層です。
// 保存先ディレクトリはコンストラクタで注入され、グローバル状態は持ちません。
// プロセス間ロックは意図的に行わず、同時書き込みは後勝ちになります。
type Store struct {
	dir string
}

// New は指定ディレクトリを保存先とする Store を返します。
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path は設定ファイルのフルパスを返します。
func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Load は設定ドキュメントを読み込みます。
// ファイルが存在しない・読めない・JSON として壊れている場合は、
// いずれも空のデフォルトへフォールバックし、エラーは外へ出しません。
func (s *Store) Load() domain.Settings {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return domain.DefaultSettings()
	}

	doc := domain.DefaultSettings()
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.DefaultSettings()
	}

	// 手編集で null にされた場合への防御
	if doc.ImagePathHistory == nil {
		doc.ImagePathHistory = []string{}
	}
	if doc.FavoriteImagePaths == nil {
		doc.FavoriteImagePaths = []string{}
	}
	return doc
}

// Save はドキュメント全体をシリアライズしてファイルを上書きします。
// 親ディレクトリは必要に応じて作成します。同一ディレクトリ内の
// 一時ファイルへ書いてからリネームするため、自プロセス視点では
// 中途半端な内容が残りません。
func (s *Store) Save(doc domain.Settings) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("設定ディレクトリの作成に失敗しました: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("設定のシリアライズに失敗しました: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, fileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("一時ファイルの作成に失敗しました: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("設定の書き込みに失敗しました: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("設定ファイルのクローズに失敗しました: %w", err)
	}

	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("設定ファイルの差し替えに失敗しました: %w", err)
	}
	return nil
}
