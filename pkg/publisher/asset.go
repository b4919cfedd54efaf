package publisher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shouni/openrouter-image-kit/pkg/asset"
)

// OutputWriter はデータを保存先に書き込むためのインターフェースです。
// go-remote-io の OutputWriter がそのまま満たすため、ローカルでも GCS でも使えます。
type OutputWriter interface {
	Write(ctx context.Context, path string, data io.Reader, mimeType string) error
}

// LocalWriter はローカルファイルシステムへ書き込む OutputWriter 実装です。
// 親ディレクトリは必要に応じて作成します。
type LocalWriter struct{}

func (LocalWriter) Write(_ context.Context, path string, data io.Reader, _ string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	buf, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

// AssetManager は1リクエスト分の成果物の保存パスと永続化を管理します。
type AssetManager struct {
	writer  OutputWriter
	baseDir string // 日付別の保存先ディレクトリ (例: "output/2026-08-29")
}

func NewAssetManager(writer OutputWriter, baseDir string) *AssetManager {
	return &AssetManager{
		writer:  writer,
		baseDir: baseDir,
	}
}

// Save はファイルを保存し、その保存先のフルパスを返します。
func (am *AssetManager) Save(ctx context.Context, fileName string, data []byte, mimeType string) (string, error) {
	fullPath, err := asset.ResolveOutputPath(am.baseDir, fileName)
	if err != nil {
		return "", err
	}
	if err := am.writer.Write(ctx, fullPath, bytes.NewReader(data), mimeType); err != nil {
		return "", fmt.Errorf("asset_manager: '%s' の保存に失敗しました: %w", fileName, err)
	}
	return fullPath, nil
}
