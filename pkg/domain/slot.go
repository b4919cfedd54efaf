package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const uploadedDirName = "uploaded_images"

// ImageSlot は入力画像の指定方法を表すタグ付きバリアントです。
// ローカルパスかメモリ上の画像データのどちらか一方だけを保持し、
// コアに入る前に Resolve で必ずパスへ解決されます。
// コア側が動的に型を調べて挙動を変えることはありません。
type ImageSlot struct {
	path string
	data []byte
}

// LocalPath はローカルファイルパスを指すスロットを作ります。
func LocalPath(path string) ImageSlot {
	return ImageSlot{path: StripQuotes(path)}
}

// InMemoryImage はメモリ上の画像バイト列を持つスロットを作ります。
func InMemoryImage(data []byte) ImageSlot {
	return ImageSlot{data: data}
}

// IsEmpty はパスもデータも持たないスロットかどうかを返します。
func (s ImageSlot) IsEmpty() bool {
	return s.path == "" && len(s.data) == 0
}

// Resolve はスロットをローカルパスへ解決します。
// パス指定ならそのまま返し、メモリ画像なら tempDir 配下へ
// uploaded_<ミリ秒>.png として書き出してそのパスを返します。
func (s ImageSlot) Resolve(tempDir string) (string, error) {
	if s.path != "" {
		return s.path, nil
	}
	if len(s.data) == 0 {
		return "", fmt.Errorf("画像スロットが空です")
	}

	dir := filepath.Join(tempDir, uploadedDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("一時ディレクトリの作成に失敗しました: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("uploaded_%d.png", time.Now().UnixMilli()))
	if err := os.WriteFile(path, s.data, 0644); err != nil {
		return "", fmt.Errorf("一時画像の書き込みに失敗しました: %w", err)
	}
	return path, nil
}
