package openrouter

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/shouni/openrouter-image-kit/pkg/domain"
)

// サポートするモデル識別子の定義です。
// どちらも同じペイロード形式を受け付けるため、この層では識別子の差だけです。
const (
	ModelGeminiProImage = "google/gemini-3-pro-image-preview"
	ModelFluxPro        = "black-forest-labs/flux.2-pro"
)

// SupportedModels は選択可能なモデル識別子の一覧を返します。
func SupportedModels() []string {
	return []string{ModelGeminiProImage, ModelFluxPro}
}

// EncodeImageToBase64 はローカル画像ファイルを読み込んで base64 文字列にします。
// 入力画像の欠落はハードな前提条件違反なので、読み込み失敗は
// 握りつぶさずそのまま呼び出し側へ伝播させます。
func EncodeImageToBase64(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("入力画像 '%s' の読み込みに失敗しました: %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// BuildUserMessage はプロンプトテキストと入力画像パス列から、
// 単一のユーザーメッセージを組み立てます。テキストパートが先頭、
// 続いて入力順どおりの画像パートという並びです。
func BuildUserMessage(promptText string, imagePaths []string) ([]domain.Message, error) {
	parts := make([]domain.ContentPart, 0, len(imagePaths)+1)
	parts = append(parts, domain.ContentPart{Type: "text", Text: promptText})

	for _, path := range imagePaths {
		encoded, err := EncodeImageToBase64(path)
		if err != nil {
			return nil, err
		}
		parts = append(parts, domain.ContentPart{
			Type: "image_url",
			ImageURL: &domain.ImageURL{
				URL: "data:image/jpeg;base64," + encoded,
			},
		})
	}

	return []domain.Message{{Role: "user", Content: parts}}, nil
}
