package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PromptInfo はリクエストの元になるプロンプト記述子です。
// prompt_info.yaml として読み込まれ、レスポンスの保存時には
// 再現性のためのサイドカーとして同じ形式で書き出されます。
type PromptInfo struct {
	Text       string   `yaml:"text"`
	ImagePaths []string `yaml:"image_paths"`
}

// ParsePromptInfo は YAML バイト列から PromptInfo を復元します。
// 各パスの外側クォートはここで剥がします。
func ParsePromptInfo(data []byte) (PromptInfo, error) {
	var info PromptInfo
	if err := yaml.Unmarshal(data, &info); err != nil {
		return PromptInfo{}, fmt.Errorf("プロンプト記述子の解析に失敗しました: %w", err)
	}
	for i, p := range info.ImagePaths {
		info.ImagePaths[i] = StripQuotes(p)
	}
	return info, nil
}

// Marshal は PromptInfo をサイドカー出力用の YAML バイト列へ変換します。
func (p PromptInfo) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("プロンプト記述子のシリアライズに失敗しました: %w", err)
	}
	return data, nil
}
