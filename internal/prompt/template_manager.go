package prompt

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed sample_prompt_info.yaml
var samplePromptInfo string

// SamplePromptInfo は generate --init で書き出すサンプル記述子の内容を返すのだ。
func SamplePromptInfo() (string, error) {
	if samplePromptInfo == "" {
		return "", fmt.Errorf("サンプルのプロンプト記述子が空なのだ。embed設定を確認してほしいのだ")
	}
	return samplePromptInfo, nil
}

// WriteSample はサンプル記述子を指定パスへ書き出すのだ。
// 既存ファイルを上書きしてしまわないよう、存在する場合はエラーにするのだ。
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("'%s' はすでに存在するのだ。上書きはしないのだ", path)
	}

	content, err := SamplePromptInfo()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("サンプルの書き出しに失敗したのだ: %w", err)
	}
	return nil
}
