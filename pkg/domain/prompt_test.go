package domain

import (
	"strings"
	"testing"
)

func TestParsePromptInfo(t *testing.T) {
	t.Run("YAMLからテキストとパスを復元できるのだ", func(t *testing.T) {
		yamlData := []byte(`
text: "猫の絵を描いて"
image_paths:
  - /ref/a.png
  - /ref/b.png
`)
		info, err := ParsePromptInfo(yamlData)
		if err != nil {
			t.Fatalf("解析に失敗したのだ: %v", err)
		}
		if info.Text != "猫の絵を描いて" {
			t.Errorf("テキストが一致しないのだ: %s", info.Text)
		}
		if len(info.ImagePaths) != 2 || info.ImagePaths[1] != "/ref/b.png" {
			t.Errorf("パスの復元に失敗したのだ: %+v", info.ImagePaths)
		}
	})

	t.Run("パスの外側クォートは読み込み時に剥がされるのだ", func(t *testing.T) {
		yamlData := []byte(`
text: hello
image_paths:
  - '"/ref/quoted.png"'
`)
		info, err := ParsePromptInfo(yamlData)
		if err != nil {
			t.Fatalf("解析に失敗したのだ: %v", err)
		}
		if info.ImagePaths[0] != "/ref/quoted.png" {
			t.Errorf("クォートが残っているのだ: %s", info.ImagePaths[0])
		}
	})

	t.Run("壊れたYAMLはエラーになるのだ", func(t *testing.T) {
		if _, err := ParsePromptInfo([]byte("text: [unclosed")); err == nil {
			t.Error("エラーが返るべきなのだ")
		}
	})
}

func TestPromptInfo_Marshal(t *testing.T) {
	info := PromptInfo{Text: "prompt", ImagePaths: []string{"/a.png"}}
	data, err := info.Marshal()
	if err != nil {
		t.Fatalf("シリアライズに失敗したのだ: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "text: prompt") {
		t.Errorf("text キーが見つからないのだ: %s", out)
	}
	if !strings.Contains(out, "/a.png") {
		t.Errorf("image_paths の内容が見つからないのだ: %s", out)
	}

	decoded, err := ParsePromptInfo(data)
	if err != nil {
		t.Fatalf("再解析に失敗したのだ: %v", err)
	}
	if decoded.Text != info.Text || len(decoded.ImagePaths) != 1 {
		t.Errorf("変換前後で一致しないのだ: %+v", decoded)
	}
}
