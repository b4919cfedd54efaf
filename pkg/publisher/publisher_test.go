package publisher

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/openrouter-image-kit/pkg/asset"
	"github.com/shouni/openrouter-image-kit/pkg/domain"
)

var testTime = time.Date(2026, 8, 29, 10, 30, 45, 0, time.UTC)

// pngDataURL は PNG シグネチャ入りのデータ URL を作るのだ。
func pngDataURL(t *testing.T) string {
	t.Helper()
	payload := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
}

func newTestPublisher(baseDir string) *ResponsePublisher {
	rp := NewResponsePublisher(LocalWriter{}, baseDir)
	rp.now = func() time.Time { return testTime }
	return rp
}

func TestResponsePublisher_Publish(t *testing.T) {
	t.Run("画像ありの応答は3種のファイルに展開されるのだ", func(t *testing.T) {
		baseDir := t.TempDir()
		rp := newTestPublisher(baseDir)

		resp := &domain.ChatResponse{
			ID: "gen-abc123",
			Choices: []domain.Choice{{
				Message: domain.ResponseMessage{
					Images: []domain.ResponseImage{
						{ImageURL: domain.ImageURL{URL: pngDataURL(t)}},
						{ImageURL: domain.ImageURL{URL: pngDataURL(t)}},
					},
				},
			}},
			RawBody: []byte(`{"id":"gen-abc123","choices":[]}`),
		}
		info := domain.PromptInfo{Text: "猫を描いて", ImagePaths: []string{"/ref/a.png"}}

		result, err := rp.Publish(context.Background(), resp, info)
		require.NoError(t, err)

		wantDir := filepath.Join(baseDir, "2026-08-29")
		assert.Equal(t, wantDir, result.OutputDir)

		stem := "20260829103045_gen-abc123"
		assert.Equal(t, filepath.Join(wantDir, stem+"_response.json"), result.ResponsePath)
		assert.Equal(t, filepath.Join(wantDir, stem+"_prompt_info.yaml"), result.PromptInfoPath)
		require.Len(t, result.ImagePaths, 2)
		assert.Equal(t, filepath.Join(wantDir, stem+"_0.png"), result.ImagePaths[0])
		assert.Equal(t, filepath.Join(wantDir, stem+"_1.png"), result.ImagePaths[1])

		for _, p := range result.ImagePaths {
			assert.True(t, asset.GeneratedImageRegex.MatchString(filepath.Base(p)),
				"生成画像の命名規則に一致すべきなのだ: %s", p)
		}

		// 応答サイドカーは整形済み JSON として読めること
		raw, err := os.ReadFile(result.ResponsePath)
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, "gen-abc123", decoded["id"])

		// プロンプト記述子サイドカーは元の記述子を往復すること
		sidecar, err := os.ReadFile(result.PromptInfoPath)
		require.NoError(t, err)
		restored, err := domain.ParsePromptInfo(sidecar)
		require.NoError(t, err)
		assert.Equal(t, info.Text, restored.Text)
		assert.Equal(t, info.ImagePaths, restored.ImagePaths)
	})

	t.Run("画像0枚でもエラーにはならないのだ", func(t *testing.T) {
		baseDir := t.TempDir()
		rp := newTestPublisher(baseDir)

		resp := &domain.ChatResponse{
			ID: "gen-empty",
			Choices: []domain.Choice{{
				Message:            domain.ResponseMessage{Content: "生成できませんでした"},
				NativeFinishReason: "content_filter",
			}},
			RawBody: []byte(`{"id":"gen-empty","choices":[]}`),
		}

		result, err := rp.Publish(context.Background(), resp, domain.PromptInfo{Text: "描いて"})
		require.NoError(t, err)
		assert.Empty(t, result.ImagePaths)
		assert.FileExists(t, result.ResponsePath)
		assert.FileExists(t, result.PromptInfoPath)
	})

	t.Run("識別子が空ならunknown_idで埋めるのだ", func(t *testing.T) {
		baseDir := t.TempDir()
		rp := newTestPublisher(baseDir)

		resp := &domain.ChatResponse{RawBody: []byte(`{}`)}
		result, err := rp.Publish(context.Background(), resp, domain.PromptInfo{})
		require.NoError(t, err)
		assert.Equal(t,
			filepath.Join(baseDir, "2026-08-29", "20260829103045_unknown_id_response.json"),
			result.ResponsePath)
	})

	t.Run("壊れたbase64の画像はエラーになるのだ", func(t *testing.T) {
		rp := newTestPublisher(t.TempDir())
		resp := &domain.ChatResponse{
			ID: "gen-bad",
			Choices: []domain.Choice{{
				Message: domain.ResponseMessage{
					Images: []domain.ResponseImage{
						{ImageURL: domain.ImageURL{URL: "data:image/png;base64,%%%invalid%%%"}},
					},
				},
			}},
			RawBody: []byte(`{}`),
		}
		_, err := rp.Publish(context.Background(), resp, domain.PromptInfo{})
		require.Error(t, err)
	})
}

func TestDetectImageFormat(t *testing.T) {
	t.Run("PNGシグネチャはpngとして判別されるのだ", func(t *testing.T) {
		data := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
		mimeType, ext := detectImageFormat(data)
		assert.Equal(t, "image/png", mimeType)
		assert.Equal(t, "png", ext)
	})

	t.Run("JPEGシグネチャはjpegとして判別されるのだ", func(t *testing.T) {
		data := append([]byte{0xFF, 0xD8, 0xFF}, make([]byte, 16)...)
		mimeType, ext := detectImageFormat(data)
		assert.Equal(t, "image/jpeg", mimeType)
		assert.Equal(t, "jpeg", ext)
	})

	t.Run("判別できなければpngへフォールバックするのだ", func(t *testing.T) {
		mimeType, ext := detectImageFormat([]byte("plain text data"))
		assert.Equal(t, "image/png", mimeType)
		assert.Equal(t, "png", ext)
	})
}

func TestLocalWriter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "file.txt")

	w := LocalWriter{}
	err := w.Write(context.Background(), path, strings.NewReader("hello"), "text/plain")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}
