package openrouter

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempImage(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestBuildUserMessage(t *testing.T) {
	t.Run("テキストのみの場合は1パートなのだ", func(t *testing.T) {
		messages, err := BuildUserMessage("猫を描いて", nil)
		require.NoError(t, err)
		require.Len(t, messages, 1)

		msg := messages[0]
		assert.Equal(t, "user", msg.Role)
		require.Len(t, msg.Content, 1)
		assert.Equal(t, "text", msg.Content[0].Type)
		assert.Equal(t, "猫を描いて", msg.Content[0].Text)
	})

	t.Run("画像はテキストの後に入力順で並ぶのだ", func(t *testing.T) {
		first := writeTempImage(t, "first.png", []byte("first-image"))
		second := writeTempImage(t, "second.png", []byte("second-image"))

		messages, err := BuildUserMessage("合成して", []string{first, second})
		require.NoError(t, err)
		require.Len(t, messages, 1)

		parts := messages[0].Content
		require.Len(t, parts, 3)
		assert.Equal(t, "text", parts[0].Type)

		wantFirst := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("first-image"))
		wantSecond := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("second-image"))
		require.NotNil(t, parts[1].ImageURL)
		require.NotNil(t, parts[2].ImageURL)
		assert.Equal(t, wantFirst, parts[1].ImageURL.URL)
		assert.Equal(t, wantSecond, parts[2].ImageURL.URL)
	})

	t.Run("読めない画像があれば全体が失敗するのだ", func(t *testing.T) {
		ok := writeTempImage(t, "ok.png", []byte("image"))
		_, err := BuildUserMessage("描いて", []string{ok, "/no/such/image.png"})
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "/no/such/image.png"))
	})
}

func TestEncodeImageToBase64(t *testing.T) {
	path := writeTempImage(t, "img.png", []byte{0x01, 0x02, 0x03})

	encoded, err := EncodeImageToBase64(path)
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0x01, 0x02, 0x03}), encoded)

	_, err = EncodeImageToBase64("/no/such/file.png")
	require.Error(t, err)
}

func TestSupportedModels(t *testing.T) {
	models := SupportedModels()
	assert.Contains(t, models, ModelGeminiProImage)
	assert.Contains(t, models, ModelFluxPro)
}
