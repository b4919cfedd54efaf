package publisher

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shouni/openrouter-image-kit/pkg/asset"
	"github.com/shouni/openrouter-image-kit/pkg/domain"
)

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	OutputDir      string   // 成果物が収まった日付別ディレクトリ
	ResponsePath   string   // 応答全文サイドカーのパス
	PromptInfoPath string   // プロンプト記述子サイドカーのパス
	ImagePaths     []string // 保存された全画像のパスリスト
}

const fallbackImageExt = "png"

// ResponsePublisher は API 応答を日付別ディレクトリへ展開して永続化します。
// 画像0枚の応答もエラーにはしません。成否の判断（finish reason の確認）は
// 呼び出し側の責務です。
type ResponsePublisher struct {
	writer  OutputWriter
	baseDir string
	now     func() time.Time
}

// NewResponsePublisher は出力ベースディレクトリと書き込み先を注入して作ります。
func NewResponsePublisher(writer OutputWriter, baseDir string) *ResponsePublisher {
	return &ResponsePublisher{
		writer:  writer,
		baseDir: baseDir,
		now:     time.Now,
	}
}

// Publish は応答全文・生成画像・プロンプト記述子の3種を書き出し、
// 出力先の日付別ディレクトリを返すのだ！
func (rp *ResponsePublisher) Publish(ctx context.Context, resp *domain.ChatResponse, info domain.PromptInfo) (PublishResult, error) {
	result := PublishResult{}
	now := rp.now()

	dayDir, err := asset.DateDir(rp.baseDir, now)
	if err != nil {
		return result, err
	}
	result.OutputDir = dayDir

	stem := asset.Stem(now, resp.ID)
	assets := NewAssetManager(rp.writer, dayDir)

	// 1. 応答全文（プリティプリント）
	responsePath, err := assets.Save(ctx, stem+asset.ResponseFileSuffix,
		prettyJSON(resp), "application/json; charset=utf-8")
	if err != nil {
		return result, fmt.Errorf("レスポンスの保存に失敗しました: %w", err)
	}
	result.ResponsePath = responsePath

	// 2. 生成画像（宣言された拡張子は信用せず、デコード済みバイト列から判別する）
	for idx, image := range resp.Images() {
		data, err := base64.StdEncoding.DecodeString(domain.DataURLToBase64(image.ImageURL.URL))
		if err != nil {
			return result, fmt.Errorf("画像 %d の base64 デコードに失敗しました: %w", idx, err)
		}

		mimeType, ext := detectImageFormat(data)
		savedPath, err := assets.Save(ctx, asset.ImageFileName(stem, idx, ext), data, mimeType)
		if err != nil {
			return result, fmt.Errorf("画像 %d の保存に失敗しました: %w", idx, err)
		}
		result.ImagePaths = append(result.ImagePaths, savedPath)
		slog.Info("画像を保存しました", "path", savedPath)
	}

	// 3. プロンプト記述子のサイドカー（再現用）
	infoData, err := info.Marshal()
	if err != nil {
		return result, err
	}
	promptPath, err := assets.Save(ctx, stem+asset.PromptInfoSuffix,
		infoData, "application/yaml; charset=utf-8")
	if err != nil {
		return result, fmt.Errorf("プロンプト記述子の保存に失敗しました: %w", err)
	}
	result.PromptInfoPath = promptPath

	return result, nil
}

// prettyJSON は受信した生ボディを整形するのだ。整形できない場合はそのまま使うのだ。
func prettyJSON(resp *domain.ChatResponse) []byte {
	raw := resp.RawBody
	if len(raw) == 0 {
		raw, _ = json.Marshal(resp)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return raw
	}
	return pretty.Bytes()
}

// detectImageFormat はデコード済みバイト列から MIME タイプと拡張子を判別します。
// 画像として判別できない場合は png にフォールバックします。
func detectImageFormat(data []byte) (mimeType, ext string) {
	mimeType = http.DetectContentType(data)
	if detected, ok := strings.CutPrefix(mimeType, "image/"); ok {
		return mimeType, detected
	}
	return "image/" + fallbackImageExt, fallbackImageExt
}
