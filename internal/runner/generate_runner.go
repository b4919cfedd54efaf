package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shouni/openrouter-image-kit/pkg/domain"
	"github.com/shouni/openrouter-image-kit/pkg/history"
	"github.com/shouni/openrouter-image-kit/pkg/publisher"
)

// unknownFinishReason は応答に診断文字列が無かったときの表示なのだ。
const unknownFinishReason = "不明"

// GenerateRunner は、プロンプト記述子を基に画像生成1回分を実行するインターフェース。
type GenerateRunner interface {
	// Run は検証・リクエスト・永続化・履歴記録を直列に実行して結果を返す。
	Run(ctx context.Context, info domain.PromptInfo) (*Result, error)
}

// Requester は OpenRouter クライアントの差し替え点なのだ。
type Requester interface {
	CreateImageGeneration(ctx context.Context, model, promptText string, imagePaths []string) (*domain.ChatResponse, error)
}

// Persister はレスポンス永続化層の差し替え点なのだ。
type Persister interface {
	Publish(ctx context.Context, resp *domain.ChatResponse, info domain.PromptInfo) (publisher.PublishResult, error)
}

// Result は1リクエスト分の実行結果なのだ。
type Result struct {
	Text         string // 応答のテキスト本文
	ImageCount   int    // 生成された画像の枚数
	FinishReason string // 画像0枚のときの診断用文字列
	OutputDir    string // 成果物の保存先ディレクトリ
}

// Summary はユーザーへ表示する結果メッセージを組み立てるのだ。
// 画像0枚はソフトな失敗として扱い、finish reason を必ず見せるのだ。
func (r *Result) Summary() string {
	var sb strings.Builder
	if r.ImageCount == 0 {
		sb.WriteString("⚠️ 画像生成失敗\n\n")
	} else {
		sb.WriteString("✅ 成功!\n\n")
	}
	fmt.Fprintf(&sb, "結果:\n%s\n\n", r.Text)
	fmt.Fprintf(&sb, "生成された画像数: %d\n", r.ImageCount)
	if r.ImageCount == 0 {
		fmt.Fprintf(&sb, "Finish Reason: %s\n", r.FinishReason)
	}
	fmt.Fprintf(&sb, "保存先: %s", r.OutputDir)
	return sb.String()
}

// ImageGenerateRunner は GenerateRunner の標準実装なのだ。
// リトライも並列化もしない、1リクエスト分の直列フローだけを持つのだ。
type ImageGenerateRunner struct {
	client    Requester
	persister Persister
	history   *history.Manager
	model     string
}

// NewImageGenerateRunner は依存を注入して ImageGenerateRunner を作るのだ。
func NewImageGenerateRunner(client Requester, persister Persister, hist *history.Manager, model string) *ImageGenerateRunner {
	return &ImageGenerateRunner{
		client:    client,
		persister: persister,
		history:   hist,
		model:     model,
	}
}

// Run は画像生成1回分のメインロジックなのだ。
// 検証エラーはネットワーク呼び出しの前に返し、リクエスト失敗時はなにも保存しないのだ。
func (gr *ImageGenerateRunner) Run(ctx context.Context, info domain.PromptInfo) (*Result, error) {
	paths, err := validateImagePaths(info.ImagePaths)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(info.Text) == "" {
		return nil, fmt.Errorf("プロンプトを入力してほしいのだ")
	}
	info.ImagePaths = paths

	slog.Info("画像生成リクエストを送信するのだ", "model", gr.model, "images", len(paths))

	resp, err := gr.client.CreateImageGeneration(ctx, gr.model, info.Text, paths)
	if err != nil {
		return nil, err
	}

	published, err := gr.persister.Publish(ctx, resp, info)
	if err != nil {
		return nil, err
	}

	// 入力に使ったパスを履歴へ記録するのだ（保存失敗はログ済みで続行）
	for _, p := range paths {
		gr.history.AddToHistory(p)
	}

	finishReason := resp.FinishReason()
	if finishReason == "" {
		finishReason = unknownFinishReason
	}

	result := &Result{
		Text:         resp.Text(),
		ImageCount:   len(resp.Images()),
		FinishReason: finishReason,
		OutputDir:    published.OutputDir,
	}

	if result.ImageCount == 0 {
		slog.Warn("画像が1枚も返らなかったのだ", "finish_reason", finishReason)
	} else {
		slog.Info("画像生成に成功したのだ", "count", result.ImageCount, "output", result.OutputDir)
	}
	return result, nil
}

// validateImagePaths は空欄を除き、クォートを剥がし、全パスの存在を確認するのだ。
func validateImagePaths(imagePaths []string) ([]string, error) {
	valid := make([]string, 0, len(imagePaths))
	for _, p := range imagePaths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		valid = append(valid, domain.StripQuotes(p))
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("少なくとも1つの画像パスを指定してほしいのだ")
	}
	for _, p := range valid {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("画像パスが存在しないのだ: %s", p)
		}
	}
	return valid, nil
}
