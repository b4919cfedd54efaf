package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/shouni/openrouter-image-kit/pkg/domain"
)

// DefaultEndpoint は OpenRouter の chat-completions エンドポイントです。
const DefaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// 画像生成は遅いため、接続は短く・読み取りは長くというタイムアウト構成です。
const (
	connectTimeout = 10 * time.Second
	requestTimeout = 300 * time.Second
)

// Doer は http.Client の差し替え点です。テストではこれをモックします。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError は 2xx 以外の応答を表します。
// ステータスコードと生のボディをそのまま保持し、ユーザーへの表示に使います。
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openrouter: status %d: %s", e.Code, e.Body)
}

// Client は OpenRouter への同期クライアントです。
// リトライもストリーミングも部分結果の扱いも持たない、1往復だけの薄い層です。
type Client struct {
	endpoint   string
	apiKey     string
	httpClient Doer
}

// New はベアラートークンを受け取って標準構成のクライアントを作ります。
func New(apiKey string) *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
	}
	return &Client{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout:   requestTimeout,
			Transport: transport,
		},
	}
}

// NewWithClient はエンドポイントと HTTP クライアントを差し替えて作ります。テスト用です。
func NewWithClient(apiKey, endpoint string, httpClient Doer) *Client {
	return &Client{endpoint: endpoint, apiKey: apiKey, httpClient: httpClient}
}

// CreateImageGeneration は画像生成リクエストを1回だけ同期的に実行します。
// 入力画像の読み込み失敗はそのまま返し、ネットワーク呼び出しは行いません。
// 2xx 以外は *StatusError として返し、この場合なにも永続化されない前提です。
func (c *Client) CreateImageGeneration(ctx context.Context, model, promptText string, imagePaths []string) (*domain.ChatResponse, error) {
	messages, err := BuildUserMessage(promptText, imagePaths)
	if err != nil {
		return nil, err
	}

	payload := domain.ChatRequest{
		Model:      model,
		Messages:   messages,
		Modalities: []string{"image", "text"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("リクエストのシリアライズに失敗しました: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OpenRouter への接続に失敗しました: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("応答ボディの読み取りに失敗しました: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	var parsed domain.ChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("応答 JSON の解析に失敗しました: %w", err)
	}
	parsed.RawBody = raw
	return &parsed, nil
}
