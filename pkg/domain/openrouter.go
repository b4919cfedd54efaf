package domain

import "strings"

// ImageURL はメッセージパートおよび応答画像が持つデータ URL のラッパーです。
type ImageURL struct {
	URL string `json:"url"`
}

// ContentPart はユーザーメッセージを構成するテキストまたは画像のパートです。
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// Message は chat-completions 形式の1メッセージです。
type Message struct {
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

// ChatRequest は画像生成エンドポイントへ送る JSON ペイロードです。
// modalities で画像とテキストの両方の出力を要求します。
type ChatRequest struct {
	Model      string    `json:"model"`
	Messages   []Message `json:"messages"`
	Modalities []string  `json:"modalities"`
}

// ResponseImage は応答に含まれる生成画像1枚分です。
type ResponseImage struct {
	Type     string   `json:"type,omitempty"`
	ImageURL ImageURL `json:"image_url"`
}

// ResponseMessage は choices[0].message に対応します。
type ResponseMessage struct {
	Content string          `json:"content"`
	Images  []ResponseImage `json:"images"`
}

// Choice は応答の1候補です。native_finish_reason は画像が
// 返らなかったときの診断用文字列として利用します。
type Choice struct {
	Message            ResponseMessage `json:"message"`
	NativeFinishReason string          `json:"native_finish_reason"`
}

// ChatResponse は API 応答のデコード結果です。
// RawBody には受信したボディをそのまま保持し、保存時の
// プリティプリントに使います（JSON には含めません）。
type ChatResponse struct {
	ID      string   `json:"id"`
	Choices []Choice `json:"choices"`

	RawBody []byte `json:"-"`
}

// Text は最初の候補のテキスト本文を返します。候補がなければ空文字列です。
func (r *ChatResponse) Text() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// Images は最初の候補に含まれる生成画像のリストを返します。
func (r *ChatResponse) Images() []ResponseImage {
	if len(r.Choices) == 0 {
		return nil
	}
	return r.Choices[0].Message.Images
}

// FinishReason は最初の候補の native_finish_reason を返します。
func (r *ChatResponse) FinishReason() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].NativeFinishReason
}

// DataURLToBase64 は data:image/{format};base64,{payload} 形式から
// base64 ペイロード部分を抽出します。すでに素の base64 の場合はそのまま返します。
func DataURLToBase64(dataURL string) string {
	if _, payload, found := strings.Cut(dataURL, ";base64,"); found {
		return payload
	}
	return dataURL
}
