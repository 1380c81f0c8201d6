// internal/model/speech.go
package model

const (
	SpeakStatusPlaying = "playing"
	SpeakStatusError   = "error"
)

// SpeakResponse は読み上げAPIのレスポンスDTO。再生の完了は待ちません。
type SpeakResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse はヘルスチェックのレスポンスDTO
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// BannerResponse はルートのレスポンスDTO
type BannerResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
