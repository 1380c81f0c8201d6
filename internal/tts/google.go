// internal/tts/google.go
package tts

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
)

// GoogleSynthesizer は Google Cloud Text-to-Speech で MP3 を合成します。
type GoogleSynthesizer struct {
	client       *texttospeech.Client
	languageCode string
}

// NewGoogleSynthesizer はAPIキーで認証するクライアントを作成します。
// 追加の option (エンドポイント差し替えなど) はテスト用です。
func NewGoogleSynthesizer(ctx context.Context, apiKey, languageCode string, opts ...option.ClientOption) (*GoogleSynthesizer, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("tts.NewGoogleSynthesizer: %w", err)
	}
	return &GoogleSynthesizer{client: client, languageCode: languageCode}, nil
}

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := g.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: g.languageCode,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_FEMALE,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("GoogleSynthesizer.Synthesize: %w", err)
	}
	return resp.GetAudioContent(), nil
}

func (g *GoogleSynthesizer) Close() error {
	return g.client.Close()
}
