// internal/tts/audio.go
package tts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
)

// AudioContentType は合成音声の Content-Type です。
const AudioContentType = "audio/mpeg"

// Synthesizer はテキストからMP3を合成します。
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// AudioSource はHTTPで返す音声データを提供します。
type AudioSource interface {
	Audio(ctx context.Context, text string) ([]byte, error)
}

// CachedAudio は合成結果をディスクにキャッシュします。
// 失敗はキャッシュしません。synth が nil ならキャッシュ済みのものだけ返します。
type CachedAudio struct {
	cacheDir     string
	languageCode string
	synth        Synthesizer

	mu sync.Mutex
}

func NewCachedAudio(cacheDir, languageCode string, synth Synthesizer) *CachedAudio {
	return &CachedAudio{cacheDir: cacheDir, languageCode: languageCode, synth: synth}
}

// CacheKey は言語コードとテキストから決まるファイル名 (拡張子なし) を返します。
func CacheKey(languageCode, text string) string {
	h := sha256.Sum256([]byte(languageCode + ":" + text))
	return hex.EncodeToString(h[:16])
}

func (c *CachedAudio) cachePath(text string) string {
	return filepath.Join(c.cacheDir, CacheKey(c.languageCode, text)+".mp3")
}

func (c *CachedAudio) Audio(ctx context.Context, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	logger := middleware.GetLogger(ctx)
	path := c.cachePath(text)

	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// ロック取得後にもう一度確認
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Failed to read audio cache", "path", path, "error", err)
	}

	if c.synth == nil {
		return nil, ErrUnavailable
	}
	data, err := c.synth.Synthesize(ctx, text)
	if err != nil {
		logger.Error("Speech synthesis failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
		logger.Warn("Failed to create audio cache dir", "dir", c.cacheDir, "error", err)
		return data, nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Warn("Failed to write audio cache", "path", path, "error", err)
	}
	return data, nil
}
