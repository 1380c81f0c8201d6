// internal/tts/audio_test.go
package tts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSynth struct {
	calls int
	data  []byte
	err   error
}

func (f *fakeSynth) Synthesize(ctx context.Context, text string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]byte(text+":"), f.data...), nil
}

func TestCachedAudio_SynthesizesOnceAndCaches(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tts_cache")
	synth := &fakeSynth{data: []byte{0xff, 0xfb}}
	audio := NewCachedAudio(dir, "ja-JP", synth)
	ctx := context.Background()

	first, err := audio.Audio(ctx, " 雨 ")
	require.NoError(t, err)
	second, err := audio.Audio(ctx, "雨")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, synth.calls)
	assert.FileExists(t, filepath.Join(dir, CacheKey("ja-JP", "雨")+".mp3"))
}

func TestCachedAudio_FailuresAreNotCached(t *testing.T) {
	dir := t.TempDir()
	synth := &fakeSynth{err: errors.New("quota exceeded")}
	audio := NewCachedAudio(dir, "ja-JP", synth)

	_, err := audio.Audio(context.Background(), "雨")
	assert.ErrorIs(t, err, ErrUnavailable)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCachedAudio_WithoutSynthesizer(t *testing.T) {
	dir := t.TempDir()
	audio := NewCachedAudio(dir, "ja-JP", nil)
	ctx := context.Background()

	_, err := audio.Audio(ctx, "雨")
	assert.ErrorIs(t, err, ErrUnavailable)

	// 事前に置かれたキャッシュは返せる
	require.NoError(t, os.WriteFile(filepath.Join(dir, CacheKey("ja-JP", "雨")+".mp3"), []byte("mp3"), 0o644))
	data, err := audio.Audio(ctx, "雨")
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3"), data)

	_, err = audio.Audio(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestCacheKey_DependsOnLanguage(t *testing.T) {
	assert.NotEqual(t, CacheKey("ja-JP", "雨"), CacheKey("ko-KR", "雨"))
	assert.Len(t, CacheKey("ja-JP", "雨"), 32)
}
