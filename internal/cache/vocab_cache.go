// internal/cache/vocab_cache.go
package cache

import (
	"context"
	"slices"
	"sync"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/repository"
)

// VocabCache は VocabRepository の読み込み結果をレベル単位で保持します。
// repository.VocabRepository を満たすので、そのまま差し替えて使えます。
// 空の結果とエラーはキャッシュしません (後からファイルを置いたレベルをすぐ読めるように)。
type VocabCache struct {
	repo repository.VocabRepository

	mu   sync.RWMutex
	data map[string][]model.VocabEntry
}

func NewVocabCache(repo repository.VocabRepository) *VocabCache {
	return &VocabCache{
		repo: repo,
		data: make(map[string][]model.VocabEntry),
	}
}

func (c *VocabCache) get(level string) ([]model.VocabEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entries, ok := c.data[level]
	return entries, ok
}

func (c *VocabCache) set(level string, entries []model.VocabEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[level] = entries
}

// FindByLevel はキャッシュを優先し、なければリポジトリから読み込みます。
// 呼び出し側が結果を書き換えてもキャッシュに影響しないよう、コピーを返します。
func (c *VocabCache) FindByLevel(ctx context.Context, level string) ([]model.VocabEntry, error) {
	if entries, ok := c.get(level); ok {
		return slices.Clone(entries), nil
	}

	entries, err := c.repo.FindByLevel(ctx, level)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		c.set(level, slices.Clone(entries))
		middleware.GetLogger(ctx).Debug("Vocabulary cached", "level", level, "count", len(entries))
	}
	return entries, nil
}

// ListLevels はキャッシュせず毎回リポジトリに問い合わせます。
func (c *VocabCache) ListLevels(ctx context.Context) ([]string, error) {
	return c.repo.ListLevels(ctx)
}

// Invalidate は指定レベルのキャッシュを破棄します。
func (c *VocabCache) Invalidate(level string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, level)
}

// InvalidateAll はすべてのキャッシュを破棄します。
func (c *VocabCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.data)
}

// Reload はキャッシュを破棄してから読み直します。
func (c *VocabCache) Reload(ctx context.Context, level string) ([]model.VocabEntry, error) {
	c.Invalidate(level)
	return c.FindByLevel(ctx, level)
}

func (c *VocabCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
