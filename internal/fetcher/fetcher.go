// internal/fetcher/fetcher.go
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
)

const maxDownloadBytes = 32 << 20

var ErrUnexpectedFormat = errors.New("fetcher: unexpected vocabulary format")

// Fetcher は公開されている JLPT 単語リストをダウンロードします。
type Fetcher struct {
	client *http.Client
}

func New(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Fetcher{client: client}
}

// Fetch は url から単語リストを取得して VocabEntry に変換します。
// リトライはしません。
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]model.VocabEntry, error) {
	logger := middleware.GetLogger(ctx).With("url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetcher.Fetch: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logger.Info("Downloading vocabulary")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetcher.Fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetcher.Fetch: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes))
	if err != nil {
		return nil, fmt.Errorf("fetcher.Fetch: read body: %w", err)
	}

	entries, err := Parse(body)
	if err != nil {
		return nil, err
	}
	logger.Info("Vocabulary downloaded", "count", len(entries))
	return entries, nil
}

// Parse は JSON 配列を VocabEntry に変換します。
// reading がなければ furigana、それもなければ word (かな語) を使います。
// word と meaning のどちらかが空の項目は捨てます。
func Parse(data []byte) ([]model.VocabEntry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrUnexpectedFormat)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: top level is not an array", ErrUnexpectedFormat)
	}

	entries := make([]model.VocabEntry, 0, len(root.Array()))
	root.ForEach(func(_, item gjson.Result) bool {
		word := strings.TrimSpace(item.Get("word").String())
		meaning := strings.TrimSpace(item.Get("meaning").String())
		if word == "" || meaning == "" {
			return true
		}
		reading := firstNonEmpty(item.Get("reading").String(), item.Get("furigana").String(), word)
		entries = append(entries, model.VocabEntry{Word: word, Reading: reading, Meaning: meaning})
		return true
	})
	return entries, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
