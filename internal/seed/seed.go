// internal/seed/seed.go
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/repository"
)

// SampleLevel は同梱サンプルのレベル名です。
const SampleLevel = "n5"

//go:embed data/vocab_n5.json
var sampleN5 []byte

// ErrAlreadyExists は既存ファイルを上書きしなかったことを示します。
var ErrAlreadyExists = errors.New("seed: vocabulary file already exists")

// SampleN5 は同梱の N5 サンプル単語帳を返します。
func SampleN5() ([]model.VocabEntry, error) {
	var entries []model.VocabEntry
	if err := json.Unmarshal(sampleN5, &entries); err != nil {
		return nil, fmt.Errorf("seed.SampleN5: %w", err)
	}
	return entries, nil
}

// WriteSample はサンプル単語帳を dir/vocab_n5.json に書き出します。
// force が false で既にファイルがある場合は ErrAlreadyExists を返し、何も書きません。
func WriteSample(ctx context.Context, dir string, force bool) (string, int, error) {
	logger := middleware.GetLogger(ctx)
	path := filepath.Join(dir, repository.VocabFileName(SampleLevel))

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, 0, ErrAlreadyExists
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", 0, fmt.Errorf("seed.WriteSample: %w", err)
		}
	}

	entries, err := SampleN5()
	if err != nil {
		return "", 0, err
	}
	path, err = repository.WriteVocabFile(dir, SampleLevel, entries)
	if err != nil {
		return "", 0, fmt.Errorf("seed.WriteSample: %w", err)
	}
	logger.Info("Sample vocabulary written", "path", path, "count", len(entries))
	return path, len(entries), nil
}
