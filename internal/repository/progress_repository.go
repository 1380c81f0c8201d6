//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
)

// ProgressRepository は level -> word -> status の進捗マップを丸ごと読み書きします。
// 同時に書き込むプロセスが複数あると、最後に Save した内容だけが残ります (ロックはしません)。
type ProgressRepository interface {
	Load(ctx context.Context) (model.Progress, error)
	Save(ctx context.Context, progress model.Progress) error
	Update(ctx context.Context, level, word string, status model.Status) error
}

type jsonProgressRepository struct {
	path string
}

// NewJSONProgressRepository は JSON ファイルを使う進捗ストアを作成します。
func NewJSONProgressRepository(path string) ProgressRepository {
	return &jsonProgressRepository{path: path}
}

func (r *jsonProgressRepository) Load(ctx context.Context) (model.Progress, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Progress{}, nil // ファイルがなければ空のマップ
		}
		return nil, fmt.Errorf("jsonProgressRepository.Load: %w", err)
	}

	progress := model.Progress{}
	if err := json.Unmarshal(data, &progress); err != nil {
		middleware.GetLogger(ctx).Error("Progress file is malformed", "path", r.path, "error", err)
		return nil, fmt.Errorf("jsonProgressRepository.Load: %s: %w: %v", r.path, model.ErrMalformedResource, err)
	}
	if progress == nil { // "null" の場合
		progress = model.Progress{}
	}
	return progress, nil
}

func (r *jsonProgressRepository) Save(ctx context.Context, progress model.Progress) error {
	if progress == nil {
		progress = model.Progress{}
	}
	data, err := encodeJSON(progress)
	if err != nil {
		return fmt.Errorf("jsonProgressRepository.Save: %w", err)
	}

	if err := writeFileAtomic(r.path, data); err != nil {
		return fmt.Errorf("jsonProgressRepository.Save: %w", err)
	}

	middleware.GetLogger(ctx).Debug("Progress saved", "path", r.path, "levels", len(progress))
	return nil
}

func (r *jsonProgressRepository) Update(ctx context.Context, level, word string, status model.Status) error {
	progress, err := r.Load(ctx)
	if err != nil {
		return err
	}
	progress.Set(level, word, status)
	return r.Save(ctx, progress)
}

// encodeJSON はインデント2、非ASCIIをエスケープしない形式で出力します。
// マップのキーはソートされるので、同じ内容なら常に同じバイト列になります。
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFileAtomic は一時ファイルに書いてから rename して、途中状態のファイルを読ませません。
// 親ディレクトリがなければ作成します。
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // rename 成功後は存在しないので無視される

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
