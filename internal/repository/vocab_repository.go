//go:generate mockery --name VocabRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
)

const (
	vocabFilePrefix = "vocab_"
	vocabFileExt    = ".json"
)

// VocabRepository はレベルごとの単語帳 (読み取り専用) を提供します。
type VocabRepository interface {
	FindByLevel(ctx context.Context, level string) ([]model.VocabEntry, error)
	ListLevels(ctx context.Context) ([]string, error)
}

type fileVocabRepository struct {
	dir string
}

// NewFileVocabRepository は dir 配下の vocab_<level>.json を読む単語帳リポジトリを作成します。
func NewFileVocabRepository(dir string) VocabRepository {
	return &fileVocabRepository{dir: dir}
}

// VocabFileName はレベルに対応するファイル名を返します。
func VocabFileName(level string) string {
	return vocabFilePrefix + level + vocabFileExt
}

// FindByLevel はレベルの単語一覧を返します。ファイルがない (未知のレベル) 場合は空のリスト。
func (r *fileVocabRepository) FindByLevel(ctx context.Context, level string) ([]model.VocabEntry, error) {
	logger := middleware.GetLogger(ctx)
	if !validLevelName(level) {
		logger.Warn("Rejected vocabulary level name", "level", level)
		return []model.VocabEntry{}, nil
	}

	path := filepath.Join(r.dir, VocabFileName(level))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("Vocabulary file not found", "level", level, "path", path)
			return []model.VocabEntry{}, nil
		}
		return nil, fmt.Errorf("fileVocabRepository.FindByLevel: %w", err)
	}

	entries, err := decodeVocab(data)
	if err != nil {
		logger.Error("Vocabulary file is malformed", "path", path, "error", err)
		return nil, fmt.Errorf("fileVocabRepository.FindByLevel: %s: %w", path, err)
	}
	return entries, nil
}

// vocabRecord はキーの有無を区別するための読み込み用の型です。
type vocabRecord struct {
	Word    *string `json:"word"`
	Reading *string `json:"reading"`
	Meaning *string `json:"meaning"`
}

// decodeVocab は単語帳を読み込みます。word か meaning がない項目があれば ErrMalformedResource。
// reading は省略可能です。
func decodeVocab(data []byte) ([]model.VocabEntry, error) {
	var records []vocabRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedResource, err)
	}

	entries := make([]model.VocabEntry, 0, len(records))
	for i, rec := range records {
		switch {
		case rec.Word == nil:
			return nil, fmt.Errorf("%w: entry %d has no \"word\"", model.ErrMalformedResource, i)
		case rec.Meaning == nil:
			return nil, fmt.Errorf("%w: entry %d has no \"meaning\"", model.ErrMalformedResource, i)
		}
		entries = append(entries, model.VocabEntry{
			Word:    *rec.Word,
			Reading: lo.FromPtr(rec.Reading),
			Meaning: *rec.Meaning,
		})
	}
	return entries, nil
}

// ListLevels は vocab_<level>.json の命名規則からレベル一覧をソートして返します。
// ディレクトリがなければ空のリスト。
func (r *fileVocabRepository) ListLevels(ctx context.Context) ([]string, error) {
	dirEntries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("fileVocabRepository.ListLevels: %w", err)
	}

	levels := lo.FilterMap(dirEntries, func(e os.DirEntry, _ int) (string, bool) {
		return LevelFromFileName(e.Name())
	})
	sort.Strings(levels)
	return levels, nil
}

// LevelFromFileName は "vocab_n5.json" から "n5" を取り出します。
func LevelFromFileName(name string) (string, bool) {
	if !strings.HasPrefix(name, vocabFilePrefix) || !strings.HasSuffix(name, vocabFileExt) {
		return "", false
	}
	level := strings.TrimSuffix(strings.TrimPrefix(name, vocabFilePrefix), vocabFileExt)
	if level == "" {
		return "", false
	}
	return level, true
}

// validLevelName はレベル名がパス要素1つ分であることを確認します。
func validLevelName(level string) bool {
	return level != "" && level != "." && level != ".." &&
		!strings.ContainsAny(level, `/\`) && filepath.Base(level) == level
}

// WriteVocabFile は単語帳を dir/vocab_<level>.json に書き出し、そのパスを返します。
// 読み込み側と同じ形式 (インデント2、非ASCIIはそのまま) で保存します。
func WriteVocabFile(dir, level string, entries []model.VocabEntry) (string, error) {
	if !validLevelName(level) {
		return "", fmt.Errorf("WriteVocabFile: level %q: %w", level, model.ErrInvalidInput)
	}
	if entries == nil {
		entries = []model.VocabEntry{}
	}
	data, err := encodeJSON(entries)
	if err != nil {
		return "", fmt.Errorf("WriteVocabFile: %w", err)
	}
	path := filepath.Join(dir, VocabFileName(level))
	if err := writeFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("WriteVocabFile: %w", err)
	}
	return path, nil
}
