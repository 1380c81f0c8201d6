// internal/repository/gorm_progress_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
)

// WordProgress は (level, word) をキーにした進捗の1行です。
type WordProgress struct {
	Level     string       `gorm:"primaryKey;type:varchar(64)"`
	Word      string       `gorm:"primaryKey;type:varchar(255)"`
	Status    model.Status `gorm:"type:varchar(16);not null"`
	UpdatedAt time.Time
}

func (WordProgress) TableName() string {
	return "word_progress"
}

type gormProgressRepository struct {
	db *gorm.DB
}

// NewGormProgressRepository は SQL データベースを使う進捗ストアを作成します。
// JSON ファイル版と同じく Save は全体の置き換えです。
func NewGormProgressRepository(db *gorm.DB) ProgressRepository {
	return &gormProgressRepository{db: db}
}

func (r *gormProgressRepository) Load(ctx context.Context) (model.Progress, error) {
	var rows []WordProgress
	if err := r.db.WithContext(ctx).Order("level, word").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("gormProgressRepository.Load: %w", err)
	}

	progress := model.Progress{}
	for _, row := range rows {
		progress.Set(row.Level, row.Word, row.Status)
	}
	return progress, nil
}

func (r *gormProgressRepository) Save(ctx context.Context, progress model.Progress) error {
	rows := make([]WordProgress, 0)
	now := time.Now()
	for level, words := range progress {
		for word, status := range words {
			rows = append(rows, WordProgress{Level: level, Word: word, Status: status, UpdatedAt: now})
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&WordProgress{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 200).Error
	})
	if err != nil {
		return fmt.Errorf("gormProgressRepository.Save: %w", err)
	}

	middleware.GetLogger(ctx).Debug("Progress saved", "rows", len(rows))
	return nil
}

func (r *gormProgressRepository) Update(ctx context.Context, level, word string, status model.Status) error {
	row := WordProgress{Level: level, Word: word, Status: status, UpdatedAt: time.Now()}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "level"}, {Name: "word"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&row)
	if result.Error != nil {
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	return nil
}
