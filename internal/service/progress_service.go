//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/repository"
)

type ProgressService interface {
	GetProgress(ctx context.Context) (model.Progress, error)
	RecordProgress(ctx context.Context, req *model.ProgressUpdateRequest) (*model.ProgressUpdateResponse, error)
}

type progressService struct {
	progRepo repository.ProgressRepository
}

func NewProgressService(progRepo repository.ProgressRepository) ProgressService {
	return &progressService{progRepo: progRepo}
}

func (s *progressService) GetProgress(ctx context.Context) (model.Progress, error) {
	progress, err := s.progRepo.Load(ctx)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load progress", "error", err)
		return nil, storeError(err, "学習進捗の読み込みに失敗しました。")
	}
	return progress, nil
}

func (s *progressService) RecordProgress(ctx context.Context, req *model.ProgressUpdateRequest) (*model.ProgressUpdateResponse, error) {
	logger := middleware.GetLogger(ctx).With("level", req.Level, "word", req.Word)

	if req.Status != model.StatusCorrect && req.Status != model.StatusIncorrect {
		return nil, model.NewAppError("VALIDATION_ERROR", "statusはcorrectかincorrectを指定してください。", "status", model.ErrInvalidInput)
	}

	if err := s.progRepo.Update(ctx, req.Level, req.Word, req.Status); err != nil {
		logger.Error("Failed to record progress", "error", err)
		return nil, storeError(err, "学習進捗の保存に失敗しました。")
	}

	logger.Info("Progress recorded", "status", req.Status)
	return &model.ProgressUpdateResponse{
		Status:      "success",
		UpdatedWord: req.Word,
		NewStatus:   req.Status,
	}, nil
}
