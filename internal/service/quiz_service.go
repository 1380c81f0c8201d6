//go:generate mockery --name QuizService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/jae9301011-bot/japanese-learning-bot/internal/middleware"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/model"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/quiz"
	"github.com/jae9301011-bot/japanese-learning-bot/internal/repository"
)

// NoIncorrectWordsMessage は再挑戦対象がないときに返すメッセージです。
const NoIncorrectWordsMessage = "No incorrect words to retry!"

type QuizService interface {
	ListLevels(ctx context.Context) ([]string, error)
	NextWord(ctx context.Context, level string, retryIncorrect bool) (*model.WordResponse, error)
	GetVocabulary(ctx context.Context, level string) ([]model.VocabEntry, error)
	SubmitAnswer(ctx context.Context, req *model.SubmitAnswerRequest) (*model.AnswerResult, error)
	ReviewList(ctx context.Context, level string, filter model.ReviewFilter) ([]model.ReviewItem, error)
	ReloadVocabulary(ctx context.Context, level string) error
}

// VocabReloader はキャッシュ付きの単語帳が実装します (cache.VocabCache)。
type VocabReloader interface {
	Reload(ctx context.Context, level string) ([]model.VocabEntry, error)
	InvalidateAll()
}

type quizService struct {
	vocabRepo repository.VocabRepository
	progRepo  repository.ProgressRepository
	selector  *quiz.Selector
}

func NewQuizService(vocabRepo repository.VocabRepository, progRepo repository.ProgressRepository, selector *quiz.Selector) QuizService {
	if selector == nil {
		selector = quiz.NewSelector(nil)
	}
	return &quizService{
		vocabRepo: vocabRepo,
		progRepo:  progRepo,
		selector:  selector,
	}
}

func (s *quizService) ListLevels(ctx context.Context) ([]string, error) {
	levels, err := s.vocabRepo.ListLevels(ctx)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list levels", "error", err)
		return nil, storeError(err, "レベル一覧の取得に失敗しました。")
	}
	if levels == nil {
		levels = []string{}
	}
	return levels, nil
}

func (s *quizService) GetVocabulary(ctx context.Context, level string) ([]model.VocabEntry, error) {
	entries, err := s.vocabRepo.FindByLevel(ctx, level)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load vocabulary", "level", level, "error", err)
		return nil, storeError(err, "単語帳の読み込みに失敗しました。")
	}
	if entries == nil {
		entries = []model.VocabEntry{}
	}
	return entries, nil
}

func (s *quizService) loadLevelProgress(ctx context.Context, level string) (model.LevelProgress, error) {
	progress, err := s.progRepo.Load(ctx)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load progress", "error", err)
		return nil, storeError(err, "学習進捗の読み込みに失敗しました。")
	}
	return progress.Level(level), nil
}

// NextWord は次の出題単語を選びます。
// 単語帳が空なら ErrNotFound、再挑戦対象がなければ Word が nil のレスポンスを返します。
func (s *quizService) NextWord(ctx context.Context, level string, retryIncorrect bool) (*model.WordResponse, error) {
	logger := middleware.GetLogger(ctx).With("level", level, "retry_incorrect", retryIncorrect)

	entries, err := s.GetVocabulary(ctx, level)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		logger.Info("No vocabulary for level")
		return nil, model.NewAppError("NOT_FOUND", "No data found for level", "level", model.ErrNotFound)
	}

	mode := model.ModeLearning
	var levelProgress model.LevelProgress
	if retryIncorrect {
		mode = model.ModeRetry
		if levelProgress, err = s.loadLevelProgress(ctx, level); err != nil {
			return nil, err
		}
	}

	word := s.selector.Select(entries, retryIncorrect, levelProgress)
	if word == nil {
		logger.Info("No incorrect words to retry")
		return &model.WordResponse{Word: nil, Mode: mode, Message: NoIncorrectWordsMessage}, nil
	}

	logger.Debug("Word selected", "word", word.Word)
	return &model.WordResponse{Word: word, Mode: mode}, nil
}

// SubmitAnswer は回答を採点して結果を記録します。
// 同じ単語が複数あるときは先頭のエントリの意味で採点します。
func (s *quizService) SubmitAnswer(ctx context.Context, req *model.SubmitAnswerRequest) (*model.AnswerResult, error) {
	logger := middleware.GetLogger(ctx).With("level", req.Level, "word", req.Word)

	if quiz.IsBlank(req.Answer) {
		return nil, model.NewAppError("VALIDATION_ERROR", "回答を入力してください。", "answer", model.ErrInvalidInput)
	}

	entries, err := s.GetVocabulary(ctx, req.Level)
	if err != nil {
		return nil, err
	}
	entry, found := lo.Find(entries, func(e model.VocabEntry) bool { return e.Word == req.Word })
	if !found {
		logger.Warn("Answer submitted for unknown word")
		return nil, model.NewAppError("NOT_FOUND", "指定された単語が見つかりません。", "word", model.ErrNotFound)
	}

	status := quiz.Grade(req.Answer, entry.Meaning)
	if err := s.progRepo.Update(ctx, req.Level, entry.Word, status); err != nil {
		logger.Error("Failed to record progress", "error", err)
		return nil, storeError(err, "学習進捗の保存に失敗しました。")
	}

	logger.Info("Answer graded", "status", status)
	return &model.AnswerResult{
		Word:            entry.Word,
		Status:          status,
		ExpectedMeaning: entry.Meaning,
	}, nil
}

// ReviewList は単語帳の全項目に状態を付けて返します。未挑戦は "Not Attempted"。
func (s *quizService) ReviewList(ctx context.Context, level string, filter model.ReviewFilter) ([]model.ReviewItem, error) {
	entries, err := s.GetVocabulary(ctx, level)
	if err != nil {
		return nil, err
	}
	levelProgress, err := s.loadLevelProgress(ctx, level)
	if err != nil {
		return nil, err
	}

	items := lo.Map(entries, func(e model.VocabEntry, _ int) model.ReviewItem {
		status, ok := levelProgress[e.Word]
		if !ok {
			status = model.StatusNotAttempted
		}
		return model.ReviewItem{Word: e.Word, Reading: e.Reading, Meaning: e.Meaning, Status: status}
	})

	switch filter {
	case model.ReviewCorrect, model.ReviewIncorrect:
		want := model.Status(filter)
		items = lo.Filter(items, func(item model.ReviewItem, _ int) bool { return item.Status == want })
	}
	return items, nil
}

// ReloadVocabulary は単語帳を読み直します。level が空なら全レベルのキャッシュを破棄します。
// キャッシュを使っていない構成では何もしません。
func (s *quizService) ReloadVocabulary(ctx context.Context, level string) error {
	reloader, ok := s.vocabRepo.(VocabReloader)
	if !ok {
		return nil
	}
	logger := middleware.GetLogger(ctx)

	level = strings.TrimSpace(level)
	if level == "" {
		reloader.InvalidateAll()
		logger.Info("Vocabulary cache invalidated")
		return nil
	}

	entries, err := reloader.Reload(ctx, level)
	if err != nil {
		logger.Error("Failed to reload vocabulary", "level", level, "error", err)
		return storeError(err, "単語帳の読み込みに失敗しました。")
	}
	logger.Info("Vocabulary reloaded", "level", level, "count", len(entries))
	return nil
}
